// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report writes the results of a scan: the tokens, errors,
// identifiers and numbers reports, an optional YAML summary, and
// human-readable diagnostics for a terminal.
package report

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path"

	"cogentcore.org/lexscan/parse/lexer"
	"cogentcore.org/lexscan/parse/token"
	"github.com/hack-pad/hackpadfs"
)

// Names are the file names of the four reports within the output directory.
type Names struct {
	Tokens  string
	Errors  string
	Idents  string
	Numbers string
}

// DefaultNames are the standard report file names.
var DefaultNames = Names{Tokens: "tokens.txt", Errors: "errors.txt", Idents: "iDentifier.txt", Numbers: "number.txt"}

// SummaryName is the file name of the YAML summary.
const SummaryName = "summary.yaml"

// writeLines writes each string followed by a newline.
// Write errors of a [bufio.Writer] are sticky, so the first
// one is returned by Flush.
func writeLines(w io.Writer, n int, line func(i int) string) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < n; i++ {
		bw.WriteString(line(i))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteTokens writes one "text code" line per token, in scan order.
func WriteTokens(w io.Writer, toks []token.Token) error {
	return writeLines(w, len(toks), func(i int) string { return toks[i].Symbol.String() })
}

// WriteErrors writes one message line per error, in scan order.
func WriteErrors(w io.Writer, errs []*lexer.Error) error {
	return writeLines(w, len(errs), func(i int) string { return errs[i].Error() })
}

// WriteIdents writes one line per unique identifier.
func WriteIdents(w io.Writer, rs *lexer.Result) error {
	return writeLines(w, rs.Idents.Len(), func(i int) string { return rs.Idents.Keys[i] })
}

// WriteNumbers writes one line per unique numeric literal.
func WriteNumbers(w io.Writer, rs *lexer.Result) error {
	return writeLines(w, rs.Numbers.Len(), func(i int) string { return rs.Numbers.Keys[i] })
}

// WriteAll writes the four reports into the given directory of fsys,
// creating it as needed, plus the summary if summary is true.
// Every report is encoded and written to a temporary file first, and
// the files are only renamed into place once all of them are written,
// so a failed encode or write leaves the reports of an earlier run as
// they were. A failure while renaming can still leave a mix.
func WriteAll(fsys hackpadfs.FS, dir string, names Names, rs *lexer.Result, summary bool) error {
	type output struct {
		name  string
		write func(w io.Writer) error
		data  []byte
	}
	outs := []*output{
		{name: names.Tokens, write: func(w io.Writer) error { return WriteTokens(w, rs.Tokens) }},
		{name: names.Errors, write: func(w io.Writer) error { return WriteErrors(w, rs.Errors) }},
		{name: names.Idents, write: func(w io.Writer) error { return WriteIdents(w, rs) }},
		{name: names.Numbers, write: func(w io.Writer) error { return WriteNumbers(w, rs) }},
	}
	if summary {
		outs = append(outs, &output{name: SummaryName, write: func(w io.Writer) error { return WriteSummary(w, rs) }})
	}
	for _, out := range outs {
		var b bytes.Buffer
		if err := out.write(&b); err != nil {
			return fmt.Errorf("encoding %s: %w", out.name, err)
		}
		out.data = b.Bytes()
	}
	if err := hackpadfs.MkdirAll(fsys, dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	tmp := func(out *output) string { return path.Join(dir, "."+out.name+".tmp") }
	for i, out := range outs {
		if err := hackpadfs.WriteFullFile(fsys, tmp(out), out.data, 0o644); err != nil {
			for _, prev := range outs[:i] {
				hackpadfs.Remove(fsys, tmp(prev))
			}
			return fmt.Errorf("writing %s: %w", path.Join(dir, out.name), err)
		}
	}
	for _, out := range outs {
		fn := path.Join(dir, out.name)
		if err := hackpadfs.Rename(fsys, tmp(out), fn); err != nil {
			return fmt.Errorf("writing %s: %w", fn, err)
		}
	}
	return nil
}
