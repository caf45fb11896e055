// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexscan runs the lexical scanner over a source file:
// it loads the symbol table and the source text, scans, and writes
// the tokens, errors, identifiers and numbers reports.
package lexscan

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"cogentcore.org/lexscan/base/errors"
	"cogentcore.org/lexscan/base/exec"
	"cogentcore.org/lexscan/base/fsx"
	"cogentcore.org/lexscan/base/logx"
	"cogentcore.org/lexscan/parse/lexer"
	"cogentcore.org/lexscan/parse/symtab"
	"cogentcore.org/lexscan/parse/token"
	"cogentcore.org/lexscan/report"
	"cogentcore.org/lexscan/scanio"
	"cogentcore.org/lexscan/watch"
	"github.com/hack-pad/hackpadfs"
)

// Scan runs a scan as configured, on the operating system filesystem,
// and then keeps scanning on every change if [Config.Watch] is set,
// until interrupted.
func Scan(c *Config) error {
	logx.UserLevel = c.LogLevel()
	ps, err := c.OSPaths()
	if err != nil {
		return errors.Log(err)
	}
	fsys := scanio.OSFS()
	if _, err := ScanFS(c, fsys, ps, os.Stderr); err != nil {
		if !c.Watch {
			return errors.Log(err)
		}
		slog.Error(err.Error())
	}
	if !c.Watch {
		return nil
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	slog.Info("lexscan: watching", "symbols", c.Symbols, "code", c.Code)
	return watch.Run(ctx, []string{errors.Log1(fsx.ExpandHome(c.Symbols)), errors.Log1(fsx.ExpandHome(c.Code))}, func() error {
		_, err := ScanFS(c, fsys, ps, os.Stderr)
		return err
	})
}

// Load reads the symbol definitions and the source text from fsys,
// returning a [lexer.Scanner] for the symbols and the source.
func Load(fsys hackpadfs.FS, symbols, code string) (*lexer.Scanner, string, error) {
	for _, fn := range []string{symbols, code} {
		ok, err := fsx.FileExistsFS(fsys, fn)
		if err != nil {
			return nil, "", err
		}
		if !ok {
			return nil, "", fmt.Errorf("input file %q: %w", fn, fs.ErrNotExist)
		}
	}
	syms, err := scanio.ReadSymbols(fsys, symbols)
	if err != nil {
		return nil, "", err
	}
	src, err := scanio.ReadCode(fsys, code)
	if err != nil {
		return nil, "", err
	}
	tb := symtab.New(syms, token.DefaultCodes)
	slog.Debug("lexscan: loaded symbols", "count", tb.Len())
	return lexer.NewScanner(tb), src, nil
}

// ScanFS runs one scan with the inputs and outputs at the given
// paths of fsys. Nothing is written if the inputs cannot be read.
// Diagnostics, if enabled, are written to diag.
func ScanFS(c *Config, fsys hackpadfs.FS, ps Paths, diag io.Writer) (*lexer.Result, error) {
	sc, src, err := Load(fsys, ps.Symbols, ps.Code)
	if err != nil {
		return nil, err
	}
	rs := sc.Run(src)
	if err := report.WriteAll(fsys, ps.Out, report.DefaultNames, rs, c.Summary); err != nil {
		return rs, err
	}
	if c.Diagnostics && len(rs.Errors) > 0 {
		report.NewDiagnostics(diag, sc.Table, c.Code).Emit(rs, strings.Split(src, "\n"))
	}
	slog.Info("lexscan: scanned", "code", c.Code, "tokens", len(rs.Tokens), "errors", len(rs.Errors),
		"identifiers", rs.Idents.Len(), "numbers", rs.Numbers.Len())
	if c.Then != "" {
		if err := exec.Major().RunLine(c.Then); err != nil {
			return rs, fmt.Errorf("running %q: %w", c.Then, err)
		}
	}
	return rs, nil
}
