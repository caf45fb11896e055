// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scanio reads the symbol definitions and the source text
// that are the inputs of a scan, from any [hackpadfs.FS].
package scanio

import (
	"fmt"
	"strings"

	"cogentcore.org/lexscan/base/errors"
	"github.com/h2non/filetype"
	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
)

// ErrBinaryInput is returned when an input file is recognized
// as a binary file format rather than text.
var ErrBinaryInput = errors.New("binary input")

// headerSize is the number of leading bytes used to detect binary formats.
const headerSize = 262

// OSFS returns the operating system filesystem, rooted at the OS root,
// so paths are those returned by [fsx.OSToFS].
func OSFS() hackpadfs.FS {
	return osfs.NewFS()
}

// readText reads the named file, rejecting binary content.
func readText(fsys hackpadfs.FS, name string) ([]byte, error) {
	b, err := hackpadfs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	head := b[:min(len(b), headerSize)]
	kind, err := filetype.Match(head)
	if err == nil && kind != filetype.Unknown {
		return nil, fmt.Errorf("%s: %w (%s)", name, ErrBinaryInput, kind.MIME.Value)
	}
	return b, nil
}

// ReadSymbols reads the symbol definitions: one symbol text per line,
// in file order. Carriage returns are removed, and a trailing newline
// does not add an empty symbol.
func ReadSymbols(fsys hackpadfs.FS, name string) ([]string, error) {
	b, err := readText(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading symbols: %w", err)
	}
	s := strings.ReplaceAll(string(b), "\r", "")
	if s == "" {
		return nil, nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n"), nil
}

// ReadCode reads the source text, with tabs replaced by spaces
// and carriage returns removed.
func ReadCode(fsys hackpadfs.FS, name string) (string, error) {
	b, err := readText(fsys, name)
	if err != nil {
		return "", fmt.Errorf("reading code: %w", err)
	}
	return Normalize(string(b)), nil
}

// Normalize replaces tabs with spaces and removes carriage returns.
func Normalize(src string) string {
	return strings.NewReplacer("\t", " ", "\r", "").Replace(src)
}
