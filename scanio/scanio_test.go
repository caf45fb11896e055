// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanio

import (
	"io/fs"
	"testing"

	"cogentcore.org/lexscan/base/errors"
	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memFS(t *testing.T, files map[string]string) hackpadfs.FS {
	fsys, err := mem.NewFS()
	require.NoError(t, err)
	require.NoError(t, hackpadfs.MkdirAll(fsys, "src", 0o755))
	for name, data := range files {
		require.NoError(t, hackpadfs.WriteFullFile(fsys, name, []byte(data), 0o644))
	}
	return fsys
}

func TestReadSymbols(t *testing.T) {
	fsys := memFS(t, map[string]string{
		"src/symbol.txt":  "if\r\nthen\r\n+\r\n:=\r\n",
		"src/notrail.txt": "begin\nend",
		"src/empty.txt":   "",
		"src/blank.txt":   "+\n\nif\n",
	})
	syms, err := ReadSymbols(fsys, "src/symbol.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"if", "then", "+", ":="}, syms)

	syms, err = ReadSymbols(fsys, "src/notrail.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"begin", "end"}, syms)

	syms, err = ReadSymbols(fsys, "src/blank.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"+", "", "if"}, syms, "blank lines are kept so codes follow file lines")

	syms, err = ReadSymbols(fsys, "src/empty.txt")
	require.NoError(t, err)
	assert.Empty(t, syms)

	_, err = ReadSymbols(fsys, "src/none.txt")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReadCode(t *testing.T) {
	fsys := memFS(t, map[string]string{
		"src/code.txt": "if\tx\r\n  y := 1\r\n",
	})
	code, err := ReadCode(fsys, "src/code.txt")
	require.NoError(t, err)
	assert.Equal(t, "if x\n  y := 1\n", code)
}

func TestBinaryInput(t *testing.T) {
	png := "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"
	fsys := memFS(t, map[string]string{
		"src/code.png":   png,
		"src/symbol.png": png,
	})
	_, err := ReadCode(fsys, "src/code.png")
	assert.True(t, errors.Is(err, ErrBinaryInput))
	assert.Contains(t, err.Error(), "image/png")

	_, err = ReadSymbols(fsys, "src/symbol.png")
	assert.True(t, errors.Is(err, ErrBinaryInput))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a  b\n", Normalize("a\t\tb\r\n"))
}
