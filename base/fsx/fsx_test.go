// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormPath(t *testing.T) {
	assert.Equal(t, "src/code.txt", NormPath("./src/code.txt"))
	assert.Equal(t, "tmp/out", NormPath("/tmp/out/"))
	assert.Equal(t, ".", NormPath("/"))
	assert.Equal(t, ".", NormPath(""))
	assert.Equal(t, "a/c", NormPath("a/b/../c"))
}

func TestOSToFS(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	p, err := OSToFS("src/symbol.txt")
	require.NoError(t, err)
	assert.Equal(t, NormPath(filepath.ToSlash(filepath.Join(wd, "src", "symbol.txt"))), p)
	assert.NotContains(t, p, "~")

	home, err := ExpandHome("~")
	require.NoError(t, err)
	p, err = OSToFS("~/x.txt")
	require.NoError(t, err)
	assert.Equal(t, NormPath(filepath.ToSlash(filepath.Join(home, "x.txt"))), p)
}

func TestFileExistsFS(t *testing.T) {
	fsys, err := mem.NewFS()
	require.NoError(t, err)
	require.NoError(t, hackpadfs.MkdirAll(fsys, "src", 0o755))
	require.NoError(t, hackpadfs.WriteFullFile(fsys, "src/code.txt", []byte("x"), 0o644))

	ok, err := FileExistsFS(fsys, "src/code.txt")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = FileExistsFS(fsys, "src")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = FileExistsFS(fsys, "src/none.txt")
	assert.NoError(t, err)
	assert.False(t, ok)
}
