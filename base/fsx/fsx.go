// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides helpers for working with paths on
// [hackpadfs] filesystems, where all paths are non-rooted
// and slash separated like [io/fs] paths.
package fsx

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"cogentcore.org/lexscan/base/errors"
	"github.com/hack-pad/hackpadfs"
	"github.com/mitchellh/go-homedir"
)

// NormPath normalizes the given path by cleaning it and making it non-rooted,
// as all go fs paths must be non-rooted.
func NormPath(p string) string {
	p = path.Clean(p)
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "."
	}
	return p
}

// ExpandHome expands a leading ~ in the given OS path
// to the user's home directory.
func ExpandHome(p string) (string, error) {
	return homedir.Expand(p)
}

// OSToFS converts the given OS path, which can be relative
// to the working directory or start with ~, to a path on a
// filesystem rooted at the OS root directory.
func OSToFS(p string) (string, error) {
	p, err := ExpandHome(p)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	abs = strings.TrimPrefix(abs, filepath.VolumeName(abs))
	return NormPath(filepath.ToSlash(abs)), nil
}

// FileExistsFS checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
// A directory does not count as a file.
func FileExistsFS(fsys hackpadfs.FS, filePath string) (bool, error) {
	info, err := hackpadfs.Stat(fsys, filePath)
	if err == nil {
		return !info.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
