// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexscan

import (
	"log/slog"

	"cogentcore.org/lexscan/base/fsx"
	"cogentcore.org/lexscan/base/logx"
)

// Config is the configuration of a lexscan run.
type Config struct {

	// Symbols is the symbol definition file, one keyword or operator per line.
	Symbols string `default:"src/symbol.txt" desc:"symbol definition file, one keyword or operator per line"`

	// Code is the source text file to scan.
	Code string `default:"src/code.txt" desc:"source text file to scan"`

	// Out is the directory the reports are written to.
	Out string `default:"out" desc:"directory to write the reports to"`

	// Summary also writes summary.yaml with the counts of the scan.
	Summary bool `desc:"also write summary.yaml with the counts of the scan"`

	// Diagnostics prints each error with its source line to stderr.
	Diagnostics bool `default:"true" desc:"print each error with its source line to stderr"`

	// Watch scans again whenever the symbol or code file changes.
	Watch bool `desc:"scan again whenever the symbol or code file changes"`

	// Then is a command line run after each successful scan.
	Then string `desc:"command line to run after each successful scan"`

	// Quiet only logs warnings and errors.
	Quiet bool `desc:"only log warnings and errors"`

	// Debug logs debugging information.
	Debug bool `desc:"log debugging information"`
}

// LogLevel returns the log level selected by the config.
func (c *Config) LogLevel() slog.Level {
	switch {
	case c.Debug:
		return slog.LevelDebug
	case c.Quiet:
		return slog.LevelWarn
	}
	return logx.UserLevel
}

// Paths are the locations of the inputs and outputs
// on a filesystem, in slash separated non-rooted form.
type Paths struct {
	Symbols string
	Code    string
	Out     string
}

// OSPaths returns the [Paths] of the config on the
// filesystem returned by [scanio.OSFS].
func (c *Config) OSPaths() (Paths, error) {
	var ps Paths
	var err error
	for _, p := range []struct {
		dst *string
		src string
	}{{&ps.Symbols, c.Symbols}, {&ps.Code, c.Code}, {&ps.Out, c.Out}} {
		if *p.dst, err = fsx.OSToFS(p.src); err != nil {
			return ps, err
		}
	}
	return ps, nil
}
