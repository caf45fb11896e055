// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli generates a command line interface for a config struct.
// Field values come from `default:` struct tags, then from a TOML or
// YAML config file, then from command line flags, each overriding the
// previous one.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/lexscan/base/errors"
	"cogentcore.org/lexscan/base/fsx"
	"cogentcore.org/lexscan/base/iox/tomlx"
	"cogentcore.org/lexscan/base/iox/yamlx"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Options are the options passed to [Run] and [Command].
type Options struct {

	// AppName is the name of the app, used as the command name.
	AppName string

	// AppAbout is a short description of the app.
	AppAbout string

	// DefaultFiles are config files that are opened when no
	// config file is given with the config flag, if they exist.
	// Only the first one found is used.
	DefaultFiles []string
}

// DefaultOptions returns [Options] for the given app, whose default
// config files are the app name with .toml, .yaml and .yml extensions.
func DefaultOptions(name, about string) *Options {
	return &Options{
		AppName:      name,
		AppAbout:     about,
		DefaultFiles: []string{name + ".toml", name + ".yaml", name + ".yml"},
	}
}

// Command returns the command that runs the given function on the
// given config, which must be a pointer to a struct. The defaults
// are applied to cfg immediately; the config file and flags are
// applied when the command is executed. With the dump-config flag,
// the resulting config is saved to that file instead of running.
func Command[T any](opts *Options, cfg T, run func(T) error) (*cobra.Command, error) {
	if err := SetFromDefaults(cfg); err != nil {
		return nil, err
	}
	cmd := &cobra.Command{
		Use:          opts.AppName,
		Short:        opts.AppAbout,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	fs := cmd.Flags()
	var cfile, dump string
	fs.StringVarP(&cfile, "config", "c", "", "config file (.toml, .yaml or .yml) read before the flags are applied")
	fs.StringVar(&dump, "dump-config", "", "save the resulting config to this .toml, .yaml or .yml file and exit")
	if err := AddFlags(fs, cfg); err != nil {
		return nil, err
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := openConfig(opts, fs, cfg, cfile); err != nil {
			return err
		}
		if dump != "" {
			return SaveFile(cfg, dump)
		}
		return run(cfg)
	}
	return cmd, nil
}

// Run runs the given function on the given config, taking the
// flags from os.Args, and exits with status 1 on any error.
func Run[T any](opts *Options, cfg T, run func(T) error) {
	cmd, err := Command(opts, cfg, run)
	if errors.Log(err) != nil {
		os.Exit(1)
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openConfig opens the given config file, or the first existing
// default file if it is empty, into cfg, then reapplies any flags
// that were set so that they take precedence over the file.
func openConfig(opts *Options, fs *pflag.FlagSet, cfg any, file string) error {
	if file == "" {
		for _, df := range opts.DefaultFiles {
			if _, err := os.Stat(df); err == nil {
				file = df
				break
			}
		}
		if file == "" {
			return nil
		}
	}
	file, err := fsx.ExpandHome(file)
	if err != nil {
		return err
	}
	set := map[string]string{}
	fs.Visit(func(f *pflag.Flag) {
		set[f.Name] = f.Value.String()
	})
	if err := OpenFile(cfg, file); err != nil {
		return err
	}
	for name, val := range set {
		if err := fs.Set(name, val); err != nil {
			return err
		}
	}
	return nil
}

// OpenFile reads the given config file into cfg, choosing the
// format from the file extension.
func OpenFile(cfg any, file string) error {
	var err error
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		err = tomlx.Open(cfg, file)
	case ".yaml", ".yml":
		err = yamlx.Open(cfg, file)
	default:
		return fmt.Errorf("cli: config file %q must be .toml, .yaml or .yml", file)
	}
	if err != nil {
		return fmt.Errorf("cli: opening config file %q: %w", file, err)
	}
	return nil
}

// SaveFile writes cfg to the given config file, choosing the
// format from the file extension, so that [OpenFile] reads it back.
func SaveFile(cfg any, file string) error {
	file, err := fsx.ExpandHome(file)
	if err != nil {
		return err
	}
	var write func(v any, w io.Writer) error
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		write = tomlx.Write
	case ".yaml", ".yml":
		write = yamlx.Write
	default:
		return fmt.Errorf("cli: config file %q must be .toml, .yaml or .yml", file)
	}
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("cli: saving config file: %w", err)
	}
	if err := write(cfg, f); err != nil {
		f.Close()
		return fmt.Errorf("cli: saving config file %q: %w", file, err)
	}
	return f.Close()
}
