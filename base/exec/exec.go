// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec runs external commands with configurable
// standard input / output routing.
package exec

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Config contains the configuration information that
// controls the behavior of command execution.
type Config struct {

	// Out receives the standard output of commands; nil discards it.
	Out io.Writer

	// Err receives the standard error of commands; nil discards it.
	Err io.Writer

	// In is the standard input of commands; nil is an empty input.
	In io.Reader

	// Dir is the directory to run commands in. The current
	// directory is used if it is empty.
	Dir string

	// Env contains any additional environment variables,
	// on top of those of the current process.
	Env map[string]string

	// Echo is the writer to print each command to before
	// it is run, if non-nil.
	Echo io.Writer
}

// Major returns a [Config] writing to os.Stdout and os.Stderr,
// echoing commands to os.Stdout.
func Major() *Config {
	return &Config{Out: os.Stdout, Err: os.Stderr, In: os.Stdin, Echo: os.Stdout}
}

// Silent returns a [Config] that discards all command output.
func Silent() *Config {
	return &Config{}
}

// Run runs the command with the given arguments, waiting for it to finish.
func (c *Config) Run(cmd string, args ...string) error {
	return c.run(c.Out, cmd, args...)
}

// RunLine splits the given command line with shell quoting rules
// and runs the result.
func (c *Config) RunLine(line string) error {
	cmd, args, err := Split(line)
	if err != nil {
		return err
	}
	return c.Run(cmd, args...)
}

// Output runs the command and returns its standard output without
// the final newline. The output is also copied to [Config.Out].
func (c *Config) Output(cmd string, args ...string) (string, error) {
	var buf bytes.Buffer
	err := c.run(&buf, cmd, args...)
	if c.Out != nil {
		c.Out.Write(buf.Bytes())
	}
	return strings.TrimSuffix(buf.String(), "\n"), err
}

func (c *Config) run(out io.Writer, cmd string, args ...string) error {
	if c.Echo != nil {
		fmt.Fprintln(c.Echo, strings.TrimSpace(cmd+" "+strings.Join(args, " ")))
	}
	cm := exec.Command(cmd, args...)
	cm.Dir = c.Dir
	if len(c.Env) > 0 {
		cm.Env = os.Environ()
		for k, v := range c.Env {
			cm.Env = append(cm.Env, k+"="+v)
		}
	}
	cm.Stdout = out
	cm.Stderr = c.Err
	cm.Stdin = c.In
	if err := cm.Run(); err != nil {
		return fmt.Errorf("exec: %q: %w", cmd, err)
	}
	return nil
}

// Split splits the given command line into the command and its
// arguments, using shell quoting rules.
func Split(line string) (string, []string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return "", nil, fmt.Errorf("exec: parsing %q: %w", line, err)
	}
	if len(args) == 0 {
		return "", nil, fmt.Errorf("exec: empty command line")
	}
	return args[0], args[1:], nil
}
