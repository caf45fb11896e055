// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lexscan scans a source file into tokens, errors,
// identifiers and numbers, using a table of keywords and operators.
package main

import (
	"cogentcore.org/lexscan"
	"cogentcore.org/lexscan/base/logx"
	"cogentcore.org/lexscan/cli"
)

func main() {
	logx.SetDefaultLogger()
	opts := cli.DefaultOptions("lexscan", "Lexscan scans a source file into tokens, errors, identifiers and numbers, using a table of keywords and operators.")
	cli.Run(opts, &lexscan.Config{}, lexscan.Scan)
}
