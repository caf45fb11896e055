// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"

	"cogentcore.org/lexscan/base/iox/yamlx"
	"cogentcore.org/lexscan/parse/lexer"
	"cogentcore.org/lexscan/parse/token"
)

// Summary has the counts of what a scan found.
type Summary struct {
	Lines       int `yaml:"lines"`
	Tokens      int `yaml:"tokens"`
	Errors      int `yaml:"errors"`
	Identifiers int `yaml:"identifiers"`
	Numbers     int `yaml:"numbers"`

	// Categories counts the tokens of each category,
	// including line terminators.
	Categories map[string]int `yaml:"categories"`
}

// NewSummary returns the [Summary] of the given result.
func NewSummary(rs *lexer.Result) *Summary {
	sm := &Summary{
		Tokens:      len(rs.Tokens),
		Errors:      len(rs.Errors),
		Identifiers: rs.Idents.Len(),
		Numbers:     rs.Numbers.Len(),
		Categories:  map[string]int{},
	}
	for _, tk := range rs.Tokens {
		if tk.Cat == token.EOL {
			sm.Lines++
		}
		sm.Categories[tk.Cat.String()]++
	}
	return sm
}

// WriteSummary writes the [Summary] of the given result as YAML.
func WriteSummary(w io.Writer, rs *lexer.Result) error {
	return yamlx.Write(NewSummary(rs), w)
}
