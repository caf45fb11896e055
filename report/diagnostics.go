// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/lexscan/parse/lexer"
	"cogentcore.org/lexscan/parse/symtab"
	"github.com/muesli/termenv"
)

// Diagnostics prints scan errors for a person at a terminal,
// with the offending source line, a caret under the invalid
// text, and a suggestion of a similar registered symbol.
type Diagnostics struct {

	// Out is the styled terminal output.
	Out *termenv.Output

	// Table is used for suggestions; none are made if it is nil.
	Table *symtab.Table

	// Path is the source file name shown in locations.
	Path string
}

// NewDiagnostics returns [Diagnostics] writing to w, detecting
// the color profile of w. Options such as [termenv.WithProfile]
// override the detection.
func NewDiagnostics(w io.Writer, tb *symtab.Table, path string, opts ...termenv.OutputOption) *Diagnostics {
	return &Diagnostics{Out: termenv.NewOutput(w, opts...), Table: tb, Path: path}
}

// Emit prints all errors of the result, using the source lines
// for context, followed by a one-line summary.
func (dg *Diagnostics) Emit(rs *lexer.Result, lines []string) {
	for _, er := range rs.Errors {
		dg.emitError(er, lines)
	}
	if n := len(rs.Errors); n > 0 {
		fmt.Fprintf(dg.Out, "\nScan found %d invalid word(s)\n", n)
	}
}

func (dg *Diagnostics) emitError(er *lexer.Error, lines []string) {
	red := dg.Out.Color("1")
	blue := dg.Out.Color("4")
	fmt.Fprintf(dg.Out, "%s: %s\n", dg.Out.String("error").Foreground(red).Bold(), er.Error())
	fmt.Fprintf(dg.Out, "  %s %s:%d:%d\n", dg.Out.String("-->").Foreground(blue), dg.Path, er.Line+1, er.Ch+1)
	if er.Line < len(lines) {
		bar := dg.Out.String("|").Foreground(blue).String()
		fmt.Fprintf(dg.Out, "   %s %s\n", bar, lines[er.Line])
		caret := strings.Repeat(" ", er.Ch) + strings.Repeat("^", len([]rune(er.Text)))
		fmt.Fprintf(dg.Out, "   %s %s\n", bar, dg.Out.String(caret).Foreground(red))
	}
	if dg.Table == nil {
		return
	}
	if sy, ok := dg.Table.Suggest(er.Text); ok {
		fmt.Fprintf(dg.Out, "  %s did you mean %q?\n", dg.Out.String("help:").Faint(), sy.Text)
	}
}
