// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symtab provides the symbol table of registered keywords and
// operators, and the character classifier derived from it.
package symtab

import (
	"log/slog"

	"cogentcore.org/lexscan/base/keylist"
	"cogentcore.org/lexscan/parse/token"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// MinSimilarity is the minimum similarity for [Table.Suggest] to
// return a symbol.
var MinSimilarity = 0.5

// Table is the ordered collection of registered symbols,
// mapping symbol text to class code. It is read-only once
// built and safe to share between concurrent scans.
type Table struct {
	syms  keylist.List[string, int]
	codes token.Codes
	eol   token.Symbol
}

// New returns a new [Table] for the given symbol texts, in order.
// Codes are assigned ascending from 1, skipping the reserved codes,
// and the line terminator symbol gets the next code after the last
// entry. An empty text is not registered, and a repeated text keeps
// its first code, but both still consume a code so later entries
// keep their file positions.
func New(texts []string, codes token.Codes) *Table {
	tb := &Table{codes: codes}
	code := 1
	next := func() int {
		for codes.IsReserved(code) {
			code++
		}
		code++
		return code - 1
	}
	for _, tx := range texts {
		cd := next()
		if tx == "" {
			continue
		}
		if err := tb.syms.Add(tx, cd); err != nil {
			slog.Warn("symtab: duplicate symbol keeps its first code", "text", tx, "first", tb.syms.At(tx), "skipped", cd)
		}
	}
	tb.eol = token.Symbol{Text: token.EOLText, Code: next()}
	tb.syms.Set(tb.eol.Text, tb.eol.Code)
	return tb
}

// Lookup returns the class code registered for the given text,
// and false if the text is not registered.
func (tb *Table) Lookup(text string) (int, bool) {
	return tb.syms.AtTry(text)
}

// Has returns true if the given text is registered.
func (tb *Table) Has(text string) bool {
	return tb.syms.IndexByKey(text) >= 0
}

// Len returns the number of registered symbols, including the
// line terminator.
func (tb *Table) Len() int {
	return tb.syms.Len()
}

// Codes returns the reserved codes used by the table.
func (tb *Table) Codes() token.Codes {
	return tb.codes
}

// EOL returns the line terminator symbol.
func (tb *Table) EOL() token.Symbol {
	return tb.eol
}

// EOF returns the end-of-stream symbol.
func (tb *Table) EOF() token.Symbol {
	return token.Symbol{Text: token.EOFText, Code: tb.codes.EOF}
}

// Symbols returns all registered symbols in load order,
// ending with the line terminator.
func (tb *Table) Symbols() []token.Symbol {
	sy := make([]token.Symbol, tb.syms.Len())
	for i, tx := range tb.syms.Keys {
		sy[i] = token.Symbol{Text: tx, Code: tb.syms.Values[i]}
	}
	return sy
}

// Suggest returns the registered symbol that is most similar to the
// given text, if any is at least [MinSimilarity] similar.
// It is used to add hints to error messages, never for scanning.
func (tb *Table) Suggest(text string) (token.Symbol, bool) {
	lev := metrics.NewLevenshtein()
	best := -1
	bsim := 0.0
	for i, tx := range tb.syms.Keys {
		if tx == tb.eol.Text || tx == text {
			continue
		}
		sim := strutil.Similarity(text, tx, lev)
		if sim > bsim {
			best, bsim = i, sim
		}
	}
	if best < 0 || bsim < MinSimilarity {
		return token.Symbol{}, false
	}
	return token.Symbol{Text: tb.syms.Keys[best], Code: tb.syms.Values[best]}, true
}
