// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"strings"

	"cogentcore.org/lexscan/base/keylist"
	"cogentcore.org/lexscan/base/logx"
	"cogentcore.org/lexscan/parse/token"
)

// Result holds everything collected by one scan.
type Result struct {

	// Tokens in scan order, including a line terminator after
	// every line and the end-of-stream token at the end.
	Tokens []token.Token

	// Errors in scan order.
	Errors []*Error

	// Idents are the unique identifier texts, with their number
	// of occurrences. Consumers must not rely on the order.
	Idents keylist.List[string, int]

	// Numbers are the unique numeric literal texts, with their
	// number of occurrences. Consumers must not rely on the order.
	Numbers keylist.List[string, int]
}

// count increments the occurrence count of the text in the set.
func count(set *keylist.List[string, int], text string) {
	if i := set.IndexByKey(text); i >= 0 {
		set.Values[i]++
		return
	}
	set.Add(text, 1)
}

// Run scans the given source text, split into lines on '\n'.
// The empty string is a single empty line.
func (sc *Scanner) Run(src string) *Result {
	return sc.RunLines(strings.Split(src, "\n"))
}

// RunLines scans the given lines, which must not contain '\n'.
func (sc *Scanner) RunLines(lines []string) *Result {
	rs := &Result{}
	for ln, lstr := range lines {
		line := []rune(lstr)
		for pos := 0; pos < len(line); {
			wd := sc.Next(line, pos)
			pos = wd.Ed
			if wd.Cat == token.Nothing {
				break
			}
			rs.add(sc, wd, ln)
		}
		rs.Tokens = append(rs.Tokens, token.Token{Symbol: sc.Table.EOL(), Cat: token.EOL, Line: ln, Ch: len(line)})
	}
	rs.Tokens = append(rs.Tokens, token.Token{Symbol: sc.Table.EOF(), Cat: token.EOS, Line: max(len(lines)-1, 0)})
	logx.PrintfDebug("lexer: %d lines, %d tokens, %d errors\n", len(lines), len(rs.Tokens), len(rs.Errors))
	return rs
}

// add routes a scanned word into the result.
func (rs *Result) add(sc *Scanner, wd Word, ln int) {
	tk := token.Token{Symbol: token.Symbol{Text: wd.Text}, Cat: wd.Cat, Line: ln, Ch: wd.St}
	codes := sc.Table.Codes()
	switch wd.Cat {
	case token.Error:
		rs.Errors = append(rs.Errors, &Error{Text: wd.Text, Line: ln, Ch: wd.St})
		return
	case token.Keyword, token.Signal:
		tk.Code, _ = sc.Table.Lookup(wd.Text)
	case token.Identifier:
		tk.Code = codes.Identifier
		count(&rs.Idents, wd.Text)
	case token.Number:
		tk.Code = codes.Number
		count(&rs.Numbers, wd.Text)
	}
	rs.Tokens = append(rs.Tokens, tk)
}
