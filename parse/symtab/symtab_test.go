// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symtab

import (
	"strconv"
	"testing"

	"cogentcore.org/lexscan/parse/token"
	"github.com/stretchr/testify/assert"
)

func TestCodesSkipReserved(t *testing.T) {
	var texts []string
	for i := 1; i <= 14; i++ {
		texts = append(texts, "k"+strconv.Itoa(i))
	}
	tb := New(texts, token.DefaultCodes)
	for i := 1; i <= 10; i++ {
		cd, ok := tb.Lookup("k" + strconv.Itoa(i))
		assert.True(t, ok)
		assert.Equal(t, i, cd)
	}
	// 11 and 12 are reserved for identifiers and numbers
	assert.Equal(t, 13, tb.syms.At("k11"))
	assert.Equal(t, 14, tb.syms.At("k12"))
	assert.Equal(t, 16, tb.syms.At("k14"))
	assert.Equal(t, token.Symbol{Text: "\n", Code: 17}, tb.EOL())
	assert.Equal(t, 15, tb.Len())
}

func TestLookup(t *testing.T) {
	tb := New([]string{"+", "+-", "if", "", "IF"}, token.DefaultCodes)
	cd, ok := tb.Lookup("if")
	assert.True(t, ok)
	assert.Equal(t, 3, cd)
	cd, ok = tb.Lookup("IF")
	assert.True(t, ok)
	assert.Equal(t, 5, cd)

	_, ok = tb.Lookup("If")
	assert.False(t, ok)
	assert.False(t, tb.Has("-"))
	assert.True(t, tb.Has("+-"))
	assert.True(t, tb.Has("\n"))
	assert.Equal(t, token.Symbol{Text: "EOF", Code: -1}, tb.EOF())

	assert.Equal(t, []token.Symbol{{Text: "+", Code: 1}, {Text: "+-", Code: 2}, {Text: "if", Code: 3}, {Text: "IF", Code: 5}, {Text: "\n", Code: 6}}, tb.Symbols())
}

func TestBlankLineConsumesCode(t *testing.T) {
	tb := New([]string{"+", "", "if"}, token.DefaultCodes)
	assert.Equal(t, 1, tb.syms.At("+"))
	assert.Equal(t, 3, tb.syms.At("if"))
	assert.Equal(t, token.Symbol{Text: "\n", Code: 4}, tb.EOL())
	assert.False(t, tb.Has(""))
	assert.Equal(t, 3, tb.Len())

	tb = New([]string{"", "", ""}, token.DefaultCodes)
	assert.Equal(t, 4, tb.EOL().Code)
	assert.Equal(t, 1, tb.Len())
	assert.Empty(t, NewClassifier(tb).Marks())
}

func TestDuplicate(t *testing.T) {
	tb := New([]string{"=", "==", "=", "!="}, token.DefaultCodes)
	assert.Equal(t, 1, tb.syms.At("="))
	assert.Equal(t, 4, tb.syms.At("!="))
	assert.Equal(t, 5, tb.EOL().Code)
	assert.Equal(t, 4, tb.Len())
}

func TestCustomCodes(t *testing.T) {
	tb := New([]string{"a", "b", "c"}, token.Codes{Identifier: 1, Number: 3, EOF: 0})
	assert.Equal(t, 2, tb.syms.At("a"))
	assert.Equal(t, 4, tb.syms.At("b"))
	assert.Equal(t, 5, tb.syms.At("c"))
	assert.Equal(t, 6, tb.EOL().Code)
	assert.Equal(t, 0, tb.EOF().Code)
}

func TestSuggest(t *testing.T) {
	tb := New([]string{"<=", ">=", "while", "+"}, token.DefaultCodes)
	sy, ok := tb.Suggest("<==")
	assert.True(t, ok)
	assert.Equal(t, "<=", sy.Text)

	sy, ok = tb.Suggest("whilee")
	assert.True(t, ok)
	assert.Equal(t, token.Symbol{Text: "while", Code: 3}, sy)

	_, ok = tb.Suggest("#")
	assert.False(t, ok)
}

func TestClassifier(t *testing.T) {
	tb := New([]string{"if", "+=", "(", "a1", "..."}, token.DefaultCodes)
	cl := NewClassifier(tb)
	assert.Equal(t, []rune{'(', '+', '.', '1', '='}, cl.Marks())
	assert.False(t, cl.IsMark('\n'))
	assert.False(t, cl.IsMark('a'))

	assert.Equal(t, Letter, cl.Class('Z'))
	assert.Equal(t, Digit, cl.Class('7'))
	assert.Equal(t, Digit, cl.Class('1'))
	assert.Equal(t, Mark, cl.Class('+'))
	assert.Equal(t, Mark, cl.Class('.'))
	assert.Equal(t, Other, cl.Class('#'))
	assert.Equal(t, Other, cl.Class('é'))
	assert.Equal(t, Other, cl.Class(' '))
}

func TestIsLetterDigit(t *testing.T) {
	assert.True(t, IsLetter('a'))
	assert.True(t, IsLetter('Z'))
	assert.False(t, IsLetter('_'))
	assert.False(t, IsLetter('ß'))
	assert.True(t, IsDigit('0'))
	assert.False(t, IsDigit('٣'))
}
