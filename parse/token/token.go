// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines the symbols and tokens produced by the scanner,
// the categories a scanned word can fall into, and the reserved
// class codes for identifiers, numbers and the end of stream.
package token

import (
	"fmt"
	"strconv"
)

// Codes holds the reserved class codes. They are never assigned
// to a symbol read from a symbol definition file.
type Codes struct {

	// Identifier is the class code of every identifier token.
	Identifier int

	// Number is the class code of every numeric literal token.
	Number int

	// EOF is the class code of the end-of-stream token.
	EOF int
}

// DefaultCodes are the standard reserved class codes.
var DefaultCodes = Codes{Identifier: 11, Number: 12, EOF: -1}

// IsReserved returns true if given code is one of the reserved codes.
func (cd Codes) IsReserved(code int) bool {
	return code == cd.Identifier || code == cd.Number || code == cd.EOF
}

const (
	// EOLText is the text of the synthesized line-terminator symbol.
	EOLText = "\n"

	// EOFText is the text of the synthesized end-of-stream symbol.
	EOFText = "EOF"
)

// Symbol is a piece of text with its class code: either an entry
// of the symbol table or a literal carrying a reserved code.
type Symbol struct {
	Text string
	Code int
}

// String returns the symbol in the tokens report format: "text code".
func (sy Symbol) String() string {
	return sy.Text + " " + strconv.Itoa(sy.Code)
}

// Category is the classification of a scanned word.
//
//go:generate stringer -type=Category
type Category int32

const (
	// Nothing means only trailing spaces were left on the line.
	Nothing Category = iota

	// Error is an invalid character or an unregistered mark run.
	Error

	// Keyword is a letter run that is registered in the symbol table.
	Keyword

	// Number is a digit run with at most one '.'.
	Number

	// Signal is a registered operator or punctuation mark run.
	Signal

	// Identifier is a letter run that is not registered.
	Identifier

	// EOL is the synthesized line terminator.
	EOL

	// EOS is the synthesized end of stream.
	EOS

	CategoryN
)

// IsToken returns true if a word of this category goes on the token stream.
func (ct Category) IsToken() bool {
	return ct >= Keyword
}

// Token is a [Symbol] emitted during scanning, with its category
// and 0-based line and rune position in the source.
type Token struct {
	Symbol

	Cat Category

	// Line is the 0-based source line.
	Line int

	// Ch is the 0-based rune index where the token starts.
	Ch int
}

// GoString is used for debug output.
func (tk Token) GoString() string {
	return fmt.Sprintf("%d:%d %v %q %d", tk.Line, tk.Ch, tk.Cat, tk.Text, tk.Code)
}
