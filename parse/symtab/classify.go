// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symtab

import (
	"cogentcore.org/lexscan/base/logx"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CharClass is the class of a single rune for scanning purposes.
type CharClass int32

const (
	// Other runes cannot start any valid token.
	Other CharClass = iota
	Letter
	Digit

	// Mark runes appear in some registered symbol and are not letters.
	Mark
)

// IsLetter returns true for ASCII a-z and A-Z only.
func IsLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// IsDigit returns true for ASCII 0-9 only.
func IsDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// Classifier classifies runes as letters, digits, marks or other,
// where the set of mark runes comes from a [Table].
type Classifier struct {
	marks map[rune]struct{}
}

// NewClassifier returns a [Classifier] whose mark set is every
// non-letter rune of every symbol registered in the given table,
// other than the line terminator.
func NewClassifier(tb *Table) *Classifier {
	cl := &Classifier{marks: make(map[rune]struct{})}
	for _, tx := range tb.syms.Keys {
		if tx == tb.eol.Text {
			continue
		}
		for _, r := range tx {
			if !IsLetter(r) {
				cl.marks[r] = struct{}{}
			}
		}
	}
	logx.PrintlnDebug("symtab: marks:", string(cl.Marks()))
	return cl
}

// IsMark returns true if the rune is in the mark set.
func (cl *Classifier) IsMark(r rune) bool {
	_, ok := cl.marks[r]
	return ok
}

// Class returns the class of the given rune. Letters and digits
// take precedence over marks, so a digit appearing in a symbol
// is still classified as [Digit].
func (cl *Classifier) Class(r rune) CharClass {
	switch {
	case IsLetter(r):
		return Letter
	case IsDigit(r):
		return Digit
	case cl.IsMark(r):
		return Mark
	}
	return Other
}

// Marks returns the mark set in sorted order.
func (cl *Classifier) Marks() []rune {
	mk := maps.Keys(cl.marks)
	slices.Sort(mk)
	return mk
}
