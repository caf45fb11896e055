// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexer scans source lines into classified words,
// using a hand-built state machine driven by a [symtab.Table].
package lexer

import (
	"cogentcore.org/lexscan/parse/symtab"
	"cogentcore.org/lexscan/parse/token"
)

// State is a state of the word scanning machine.
type State int32

const (
	// Start is the state before any rune of the word has been consumed.
	Start State = iota

	// Number is an integer digit run.
	Number

	// Fraction is the digit run after the single '.' of a number.
	Fraction

	// WordState is a letter-started run of letters and digits.
	WordState

	// Marks is a run of mark runes where every prefix is registered.
	Marks

	// Invalid is a single rune that cannot start any word.
	Invalid
)

// Action is what a transition does with the current rune.
type Action int32

const (
	// Continue consumes the current rune and keeps scanning.
	Continue Action = iota

	// StopExcluding ends the word before the current rune.
	StopExcluding

	// StopIncluding ends the word after the current rune.
	StopIncluding
)

// Word is the result of scanning one word from a line.
type Word struct {

	// Text is the text of the word.
	Text string

	// St is the rune index where the word starts.
	St int

	// Ed is the rune index just past the word, which is
	// where the next scan starts.
	Ed int

	// Cat is the category of the word.
	Cat token.Category
}

// Scanner scans lines using a symbol table and its classifier.
// It holds no per-scan state, so one Scanner can be used by
// any number of goroutines at once.
type Scanner struct {
	Table *symtab.Table
	Class *symtab.Classifier
}

// NewScanner returns a new [Scanner] for the given symbol table.
func NewScanner(tb *symtab.Table) *Scanner {
	return &Scanner{Table: tb, Class: symtab.NewClassifier(tb)}
}

// Next scans the next word of the line starting at rune index pos.
// Leading spaces are skipped; if only spaces remain the result is
// [token.Nothing] with St and Ed at the end of the line. Otherwise
// at least one rune is always consumed.
func (sc *Scanner) Next(line []rune, pos int) Word {
	for pos < len(line) && line[pos] == ' ' {
		pos++
	}
	if pos >= len(line) {
		return Word{St: len(line), Ed: len(line), Cat: token.Nothing}
	}
	st := pos
	state := Start
	for ; pos < len(line); pos++ {
		var act Action
		state, act = sc.step(state, line, st, pos)
		switch act {
		case StopExcluding:
			return sc.finish(state, line, st, pos)
		case StopIncluding:
			return sc.finish(state, line, st, pos+1)
		}
	}
	return sc.finish(state, line, st, len(line))
}

// step is the transition function: given the current state and the
// rune at pos, it returns the next state and what to do with the rune.
// A run of marks only continues while the text from st through pos
// is itself a registered symbol.
func (sc *Scanner) step(state State, line []rune, st, pos int) (State, Action) {
	r := line[pos]
	switch state {
	case Start:
		switch sc.Class.Class(r) {
		case symtab.Digit:
			return Number, Continue
		case symtab.Letter:
			return WordState, Continue
		case symtab.Mark:
			return Marks, Continue
		}
		return Invalid, StopIncluding
	case Number:
		if symtab.IsDigit(r) {
			return Number, Continue
		}
		if r == '.' {
			return Fraction, Continue
		}
	case Fraction:
		if symtab.IsDigit(r) {
			return Fraction, Continue
		}
	case WordState:
		if symtab.IsLetter(r) || symtab.IsDigit(r) {
			return WordState, Continue
		}
	case Marks:
		if sc.Class.IsMark(r) && sc.Table.Has(string(line[st:pos+1])) {
			return Marks, Continue
		}
	}
	return state, StopExcluding
}

// finish builds the word for line[st:ed], classified by the state
// the machine stopped in.
func (sc *Scanner) finish(state State, line []rune, st, ed int) Word {
	wd := Word{Text: string(line[st:ed]), St: st, Ed: ed}
	switch state {
	case Number, Fraction:
		wd.Cat = token.Number
	case WordState:
		wd.Cat = token.Identifier
		if sc.Table.Has(wd.Text) {
			wd.Cat = token.Keyword
		}
	case Marks:
		wd.Cat = token.Error
		if sc.Table.Has(wd.Text) {
			wd.Cat = token.Signal
		}
	default:
		wd.Cat = token.Error
	}
	return wd
}
