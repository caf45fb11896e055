// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import "fmt"

// Error is an invalid word found while scanning: either a single rune
// that cannot start any word, or a run of marks that is not a
// registered symbol.
type Error struct {

	// Text is the invalid text.
	Text string

	// Line is the 0-based line number.
	Line int

	// Ch is the 0-based rune index of the start of the text.
	Ch int
}

// Error returns the message written to the errors report.
func (er *Error) Error() string {
	return fmt.Sprintf("Detected a invalid word \"%s\" on line %d.", er.Text, er.Line)
}
