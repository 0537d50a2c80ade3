// Package glyph recognizes policy numbers drawn as 3x3 character glyphs.
//
// Each digit of a policy number is drawn with the characters ' ', '_' and '|'
// in a block three rows high and three columns wide:
//
//	    _  _     _  _  _  _  _
//	  | _| _||_||_ |_   ||_||_|
//	  ||_  _|  | _||_|  ||_| _|
//
// Nine digits sit side by side, so an entry occupies three lines of 27
// columns.
//
// # Lookup
//
// [Lookup] maps a single [Pattern] to its digit. The table is fixed at ten
// patterns and is verified when the package is initialized: a pattern that
// maps to two digits, or a malformed row, is a programming error and panics.
//
// # Recognition
//
// [Recognize] slices three glyph lines into nine windows and resolves each
// one. Windows that do not match a known pattern become [Unknown] ('?') so a
// single smudged digit never fails the entire entry. Lines shorter than 27
// columns are padded with spaces.
//
//	number := glyph.Recognize([3]string{row0, row1, row2})
//
// [Render] is the inverse and draws a 9-digit number as three glyph rows.
package glyph
