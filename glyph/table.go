package glyph

import (
	"fmt"
	"strings"
)

const (
	// Rows is the height of a glyph in lines.
	Rows = 3
	// Width is the width of a glyph in columns.
	Width = 3
	// Digits is the number of glyphs in one entry.
	Digits = 9
	// LineWidth is the number of columns covered by one entry.
	LineWidth = Width * Digits

	// Unknown is emitted for a glyph that matches no known pattern.
	Unknown byte = '?'
)

// alphabet lists the only characters a glyph row may contain.
const alphabet = " _|"

// Pattern is one glyph: three rows of exactly three characters each.
type Pattern [Rows]string

// String returns the pattern rows joined by newlines.
func (p Pattern) String() string {
	return strings.Join(p[:], "\n")
}

var canonical = [10]Pattern{
	{" _ ", "| |", "|_|"},
	{"   ", "  |", "  |"},
	{" _ ", " _|", "|_ "},
	{" _ ", " _|", " _|"},
	{"   ", "|_|", "  |"},
	{" _ ", "|_ ", " _|"},
	{" _ ", "|_ ", "|_|"},
	{" _ ", "  |", "  |"},
	{" _ ", "|_|", "|_|"},
	{" _ ", "|_|", " _|"},
}

// table is read-only after init.
var table = mustBuildTable(canonical)

// mustBuildTable indexes patterns by shape and panics if two digits share a
// pattern or any row falls outside the glyph alphabet.
func mustBuildTable(patterns [10]Pattern) map[Pattern]byte {
	t, err := buildTable(patterns)
	if err != nil {
		panic(err)
	}
	return t
}

func buildTable(patterns [10]Pattern) (map[Pattern]byte, error) {
	t := make(map[Pattern]byte, len(patterns))
	for d, p := range patterns {
		digit := byte('0' + d)
		for r, row := range p {
			if len(row) != Width {
				return nil, fmt.Errorf("glyph %c: row %d has width %d, want %d", digit, r, len(row), Width)
			}
			if strings.Trim(row, alphabet) != "" {
				return nil, fmt.Errorf("glyph %c: row %d contains characters outside %q", digit, r, alphabet)
			}
		}
		if prev, ok := t[p]; ok {
			return nil, fmt.Errorf("glyph %c: pattern already assigned to %c", digit, prev)
		}
		t[p] = digit
	}
	return t, nil
}

// Lookup returns the digit drawn by p. It reports false for any pattern that
// is not one of the ten canonical glyphs.
func Lookup(p Pattern) (byte, bool) {
	d, ok := table[p]
	return d, ok
}

// PatternOf returns the canonical glyph for the digit d ('0' through '9').
func PatternOf(d byte) (Pattern, bool) {
	if d < '0' || d > '9' {
		return Pattern{}, false
	}
	return canonical[d-'0'], true
}
