package glyph

import (
	"fmt"
	"strings"
)

// Recognize reads the nine glyphs drawn across lines and returns them as a
// 9-character string. Unrecognized glyphs become Unknown. Columns missing
// from a short line count as spaces and anything past LineWidth is ignored.
func Recognize(lines [Rows]string) string {
	var out [Digits]byte
	for i := 0; i < Digits; i++ {
		var p Pattern
		for r := 0; r < Rows; r++ {
			p[r] = window(lines[r], i*Width)
		}
		if d, ok := Lookup(p); ok {
			out[i] = d
		} else {
			out[i] = Unknown
		}
	}
	return string(out[:])
}

// window returns columns [start, start+Width) of line, space padded.
func window(line string, start int) string {
	if start >= len(line) {
		return strings.Repeat(" ", Width)
	}
	end := start + Width
	if end <= len(line) {
		return line[start:end]
	}
	return line[start:] + strings.Repeat(" ", end-len(line))
}

// Render draws number as three glyph rows of LineWidth columns each.
// number must be exactly Digits characters from '0' to '9'.
func Render(number string) ([Rows]string, error) {
	var rows [Rows]string
	if len(number) != Digits {
		return rows, fmt.Errorf("render %q: need %d digits, got %d", number, Digits, len(number))
	}

	var b [Rows]strings.Builder
	for i := 0; i < len(number); i++ {
		p, ok := PatternOf(number[i])
		if !ok {
			return rows, fmt.Errorf("render %q: invalid digit %q at position %d", number, number[i], i)
		}
		for r := range b {
			b[r].WriteString(p[r])
		}
	}
	for r := range rows {
		rows[r] = b[r].String()
	}
	return rows, nil
}
