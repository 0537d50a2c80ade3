package glyph

import (
	"strings"
	"testing"
)

func repeat(p Pattern) [Rows]string {
	var lines [Rows]string
	for r := range lines {
		lines[r] = strings.Repeat(p[r], Digits)
	}
	return lines
}

func TestLookup_Canonical(t *testing.T) {
	for d := byte('0'); d <= '9'; d++ {
		p, ok := PatternOf(d)
		if !ok {
			t.Fatalf("PatternOf(%q) reported no pattern", d)
		}
		got, ok := Lookup(p)
		if !ok || got != d {
			t.Errorf("Lookup(PatternOf(%q)) = %q, %v; want %q, true", d, got, ok, d)
		}
	}
}

func TestLookup_Misses(t *testing.T) {
	tests := []struct {
		name string
		p    Pattern
	}{
		{"blank", Pattern{"   ", "   ", "   "}},
		{"half zero", Pattern{" _ ", "| |", "   "}},
		{"padded one", Pattern{"    ", "   |", "   |"}},
		{"short rows", Pattern{" _", "| |", "|_|"}},
		{"stray character", Pattern{" _ ", "|x|", "|_|"}},
	}

	for _, tt := range tests {
		if d, ok := Lookup(tt.p); ok {
			t.Errorf("%s: Lookup() = %q, want miss", tt.name, d)
		}
	}
}

func TestPatternOf_NonDigit(t *testing.T) {
	for _, d := range []byte{'?', 'a', ' ', '/', ':'} {
		if _, ok := PatternOf(d); ok {
			t.Errorf("PatternOf(%q) reported a pattern", d)
		}
	}
}

func TestBuildTable_RejectsDuplicates(t *testing.T) {
	patterns := canonical
	patterns[7] = patterns[1]

	if _, err := buildTable(patterns); err == nil {
		t.Error("expected error for duplicate pattern")
	}
}

func TestBuildTable_RejectsMalformedRows(t *testing.T) {
	wide := canonical
	wide[0] = Pattern{" _  ", "| |", "|_|"}
	if _, err := buildTable(wide); err == nil {
		t.Error("expected error for wide row")
	}

	alien := canonical
	alien[0] = Pattern{" - ", "| |", "|_|"}
	if _, err := buildTable(alien); err == nil {
		t.Error("expected error for character outside alphabet")
	}
}

func TestMustBuildTable_Panics(t *testing.T) {
	patterns := canonical
	patterns[3] = patterns[9]

	defer func() {
		if recover() == nil {
			t.Error("expected panic for ambiguous table")
		}
	}()
	mustBuildTable(patterns)
}

func TestRecognize_RepeatedDigits(t *testing.T) {
	for d := byte('0'); d <= '9'; d++ {
		p, _ := PatternOf(d)
		want := strings.Repeat(string(d), Digits)
		if got := Recognize(repeat(p)); got != want {
			t.Errorf("Recognize(%c x9) = %q, want %q", d, got, want)
		}
	}
}

func TestRecognize_Sequence(t *testing.T) {
	lines := [Rows]string{
		"    _  _     _  _  _  _  _ ",
		"  | _| _||_||_ |_   ||_||_|",
		"  ||_  _|  | _||_|  ||_| _|",
	}
	if got := Recognize(lines); got != "123456789" {
		t.Errorf("Recognize() = %q, want %q", got, "123456789")
	}
}

func TestRecognize_UnknownGlyph(t *testing.T) {
	lines, err := Render("490067715")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	// Knock out the bottom-right stroke of the fourth glyph.
	row := []byte(lines[2])
	row[11] = ' '
	lines[2] = string(row)

	got := Recognize(lines)
	if got != "490?67715" {
		t.Errorf("Recognize() = %q, want %q", got, "490?67715")
	}
	if len(got) != Digits {
		t.Errorf("len(Recognize()) = %d, want %d", len(got), Digits)
	}
}

func TestRecognize_ShortLines(t *testing.T) {
	tests := []struct {
		name  string
		lines [Rows]string
		want  string
	}{
		{
			name: "trailing spaces trimmed",
			lines: [Rows]string{
				"",
				"  |  |  |  |  |  |  |  |  |",
				"  |  |  |  |  |  |  |  |  |",
			},
			want: "111111111",
		},
		{
			name: "truncated mid-glyph",
			lines: [Rows]string{
				" _  _  _  _  _  _  _  _  _ ",
				"| || || || || || || || || |",
				"|_||_||_||_||_||_||_||_||_",
			},
			want: "00000000?",
		},
		{
			name:  "all empty",
			lines: [Rows]string{"", "", ""},
			want:  "?????????",
		},
	}

	for _, tt := range tests {
		if got := Recognize(tt.lines); got != tt.want {
			t.Errorf("%s: Recognize() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRecognize_IgnoresExtraColumns(t *testing.T) {
	lines, _ := Render("000000051")
	for r := range lines {
		lines[r] += "   | _ trailing"
	}
	if got := Recognize(lines); got != "000000051" {
		t.Errorf("Recognize() = %q, want %q", got, "000000051")
	}
}

func TestRender_RoundTrip(t *testing.T) {
	for _, number := range []string{"000000000", "123456789", "457508000", "664371495", "999999999"} {
		lines, err := Render(number)
		if err != nil {
			t.Fatalf("Render(%q) error: %v", number, err)
		}
		for r, line := range lines {
			if len(line) != LineWidth {
				t.Errorf("Render(%q) row %d width = %d, want %d", number, r, len(line), LineWidth)
			}
		}
		if got := Recognize(lines); got != number {
			t.Errorf("Recognize(Render(%q)) = %q", number, got)
		}
	}
}

func TestRender_Invalid(t *testing.T) {
	for _, number := range []string{"", "12345678", "1234567890", "86110??36", "12345678a"} {
		if _, err := Render(number); err == nil {
			t.Errorf("Render(%q) expected error", number)
		}
	}
}
