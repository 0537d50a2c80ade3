package policy

import (
	"fmt"
	"testing"
)

func TestChecksum_KnownVectors(t *testing.T) {
	tests := []struct {
		number string
		want   int
	}{
		{"345882865", 0},
		{"111111111", 1},
		{"123456789", 0},
		{"457508000", 0},
		{"664371495", 2},
		{"000000000", 0},
		{"000000001", 1},
		{"999999999", 9},
	}

	for _, tt := range tests {
		got, ok := Checksum(tt.number)
		if !ok {
			t.Errorf("Checksum(%q) reported no value", tt.number)
			continue
		}
		if got != tt.want {
			t.Errorf("Checksum(%q) = %d, want %d", tt.number, got, tt.want)
		}
	}

	if got, _ := Checksum("123456788"); got == 0 {
		t.Error("Checksum(\"123456788\") = 0, want non-zero")
	}
}

func TestChecksum_Preconditions(t *testing.T) {
	for _, number := range []string{"", "12345678", "1234567890", "86110??36", "12345678a", " 23456789", "１２３４５６７８９"} {
		if _, ok := Checksum(number); ok {
			t.Errorf("Checksum(%q) reported a value", number)
		}
		if IsValid(number) {
			t.Errorf("IsValid(%q) = true, want false", number)
		}
	}
}

func TestIsValid_MatchesChecksum(t *testing.T) {
	// Walk a spread of 9-digit numbers and check IsValid agrees with Checksum.
	for n := 0; n < 1000000000; n += 7919 * 1013 {
		s := fmt.Sprintf("%09d", n)
		sum, ok := Checksum(s)
		if !ok {
			t.Fatalf("Checksum(%q) reported no value", s)
		}
		if sum < 0 || sum > 10 {
			t.Errorf("Checksum(%q) = %d, out of range", s, sum)
		}
		if IsValid(s) != (sum == 0) {
			t.Errorf("IsValid(%q) = %v, checksum %d", s, IsValid(s), sum)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		number string
		want   Status
	}{
		{"457508000", OK},
		{"123456789", OK},
		{"664371495", ERR},
		{"111111111", ERR},
		{"86110??36", ILL},
		{"?????????", ILL},
		// 12345?789 would satisfy the checksum if the ? were 6.
		{"12345?789", ILL},
	}

	for _, tt := range tests {
		if got := Classify(tt.number); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.number, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		number string
		want   string
	}{
		{"457508000", "457508000"},
		{"664371495", "664371495 ERR"},
		{"86110??36", "86110??36 ILL"},
		{"123456789", "123456789"},
	}

	for _, tt := range tests {
		if got := Format(tt.number); got != tt.want {
			t.Errorf("Format(%q) = %q, want %q", tt.number, got, tt.want)
		}
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		s    Status
		want string
	}{
		{OK, "OK"},
		{ILL, "ILL"},
		{ERR, "ERR"},
		{Status(0), "Status(0)"},
		{Status(42), "Status(42)"},
	}

	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []Status{OK, ILL, ERR} {
		got, err := ParseStatus(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStatus(%q) = %v, %v", s.String(), got, err)
		}
	}
	if got, err := ParseStatus(" ill "); err != nil || got != ILL {
		t.Errorf("ParseStatus(\" ill \") = %v, %v", got, err)
	}
	if _, err := ParseStatus("AMB"); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestStatus_ZeroValueIsNotOK(t *testing.T) {
	var s Status
	for _, known := range []Status{OK, ILL, ERR} {
		if s == known {
			t.Errorf("zero Status equals %v", known)
		}
	}
	if got := FormatStatus("000000000", s); got == "000000000" {
		t.Errorf("FormatStatus with zero Status = %q, want a flagged line", got)
	}
}
