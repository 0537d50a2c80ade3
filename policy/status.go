package policy

import (
	"fmt"
	"strings"
)

// Illegible marks a digit that could not be recognized.
const Illegible = '?'

// Status is the outcome of validating one policy number.
type Status int

// The zero Status is not a valid outcome, so an unset Status never reads as OK.
const (
	// OK means every digit was recognized and the checksum holds.
	OK Status = iota + 1
	// ILL means at least one digit was illegible.
	ILL
	// ERR means every digit was recognized but the checksum failed.
	ERR
)

// String returns the report label for the status.
func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case ILL:
		return "ILL"
	case ERR:
		return "ERR"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ParseStatus converts a report label back into a Status. Matching is
// case-insensitive and ignores surrounding spaces.
func ParseStatus(label string) (Status, error) {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "OK":
		return OK, nil
	case "ILL":
		return ILL, nil
	case "ERR":
		return ERR, nil
	default:
		return 0, fmt.Errorf("unknown status %q", label)
	}
}

// Classify determines the status of number. Illegible digits take precedence
// over the checksum.
func Classify(number string) Status {
	if strings.IndexByte(number, Illegible) >= 0 {
		return ILL
	}
	if IsValid(number) {
		return OK
	}
	return ERR
}

// Format returns the report line for number: the bare number when it is OK,
// otherwise the number followed by a space and its status.
func Format(number string) string {
	return FormatStatus(number, Classify(number))
}

// FormatStatus renders number with an already computed status.
func FormatStatus(number string, s Status) string {
	if s == OK {
		return number
	}
	return number + " " + s.String()
}
