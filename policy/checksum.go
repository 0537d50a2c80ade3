// Package policy validates recognized policy numbers.
//
// A policy number is valid when its nine digits d1..d9 (d1 leftmost) satisfy
//
//	(9*d1 + 8*d2 + ... + 2*d8 + 1*d9) mod 11 == 0
//
// [Classify] combines legibility and checksum validity into a [Status], and
// [Format] renders the report line for a number.
package policy

// Length is the number of digits in a policy number.
const Length = 9

// modulus of the weighted checksum.
const modulus = 11

// Checksum returns the weighted digit sum of number modulo 11. It reports
// false when number is not exactly Length characters from '0' to '9', in
// which case no checksum can be computed.
func Checksum(number string) (int, bool) {
	if len(number) != Length {
		return 0, false
	}
	sum := 0
	for i := 0; i < Length; i++ {
		c := number[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		sum += (Length - i) * int(c-'0')
	}
	return sum % modulus, true
}

// IsValid reports whether number is nine digits with a checksum of zero.
// Malformed input is never valid.
func IsValid(number string) bool {
	sum, ok := Checksum(number)
	return ok && sum == 0
}
