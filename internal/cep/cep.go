// Package cep resolves Brazilian postal codes into street-level addresses
// through a ViaCEP-compatible directory service.
package cep

import "strings"

// Length is how many digits a complete CEP has.
const Length = 8

// Normalize strips everything but digits and truncates to the CEP length.
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == Length {
				break
			}
		}
	}
	return b.String()
}

// Format renders normalized digits as NNNNN-NNN once there are enough of
// them; shorter inputs come back as-is.
func Format(digits string) string {
	if len(digits) <= 5 {
		return digits
	}
	return digits[:5] + "-" + digits[5:]
}

// Complete reports whether the normalized code has every digit, i.e. a
// lookup may be issued.
func Complete(digits string) bool {
	return len(digits) == Length
}
