// Package wide converts between UTF-8 byte sequences and the fixed-width
// UTF-16 code-unit form used for separator matching. All functions are pure;
// failures are reported through explicit ok results.
package wide

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Decode converts s to UTF-16 code units. It returns ok=false if s is not
// valid UTF-8.
func Decode(s string) ([]uint16, bool) {
	if !utf8.ValidString(s) {
		return nil, false
	}
	// Comparison during matching is per code unit, so supplementary-plane
	// runes contribute two units.
	return utf16.Encode([]rune(s)), true
}

// Encode converts code units back to a UTF-8 string. It is lossless for any
// sequence produced by Decode.
func Encode(units []uint16) string {
	if len(units) == 0 {
		return ""
	}
	return string(utf16.Decode(units))
}

// Validate scans s and reports whether it is valid UTF-8, along with the
// number of code points it contains. Truncated, overlong and surrogate
// encodings are rejected.
func Validate(s string) (int, bool) {
	count := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return 0, false
		}
		i += size
		count++
	}
	return count, true
}

// ByteLen returns the byte length (1..4) of the UTF-8 encoding that starts
// with leading byte b. The result is only meaningful for leading bytes of
// sequences already known to be valid.
func ByteLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b>>5 == 0x6:
		return 2
	case b>>4 == 0xe:
		return 3
	default:
		return 4
	}
}
