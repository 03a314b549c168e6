package numeral

import (
	"unicode/utf8"

	"github.com/roach88/sequ/internal/ir"
)

// CharToInt returns the code point of c.
func CharToInt(c rune) int64 {
	return int64(c)
}

// IntToChar is the inverse of CharToInt.
func IntToChar(n int64) rune {
	return rune(n)
}

// AlphaBounds returns the inclusive code point range of the case variant.
func AlphaBounds(upper bool) (lo, hi int64) {
	if upper {
		return 'A', 'Z'
	}
	return 'a', 'z'
}

// InAlphaRange reports whether n is a letter of the given case.
func InAlphaRange(n int64, upper bool) bool {
	lo, hi := AlphaBounds(upper)
	return n >= lo && n <= hi
}

// IsLetter reports whether s is exactly one ASCII letter of the given case.
func IsLetter(s string, upper bool) bool {
	if utf8.RuneCountInString(s) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return InAlphaRange(CharToInt(r), upper)
}

// ParseLetter returns the code point of a single letter of the given case.
func ParseLetter(s string, upper bool) (int64, error) {
	if !IsLetter(s, upper) {
		kind := "lower case character"
		if upper {
			kind = "upper case character"
		}
		return 0, ir.Errorf(ir.ErrCodeTypeMismatch, s, "expected a single %s", kind)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return CharToInt(r), nil
}

// FormatLetter renders n as a letter. ok is false when n is outside the
// case variant's range.
func FormatLetter(n int64, upper bool) (string, bool) {
	if !InAlphaRange(n, upper) {
		return "", false
	}
	return string(IntToChar(n)), true
}
