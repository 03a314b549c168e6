package numeral

import (
	"math"
	"strconv"

	"github.com/roach88/sequ/internal/ir"
)

// IsInt reports whether s is an optionally signed base-10 integer literal.
// Magnitude is not checked; ParseInt reports overflow.
func IsInt(s string) bool {
	digits := trimSign(s)
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return false
		}
	}
	return true
}

// IsFloat reports whether s is a finite decimal literal such as "3",
// "-0.25", ".5" or "1e-3". Hex floats, infinities and NaN are rejected.
func IsFloat(s string) bool {
	body := trimSign(s)
	if body == "" {
		return false
	}
	digits := 0
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case isDigit(c):
			digits++
		case c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-':
		default:
			return false
		}
	}
	if digits == 0 {
		return false
	}
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// ParseInt parses an integer literal for the arabic notation.
func ParseInt(s string) (int64, error) {
	if !IsInt(s) {
		return 0, ir.Errorf(ir.ErrCodeTypeMismatch, s, "expected an integer")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ir.Errorf(ir.ErrCodeOutOfRange, s, "integer out of range")
	}
	return n, nil
}

// ParseFloat parses a decimal literal for the floating notation.
func ParseFloat(s string) (float64, error) {
	if !IsFloat(s) {
		return 0, ir.Errorf(ir.ErrCodeTypeMismatch, s, "expected a number")
	}
	v, _ := strconv.ParseFloat(s, 64)
	return v, nil
}

// Classify infers the notation a literal is written in. Candidates are
// tried in a fixed order, so "5" is arabic rather than floating and "i" is
// alpha rather than roman.
func Classify(s string) (ir.Notation, error) {
	switch {
	case IsInt(s):
		return ir.Arabic, nil
	case IsFloat(s):
		return ir.Floating, nil
	case IsLetter(s, false):
		return ir.AlphaLower, nil
	case IsLetter(s, true):
		return ir.AlphaUpper, nil
	case IsRomanLiteral(s, false):
		return ir.RomanLower, nil
	case IsRomanLiteral(s, true):
		return ir.RomanUpper, nil
	}
	return "", ir.Errorf(ir.ErrCodeTypeMismatch, s, "could not infer format word")
}

func trimSign(s string) string {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return s[1:]
	}
	return s
}
