package numeral

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roach88/sequ/internal/ir"
)

// Roman numerals are limited to the classical range.
const (
	MinRoman = 1
	MaxRoman = 3999
)

// romanTable is ordered by descending value, subtractive pairs included.
var romanTable = []struct {
	value  int64
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"},
	{1, "I"},
}

// symbolValue maps single symbols to their place value.
var symbolValue = map[byte]int64{
	'M': 1000, 'D': 500, 'C': 100, 'L': 50, 'X': 10, 'V': 5, 'I': 1,
}

// IntToRoman renders n as an upper-case canonical Roman numeral.
func IntToRoman(n int64) (string, error) {
	if n < MinRoman || n > MaxRoman {
		return "", ir.Errorf(ir.ErrCodeOutOfRange, "", "roman numerals must be between %d and %d, got %d", MinRoman, MaxRoman, n)
	}

	var b strings.Builder
	for _, entry := range romanTable {
		for n >= entry.value {
			b.WriteString(entry.symbol)
			n -= entry.value
		}
	}
	return b.String(), nil
}

// RomanToInt parses a Roman numeral in either case.
//
// A symbol counts negatively when the next symbol is strictly greater.
// The sum is rendered back with IntToRoman and must reproduce the input,
// so non-canonical spellings such as "IIII" or "VV" are rejected.
func RomanToInt(s string) (int64, error) {
	if s == "" {
		return 0, ir.Errorf(ir.ErrCodeInvalidNumeral, s, "empty roman numeral")
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return 0, ir.Errorf(ir.ErrCodeInvalidNumeral, s, "invalid roman numeral")
		}
	}
	upper := upperCaser().String(s)

	var sum int64
	for i := 0; i < len(upper); i++ {
		value, ok := symbolValue[upper[i]]
		if !ok {
			return 0, ir.Errorf(ir.ErrCodeInvalidNumeral, s, "invalid roman numeral")
		}
		if i+1 < len(upper) {
			if next, ok := symbolValue[upper[i+1]]; ok && next > value {
				value = -value
			}
		}
		sum += value
	}

	canonical, err := IntToRoman(sum)
	if err != nil {
		return 0, ir.Errorf(ir.ErrCodeOutOfRange, s, "roman numerals must be between %d and %d", MinRoman, MaxRoman)
	}
	if canonical != upper {
		return 0, ir.Errorf(ir.ErrCodeInvalidNumeral, s, "invalid roman numeral, canonical form of %d is %s", sum, canonical)
	}
	return sum, nil
}

// IsRomanLiteral reports whether s is non-empty and made only of Roman
// symbols of the given case. It does not check canonical form.
func IsRomanLiteral(s string, upper bool) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !upper {
			c -= 'a' - 'A'
		}
		if _, ok := symbolValue[c]; !ok {
			return false
		}
	}
	return true
}

// ParseRoman parses s as a Roman numeral that must be written in the given
// case. Wrong-case input is a type mismatch; bad numerals fail as in
// RomanToInt.
func ParseRoman(s string, upper bool) (int64, error) {
	if !IsRomanLiteral(s, upper) {
		kind := "lower case roman numeral"
		if upper {
			kind = "upper case roman numeral"
		}
		return 0, ir.Errorf(ir.ErrCodeTypeMismatch, s, "expected a %s", kind)
	}
	return RomanToInt(s)
}

// FormatRoman renders n in the requested case. ok is false when n is
// outside [MinRoman, MaxRoman].
func FormatRoman(n int64, upper bool) (string, bool) {
	s, err := IntToRoman(n)
	if err != nil {
		return "", false
	}
	if !upper {
		s = lowerCaser().String(s)
	}
	return s, true
}

// Casers carry state, so each call gets a fresh one.
func upperCaser() cases.Caser { return cases.Upper(language.Und) }
func lowerCaser() cases.Caser { return cases.Lower(language.Und) }
