package ir

import "fmt"

// Notation selects the numbering system a sequence is rendered in.
type Notation string

const (
	Arabic     Notation = "arabic"
	Floating   Notation = "floating"
	AlphaLower Notation = "alpha"
	AlphaUpper Notation = "ALPHA"
	RomanLower Notation = "roman"
	RomanUpper Notation = "ROMAN"
)

// Notations lists every supported notation in the order the format-word
// option documents them.
var Notations = []Notation{Arabic, Floating, AlphaLower, AlphaUpper, RomanLower, RomanUpper}

// ParseNotation converts a format word into a Notation.
// Matching is exact: "alpha" and "ALPHA" are different notations.
func ParseNotation(word string) (Notation, error) {
	for _, n := range Notations {
		if string(n) == word {
			return n, nil
		}
	}
	return "", &Error{
		Code:    ErrCodeTypeMismatch,
		Message: fmt.Sprintf("invalid format word: must be one of %v", Notations),
		Input:   word,
	}
}

// IsAlpha reports whether n is alpha or ALPHA.
func (n Notation) IsAlpha() bool {
	return n == AlphaLower || n == AlphaUpper
}

// IsRoman reports whether n is roman or ROMAN.
func (n Notation) IsRoman() bool {
	return n == RomanLower || n == RomanUpper
}

// IsNumeric reports whether n renders digits (and so zero-fills).
func (n Notation) IsNumeric() bool {
	return n == Arabic || n == Floating
}

// Upper reports whether the notation renders upper-case symbols.
func (n Notation) Upper() bool {
	return n == AlphaUpper || n == RomanUpper
}

// Bounded reports whether the notation has a finite representable domain.
// Line numbering stops silently once a bounded notation runs out.
func (n Notation) Bounded() bool {
	return n.IsAlpha() || n.IsRoman()
}

func (n Notation) String() string {
	return string(n)
}
