package sequence

// Value is one item of a sequence: the domain value and its unpadded
// rendering.
type Value struct {
	// Int holds the integer for arabic and roman, and the code point for
	// alpha.
	Int int64

	// Float holds the value for the floating notation.
	Float float64

	// Text is the rendering. Empty when Valid is false.
	Text string

	// Valid is false when line numbering ran past the notation's domain.
	Valid bool
}

// OverflowPolicy describes what line numbering does when the notation runs
// out of representable values.
type OverflowPolicy int

const (
	// NeverOverflows applies to arabic and floating, which number every line.
	NeverOverflows OverflowPolicy = iota

	// StopNumberingOnOverflow applies to alpha and roman. Once a value falls
	// outside the domain, it and every later line are left unnumbered.
	StopNumberingOnOverflow
)

func (p OverflowPolicy) String() string {
	if p == StopNumberingOnOverflow {
		return "stop_numbering_on_overflow"
	}
	return "never_overflows"
}
