package ir

// WidthMode selects how rendered items are equalized.
type WidthMode int

const (
	// WidthNone emits each item as rendered.
	WidthNone WidthMode = iota
	// WidthEqual left-fills every item to the widest item using the
	// notation's natural fill: '0' for numeric notations, ' ' otherwise.
	WidthEqual
	// WidthPad left-fills every item to the widest item using Request.Pad.
	WidthPad
)

func (m WidthMode) String() string {
	switch m {
	case WidthEqual:
		return "equal"
	case WidthPad:
		return "pad"
	default:
		return "none"
	}
}

// ParseWidthMode is the inverse of WidthMode.String.
func ParseWidthMode(s string) (WidthMode, bool) {
	switch s {
	case "", "none":
		return WidthNone, true
	case "equal":
		return WidthEqual, true
	case "pad":
		return WidthPad, true
	}
	return WidthNone, false
}

// DefaultSeparator is used between items unless the caller sets one.
const DefaultSeparator = "\n"

// DefaultPad is the fill character for the pad mode when none is given.
const DefaultPad = ' '

// FloatFormat is a parsed single-conversion printf directive, e.g. "%.3f"
// or "x=%08.2e;". It is always built by numeral.ParseFloatFormat or
// directly with a precision, never by editing format text.
type FloatFormat struct {
	Prefix    string
	Suffix    string
	Flags     string // any of "-+ #0"
	Width     int    // 0 means unset
	Precision int    // -1 means the verb's default
	Verb      byte   // one of f F e E g G d i
}

// FixedPrecision returns the "%.Nf" format used when precision is inferred.
func FixedPrecision(precision int) FloatFormat {
	return FloatFormat{Precision: precision, Verb: 'f'}
}

// Request is a validated sequence request. It is built once by the command
// layer and handed to the core by value; nothing in the core mutates it.
type Request struct {
	Notation Notation

	// Start, End and Increment are the literal arguments. End is unused in
	// number-lines mode, where the input line count bounds the run.
	Start     string
	End       string
	Increment string

	Separator string
	Width     WidthMode
	Pad       rune

	// Format is the explicit numeric format. Nil means the precision is
	// inferred from Start, End and Increment.
	Format *FloatFormat

	NumberLines bool
}

// Fill returns the character used to left-fill items under the request's
// width mode, or 0 when items are not filled.
func (r Request) Fill() rune {
	switch r.Width {
	case WidthEqual:
		if r.Notation.IsNumeric() {
			return '0'
		}
		return ' '
	case WidthPad:
		if r.Pad == 0 {
			return DefaultPad
		}
		return r.Pad
	}
	return 0
}
