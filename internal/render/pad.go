package render

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/roach88/sequ/internal/ir"
	"github.com/roach88/sequ/internal/sequence"
)

// Padder left-fills items to a common width.
type Padder struct {
	fill      rune
	width     int
	signAware bool
}

// NewPadder measures items under req's width mode. Items with Valid=false
// do not count toward the width. With WidthNone the Padder is a no-op.
func NewPadder(req ir.Request, items iter.Seq[sequence.Value]) Padder {
	fill := req.Fill()
	if fill == 0 {
		return Padder{}
	}

	width := 0
	for v := range items {
		if !v.Valid {
			continue
		}
		if n := utf8.RuneCountInString(v.Text); n > width {
			width = n
		}
	}
	return Padder{
		fill:  fill,
		width: width,
		// Zero fill goes after the sign: -5 becomes -05, not 0-5.
		signAware: req.Width == ir.WidthEqual && req.Notation.IsNumeric(),
	}
}

// Width returns the measured width, or 0 for a no-op Padder.
func (p Padder) Width() int {
	return p.width
}

// Pad returns text left-filled to the measured width.
func (p Padder) Pad(text string) string {
	if p.fill == 0 {
		return text
	}
	missing := p.width - utf8.RuneCountInString(text)
	if missing <= 0 {
		return text
	}
	fill := strings.Repeat(string(p.fill), missing)
	if p.signAware && (strings.HasPrefix(text, "-") || strings.HasPrefix(text, "+")) {
		return text[:1] + fill + text[1:]
	}
	return fill + text
}
