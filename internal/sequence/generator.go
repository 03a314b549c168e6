package sequence

import (
	"errors"
	"iter"
	"math"
	"math/big"
	"strconv"

	"github.com/roach88/sequ/internal/ir"
	"github.com/roach88/sequ/internal/numeral"
)

// floatTolerance is added to the end bound in the direction of travel so
// that a value meant to land exactly on end survives rounding error.
const floatTolerance = 1e-11

// Generator produces the items of one request.
type Generator struct {
	notation ir.Notation

	start, end, inc    int64
	fstart, fend, finc float64
	format             ir.FloatFormat

	numberLines bool
	halted      bool
}

// New resolves the literals of req for its notation.
//
// The increment is checked first, then start, then end (skipped in
// number-lines mode). Increments must be integers for arabic and alpha,
// decimals for floating, and numerals of the same case for roman.
func New(req ir.Request) (*Generator, error) {
	g := &Generator{notation: req.Notation, numberLines: req.NumberLines}

	var err error
	switch req.Notation {
	case ir.Arabic:
		err = g.resolveArabic(req)
	case ir.Floating:
		err = g.resolveFloating(req)
	case ir.AlphaLower, ir.AlphaUpper:
		err = g.resolveAlpha(req)
	case ir.RomanLower, ir.RomanUpper:
		err = g.resolveRoman(req)
	default:
		err = ir.Errorf(ir.ErrCodeTypeMismatch, string(req.Notation), "unknown notation")
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Generator) resolveArabic(req ir.Request) error {
	inc, err := parseIntIncrement(req.Increment)
	if err != nil {
		return err
	}
	g.inc = inc

	if g.start, err = numeral.ParseInt(req.Start); err != nil {
		return mixedTypes(err, "integers")
	}
	if !req.NumberLines {
		if g.end, err = numeral.ParseInt(req.End); err != nil {
			return mixedTypes(err, "integers")
		}
	}
	return nil
}

func (g *Generator) resolveFloating(req ir.Request) error {
	inc, err := numeral.ParseFloat(req.Increment)
	if err != nil {
		return ir.Errorf(ir.ErrCodeTypeMismatch, req.Increment, "increment must be a floating point number")
	}
	if inc == 0 {
		return ir.Errorf(ir.ErrCodeZeroIncrement, req.Increment, "invalid increment, cannot be zero")
	}
	g.finc = inc

	if g.fstart, err = numeral.ParseFloat(req.Start); err != nil {
		return mixedTypes(err, "floats")
	}
	literals := []string{req.Start, req.Increment}
	if !req.NumberLines {
		if g.fend, err = numeral.ParseFloat(req.End); err != nil {
			return mixedTypes(err, "floats")
		}
		literals = append(literals, req.End)
	}

	if req.Format != nil {
		g.format = *req.Format
		return nil
	}
	precision, err := numeral.InferPrecision(literals...)
	if err != nil {
		return err
	}
	g.format = ir.FixedPrecision(precision)
	return nil
}

func (g *Generator) resolveAlpha(req ir.Request) error {
	inc, err := parseIntIncrement(req.Increment)
	if err != nil {
		return err
	}
	g.inc = inc

	upper := req.Notation.Upper()
	if g.start, err = numeral.ParseLetter(req.Start, upper); err != nil {
		return err
	}
	if req.NumberLines {
		return nil
	}
	if g.end, err = numeral.ParseLetter(req.End, upper); err != nil {
		return err
	}
	// A disagreeing increment ends the run quietly rather than failing.
	g.halted = (inc > 0 && g.start > g.end) || (inc < 0 && g.start < g.end)
	return nil
}

func (g *Generator) resolveRoman(req ir.Request) error {
	upper := req.Notation.Upper()

	var err error
	if g.inc, err = numeral.ParseRoman(req.Increment, upper); err != nil {
		return err
	}
	if g.start, err = numeral.ParseRoman(req.Start, upper); err != nil {
		return err
	}
	if !req.NumberLines {
		if g.end, err = numeral.ParseRoman(req.End, upper); err != nil {
			return err
		}
	}
	return nil
}

// Halted reports whether an alpha range was abandoned because the increment
// points away from end. Such a run prints nothing at all.
func (g *Generator) Halted() bool {
	return g.halted
}

// Policy returns how Number treats values past the notation's domain.
func (g *Generator) Policy() OverflowPolicy {
	if g.notation.Bounded() {
		return StopNumberingOnOverflow
	}
	return NeverOverflows
}

// Values yields the range from start to end inclusive. The sequence is
// empty when the increment's sign disagrees with the direction of travel.
func (g *Generator) Values() iter.Seq[Value] {
	if g.notation == ir.Floating {
		return g.floatRange()
	}
	return func(yield func(Value) bool) {
		if g.numberLines || g.halted {
			return
		}
		for n := range intRange(g.start, g.end, g.inc) {
			if !yield(g.render(n)) {
				return
			}
		}
	}
}

func (g *Generator) floatRange() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		if g.numberLines {
			return
		}
		for i := 0; ; i++ {
			v := g.fstart + float64(i)*g.finc
			if g.finc > 0 && !(v < g.fend+floatTolerance) {
				return
			}
			if g.finc < 0 && !(v > g.fend-floatTolerance) {
				return
			}
			if !yield(g.renderFloat(v)) {
				return
			}
		}
	}
}

// Number yields count items, the i-th being start + i*increment.
//
// Arabic fails with OUT_OF_RANGE if the last item would overflow int64.
// Alpha and roman never fail: under StopNumberingOnOverflow the first
// unrepresentable item and all after it come back with Valid=false.
func (g *Generator) Number(count int) (iter.Seq[Value], error) {
	if count < 0 {
		count = 0
	}
	switch g.notation {
	case ir.Floating:
		return func(yield func(Value) bool) {
			for i := 0; i < count; i++ {
				if !yield(g.renderFloat(g.fstart + float64(i)*g.finc)) {
					return
				}
			}
		}, nil
	case ir.Arabic:
		if count > 0 {
			last := new(big.Int).Mul(big.NewInt(g.inc), big.NewInt(int64(count-1)))
			last.Add(last, big.NewInt(g.start))
			if !last.IsInt64() {
				return nil, ir.Errorf(ir.ErrCodeOutOfRange, "", "line number exceeds integer range after %d lines", count)
			}
		}
	}

	return func(yield func(Value) bool) {
		n, stopped := g.start, false
		for i := 0; i < count; i++ {
			if i > 0 && !stopped {
				var ok bool
				if n, ok = addChecked(n, g.inc); !ok {
					stopped = true
				}
			}
			v := Value{}
			if !stopped {
				v = g.render(n)
				stopped = !v.Valid
			}
			if !yield(v) {
				return
			}
		}
	}, nil
}

// render turns an integer-domain value into an item.
func (g *Generator) render(n int64) Value {
	v := Value{Int: n}
	switch {
	case g.notation.IsAlpha():
		v.Text, v.Valid = numeral.FormatLetter(n, g.notation.Upper())
	case g.notation.IsRoman():
		v.Text, v.Valid = numeral.FormatRoman(n, g.notation.Upper())
	default:
		v.Text, v.Valid = strconv.FormatInt(n, 10), true
	}
	return v
}

func (g *Generator) renderFloat(f float64) Value {
	return Value{Float: f, Text: numeral.FormatFloat(g.format, f), Valid: true}
}

// intRange yields start, start+inc, ... while not past end. Distances are
// taken in uint64 so bounds near the int64 limits cannot overflow.
func intRange(start, end, inc int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		if (inc > 0 && start > end) || (inc < 0 && start < end) || inc == 0 {
			return
		}
		step := magnitude(inc)
		for n := start; ; n += inc {
			if !yield(n) {
				return
			}
			var remaining uint64
			if inc > 0 {
				remaining = uint64(end) - uint64(n)
			} else {
				remaining = uint64(n) - uint64(end)
			}
			if remaining < step {
				return
			}
		}
	}
}

// Len returns how many items Values yields for an integer-domain range.
func Len(start, end, inc int64) uint64 {
	if (inc > 0 && start > end) || (inc < 0 && start < end) || inc == 0 {
		return 0
	}
	if inc > 0 {
		return (uint64(end)-uint64(start))/magnitude(inc) + 1
	}
	return (uint64(start)-uint64(end))/magnitude(inc) + 1
}

func magnitude(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

func addChecked(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

func parseIntIncrement(lit string) (int64, error) {
	inc, err := numeral.ParseInt(lit)
	if err != nil {
		if ir.IsCode(err, ir.ErrCodeOutOfRange) {
			return 0, err
		}
		return 0, ir.Errorf(ir.ErrCodeTypeMismatch, lit, "increment must be an integer")
	}
	if inc == 0 {
		return 0, ir.Errorf(ir.ErrCodeZeroIncrement, lit, "invalid increment, cannot be zero")
	}
	return inc, nil
}

// mixedTypes rewords a bound parse failure; overflow keeps its own code.
func mixedTypes(err error, kind string) error {
	if ir.IsCode(err, ir.ErrCodeOutOfRange) {
		return err
	}
	var input string
	var e *ir.Error
	if errors.As(err, &e) {
		input = e.Input
	}
	return ir.Errorf(ir.ErrCodeTypeMismatch, input, "mixed types, both start and end must be %s", kind)
}
