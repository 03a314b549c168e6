package numeral

import (
	"strconv"
	"strings"

	"github.com/roach88/sequ/internal/ir"
)

// InferPrecision returns the largest number of decimal places among the
// given decimal literals, treating exponents the way a decimal type does:
// "1.50" has 2 places, "2.5e-3" has 4, "1e2" has 0.
func InferPrecision(literals ...string) (int, error) {
	most := 0
	for _, lit := range literals {
		places, err := DecimalPlaces(lit)
		if err != nil {
			return 0, err
		}
		if places > most {
			most = places
		}
	}
	return most, nil
}

// DecimalPlaces returns the number of digits after the decimal point that
// lit needs to be rendered losslessly.
func DecimalPlaces(lit string) (int, error) {
	if !IsFloat(lit) {
		return 0, ir.Errorf(ir.ErrCodeTypeMismatch, lit, "not a decimal number")
	}

	mantissa, exp := strings.TrimLeft(lit, "+-"), 0
	if i := strings.IndexAny(mantissa, "eE"); i >= 0 {
		e, err := strconv.Atoi(mantissa[i+1:])
		if err != nil {
			return 0, ir.Errorf(ir.ErrCodeTypeMismatch, lit, "bad exponent")
		}
		mantissa, exp = mantissa[:i], e
	}

	frac := 0
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		frac = len(mantissa) - i - 1
	}
	if places := frac - exp; places > 0 {
		return places, nil
	}
	return 0, nil
}
