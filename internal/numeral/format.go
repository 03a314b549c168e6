package numeral

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/sequ/internal/ir"
)

// ParseFloatFormat parses a printf-style string holding exactly one numeric
// conversion, e.g. "%.2f", "%08.3e" or "step %g". Literal text around the
// directive is kept, and "%%" is a literal percent sign.
func ParseFloatFormat(s string) (ir.FloatFormat, error) {
	invalid := func(reason string) (ir.FloatFormat, error) {
		return ir.FloatFormat{}, ir.Errorf(ir.ErrCodeInvalidFormat, s, "invalid format: %s", reason)
	}

	var (
		f     = ir.FloatFormat{Precision: -1}
		found bool
		lit   strings.Builder
	)
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			lit.WriteByte(s[i])
			continue
		}
		i++
		if i >= len(s) {
			return invalid("incomplete directive")
		}
		if s[i] == '%' {
			lit.WriteByte('%')
			continue
		}
		if found {
			return invalid("more than one directive")
		}
		found = true
		f.Prefix = lit.String()
		lit.Reset()

		for i < len(s) && strings.IndexByte("-+ #0", s[i]) >= 0 {
			if strings.IndexByte(f.Flags, s[i]) < 0 {
				f.Flags += string(s[i])
			}
			i++
		}
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i > start {
			f.Width, _ = strconv.Atoi(s[start:i])
		}
		if i < len(s) && s[i] == '.' {
			i++
			start = i
			for i < len(s) && isDigit(s[i]) {
				i++
			}
			f.Precision = 0
			if i > start {
				f.Precision, _ = strconv.Atoi(s[start:i])
			}
		}
		for i < len(s) && strings.IndexByte("hlL", s[i]) >= 0 {
			i++
		}
		if i >= len(s) {
			return invalid("incomplete directive")
		}
		switch s[i] {
		case 'f', 'F', 'e', 'E', 'g', 'G', 'd', 'i':
			f.Verb = s[i]
		case 'u':
			f.Verb = 'd'
		default:
			return invalid(fmt.Sprintf("%%%c is not a numeric conversion", s[i]))
		}
	}
	if !found {
		return invalid("no conversion directive")
	}
	f.Suffix = lit.String()
	return f, nil
}

// FormatFloat applies f to v. Integer verbs truncate toward zero.
func FormatFloat(f ir.FloatFormat, v float64) string {
	var directive strings.Builder
	directive.WriteByte('%')
	directive.WriteString(f.Flags)
	if f.Width > 0 {
		directive.WriteString(strconv.Itoa(f.Width))
	}

	precision := f.Precision
	verb := f.Verb
	if verb == 0 {
		verb = 'f'
	}
	if precision < 0 && (verb == 'g' || verb == 'G') {
		precision = 6
	}
	if precision >= 0 {
		directive.WriteByte('.')
		directive.WriteString(strconv.Itoa(precision))
	}

	var body string
	switch verb {
	case 'd', 'i':
		directive.WriteByte('d')
		body = fmt.Sprintf(directive.String(), int64(v))
	default:
		directive.WriteByte(verb)
		body = fmt.Sprintf(directive.String(), v)
	}
	return f.Prefix + body + f.Suffix
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
