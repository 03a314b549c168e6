package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/roach88/sequ/internal/ir"
	"github.com/roach88/sequ/internal/numeral"
	"github.com/roach88/sequ/internal/profile"
)

// Flags that consume the following token as their value.
var (
	valueShorthands = "fspF"
	valueLongFlags  = map[string]bool{
		"format": true, "separator": true, "seperator": true, "pad": true,
		"format-word": true, "profile": true, "history": true,
		"db": true, "limit": true, "notation": true, "output": true,
		"filter": true, "golden": true,
	}
)

// normalizeArgs lets negative numbers through as positional arguments.
//
// pflag reads "-5" as a cluster of shorthand flags. When a negative number
// appears where an argument is expected, flags are moved to the front and
// every argument follows a "--" terminator. Tokens consumed as flag values
// (as in "-s -1") are left alone.
func normalizeArgs(args []string) []string {
	var (
		flags, positionals []string
		negative           bool
	)
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			positionals = append(positionals, args[i+1:]...)
			i = len(args)
		case isNegativeNumber(a):
			positionals = append(positionals, a)
			negative = true
		case strings.HasPrefix(a, "--"):
			flags = append(flags, a)
			if !strings.Contains(a, "=") && valueLongFlags[a[2:]] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		case strings.HasPrefix(a, "-") && len(a) > 1:
			flags = append(flags, a)
			if shorthandWantsValue(a[1:]) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			positionals = append(positionals, a)
		}
	}
	if !negative {
		return args
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positionals...)
}

func isNegativeNumber(s string) bool {
	return len(s) > 1 && s[0] == '-' && (numeral.IsInt(s) || numeral.IsFloat(s))
}

// shorthandWantsValue reports whether a shorthand cluster such as "ws"
// ends in a value flag with its value in the next token.
func shorthandWantsValue(cluster string) bool {
	for i := 0; i < len(cluster); i++ {
		if strings.IndexByte(valueShorthands, cluster[i]) >= 0 {
			return i == len(cluster)-1
		}
	}
	return false
}

// sequenceArgs validates the argument count once flags are parsed.
func sequenceArgs(opts *RootOptions) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		switch {
		case len(args) == 0:
			return usageError("no arguments")
		case opts.NumberLines && len(args) != 2:
			return usageError("number-lines takes FIRST INCREMENT, got %d arguments", len(args))
		case len(args) < 2 || len(args) > 3:
			return usageError("incorrect number of arguments")
		}
		return nil
	}
}

// buildRequest turns flags, profile defaults and arguments into a request.
// Flags set on the command line win over the profile.
func buildRequest(flags *pflag.FlagSet, opts *RootOptions, prof *profile.Profile, args []string) (ir.Request, error) {
	if prof == nil {
		prof = &profile.Profile{}
	}
	req := ir.Request{NumberLines: opts.NumberLines}

	notation, err := resolveNotation(flags, opts, prof, args)
	if err != nil {
		return ir.Request{}, err
	}
	req.Notation = notation

	switch {
	case opts.NumberLines:
		req.Start, req.Increment = args[0], args[1]
	case len(args) == 3:
		req.Start, req.Increment, req.End = args[0], args[1], args[2]
	default:
		req.Start, req.End = args[0], args[1]
		req.Increment = defaultIncrement(notation)
	}

	req.Separator = ir.NormalizeText(resolveSeparator(flags, opts, prof))

	if req.Width, req.Pad, err = resolveWidth(flags, opts, prof); err != nil {
		return ir.Request{}, err
	}

	format := opts.Format
	if !flags.Changed("format") && prof.Format != nil {
		format = *prof.Format
	}
	if format != "" {
		f, err := numeral.ParseFloatFormat(format)
		if err != nil {
			return ir.Request{}, err
		}
		req.Format = &f
	}
	return req, nil
}

func resolveNotation(flags *pflag.FlagSet, opts *RootOptions, prof *profile.Profile, args []string) (ir.Notation, error) {
	word := opts.FormatWord
	if !flags.Changed("format-word") && prof.Notation != nil {
		word = *prof.Notation
	}
	if word != "" {
		return ir.ParseNotation(word)
	}

	lit := args[len(args)-1]
	if opts.NumberLines {
		lit = args[0]
	}
	return numeral.Classify(lit)
}

func defaultIncrement(n ir.Notation) string {
	switch n {
	case ir.RomanLower:
		return "i"
	case ir.RomanUpper:
		return "I"
	}
	return "1"
}

// resolveSeparator picks the separator. Number-lines mode uses a space
// unless one was asked for.
func resolveSeparator(flags *pflag.FlagSet, opts *RootOptions, prof *profile.Profile) string {
	switch {
	case flags.Changed("separator"):
		return opts.Separator
	case opts.Words:
		return " "
	case prof.Separator != nil:
		return *prof.Separator
	case prof.Words != nil && *prof.Words:
		return " "
	case opts.NumberLines:
		return " "
	}
	return ir.DefaultSeparator
}

func resolveWidth(flags *pflag.FlagSet, opts *RootOptions, prof *profile.Profile) (ir.WidthMode, rune, error) {
	switch {
	case opts.EqualWidth:
		return ir.WidthEqual, 0, nil
	case flags.Changed("pad"):
		pad, err := ir.ParsePad(opts.Pad)
		return ir.WidthPad, pad, err
	case opts.PadSpaces:
		return ir.WidthPad, ' ', nil
	}

	mode := ir.WidthNone
	if prof.Width != nil {
		// Values are checked against the profile schema.
		mode, _ = ir.ParseWidthMode(*prof.Width)
	} else if prof.Pad != nil {
		mode = ir.WidthPad
	}
	if mode != ir.WidthPad || prof.Pad == nil {
		return mode, 0, nil
	}
	pad, err := ir.ParsePad(*prof.Pad)
	return mode, pad, err
}
