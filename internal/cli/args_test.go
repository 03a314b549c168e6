package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sequ/internal/ir"
	"github.com/roach88/sequ/internal/profile"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no negatives", []string{"-s", ",", "1", "5"}, []string{"-s", ",", "1", "5"}},
		{"negative start", []string{"-5", "5"}, []string{"--", "-5", "5"}},
		{"flags before", []string{"-w", "-5", "1", "5"}, []string{"-w", "--", "-5", "1", "5"}},
		{"flags after", []string{"-10", "-2", "-20", "-s", ","}, []string{"-s", ",", "--", "-10", "-2", "-20"}},
		{"negative flag value", []string{"-s", "-1", "1", "3"}, []string{"-s", "-1", "1", "3"}},
		{"attached value", []string{"-s-", "-1", "1"}, []string{"-s-", "--", "-1", "1"}},
		{"cluster ending in value flag", []string{"-ws", "-", "-3", "3"}, []string{"-ws", "-", "--", "-3", "3"}},
		{"long value flag", []string{"--format", "%.1f", "-1.5", "1"}, []string{"--format", "%.1f", "--", "-1.5", "1"}},
		{"long flag with equals", []string{"--pad=*", "-9", "9"}, []string{"--pad=*", "--", "-9", "9"}},
		{"existing terminator", []string{"--", "-3", "3"}, []string{"--", "-3", "3"}},
		{"negative float", []string{"-n", "-0.5", "0.5"}, []string{"-n", "--", "-0.5", "0.5"}},
		{"subcommand untouched", []string{"history", "--db", "runs.db", "--limit", "5"}, []string{"history", "--db", "runs.db", "--limit", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeArgs(tt.args))
		})
	}
}

func parseRequest(t *testing.T, prof *profile.Profile, args ...string) (ir.Request, error) {
	t.Helper()
	opts := &RootOptions{}
	cmd := newRootCommand(opts)
	require.NoError(t, cmd.ParseFlags(normalizeArgs(args)))
	return buildRequest(cmd.Flags(), opts, prof, cmd.Flags().Args())
}

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want ir.Request
	}{
		{
			name: "two arguments",
			args: []string{"1", "10"},
			want: ir.Request{Notation: ir.Arabic, Start: "1", End: "10", Increment: "1", Separator: "\n"},
		},
		{
			name: "three arguments",
			args: []string{"-s", ",", "10", "-2", "0"},
			want: ir.Request{Notation: ir.Arabic, Start: "10", End: "0", Increment: "-2", Separator: ","},
		},
		{
			name: "floating inferred from last",
			args: []string{"1", "2.5"},
			want: ir.Request{Notation: ir.Floating, Start: "1", End: "2.5", Increment: "1", Separator: "\n"},
		},
		{
			name: "alpha inferred",
			args: []string{"-W", "a", "f"},
			want: ir.Request{Notation: ir.AlphaLower, Start: "a", End: "f", Increment: "1", Separator: " "},
		},
		{
			name: "roman default increment",
			args: []string{"-F", "ROMAN", "II", "X"},
			want: ir.Request{Notation: ir.RomanUpper, Start: "II", End: "X", Increment: "I", Separator: "\n"},
		},
		{
			name: "upper roman inferred",
			args: []string{"-F", "roman", "ii", "x"},
			want: ir.Request{Notation: ir.RomanLower, Start: "ii", End: "x", Increment: "i", Separator: "\n"},
		},
		{
			name: "number lines",
			args: []string{"-n", "5", "5"},
			want: ir.Request{Notation: ir.Arabic, Start: "5", Increment: "5", Separator: " ", NumberLines: true},
		},
		{
			name: "number lines infers from first",
			args: []string{"-n", "A", "2"},
			want: ir.Request{Notation: ir.AlphaUpper, Start: "A", Increment: "2", Separator: " ", NumberLines: true},
		},
		{
			name: "number lines explicit newline separator",
			args: []string{"-n", "-s", "\n", "1", "1"},
			want: ir.Request{Notation: ir.Arabic, Start: "1", Increment: "1", Separator: "\n", NumberLines: true},
		},
		{
			name: "separator wins over words",
			args: []string{"-W", "-s", ";", "1", "2"},
			want: ir.Request{Notation: ir.Arabic, Start: "1", End: "2", Increment: "1", Separator: ";"},
		},
		{
			name: "equal width",
			args: []string{"-w", "1", "10"},
			want: ir.Request{Notation: ir.Arabic, Start: "1", End: "10", Increment: "1", Separator: "\n", Width: ir.WidthEqual},
		},
		{
			name: "pad character",
			args: []string{"-p", "*", "1", "10"},
			want: ir.Request{Notation: ir.Arabic, Start: "1", End: "10", Increment: "1", Separator: "\n", Width: ir.WidthPad, Pad: '*'},
		},
		{
			name: "pad spaces",
			args: []string{"-P", "1", "10"},
			want: ir.Request{Notation: ir.Arabic, Start: "1", End: "10", Increment: "1", Separator: "\n", Width: ir.WidthPad, Pad: ' '},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRequest(t, nil, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildRequest_Format(t *testing.T) {
	req, err := parseRequest(t, nil, "-f", "%.3f", "0", "0.1", "1")
	require.NoError(t, err)
	require.NotNil(t, req.Format)
	assert.Equal(t, 3, req.Format.Precision)
	assert.Equal(t, byte('f'), req.Format.Verb)
}

func TestBuildRequest_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code ir.ErrorCode
	}{
		{"unknown format word", []string{"-F", "hex", "1", "2"}, ir.ErrCodeTypeMismatch},
		{"uninferable", []string{"1", "xyz"}, ir.ErrCodeTypeMismatch},
		{"long pad", []string{"-p", "ab", "1", "2"}, ir.ErrCodeInvalidPad},
		{"empty pad", []string{"-p", "", "1", "2"}, ir.ErrCodeInvalidPad},
		{"bad format", []string{"-f", "%d%d", "1", "2"}, ir.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRequest(t, nil, tt.args...)
			assert.True(t, ir.IsCode(err, tt.code), "got %v", err)
		})
	}
}

func TestBuildRequest_Profile(t *testing.T) {
	str := func(s string) *string { return &s }
	yes := true

	t.Run("defaults apply", func(t *testing.T) {
		prof := &profile.Profile{Notation: str("ROMAN"), Separator: str(", "), Width: str("pad"), Pad: str(".")}
		req, err := parseRequest(t, prof, "I", "X")
		require.NoError(t, err)
		assert.Equal(t, ir.RomanUpper, req.Notation)
		assert.Equal(t, "I", req.Increment)
		assert.Equal(t, ", ", req.Separator)
		assert.Equal(t, ir.WidthPad, req.Width)
		assert.Equal(t, '.', req.Pad)
	})

	t.Run("flags override", func(t *testing.T) {
		prof := &profile.Profile{Notation: str("ROMAN"), Separator: str(", "), Width: str("pad"), Format: str("%.2f")}
		req, err := parseRequest(t, prof, "-F", "floating", "-s", ";", "-w", "-f", "%.1f", "1", "2")
		require.NoError(t, err)
		assert.Equal(t, ir.Floating, req.Notation)
		assert.Equal(t, ";", req.Separator)
		assert.Equal(t, ir.WidthEqual, req.Width)
		require.NotNil(t, req.Format)
		assert.Equal(t, 1, req.Format.Precision)
	})

	t.Run("words", func(t *testing.T) {
		req, err := parseRequest(t, &profile.Profile{Words: &yes}, "1", "3")
		require.NoError(t, err)
		assert.Equal(t, " ", req.Separator)
	})

	t.Run("pad alone selects pad mode", func(t *testing.T) {
		req, err := parseRequest(t, &profile.Profile{Pad: str("0")}, "1", "10")
		require.NoError(t, err)
		assert.Equal(t, ir.WidthPad, req.Width)
		assert.Equal(t, '0', req.Pad)
	})

	t.Run("equal width ignores pad", func(t *testing.T) {
		req, err := parseRequest(t, &profile.Profile{Width: str("equal"), Pad: str("#")}, "1", "10")
		require.NoError(t, err)
		assert.Equal(t, ir.WidthEqual, req.Width)
		assert.Zero(t, req.Pad)
	})
}

func TestSequenceArgs(t *testing.T) {
	tests := []struct {
		name        string
		numberLines bool
		args        []string
		wantErr     bool
	}{
		{"none", false, nil, true},
		{"one", false, []string{"1"}, true},
		{"two", false, []string{"1", "2"}, false},
		{"three", false, []string{"1", "1", "2"}, false},
		{"four", false, []string{"1", "1", "2", "3"}, true},
		{"number lines two", true, []string{"1", "1"}, false},
		{"number lines three", true, []string{"1", "1", "5"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sequenceArgs(&RootOptions{NumberLines: tt.numberLines})(nil, tt.args)
			if tt.wantErr {
				assert.True(t, ir.IsCode(err, ir.ErrCodeUsage), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
