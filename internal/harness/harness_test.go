package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sequ/internal/ir"
)

func TestRun_Scenarios(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios")
	require.NoError(t, err)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			result, err := Run(s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "expectation failures: %v", result.Errors)

			if s.Golden {
				AssertGolden(t, s.Name, result)
			}
		})
	}
}

func TestRun_RecordsHistory(t *testing.T) {
	items := 3
	s := &Scenario{
		Name:        "history",
		Description: "history entry mirrors the run",
		Request:     RequestSpec{Notation: "alpha", Start: "a", End: "c", Increment: "1"},
		Expect:      ExpectClause{Items: &items},
	}

	result, err := Run(s)
	require.NoError(t, err)
	require.True(t, result.Pass, result.Errors)

	require.NotNil(t, result.Record)
	assert.Equal(t, "scenario-history", result.Record.RunID)
	assert.Equal(t, ir.AlphaLower, result.Record.Notation)
	assert.Equal(t, ir.RunOK, result.Record.Status)
	assert.Equal(t, 3, result.Record.Items)
}

func TestRun_RecordsFailures(t *testing.T) {
	s := &Scenario{
		Name:        "failure",
		Description: "failed runs are recorded too",
		Request:     RequestSpec{Notation: "roman", Start: "i", End: "v", Increment: "I"},
		Expect:      ExpectClause{Error: string(ir.ErrCodeTypeMismatch)},
	}

	result, err := Run(s)
	require.NoError(t, err)
	require.True(t, result.Pass, result.Errors)

	require.NotNil(t, result.Record)
	assert.Equal(t, ir.RunError, result.Record.Status)
	assert.Equal(t, ir.ErrCodeTypeMismatch, result.Record.ErrorCode)
}

func TestRun_RequestRejectedBeforeEngine(t *testing.T) {
	s := &Scenario{
		Name:        "bad_pad",
		Description: "pad validation happens while building the request",
		Request:     RequestSpec{Notation: "arabic", Start: "1", End: "2", Increment: "1", Pad: "ab"},
		Expect:      ExpectClause{Error: string(ir.ErrCodeInvalidPad)},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass, result.Errors)
	assert.Nil(t, result.Record)
}

func TestRun_ReportsMismatches(t *testing.T) {
	want := "nope"
	items := 7
	s := &Scenario{
		Name:        "mismatch",
		Description: "every failed expectation is reported",
		Request:     RequestSpec{Notation: "arabic", Start: "1", End: "2", Increment: "1"},
		Expect:      ExpectClause{Output: &want, Items: &items},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Len(t, result.Errors, 2)
}

func TestRun_UnexpectedError(t *testing.T) {
	s := &Scenario{
		Name:        "unexpected",
		Description: "an error nobody asked for fails the scenario",
		Request:     RequestSpec{Notation: "arabic", Start: "1", End: "2", Increment: "0"},
		Golden:      true,
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "unexpected error")
}
