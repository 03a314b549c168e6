package harness

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/sequ/internal/engine"
	"github.com/roach88/sequ/internal/ir"
	"github.com/roach88/sequ/internal/store"
)

// Run executes a scenario and returns the result.
//
// Each scenario runs against a fresh in-memory history store with a fixed
// run ID, so repeated runs are identical.
//
// Execution flow:
// 1. Build the ir.Request from the scenario's literal fields
// 2. Run it through the engine with the scenario input
// 3. Read the history entry back
// 4. Evaluate expectations
func Run(scenario *Scenario) (*Result, error) {
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	ctx := context.Background()
	result := NewResult()
	runID := "scenario-" + scenario.Name

	req, err := scenario.Request.ToRequest()
	if err != nil {
		// Rejected before reaching the engine, as the command layer would.
		result.Err = err
	} else {
		eng := engine.New(st, engine.NewFixedGenerator(runID),
			engine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), // Suppress logs in tests
		)

		var out bytes.Buffer
		result.Run, result.Err = eng.Run(ctx, req, strings.NewReader(scenario.Input), &out)
		result.Output = out.String()

		rec, err := st.ReadRun(ctx, runID)
		if err != nil {
			return nil, fmt.Errorf("failed to read history entry: %w", err)
		}
		result.Record = &rec
	}

	for _, msg := range evaluate(scenario.Expect, result) {
		result.AddError(msg)
	}
	return result, nil
}

// evaluate compares a result against an expect clause and returns one
// message per mismatch.
func evaluate(expect ExpectClause, result *Result) []string {
	var errs []string

	gotCode := string(ir.CodeOf(result.Err))
	switch {
	case expect.Error == "" && result.Err != nil:
		errs = append(errs, fmt.Sprintf("unexpected error: %v", result.Err))
	case expect.Error != "" && gotCode != expect.Error:
		errs = append(errs, fmt.Sprintf("error code: expected %s, got %q (%v)", expect.Error, gotCode, result.Err))
	}

	if expect.Output != nil && *expect.Output != result.Output {
		errs = append(errs, fmt.Sprintf("output: expected %q, got %q", *expect.Output, result.Output))
	}

	if expect.Items != nil && *expect.Items != result.Run.Items {
		errs = append(errs, fmt.Sprintf("items: expected %d, got %d", *expect.Items, result.Run.Items))
	}

	if expect.Unnumbered != nil && *expect.Unnumbered != result.Run.Unnumbered {
		errs = append(errs, fmt.Sprintf("unnumbered: expected %d, got %d", *expect.Unnumbered, result.Run.Unnumbered))
	}

	if rec := result.Record; rec != nil {
		wantStatus := ir.RunOK
		if result.Err != nil {
			wantStatus = ir.RunError
		}
		if rec.Status != wantStatus {
			errs = append(errs, fmt.Sprintf("history status: expected %s, got %s", wantStatus, rec.Status))
		}
		if string(rec.ErrorCode) != gotCode {
			errs = append(errs, fmt.Sprintf("history error code: expected %q, got %q", gotCode, rec.ErrorCode))
		}
		if rec.Items != result.Run.Items || rec.Unnumbered != result.Run.Unnumbered {
			errs = append(errs, fmt.Sprintf("history counts: expected items=%d unnumbered=%d, got items=%d unnumbered=%d",
				result.Run.Items, result.Run.Unnumbered, rec.Items, rec.Unnumbered))
		}
	}

	return errs
}
