package engine

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sequ/internal/ir"
	"github.com/roach88/sequ/internal/sequence"
)

type memoryRecorder struct {
	records []ir.RunRecord
	err     error
}

func (m *memoryRecorder) RecordRun(_ context.Context, rec ir.RunRecord) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.records = append(m.records, rec)
	return int64(len(m.records)), nil
}

func newTestEngine(t *testing.T, rec Recorder, ids ...string) (*Engine, *bytes.Buffer) {
	t.Helper()
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(rec, NewFixedGenerator(ids...), WithLogger(logger)), logs
}

func TestRun_Range(t *testing.T) {
	rec := &memoryRecorder{}
	eng, logs := newTestEngine(t, rec, "run-1")

	req := ir.Request{Notation: ir.Arabic, Start: "1", End: "5", Increment: "1", Separator: ","}
	var out bytes.Buffer
	res, err := eng.Run(context.Background(), req, nil, &out)
	require.NoError(t, err)

	assert.Equal(t, "1,2,3,4,5,\n", out.String())
	assert.Equal(t, "run-1", res.RunID)
	assert.Equal(t, 5, res.Items)
	assert.Equal(t, sequence.NeverOverflows, res.Policy)

	require.Len(t, rec.records, 1)
	assert.Equal(t, ir.RunRecord{
		RunID:     "run-1",
		Notation:  ir.Arabic,
		Start:     "1",
		End:       "5",
		Increment: "1",
		Items:     5,
		Status:    ir.RunOK,
	}, rec.records[0])

	assert.Contains(t, logs.String(), "run_id=run-1")
	assert.Contains(t, logs.String(), "run complete")
}

func TestRun_NumberLines(t *testing.T) {
	rec := &memoryRecorder{}
	eng, logs := newTestEngine(t, rec, "run-2")

	req := ir.Request{Notation: ir.AlphaLower, Start: "y", Increment: "1", Separator: " ", NumberLines: true}
	var out bytes.Buffer
	res, err := eng.Run(context.Background(), req, strings.NewReader("1\n2\n3\n4\n5\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, "y 1\nz 2\n3\n4\n5\n", out.String())
	assert.Equal(t, sequence.StopNumberingOnOverflow, res.Policy)
	assert.Equal(t, 2, res.Items)
	assert.Equal(t, 5, res.Lines)
	assert.Equal(t, 3, res.Unnumbered)

	require.Len(t, rec.records, 1)
	assert.True(t, rec.records[0].NumberLines)
	assert.Equal(t, 3, rec.records[0].Unnumbered)
	assert.Contains(t, logs.String(), "numbering stopped")
}

func TestRun_FailureIsRecorded(t *testing.T) {
	rec := &memoryRecorder{}
	eng, _ := newTestEngine(t, rec, "run-3")

	req := ir.Request{Notation: ir.Arabic, Start: "1", End: "5", Increment: "0", Separator: "\n"}
	var out bytes.Buffer
	_, err := eng.Run(context.Background(), req, nil, &out)
	require.Error(t, err)
	assert.True(t, ir.IsCode(err, ir.ErrCodeZeroIncrement))
	assert.Empty(t, out.String())

	require.Len(t, rec.records, 1)
	assert.Equal(t, ir.RunError, rec.records[0].Status)
	assert.Equal(t, ir.ErrCodeZeroIncrement, rec.records[0].ErrorCode)
}

func TestRun_RecorderFailure(t *testing.T) {
	rec := &memoryRecorder{err: errors.New("disk full")}
	eng, logs := newTestEngine(t, rec, "run-4", "run-5")

	req := ir.Request{Notation: ir.Arabic, Start: "1", End: "2", Increment: "1", Separator: "\n"}
	var out bytes.Buffer
	_, err := eng.Run(context.Background(), req, nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record run")
	assert.Equal(t, "1\n2\n", out.String())
	assert.Contains(t, logs.String(), "failed to record run")

	// A run error takes precedence over the recording error.
	req.Increment = "0"
	_, err = eng.Run(context.Background(), req, nil, &out)
	assert.True(t, ir.IsCode(err, ir.ErrCodeZeroIncrement))
}

func TestRun_NoRecorder(t *testing.T) {
	eng := New(nil, nil)

	req := ir.Request{Notation: ir.RomanUpper, Start: "I", End: "III", Increment: "I", Separator: " "}
	var out bytes.Buffer
	res, err := eng.Run(context.Background(), req, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "I II III \n", out.String())
	assert.Len(t, res.RunID, 36)
}

func TestRun_ReadError(t *testing.T) {
	eng, _ := newTestEngine(t, nil, "run-6")

	req := ir.Request{Notation: ir.Arabic, Start: "1", Increment: "1", Separator: " ", NumberLines: true}
	_, err := eng.Run(context.Background(), req, errReader{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read input")
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("stdin closed") }
