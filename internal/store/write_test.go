package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sequ/internal/ir"
)

func TestRecordRun(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	seq1, err := s.RecordRun(ctx, createTestRun("run-a", 10))
	require.NoError(t, err)
	seq2, err := s.RecordRun(ctx, createTestRun("run-b", 3))
	require.NoError(t, err)
	assert.Greater(t, seq2, seq1)

	got, err := s.ReadRun(ctx, "run-a")
	require.NoError(t, err)

	want := createTestRun("run-a", 10)
	want.Seq = seq1
	assert.Equal(t, want, got)
}

func TestRecordRun_DuplicateID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.RecordRun(ctx, createTestRun("run-a", 1))
	require.NoError(t, err)

	_, err = s.RecordRun(ctx, createTestRun("run-a", 1))
	require.Error(t, err)
}

func TestRecordRun_ErrorRun(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	rec := ir.RunRecord{
		RunID:       "run-err",
		Notation:    ir.RomanLower,
		Start:       "iiii",
		Increment:   "i",
		NumberLines: true,
		Status:      ir.RunError,
		ErrorCode:   ir.ErrCodeInvalidNumeral,
	}
	_, err := s.RecordRun(ctx, rec)
	require.NoError(t, err)

	got, err := s.ReadRun(ctx, "run-err")
	require.NoError(t, err)
	assert.Equal(t, ir.RunError, got.Status)
	assert.Equal(t, ir.ErrCodeInvalidNumeral, got.ErrorCode)
	assert.True(t, got.NumberLines)
	assert.Empty(t, got.End)
}

func TestRecordRun_RejectsUnknownStatus(t *testing.T) {
	s := createTestStore(t)

	rec := createTestRun("run-x", 1)
	rec.Status = "maybe"
	_, err := s.RecordRun(context.Background(), rec)
	require.Error(t, err)
}

func TestReadRun_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ReadRun(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
