package store

import (
	"context"
	"fmt"

	"github.com/roach88/sequ/internal/ir"
)

// RecordRun appends a history entry and returns its seq.
// Run IDs are unique; recording the same ID twice is an error.
func (s *Store) RecordRun(ctx context.Context, rec ir.RunRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO runs
		(run_id, notation, start_value, end_value, increment, number_lines, items, lines, unnumbered, status, error_code)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.RunID,
		string(rec.Notation),
		rec.Start,
		rec.End,
		rec.Increment,
		rec.NumberLines,
		rec.Items,
		rec.Lines,
		rec.Unnumbered,
		string(rec.Status),
		string(rec.ErrorCode),
	)
	if err != nil {
		return 0, fmt.Errorf("record run: %w", err)
	}

	seq, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("record run: %w", err)
	}
	return seq, nil
}
