package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/sequ/internal/ir"
)

// ListFilter narrows a history listing.
type ListFilter struct {
	// Notation restricts results to one notation when non-empty.
	Notation ir.Notation

	// Limit caps the number of rows; 0 means no limit.
	Limit int
}

// ListRuns returns history entries, most recent first.
//
// Returns an empty slice (not nil) if there are no matching runs.
func (s *Store) ListRuns(ctx context.Context, filter ListFilter) ([]ir.RunRecord, error) {
	query := `
		SELECT seq, run_id, notation, start_value, end_value, increment,
		       number_lines, items, lines, unnumbered, status, error_code
		FROM runs`
	var args []any
	if filter.Notation != "" {
		query += " WHERE notation = ?"
		args = append(args, string(filter.Notation))
	}
	query += " ORDER BY seq DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []ir.RunRecord{}
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ReadRun returns the entry with the given run ID.
// Returns sql.ErrNoRows (wrapped) if it does not exist.
func (s *Store) ReadRun(ctx context.Context, runID string) (ir.RunRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT seq, run_id, notation, start_value, end_value, increment,
		       number_lines, items, lines, unnumbered, status, error_code
		FROM runs
		WHERE run_id = ?
	`, runID)

	rec, err := scanRun(row)
	if err != nil {
		return ir.RunRecord{}, fmt.Errorf("read run %s: %w", runID, err)
	}
	return rec, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (ir.RunRecord, error) {
	var (
		rec                         ir.RunRecord
		notation, status, errorCode string
	)
	err := row.Scan(
		&rec.Seq,
		&rec.RunID,
		&notation,
		&rec.Start,
		&rec.End,
		&rec.Increment,
		&rec.NumberLines,
		&rec.Items,
		&rec.Lines,
		&rec.Unnumbered,
		&status,
		&errorCode,
	)
	if err == sql.ErrNoRows {
		return ir.RunRecord{}, err
	}
	if err != nil {
		return ir.RunRecord{}, fmt.Errorf("scan run: %w", err)
	}
	rec.Notation = ir.Notation(notation)
	rec.Status = ir.RunStatus(status)
	rec.ErrorCode = ir.ErrorCode(errorCode)
	return rec, nil
}
