package store

import (
	"context"
	"fmt"
)

// RunRecord is one row of the run ledger.
type RunRecord struct {
	// ID is the run's UUID, assigned by the harness.
	ID string

	// Scenario is the scenario name.
	Scenario string

	// Pass is the overall scenario verdict.
	Pass bool

	// Detail carries the first failure line on a failed run; empty on
	// a passing run.
	Detail string

	// Seq orders runs within one invocation.
	Seq int64
}

// RecordRun inserts a run into the ledger. Recording the same run ID
// twice is a no-op, so re-recording is idempotent.
func (s *Store) RecordRun(ctx context.Context, rec RunRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, scenario, pass, detail, seq)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, rec.ID, rec.Scenario, rec.Pass, rec.Detail, rec.Seq)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// ListRuns returns recorded runs ordered by seq. An empty scenario
// returns every run; otherwise only the named scenario's runs.
func (s *Store) ListRuns(ctx context.Context, scenario string) ([]RunRecord, error) {
	query := `SELECT id, scenario, pass, detail, seq FROM runs`
	var args []any
	if scenario != "" {
		query += ` WHERE scenario = ?`
		args = append(args, scenario)
	}
	query += ` ORDER BY seq, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(&rec.ID, &rec.Scenario, &rec.Pass, &rec.Detail, &rec.Seq); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	return records, nil
}
