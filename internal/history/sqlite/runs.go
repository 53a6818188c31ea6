package sqlite

import (
	"context"
	"errors"
	"time"

	"textquiz/internal/history"
)

const defaultListLimit = 10

var _ history.Repository = (*SQLiteStore)(nil)

func (s *SQLiteStore) RecordRun(ctx context.Context, run history.Run) error {
	if run.RunID == "" {
		return errors.New("run id is required")
	}
	if run.Correct < 0 || run.Correct > run.Total {
		return errors.New("correct count must be between 0 and total")
	}

	if run.EndedAt.IsZero() {
		run.EndedAt = time.Now().UTC()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = run.EndedAt
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (run_id, quiz_path, total, correct, started_at_unix, ended_at_unix)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.QuizPath,
		run.Total,
		run.Correct,
		run.StartedAt.UnixNano(),
		run.EndedAt.UnixNano(),
	)
	return err
}

// ListRuns returns the most recent runs of quizPath, newest first.
func (s *SQLiteStore) ListRuns(ctx context.Context, quizPath string, limit int) ([]history.Run, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT run_id, quiz_path, total, correct, started_at_unix, ended_at_unix
		 FROM runs
		 WHERE quiz_path = ?
		 ORDER BY ended_at_unix DESC, run_id ASC
		 LIMIT ?`,
		quizPath,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]history.Run, 0)
	for rows.Next() {
		var (
			run       history.Run
			startedNs int64
			endedNs   int64
		)
		if err := rows.Scan(&run.RunID, &run.QuizPath, &run.Total, &run.Correct, &startedNs, &endedNs); err != nil {
			return nil, err
		}
		run.StartedAt = time.Unix(0, startedNs).UTC()
		run.EndedAt = time.Unix(0, endedNs).UTC()
		runs = append(runs, run)
	}

	return runs, rows.Err()
}
