package history

import (
	"context"
	"errors"
	"time"
)

var ErrNotConfigured = errors.New("history database is not configured")

// Run is one completed pass through a quiz file.
type Run struct {
	RunID     string
	QuizPath  string
	Total     int
	Correct   int
	StartedAt time.Time
	EndedAt   time.Time
}

type Repository interface {
	RecordRun(ctx context.Context, run Run) error
	ListRuns(ctx context.Context, quizPath string, limit int) ([]Run, error)
	Close() error
}
