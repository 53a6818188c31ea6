package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"textquiz/internal/config"
	"textquiz/internal/history"
	"textquiz/internal/history/sqlite"
	"textquiz/internal/opentdb"
	"textquiz/internal/quiz"
)

// Actions are the operations the dispatcher can call. Tests replace
// individual fields instead of patching package state.
type Actions struct {
	Run     func(ctx context.Context, path string) (quiz.Result, error)
	Create  func(ctx context.Context, path string) (int, error)
	Import  func(ctx context.Context, path string, amount int) (ImportSummary, error)
	History func(ctx context.Context, path string, limit int) ([]history.Run, error)
}

type ImportSummary struct {
	Imported int
	Skipped  int
}

// NewActions wires the quiz runner, author, trivia import and run history
// to one console over in and out.
func NewActions(cfg *config.Config, log zerolog.Logger, in io.Reader, out io.Writer) Actions {
	console := quiz.NewConsole(in, out)
	runner := quiz.NewRunner(quiz.NewConsolePresenter(console), log)
	author := quiz.NewAuthor(console, log)
	trivia := opentdb.NewClient(nil).WithBaseURL(cfg.OpenTDBURL)

	return Actions{
		Run: func(ctx context.Context, path string) (quiz.Result, error) {
			startedAt := time.Now().UTC()
			result, err := runner.Run(ctx, path)
			if err != nil {
				return quiz.Result{}, err
			}
			recordRun(ctx, cfg.HistoryDB, log, path, result, startedAt)
			return result, nil
		},
		Create: author.Author,
		Import: func(ctx context.Context, path string, amount int) (ImportSummary, error) {
			if amount <= 0 {
				amount = cfg.ImportAmount
			}
			raw, err := trivia.FetchQuestions(ctx, amount)
			if err != nil {
				return ImportSummary{}, fmt.Errorf("fetch trivia questions: %w", err)
			}

			records, skipped := quiz.BuildRecords(raw)
			if skipped > 0 {
				log.Warn().Int("skipped", skipped).Msg("skipped trivia questions that cannot be stored in a quiz file")
			}
			if err := quiz.AppendRecords(path, records); err != nil {
				return ImportSummary{}, err
			}
			return ImportSummary{Imported: len(records), Skipped: skipped}, nil
		},
		History: func(ctx context.Context, path string, limit int) ([]history.Run, error) {
			if cfg.HistoryDB == "" {
				return nil, history.ErrNotConfigured
			}
			store, err := sqlite.NewSQLiteStore(ctx, cfg.HistoryDB)
			if err != nil {
				return nil, err
			}
			defer store.Close()

			return store.ListRuns(ctx, quizKey(path), limit)
		},
	}
}

// recordRun stores a finished run when history is enabled. Failures are
// logged and never fail the run itself.
func recordRun(ctx context.Context, dbPath string, log zerolog.Logger, path string, result quiz.Result, startedAt time.Time) {
	if dbPath == "" {
		return
	}

	store, err := sqlite.NewSQLiteStore(ctx, dbPath)
	if err != nil {
		log.Warn().Err(err).Str("db", dbPath).Msg("could not open history database")
		return
	}
	defer store.Close()

	run := history.Run{
		RunID:     uuid.NewString(),
		QuizPath:  quizKey(path),
		Total:     result.Total,
		Correct:   result.Correct,
		StartedAt: startedAt,
		EndedAt:   time.Now().UTC(),
	}
	if err := store.RecordRun(ctx, run); err != nil {
		log.Warn().Err(err).Str("run_id", run.RunID).Msg("could not record quiz run")
		return
	}
	log.Debug().Str("run_id", run.RunID).Str("quiz", run.QuizPath).Msg("quiz run recorded")
}

// quizKey identifies a quiz file in the history database.
func quizKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
