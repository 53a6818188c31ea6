package quiz

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

type Result struct {
	Total   int
	Correct int
}

// Percentage returns Correct/Total*100 without rounding.
func (r Result) Percentage() float64 {
	return float64(r.Correct) / float64(r.Total) * 100
}

type Runner struct {
	presenter Presenter
	log       zerolog.Logger
}

func NewRunner(presenter Presenter, log zerolog.Logger) *Runner {
	return &Runner{
		presenter: presenter,
		log:       log,
	}
}

// Run presents every line of the quiz file at path in order.
//
// Total is the number of lines produced by SplitLines, so a trailing line
// break adds an empty true/false question to the run.
func (r *Runner) Run(ctx context.Context, path string) (Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read quiz file %q: %w", path, err)
	}

	lines := SplitLines(string(content))
	result := Result{Total: len(lines)}
	r.log.Debug().Str("path", path).Int("lines", len(lines)).Msg("starting quiz run")

	for idx, line := range lines {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		correct, err := r.present(ParseRecord(line))
		if err != nil {
			return result, fmt.Errorf("question %d: %w", idx+1, err)
		}
		if correct {
			result.Correct++
		}
	}

	r.log.Debug().
		Str("path", path).
		Int("total", result.Total).
		Int("correct", result.Correct).
		Msg("quiz run finished")
	return result, nil
}

func (r *Runner) present(record Record) (bool, error) {
	if record.Kind == KindMultipleChoice {
		return r.presenter.MultipleChoice(record.Question, record.Answer, record.Choices)
	}
	return r.presenter.TrueFalse(record.Question, record.Answer)
}
