package quiz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const (
	questionTypePrompt = "What type of question do you want to create (MC, TF or ENTER to end): "
	questionTextPrompt = "Enter the question: "
	trueFalseAnswer    = "What is the answer (T/F): "
	choicePrompt       = "Enter a possible answer (ENTER to end): "
	correctPrompt      = "Which one is the correct answer: "
	minChoices         = 2
)

// Author builds new records from console input.
type Author struct {
	console *Console
	log     zerolog.Logger
}

func NewAuthor(console *Console, log zerolog.Logger) *Author {
	return &Author{
		console: console,
		log:     log,
	}
}

// Author runs an authoring session and appends the new records to path in a
// single write once the session ends. It returns the number of records
// written.
//
// A sub-builder that produces no record ends the session the same way an
// empty type answer does.
func (a *Author) Author(ctx context.Context, path string) (int, error) {
	lines := make([]string, 0)

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		tag, err := a.console.Ask(questionTypePrompt)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
		if tag == "" {
			break
		}

		var line string
		switch ParseKind(tag) {
		case KindTrueFalse:
			line, err = a.CreateTrueFalse()
		case KindMultipleChoice:
			line, err = a.CreateMultipleChoice()
		default:
			a.console.Printf("%q is not a valid question type.\n", tag)
			continue
		}
		if err != nil {
			return 0, err
		}
		if line == "" {
			a.log.Debug().Str("kind", tag).Msg("question abandoned, ending session")
			break
		}
		lines = append(lines, line)
	}

	if err := AppendLines(path, lines); err != nil {
		return 0, err
	}
	a.log.Info().Str("path", path).Int("records", len(lines)).Msg("authoring session saved")
	return len(lines), nil
}

// CreateTrueFalse returns "" when the question or the answer is left empty.
func (a *Author) CreateTrueFalse() (string, error) {
	question, err := a.console.Ask(questionTextPrompt)
	if err != nil {
		return "", err
	}
	answer, err := a.console.Ask(trueFalseAnswer)
	if err != nil {
		return "", err
	}
	if question == "" || answer == "" {
		return "", nil
	}

	record := Record{
		Kind:     KindTrueFalse,
		Question: question,
		Answer:   answer,
	}
	return record.String(), nil
}

// CreateMultipleChoice returns "" when the question is left empty. Choice
// collection only stops on an empty answer once at least two choices exist.
func (a *Author) CreateMultipleChoice() (string, error) {
	question, err := a.console.Ask(questionTextPrompt)
	if err != nil {
		return "", err
	}
	if question == "" {
		return "", nil
	}

	choices := make([]string, 0, 4)
	for {
		choice, err := a.console.Ask(choicePrompt)
		if err != nil {
			return "", err
		}
		if choice != "" {
			choices = append(choices, choice)
			continue
		}
		if len(choices) >= minChoices {
			break
		}
		a.console.Printf("Please enter at least %d possible answers.\n", minChoices)
	}

	a.console.Println(question)
	a.console.printChoices(choices)
	correct, err := askChoice(a.console, correctPrompt, len(choices))
	if err != nil {
		return "", err
	}

	record := Record{
		Kind:     KindMultipleChoice,
		Question: question,
		Answer:   strconv.Itoa(correct),
		Choices:  choices,
	}
	return record.String(), nil
}

// AppendLines appends lines joined by "\n" to the file at path, creating it if
// needed. Nothing is inserted between the existing content and the new lines.
func AppendLines(path string, lines []string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open quiz file %q: %w", path, err)
	}

	if _, err := file.WriteString(strings.Join(lines, "\n")); err != nil {
		_ = file.Close()
		return fmt.Errorf("append to quiz file %q: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close quiz file %q: %w", path, err)
	}
	return nil
}

// AppendRecords appends records to path on their own lines. Unlike an
// authoring session it starts a new line when the file does not already end
// with one.
func AppendRecords(path string, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	lines := make([]string, 0, len(records)+1)
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read quiz file %q: %w", path, err)
	}
	if len(existing) > 0 && existing[len(existing)-1] != '\n' {
		lines = append(lines, "")
	}

	for _, record := range records {
		lines = append(lines, record.String())
	}
	return AppendLines(path, lines)
}
