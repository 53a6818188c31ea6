package quiz

import (
	"html"
	"math/rand"
	"strconv"
	"strings"

	"textquiz/internal/opentdb"
)

const triviaTypeBoolean = "boolean"

// BuildRecords converts OpenTriviaDB questions into records. Boolean questions
// become true/false records; everything else becomes a multiple-choice record
// with shuffled choices. Questions whose text contains a comma cannot be
// encoded and are skipped; the number skipped is returned.
func BuildRecords(raw []opentdb.RawQuestion) ([]Record, int) {
	records := make([]Record, 0, len(raw))
	skipped := 0

	for _, item := range raw {
		record := buildRecord(item)
		if !encodable(record) {
			skipped++
			continue
		}
		records = append(records, record)
	}

	return records, skipped
}

func buildRecord(raw opentdb.RawQuestion) Record {
	question := html.UnescapeString(raw.Question)
	correctText := html.UnescapeString(raw.CorrectAnswer)

	if raw.Type == triviaTypeBoolean {
		answer := "F"
		if strings.EqualFold(correctText, "true") {
			answer = "T"
		}
		return Record{
			Kind:     KindTrueFalse,
			Question: question,
			Answer:   answer,
		}
	}

	type choice struct {
		text      string
		isCorrect bool
	}

	candidates := make([]choice, 0, len(raw.IncorrectAnswers)+1)
	for _, incorrect := range raw.IncorrectAnswers {
		candidates = append(candidates, choice{
			text:      html.UnescapeString(incorrect),
			isCorrect: false,
		})
	}
	candidates = append(candidates, choice{
		text:      correctText,
		isCorrect: true,
	})

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	choices := make([]string, len(candidates))
	answer := ""
	for idx, candidate := range candidates {
		choices[idx] = candidate.text
		if candidate.isCorrect {
			answer = strconv.Itoa(idx + 1)
		}
	}

	return Record{
		Kind:     KindMultipleChoice,
		Question: question,
		Answer:   answer,
		Choices:  choices,
	}
}

func encodable(record Record) bool {
	if record.Question == "" || strings.ContainsAny(record.Question, ",\r\n") {
		return false
	}
	for _, choice := range record.Choices {
		if choice == "" || strings.ContainsAny(choice, ",\r\n") {
			return false
		}
	}
	return true
}
