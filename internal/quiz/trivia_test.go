package quiz

import (
	"strconv"
	"testing"

	"textquiz/internal/opentdb"
)

func TestBuildRecordsMultipleChoice(t *testing.T) {
	raw := []opentdb.RawQuestion{
		{
			Type:             "multiple",
			Question:         "2 &amp; 2 = ?",
			CorrectAnswer:    "4 &lt; 5",
			IncorrectAnswers: []string{"1", "2", "3"},
		},
	}

	records, skipped := BuildRecords(raw)
	if skipped != 0 || len(records) != 1 {
		t.Fatalf("expected 1 record and no skips, got %d records, %d skipped", len(records), skipped)
	}

	record := records[0]
	if record.Kind != KindMultipleChoice {
		t.Fatalf("expected MC record, got %q", record.Kind)
	}
	if record.Question != "2 & 2 = ?" {
		t.Fatalf("question not unescaped, got %q", record.Question)
	}
	if len(record.Choices) != 4 {
		t.Fatalf("expected 4 choices, got %q", record.Choices)
	}

	index, err := strconv.Atoi(record.Answer)
	if err != nil || index < 1 || index > len(record.Choices) {
		t.Fatalf("answer %q is not a valid 1-based index", record.Answer)
	}
	if record.Choices[index-1] != "4 < 5" {
		t.Fatalf("answer %s points at %q, want the correct choice", record.Answer, record.Choices[index-1])
	}
}

func TestBuildRecordsBoolean(t *testing.T) {
	raw := []opentdb.RawQuestion{
		{Type: "boolean", Question: "The sun is a star.", CorrectAnswer: "True", IncorrectAnswers: []string{"False"}},
		{Type: "boolean", Question: "Bats are birds.", CorrectAnswer: "False", IncorrectAnswers: []string{"True"}},
	}

	records, _ := BuildRecords(raw)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if got := records[0].String(); got != "TF,The sun is a star.,T" {
		t.Fatalf("unexpected record %q", got)
	}
	if got := records[1].String(); got != "TF,Bats are birds.,F" {
		t.Fatalf("unexpected record %q", got)
	}
}

func TestBuildRecordsSkipsUnencodable(t *testing.T) {
	raw := []opentdb.RawQuestion{
		{Type: "boolean", Question: "Paris, France is a city.", CorrectAnswer: "True"},
		{Type: "multiple", Question: "Pick", CorrectAnswer: "1,000", IncorrectAnswers: []string{"10"}},
		{Type: "multiple", Question: "Fine", CorrectAnswer: "yes", IncorrectAnswers: []string{"no"}},
	}

	records, skipped := BuildRecords(raw)
	if skipped != 2 {
		t.Fatalf("expected 2 skipped questions, got %d", skipped)
	}
	if len(records) != 1 || records[0].Question != "Fine" {
		t.Fatalf("unexpected records %+v", records)
	}
}
