package quiz

import (
	"fmt"
	"os"
	"strings"
)

// SampleRecords returns a starter quiz with one question of each kind.
func SampleRecords() []Record {
	return []Record{
		{
			Kind:     KindTrueFalse,
			Question: "The sky is blue",
			Answer:   "T",
		},
		{
			Kind:     KindMultipleChoice,
			Question: "How many legs does a dog have?",
			Answer:   "3",
			Choices:  []string{"2", "3", "4", "5"},
		},
	}
}

// WriteSample creates a starter quiz file at path. An existing file is left
// untouched and reported as an error.
func WriteSample(path string) error {
	records := SampleRecords()
	lines := make([]string, 0, len(records))
	for _, record := range records {
		lines = append(lines, record.String())
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create sample quiz %q: %w", path, err)
	}
	if _, err := file.WriteString(strings.Join(lines, "\n")); err != nil {
		_ = file.Close()
		return fmt.Errorf("write sample quiz %q: %w", path, err)
	}
	return file.Close()
}
