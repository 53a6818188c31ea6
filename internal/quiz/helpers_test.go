package quiz

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// scriptedConsole returns a Console that answers prompts with inputs, one per
// line, and the buffer receiving everything written to it.
func scriptedConsole(inputs ...string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(inputs, "\n") + "\n")
	return NewConsole(in, &out), &out
}

func writeQuizFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "quiz.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write quiz file: %v", err)
	}
	return path
}

func readQuizFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read quiz file: %v", err)
	}
	return string(data)
}
