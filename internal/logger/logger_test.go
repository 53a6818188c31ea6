package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSetupJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("info", "json", &buf)

	log.Debug().Msg("hidden")
	log.Info().Str("path", "quiz.txt").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly one log line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["message"] != "shown" || entry["path"] != "quiz.txt" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestSetupUnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("chatty", "json", &buf)

	log.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered at warn level, got %q", buf.String())
	}

	log.Warn().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected warn entry, got %q", buf.String())
	}
}

func TestSetupPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("warn", "pretty", &buf)

	log.Warn().Msg("readable")
	out := buf.String()
	if strings.HasPrefix(out, "{") {
		t.Fatalf("expected console output, got JSON: %q", out)
	}
	if !strings.Contains(out, "readable") {
		t.Fatalf("expected message in output, got %q", out)
	}
}
