package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	log := NewLoggerWithWriter(&buf, "warn")
	log.Info("hidden")
	log.Warn("shown", "kind", "people")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message written at warn level: %s", out)
	}

	if !strings.Contains(out, "shown") || !strings.Contains(out, "kind=people") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestLogger_WithSharesLevel(t *testing.T) {
	var buf bytes.Buffer

	log := NewLoggerWithWriter(&buf, "error")
	child := log.With("component", "loader")

	log.SetLevel("debug")
	child.Debug("loaded bucket")
	child.Log(context.Background(), slog.LevelInfo, "done")

	out := buf.String()
	if !strings.Contains(out, "component=loader") {
		t.Errorf("child attributes missing: %s", out)
	}

	if !strings.Contains(out, "loaded bucket") || !strings.Contains(out, "done") {
		t.Errorf("child did not follow parent level change: %s", out)
	}
}
