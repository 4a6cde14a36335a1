package log_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"revenue-dashboard/internal/platform/log"
)

func TestLogger_ComponentAttribute(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(log.Config{Level: slog.LevelDebug, Output: &buf})

	l.WithComponent(log.ComponentHTTP).Info("request served", "status", 200)

	out := buf.String()
	if !strings.Contains(out, "component=http") {
		t.Fatalf("expected component=http, got %q", out)
	}
	if strings.Contains(out, "component=app") {
		t.Fatalf("parent component leaked into child: %q", out)
	}
}

func TestLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(log.Config{Level: slog.LevelWarn, Output: &buf})

	l.Info("dropped")
	l.Warn("kept")

	if strings.Contains(buf.String(), "dropped") || !strings.Contains(buf.String(), "kept") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":  slog.LevelDebug,
		"INFO":   slog.LevelInfo,
		" warn ": slog.LevelWarn,
		"error":  slog.LevelError,
		"loud":   slog.LevelInfo,
		"":       slog.LevelInfo,
	}
	for in, want := range tests {
		if got := log.ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
