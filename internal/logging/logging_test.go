package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if err != nil || got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
		})
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNewConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := New(Options{Level: slog.LevelWarn, Console: &buf})
	if err != nil {
		t.Fatal(err)
	}
	defer cleanup()
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("console output = %q", out)
	}
}

func TestNewWithFile(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	logger, cleanup, err := New(Options{Dir: dir, Level: slog.LevelError, Console: &buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("file only", "scene", "a")
	logger.Error("both")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, "vista.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"file only"`) || !strings.Contains(string(data), `"msg":"both"`) {
		t.Errorf("file log = %s", data)
	}
	if strings.Contains(buf.String(), "file only") || !strings.Contains(buf.String(), "both") {
		t.Errorf("console log = %s", buf.String())
	}
}
