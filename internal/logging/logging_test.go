package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(false, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger == nil {
		t.Fatalf("expected logger instance")
	}
	_ = logger.Sync()
}

func TestNewRejectsNilWriter(t *testing.T) {
	if _, err := New(true, nil); err == nil {
		t.Fatalf("expected error for nil writer")
	}
}

func TestNewQuietWithoutDebug(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(false, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("hidden")
	_ = logger.Sync()

	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn level, got %q", buf.String())
	}
}

func TestNewDebugWritesJSON(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(true, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("config resolved")
	_ = logger.Sync()

	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", line, err)
	}
	if entry["msg"] != "config resolved" {
		t.Fatalf("unexpected message: %v", entry["msg"])
	}
	if entry["level"] != "debug" {
		t.Fatalf("unexpected level: %v", entry["level"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Fatalf("expected timestamp key in %v", entry)
	}
}

func TestLevel(t *testing.T) {
	if got := Level(true); got != zapcore.DebugLevel {
		t.Fatalf("expected debug level, got %s", got)
	}
	if got := Level(false); got != zapcore.WarnLevel {
		t.Fatalf("expected warn level, got %s", got)
	}
}
