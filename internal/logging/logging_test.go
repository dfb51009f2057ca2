package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Config{Level: "chatty"}); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, err := New(Config{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("hello from test")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(raw), "hello from test") {
		t.Fatalf("log line not found in %q", raw)
	}
}
