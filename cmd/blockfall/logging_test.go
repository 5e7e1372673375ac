package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")
	logger, closer, err := newLogger("debug", path)
	if err != nil {
		t.Fatalf("newLogger() error: %v", err)
	}
	logger.Debug("piece locked", "pieces", 3)
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "piece locked") {
		t.Errorf("log file = %q, expected the debug line", data)
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	if _, _, err := newLogger("loud", "-"); err == nil {
		t.Error("newLogger(loud) expected error")
	}
}

func TestNewLoggerStderr(t *testing.T) {
	logger, closer, err := newLogger("warn", "-")
	if err != nil {
		t.Fatalf("newLogger() error: %v", err)
	}
	if closer.Close() != nil {
		t.Error("stderr closer returned error")
	}
	if logger == nil {
		t.Error("newLogger() returned nil logger")
	}
}
