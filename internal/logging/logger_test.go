package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "imgtab.log")

	logger, err := New(DefaultConfig(path))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("opened")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"message":"opened"`) {
		t.Errorf("log = %q, want JSON message", data)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Config{Level: "loud", OutputPaths: []string{"stderr"}})
	if err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNewOrNopFallsBack(t *testing.T) {
	logger := NewOrNop(Config{Level: "loud"})
	if logger == nil {
		t.Fatal("expected a logger")
	}
	logger.Info("discarded")
}
