package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_CreatesLogFile(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = cleanup() }()

	path := filepath.Join(root, ".abook", "logs", "abook.log")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file at %s: %v", path, err)
	}
	if !strings.Contains(string(b), "logger.initialized") {
		t.Errorf("expected init entry in log, got %q", string(b))
	}
}

func TestSetup_WritesThroughL(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Debug: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	L().Debug("test.entry", "k", "v")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(root, ".abook", "logs", "abook.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "test.entry") {
		t.Errorf("expected debug entry in log, got %q", string(b))
	}

	// After cleanup the package logger discards silently.
	L().Info("after.cleanup")
}
