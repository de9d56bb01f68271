package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHelpersBeforeInit(t *testing.T) {
	Close()
	// Must not panic with no logger configured.
	Info("ignored")
	Debug("ignored")
	Warn("ignored")
	Error("ignored")
	if WithPrefix("x") != nil {
		t.Error("WithPrefix should return nil before init")
	}
}

func TestInit(t *testing.T) {
	defer Close()

	var buf bytes.Buffer
	if err := Init(&buf, "info"); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	Debug("hidden")
	Info("run started", "algorithm", "quick")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug line written at info level")
	}
	if !strings.Contains(out, "run started") || !strings.Contains(out, "algorithm=quick") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestInit_BadLevel(t *testing.T) {
	if err := Init(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestInitFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	if err := InitFile(dir, "debug"); err != nil {
		t.Fatalf("init file failed: %v", err)
	}
	Info("hello")
	Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "sortviz-") {
		t.Fatalf("expected one sortviz log file, got %v", entries)
	}
}
