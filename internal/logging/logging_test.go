package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "round.log")
	log, err := New("info", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Debugw("hidden")
	log.Infow("player hit", "seat", 1)
	_ = log.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, "player hit") || !strings.Contains(out, `"seat": 1`) {
		t.Fatalf("log output missing entry: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry written at info level: %q", out)
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New("loud", ""); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
