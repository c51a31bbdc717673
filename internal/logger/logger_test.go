package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tte.log")
	t.Setenv("TTE_LOG_FILE", path)

	if err := Init("debug"); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	Debug("key decoded", "name", "Ctrl+Q")
	Warn("save failed", "path", "/tmp/x")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	for _, want := range []string{"logger initialized", "key decoded", "Ctrl+Q", "WARN", "save failed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log missing %q:\n%s", want, out)
		}
	}
}

func TestInitLevelFiltersDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tte.log")
	t.Setenv("TTE_LOG_FILE", path)

	if err := Init("warn"); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	Info("hidden info")
	Error("visible error")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "hidden info") {
		t.Fatalf("info logged at warn level:\n%s", out)
	}
	if !strings.Contains(out, "visible error") {
		t.Fatalf("error missing:\n%s", out)
	}
}

func TestHelpersBeforeInit(t *testing.T) {
	Close()
	Info("dropped")
	Debug("dropped")
}
