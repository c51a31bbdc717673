package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestConfigDirEnv(t *testing.T) {
	t.Setenv("TTE_CONFIG_HOME", "/tmp/tte-config")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/tte-config" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/tte-config")
	}

	t.Setenv("TTE_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err = ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/xdg/tte" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/xdg/tte")
	}
}

func TestLoadMissingUsesDefaults(t *testing.T) {
	t.Setenv("TTE_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %#v, want defaults", cfg)
	}
	if cfg.StatusTimeout() != 5*time.Second {
		t.Fatalf("StatusTimeout = %v, want 5s", cfg.StatusTimeout())
	}
}

func TestLoadWithOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TTE_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "config.toml"), `
[editor]
quit-times = 5
message-timeout = 2
alternate-screen = false

[log]
level = "DEBUG"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Editor.QuitTimes != 5 {
		t.Fatalf("QuitTimes = %d, want 5", cfg.Editor.QuitTimes)
	}
	if cfg.StatusTimeout() != 2*time.Second {
		t.Fatalf("StatusTimeout = %v, want 2s", cfg.StatusTimeout())
	}
	if cfg.Editor.AlternateScreen {
		t.Fatalf("AlternateScreen = true, want false")
	}
	if !cfg.Editor.RestoreCursor {
		t.Fatalf("RestoreCursor = false, want default true")
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TTE_CONFIG_HOME", dir)
	writeFile(t, filepath.Join(dir, "config.toml"), "[editor\nquit-times = ")

	cfg, err := Load()
	if err == nil {
		t.Fatalf("Load error = nil, want parse error")
	}
	if cfg.Editor.QuitTimes != 3 {
		t.Fatalf("QuitTimes = %d, want default 3", cfg.Editor.QuitTimes)
	}
}
