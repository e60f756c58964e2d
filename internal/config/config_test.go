package config

import (
	"path/filepath"
	"testing"
)

func TestLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// No file yet: defaults.
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with no file: %v", err)
	}
	if cfg.General.LogsDir != filepath.Join("logs", "sessions") {
		t.Errorf("default LogsDir = %q", cfg.General.LogsDir)
	}
	if Exists() {
		t.Error("Exists() = true before any save")
	}

	cfg.General.LogsDir = "/var/log/agent"
	cfg.General.DefaultSession = "/var/log/agent/latest.jsonl"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Error("Exists() = false after save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load after save: %v", err)
	}
	if got.General.LogsDir != "/var/log/agent" || got.General.DefaultSession != "/var/log/agent/latest.jsonl" {
		t.Errorf("round trip = %+v", got.General)
	}
}
