package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "opsdojo.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "elaborate_feedback: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxAttempts != 5 {
		t.Errorf("maxAttempts = %d, want default 5", cfg.MaxAttempts)
	}
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("serve.addr = %q, want default :8080", cfg.Serve.Addr)
	}
	if !cfg.ElaborateFeedback {
		t.Error("elaborate_feedback not parsed")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, "max_attempts: 3\nserve:\n  addr: \":9090\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxAttempts != 3 {
		t.Errorf("maxAttempts = %d, want 3", cfg.MaxAttempts)
	}
	if cfg.Serve.Addr != ":9090" {
		t.Errorf("serve.addr = %q, want :9090", cfg.Serve.Addr)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	if _, err := Load(writeConfig(t, "max_attempts: -1\n")); err == nil {
		t.Error("expected error for negative max_attempts")
	}
	if _, err := Load(writeConfig(t, "max_attempts: [broken\n")); err == nil {
		t.Error("expected error for malformed YAML")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MaxAttempts != 5 || cfg.Serve.Addr != ":8080" || cfg.ElaborateFeedback {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
