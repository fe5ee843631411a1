package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	taskerrors "github.com/wippyai/task-bridge/errors"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "relay.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load missing: %v", err)
	}
	if cfg != Default() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
backend: cgo
count: 100
rate: 50.5
status: -1
logLevel: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != BackendCgo {
		t.Errorf("Backend = %q", cfg.Backend)
	}
	if cfg.Count != 100 || cfg.Rate != 50.5 || cfg.Status != -1 {
		t.Errorf("numbers = %d/%v/%d", cfg.Count, cfg.Rate, cfg.Status)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Module != Default().Module || cfg.Func != Default().Func {
		t.Errorf("unset fields should keep defaults: %+v", cfg)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := writeFile(t, "backend: [unterminated\n")

	_, err := Load(path)
	if !errors.Is(err, &taskerrors.Error{Phase: taskerrors.PhaseConfig, Kind: taskerrors.KindInvalidConfig}) {
		t.Fatalf("err = %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("TASKBRIDGE_BACKEND", "cgo")
	t.Setenv("TASKBRIDGE_MODULE", "uniffi")
	t.Setenv("TASKBRIDGE_COUNT", "3")
	t.Setenv("TASKBRIDGE_STATUS", "1")
	t.Setenv("TASKBRIDGE_RATE", "not-a-number")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.Backend != "cgo" || cfg.Module != "uniffi" {
		t.Errorf("strings not applied: %+v", cfg)
	}
	if cfg.Count != 3 || cfg.Status != 1 {
		t.Errorf("numbers not applied: %+v", cfg)
	}
	if cfg.Rate != 0 {
		t.Errorf("bad rate should be ignored, got %v", cfg.Rate)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"cgo", func(c *Config) { c.Backend = BackendCgo }, false},
		{"unknown backend", func(c *Config) { c.Backend = "tcp" }, true},
		{"empty module", func(c *Config) { c.Module = "" }, true},
		{"empty func", func(c *Config) { c.Func = "" }, true},
		{"negative count", func(c *Config) { c.Count = -1 }, true},
		{"negative rate", func(c *Config) { c.Rate = -2 }, true},
		{"zero burst", func(c *Config) { c.Burst = 0 }, true},
		{"status too large", func(c *Config) { c.Status = 128 }, true},
		{"status min", func(c *Config) { c.Status = -128 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, &taskerrors.Error{Phase: taskerrors.PhaseConfig, Kind: taskerrors.KindInvalidConfig}) {
				t.Errorf("unexpected error type: %v", err)
			}
		})
	}
}
