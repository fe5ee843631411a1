// Package config loads settings for the relay command.
//
// Values are resolved in order: defaults, an optional YAML file, TASKBRIDGE_*
// environment variables, then command-line flags applied by the caller.
package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/task-bridge/errors"
	"github.com/wippyai/task-bridge/wasmbridge"
)

const (
	BackendCgo  = "cgo"
	BackendWasm = "wasm"
)

// Config describes one relay run.
type Config struct {
	Backend  string  `yaml:"backend"`
	Module   string  `yaml:"module"`
	Func     string  `yaml:"func"`
	LogLevel string  `yaml:"logLevel"`
	Rate     float64 `yaml:"rate"`
	Count    int     `yaml:"count"`
	Burst    int     `yaml:"burst"`
	Status   int     `yaml:"status"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Backend:  BackendWasm,
		Module:   wasmbridge.DefaultModuleName,
		Func:     wasmbridge.DefaultFuncName,
		LogLevel: "info",
		Count:    8,
		Burst:    1,
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.PhaseConfig, errors.KindInvalidConfig, err, "read "+path)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return cfg, errors.Wrap(errors.PhaseConfig, errors.KindInvalidConfig, err, "parse "+path)
	}

	cfg.Merge(parsed)
	return cfg, nil
}

// Merge copies the non-zero fields of src into c.
func (c *Config) Merge(src Config) {
	if src.Backend != "" {
		c.Backend = src.Backend
	}
	if src.Module != "" {
		c.Module = src.Module
	}
	if src.Func != "" {
		c.Func = src.Func
	}
	if src.LogLevel != "" {
		c.LogLevel = src.LogLevel
	}
	if src.Rate != 0 {
		c.Rate = src.Rate
	}
	if src.Count != 0 {
		c.Count = src.Count
	}
	if src.Burst != 0 {
		c.Burst = src.Burst
	}
	if src.Status != 0 {
		c.Status = src.Status
	}
}

// ApplyEnv overrides fields from TASKBRIDGE_* variables. Unparseable
// numbers are ignored.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv("TASKBRIDGE_BACKEND")); v != "" {
		c.Backend = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKBRIDGE_MODULE")); v != "" {
		c.Module = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKBRIDGE_FUNC")); v != "" {
		c.Func = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKBRIDGE_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("TASKBRIDGE_RATE"), 64); err == nil {
		c.Rate = v
	}
	if v, err := strconv.Atoi(os.Getenv("TASKBRIDGE_COUNT")); err == nil {
		c.Count = v
	}
	if v, err := strconv.Atoi(os.Getenv("TASKBRIDGE_STATUS")); err == nil {
		c.Status = v
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendCgo, BackendWasm:
	default:
		return errors.InvalidConfig("backend", c.Backend, "must be cgo or wasm")
	}
	if c.Module == "" {
		return errors.InvalidConfig("module", c.Module, "cannot be empty")
	}
	if c.Func == "" {
		return errors.InvalidConfig("func", c.Func, "cannot be empty")
	}
	if c.Count < 0 {
		return errors.InvalidConfig("count", c.Count, "cannot be negative")
	}
	if c.Rate < 0 {
		return errors.InvalidConfig("rate", c.Rate, "cannot be negative")
	}
	if c.Burst < 1 {
		return errors.InvalidConfig("burst", c.Burst, "must be at least 1")
	}
	if c.Status < -128 || c.Status > 127 {
		return errors.InvalidConfig("status", c.Status, "must fit in int8")
	}
	return nil
}
