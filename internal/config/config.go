// Package config loads the YAML configuration of the clogdemo program.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"go.uber.org/multierr"

	"github.com/Philipp01105/clog/core"
	"github.com/Philipp01105/clog/logger"
)

// Backends accepted by Config.Backend
const (
	BackendConsole = "console"
	BackendZap     = "zap"
	BackendZerolog = "zerolog"
	BackendLogrus  = "logrus"
)

// Config describes the demo program: the Context gate and buffer, the
// sample filter and the sink backend.
type Config struct {
	// MinLevel is the runtime gate of the Context
	MinLevel string `yaml:"minLevel"`
	// FilterLevel is the minimum level accepted by the sample filter
	FilterLevel string `yaml:"filterLevel"`
	BufferSize  int    `yaml:"bufferSize"`
	// Color forces color on or off; nil auto-detects a terminal
	Color   *bool           `yaml:"color"`
	Backend string          `yaml:"backend"`
	Tags    map[string]bool `yaml:"tags"`
	File    FileConfig      `yaml:"file"`
}

// FileConfig configures the optional file sink
type FileConfig struct {
	// Path enables an additional file sink when set
	Path       string `yaml:"path"`
	MaxSize    int64  `yaml:"maxSize"`
	MaxBackups int    `yaml:"maxBackups"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		MinLevel:    "trace",
		FilterLevel: "error",
		BufferSize:  logger.DefaultBufferSize,
		Backend:     BackendConsole,
	}
}

// Load reads the YAML file at path over the defaults. Unknown keys are
// rejected.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.UnmarshalWithOptions(b, &cfg, yaml.Strict()); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every problem of cfg at once
func (cfg Config) Validate() error {
	var errs error

	if _, err := core.ParseLevel(cfg.MinLevel); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("minLevel: %w", err))
	}
	if _, err := core.ParseLevel(cfg.FilterLevel); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("filterLevel: %w", err))
	}
	if cfg.BufferSize < 2 {
		errs = multierr.Append(errs, fmt.Errorf("bufferSize: must be at least 2, got %d", cfg.BufferSize))
	}

	switch cfg.Backend {
	case BackendConsole, BackendZap, BackendZerolog, BackendLogrus:
	default:
		errs = multierr.Append(errs, fmt.Errorf("backend: unknown backend %q", cfg.Backend))
	}

	if cfg.File.MaxSize < 0 {
		errs = multierr.Append(errs, fmt.Errorf("file.maxSize: negative value %d", cfg.File.MaxSize))
	}
	if cfg.File.MaxBackups < 0 {
		errs = multierr.Append(errs, fmt.Errorf("file.maxBackups: negative value %d", cfg.File.MaxBackups))
	}
	if cfg.File.Path == "" && (cfg.File.MaxSize > 0 || cfg.File.MaxBackups > 0) {
		errs = multierr.Append(errs, fmt.Errorf("file: rotation limits set without a path"))
	}

	return errs
}

// Level returns the parsed MinLevel. cfg must be valid.
func (cfg Config) Level() core.Level {
	l, _ := core.ParseLevel(cfg.MinLevel)
	return l
}

// Filter returns the parsed FilterLevel. cfg must be valid.
func (cfg Config) Filter() core.Level {
	l, _ := core.ParseLevel(cfg.FilterLevel)
	return l
}

// TagEnabled reports whether name is enabled. Tags not listed are enabled.
func (cfg Config) TagEnabled(name string) bool {
	enabled, ok := cfg.Tags[name]
	return !ok || enabled
}
