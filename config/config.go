// Package config loads sides settings from TOML files and the environment.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/sides/errors"
	"github.com/wippyai/sides/reference"
	"github.com/wippyai/sides/runtime"
	"github.com/wippyai/sides/script"
)

// EnvFile names the variable holding a config file path.
const EnvFile = "SIDES_CONFIG"

// Config is the file layout.
type Config struct {
	Script           string    `toml:"script"`
	LogLevel         string    `toml:"log_level"`
	LogFormat        string    `toml:"log_format"`
	MemoryLimitPages uint32    `toml:"memory_limit_pages"`
	Reference        Reference `toml:"reference"`
}

// Reference configures the reference Thing.
type Reference struct {
	Number int32 `toml:"number"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Script:    script.DefaultPath,
		LogLevel:  "info",
		LogFormat: "text",
		Reference: Reference{Number: reference.DefaultNumber},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "decode "+path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Detail("%s: unknown key %s", path, undecoded[0]).
			Build()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv loads the file named by SIDES_CONFIG, or returns the defaults
// when the variable is unset.
func FromEnv() (*Config, error) {
	path := os.Getenv(EnvFile)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Value(c.LogLevel).
			Detail("log_level must be debug, info, warn or error").
			Build()
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Value(c.LogFormat).
			Detail("log_format must be text or json").
			Build()
	}
	if c.Script == "" {
		return errors.InvalidInput(errors.PhaseConfig, "script must not be empty")
	}
	if c.MemoryLimitPages > runtime.MaxMemoryPages {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Value(c.MemoryLimitPages).
			Detail("memory_limit_pages must be at most %d", runtime.MaxMemoryPages).
			Build()
	}
	return nil
}
