// ============================================================================
// cleanworld - Cleaning Agent Language Toolchain
// ============================================================================
//
// Package:     config
// Description: TOML and YAML configuration loading
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	cwerr "github.com/msto63/cleanworld/foundation/core/error"
	"github.com/msto63/cleanworld/foundation/core/log"
)

const (
	// EnvConfig names the environment variable holding the config file path
	EnvConfig = "CLEANWORLD_CONFIG"

	// DefaultStorePath is where run history lives unless [store] path is set
	DefaultStorePath = "./data/cleanworld.db"
)

// Config holds the complete application configuration
type Config struct {
	Log         LogConfig         `toml:"log" yaml:"log"`
	Interpreter InterpreterConfig `toml:"interpreter" yaml:"interpreter"`
	Store       StoreConfig       `toml:"store" yaml:"store"`
	Output      OutputConfig      `toml:"output" yaml:"output"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// InterpreterConfig holds execution settings
type InterpreterConfig struct {
	// MaxSteps of 0 means unlimited
	MaxSteps           int    `toml:"max_steps" yaml:"max_steps"`
	Scoping            string `toml:"scoping" yaml:"scoping"`
	RunWithDiagnostics bool   `toml:"run_with_diagnostics" yaml:"run_with_diagnostics"`
}

// StoreConfig holds run history settings
type StoreConfig struct {
	// Enabled records every run, not only those started with --record
	Enabled   bool     `toml:"enabled" yaml:"enabled"`
	Path      string   `toml:"path" yaml:"path"`
	Retention Duration `toml:"retention" yaml:"retention"`
}

// OutputConfig holds result rendering settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Color  bool   `toml:"color" yaml:"color"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// MarshalYAML formats the duration as a string
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{
		Output: OutputConfig{Color: true},
	}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file, or YAML for .yaml and .yml
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cwerr.Newf("config file not found: %s", path).
				WithCode(cwerr.CodeConfigError)
		}
		return nil, cwerr.Wrap(err, "failed to read config").WithCode(cwerr.CodeConfigError)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		_, err = toml.Decode(string(data), cfg)
	}
	if err != nil {
		return nil, cwerr.Wrap(err, "failed to parse config").
			WithCode(cwerr.CodeConfigError).
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths lists the files LoadFromEnv tries when EnvConfig is unset
func SearchPaths() []string {
	paths := []string{"./cleanworld.toml", "./cleanworld.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "cleanworld", "config.toml"))
	}
	return paths
}

// LoadFromEnv loads the file named by CLEANWORLD_CONFIG, else the first file
// of SearchPaths that exists. Without any file it returns Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return Load(path)
	}
	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Interpreter.Scoping == "" {
		c.Interpreter.Scoping = "lexical"
	}

	if c.Store.Path == "" {
		c.Store.Path = DefaultStorePath
	}
	if c.Store.Retention.Duration == 0 {
		c.Store.Retention.Duration = 30 * 24 * time.Hour
	}

	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.Store.Path = os.ExpandEnv(c.Store.Path)
}

// Validate checks every enumerated or bounded setting
func (c *Config) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return cwerr.Newf(format, args...).WithCode(cwerr.CodeConfigError)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level: %v", err)
	}
	if _, err := log.ParseFormat(c.Log.Format); err != nil {
		return invalid("log.format: %v", err)
	}
	if c.Interpreter.MaxSteps < 0 {
		return invalid("interpreter.max_steps must not be negative, got %d", c.Interpreter.MaxSteps)
	}
	switch strings.ToLower(c.Interpreter.Scoping) {
	case "lexical", "dynamic":
	default:
		return invalid("interpreter.scoping must be lexical or dynamic, got %q", c.Interpreter.Scoping)
	}
	if c.Store.Retention.Duration < 0 {
		return invalid("store.retention must not be negative, got %s", c.Store.Retention.Duration)
	}
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return invalid("output.format must be text, json or yaml, got %q", c.Output.Format)
	}
	return nil
}

// String renders the configuration as TOML
func (c *Config) String() string {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return b.String()
}
