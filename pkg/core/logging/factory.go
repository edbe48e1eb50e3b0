// ============================================================================
// cleanworld - Cleaning Agent Language Toolchain
// ============================================================================
//
// Package:     logging
// Description: Logger construction from configuration
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	cwerr "github.com/msto63/cleanworld/foundation/core/error"
	cwlog "github.com/msto63/cleanworld/foundation/core/log"
	"github.com/msto63/cleanworld/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Name appears in every entry
	Name string

	// Level is trace, debug, info, warn, error or fatal
	Level string

	// Format is json, text or console
	Format string

	// Output defaults to stderr; stdout is reserved for program results
	Output io.Writer

	// AdditionalOutputs receive a copy of every entry
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// FromConfig derives a LoggerConfig from the [log] section
func FromConfig(name string, c config.LogConfig) LoggerConfig {
	cfg := DefaultLoggerConfig(name)
	if c.Level != "" {
		cfg.Level = c.Level
	}
	if c.Format != "" {
		cfg.Format = c.Format
	}
	return cfg
}

// NewLogger creates a logger. Invalid level or format names are an error
// rather than a silent fallback.
func NewLogger(cfg LoggerConfig) (*cwlog.Logger, error) {
	level, err := cwlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, cwerr.Wrap(err, "invalid log level").WithCode(cwerr.CodeConfigError)
	}
	format, err := cwlog.ParseFormat(cfg.Format)
	if err != nil {
		return nil, cwerr.Wrap(err, "invalid log format").WithCode(cwerr.CodeConfigError)
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return cwlog.NewWithConfig(cwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	}), nil
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *cwlog.Logger {
	logger, err := NewLogger(DefaultLoggerConfig(name))
	if err != nil {
		// the defaults always parse
		panic(err)
	}
	return logger
}
