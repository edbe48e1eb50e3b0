// File: doc.go
// Title: Log Package Documentation
// Description: Package overview and usage example for structured logging.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

// Package log provides structured logging for the cleanworld toolchain.
//
// A Logger carries a minimum level, a formatter, an output writer and a name,
// plus context fields attached to every entry. The With* methods
// return a modified copy so a component can derive its own logger without
// touching the parent:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText}).
//		WithField("component", "parser")
//
//	logger.Info("Program parsed", log.Fields{"functions": 3})
//
//	timer := logger.StartTimer("analyze")
//	// ... run the analyzer
//	timer.Stop()
//
// Run-scoped loggers are created with WithRunID so that every line written
// during one pipeline execution can be correlated.
package log
