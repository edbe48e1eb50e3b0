// File: level.go
// Title: Log Level Definitions
// Description: Log levels for filtering output and their parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace logs every interpreter step; very noisy
	LevelTrace Level = iota

	// LevelDebug logs pipeline stage transitions
	LevelDebug

	// LevelInfo is the standard level for normal operation
	LevelInfo

	// LevelWarn reports diagnostics and recoverable problems
	LevelWarn

	// LevelError reports failed runs
	LevelError

	// LevelFatal is logged right before the process exits
	LevelFatal
)

type levelInfo struct {
	name    string
	short   string
	color   string
	aliases []string
}

var levels = [...]levelInfo{
	LevelTrace: {"trace", "TRC", "\033[37m", nil},
	LevelDebug: {"debug", "DBG", "\033[36m", nil},
	LevelInfo:  {"info", "INF", "\033[32m", []string{""}},
	LevelWarn:  {"warn", "WRN", "\033[33m", []string{"warning"}},
	LevelError: {"error", "ERR", "\033[31m", nil},
	LevelFatal: {"fatal", "FTL", "\033[35m", nil},
}

func (l Level) info() (levelInfo, bool) {
	if l < LevelTrace || l > LevelFatal {
		return levelInfo{name: "unknown", short: "???", color: "\033[0m"}, false
	}
	return levels[l], true
}

// String returns the lower-case level name
func (l Level) String() string {
	li, _ := l.info()
	return li.name
}

// ShortString returns the three letter tag used by the text formatter
func (l Level) ShortString() string {
	li, _ := l.info()
	return li.short
}

// Color returns the ANSI color code used by the console formatter
func (l Level) Color() string {
	li, _ := l.info()
	return li.color
}

// ShouldLog returns true if this level passes the given minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel accepts a level name or its three letter tag, case-insensitive.
// The empty string means info.
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	for l, li := range levels {
		if s == li.name || s == strings.ToLower(li.short) {
			return Level(l), nil
		}
		for _, alias := range li.aliases {
			if s == alias {
				return Level(l), nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
