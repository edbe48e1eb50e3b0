// File: timer.go
// Title: Performance Timer
// Description: Timer that logs the duration of a pipeline stage.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Timer measures the duration of a pipeline stage and logs it on Stop
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	level     Level
	fields    Fields
	stopped   bool
}

// NewTimer creates and starts a timer. Completion is logged at debug level.
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		level:     LevelDebug,
		fields:    make(Fields),
	}
}

// WithField attaches a field to the completion entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer, logs "<operation> completed" and returns the elapsed time.
// Stopping twice returns zero and logs nothing.
func (t *Timer) Stop() time.Duration {
	return t.finish(t.operation+" completed", t.level, nil)
}

// StopWithError stops the timer and logs "<operation> failed" with err attached
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(t.operation+" failed", t.level, err)
}

// IsRunning reports whether Stop has not yet been called
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

func (t *Timer) finish(message string, level Level, err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger == nil {
		return elapsed
	}

	fields := t.fields.Merge(Fields{
		"operation":   t.operation,
		"duration_ms": float64(elapsed.Nanoseconds()) / 1e6,
	})
	t.logger.log(level, message, err, fields)
	return elapsed
}
