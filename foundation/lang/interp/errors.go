// File: errors.go
// Title: Runtime Errors
// Description: Runtime error type raised by the interpreter.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package interp

import (
	"fmt"

	cwerr "github.com/msto63/cleanworld/foundation/core/error"
)

// RuntimeError aborts a run. Code is one of CodeUndefinedFunction,
// CodeStepLimit or CodeCancelled.
type RuntimeError struct {
	Line     int
	Code     cwerr.Code
	Function string
	Message  string
	cause    error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("line %d: runtime error: %s", e.Line, e.Message)
}

// Unwrap exposes the context error for cancelled runs
func (e *RuntimeError) Unwrap() error {
	return e.cause
}
