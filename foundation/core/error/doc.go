// File: doc.go
// Title: Error Package Documentation
// Description: Package overview for structured cleanworld errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

// Package error provides structured errors for the cleanworld toolchain.
//
// An Error carries a message, an optional cause, a Code that classifies the
// failure, a Severity and free-form details. Builder methods return the
// receiver so errors can be assembled inline:
//
//	err := error.New("unknown function").
//		WithCode(error.CodeUndefinedFunction).
//		WithOperation("interp.call").
//		WithDetail("function", name)
//
// Wrap preserves code and severity of a wrapped *Error. HasCode and GetCode
// walk the cause chain with errors.As, so a code survives any number of
// wraps, including fmt.Errorf with %w.
package error
