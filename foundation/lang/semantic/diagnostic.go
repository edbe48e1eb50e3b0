// File: diagnostic.go
// Title: Diagnostics
// Description: Diagnostic kinds and formatting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package semantic

import "fmt"

// DiagnosticKind identifies the rule a diagnostic reports
type DiagnosticKind string

const (
	DuplicateFunction     DiagnosticKind = "duplicate-function"
	DuplicateParam        DiagnosticKind = "duplicate-param"
	DuplicateVariable     DiagnosticKind = "duplicate-variable"
	UndeclaredAssignment  DiagnosticKind = "undeclared-assignment"
	UndeclaredIdentifier  DiagnosticKind = "undeclared-identifier"
	UndeclaredFunction    DiagnosticKind = "undeclared-function"
	ArgumentCount         DiagnosticKind = "argument-count"
	ReturnOutsideFunction DiagnosticKind = "return-outside-function"
	VoidReturnValue       DiagnosticKind = "void-return-value"
	MalformedTree         DiagnosticKind = "malformed-tree"
)

// Diagnostic is one collected semantic error
type Diagnostic struct {
	Line    int            `json:"line" yaml:"line"`
	Kind    DiagnosticKind `json:"kind" yaml:"kind"`
	Message string         `json:"message" yaml:"message"`
}

// String returns the line-stamped message, e.g. "line 4: Use of undeclared identifier: x"
func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

// Error lets a diagnostic travel as an error value in log entries
func (d Diagnostic) Error() string {
	return d.String()
}

// Strings formats a list of diagnostics
func Strings(diags []Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.String()
	}
	return out
}
