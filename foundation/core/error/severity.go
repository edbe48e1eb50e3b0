// File: severity.go
// Title: Error Severity
// Description: Severity levels used to choose the log level of an error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers user mistakes in program text such as syntax errors
	SeverityLow Severity = iota

	// SeverityMedium covers failed runs that leave the tool usable
	SeverityMedium

	// SeverityHigh covers infrastructure failures like a broken run store
	SeverityHigh

	// SeverityCritical covers broken invariants
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// SeverityFromCode determines the default severity for a code
func SeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeDatabaseError, CodeConfigError:
		return SeverityHigh
	case CodeLexicalError, CodeSyntaxError, CodeSemanticError, CodeInvalidInput, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
