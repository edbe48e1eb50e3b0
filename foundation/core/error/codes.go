// File: codes.go
// Title: Error Codes
// Description: Error codes for every pipeline stage and their categories.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package error

// Code classifies an error
type Code string

const (
	// CodeUnknown is used for errors that were never classified
	CodeUnknown Code = "UNKNOWN"

	// CodeInternal marks a broken invariant inside the toolchain
	CodeInternal Code = "INTERNAL"

	// Language pipeline
	CodeLexicalError      Code = "LEXICAL_ERROR"
	CodeSyntaxError       Code = "SYNTAX_ERROR"
	CodeSemanticError     Code = "SEMANTIC_ERROR"
	CodeRuntimeError      Code = "RUNTIME_ERROR"
	CodeUndefinedFunction Code = "UNDEFINED_FUNCTION"
	CodeStepLimit         Code = "STEP_LIMIT"
	CodeCancelled         Code = "CANCELLED"

	// Inputs and infrastructure
	CodeInvalidInput  Code = "INVALID_INPUT"
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeDatabaseError Code = "DATABASE_ERROR"
	CodeNotFound      Code = "NOT_FOUND"
)

var knownCodes = map[Code]string{
	CodeUnknown:           "general",
	CodeInternal:          "general",
	CodeLexicalError:      "language",
	CodeSyntaxError:       "language",
	CodeSemanticError:     "language",
	CodeRuntimeError:      "runtime",
	CodeUndefinedFunction: "runtime",
	CodeStepLimit:         "runtime",
	CodeCancelled:         "runtime",
	CodeInvalidInput:      "input",
	CodeConfigError:       "input",
	CodeDatabaseError:     "storage",
	CodeNotFound:          "storage",
}

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether c is one of the defined codes
func (c Code) IsValid() bool {
	_, ok := knownCodes[c]
	return ok
}

// Category groups codes by the layer that produces them
func (c Code) Category() string {
	if cat, ok := knownCodes[c]; ok {
		return cat
	}
	return "general"
}

// ExitCode maps a code to a process exit status for the CLI
func (c Code) ExitCode() int {
	switch c.Category() {
	case "language":
		return 2
	case "runtime":
		return 3
	case "input":
		return 4
	case "storage":
		return 5
	default:
		return 1
	}
}
