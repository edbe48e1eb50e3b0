// File: error_test.go
// Title: Structured Error Tests
// Description: Unit tests for error construction, wrapping and code lookup.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test suite

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("boom")

	if err.Error() != "boom" {
		t.Errorf("Error() = %q, want %q", err.Error(), "boom")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %s, want %s", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %s, want medium", err.Severity())
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should be set")
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if Wrap(nil, "ctx") != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("standard error", func(t *testing.T) {
		base := errors.New("disk full")
		err := Wrap(base, "record run")
		if err.Error() != "record run: disk full" {
			t.Errorf("Error() = %q", err.Error())
		}
		if !errors.Is(err, base) {
			t.Error("wrapped error should match cause with errors.Is")
		}
		if err.Code() != CodeUnknown {
			t.Errorf("Code() = %s, want UNKNOWN", err.Code())
		}
	})

	t.Run("inherits code and details", func(t *testing.T) {
		inner := New("no such function").
			WithCode(CodeUndefinedFunction).
			WithDetail("function", "sweep")
		err := Wrap(inner, "run agent")
		if err.Code() != CodeUndefinedFunction {
			t.Errorf("Code() = %s, want %s", err.Code(), CodeUndefinedFunction)
		}
		if err.Details()["function"] != "sweep" {
			t.Errorf("Details() = %v", err.Details())
		}
	})
}

func TestWithCodeRaisesSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeSyntaxError, SeverityMedium},
		{CodeDatabaseError, SeverityHigh},
		{CodeInternal, SeverityCritical},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
				t.Errorf("severity = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHasCodeWalksChain(t *testing.T) {
	inner := New("step budget exhausted").WithCode(CodeStepLimit)
	outer := Wrap(inner, "run").WithCode(CodeRuntimeError)
	viaFmt := fmt.Errorf("cli: %w", outer)

	if !HasCode(viaFmt, CodeStepLimit) {
		t.Error("HasCode should find STEP_LIMIT deeper in the chain")
	}
	if !HasCode(viaFmt, CodeRuntimeError) {
		t.Error("HasCode should find RUNTIME_ERROR")
	}
	if HasCode(viaFmt, CodeNotFound) {
		t.Error("HasCode matched a code that is not present")
	}
	if GetCode(viaFmt) != CodeRuntimeError {
		t.Errorf("GetCode() = %s, want outermost RUNTIME_ERROR", GetCode(viaFmt))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode on plain error should be UNKNOWN")
	}
}

func TestCodeExitCode(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeSyntaxError, 2},
		{CodeSemanticError, 2},
		{CodeStepLimit, 3},
		{CodeConfigError, 4},
		{CodeDatabaseError, 5},
		{CodeUnknown, 1},
		{Code("MADE_UP"), 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.ExitCode(); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
	if Code("MADE_UP").IsValid() {
		t.Error("undefined code reported valid")
	}
}

func TestStringAndJSON(t *testing.T) {
	err := Wrap(errors.New("locked"), "open store").
		WithCode(CodeDatabaseError).
		WithOperation("store.open").
		WithDetail("path", "/tmp/runs.db").
		WithDetail("attempt", 1)

	s := err.String()
	for _, want := range []string{"Code: DATABASE_ERROR", "Operation: store.open", "Details: {attempt=1, path=/tmp/runs.db}", "Cause: locked"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}

	raw, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatal(jerr)
	}
	var decoded map[string]interface{}
	if jerr := json.Unmarshal(raw, &decoded); jerr != nil {
		t.Fatal(jerr)
	}
	if decoded["code"] != "DATABASE_ERROR" || decoded["severity"] != "high" {
		t.Errorf("unexpected JSON: %s", raw)
	}
}
