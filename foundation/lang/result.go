// File: result.go
// Title: Run Result
// Description: Run status values and the result record of one run.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package lang

import (
	"time"

	"github.com/msto63/cleanworld/foundation/lang/interp"
	"github.com/msto63/cleanworld/foundation/lang/semantic"
	"github.com/msto63/cleanworld/foundation/lang/world"
)

// Status summarizes how far a run got
type Status string

const (
	StatusOK            Status = "ok"
	StatusStopped       Status = "stopped"
	StatusLexicalError  Status = "lexical_error"
	StatusSyntaxError   Status = "syntax_error"
	StatusSemanticError Status = "semantic_error"
	StatusRuntimeError  Status = "runtime_error"
)

// Failed reports whether the status marks an error
func (s Status) Failed() bool {
	return s != StatusOK && s != StatusStopped
}

// Result is everything a run produced. It is rendered by the CLI and stored
// in the run history.
type Result struct {
	RunID string `json:"run_id" yaml:"run_id"`
	// Name identifies the source, usually its file name
	Name string `json:"name" yaml:"name"`
	// Program is the agent name
	Program   string `json:"program,omitempty" yaml:"program,omitempty"`
	SourceSHA string `json:"source_sha256" yaml:"source_sha256"`
	Status    Status `json:"status" yaml:"status"`

	LexicalErrors []string              `json:"lexical_errors,omitempty" yaml:"lexical_errors,omitempty"`
	Diagnostics   []semantic.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Warnings      []string              `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Error         string                `json:"error,omitempty" yaml:"error,omitempty"`

	Outputs []string       `json:"outputs" yaml:"outputs"`
	Events  []interp.Event `json:"events,omitempty" yaml:"events,omitempty"`
	// Initial is the world with the agent placed, before the first statement
	Initial *world.Snapshot `json:"initial,omitempty" yaml:"initial,omitempty"`
	Final   *world.Snapshot `json:"final,omitempty" yaml:"final,omitempty"`
	Steps   int             `json:"steps" yaml:"steps"`

	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`
	DurationMS int64     `json:"duration_ms" yaml:"duration_ms"`
}

// Errors lists every error message of the result in the order the stages ran
func (r *Result) Errors() []string {
	var out []string
	out = append(out, r.LexicalErrors...)
	if r.Status == StatusSyntaxError {
		out = append(out, r.Error)
	}
	out = append(out, semantic.Strings(r.Diagnostics)...)
	if r.Status == StatusRuntimeError {
		out = append(out, r.Error)
	}
	return out
}
