// File: engine_test.go
// Title: Language Engine Tests
// Description: End-to-end tests of the pipeline from source to run result.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test suite

package lang

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	cwerr "github.com/msto63/cleanworld/foundation/core/error"
	cwlog "github.com/msto63/cleanworld/foundation/core/log"
	"github.com/msto63/cleanworld/foundation/lang/cst"
	"github.com/msto63/cleanworld/foundation/lang/interp"
	"github.com/msto63/cleanworld/foundation/lang/world"
)

const corridor = `WORLD corridor {
  SIZE(3,1);
  ENTRY_DEF(1,1,E);
  EXIT_DEF(3,1,E);
  DIRT_DEF(2,1);
}
FUNC advance() RETURNS VOID {
  MOVE;
  IF SENSE DIRT THEN CLEAN; ELSE REPORT 0; ENDIF;
}
AGENT bot {
  WHILE NOT SENSE EXIT DO advance(); ENDWHILE;
  REPORT 1;
}`

func newTestEngine(opts Options) *Engine {
	opts.Logger = cwlog.Discard()
	return NewEngine(opts)
}

func TestRunOK(t *testing.T) {
	res, err := newTestEngine(Options{}).Run(context.Background(), "corridor.cw", corridor)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{
		"[MOVE] Agent moved to (2,1) facing E",
		"[CLEAN] Dirt cleaned at (2,1). Total: 1",
		"[MOVE] Agent moved to (3,1) facing E",
		"[REPORT] 0",
		"[REPORT] 1",
	}
	if diff := cmp.Diff(want, res.Outputs); diff != "" {
		t.Errorf("outputs (-want +got):\n%s", diff)
	}
	if res.Status != StatusOK || res.Program != "bot" || res.Name != "corridor.cw" {
		t.Errorf("result = status %s program %q name %q", res.Status, res.Program, res.Name)
	}
	if len(res.RunID) != 36 || len(res.SourceSHA) != 64 {
		t.Errorf("run id %q, sha %q", res.RunID, res.SourceSHA)
	}
	if res.Final == nil || res.Final.Agent != (world.Cell{X: 3, Y: 1}) || res.Final.Cleaned != 1 {
		t.Errorf("final = %+v", res.Final)
	}
	if len(res.Events) != len(res.Outputs) {
		t.Errorf("%d events for %d outputs", len(res.Events), len(res.Outputs))
	}
	if res.FinishedAt.Before(res.StartedAt) {
		t.Error("finished before started")
	}
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		opts       Options
		wantStatus Status
		wantCode   cwerr.Code
		wantErrors []string
	}{
		{
			name:       "lexical",
			src:        "WORLD w { SIZE(2,2); }\nAGENT a { REPORT 1 # 2; }",
			wantStatus: StatusLexicalError,
			wantCode:   cwerr.CodeLexicalError,
			wantErrors: []string{"line 2: Illegal character '#'"},
		},
		{
			name:       "syntax",
			src:        "WORLD w { SIZE(2,2); }\nAGENT a { MOVE CLEAN; }",
			wantStatus: StatusSyntaxError,
			wantCode:   cwerr.CodeSyntaxError,
			wantErrors: []string{"line 2: syntax error at CLEAN 'CLEAN', expected ';' after move"},
		},
		{
			name:       "semantic",
			src:        "WORLD w { SIZE(2,2); }\nAGENT a { x = 1; }",
			wantStatus: StatusSemanticError,
			wantCode:   cwerr.CodeSemanticError,
			wantErrors: []string{"line 2: Assignment to undeclared identifier: x"},
		},
		{
			name:       "step limit",
			src:        "WORLD w { SIZE(2,2); }\nAGENT a { WHILE 1 == 1 DO TURN LEFT; ENDWHILE; }",
			opts:       Options{MaxSteps: 10},
			wantStatus: StatusRuntimeError,
			wantCode:   cwerr.CodeStepLimit,
			wantErrors: []string{"line 2: runtime error: step limit of 10 exceeded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := newTestEngine(tt.opts).Run(context.Background(), tt.name, tt.src)
			if err == nil {
				t.Fatal("Run succeeded, want an error")
			}
			if !cwerr.HasCode(err, tt.wantCode) {
				t.Errorf("code = %s, want %s (err %v)", cwerr.GetCode(err), tt.wantCode, err)
			}
			if res.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", res.Status, tt.wantStatus)
			}
			if !res.Status.Failed() {
				t.Error("Failed() should be true")
			}
			if diff := cmp.Diff(tt.wantErrors, res.Errors()); diff != "" {
				t.Errorf("Errors() (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunAbortLogged(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(Options{
		Logger:   cwlog.NewWithConfig(cwlog.Config{Level: cwlog.LevelWarn, Format: cwlog.FormatText, Output: &buf}),
		MaxSteps: 10,
	})
	src := "WORLD w { SIZE(2,2); }\nAGENT a { WHILE 1 == 1 DO TURN LEFT; ENDWHILE; }"
	if _, err := e.Run(context.Background(), "loop", src); err == nil {
		t.Fatal("Run succeeded, want a step limit error")
	}

	out := buf.String()
	for _, want := range []string{"[ERR]", "Run aborted", "code=STEP_LIMIT", "step limit of 10 exceeded"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %s", out, want)
		}
	}
}

func TestRunWithDiagnostics(t *testing.T) {
	src := "WORLD w { SIZE(2,2); }\nAGENT a { x = 1; REPORT x; }"

	res, err := newTestEngine(Options{RunWithDiagnostics: true}).Run(context.Background(), "forced", src)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Status != StatusSemanticError || len(res.Diagnostics) != 1 {
		t.Errorf("status %s with %d diagnostics", res.Status, len(res.Diagnostics))
	}
	if diff := cmp.Diff([]string{"[REPORT] 1"}, res.Outputs); diff != "" {
		t.Errorf("outputs (-want +got):\n%s", diff)
	}
}

func TestRunStoppedByReturn(t *testing.T) {
	src := "WORLD w { SIZE(2,2); }\nAGENT a { REPORT 1; RETURN; }"
	res, err := newTestEngine(Options{}).Run(context.Background(), "stop", src)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusStopped || res.Status.Failed() {
		t.Errorf("status = %s", res.Status)
	}
}

func TestRunFunctionNameAsVariable(t *testing.T) {
	src := `WORLD w { SIZE(2,2); }
FUNC f() RETURNS INT { RETURN 1; }
AGENT a { REPORT f; f = 3; REPORT f; REPORT f(); }`
	res, err := newTestEngine(Options{}).Run(context.Background(), "shadow", src)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Status != StatusOK || len(res.Diagnostics) != 0 {
		t.Errorf("status %s with diagnostics %v", res.Status, res.Errors())
	}
	want := []string{"[REPORT] 0", "[REPORT] 3", "[REPORT] 1"}
	if diff := cmp.Diff(want, res.Outputs); diff != "" {
		t.Errorf("outputs (-want +got):\n%s", diff)
	}
}

func TestRunUndefinedFunctionWithDiagnostics(t *testing.T) {
	src := "WORLD w { SIZE(2,2); }\nAGENT a { REPORT 1; ghost(); }"
	res, err := newTestEngine(Options{RunWithDiagnostics: true}).Run(context.Background(), "ghost", src)

	var rerr *interp.RuntimeError
	if !errors.As(err, &rerr) || rerr.Code != cwerr.CodeUndefinedFunction {
		t.Fatalf("err = %v, want undefined function", err)
	}
	if !cwerr.HasCode(err, cwerr.CodeUndefinedFunction) {
		t.Errorf("engine error code = %s", cwerr.GetCode(err))
	}
	if diff := cmp.Diff([]string{"[REPORT] 1"}, res.Outputs); diff != "" {
		t.Errorf("outputs before the failure (-want +got):\n%s", diff)
	}
}

func TestLowerMalformedTree(t *testing.T) {
	res := newResult("broken", "")
	prog, err := newTestEngine(Options{}).lower(res, cst.NewNode(cst.StmtList, 1))
	if prog != nil {
		t.Errorf("prog = %#v, want nil", prog)
	}
	if !cwerr.HasCode(err, cwerr.CodeSemanticError) {
		t.Errorf("error = %v, want SEMANTIC_ERROR", err)
	}
	if res.Status != StatusSemanticError || len(res.Diagnostics) != 1 || res.Initial != nil {
		t.Errorf("result = status %s, %d diagnostics, initial %v", res.Status, len(res.Diagnostics), res.Initial)
	}
}

func TestCompileLints(t *testing.T) {
	src := "WORLD w { SIZE(2,2); DIRT_DEF(5,5); }\nAGENT a { MOVE; }"
	prog, res, err := newTestEngine(Options{}).Compile("lint", src)
	if err != nil {
		t.Fatal(err)
	}
	if prog == nil || res.Status != StatusOK {
		t.Errorf("prog = %v, status = %q", prog, res.Status)
	}
	if len(res.Warnings) < 2 {
		t.Fatalf("warnings = %v", res.Warnings)
	}
	if !strings.Contains(strings.Join(res.Warnings, "\n"), "(5,5)") {
		t.Errorf("warnings should mention the stray dirt: %v", res.Warnings)
	}
	if len(res.Events) != 0 || len(res.Outputs) != 0 {
		t.Error("Compile must not execute")
	}
}

func TestTokenizeDictionary(t *testing.T) {
	tokens, dict, err := newTestEngine(Options{}).Tokenize("AGENT a { VAR x = 1; x = x + 1; }")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) == 0 {
		t.Fatal("no tokens")
	}
	sym, ok := dict.Lookup("x")
	if !ok || sym.Count != 3 {
		t.Errorf("x = %+v, %v; want count 3", sym, ok)
	}
}
