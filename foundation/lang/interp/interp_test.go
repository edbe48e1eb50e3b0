// File: interp_test.go
// Title: Interpreter Tests
// Description: Unit tests for execution, scoping and runtime errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test suite

package interp

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	cwerr "github.com/msto63/cleanworld/foundation/core/error"
	cwlog "github.com/msto63/cleanworld/foundation/core/log"
	"github.com/msto63/cleanworld/foundation/lang/ast"
	"github.com/msto63/cleanworld/foundation/lang/lexer"
	"github.com/msto63/cleanworld/foundation/lang/parser"
	"github.com/msto63/cleanworld/foundation/lang/semantic"
	"github.com/msto63/cleanworld/foundation/lang/world"
)

func compile(t *testing.T, src string) *ast.Program {
	t.Helper()
	tokens, lexErrs := lexer.Tokenize(src, nil)
	if len(lexErrs) != 0 {
		t.Fatalf("lexical errors: %v", lexErrs)
	}
	root, err := parser.New(parser.Options{Logger: cwlog.Discard()}).Parse(tokens)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	prog, diags := semantic.New(semantic.Options{Logger: cwlog.Discard()}).Analyze(root)
	if len(diags) != 0 {
		t.Fatalf("diagnostics: %v", semantic.Strings(diags))
	}
	return prog
}

func run(t *testing.T, prog *ast.Program, opts Options) *Result {
	t.Helper()
	opts.Logger = cwlog.Discard()
	res, err := New(opts).Execute(context.Background(), prog)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	return res
}

const sweep = `
WORLD strip { SIZE(3,1); ENTRY_DEF(1,1,E); DIRT_DEF(2,1); DIRT_DEF(3,1); }
AGENT sweeper {
  VAR i = 0;
  WHILE i < 3 DO
    IF SENSE DIRT THEN CLEAN; ELSE REPORT i; ENDIF;
    MOVE;
    i = i + 1;
  ENDWHILE;
  REPORT i;
}`

func TestSweep(t *testing.T) {
	res := run(t, compile(t, sweep), Options{})

	want := []string{
		"[REPORT] 0",
		"[MOVE] Agent moved to (2,1) facing E",
		"[CLEAN] Dirt cleaned at (2,1). Total: 1",
		"[MOVE] Agent moved to (3,1) facing E",
		"[CLEAN] Dirt cleaned at (3,1). Total: 2",
		"[MOVE] Blocked - out of bounds at (4,1)",
		"[REPORT] 3",
	}
	if diff := cmp.Diff(want, res.State.Outputs); diff != "" {
		t.Errorf("outputs (-want +got):\n%s", diff)
	}
	if res.State.Cleaned != 2 || len(res.State.Dirt) != 0 {
		t.Errorf("cleaned = %d, dirt left = %v", res.State.Cleaned, res.State.Dirt.Sorted())
	}
	if res.Stopped {
		t.Error("agent finished normally, Stopped should be false")
	}

	var actions []world.ActionKind
	for i, ev := range res.Events {
		if ev.Seq != i+1 {
			t.Errorf("event %d has seq %d", i, ev.Seq)
		}
		if ev.Message != res.State.Outputs[i] {
			t.Errorf("event %d message %q does not match output %q", i, ev.Message, res.State.Outputs[i])
		}
		actions = append(actions, ev.Action)
	}
	wantActions := []world.ActionKind{
		world.ActionReport, world.ActionMove, world.ActionClean,
		world.ActionMove, world.ActionClean, world.ActionMove, world.ActionReport,
	}
	if diff := cmp.Diff(wantActions, actions); diff != "" {
		t.Errorf("event actions (-want +got):\n%s", diff)
	}
	if v := res.Events[6].Value; v == nil || *v != 3 {
		t.Errorf("last report value = %v, want 3", v)
	}
}

func TestReturn(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		want        []string
		wantStopped bool
	}{
		{
			name: "return ends the function but not the caller",
			src: `WORLD w { SIZE(2,2); }
FUNC f() RETURNS INT { REPORT 1; RETURN 7; REPORT 2; }
AGENT a { VAR x = f(); REPORT x; REPORT 9; }`,
			want: []string{"[REPORT] 1", "[REPORT] 7", "[REPORT] 9"},
		},
		{
			name: "return from inside a loop",
			src: `WORLD w { SIZE(2,2); }
FUNC first() RETURNS INT {
  VAR i = 0;
  WHILE i < 10 DO
    IF i == 4 THEN RETURN i; ELSE i = i + 1; ENDIF;
  ENDWHILE;
  RETURN 0 - 1;
}
AGENT a { REPORT first(); }`,
			want: []string{"[REPORT] 4"},
		},
		{
			name: "bare return in a void function",
			src: `WORLD w { SIZE(2,2); }
FUNC g() RETURNS VOID { REPORT 1; RETURN; REPORT 2; }
AGENT a { g(); REPORT 3; }`,
			want: []string{"[REPORT] 1", "[REPORT] 3"},
		},
		{
			name: "recursion",
			src: `WORLD w { SIZE(2,2); }
FUNC sum(n) RETURNS INT {
  IF n == 0 THEN RETURN 0; ELSE RETURN n + sum(n - 1); ENDIF;
}
AGENT a { REPORT sum(4); }`,
			want: []string{"[REPORT] 10"},
		},
		{
			name: "falling off the end yields 0",
			src: `WORLD w { SIZE(2,2); }
FUNC h() RETURNS INT { REPORT 5; }
AGENT a { REPORT h(); }`,
			want: []string{"[REPORT] 5", "[REPORT] 0"},
		},
		{
			name: "return in the agent body stops the agent",
			src: `WORLD w { SIZE(2,2); }
AGENT a { REPORT 1; RETURN; REPORT 2; }`,
			want:        []string{"[REPORT] 1"},
			wantStopped: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, compile(t, tt.src), Options{})
			if diff := cmp.Diff(tt.want, res.State.Outputs); diff != "" {
				t.Errorf("outputs (-want +got):\n%s", diff)
			}
			if res.Stopped != tt.wantStopped {
				t.Errorf("Stopped = %v, want %v", res.Stopped, tt.wantStopped)
			}
		})
	}
}

func TestScoping(t *testing.T) {
	src := `WORLD w { SIZE(2,2); }
FUNC f() RETURNS INT { VAR x = 5; RETURN x; }
AGENT a { VAR x = 1; VAR y = f(); REPORT x; REPORT y; }`

	tests := []struct {
		scoping Scoping
		want    []string
	}{
		{ScopingLexical, []string{"[REPORT] 1", "[REPORT] 5"}},
		{ScopingDynamic, []string{"[REPORT] 5", "[REPORT] 5"}},
	}
	for _, tt := range tests {
		t.Run(tt.scoping.String(), func(t *testing.T) {
			res := run(t, compile(t, src), Options{Scoping: tt.scoping})
			if diff := cmp.Diff(tt.want, res.State.Outputs); diff != "" {
				t.Errorf("outputs (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseScoping(t *testing.T) {
	for in, want := range map[string]Scoping{"": ScopingLexical, "Lexical": ScopingLexical, " dynamic ": ScopingDynamic} {
		got, err := ParseScoping(in)
		if err != nil || got != want {
			t.Errorf("ParseScoping(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseScoping("global"); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func intLit(v int64) ast.Expr { return &ast.IntLit{Value: v} }

func TestArgumentBinding(t *testing.T) {
	diff := &ast.FunctionDef{
		Name:       "diff",
		Params:     []string{"a", "b"},
		ReturnType: ast.TypeInt,
		Body: []ast.Stmt{&ast.Return{Value: &ast.BinOp{
			Op:    ast.OpSub,
			Left:  &ast.VarRef{Name: "a"},
			Right: &ast.VarRef{Name: "b"},
		}}},
	}
	report := func(args ...ast.Expr) ast.Stmt {
		return &ast.Report{Value: &ast.Call{Name: "diff", Args: args}}
	}
	prog := &ast.Program{
		World:     &ast.WorldDef{Name: "w"},
		Functions: []*ast.FunctionDef{diff},
		Agent: &ast.AgentDef{Name: "a", Body: []ast.Stmt{
			report(intLit(5)),
			report(intLit(5), intLit(2), intLit(9)),
			report(),
		}},
	}

	res := run(t, prog, Options{})
	want := []string{"[REPORT] 5", "[REPORT] 3", "[REPORT] 0"}
	if d := cmp.Diff(want, res.State.Outputs); d != "" {
		t.Errorf("outputs (-want +got):\n%s", d)
	}
}

func TestFirstFunctionDefinitionWins(t *testing.T) {
	def := func(v int64) *ast.FunctionDef {
		return &ast.FunctionDef{Name: "f", ReturnType: ast.TypeInt, Body: []ast.Stmt{&ast.Return{Value: intLit(v)}}}
	}
	prog := &ast.Program{
		Functions: []*ast.FunctionDef{def(1), def(2)},
		Agent:     &ast.AgentDef{Body: []ast.Stmt{&ast.Report{Value: &ast.Call{Name: "f"}}}},
	}
	res := run(t, prog, Options{})
	if d := cmp.Diff([]string{"[REPORT] 1"}, res.State.Outputs); d != "" {
		t.Errorf("outputs (-want +got):\n%s", d)
	}
}

func TestUndefinedFunctionAborts(t *testing.T) {
	prog := &ast.Program{
		Agent: &ast.AgentDef{Body: []ast.Stmt{
			&ast.Report{Pos: ast.Pos{Line: 2}, Value: intLit(1)},
			&ast.CallStmt{Pos: ast.Pos{Line: 3}, Call: &ast.Call{Pos: ast.Pos{Line: 3}, Name: "ghost"}},
			&ast.Move{Pos: ast.Pos{Line: 4}},
		}},
	}

	res, err := New(Options{Logger: cwlog.Discard()}).Execute(context.Background(), prog)
	var rerr *RuntimeError
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %v, want *RuntimeError", err)
	}
	if rerr.Code != cwerr.CodeUndefinedFunction || rerr.Line != 3 {
		t.Errorf("error = %+v", rerr)
	}
	if rerr.Error() != "line 3: runtime error: Undefined function: ghost" {
		t.Errorf("message = %q", rerr.Error())
	}
	if d := cmp.Diff([]string{"[REPORT] 1"}, res.State.Outputs); d != "" {
		t.Errorf("partial outputs (-want +got):\n%s", d)
	}
}

func TestStepLimit(t *testing.T) {
	prog := compile(t, `WORLD w { SIZE(2,2); }
AGENT spin { WHILE 1 == 1 DO TURN LEFT; ENDWHILE; }`)

	_, err := New(Options{Logger: cwlog.Discard(), MaxSteps: 50}).Execute(context.Background(), prog)
	var rerr *RuntimeError
	if !errors.As(err, &rerr) || rerr.Code != cwerr.CodeStepLimit {
		t.Fatalf("err = %v, want step limit", err)
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prog := compile(t, sweep)
	res, err := New(Options{Logger: cwlog.Discard()}).Execute(ctx, prog)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(res.Events) != 0 {
		t.Errorf("no statement should run, got %d events", len(res.Events))
	}
}

func TestAndOrEvaluateBothSides(t *testing.T) {
	// count() reports on every call, so the outputs show each evaluation
	src := `WORLD w { SIZE(2,2); }
FUNC count(n) RETURNS INT { REPORT n; RETURN n; }
AGENT a {
  IF count(1) == 0 AND count(2) == 2 THEN REPORT 10; ELSE REPORT 20; ENDIF;
  IF count(3) == 3 OR count(4) == 0 THEN REPORT 30; ELSE REPORT 40; ENDIF;
}`
	res := run(t, compile(t, src), Options{})
	want := []string{"[REPORT] 1", "[REPORT] 2", "[REPORT] 20", "[REPORT] 3", "[REPORT] 4", "[REPORT] 30"}
	if d := cmp.Diff(want, res.State.Outputs); d != "" {
		t.Errorf("outputs (-want +got):\n%s", d)
	}
}

func TestEventsCarryFunction(t *testing.T) {
	src := `WORLD w { SIZE(3,3); ENTRY_DEF(1,1,S); }
FUNC step() RETURNS VOID { MOVE; }
AGENT a { step(); TURN LEFT; }`

	var streamed []Event
	res := run(t, compile(t, src), Options{OnEvent: func(ev Event) { streamed = append(streamed, ev) }})

	if d := cmp.Diff(res.Events, streamed); d != "" {
		t.Errorf("streamed events differ (-result +streamed):\n%s", d)
	}
	if len(res.Events) != 2 {
		t.Fatalf("got %d events, want 2", len(res.Events))
	}
	if res.Events[0].Function != "step" || res.Events[1].Function != "" {
		t.Errorf("functions = %q, %q", res.Events[0].Function, res.Events[1].Function)
	}
	if res.Events[1].Facing != "E" || res.Events[0].Agent != (world.Cell{X: 1, Y: 2}) {
		t.Errorf("events = %+v", res.Events)
	}
}

func TestExecuteIsRepeatable(t *testing.T) {
	prog := compile(t, sweep)
	in := New(Options{Logger: cwlog.Discard()})

	first, err := in.Execute(context.Background(), prog)
	if err != nil {
		t.Fatal(err)
	}
	second, err := in.Execute(context.Background(), prog)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(first.State.Snapshot(), second.State.Snapshot()); d != "" {
		t.Errorf("second run differs (-first +second):\n%s", d)
	}
}
