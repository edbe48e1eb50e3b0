// File: parser_test.go
// Title: Parser Tests
// Description: Unit tests for parse trees and syntax errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test suite

package parser

import (
	"errors"
	"strings"
	"testing"

	cwlog "github.com/msto63/cleanworld/foundation/core/log"
	"github.com/msto63/cleanworld/foundation/lang/cst"
	"github.com/msto63/cleanworld/foundation/lang/lexer"
	"github.com/msto63/cleanworld/foundation/lang/token"
)

func parse(t *testing.T, src string) (*cst.Node, error) {
	t.Helper()
	tokens, lexErrs := lexer.Tokenize(src, nil)
	if len(lexErrs) != 0 {
		t.Fatalf("lexical errors: %v", lexErrs)
	}
	return New(Options{Logger: cwlog.Discard()}).Parse(tokens)
}

const fullProgram = `
WORLD room {
  SIZE(5, 5);
  ENTRY_DEF(1, 1, E);
  EXIT_DEF(5, 5, S);
  OBSTACLE_DEF(3, 3);
  DIRT_DEF(2, 1);
}

FUNC inc(a) RETURNS INT {
  RETURN a + 1;
}

FUNC noop() RETURNS VOID {
  RETURN;
}

AGENT bot {
  VAR steps = 0;
  WHILE steps < 3 AND NOT SENSE OBSTACLE DO
    MOVE;
    steps = inc(steps);
  ENDWHILE;
  IF SENSE DIRT OR UNVISITED THEN CLEAN; ELSE TURN LEFT; ENDIF;
  noop();
  REPORT steps - 1;
}
`

func TestParseFullProgram(t *testing.T) {
	root, err := parse(t, fullProgram)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if err := root.Validate(); err != nil {
		t.Fatalf("CST invariant broken: %v", err)
	}

	if root.Prod != cst.Program {
		t.Fatalf("root = %s, want program", root.Prod)
	}

	world := root.Child(0)
	if got := world.Child(0).Value; got != "room" {
		t.Errorf("world name = %q, want room", got)
	}
	if n := len(world.Child(1).Children); n != 5 {
		t.Errorf("world body has %d statements, want 5", n)
	}

	functions := root.Child(1)
	if n := len(functions.Children); n != 2 {
		t.Fatalf("got %d functions, want 2", n)
	}
	inc := functions.Child(0)
	if inc.Child(0).Value != "inc" || len(inc.Child(1).Children) != 1 || inc.Child(2).Value != "INT" {
		t.Errorf("unexpected inc declaration:\n%s", inc)
	}
	noopBody := functions.Child(1).Child(3)
	if noopBody.Child(0).Prod != cst.BareReturn {
		t.Errorf("RETURN; should parse as bare_return, got %s", noopBody.Child(0).Prod)
	}

	agent := root.Child(2)
	body := agent.Child(1)
	wantStmts := []cst.Production{cst.VarDecl, cst.While, cst.If, cst.CallStmt, cst.Report}
	if len(body.Children) != len(wantStmts) {
		t.Fatalf("agent has %d statements, want %d", len(body.Children), len(wantStmts))
	}
	for i, want := range wantStmts {
		if got := body.Child(i).Prod; got != want {
			t.Errorf("statement %d = %s, want %s", i, got, want)
		}
	}
}

func TestConditionPrecedence(t *testing.T) {
	tests := []struct {
		name string
		cond string
		want string
	}{
		{
			name: "and binds tighter than or",
			cond: "SENSE DIRT OR SENSE EXIT AND UNVISITED",
			want: "or(sense,and(sense,unvisited))",
		},
		{
			name: "and is left associative",
			cond: "UNVISITED AND SENSE DIRT AND SENSE EXIT",
			want: "and(and(unvisited,sense),sense)",
		},
		{
			name: "not binds tightest",
			cond: "NOT UNVISITED AND SENSE DIRT",
			want: "and(not(unvisited),sense)",
		},
		{
			name: "relation",
			cond: "x + 1 > 2",
			want: "relation(plus(id,int),relop,int)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "WORLD w { SIZE(1,1); } AGENT a { IF " + tt.cond + " THEN MOVE; ELSE MOVE; ENDIF; }"
			root, err := parse(t, src)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			cond := root.Child(2).Child(1).Child(0).Child(0)
			if got := shape(cond); got != tt.want {
				t.Errorf("condition shape = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestExpressionIsRightRecursive(t *testing.T) {
	root, err := parse(t, "WORLD w { SIZE(1,1); } AGENT a { REPORT 10 - 3 - 2; }")
	if err != nil {
		t.Fatal(err)
	}
	expr := root.Child(2).Child(1).Child(0).Child(0)
	if got := shape(expr); got != "minus(int,minus(int,int))" {
		t.Errorf("expr shape = %s", got)
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantLine int
		wantMsg  string
	}{
		{
			name:     "missing semicolon",
			src:      "WORLD w { SIZE(1,1); }\nAGENT a {\n MOVE\n CLEAN; }",
			wantLine: 4,
			wantMsg:  "syntax error at CLEAN 'CLEAN', expected ';' after move",
		},
		{
			name:     "empty world body",
			src:      "WORLD w { } AGENT a { MOVE; }",
			wantLine: 1,
			wantMsg:  "expected a world statement",
		},
		{
			name:     "unterminated agent",
			src:      "WORLD w { SIZE(1,1); }\nAGENT a { MOVE;",
			wantLine: 2,
			wantMsg:  "unexpected end of input, expected a statement",
		},
		{
			name:     "bad direction",
			src:      "WORLD w { ENTRY_DEF(1,1,LEFT); } AGENT a { MOVE; }",
			wantLine: 1,
			wantMsg:  "expected a direction",
		},
		{
			name:     "trailing tokens",
			src:      "WORLD w { SIZE(1,1); } AGENT a { MOVE; } MOVE;",
			wantLine: 1,
			wantMsg:  "expected end of input after agent definition",
		},
		{
			name:     "missing agent",
			src:      "WORLD w { SIZE(1,1); }",
			wantLine: 1,
			wantMsg:  "expected FUNC or AGENT",
		},
		{
			name:     "if without else",
			src:      "WORLD w { SIZE(1,1); } AGENT a { IF UNVISITED THEN MOVE; ENDIF; }",
			wantLine: 1,
			wantMsg:  "syntax error at ENDIF 'ENDIF', expected a statement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.src)
			if err == nil {
				t.Fatal("Parse() succeeded, want syntax error")
			}
			var syn *SyntaxError
			if !errors.As(err, &syn) {
				t.Fatalf("error %T is not *SyntaxError", err)
			}
			if syn.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", syn.Line, tt.wantLine)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Error() = %q, want substring %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParserIsReusable(t *testing.T) {
	p := New(Options{Logger: cwlog.Discard()})
	src := "WORLD w { SIZE(1,1); } AGENT a { MOVE; }"
	for i := 0; i < 2; i++ {
		tokens, _ := lexer.Tokenize(src, nil)
		if _, err := p.Parse(tokens); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	if _, err := p.Parse([]token.Token{}); err == nil {
		t.Error("empty stream should fail")
	}
}

func shape(n *cst.Node) string {
	if len(n.Children) == 0 || n.Prod == cst.Sense {
		return n.Prod.String()
	}
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = shape(c)
	}
	return n.Prod.String() + "(" + strings.Join(parts, ",") + ")"
}
