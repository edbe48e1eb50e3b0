// File: printer_test.go
// Title: AST Printer Tests
// Description: Unit tests for the AST outline printer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test suite

package ast

import "testing"

func TestPrint(t *testing.T) {
	prog := &Program{
		World: &WorldDef{
			Name: "room",
			Facts: []WorldFact{
				&Size{Width: 3, Height: 2},
				&Entry{X: 1, Y: 1, Dir: "E"},
				&Dirt{X: 2, Y: 1},
			},
		},
		Functions: []*FunctionDef{{
			Name:       "inc",
			Params:     []string{"a"},
			ReturnType: TypeInt,
			Body: []Stmt{
				&Return{Value: &BinOp{Op: OpAdd, Left: &VarRef{Name: "a"}, Right: &IntLit{Value: 1}}},
			},
		}},
		Agent: &AgentDef{
			Name: "bot",
			Body: []Stmt{
				&VarDecl{Name: "n", Value: &IntLit{Value: 0}},
				&While{
					Cond: &And{
						Left:  &RelOp{Op: RelLt, Left: &VarRef{Name: "n"}, Right: &IntLit{Value: 2}},
						Right: &Not{Operand: &Sense{Kind: SenseObstacle}},
					},
					Body: []Stmt{
						&Move{},
						&Assign{Name: "n", Value: &Call{Name: "inc", Args: []Expr{&VarRef{Name: "n"}}}},
					},
				},
				&If{
					Cond: &Or{Left: &Sense{Kind: SenseDirt}, Right: &Unvisited{}},
					Then: []Stmt{&Clean{}},
					Else: []Stmt{&Turn{Dir: TurnRight}},
				},
				&Return{},
			},
		},
	}

	want := `program
  world room
    (size 3 2)
    (entry 1 1 E)
    (dirt 2 1)
  func inc(a) INT
    (return (+ a 1))
  agent bot
    (var n 0)
    (while (and (< n 2) (not (sense OBSTACLE)))
      (move)
      (set n (call inc n))
    )
    (if (or (sense DIRT) (unvisited))
     then
      (clean)
     else
      (turn RIGHT)
    )
    (return)
`
	if got := Print(prog); got != want {
		t.Errorf("Print() mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestAcceptPanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AcceptStmt(nil) should panic")
		}
	}()
	AcceptStmt[struct{}](nil, &printer{})
}
