// File: exec.go
// Title: Statement Execution
// Description: Execution of statements and agent actions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package interp

import (
	"github.com/msto63/cleanworld/foundation/lang/ast"
	"github.com/msto63/cleanworld/foundation/lang/world"
)

// Statements

func (in *Interpreter) VisitVarDecl(s *ast.VarDecl) completion {
	in.bind(s.Name, in.eval(s.Value))
	return completion{}
}

func (in *Interpreter) VisitAssign(s *ast.Assign) completion {
	in.bind(s.Name, in.eval(s.Value))
	return completion{}
}

func (in *Interpreter) VisitIf(s *ast.If) completion {
	if in.test(s.Cond) {
		return in.execBlock(s.Then)
	}
	return in.execBlock(s.Else)
}

func (in *Interpreter) VisitWhile(s *ast.While) completion {
	for in.test(s.Cond) {
		if in.err != nil {
			break
		}
		if c := in.execBlock(s.Body); c.returned {
			return c
		}
		// an empty body still has to count against the step limit
		if !in.tick(s.Line) {
			break
		}
	}
	return completion{}
}

func (in *Interpreter) VisitMove(s *ast.Move) completion {
	in.record(s.Line, in.state.Move())
	return completion{}
}

func (in *Interpreter) VisitTurn(s *ast.Turn) completion {
	r := world.RotateLeft
	if s.Dir == ast.TurnRight {
		r = world.RotateRight
	}
	in.record(s.Line, in.state.Turn(r))
	return completion{}
}

func (in *Interpreter) VisitClean(s *ast.Clean) completion {
	in.record(s.Line, in.state.Clean())
	return completion{}
}

func (in *Interpreter) VisitBacktrack(s *ast.Backtrack) completion {
	in.record(s.Line, in.state.Backtrack())
	return completion{}
}

func (in *Interpreter) VisitReport(s *ast.Report) completion {
	v := in.eval(s.Value)
	if in.err != nil {
		return completion{}
	}
	in.record(s.Line, in.state.Report(v))
	return completion{}
}

func (in *Interpreter) VisitReturn(s *ast.Return) completion {
	var v int64
	if s.Value != nil {
		v = in.eval(s.Value)
	}
	return completion{returned: true, value: v}
}

func (in *Interpreter) VisitCallStmt(s *ast.CallStmt) completion {
	in.eval(s.Call)
	return completion{}
}

// World facts

type factBuilder struct{ s *world.State }

func (b factBuilder) VisitSize(f *ast.Size) struct{} {
	b.s.SetSize(f.Width, f.Height)
	return struct{}{}
}

func (b factBuilder) VisitEntry(f *ast.Entry) struct{} {
	d, _ := world.ParseDirection(f.Dir)
	b.s.SetEntry(world.Cell{X: f.X, Y: f.Y}, d)
	return struct{}{}
}

func (b factBuilder) VisitExit(f *ast.Exit) struct{} {
	d, _ := world.ParseDirection(f.Dir)
	b.s.SetExit(world.Cell{X: f.X, Y: f.Y}, d)
	return struct{}{}
}

func (b factBuilder) VisitObstacle(f *ast.Obstacle) struct{} {
	b.s.AddObstacle(world.Cell{X: f.X, Y: f.Y})
	return struct{}{}
}

func (b factBuilder) VisitDirt(f *ast.Dirt) struct{} {
	b.s.AddDirt(world.Cell{X: f.X, Y: f.Y})
	return struct{}{}
}
