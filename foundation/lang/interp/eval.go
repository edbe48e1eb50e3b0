// File: eval.go
// Title: Expression Evaluation
// Description: Evaluation of expressions, conditions and sensor facts.
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
)

func (in *Interpreter) eval(e ast.Expr) int64 {
	if in.err != nil {
		return 0
	}
	return ast.AcceptExpr[int64](e, in)
}

func (in *Interpreter) test(c ast.Cond) bool {
	if in.err != nil {
		return false
	}
	return ast.AcceptCond[bool](c, in)
}

// Expressions

func (in *Interpreter) VisitIntLit(e *ast.IntLit) int64 {
	return e.Value
}

func (in *Interpreter) VisitVarRef(e *ast.VarRef) int64 {
	return in.lookup(e.Name)
}

// VisitBinOp wraps on overflow like any int64 arithmetic
func (in *Interpreter) VisitBinOp(e *ast.BinOp) int64 {
	l := in.eval(e.Left)
	r := in.eval(e.Right)
	if e.Op == ast.OpSub {
		return l - r
	}
	return l + r
}

func (in *Interpreter) VisitCall(e *ast.Call) int64 {
	args := make([]int64, 0, len(e.Args))
	for _, a := range e.Args {
		args = append(args, in.eval(a))
	}
	if in.err != nil {
		return 0
	}
	return in.call(e.Line, e.Name, args)
}

// Conditions

func (in *Interpreter) VisitSense(c *ast.Sense) bool {
	switch c.Kind {
	case ast.SenseObstacle:
		return in.state.SenseObstacle()
	case ast.SenseEntry:
		return in.state.AtEntry()
	case ast.SenseExit:
		return in.state.AtExit()
	default:
		return in.state.SenseDirt()
	}
}

func (in *Interpreter) VisitUnvisited(*ast.Unvisited) bool {
	return in.state.Unvisited()
}

func (in *Interpreter) VisitNot(c *ast.Not) bool {
	return !in.test(c.Operand)
}

func (in *Interpreter) VisitAnd(c *ast.And) bool {
	l := in.test(c.Left)
	r := in.test(c.Right)
	return l && r
}

func (in *Interpreter) VisitOr(c *ast.Or) bool {
	l := in.test(c.Left)
	r := in.test(c.Right)
	return l || r
}

func (in *Interpreter) VisitRelOp(c *ast.RelOp) bool {
	l := in.eval(c.Left)
	r := in.eval(c.Right)
	switch c.Op {
	case ast.RelNeq:
		return l != r
	case ast.RelLt:
		return l < r
	case ast.RelGt:
		return l > r
	default:
		return l == r
	}
}
