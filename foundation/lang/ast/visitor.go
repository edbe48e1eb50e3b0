// File: visitor.go
// Title: AST Visitors
// Description: Visitor interfaces and generic dispatch over AST nodes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package ast

import "fmt"

// StmtVisitor handles every statement variant
type StmtVisitor[R any] interface {
	VisitVarDecl(*VarDecl) R
	VisitAssign(*Assign) R
	VisitIf(*If) R
	VisitWhile(*While) R
	VisitMove(*Move) R
	VisitTurn(*Turn) R
	VisitClean(*Clean) R
	VisitBacktrack(*Backtrack) R
	VisitReport(*Report) R
	VisitReturn(*Return) R
	VisitCallStmt(*CallStmt) R
}

// ExprVisitor handles every expression variant
type ExprVisitor[R any] interface {
	VisitIntLit(*IntLit) R
	VisitVarRef(*VarRef) R
	VisitBinOp(*BinOp) R
	VisitCall(*Call) R
}

// CondVisitor handles every condition variant
type CondVisitor[R any] interface {
	VisitSense(*Sense) R
	VisitUnvisited(*Unvisited) R
	VisitNot(*Not) R
	VisitAnd(*And) R
	VisitOr(*Or) R
	VisitRelOp(*RelOp) R
}

// FactVisitor handles every world fact variant
type FactVisitor[R any] interface {
	VisitSize(*Size) R
	VisitEntry(*Entry) R
	VisitExit(*Exit) R
	VisitObstacle(*Obstacle) R
	VisitDirt(*Dirt) R
}

// The marker methods make these switches complete; the default branches can
// only be reached through a nil interface.

// AcceptStmt dispatches s to the matching visitor method
func AcceptStmt[R any](s Stmt, v StmtVisitor[R]) R {
	switch s := s.(type) {
	case *VarDecl:
		return v.VisitVarDecl(s)
	case *Assign:
		return v.VisitAssign(s)
	case *If:
		return v.VisitIf(s)
	case *While:
		return v.VisitWhile(s)
	case *Move:
		return v.VisitMove(s)
	case *Turn:
		return v.VisitTurn(s)
	case *Clean:
		return v.VisitClean(s)
	case *Backtrack:
		return v.VisitBacktrack(s)
	case *Report:
		return v.VisitReport(s)
	case *Return:
		return v.VisitReturn(s)
	case *CallStmt:
		return v.VisitCallStmt(s)
	}
	panic(fmt.Sprintf("ast: unexpected statement %T", s))
}

// AcceptExpr dispatches e to the matching visitor method
func AcceptExpr[R any](e Expr, v ExprVisitor[R]) R {
	switch e := e.(type) {
	case *IntLit:
		return v.VisitIntLit(e)
	case *VarRef:
		return v.VisitVarRef(e)
	case *BinOp:
		return v.VisitBinOp(e)
	case *Call:
		return v.VisitCall(e)
	}
	panic(fmt.Sprintf("ast: unexpected expression %T", e))
}

// AcceptCond dispatches c to the matching visitor method
func AcceptCond[R any](c Cond, v CondVisitor[R]) R {
	switch c := c.(type) {
	case *Sense:
		return v.VisitSense(c)
	case *Unvisited:
		return v.VisitUnvisited(c)
	case *Not:
		return v.VisitNot(c)
	case *And:
		return v.VisitAnd(c)
	case *Or:
		return v.VisitOr(c)
	case *RelOp:
		return v.VisitRelOp(c)
	}
	panic(fmt.Sprintf("ast: unexpected condition %T", c))
}

// AcceptFact dispatches f to the matching visitor method
func AcceptFact[R any](f WorldFact, v FactVisitor[R]) R {
	switch f := f.(type) {
	case *Size:
		return v.VisitSize(f)
	case *Entry:
		return v.VisitEntry(f)
	case *Exit:
		return v.VisitExit(f)
	case *Obstacle:
		return v.VisitObstacle(f)
	case *Dirt:
		return v.VisitDirt(f)
	}
	panic(fmt.Sprintf("ast: unexpected world fact %T", f))
}
