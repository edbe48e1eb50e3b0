// File: printer.go
// Title: AST Printer
// Description: Renders an AST as an indented outline.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package ast

import (
	"fmt"
	"strings"
)

// Print renders a program as an indented s-expression outline
func Print(p *Program) string {
	pr := &printer{}
	pr.program(p)
	return pr.b.String()
}

type printer struct {
	b     strings.Builder
	depth int
}

func (p *printer) line(format string, args ...interface{}) {
	p.b.WriteString(strings.Repeat("  ", p.depth))
	fmt.Fprintf(&p.b, format, args...)
	p.b.WriteByte('\n')
}

func (p *printer) program(prog *Program) {
	p.line("program")
	p.depth++
	if prog.World != nil {
		p.line("world %s", prog.World.Name)
		p.depth++
		for _, f := range prog.World.Facts {
			p.line("%s", AcceptFact[string](f, p))
		}
		p.depth--
	}
	for _, fn := range prog.Functions {
		p.line("func %s(%s) %s", fn.Name, strings.Join(fn.Params, ", "), fn.ReturnType)
		p.block(fn.Body)
	}
	if prog.Agent != nil {
		p.line("agent %s", prog.Agent.Name)
		p.block(prog.Agent.Body)
	}
	p.depth--
}

func (p *printer) block(stmts []Stmt) {
	p.depth++
	for _, s := range stmts {
		AcceptStmt[struct{}](s, p)
	}
	p.depth--
}

func (p *printer) VisitSize(f *Size) string { return fmt.Sprintf("(size %d %d)", f.Width, f.Height) }
func (p *printer) VisitEntry(f *Entry) string {
	return fmt.Sprintf("(entry %d %d %s)", f.X, f.Y, f.Dir)
}
func (p *printer) VisitExit(f *Exit) string         { return fmt.Sprintf("(exit %d %d %s)", f.X, f.Y, f.Dir) }
func (p *printer) VisitObstacle(f *Obstacle) string { return fmt.Sprintf("(obstacle %d %d)", f.X, f.Y) }
func (p *printer) VisitDirt(f *Dirt) string         { return fmt.Sprintf("(dirt %d %d)", f.X, f.Y) }

func (p *printer) VisitVarDecl(s *VarDecl) struct{} {
	p.line("(var %s %s)", s.Name, p.expr(s.Value))
	return struct{}{}
}

func (p *printer) VisitAssign(s *Assign) struct{} {
	p.line("(set %s %s)", s.Name, p.expr(s.Value))
	return struct{}{}
}

func (p *printer) VisitIf(s *If) struct{} {
	p.line("(if %s", p.cond(s.Cond))
	p.line(" then")
	p.block(s.Then)
	p.line(" else")
	p.block(s.Else)
	p.line(")")
	return struct{}{}
}

func (p *printer) VisitWhile(s *While) struct{} {
	p.line("(while %s", p.cond(s.Cond))
	p.block(s.Body)
	p.line(")")
	return struct{}{}
}

func (p *printer) VisitMove(*Move) struct{} {
	p.line("(move)")
	return struct{}{}
}

func (p *printer) VisitTurn(s *Turn) struct{} {
	p.line("(turn %s)", s.Dir)
	return struct{}{}
}

func (p *printer) VisitClean(*Clean) struct{} {
	p.line("(clean)")
	return struct{}{}
}

func (p *printer) VisitBacktrack(*Backtrack) struct{} {
	p.line("(backtrack)")
	return struct{}{}
}

func (p *printer) VisitReport(s *Report) struct{} {
	p.line("(report %s)", p.expr(s.Value))
	return struct{}{}
}

func (p *printer) VisitReturn(s *Return) struct{} {
	if s.Value == nil {
		p.line("(return)")
	} else {
		p.line("(return %s)", p.expr(s.Value))
	}
	return struct{}{}
}

func (p *printer) VisitCallStmt(s *CallStmt) struct{} {
	p.line("%s", p.expr(s.Call))
	return struct{}{}
}

func (p *printer) expr(e Expr) string { return AcceptExpr[string](e, p) }
func (p *printer) cond(c Cond) string { return AcceptCond[string](c, p) }

func (p *printer) VisitIntLit(e *IntLit) string { return fmt.Sprintf("%d", e.Value) }
func (p *printer) VisitVarRef(e *VarRef) string { return e.Name }

func (p *printer) VisitBinOp(e *BinOp) string {
	return fmt.Sprintf("(%s %s %s)", e.Op, p.expr(e.Left), p.expr(e.Right))
}

func (p *printer) VisitCall(e *Call) string {
	parts := []string{"call", e.Name}
	for _, a := range e.Args {
		parts = append(parts, p.expr(a))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (p *printer) VisitSense(c *Sense) string       { return fmt.Sprintf("(sense %s)", c.Kind) }
func (p *printer) VisitUnvisited(*Unvisited) string { return "(unvisited)" }
func (p *printer) VisitNot(c *Not) string           { return fmt.Sprintf("(not %s)", p.cond(c.Operand)) }

func (p *printer) VisitAnd(c *And) string {
	return fmt.Sprintf("(and %s %s)", p.cond(c.Left), p.cond(c.Right))
}

func (p *printer) VisitOr(c *Or) string {
	return fmt.Sprintf("(or %s %s)", p.cond(c.Left), p.cond(c.Right))
}

func (p *printer) VisitRelOp(c *RelOp) string {
	return fmt.Sprintf("(%s %s %s)", c.Op, p.expr(c.Left), p.expr(c.Right))
}
