// File: analyzer.go
// Title: Semantic Analyzer
// Description: Lowers the concrete syntax tree into an AST and collects
//              diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

// Package semantic lowers a concrete syntax tree into an AST while enforcing
// declaration and scoping rules.
//
// Analysis never stops at an error. Every problem is collected as a
// Diagnostic and lowering continues with the literal names from the source,
// so callers always get a best-effort AST back. Whether to execute a program
// that has diagnostics is the caller's decision.
package semantic

import (
	"fmt"

	cwlog "github.com/msto63/cleanworld/foundation/core/log"
	"github.com/msto63/cleanworld/foundation/lang/ast"
	"github.com/msto63/cleanworld/foundation/lang/cst"
)

// Options configures the analyzer
type Options struct {
	Logger *cwlog.Logger
}

// Analyzer performs the two-pass analysis. It is reusable; each Analyze call
// starts with a fresh symbol table.
type Analyzer struct {
	logger  *cwlog.Logger
	symbols *SymbolTable
	diags   []Diagnostic

	// current function context; nil in the agent body
	function *Symbol
}

// New creates an analyzer
func New(opts Options) *Analyzer {
	if opts.Logger == nil {
		opts.Logger = cwlog.GetDefault()
	}
	return &Analyzer{logger: opts.Logger.WithField("component", "semantic")}
}

// Analyze lowers root and returns the AST with all collected diagnostics.
// A nil AST is only returned for a tree that breaks the CST shape invariant.
func (a *Analyzer) Analyze(root *cst.Node) (*ast.Program, []Diagnostic) {
	a.symbols = NewSymbolTable()
	a.diags = nil
	a.function = nil

	if err := root.Validate(); err != nil {
		a.report(0, MalformedTree, "Malformed syntax tree: %v", err)
		return nil, a.diags
	}
	if root.Prod != cst.Program {
		a.report(root.Line, MalformedTree, "Malformed syntax tree: root is %s, want program", root.Prod)
		return nil, a.diags
	}

	timer := a.logger.StartTimer("semantic analysis")

	worldNode, functionList, agentNode := root.Child(0), root.Child(1), root.Child(2)

	// Pass 1: signatures, so functions are callable before their declaration
	for _, fn := range functionList.Children {
		a.declareSignature(fn)
	}

	prog := &ast.Program{Pos: ast.Pos{Line: root.Line}}
	prog.World = a.lowerWorld(worldNode)

	// Pass 2: bodies in declaration order, then the agent
	for _, fn := range functionList.Children {
		prog.Functions = append(prog.Functions, a.lowerFunction(fn))
	}
	prog.Agent = a.lowerAgent(agentNode)

	timer.WithField("diagnostics", len(a.diags))
	if len(a.diags) > 0 {
		timer.StopWithError(a.diags[0])
	} else {
		timer.Stop()
	}
	return prog, a.diags
}

func (a *Analyzer) report(line int, kind DiagnosticKind, format string, args ...interface{}) {
	a.diags = append(a.diags, Diagnostic{
		Line:    line,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

func (a *Analyzer) declareSignature(fn *cst.Node) {
	name := fn.Child(0).Value
	params := make([]string, 0, len(fn.Child(1).Children))
	for _, p := range fn.Child(1).Children {
		params = append(params, p.Value)
	}

	sym := &Symbol{
		Name:   name,
		Kind:   KindFunction,
		Type:   lowerType(fn.Child(2)),
		Params: params,
		Line:   fn.Line,
	}
	if err := a.symbols.Declare(sym); err != nil {
		a.report(fn.Line, DuplicateFunction, "Duplicate function declaration: %s", name)
	}
}

func lowerType(n *cst.Node) ast.Type {
	if n.Value == "VOID" {
		return ast.TypeVoid
	}
	return ast.TypeInt
}

func (a *Analyzer) lowerWorld(n *cst.Node) *ast.WorldDef {
	world := &ast.WorldDef{
		Pos:  ast.Pos{Line: n.Line},
		Name: n.Child(0).Value,
	}
	for _, stmt := range n.Child(1).Children {
		pos := ast.Pos{Line: stmt.Line}
		x, y := stmt.Child(0).Int(), stmt.Child(1).Int()

		switch stmt.Prod {
		case cst.Size:
			world.Facts = append(world.Facts, &ast.Size{Pos: pos, Width: x, Height: y})
		case cst.EntryDef:
			world.Facts = append(world.Facts, &ast.Entry{Pos: pos, X: x, Y: y, Dir: stmt.Child(2).Value})
		case cst.ExitDef:
			world.Facts = append(world.Facts, &ast.Exit{Pos: pos, X: x, Y: y, Dir: stmt.Child(2).Value})
		case cst.ObstacleDef:
			world.Facts = append(world.Facts, &ast.Obstacle{Pos: pos, X: x, Y: y})
		case cst.DirtDef:
			world.Facts = append(world.Facts, &ast.Dirt{Pos: pos, X: x, Y: y})
		default:
			a.report(stmt.Line, MalformedTree, "Unexpected %s in world body", stmt.Prod)
		}
	}
	return world
}

func (a *Analyzer) lowerFunction(n *cst.Node) *ast.FunctionDef {
	name := n.Child(0).Value
	fn := &ast.FunctionDef{
		Pos:        ast.Pos{Line: n.Line},
		Name:       name,
		ReturnType: lowerType(n.Child(2)),
	}

	a.symbols.Push(name)
	for _, p := range n.Child(1).Children {
		fn.Params = append(fn.Params, p.Value)
		err := a.symbols.Declare(&Symbol{Name: p.Value, Kind: KindParam, Type: ast.TypeInt, Line: p.Line})
		if err != nil {
			a.report(p.Line, DuplicateParam, "Duplicate parameter name '%s' in function %s", p.Value, name)
		}
	}

	a.function = &Symbol{Name: name, Kind: KindFunction, Type: fn.ReturnType, Params: fn.Params, Line: n.Line}
	fn.Body = a.lowerBlock(n.Child(3))
	a.function = nil
	a.symbols.Pop()

	return fn
}

func (a *Analyzer) lowerAgent(n *cst.Node) *ast.AgentDef {
	agent := &ast.AgentDef{
		Pos:  ast.Pos{Line: n.Line},
		Name: n.Child(0).Value,
	}
	a.symbols.Push("agent " + agent.Name)
	agent.Body = a.lowerBlock(n.Child(1))
	a.symbols.Pop()
	return agent
}

// lowerBlock lowers a stmt_list. Blocks share the enclosing scope.
func (a *Analyzer) lowerBlock(n *cst.Node) []ast.Stmt {
	stmts := make([]ast.Stmt, 0, len(n.Children))
	for _, c := range n.Children {
		if s := a.lowerStmt(c); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func (a *Analyzer) lowerStmt(n *cst.Node) ast.Stmt {
	pos := ast.Pos{Line: n.Line}

	switch n.Prod {
	case cst.VarDecl:
		name := n.Child(0).Value
		value := a.lowerExpr(n.Child(1))
		err := a.symbols.Declare(&Symbol{Name: name, Kind: KindVariable, Type: ast.TypeInt, Line: n.Line})
		if err != nil {
			a.report(n.Line, DuplicateVariable, "Duplicate variable declaration: %s", name)
		}
		return &ast.VarDecl{Pos: pos, Name: name, Value: value}

	case cst.Assign:
		name := n.Child(0).Value
		if _, ok := a.symbols.Lookup(name); !ok {
			a.report(n.Line, UndeclaredAssignment, "Assignment to undeclared identifier: %s", name)
		}
		return &ast.Assign{Pos: pos, Name: name, Value: a.lowerExpr(n.Child(1))}

	case cst.If:
		return &ast.If{
			Pos:  pos,
			Cond: a.lowerCond(n.Child(0)),
			Then: a.lowerBlock(n.Child(1)),
			Else: a.lowerBlock(n.Child(2)),
		}

	case cst.While:
		return &ast.While{
			Pos:  pos,
			Cond: a.lowerCond(n.Child(0)),
			Body: a.lowerBlock(n.Child(1)),
		}

	case cst.Move:
		return &ast.Move{Pos: pos}

	case cst.Turn:
		dir := ast.TurnLeft
		if n.Child(0).Value == "RIGHT" {
			dir = ast.TurnRight
		}
		return &ast.Turn{Pos: pos, Dir: dir}

	case cst.Clean:
		return &ast.Clean{Pos: pos}

	case cst.Backtrack:
		return &ast.Backtrack{Pos: pos}

	case cst.Report:
		return &ast.Report{Pos: pos, Value: a.lowerExpr(n.Child(0))}

	case cst.Return:
		ret := &ast.Return{Pos: pos, Value: a.lowerExpr(n.Child(0))}
		a.checkReturn(ret)
		return ret

	case cst.BareReturn:
		ret := &ast.Return{Pos: pos}
		a.checkReturn(ret)
		return ret

	case cst.CallStmt:
		return &ast.CallStmt{Pos: pos, Call: a.lowerCall(n.Child(0))}
	}

	a.report(n.Line, MalformedTree, "Unexpected %s in statement list", n.Prod)
	return nil
}

func (a *Analyzer) checkReturn(ret *ast.Return) {
	if a.function == nil {
		a.report(ret.Line, ReturnOutsideFunction, "RETURN used outside of function")
		return
	}
	if a.function.Type == ast.TypeVoid && ret.Value != nil {
		a.report(ret.Line, VoidReturnValue, "Function %s is void but RETURN has a value", a.function.Name)
	}
}

// lowerExpr re-associates the right-recursive CST chain to the left, so
// 10 - 3 - 2 lowers to (10 - 3) - 2.
func (a *Analyzer) lowerExpr(n *cst.Node) ast.Expr {
	var ops []ast.ArithOp
	var terms []*cst.Node

	cur := n
	for cur.Prod == cst.Plus || cur.Prod == cst.Minus {
		op := ast.OpAdd
		if cur.Prod == cst.Minus {
			op = ast.OpSub
		}
		ops = append(ops, op)
		terms = append(terms, cur.Child(0))
		cur = cur.Child(1)
	}
	terms = append(terms, cur)

	acc := a.lowerTerm(terms[0])
	for i, op := range ops {
		right := a.lowerTerm(terms[i+1])
		acc = &ast.BinOp{Pos: ast.Pos{Line: acc.Position()}, Op: op, Left: acc, Right: right}
	}
	return acc
}

func (a *Analyzer) lowerTerm(n *cst.Node) ast.Expr {
	pos := ast.Pos{Line: n.Line}

	switch n.Prod {
	case cst.IntLit:
		return &ast.IntLit{Pos: pos, Value: n.Int()}

	case cst.Identifier:
		if _, ok := a.symbols.Lookup(n.Value); !ok {
			a.report(n.Line, UndeclaredIdentifier, "Use of undeclared identifier: %s", n.Value)
		}
		return &ast.VarRef{Pos: pos, Name: n.Value}

	case cst.Call:
		return a.lowerCall(n)

	case cst.Plus, cst.Minus:
		return a.lowerExpr(n)
	}

	a.report(n.Line, MalformedTree, "Unexpected %s in expression", n.Prod)
	return &ast.IntLit{Pos: pos}
}

func (a *Analyzer) lowerCall(n *cst.Node) *ast.Call {
	name := n.Child(0).Value
	call := &ast.Call{Pos: ast.Pos{Line: n.Line}, Name: name}

	argNodes := n.Child(1).Children
	sym, ok := a.symbols.Lookup(name)
	switch {
	case !ok || sym.Kind != KindFunction:
		a.report(n.Line, UndeclaredFunction, "Call to undeclared function: %s", name)
	case len(argNodes) != len(sym.Params):
		a.report(n.Line, ArgumentCount, "Function %s called with %d args but expects %d", name, len(argNodes), len(sym.Params))
	}

	for _, arg := range argNodes {
		call.Args = append(call.Args, a.lowerExpr(arg))
	}
	return call
}

func (a *Analyzer) lowerCond(n *cst.Node) ast.Cond {
	pos := ast.Pos{Line: n.Line}

	switch n.Prod {
	case cst.Sense:
		return &ast.Sense{Pos: pos, Kind: senseKind(n.Child(0).Value)}

	case cst.Unvisited:
		return &ast.Unvisited{Pos: pos}

	case cst.Not:
		return &ast.Not{Pos: pos, Operand: a.lowerCond(n.Child(0))}

	case cst.And:
		return &ast.And{Pos: pos, Left: a.lowerCond(n.Child(0)), Right: a.lowerCond(n.Child(1))}

	case cst.Or:
		return &ast.Or{Pos: pos, Left: a.lowerCond(n.Child(0)), Right: a.lowerCond(n.Child(1))}

	case cst.Relation:
		return &ast.RelOp{
			Pos:   pos,
			Left:  a.lowerExpr(n.Child(0)),
			Op:    relOperator(n.Child(1).Value),
			Right: a.lowerExpr(n.Child(2)),
		}
	}

	a.report(n.Line, MalformedTree, "Unexpected %s in condition", n.Prod)
	return &ast.Unvisited{Pos: pos}
}

func senseKind(lexeme string) ast.SenseKind {
	switch lexeme {
	case "OBSTACLE":
		return ast.SenseObstacle
	case "ENTRY":
		return ast.SenseEntry
	case "EXIT":
		return ast.SenseExit
	default:
		return ast.SenseDirt
	}
}

func relOperator(lexeme string) ast.RelOperator {
	switch lexeme {
	case "!=":
		return ast.RelNeq
	case "<":
		return ast.RelLt
	case ">":
		return ast.RelGt
	default:
		return ast.RelEq
	}
}
