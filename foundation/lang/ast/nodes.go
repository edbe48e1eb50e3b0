// File: nodes.go
// Title: AST Node Definitions
// Description: Typed abstract syntax tree for analyzed programs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

// Package ast defines the abstract syntax tree produced by semantic analysis.
//
// The node set is closed. Statements, expressions, conditions and world facts
// each have a marker method, so only this package can add variants, and each
// category has a visitor interface that must handle every variant.
package ast

// Node is implemented by every AST node
type Node interface {
	Position() int
}

// Pos records the source line of a node
type Pos struct {
	Line int
}

// Position returns the source line
func (p Pos) Position() int { return p.Line }

// Type is the return type of a function
type Type int

const (
	TypeInt Type = iota
	TypeVoid
)

func (t Type) String() string {
	if t == TypeVoid {
		return "VOID"
	}
	return "INT"
}

// Program is the root of the tree
type Program struct {
	Pos
	World     *WorldDef
	Functions []*FunctionDef
	Agent     *AgentDef
}

// WorldDef lists the world facts in source order
type WorldDef struct {
	Pos
	Name  string
	Facts []WorldFact
}

// FunctionDef is a user-defined function
type FunctionDef struct {
	Pos
	Name       string
	Params     []string
	ReturnType Type
	Body       []Stmt
}

// AgentDef is the agent program
type AgentDef struct {
	Pos
	Name string
	Body []Stmt
}

// WorldFact is a declarative world statement
type WorldFact interface {
	Node
	worldFact()
}

type (
	// Size declares the grid as width x height
	Size struct {
		Pos
		Width, Height int64
	}

	// Entry places the agent
	Entry struct {
		Pos
		X, Y int64
		Dir  string
	}

	// Exit marks the exit cell
	Exit struct {
		Pos
		X, Y int64
		Dir  string
	}

	// Obstacle blocks a cell
	Obstacle struct {
		Pos
		X, Y int64
	}

	// Dirt marks a dirty cell
	Dirt struct {
		Pos
		X, Y int64
	}
)

func (*Size) worldFact()     {}
func (*Entry) worldFact()    {}
func (*Exit) worldFact()     {}
func (*Obstacle) worldFact() {}
func (*Dirt) worldFact()     {}

// Stmt is an executable statement
type Stmt interface {
	Node
	stmtNode()
}

// TurnDir is the rotation of a TURN statement
type TurnDir int

const (
	TurnLeft TurnDir = iota
	TurnRight
)

func (d TurnDir) String() string {
	if d == TurnRight {
		return "RIGHT"
	}
	return "LEFT"
}

type (
	// VarDecl declares and initializes a variable
	VarDecl struct {
		Pos
		Name  string
		Value Expr
	}

	// Assign stores into an existing variable
	Assign struct {
		Pos
		Name  string
		Value Expr
	}

	// If always carries both branches
	If struct {
		Pos
		Cond Cond
		Then []Stmt
		Else []Stmt
	}

	// While loops while Cond holds
	While struct {
		Pos
		Cond Cond
		Body []Stmt
	}

	// Move steps one cell forward
	Move struct{ Pos }

	// Turn rotates the agent
	Turn struct {
		Pos
		Dir TurnDir
	}

	// Clean removes dirt under the agent
	Clean struct{ Pos }

	// Backtrack returns to the previous cell in history
	Backtrack struct{ Pos }

	// Report appends a value to the output log
	Report struct {
		Pos
		Value Expr
	}

	// Return leaves the current function. Value is nil for a bare RETURN.
	Return struct {
		Pos
		Value Expr
	}

	// CallStmt calls a function for its effects
	CallStmt struct {
		Pos
		Call *Call
	}
)

func (*VarDecl) stmtNode()   {}
func (*Assign) stmtNode()    {}
func (*If) stmtNode()        {}
func (*While) stmtNode()     {}
func (*Move) stmtNode()      {}
func (*Turn) stmtNode()      {}
func (*Clean) stmtNode()     {}
func (*Backtrack) stmtNode() {}
func (*Report) stmtNode()    {}
func (*Return) stmtNode()    {}
func (*CallStmt) stmtNode()  {}

// Expr is an integer expression
type Expr interface {
	Node
	exprNode()
}

// ArithOp is a binary arithmetic operator
type ArithOp int

const (
	OpAdd ArithOp = iota
	OpSub
)

func (o ArithOp) String() string {
	if o == OpSub {
		return "-"
	}
	return "+"
}

type (
	// IntLit is an integer constant
	IntLit struct {
		Pos
		Value int64
	}

	// VarRef reads a variable
	VarRef struct {
		Pos
		Name string
	}

	// BinOp applies + or -
	BinOp struct {
		Pos
		Op          ArithOp
		Left, Right Expr
	}

	// Call invokes a user function
	Call struct {
		Pos
		Name string
		Args []Expr
	}
)

func (*IntLit) exprNode() {}
func (*VarRef) exprNode() {}
func (*BinOp) exprNode()  {}
func (*Call) exprNode()   {}

// Cond is a boolean condition
type Cond interface {
	Node
	condNode()
}

// SenseKind is what a SENSE condition queries
type SenseKind int

const (
	SenseDirt SenseKind = iota
	SenseObstacle
	SenseEntry
	SenseExit
)

func (k SenseKind) String() string {
	switch k {
	case SenseObstacle:
		return "OBSTACLE"
	case SenseEntry:
		return "ENTRY"
	case SenseExit:
		return "EXIT"
	default:
		return "DIRT"
	}
}

// RelOperator compares two integers
type RelOperator int

const (
	RelEq RelOperator = iota
	RelNeq
	RelLt
	RelGt
)

func (o RelOperator) String() string {
	switch o {
	case RelNeq:
		return "!="
	case RelLt:
		return "<"
	case RelGt:
		return ">"
	default:
		return "=="
	}
}

type (
	// Sense queries the world around the agent
	Sense struct {
		Pos
		Kind SenseKind
	}

	// Unvisited holds when the agent's cell is not in the visited set
	Unvisited struct{ Pos }

	// Not negates a condition
	Not struct {
		Pos
		Operand Cond
	}

	// And holds when both sides hold. Both sides are always evaluated.
	And struct {
		Pos
		Left, Right Cond
	}

	// Or holds when either side holds. Both sides are always evaluated.
	Or struct {
		Pos
		Left, Right Cond
	}

	// RelOp compares two expressions
	RelOp struct {
		Pos
		Op          RelOperator
		Left, Right Expr
	}
)

func (*Sense) condNode()     {}
func (*Unvisited) condNode() {}
func (*Not) condNode()       {}
func (*And) condNode()       {}
func (*Or) condNode()        {}
func (*RelOp) condNode()     {}
