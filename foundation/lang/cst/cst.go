// File: cst.go
// Title: Concrete Syntax Tree
// Description: Productions, node type and shape validation for the parse
//              tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

// Package cst defines the concrete syntax tree built by the parser.
//
// Every node is tagged with a Production. The production fixes the number and
// order of children, so consumers index Children positionally after checking
// the tag. List productions (WorldBody, FunctionList, ParamList, StmtList,
// ArgList) are the only variadic ones. Leaf productions carry their lexeme in
// Value and have no children.
package cst

import (
	"fmt"
	"strconv"
	"strings"
)

// Production names a grammar rule
type Production int

const (
	Program Production = iota
	WorldDef
	WorldBody
	Size
	EntryDef
	ExitDef
	ObstacleDef
	DirtDef
	FunctionList
	FunctionDecl
	ParamList
	AgentDef
	StmtList

	VarDecl
	Assign
	If
	While
	Move
	Turn
	Clean
	Backtrack
	Report
	Return
	BareReturn
	CallStmt

	Call
	ArgList
	Plus
	Minus

	Sense
	Unvisited
	Not
	And
	Or
	Relation

	Identifier
	IntLit
	Direction
	TurnDir
	SenseKind
	RelOp
	Type

	numProductions
)

// Variadic marks list productions in the arity table
const Variadic = -1

type shape struct {
	name  string
	arity int
	leaf  bool
}

var shapes = [numProductions]shape{
	Program:      {"program", 3, false},
	WorldDef:     {"world_def", 2, false},
	WorldBody:    {"world_body", Variadic, false},
	Size:         {"size", 2, false},
	EntryDef:     {"entry_def", 3, false},
	ExitDef:      {"exit_def", 3, false},
	ObstacleDef:  {"obstacle_def", 2, false},
	DirtDef:      {"dirt_def", 2, false},
	FunctionList: {"function_list", Variadic, false},
	FunctionDecl: {"function_decl", 4, false},
	ParamList:    {"param_list", Variadic, false},
	AgentDef:     {"agent_def", 2, false},
	StmtList:     {"stmt_list", Variadic, false},
	VarDecl:      {"var_decl", 2, false},
	Assign:       {"assign", 2, false},
	If:           {"if", 3, false},
	While:        {"while", 2, false},
	Move:         {"move", 0, false},
	Turn:         {"turn", 1, false},
	Clean:        {"clean", 0, false},
	Backtrack:    {"backtrack", 0, false},
	Report:       {"report", 1, false},
	Return:       {"return", 1, false},
	BareReturn:   {"bare_return", 0, false},
	CallStmt:     {"call_stmt", 1, false},
	Call:         {"call", 2, false},
	ArgList:      {"arg_list", Variadic, false},
	Plus:         {"plus", 2, false},
	Minus:        {"minus", 2, false},
	Sense:        {"sense", 1, false},
	Unvisited:    {"unvisited", 0, false},
	Not:          {"not", 1, false},
	And:          {"and", 2, false},
	Or:           {"or", 2, false},
	Relation:     {"relation", 3, false},
	Identifier:   {"id", 0, true},
	IntLit:       {"int", 0, true},
	Direction:    {"dir", 0, true},
	TurnDir:      {"turn_dir", 0, true},
	SenseKind:    {"sense_kind", 0, true},
	RelOp:        {"relop", 0, true},
	Type:         {"type", 0, true},
}

// String returns the grammar rule name
func (p Production) String() string {
	if p >= 0 && p < numProductions {
		return shapes[p].name
	}
	return fmt.Sprintf("Production(%d)", int(p))
}

// Arity returns the fixed child count, or Variadic for list productions
func (p Production) Arity() int {
	return shapes[p].arity
}

// IsLeaf reports whether the production carries a literal value
func (p Production) IsLeaf() bool {
	return shapes[p].leaf
}

// IsExpr reports whether a node of this production can stand where an
// arithmetic expression is expected
func (p Production) IsExpr() bool {
	switch p {
	case Identifier, IntLit, Call, Plus, Minus:
		return true
	}
	return false
}

// IsCondition reports whether a node of this production is a condition
func (p Production) IsCondition() bool {
	switch p {
	case Sense, Unvisited, Not, And, Or, Relation:
		return true
	}
	return false
}

// Productions returns every production in declaration order
func Productions() []Production {
	out := make([]Production, numProductions)
	for i := range out {
		out[i] = Production(i)
	}
	return out
}

// Node is a CST node. Line is the source line of the first token of the rule.
type Node struct {
	Prod     Production
	Children []*Node
	Value    string
	Line     int
}

// NewNode builds an interior node
func NewNode(prod Production, line int, children ...*Node) *Node {
	return &Node{Prod: prod, Children: children, Line: line}
}

// NewLeaf builds a leaf node carrying a literal
func NewLeaf(prod Production, value string, line int) *Node {
	return &Node{Prod: prod, Value: value, Line: line}
}

// Child returns the i-th child
func (n *Node) Child(i int) *Node {
	return n.Children[i]
}

// Int returns the value of an IntLit leaf. The lexer guarantees the digits fit.
func (n *Node) Int() int64 {
	v, _ := strconv.ParseInt(n.Value, 10, 64)
	return v
}

// Validate checks the fixed-arity invariant over the whole subtree
func (n *Node) Validate() error {
	if n == nil {
		return fmt.Errorf("nil node")
	}
	if n.Prod < 0 || n.Prod >= numProductions {
		return fmt.Errorf("line %d: unknown production %d", n.Line, int(n.Prod))
	}
	if n.Prod.IsLeaf() {
		if len(n.Children) != 0 {
			return fmt.Errorf("line %d: leaf %s has children", n.Line, n.Prod)
		}
		return nil
	}
	if a := n.Prod.Arity(); a != Variadic && len(n.Children) != a {
		return fmt.Errorf("line %d: %s has %d children, want %d", n.Line, n.Prod, len(n.Children), a)
	}
	for _, c := range n.Children {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// String renders the subtree as an indented outline
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b, 0)
	return b.String()
}

func (n *Node) write(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Prod.String())
	if n.Prod.IsLeaf() {
		fmt.Fprintf(b, " %s", n.Value)
	}
	b.WriteByte('\n')
	for _, c := range n.Children {
		c.write(b, depth+1)
	}
}

// Walk calls fn for n and every descendant in pre-order. Returning false
// from fn skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}
