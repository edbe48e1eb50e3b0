// File: symbols.go
// Title: Symbol Table
// Description: Scoped symbol table used during analysis.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package semantic

import (
	"fmt"

	"github.com/msto63/cleanworld/foundation/lang/ast"
)

// SymbolKind classifies a declared name
type SymbolKind int

const (
	KindFunction SymbolKind = iota
	KindParam
	KindVariable
)

func (k SymbolKind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindParam:
		return "param"
	default:
		return "variable"
	}
}

// Symbol is one entry of a scope
type Symbol struct {
	Name string
	Kind SymbolKind
	Type ast.Type
	// Params is set for functions only
	Params []string
	Line   int
}

// Scope maps names to symbols for one callable body or the global level
type Scope struct {
	Name    string
	symbols map[string]*Symbol
}

func newScope(name string) *Scope {
	return &Scope{Name: name, symbols: make(map[string]*Symbol)}
}

// Lookup checks only this scope
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// Len returns the number of names in the scope
func (s *Scope) Len() int {
	return len(s.symbols)
}

// SymbolTable is a stack of scopes. Index 0 is the global scope holding
// function signatures. A scope is pushed per function body and for the agent
// body, never for IF or WHILE blocks.
type SymbolTable struct {
	scopes []*Scope
}

// NewSymbolTable returns a table containing only the global scope
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{scopes: []*Scope{newScope("global")}}
}

// Push opens a new innermost scope
func (t *SymbolTable) Push(name string) {
	t.scopes = append(t.scopes, newScope(name))
}

// Pop closes the innermost scope. The global scope is never popped.
func (t *SymbolTable) Pop() {
	if len(t.scopes) > 1 {
		t.scopes = t.scopes[:len(t.scopes)-1]
	}
}

// Depth returns the number of open scopes including the global one
func (t *SymbolTable) Depth() int {
	return len(t.scopes)
}

// Current returns the innermost scope
func (t *SymbolTable) Current() *Scope {
	return t.scopes[len(t.scopes)-1]
}

// Global returns the outermost scope
func (t *SymbolTable) Global() *Scope {
	return t.scopes[0]
}

// Declare adds sym to the innermost scope. It fails when the name is already
// declared in that same scope; shadowing an outer name is allowed.
func (t *SymbolTable) Declare(sym *Symbol) error {
	cur := t.Current()
	if prev, exists := cur.symbols[sym.Name]; exists {
		return fmt.Errorf("%s '%s' already declared in scope %s at line %d", prev.Kind, sym.Name, cur.Name, prev.Line)
	}
	cur.symbols[sym.Name] = sym
	return nil
}

// Lookup resolves name from the innermost scope outward
func (t *SymbolTable) Lookup(name string) (*Symbol, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[i].symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}
