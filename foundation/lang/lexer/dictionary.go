// File: dictionary.go
// Title: Symbol Dictionary
// Description: Dictionary of reserved words and identifiers seen by the
//              lexer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package lexer

import (
	"sort"

	"github.com/msto63/cleanworld/foundation/lang/token"
)

// SymbolKind distinguishes reserved words from user identifiers
type SymbolKind string

const (
	SymbolReserved SymbolKind = "reserved"
	SymbolIdent    SymbolKind = "id"
)

// Symbol is one row of the symbol table
type Symbol struct {
	Lexeme string
	Token  token.Kind
	Kind   SymbolKind
	// Count is how often the lexeme occurred in the scanned input
	Count int
}

// Literal is one row of the literal table
type Literal struct {
	Value int64
	Count int
}

// Dictionary holds the symbol and literal frequency tables of one lexer run.
// The symbol table starts out with every reserved word.
type Dictionary struct {
	symbols  map[string]*Symbol
	literals map[int64]int
}

// NewDictionary returns a dictionary seeded with the reserved words
func NewDictionary() *Dictionary {
	d := &Dictionary{}
	d.Reset()
	return d
}

// Reset drops everything learned from input, keeping the reserved words
func (d *Dictionary) Reset() {
	d.symbols = make(map[string]*Symbol)
	d.literals = make(map[int64]int)
	for lexeme, kind := range token.Keywords() {
		d.symbols[lexeme] = &Symbol{Lexeme: lexeme, Token: kind, Kind: SymbolReserved}
	}
}

func (d *Dictionary) observeWord(lexeme string, kind token.Kind) {
	sym, ok := d.symbols[lexeme]
	if !ok {
		sym = &Symbol{Lexeme: lexeme, Token: token.Ident, Kind: SymbolIdent}
		d.symbols[lexeme] = sym
	}
	sym.Count++
}

func (d *Dictionary) observeLiteral(v int64) {
	d.literals[v]++
}

// Lookup returns the symbol entry for lexeme
func (d *Dictionary) Lookup(lexeme string) (Symbol, bool) {
	sym, ok := d.symbols[lexeme]
	if !ok {
		return Symbol{}, false
	}
	return *sym, true
}

// Symbols returns all symbol rows sorted by lexeme
func (d *Dictionary) Symbols() []Symbol {
	out := make([]Symbol, 0, len(d.symbols))
	for _, s := range d.symbols {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Lexeme < out[j].Lexeme })
	return out
}

// Identifiers returns only user identifiers, sorted by lexeme
func (d *Dictionary) Identifiers() []Symbol {
	var out []Symbol
	for _, s := range d.Symbols() {
		if s.Kind == SymbolIdent {
			out = append(out, s)
		}
	}
	return out
}

// Literals returns the literal rows sorted by value
func (d *Dictionary) Literals() []Literal {
	out := make([]Literal, 0, len(d.literals))
	for v, n := range d.literals {
		out = append(out, Literal{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}
