// File: lexer_test.go
// Title: Lexer Tests
// Description: Unit tests for tokenization and lexical errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test suite

package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/msto63/cleanworld/foundation/lang/token"
)

func TestTokenize(t *testing.T) {
	input := `WORLD w {
  SIZE(3, 4); // grid
  ENTRY_DEF(1,1,N);
}
FUNC f(a) RETURNS INT { RETURN a + 1; }
AGENT bot { IF x == 2 AND y != 0 THEN MOVE; ELSE CLEAN; ENDIF; }`

	tokens, errs := Tokenize(input, nil)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	want := []token.Token{
		{Kind: token.World, Value: "WORLD", Line: 1},
		{Kind: token.Ident, Value: "w", Line: 1},
		{Kind: token.LBrace, Value: "{", Line: 1},
		{Kind: token.Size, Value: "SIZE", Line: 2},
		{Kind: token.LParen, Value: "(", Line: 2},
		{Kind: token.IntLit, Value: "3", Line: 2},
		{Kind: token.Comma, Value: ",", Line: 2},
		{Kind: token.IntLit, Value: "4", Line: 2},
		{Kind: token.RParen, Value: ")", Line: 2},
		{Kind: token.Semicolon, Value: ";", Line: 2},
		{Kind: token.EntryDef, Value: "ENTRY_DEF", Line: 3},
		{Kind: token.LParen, Value: "(", Line: 3},
		{Kind: token.IntLit, Value: "1", Line: 3},
		{Kind: token.Comma, Value: ",", Line: 3},
		{Kind: token.IntLit, Value: "1", Line: 3},
		{Kind: token.Comma, Value: ",", Line: 3},
		{Kind: token.North, Value: "N", Line: 3},
		{Kind: token.RParen, Value: ")", Line: 3},
		{Kind: token.Semicolon, Value: ";", Line: 3},
		{Kind: token.RBrace, Value: "}", Line: 4},
		{Kind: token.Func, Value: "FUNC", Line: 5},
		{Kind: token.Ident, Value: "f", Line: 5},
		{Kind: token.LParen, Value: "(", Line: 5},
		{Kind: token.Ident, Value: "a", Line: 5},
		{Kind: token.RParen, Value: ")", Line: 5},
		{Kind: token.Returns, Value: "RETURNS", Line: 5},
		{Kind: token.TypeInt, Value: "INT", Line: 5},
		{Kind: token.LBrace, Value: "{", Line: 5},
		{Kind: token.Return, Value: "RETURN", Line: 5},
		{Kind: token.Ident, Value: "a", Line: 5},
		{Kind: token.Plus, Value: "+", Line: 5},
		{Kind: token.IntLit, Value: "1", Line: 5},
		{Kind: token.Semicolon, Value: ";", Line: 5},
		{Kind: token.RBrace, Value: "}", Line: 5},
		{Kind: token.Agent, Value: "AGENT", Line: 6},
		{Kind: token.Ident, Value: "bot", Line: 6},
		{Kind: token.LBrace, Value: "{", Line: 6},
		{Kind: token.If, Value: "IF", Line: 6},
		{Kind: token.Ident, Value: "x", Line: 6},
		{Kind: token.Eq, Value: "==", Line: 6},
		{Kind: token.IntLit, Value: "2", Line: 6},
		{Kind: token.And, Value: "AND", Line: 6},
		{Kind: token.Ident, Value: "y", Line: 6},
		{Kind: token.Neq, Value: "!=", Line: 6},
		{Kind: token.IntLit, Value: "0", Line: 6},
		{Kind: token.Then, Value: "THEN", Line: 6},
		{Kind: token.Move, Value: "MOVE", Line: 6},
		{Kind: token.Semicolon, Value: ";", Line: 6},
		{Kind: token.Else, Value: "ELSE", Line: 6},
		{Kind: token.Clean, Value: "CLEAN", Line: 6},
		{Kind: token.Semicolon, Value: ";", Line: 6},
		{Kind: token.EndIf, Value: "ENDIF", Line: 6},
		{Kind: token.Semicolon, Value: ";", Line: 6},
		{Kind: token.RBrace, Value: "}", Line: 6},
	}

	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
	}
}

func TestIllegalCharacters(t *testing.T) {
	tokens, errs := Tokenize("MOVE # ;\n@ CLEAN ! ;", nil)

	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(errs), errs)
	}
	wantMsgs := []string{
		"line 1: Illegal character '#'",
		"line 2: Illegal character '@'",
		"line 2: Illegal character '!'",
	}
	for i, want := range wantMsgs {
		if errs[i].Error() != want {
			t.Errorf("error %d = %q, want %q", i, errs[i].Error(), want)
		}
	}

	kinds := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	wantKinds := []token.Kind{token.Move, token.Semicolon, token.Clean, token.Semicolon}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Errorf("tokens after skipping illegal chars (-want +got):\n%s", diff)
	}
}

func TestDictionaryIsPerRun(t *testing.T) {
	first := NewDictionary()
	Tokenize("VAR x = 5; x = x + 5;", first)

	x, ok := first.Lookup("x")
	if !ok || x.Kind != SymbolIdent || x.Count != 3 {
		t.Errorf("Lookup(x) = %+v, %v; want ident with count 3", x, ok)
	}
	if diff := cmp.Diff([]Literal{{Value: 5, Count: 2}}, first.Literals()); diff != "" {
		t.Errorf("literals (-want +got):\n%s", diff)
	}

	second := NewDictionary()
	Tokenize("VAR y = 1;", second)
	if _, ok := second.Lookup("x"); ok {
		t.Error("identifier from first run leaked into second dictionary")
	}
	if ids := second.Identifiers(); len(ids) != 1 || ids[0].Lexeme != "y" {
		t.Errorf("Identifiers() = %+v, want only y", ids)
	}

	if sym, ok := second.Lookup("WHILE"); !ok || sym.Kind != SymbolReserved {
		t.Errorf("reserved words should be pre-seeded, got %+v %v", sym, ok)
	}

	first.Reset()
	if len(first.Identifiers()) != 0 || len(first.Literals()) != 0 {
		t.Error("Reset() should drop identifiers and literals")
	}
}

func TestIntegerOverflow(t *testing.T) {
	tokens, errs := Tokenize("REPORT 99999999999999999999;", nil)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if len(tokens) != 2 {
		t.Errorf("got %d tokens, want REPORT and ';'", len(tokens))
	}
}
