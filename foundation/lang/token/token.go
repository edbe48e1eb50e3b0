// File: token.go
// Title: Token Definitions
// Description: Token kinds and the token type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

// Package token defines the lexical vocabulary of the cleanworld language.
package token

import "fmt"

// Kind is the type of a lexical token
type Kind int

const (
	// Illegal marks a character the lexer could not classify
	Illegal Kind = iota
	// EOF is returned by the parser's cursor once the stream is exhausted
	EOF

	World
	Agent
	Size
	EntryDef
	ExitDef
	ObstacleDef
	DirtDef

	North
	East
	South
	West

	Var
	If
	Then
	Else
	EndIf
	While
	Do
	EndWhile

	Move
	Turn
	Left
	Right
	Clean
	Backtrack
	Report

	Sense
	Dirt
	Obstacle
	Unvisited
	Entry
	Exit

	Func
	Returns
	Return

	TypeInt
	TypeVoid

	And
	Or
	Not

	Assign
	Plus
	Minus
	Eq
	Neq
	Lt
	Gt

	LBrace
	RBrace
	LParen
	RParen
	Comma
	Semicolon

	IntLit
	Ident
)

var names = [...]string{
	Illegal:     "ILLEGAL",
	EOF:         "EOF",
	World:       "WORLD",
	Agent:       "AGENT",
	Size:        "SIZE",
	EntryDef:    "ENTRY_DEF",
	ExitDef:     "EXIT_DEF",
	ObstacleDef: "OBSTACLE_DEF",
	DirtDef:     "DIRT_DEF",
	North:       "N",
	East:        "E",
	South:       "S",
	West:        "W",
	Var:         "VAR",
	If:          "IF",
	Then:        "THEN",
	Else:        "ELSE",
	EndIf:       "ENDIF",
	While:       "WHILE",
	Do:          "DO",
	EndWhile:    "ENDWHILE",
	Move:        "MOVE",
	Turn:        "TURN",
	Left:        "LEFT",
	Right:       "RIGHT",
	Clean:       "CLEAN",
	Backtrack:   "BACKTRACK",
	Report:      "REPORT",
	Sense:       "SENSE",
	Dirt:        "DIRT",
	Obstacle:    "OBSTACLE",
	Unvisited:   "UNVISITED",
	Entry:       "ENTRY",
	Exit:        "EXIT",
	Func:        "FUNC",
	Returns:     "RETURNS",
	Return:      "RETURN",
	TypeInt:     "TYPE_INT",
	TypeVoid:    "TYPE_VOID",
	And:         "AND",
	Or:          "OR",
	Not:         "NOT",
	Assign:      "ASSIGN",
	Plus:        "PLUS",
	Minus:       "MINUS",
	Eq:          "EQ",
	Neq:         "NEQ",
	Lt:          "LT",
	Gt:          "GT",
	LBrace:      "LBRACE",
	RBrace:      "RBRACE",
	LParen:      "LPAREN",
	RParen:      "RPAREN",
	Comma:       "COMMA",
	Semicolon:   "SEMICOLON",
	IntLit:      "INT_LIT",
	Ident:       "ID",
}

// ids holds the numeric token ids of the token stream format.
// REPORT was added to the language late and carries id 55.
var ids = map[Kind]int{
	World: 1, Agent: 2, Size: 3, EntryDef: 4, ExitDef: 5, ObstacleDef: 6, DirtDef: 7,
	North: 8, East: 9, South: 10, West: 11,
	Var: 12, If: 13, Then: 14, Else: 15, EndIf: 16, While: 17, Do: 18, EndWhile: 19,
	Move: 20, Turn: 21, Left: 22, Right: 23, Clean: 24, Backtrack: 25, Report: 55,
	Sense: 26, Dirt: 27, Obstacle: 28, Unvisited: 29, Entry: 30, Exit: 31,
	Func: 32, Returns: 33, Return: 34,
	TypeInt: 35, TypeVoid: 36,
	And: 37, Or: 38, Not: 39,
	Assign: 40, Plus: 41, Minus: 42, Eq: 43, Neq: 44, Lt: 45, Gt: 46,
	LBrace: 47, RBrace: 48, LParen: 49, RParen: 50, Comma: 51, Semicolon: 52,
	IntLit: 53, Ident: 54,
}

// String returns the token name as used in diagnostics and token dumps
func (k Kind) String() string {
	if k >= 0 && int(k) < len(names) && names[k] != "" {
		return names[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ID returns the numeric id used by the token stream format, or 0 for
// Illegal and EOF which never appear in a stream.
func (k Kind) ID() int {
	return ids[k]
}

// IsKeyword reports whether k is a reserved word
func (k Kind) IsKeyword() bool {
	return k >= World && k <= Not
}

// IsDirection reports whether k is one of N, E, S, W
func (k Kind) IsDirection() bool {
	return k >= North && k <= West
}

var keywords = map[string]Kind{
	"INT":  TypeInt,
	"VOID": TypeVoid,
}

func init() {
	for k := World; k <= Not; k++ {
		if k == TypeInt || k == TypeVoid {
			continue
		}
		keywords[names[k]] = k
	}
}

// Lookup maps an identifier-shaped lexeme to its keyword kind, or Ident
func Lookup(lexeme string) Kind {
	if k, ok := keywords[lexeme]; ok {
		return k
	}
	return Ident
}

// Keywords returns the reserved lexemes and their kinds. The map is a copy.
func Keywords() map[string]Kind {
	out := make(map[string]Kind, len(keywords))
	for k, v := range keywords {
		out[k] = v
	}
	return out
}

// Token is a single lexeme with its kind and source line.
// Value holds the lexeme text; for IntLit it is the decimal digits.
type Token struct {
	Kind  Kind
	Value string
	Line  int
}

// String formats a token like "ID(x)@3"
func (t Token) String() string {
	return fmt.Sprintf("%s(%s)@%d", t.Kind, t.Value, t.Line)
}
