// File: lexer.go
// Title: Lexer
// Description: Turns source text into tokens and collects lexical errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

// Package lexer turns cleanworld source text into a token stream.
//
// The lexer records every identifier and integer literal it produces in a
// Dictionary owned by the caller. A fresh Dictionary per run keeps frequency
// tables of unrelated programs apart.
package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/msto63/cleanworld/foundation/lang/token"
)

// Error is a lexical problem. The offending character is skipped and lexing continues.
type Error struct {
	Line    int
	Char    rune
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Lexer scans source text one rune at a time
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
	width        int
	line         int

	dict   *Dictionary
	errors []*Error
}

// New creates a lexer over input. dict may be nil when no frequency tables are wanted.
func New(input string, dict *Dictionary) *Lexer {
	l := &Lexer{input: input, line: 1, dict: dict}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.width = 0
	} else {
		l.ch, l.width = utf8.DecodeRuneInString(l.input[l.readPosition:])
	}
	l.position = l.readPosition
	l.readPosition += l.width
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

// NextToken returns the next token. At end of input it returns token.EOF
// repeatedly. Illegal characters are recorded in Errors and skipped.
func (l *Lexer) NextToken() token.Token {
	for {
		l.skipWhitespaceAndComments()
		if l.atEnd() {
			return token.Token{Kind: token.EOF, Line: l.line}
		}

		line := l.line
		switch ch := l.ch; {
		case ch == ';':
			return l.single(token.Semicolon, line)
		case ch == ',':
			return l.single(token.Comma, line)
		case ch == '(':
			return l.single(token.LParen, line)
		case ch == ')':
			return l.single(token.RParen, line)
		case ch == '{':
			return l.single(token.LBrace, line)
		case ch == '}':
			return l.single(token.RBrace, line)
		case ch == '+':
			return l.single(token.Plus, line)
		case ch == '-':
			return l.single(token.Minus, line)
		case ch == '<':
			return l.single(token.Lt, line)
		case ch == '>':
			return l.single(token.Gt, line)
		case ch == '=':
			if l.peekChar() == '=' {
				l.readChar()
				l.readChar()
				return token.Token{Kind: token.Eq, Value: "==", Line: line}
			}
			return l.single(token.Assign, line)
		case ch == '!' && l.peekChar() == '=':
			l.readChar()
			l.readChar()
			return token.Token{Kind: token.Neq, Value: "!=", Line: line}
		case isLetter(ch):
			return l.readIdentifier(line)
		case isDigit(ch):
			if tok, ok := l.readNumber(line); ok {
				return tok
			}
		default:
			l.errors = append(l.errors, &Error{
				Line:    line,
				Char:    ch,
				Message: fmt.Sprintf("Illegal character '%c'", ch),
			})
			l.readChar()
		}
	}
}

func (l *Lexer) single(kind token.Kind, line int) token.Token {
	tok := token.Token{Kind: kind, Value: string(l.ch), Line: line}
	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		switch {
		case l.ch == '\n':
			l.line++
			l.readChar()
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for !l.atEnd() && l.ch != '\n' {
				l.readChar()
			}
		default:
			return
		}
	}
}

func (l *Lexer) readIdentifier(line int) token.Token {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	kind := token.Lookup(lexeme)
	if l.dict != nil {
		l.dict.observeWord(lexeme, kind)
	}
	return token.Token{Kind: kind, Value: lexeme, Line: line}
}

func (l *Lexer) readNumber(line int) (token.Token, bool) {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	value, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		l.errors = append(l.errors, &Error{
			Line:    line,
			Char:    rune(lexeme[0]),
			Message: fmt.Sprintf("Integer literal out of range: %s", lexeme),
		})
		return token.Token{}, false
	}
	if l.dict != nil {
		l.dict.observeLiteral(value)
	}
	return token.Token{Kind: token.IntLit, Value: lexeme, Line: line}, true
}

// Errors returns the lexical errors found so far
func (l *Lexer) Errors() []*Error {
	return l.errors
}

// Tokenize scans the whole input. The returned slice never contains EOF.
func Tokenize(input string, dict *Dictionary) ([]token.Token, []*Error) {
	l := New(input, dict)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, l.Errors()
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
