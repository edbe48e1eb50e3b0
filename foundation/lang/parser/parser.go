// File: parser.go
// Title: Parser
// Description: Recursive descent parser building the concrete syntax tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

// Package parser implements the recursive descent recognizer that turns a
// token stream into a concrete syntax tree.
//
// The parser stops at the first syntax error. The grammar has no error
// productions, and one misplaced token usually invalidates the rest of the
// program structure, so no resynchronisation is attempted.
package parser

import (
	"fmt"

	cwlog "github.com/msto63/cleanworld/foundation/core/log"
	"github.com/msto63/cleanworld/foundation/lang/cst"
	"github.com/msto63/cleanworld/foundation/lang/token"
)

// Parser consumes a token stream and builds a CST
type Parser struct {
	tokens   []token.Token
	pos      int
	current  token.Token
	previous token.Token
	logger   *cwlog.Logger
	options  Options
}

// Options configures parser behavior
type Options struct {
	Logger *cwlog.Logger
}

// SyntaxError reports the offending token and what the parser expected there
type SyntaxError struct {
	Line     int
	Found    token.Kind
	Lexeme   string
	Expected string
}

func (e *SyntaxError) Error() string {
	if e.Found == token.EOF {
		return fmt.Sprintf("line %d: syntax error: unexpected end of input, expected %s", e.Line, e.Expected)
	}
	return fmt.Sprintf("line %d: syntax error at %s '%s', expected %s", e.Line, e.Found, e.Lexeme, e.Expected)
}

// New creates a parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = cwlog.GetDefault()
	}
	return &Parser{
		logger:  opts.Logger.WithField("component", "parser"),
		options: opts,
	}
}

// Parse recognizes a whole program. On failure the returned error is a *SyntaxError.
func (p *Parser) Parse(tokens []token.Token) (*cst.Node, error) {
	p.tokens = tokens
	p.pos = 0
	p.previous = token.Token{}
	p.current = token.Token{}
	p.advance()

	p.logger.Debug("Parsing program", cwlog.Fields{"tokens": len(tokens)})

	root, err := p.parseProgram()
	if err != nil {
		p.logger.Debug("Parsing failed", cwlog.Fields{"error": err.Error()})
		return nil, err
	}

	if p.current.Kind != token.EOF {
		return nil, p.syntaxError("end of input after agent definition")
	}

	p.logger.Debug("Parsing completed", cwlog.Fields{
		"functions": len(root.Child(1).Children),
	})
	return root, nil
}

// program := world_def function_decl* agent_def
func (p *Parser) parseProgram() (*cst.Node, error) {
	line := p.current.Line

	world, err := p.parseWorldDef()
	if err != nil {
		return nil, err
	}

	functions := cst.NewNode(cst.FunctionList, p.current.Line)
	for p.current.Kind == token.Func {
		fn, err := p.parseFunctionDecl()
		if err != nil {
			return nil, err
		}
		functions.Children = append(functions.Children, fn)
	}

	agent, err := p.parseAgentDef()
	if err != nil {
		return nil, err
	}

	return cst.NewNode(cst.Program, line, world, functions, agent), nil
}

// world_def := WORLD id '{' world_stmt+ '}'
func (p *Parser) parseWorldDef() (*cst.Node, error) {
	line := p.current.Line
	if err := p.expect(token.World, "WORLD"); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier("world name")
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.LBrace, "'{' to open the world body"); err != nil {
		return nil, err
	}

	body := cst.NewNode(cst.WorldBody, p.current.Line)
	for {
		stmt, err := p.parseWorldStmt()
		if err != nil {
			return nil, err
		}
		body.Children = append(body.Children, stmt)
		if p.current.Kind == token.RBrace {
			break
		}
	}
	p.advance() // consume '}'

	return cst.NewNode(cst.WorldDef, line, name, body), nil
}

func (p *Parser) parseWorldStmt() (*cst.Node, error) {
	line := p.current.Line
	var prod cst.Production
	withDir := false

	switch p.current.Kind {
	case token.Size:
		prod = cst.Size
	case token.EntryDef:
		prod, withDir = cst.EntryDef, true
	case token.ExitDef:
		prod, withDir = cst.ExitDef, true
	case token.ObstacleDef:
		prod = cst.ObstacleDef
	case token.DirtDef:
		prod = cst.DirtDef
	default:
		return nil, p.syntaxError("a world statement (SIZE, ENTRY_DEF, EXIT_DEF, OBSTACLE_DEF, DIRT_DEF)")
	}
	p.advance()

	if err := p.expect(token.LParen, "'('"); err != nil {
		return nil, err
	}
	x, err := p.parseIntLit()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.Comma, "','"); err != nil {
		return nil, err
	}
	y, err := p.parseIntLit()
	if err != nil {
		return nil, err
	}
	node := cst.NewNode(prod, line, x, y)

	if withDir {
		if err := p.expect(token.Comma, "','"); err != nil {
			return nil, err
		}
		if !p.current.Kind.IsDirection() {
			return nil, p.syntaxError("a direction (N, E, S, W)")
		}
		node.Children = append(node.Children, cst.NewLeaf(cst.Direction, p.current.Value, p.current.Line))
		p.advance()
	}

	if err := p.expect(token.RParen, "')'"); err != nil {
		return nil, err
	}
	if err := p.expect(token.Semicolon, "';'"); err != nil {
		return nil, err
	}
	return node, nil
}

// function_decl := FUNC id '(' param_list? ')' RETURNS type '{' stmt+ '}'
func (p *Parser) parseFunctionDecl() (*cst.Node, error) {
	line := p.current.Line
	p.advance() // consume FUNC

	name, err := p.parseIdentifier("function name")
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.LParen, "'(' after function name"); err != nil {
		return nil, err
	}

	params := cst.NewNode(cst.ParamList, p.current.Line)
	if p.current.Kind != token.RParen {
		for {
			param, err := p.parseIdentifier("parameter name")
			if err != nil {
				return nil, err
			}
			params.Children = append(params.Children, param)
			if p.current.Kind != token.Comma {
				break
			}
			p.advance()
		}
	}
	if err := p.expect(token.RParen, "')' after parameters"); err != nil {
		return nil, err
	}

	if err := p.expect(token.Returns, "RETURNS"); err != nil {
		return nil, err
	}
	var typ *cst.Node
	switch p.current.Kind {
	case token.TypeInt, token.TypeVoid:
		typ = cst.NewLeaf(cst.Type, p.current.Value, p.current.Line)
		p.advance()
	default:
		return nil, p.syntaxError("a return type (INT or VOID)")
	}

	if err := p.expect(token.LBrace, "'{' to open the function body"); err != nil {
		return nil, err
	}
	body, err := p.parseStmtList(token.RBrace)
	if err != nil {
		return nil, err
	}
	p.advance() // consume '}'

	return cst.NewNode(cst.FunctionDecl, line, name, params, typ, body), nil
}

// agent_def := AGENT id '{' stmt+ '}'
func (p *Parser) parseAgentDef() (*cst.Node, error) {
	line := p.current.Line
	if err := p.expect(token.Agent, "FUNC or AGENT"); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier("agent name")
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.LBrace, "'{' to open the agent body"); err != nil {
		return nil, err
	}
	body, err := p.parseStmtList(token.RBrace)
	if err != nil {
		return nil, err
	}
	p.advance() // consume '}'

	return cst.NewNode(cst.AgentDef, line, name, body), nil
}

// parseStmtList parses stmt+ up to, but not including, one of the terminators
func (p *Parser) parseStmtList(terminators ...token.Kind) (*cst.Node, error) {
	list := cst.NewNode(cst.StmtList, p.current.Line)
	for {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		list.Children = append(list.Children, stmt)

		for _, t := range terminators {
			if p.current.Kind == t {
				return list, nil
			}
		}
	}
}

func (p *Parser) parseStmt() (*cst.Node, error) {
	line := p.current.Line

	switch p.current.Kind {
	case token.Var:
		p.advance()
		name, err := p.parseIdentifier("variable name")
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.Assign, "'=' in variable declaration"); err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return p.terminated(cst.NewNode(cst.VarDecl, line, name, value))

	case token.Ident:
		name := cst.NewLeaf(cst.Identifier, p.current.Value, line)
		p.advance()
		switch p.current.Kind {
		case token.Assign:
			p.advance()
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			return p.terminated(cst.NewNode(cst.Assign, line, name, value))
		case token.LParen:
			call, err := p.parseCallArgs(name)
			if err != nil {
				return nil, err
			}
			return p.terminated(cst.NewNode(cst.CallStmt, line, call))
		default:
			return nil, p.syntaxError("'=' or '(' after identifier")
		}

	case token.If:
		p.advance()
		cond, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.Then, "THEN"); err != nil {
			return nil, err
		}
		then, err := p.parseStmtList(token.Else)
		if err != nil {
			return nil, err
		}
		p.advance() // consume ELSE
		els, err := p.parseStmtList(token.EndIf)
		if err != nil {
			return nil, err
		}
		p.advance() // consume ENDIF
		return p.terminated(cst.NewNode(cst.If, line, cond, then, els))

	case token.While:
		p.advance()
		cond, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.Do, "DO"); err != nil {
			return nil, err
		}
		body, err := p.parseStmtList(token.EndWhile)
		if err != nil {
			return nil, err
		}
		p.advance() // consume ENDWHILE
		return p.terminated(cst.NewNode(cst.While, line, cond, body))

	case token.Move:
		p.advance()
		return p.terminated(cst.NewNode(cst.Move, line))

	case token.Clean:
		p.advance()
		return p.terminated(cst.NewNode(cst.Clean, line))

	case token.Backtrack:
		p.advance()
		return p.terminated(cst.NewNode(cst.Backtrack, line))

	case token.Turn:
		p.advance()
		if p.current.Kind != token.Left && p.current.Kind != token.Right {
			return nil, p.syntaxError("LEFT or RIGHT after TURN")
		}
		dir := cst.NewLeaf(cst.TurnDir, p.current.Value, p.current.Line)
		p.advance()
		return p.terminated(cst.NewNode(cst.Turn, line, dir))

	case token.Report:
		p.advance()
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return p.terminated(cst.NewNode(cst.Report, line, value))

	case token.Return:
		p.advance()
		if p.current.Kind == token.Semicolon {
			return p.terminated(cst.NewNode(cst.BareReturn, line))
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return p.terminated(cst.NewNode(cst.Return, line, value))

	default:
		return nil, p.syntaxError("a statement")
	}
}

func (p *Parser) terminated(n *cst.Node) (*cst.Node, error) {
	if err := p.expect(token.Semicolon, fmt.Sprintf("';' after %s", n.Prod)); err != nil {
		return nil, err
	}
	return n, nil
}

// condition := or_cond
// or_cond   := and_cond (OR and_cond)*
// and_cond  := unary (AND unary)*
// unary     := NOT unary | SENSE kind | UNVISITED | expr relop expr
func (p *Parser) parseCondition() (*cst.Node, error) {
	left, err := p.parseAndCondition()
	if err != nil {
		return nil, err
	}
	for p.current.Kind == token.Or {
		line := p.current.Line
		p.advance()
		right, err := p.parseAndCondition()
		if err != nil {
			return nil, err
		}
		left = cst.NewNode(cst.Or, line, left, right)
	}
	return left, nil
}

func (p *Parser) parseAndCondition() (*cst.Node, error) {
	left, err := p.parseUnaryCondition()
	if err != nil {
		return nil, err
	}
	for p.current.Kind == token.And {
		line := p.current.Line
		p.advance()
		right, err := p.parseUnaryCondition()
		if err != nil {
			return nil, err
		}
		left = cst.NewNode(cst.And, line, left, right)
	}
	return left, nil
}

func (p *Parser) parseUnaryCondition() (*cst.Node, error) {
	line := p.current.Line

	switch p.current.Kind {
	case token.Not:
		p.advance()
		operand, err := p.parseUnaryCondition()
		if err != nil {
			return nil, err
		}
		return cst.NewNode(cst.Not, line, operand), nil

	case token.Sense:
		p.advance()
		switch p.current.Kind {
		case token.Dirt, token.Obstacle, token.Entry, token.Exit:
			kind := cst.NewLeaf(cst.SenseKind, p.current.Value, p.current.Line)
			p.advance()
			return cst.NewNode(cst.Sense, line, kind), nil
		default:
			return nil, p.syntaxError("DIRT, OBSTACLE, ENTRY or EXIT after SENSE")
		}

	case token.Unvisited:
		p.advance()
		return cst.NewNode(cst.Unvisited, line), nil

	case token.Ident, token.IntLit:
		left, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		switch p.current.Kind {
		case token.Eq, token.Neq, token.Lt, token.Gt:
		default:
			return nil, p.syntaxError("a relational operator (==, !=, <, >)")
		}
		op := cst.NewLeaf(cst.RelOp, p.current.Value, p.current.Line)
		p.advance()
		right, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return cst.NewNode(cst.Relation, line, left, op, right), nil

	default:
		return nil, p.syntaxError("a condition")
	}
}

// expr := term (('+'|'-') expr)?
func (p *Parser) parseExpr() (*cst.Node, error) {
	line := p.current.Line
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	var prod cst.Production
	switch p.current.Kind {
	case token.Plus:
		prod = cst.Plus
	case token.Minus:
		prod = cst.Minus
	default:
		return term, nil
	}
	p.advance()

	rest, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return cst.NewNode(prod, line, term, rest), nil
}

// term := id | int | call
func (p *Parser) parseTerm() (*cst.Node, error) {
	switch p.current.Kind {
	case token.IntLit:
		return p.parseIntLit()
	case token.Ident:
		name := cst.NewLeaf(cst.Identifier, p.current.Value, p.current.Line)
		p.advance()
		if p.current.Kind == token.LParen {
			return p.parseCallArgs(name)
		}
		return name, nil
	default:
		return nil, p.syntaxError("an expression")
	}
}

// call := id '(' (expr (',' expr)*)? ')'; the identifier is already consumed
func (p *Parser) parseCallArgs(name *cst.Node) (*cst.Node, error) {
	p.advance() // consume '('

	args := cst.NewNode(cst.ArgList, p.current.Line)
	if p.current.Kind != token.RParen {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args.Children = append(args.Children, arg)
			if p.current.Kind != token.Comma {
				break
			}
			p.advance()
		}
	}
	if err := p.expect(token.RParen, "')' to close the argument list"); err != nil {
		return nil, err
	}
	return cst.NewNode(cst.Call, name.Line, name, args), nil
}

func (p *Parser) parseIdentifier(what string) (*cst.Node, error) {
	if p.current.Kind != token.Ident {
		return nil, p.syntaxError(what)
	}
	n := cst.NewLeaf(cst.Identifier, p.current.Value, p.current.Line)
	p.advance()
	return n, nil
}

func (p *Parser) parseIntLit() (*cst.Node, error) {
	if p.current.Kind != token.IntLit {
		return nil, p.syntaxError("an integer")
	}
	n := cst.NewLeaf(cst.IntLit, p.current.Value, p.current.Line)
	p.advance()
	return n, nil
}

func (p *Parser) expect(kind token.Kind, what string) error {
	if p.current.Kind != kind {
		return p.syntaxError(what)
	}
	p.advance()
	return nil
}

// advance moves to the next token; past the end it yields EOF on the last line
func (p *Parser) advance() {
	p.previous = p.current
	if p.pos < len(p.tokens) {
		p.current = p.tokens[p.pos]
		p.pos++
		return
	}
	line := p.previous.Line
	if line == 0 {
		line = 1
	}
	p.current = token.Token{Kind: token.EOF, Line: line}
}

func (p *Parser) syntaxError(expected string) error {
	return &SyntaxError{
		Line:     p.current.Line,
		Found:    p.current.Kind,
		Lexeme:   p.current.Value,
		Expected: expected,
	}
}
