// File: engine.go
// Title: Language Engine
// Description: Runs the tokenize, parse, analyze and execute stages and
//              reports a result.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

// Package lang ties the language stages together: tokenize, parse, analyze
// and execute a cleaning-agent program in one call.
package lang

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"

	cwerr "github.com/msto63/cleanworld/foundation/core/error"
	"github.com/msto63/cleanworld/foundation/core/log"
	"github.com/msto63/cleanworld/foundation/lang/ast"
	"github.com/msto63/cleanworld/foundation/lang/cst"
	"github.com/msto63/cleanworld/foundation/lang/interp"
	"github.com/msto63/cleanworld/foundation/lang/lexer"
	"github.com/msto63/cleanworld/foundation/lang/parser"
	"github.com/msto63/cleanworld/foundation/lang/semantic"
	"github.com/msto63/cleanworld/foundation/lang/token"
)

// Options configures an Engine
type Options struct {
	Logger   *log.Logger
	MaxSteps int
	Scoping  interp.Scoping

	// RunWithDiagnostics executes the best-effort AST even when the analyzer
	// reported diagnostics
	RunWithDiagnostics bool

	// OnEvent is passed through to the interpreter
	OnEvent func(interp.Event)
}

// Engine runs programs through the whole pipeline. An Engine holds no
// per-run state and may be shared between goroutines.
type Engine struct {
	logger  *log.Logger
	options Options
}

// NewEngine creates an engine
func NewEngine(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	return &Engine{
		logger:  opts.Logger.WithField("component", "engine"),
		options: opts,
	}
}

// Tokenize scans source into tokens. The dictionary collects the symbols and
// literals seen. Lexical errors are returned as one CodeLexicalError whose
// "errors" detail lists every message.
func (e *Engine) Tokenize(source string) ([]token.Token, *lexer.Dictionary, error) {
	dict := lexer.NewDictionary()
	tokens, lexErrs := lexer.Tokenize(source, dict)
	if len(lexErrs) == 0 {
		return tokens, dict, nil
	}

	msgs := make([]string, len(lexErrs))
	for i, le := range lexErrs {
		msgs[i] = le.Error()
	}
	err := cwerr.Wrap(lexErrs[0], "lexical analysis failed").
		WithCode(cwerr.CodeLexicalError).
		WithOperation("tokenize").
		WithDetail("errors", msgs)
	return tokens, dict, err
}

// Parse builds the concrete syntax tree
func (e *Engine) Parse(tokens []token.Token) (*cst.Node, error) {
	root, err := parser.New(parser.Options{Logger: e.options.Logger}).Parse(tokens)
	if err != nil {
		wrapped := cwerr.Wrap(err, "parse failed").
			WithCode(cwerr.CodeSyntaxError).
			WithOperation("parse")
		var se *parser.SyntaxError
		if errors.As(err, &se) {
			wrapped = wrapped.WithDetail("line", se.Line)
		}
		return nil, wrapped
	}
	return root, nil
}

// Analyze lowers a concrete tree into an AST and collects diagnostics
func (e *Engine) Analyze(root *cst.Node) (*ast.Program, []semantic.Diagnostic) {
	return semantic.New(semantic.Options{Logger: e.options.Logger}).Analyze(root)
}

// Compile runs the front end (tokenize, parse, analyze) and lints the world.
// The returned Result has no execution data; its Status reflects the first
// failing stage. The AST is nil when lexing or parsing failed.
func (e *Engine) Compile(name, source string) (*ast.Program, *Result, error) {
	res := newResult(name, source)
	prog, err := e.compile(res, source)
	if res.Status == "" {
		res.Status = StatusOK
	}
	res.finish()
	return prog, res, err
}

func (e *Engine) compile(res *Result, source string) (*ast.Program, error) {
	tokens, _, err := e.Tokenize(source)
	if err != nil {
		res.Status = StatusLexicalError
		res.Error = err.Error()
		var ce *cwerr.Error
		if errors.As(err, &ce) {
			res.LexicalErrors, _ = ce.Details()["errors"].([]string)
		}
		return nil, err
	}

	root, err := e.Parse(tokens)
	if err != nil {
		res.Status = StatusSyntaxError
		res.Error = errors.Unwrap(err).Error()
		return nil, err
	}
	return e.lower(res, root)
}

// lower analyzes root and lints the world. A tree the analyzer cannot lower
// at all fails with CodeSemanticError.
func (e *Engine) lower(res *Result, root *cst.Node) (*ast.Program, error) {
	prog, diags := e.Analyze(root)
	res.Diagnostics = diags
	if prog == nil {
		res.Status = StatusSemanticError
		return nil, cwerr.Newf("%d semantic error(s)", len(diags)).
			WithCode(cwerr.CodeSemanticError).
			WithOperation("analyze").
			WithDetail("diagnostics", semantic.Strings(diags))
	}
	if prog.Agent != nil {
		res.Program = prog.Agent.Name
	}
	initial := interp.BuildWorld(prog)
	res.Warnings = initial.Lint()
	initial.Place()
	snap := initial.Snapshot()
	res.Initial = &snap
	if len(diags) > 0 {
		res.Status = StatusSemanticError
		e.logger.WithRunID(res.RunID).WarnWithErr("Program has semantic errors", diags[0], log.Fields{
			"diagnostics": len(diags),
		})
	}
	return prog, nil
}

// Run compiles and executes source. The Result is never nil, so failed runs
// can be reported and recorded. The error is a *cwerr.Error coded by the
// failing stage; semantic diagnostics give CodeSemanticError unless
// RunWithDiagnostics is set.
func (e *Engine) Run(ctx context.Context, name, source string) (*Result, error) {
	res := newResult(name, source)
	logger := e.logger.WithRunID(res.RunID)
	defer res.finish()

	prog, err := e.compile(res, source)
	if err != nil {
		logger.Debug("Run failed before execution", log.Fields{"status": string(res.Status)})
		return res, err
	}
	if len(res.Diagnostics) > 0 && !e.options.RunWithDiagnostics {
		return res, cwerr.Newf("%d semantic error(s)", len(res.Diagnostics)).
			WithCode(cwerr.CodeSemanticError).
			WithOperation("analyze").
			WithDetail("diagnostics", semantic.Strings(res.Diagnostics))
	}

	in := interp.New(interp.Options{
		Logger:   e.options.Logger.WithRunID(res.RunID),
		MaxSteps: e.options.MaxSteps,
		Scoping:  e.options.Scoping,
		OnEvent:  e.options.OnEvent,
	})
	out, runErr := in.Execute(ctx, prog)

	res.Events = out.Events
	res.Outputs = out.State.Outputs
	res.Steps = out.Steps
	snap := out.State.Snapshot()
	res.Final = &snap

	if runErr != nil {
		res.Status = StatusRuntimeError
		res.Error = runErr.Error()
		code := cwerr.CodeRuntimeError
		var rerr *interp.RuntimeError
		if errors.As(runErr, &rerr) {
			code = rerr.Code
		}
		logger.ErrorWithErr("Run aborted", runErr, log.Fields{"code": string(code)})
		return res, cwerr.Wrap(runErr, "execution failed").
			WithCode(code).
			WithOperation("execute")
	}

	if res.Status == "" {
		res.Status = StatusOK
		if out.Stopped {
			res.Status = StatusStopped
		}
	}
	logger.Info("Run completed", log.Fields{
		"program": res.Program,
		"status":  string(res.Status),
		"outputs": len(res.Outputs),
		"cleaned": out.State.Cleaned,
		"steps":   out.Steps,
	})
	return res, nil
}

func newResult(name, source string) *Result {
	sum := sha256.Sum256([]byte(source))
	return &Result{
		RunID:     uuid.NewString(),
		Name:      name,
		SourceSHA: hex.EncodeToString(sum[:]),
		StartedAt: time.Now().UTC(),
	}
}

func (r *Result) finish() {
	r.FinishedAt = time.Now().UTC()
	r.DurationMS = r.FinishedAt.Sub(r.StartedAt).Milliseconds()
}
