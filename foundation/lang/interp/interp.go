// File: interp.go
// Title: Interpreter
// Description: Tree-walking interpreter with step limit and cancellation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

// Package interp executes analyzed programs against a world.State.
//
// Execution is a tree walk over the AST. RETURN travels as a completion value
// through statement lists, so it ends the current function (or the agent
// body) without unwinding the host stack. Fatal errors are sticky: once set,
// every remaining statement is skipped and Execute reports the error together
// with the partial result.
package interp

import (
	"context"
	"fmt"

	cwerr "github.com/msto63/cleanworld/foundation/core/error"
	"github.com/msto63/cleanworld/foundation/core/log"
	"github.com/msto63/cleanworld/foundation/lang/ast"
	"github.com/msto63/cleanworld/foundation/lang/world"
)

// Options configures an Interpreter
type Options struct {
	Logger *log.Logger

	// MaxSteps bounds the number of executed statements and loop iterations.
	// Zero means unlimited.
	MaxSteps int

	Scoping Scoping

	// OnEvent, when set, is called for every action as it happens
	OnEvent func(Event)
}

// Result is the outcome of one execution
type Result struct {
	State  *world.State
	Events []Event
	Steps  int
	// Stopped is set when RETURN ended the agent body early
	Stopped bool
}

// Interpreter runs programs. It is not safe for concurrent use; Execute may
// be called again after a previous run returned.
type Interpreter struct {
	logger  *log.Logger
	options Options

	ctx       context.Context
	state     *world.State
	functions map[string]*ast.FunctionDef
	frames    []*frame
	events    []Event
	steps     int
	err       *RuntimeError
}

// New creates an interpreter
func New(opts Options) *Interpreter {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}
	return &Interpreter{
		logger:  logger.WithField("component", "interp"),
		options: opts,
	}
}

// completion is the result of executing a statement
type completion struct {
	returned bool
	value    int64
}

// Execute initializes the world from prog's facts, places the agent and runs
// the agent body. The returned Result is never nil; on a RuntimeError it holds
// the state reached before the failure.
func (in *Interpreter) Execute(ctx context.Context, prog *ast.Program) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	in.reset(ctx)

	applyFacts(in.state, prog)
	in.state.Place()

	for _, fn := range prog.Functions {
		if _, exists := in.functions[fn.Name]; !exists {
			in.functions[fn.Name] = fn
		}
	}

	in.logger.Debug("Executing program", log.Fields{
		"functions": len(in.functions),
		"scoping":   in.options.Scoping.String(),
		"max_steps": in.options.MaxSteps,
	})

	var c completion
	if prog.Agent != nil {
		c = in.execBlock(prog.Agent.Body)
	}

	result := &Result{
		State:   in.state,
		Events:  in.events,
		Steps:   in.steps,
		Stopped: c.returned,
	}
	if in.err != nil {
		in.logger.Debug("Execution aborted", log.Fields{"code": string(in.err.Code), "line": in.err.Line})
		return result, in.err
	}
	in.logger.Debug("Execution finished", log.Fields{
		"steps":   in.steps,
		"events":  len(in.events),
		"cleaned": in.state.Cleaned,
	})
	return result, nil
}

// BuildWorld applies prog's world facts to a fresh State without placing the
// agent. It is what Execute starts from, exposed for linting.
func BuildWorld(prog *ast.Program) *world.State {
	s := world.New()
	applyFacts(s, prog)
	return s
}

func applyFacts(s *world.State, prog *ast.Program) {
	if prog == nil || prog.World == nil {
		return
	}
	b := factBuilder{s}
	for _, f := range prog.World.Facts {
		ast.AcceptFact[struct{}](f, b)
	}
}

func (in *Interpreter) reset(ctx context.Context) {
	in.ctx = ctx
	in.state = world.New()
	in.functions = make(map[string]*ast.FunctionDef)
	in.frames = []*frame{newFrame("")}
	in.events = nil
	in.steps = 0
	in.err = nil
}

func (in *Interpreter) fail(line int, code cwerr.Code, cause error, format string, args ...interface{}) {
	if in.err != nil {
		return
	}
	in.err = &RuntimeError{
		Line:     line,
		Code:     code,
		Function: in.currentFrame().function,
		Message:  fmt.Sprintf(format, args...),
		cause:    cause,
	}
}

// tick accounts for one unit of work and reports whether execution may go on
func (in *Interpreter) tick(line int) bool {
	if in.err != nil {
		return false
	}
	if err := in.ctx.Err(); err != nil {
		in.fail(line, cwerr.CodeCancelled, err, "execution cancelled: %v", err)
		return false
	}
	in.steps++
	if in.options.MaxSteps > 0 && in.steps > in.options.MaxSteps {
		in.fail(line, cwerr.CodeStepLimit, nil, "step limit of %d exceeded", in.options.MaxSteps)
		return false
	}
	return true
}

func (in *Interpreter) execBlock(stmts []ast.Stmt) completion {
	for _, s := range stmts {
		if !in.tick(s.Position()) {
			return completion{}
		}
		if c := ast.AcceptStmt[completion](s, in); c.returned {
			return c
		}
	}
	return completion{}
}

// call invokes a function with already-evaluated arguments. Surplus arguments
// are dropped and missing parameters start at 0.
func (in *Interpreter) call(line int, name string, args []int64) int64 {
	fn, ok := in.functions[name]
	if !ok {
		in.fail(line, cwerr.CodeUndefinedFunction, nil, "Undefined function: %s", name)
		return 0
	}

	f := newFrame(name)
	for i, p := range fn.Params {
		var v int64
		if i < len(args) {
			v = args[i]
		}
		f.locals[p] = v
	}

	in.frames = append(in.frames, f)
	c := in.execBlock(fn.Body)
	in.frames = in.frames[:len(in.frames)-1]

	if c.returned {
		return c.value
	}
	return 0
}
