// File: frame.go
// Title: Call Frames
// Description: Call frames and lexical or dynamic name resolution.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package interp

import (
	"fmt"
	"strings"
)

// Scoping selects how variable names resolve against the call stack
type Scoping int

const (
	// ScopingLexical resolves names in the current frame only, matching the
	// analyzer: a function sees its parameters and locals, the agent body
	// sees its own variables.
	ScopingLexical Scoping = iota

	// ScopingDynamic searches frames from innermost to outermost. Assignment
	// writes to the nearest frame that has the name, else the current frame.
	ScopingDynamic
)

func (s Scoping) String() string {
	if s == ScopingDynamic {
		return "dynamic"
	}
	return "lexical"
}

// ParseScoping accepts "lexical" or "dynamic"; empty means lexical
func ParseScoping(s string) (Scoping, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lexical":
		return ScopingLexical, nil
	case "dynamic":
		return ScopingDynamic, nil
	}
	return ScopingLexical, fmt.Errorf("invalid scoping mode %q (want lexical or dynamic)", s)
}

// frame holds the bindings of one invocation. Frame 0 belongs to the agent.
type frame struct {
	function string
	locals   map[string]int64
}

func newFrame(function string) *frame {
	return &frame{function: function, locals: make(map[string]int64)}
}

func (in *Interpreter) currentFrame() *frame {
	return in.frames[len(in.frames)-1]
}

// lookup reads a variable. Unresolved names read as 0.
func (in *Interpreter) lookup(name string) int64 {
	if in.options.Scoping == ScopingDynamic {
		for i := len(in.frames) - 1; i >= 0; i-- {
			if v, ok := in.frames[i].locals[name]; ok {
				return v
			}
		}
		return 0
	}
	return in.currentFrame().locals[name]
}

func (in *Interpreter) bind(name string, value int64) {
	if in.options.Scoping == ScopingDynamic {
		for i := len(in.frames) - 1; i >= 0; i-- {
			if _, ok := in.frames[i].locals[name]; ok {
				in.frames[i].locals[name] = value
				return
			}
		}
	}
	in.currentFrame().locals[name] = value
}
