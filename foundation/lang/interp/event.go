// File: event.go
// Title: Agent Events
// Description: Event records emitted for every agent action.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package interp

import (
	"github.com/msto63/cleanworld/foundation/lang/world"
)

// Event records one agent action in execution order
type Event struct {
	Seq     int              `json:"seq" yaml:"seq"`
	Line    int              `json:"line" yaml:"line"`
	Action  world.ActionKind `json:"action" yaml:"action"`
	Outcome world.Outcome    `json:"outcome" yaml:"outcome"`
	// Function is the enclosing function, empty in the agent body
	Function string     `json:"function,omitempty" yaml:"function,omitempty"`
	Agent    world.Cell `json:"agent" yaml:"agent"`
	Facing   string     `json:"facing" yaml:"facing"`
	Cleaned  int        `json:"cleaned" yaml:"cleaned"`
	Value    *int64     `json:"value,omitempty" yaml:"value,omitempty"`
	Message  string     `json:"message" yaml:"message"`
}

func (in *Interpreter) record(line int, a world.Action) {
	ev := Event{
		Seq:     len(in.events) + 1,
		Line:    line,
		Action:  a.Kind,
		Outcome: a.Outcome,
		Agent:   in.state.Agent,
		Facing:  in.state.Facing.String(),
		Cleaned: in.state.Cleaned,
		Message: a.Message,
	}
	if len(in.frames) > 1 {
		ev.Function = in.currentFrame().function
	}
	if a.Kind == world.ActionReport {
		v := a.Value
		ev.Value = &v
	}
	in.events = append(in.events, ev)

	in.logger.Trace(a.Message, map[string]interface{}{"seq": ev.Seq, "line": line})
	if in.options.OnEvent != nil {
		in.options.OnEvent(ev)
	}
}
