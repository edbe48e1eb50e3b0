// File: state.go
// Title: World State
// Description: Grid contents, agent position and agent actions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

// Package world models the grid, its contents and the cleaning agent.
//
// A State is built from world facts, placed with Place, and then mutated by
// the agent actions Move, Turn, Clean, Backtrack and Report. Every action
// appends one line to Outputs; that list is the human-readable execution log.
package world

import (
	"fmt"
)

// ActionKind names an agent action
type ActionKind string

const (
	ActionMove      ActionKind = "MOVE"
	ActionTurn      ActionKind = "TURN"
	ActionClean     ActionKind = "CLEAN"
	ActionBacktrack ActionKind = "BACKTRACK"
	ActionReport    ActionKind = "REPORT"
)

// Outcome is the result of one action
type Outcome string

const (
	Moved           Outcome = "moved"
	BlockedByBounds Outcome = "blocked-bounds"
	BlockedByWall   Outcome = "blocked-obstacle"
	Turned          Outcome = "turned"
	Cleaned         Outcome = "cleaned"
	NoDirt          Outcome = "no-dirt"
	Backtracked     Outcome = "backtracked"
	NoHistory       Outcome = "no-history"
	Reported        Outcome = "reported"
)

// Action describes what an agent action did
type Action struct {
	Kind    ActionKind
	Outcome Outcome
	Message string
	// Value is set for REPORT
	Value int64
}

// State is the mutable world and agent state of one run
type State struct {
	Width, Height int64
	HasSize       bool

	Dirt      CellSet
	Obstacles CellSet

	Entry    *Cell
	EntryDir Direction
	Exit     *Cell
	ExitDir  Direction

	Agent  Cell
	Facing Direction

	Visited CellSet
	// History is the stack of positions for BACKTRACK; the top is the current cell
	History []Cell
	Cleaned int

	Outputs []string

	placed bool
}

// New returns an empty world
func New() *State {
	return &State{
		Dirt:      make(CellSet),
		Obstacles: make(CellSet),
		Visited:   make(CellSet),
	}
}

// SetSize bounds the grid to [1,w] x [1,h]
func (s *State) SetSize(w, h int64) {
	s.Width, s.Height, s.HasSize = w, h, true
}

// AddDirt marks c dirty
func (s *State) AddDirt(c Cell) {
	s.Dirt.Add(c)
}

// AddObstacle blocks c
func (s *State) AddObstacle(c Cell) {
	s.Obstacles.Add(c)
}

// SetEntry sets the entry cell. A later call replaces an earlier one.
func (s *State) SetEntry(c Cell, d Direction) {
	s.Entry = &c
	s.EntryDir = d
}

// SetExit sets the exit cell
func (s *State) SetExit(c Cell, d Direction) {
	s.Exit = &c
	s.ExitDir = d
}

// Place puts the agent on the entry cell, or on (1,1) facing north when no
// entry was declared, and seeds visited and history with that cell.
// Calling Place again has no effect.
func (s *State) Place() {
	if s.placed {
		return
	}
	s.placed = true

	if s.Entry != nil {
		s.Agent, s.Facing = *s.Entry, s.EntryDir
	} else {
		s.Agent, s.Facing = Cell{X: 1, Y: 1}, North
	}
	s.Visited.Add(s.Agent)
	s.History = append(s.History, s.Agent)
}

// InBounds reports whether c lies on the grid. Without SIZE every cell does.
func (s *State) InBounds(c Cell) bool {
	if !s.HasSize {
		return true
	}
	return c.X >= 1 && c.X <= s.Width && c.Y >= 1 && c.Y <= s.Height
}

// Ahead returns the cell in front of the agent
func (s *State) Ahead() Cell {
	return s.Agent.Step(s.Facing)
}

func (s *State) log(a Action) Action {
	s.Outputs = append(s.Outputs, a.Message)
	return a
}

// Move steps forward unless the target is off the grid or an obstacle
func (s *State) Move() Action {
	target := s.Ahead()

	if !s.InBounds(target) {
		return s.log(Action{
			Kind:    ActionMove,
			Outcome: BlockedByBounds,
			Message: fmt.Sprintf("[MOVE] Blocked - out of bounds at %s", target),
		})
	}
	if s.Obstacles.Has(target) {
		return s.log(Action{
			Kind:    ActionMove,
			Outcome: BlockedByWall,
			Message: fmt.Sprintf("[MOVE] Blocked by obstacle at %s", target),
		})
	}

	s.Agent = target
	s.Visited.Add(target)
	s.History = append(s.History, target)
	return s.log(Action{
		Kind:    ActionMove,
		Outcome: Moved,
		Message: fmt.Sprintf("[MOVE] Agent moved to %s facing %s", target, s.Facing),
	})
}

// Turn rotates the agent by 90 degrees
func (s *State) Turn(r Rotation) Action {
	if r == RotateRight {
		s.Facing = s.Facing.Right()
	} else {
		s.Facing = s.Facing.Left()
	}
	return s.log(Action{
		Kind:    ActionTurn,
		Outcome: Turned,
		Message: fmt.Sprintf("[TURN %s] Now facing %s", r, s.Facing),
	})
}

// Clean removes dirt from the agent's cell if there is any
func (s *State) Clean() Action {
	if s.Dirt.Remove(s.Agent) {
		s.Cleaned++
		return s.log(Action{
			Kind:    ActionClean,
			Outcome: Cleaned,
			Message: fmt.Sprintf("[CLEAN] Dirt cleaned at %s. Total: %d", s.Agent, s.Cleaned),
		})
	}
	return s.log(Action{
		Kind:    ActionClean,
		Outcome: NoDirt,
		Message: fmt.Sprintf("[CLEAN] No dirt at %s", s.Agent),
	})
}

// Backtrack pops the current cell off history and moves to the new top.
// With fewer than two entries in history nothing happens.
func (s *State) Backtrack() Action {
	if len(s.History) < 2 {
		return s.log(Action{
			Kind:    ActionBacktrack,
			Outcome: NoHistory,
			Message: "[BACKTRACK] No previous position to backtrack to",
		})
	}
	s.History = s.History[:len(s.History)-1]
	s.Agent = s.History[len(s.History)-1]
	return s.log(Action{
		Kind:    ActionBacktrack,
		Outcome: Backtracked,
		Message: fmt.Sprintf("[BACKTRACK] Agent backtracked to %s", s.Agent),
	})
}

// Report appends a value to the output log
func (s *State) Report(v int64) Action {
	return s.log(Action{
		Kind:    ActionReport,
		Outcome: Reported,
		Message: fmt.Sprintf("[REPORT] %d", v),
		Value:   v,
	})
}

// SenseDirt reports dirt under the agent
func (s *State) SenseDirt() bool {
	return s.Dirt.Has(s.Agent)
}

// SenseObstacle reports an obstacle on the cell ahead
func (s *State) SenseObstacle() bool {
	return s.Obstacles.Has(s.Ahead())
}

// AtEntry reports whether the agent stands on the entry cell
func (s *State) AtEntry() bool {
	return s.Entry != nil && *s.Entry == s.Agent
}

// AtExit reports whether the agent stands on the exit cell
func (s *State) AtExit() bool {
	return s.Exit != nil && *s.Exit == s.Agent
}

// Unvisited reports whether the agent's cell is missing from the visited set
func (s *State) Unvisited() bool {
	return !s.Visited.Has(s.Agent)
}

// Clone returns a deep copy
func (s *State) Clone() *State {
	c := *s
	c.Dirt = s.Dirt.clone()
	c.Obstacles = s.Obstacles.clone()
	c.Visited = s.Visited.clone()
	c.History = append([]Cell(nil), s.History...)
	c.Outputs = append([]string(nil), s.Outputs...)
	if s.Entry != nil {
		e := *s.Entry
		c.Entry = &e
	}
	if s.Exit != nil {
		e := *s.Exit
		c.Exit = &e
	}
	return &c
}
