// ============================================================================
// cleanworld - Cleaning Agent Language Toolchain
// ============================================================================
//
// Package:     replay
// Description: Rebuilds world frames from events and renders the grid
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package replay

import (
	"github.com/msto63/cleanworld/foundation/lang/interp"
	"github.com/msto63/cleanworld/foundation/lang/world"
)

// StateAt rebuilds the world after the first n events, starting from the
// placed initial snapshot
func StateAt(initial world.Snapshot, events []interp.Event, n int) *world.State {
	s := world.FromSnapshot(initial)
	if n > len(events) {
		n = len(events)
	}
	for _, ev := range events[:n] {
		apply(s, ev)
	}
	return s
}

func apply(s *world.State, ev interp.Event) {
	switch ev.Outcome {
	case world.Moved:
		s.Agent = ev.Agent
		s.Visited.Add(ev.Agent)
		s.History = append(s.History, ev.Agent)
	case world.Backtracked:
		if len(s.History) > 0 {
			s.History = s.History[:len(s.History)-1]
		}
		s.Agent = ev.Agent
	case world.Turned:
		if d, err := world.ParseDirection(ev.Facing); err == nil {
			s.Facing = d
		}
	case world.Cleaned:
		s.Dirt.Remove(ev.Agent)
		s.Cleaned = ev.Cleaned
	}
	s.Outputs = append(s.Outputs, ev.Message)
}

// bounds returns the rectangle to draw. Without a declared size it covers
// every known cell and every position the agent reached.
func bounds(s *world.State, events []interp.Event) (minX, minY, maxX, maxY int64) {
	if s.HasSize && s.Width > 0 && s.Height > 0 {
		return 1, 1, s.Width, s.Height
	}

	minX, minY, maxX, maxY = s.Agent.X, s.Agent.Y, s.Agent.X, s.Agent.Y
	grow := func(c world.Cell) {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	for _, set := range []world.CellSet{s.Dirt, s.Obstacles, s.Visited} {
		for _, c := range set.Sorted() {
			grow(c)
		}
	}
	if s.Entry != nil {
		grow(*s.Entry)
	}
	if s.Exit != nil {
		grow(*s.Exit)
	}
	for _, ev := range events {
		grow(ev.Agent)
	}
	return minX, minY, maxX, maxY
}

// Glyphs used by the grid
const (
	GlyphEmpty    = '.'
	GlyphVisited  = ':'
	GlyphObstacle = '#'
	GlyphDirt     = '*'
	GlyphEntry    = 'E'
	GlyphExit     = 'X'
)

var agentGlyphs = map[world.Direction]rune{
	world.North: '^',
	world.East:  '>',
	world.South: 'v',
	world.West:  '<',
}

// Grid renders the state as rows of glyphs, top row first. The agent hides
// whatever is under it.
func Grid(s *world.State, events []interp.Event) []string {
	minX, minY, maxX, maxY := bounds(s, events)

	rows := make([]string, 0, maxY-minY+1)
	for y := minY; y <= maxY; y++ {
		row := make([]rune, 0, maxX-minX+1)
		for x := minX; x <= maxX; x++ {
			row = append(row, glyph(s, world.Cell{X: x, Y: y}))
		}
		rows = append(rows, string(row))
	}
	return rows
}

func glyph(s *world.State, c world.Cell) rune {
	switch {
	case c == s.Agent:
		return agentGlyphs[s.Facing]
	case s.Obstacles.Has(c):
		return GlyphObstacle
	case s.Dirt.Has(c):
		return GlyphDirt
	case s.Exit != nil && *s.Exit == c:
		return GlyphExit
	case s.Entry != nil && *s.Entry == c:
		return GlyphEntry
	case s.Visited.Has(c):
		return GlyphVisited
	}
	return GlyphEmpty
}
