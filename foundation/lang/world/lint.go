// File: lint.go
// Title: World Lint
// Description: Warnings about suspicious world geometry.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package world

import "fmt"

// Lint reports suspicious geometry. Warnings never prevent a run.
func (s *State) Lint() []string {
	var warnings []string
	warn := func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	if !s.HasSize {
		warn("world has no SIZE; moves are never blocked by bounds")
	} else if s.Width < 1 || s.Height < 1 {
		warn("world size %dx%d leaves no cell to stand on", s.Width, s.Height)
	}

	if s.Entry == nil {
		warn("world has no ENTRY_DEF; agent starts at (1,1) facing N")
	} else {
		if !s.InBounds(*s.Entry) {
			warn("entry %s is outside the grid", *s.Entry)
		}
		if s.Obstacles.Has(*s.Entry) {
			warn("entry %s is on an obstacle", *s.Entry)
		}
	}

	if s.Exit != nil {
		if !s.InBounds(*s.Exit) {
			warn("exit %s is outside the grid", *s.Exit)
		}
		if s.Obstacles.Has(*s.Exit) {
			warn("exit %s is on an obstacle", *s.Exit)
		}
	}

	for _, c := range s.Dirt.Sorted() {
		if !s.InBounds(c) {
			warn("dirt %s is outside the grid", c)
		}
		if s.Obstacles.Has(c) {
			warn("dirt %s is on an obstacle and can never be cleaned", c)
		}
	}
	for _, c := range s.Obstacles.Sorted() {
		if !s.InBounds(c) {
			warn("obstacle %s is outside the grid", c)
		}
	}
	return warnings
}
