// File: state_test.go
// Title: World State Tests
// Description: Unit tests for movement, cleaning, senses and snapshots.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test suite

package world

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func placed(setup func(s *State)) *State {
	s := New()
	setup(s)
	s.Place()
	return s
}

func TestPlaceDefaults(t *testing.T) {
	s := placed(func(*State) {})
	if s.Agent != (Cell{1, 1}) || s.Facing != North {
		t.Errorf("default placement = %s %s, want (1,1) N", s.Agent, s.Facing)
	}
	if diff := cmp.Diff([]Cell{{1, 1}}, s.History); diff != "" {
		t.Errorf("history (-want +got):\n%s", diff)
	}
	if !s.Visited.Has(Cell{1, 1}) {
		t.Error("start cell should be visited")
	}
}

func TestLastEntryWins(t *testing.T) {
	s := placed(func(s *State) {
		s.SetEntry(Cell{1, 1}, North)
		s.SetEntry(Cell{2, 3}, West)
	})
	if s.Agent != (Cell{2, 3}) || s.Facing != West {
		t.Errorf("agent = %s %s, want (2,3) W", s.Agent, s.Facing)
	}
	if len(s.History) != 1 || len(s.Visited) != 1 {
		t.Errorf("only the final entry should be seeded, history=%v", s.History)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(s *State)
		wantCell   Cell
		outcome    Outcome
		message    string
		historyLen int
	}{
		{
			name: "blocked by bounds",
			setup: func(s *State) {
				s.SetSize(2, 2)
				s.SetEntry(Cell{2, 2}, East)
			},
			wantCell:   Cell{2, 2},
			outcome:    BlockedByBounds,
			message:    "[MOVE] Blocked - out of bounds at (3,2)",
			historyLen: 1,
		},
		{
			name: "blocked by obstacle",
			setup: func(s *State) {
				s.SetSize(3, 3)
				s.SetEntry(Cell{1, 2}, South)
				s.AddObstacle(Cell{1, 3})
			},
			wantCell:   Cell{1, 2},
			outcome:    BlockedByWall,
			message:    "[MOVE] Blocked by obstacle at (1,3)",
			historyLen: 1,
		},
		{
			name: "moves",
			setup: func(s *State) {
				s.SetSize(3, 3)
				s.SetEntry(Cell{1, 1}, East)
			},
			wantCell:   Cell{2, 1},
			outcome:    Moved,
			message:    "[MOVE] Agent moved to (2,1) facing E",
			historyLen: 2,
		},
		{
			name: "unbounded without size",
			setup: func(s *State) {
				s.SetEntry(Cell{1, 1}, North)
			},
			wantCell:   Cell{1, 0},
			outcome:    Moved,
			message:    "[MOVE] Agent moved to (1,0) facing N",
			historyLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := placed(tt.setup)
			a := s.Move()

			if a.Outcome != tt.outcome {
				t.Errorf("outcome = %s, want %s", a.Outcome, tt.outcome)
			}
			if s.Agent != tt.wantCell {
				t.Errorf("agent at %s, want %s", s.Agent, tt.wantCell)
			}
			if len(s.History) != tt.historyLen {
				t.Errorf("history length = %d, want %d", len(s.History), tt.historyLen)
			}
			if diff := cmp.Diff([]string{tt.message}, s.Outputs); diff != "" {
				t.Errorf("outputs (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTurnCycle(t *testing.T) {
	s := placed(func(*State) {})
	var seen []string
	for i := 0; i < 4; i++ {
		s.Turn(RotateRight)
		seen = append(seen, s.Facing.String())
	}
	if diff := cmp.Diff([]string{"E", "S", "W", "N"}, seen); diff != "" {
		t.Errorf("right turns (-want +got):\n%s", diff)
	}

	a := s.Turn(RotateLeft)
	if s.Facing != West || a.Message != "[TURN LEFT] Now facing W" {
		t.Errorf("left turn from N = %s, message %q", s.Facing, a.Message)
	}
}

func TestCleanRoundTrip(t *testing.T) {
	s := placed(func(s *State) {
		s.AddDirt(Cell{1, 1})
		s.SetEntry(Cell{1, 1}, North)
	})

	first := s.Clean()
	second := s.Clean()

	if first.Outcome != Cleaned || second.Outcome != NoDirt {
		t.Errorf("outcomes = %s, %s", first.Outcome, second.Outcome)
	}
	if s.Cleaned != 1 {
		t.Errorf("Cleaned = %d, want 1", s.Cleaned)
	}
	if s.Dirt.Has(Cell{1, 1}) {
		t.Error("dirt should be gone")
	}
	want := []string{"[CLEAN] Dirt cleaned at (1,1). Total: 1", "[CLEAN] No dirt at (1,1)"}
	if diff := cmp.Diff(want, s.Outputs); diff != "" {
		t.Errorf("outputs (-want +got):\n%s", diff)
	}
}

func TestBacktrack(t *testing.T) {
	s := placed(func(s *State) { s.SetEntry(Cell{1, 1}, East) })

	if a := s.Backtrack(); a.Outcome != NoHistory || s.Agent != (Cell{1, 1}) {
		t.Fatalf("backtrack at start = %s at %s", a.Outcome, s.Agent)
	}

	s.Move()
	s.Move()
	a := s.Backtrack()
	if a.Outcome != Backtracked || s.Agent != (Cell{2, 1}) {
		t.Errorf("backtrack = %s at %s, want (2,1)", a.Outcome, s.Agent)
	}
	if s.Facing != East {
		t.Error("backtrack must not change facing")
	}
	if a.Message != "[BACKTRACK] Agent backtracked to (2,1)" {
		t.Errorf("message = %q", a.Message)
	}
}

func TestSenses(t *testing.T) {
	s := placed(func(s *State) {
		s.SetEntry(Cell{2, 2}, North)
		s.SetExit(Cell{2, 1}, North)
		s.AddObstacle(Cell{1, 1})
		s.AddDirt(Cell{2, 2})
	})

	if !s.SenseDirt() || !s.AtEntry() || s.AtExit() || s.SenseObstacle() {
		t.Errorf("at entry: dirt=%v entry=%v exit=%v obstacle=%v", s.SenseDirt(), s.AtEntry(), s.AtExit(), s.SenseObstacle())
	}
	s.Move()
	if !s.AtExit() {
		t.Error("should be at exit after moving north")
	}
	s.Turn(RotateLeft)
	if !s.SenseObstacle() {
		t.Error("obstacle should be ahead when facing west at (2,1)")
	}
	if s.Unvisited() {
		t.Error("current cell is always visited after a move")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := placed(func(s *State) {
		s.SetSize(4, 3)
		s.SetEntry(Cell{1, 1}, East)
		s.SetExit(Cell{4, 3}, South)
		s.AddDirt(Cell{3, 1})
		s.AddDirt(Cell{2, 1})
		s.AddObstacle(Cell{2, 2})
	})
	s.Move()
	s.Clean()

	snap := s.Snapshot()
	if diff := cmp.Diff([]Cell{{3, 1}}, snap.Dirt); diff != "" {
		t.Errorf("dirt (-want +got):\n%s", diff)
	}
	back := FromSnapshot(snap)
	if diff := cmp.Diff(snap, back.Snapshot()); diff != "" {
		t.Errorf("snapshot round trip (-want +got):\n%s", diff)
	}
}

func TestSnapshotKeepsEmptySize(t *testing.T) {
	s := placed(func(s *State) {
		s.SetSize(0, 0)
		s.SetEntry(Cell{1, 1}, North)
	})

	snap := s.Snapshot()
	if !snap.HasSize {
		t.Fatal("snapshot of SIZE(0,0) lost its size")
	}
	back := FromSnapshot(snap)
	if !back.HasSize || back.Width != 0 || back.Height != 0 {
		t.Errorf("restored size = %v %dx%d, want declared 0x0", back.HasSize, back.Width, back.Height)
	}
	if back.InBounds(Cell{1, 1}) {
		t.Error("(1,1) is inside a 0x0 world after restore")
	}
	if diff := cmp.Diff(snap, back.Snapshot()); diff != "" {
		t.Errorf("snapshot round trip (-want +got):\n%s", diff)
	}
}

func TestLint(t *testing.T) {
	s := New()
	s.SetSize(3, 3)
	s.SetEntry(Cell{4, 1}, North)
	s.AddObstacle(Cell{2, 2})
	s.AddDirt(Cell{2, 2})

	want := []string{
		"entry (4,1) is outside the grid",
		"dirt (2,2) is on an obstacle and can never be cleaned",
	}
	if diff := cmp.Diff(want, s.Lint()); diff != "" {
		t.Errorf("Lint() (-want +got):\n%s", diff)
	}
}
