// File: snapshot.go
// Title: World Snapshot
// Description: Serializable snapshots of the world state.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package world

// Snapshot is a serializable view of a State. Cell sets are sorted so that
// equal states produce equal snapshots.
type Snapshot struct {
	HasSize   bool     `json:"has_size,omitempty" yaml:"has_size,omitempty"`
	Width     int64    `json:"width,omitempty" yaml:"width,omitempty"`
	Height    int64    `json:"height,omitempty" yaml:"height,omitempty"`
	Entry     *Cell    `json:"entry,omitempty" yaml:"entry,omitempty"`
	EntryDir  string   `json:"entry_dir,omitempty" yaml:"entry_dir,omitempty"`
	Exit      *Cell    `json:"exit,omitempty" yaml:"exit,omitempty"`
	ExitDir   string   `json:"exit_dir,omitempty" yaml:"exit_dir,omitempty"`
	Agent     Cell     `json:"agent" yaml:"agent"`
	Facing    string   `json:"facing" yaml:"facing"`
	Dirt      []Cell   `json:"dirt" yaml:"dirt"`
	Obstacles []Cell   `json:"obstacles" yaml:"obstacles"`
	Visited   []Cell   `json:"visited" yaml:"visited"`
	History   []Cell   `json:"history" yaml:"history"`
	Cleaned   int      `json:"cleaned" yaml:"cleaned"`
	Outputs   []string `json:"outputs" yaml:"outputs"`
}

// Snapshot captures the current state
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Agent:     s.Agent,
		Facing:    s.Facing.String(),
		Dirt:      s.Dirt.Sorted(),
		Obstacles: s.Obstacles.Sorted(),
		Visited:   s.Visited.Sorted(),
		History:   append([]Cell{}, s.History...),
		Cleaned:   s.Cleaned,
		Outputs:   append([]string{}, s.Outputs...),
	}
	if s.HasSize {
		snap.HasSize, snap.Width, snap.Height = true, s.Width, s.Height
	}
	if s.Entry != nil {
		e := *s.Entry
		snap.Entry = &e
		snap.EntryDir = s.EntryDir.String()
	}
	if s.Exit != nil {
		e := *s.Exit
		snap.Exit = &e
		snap.ExitDir = s.ExitDir.String()
	}
	return snap
}

// FromSnapshot rebuilds a placed State. Snapshots recorded without has_size
// are sized when they carry a width or height.
func FromSnapshot(snap Snapshot) *State {
	s := New()
	if snap.HasSize || snap.Width > 0 || snap.Height > 0 {
		s.SetSize(snap.Width, snap.Height)
	}
	s.Dirt = setOf(snap.Dirt)
	s.Obstacles = setOf(snap.Obstacles)
	s.Visited = setOf(snap.Visited)
	if snap.Entry != nil {
		d, _ := ParseDirection(snap.EntryDir)
		s.SetEntry(*snap.Entry, d)
	}
	if snap.Exit != nil {
		d, _ := ParseDirection(snap.ExitDir)
		s.SetExit(*snap.Exit, d)
	}
	s.Agent = snap.Agent
	if d, err := ParseDirection(snap.Facing); err == nil {
		s.Facing = d
	}
	s.History = append([]Cell(nil), snap.History...)
	s.Cleaned = snap.Cleaned
	s.Outputs = append([]string(nil), snap.Outputs...)
	s.placed = true
	return s
}
