// File: cell.go
// Title: Grid Cells
// Description: Grid coordinates and cell sets.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package world

import (
	"fmt"
	"sort"
)

// Cell is a 1-based grid coordinate
type Cell struct {
	X int64 `json:"x" yaml:"x"`
	Y int64 `json:"y" yaml:"y"`
}

// String formats the cell as "(x,y)"
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbouring cell in direction d
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// CellSet is an unordered set of cells
type CellSet map[Cell]struct{}

// Add inserts c
func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

// Has reports whether c is in the set
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Remove deletes c and reports whether it was present
func (s CellSet) Remove(c Cell) bool {
	if _, ok := s[c]; !ok {
		return false
	}
	delete(s, c)
	return true
}

// Sorted returns the cells ordered by row, then column
func (s CellSet) Sorted() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func (s CellSet) clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

func setOf(cells []Cell) CellSet {
	out := make(CellSet, len(cells))
	for _, c := range cells {
		out.Add(c)
	}
	return out
}
