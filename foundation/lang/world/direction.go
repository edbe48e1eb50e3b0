// File: direction.go
// Title: Directions
// Description: Compass directions and turning.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package world

import "fmt"

// Direction is a compass facing. The clockwise cycle is N, E, S, W.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [...]string{"N", "E", "S", "W"}

func (d Direction) String() string {
	if d >= North && d <= West {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection accepts N, E, S or W
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if s == name {
			return Direction(i), nil
		}
	}
	return North, fmt.Errorf("invalid direction %q", s)
}

// Left rotates 90 degrees counter-clockwise
func (d Direction) Left() Direction {
	return (d + 3) % 4
}

// Right rotates 90 degrees clockwise
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

// Delta returns the step for one move. y grows southwards.
func (d Direction) Delta() (dx, dy int64) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// MarshalText encodes the direction as its letter
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction letter
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Rotation is the argument of a turn
type Rotation int

const (
	RotateLeft Rotation = iota
	RotateRight
)

func (r Rotation) String() string {
	if r == RotateRight {
		return "RIGHT"
	}
	return "LEFT"
}
