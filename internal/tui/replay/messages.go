// ============================================================================
// cleanworld - Cleaning Agent Language Toolchain
// ============================================================================
//
// Package:     replay
// Description: Bubble Tea messages for the replay viewer
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package replay

// tickMsg advances autoplay by one event. Ticks from an earlier play
// session carry a stale generation and are dropped.
type tickMsg struct {
	gen int
}
