// ============================================================================
// cleanworld - Cleaning Agent Language Toolchain
// ============================================================================
//
// Package:     replay
// Description: Lip Gloss styles of the replay viewer
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package replay

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/cleanworld/foundation/lang/world"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorBgPanel   = lipgloss.Color("#1E293B") // Slate 800
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2)
)

// Grid cell styles
var (
	CellEmptyStyle    = lipgloss.NewStyle().Foreground(ColorDimmed)
	CellVisitedStyle  = lipgloss.NewStyle().Foreground(ColorTextDim)
	CellObstacleStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Bold(true)
	CellDirtStyle     = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	CellMarkerStyle   = lipgloss.NewStyle().Foreground(ColorSecondary)
	CellAgentStyle    = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
)

// Trace styles
var (
	TraceSeqStyle     = lipgloss.NewStyle().Foreground(ColorTextDim)
	TraceLineStyle    = lipgloss.NewStyle().Foreground(ColorSecondary)
	TraceTextStyle    = lipgloss.NewStyle().Foreground(ColorText)
	TraceCurrentStyle = lipgloss.NewStyle().Foreground(ColorText).Background(ColorBgPanel).Bold(true)
	OutcomeOKStyle    = lipgloss.NewStyle().Foreground(ColorSuccess)
	OutcomeMissStyle  = lipgloss.NewStyle().Foreground(ColorError)
)

var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	StatusPlayingStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	StatusPausedStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Logo
const Logo = "cleanworld replay"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderOutcome colors an outcome by whether the action took effect
func RenderOutcome(o world.Outcome) string {
	switch o {
	case world.BlockedByBounds, world.BlockedByWall, world.NoDirt, world.NoHistory:
		return OutcomeMissStyle.Render(string(o))
	}
	return OutcomeOKStyle.Render(string(o))
}

func renderGlyph(r rune) string {
	s := string(r)
	switch r {
	case GlyphEmpty:
		return CellEmptyStyle.Render(s)
	case GlyphVisited:
		return CellVisitedStyle.Render(s)
	case GlyphObstacle:
		return CellObstacleStyle.Render(s)
	case GlyphDirt:
		return CellDirtStyle.Render(s)
	case GlyphEntry, GlyphExit:
		return CellMarkerStyle.Render(s)
	}
	return CellAgentStyle.Render(s)
}
