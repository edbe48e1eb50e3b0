// ============================================================================
// cleanworld - Cleaning Agent Language Toolchain
// ============================================================================
//
// Package:     replay
// Description: Bubble Tea model of the replay viewer
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package replay is a terminal viewer that steps through the events of a
// cleaning run and redraws the world after each one.
package replay

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/cleanworld/foundation/lang/interp"
	"github.com/msto63/cleanworld/foundation/lang/world"
)

const (
	minSpeed = 25 * time.Millisecond
	maxSpeed = 2 * time.Second
)

// Config holds what the viewer replays
type Config struct {
	Title   string
	Initial world.Snapshot
	Events  []interp.Event
	Speed   time.Duration
}

// Model is the Bubbletea model for the replay viewer
type Model struct {
	width   int
	height  int
	ready   bool
	playing bool
	gen     int

	viewport viewport.Model
	spinner  spinner.Model

	title   string
	initial world.Snapshot
	events  []interp.Event
	pos     int
	speed   time.Duration
	state   *world.State
}

// New creates a viewer positioned before the first event
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	speed := cfg.Speed
	if speed <= 0 {
		speed = 250 * time.Millisecond
	}

	m := Model{
		spinner: sp,
		title:   cfg.Title,
		initial: cfg.Initial,
		events:  cfg.Events,
		speed:   clampSpeed(speed),
	}
	m.state = StateAt(m.initial, m.events, 0)
	return m
}

// Position returns how many events have been applied
func (m Model) Position() int { return m.pos }

// Playing reports whether autoplay is on
func (m Model) Playing() bool { return m.playing }

// Speed returns the autoplay delay between events
func (m Model) Speed() time.Duration { return m.speed }

// State returns the world as of the current position
func (m Model) State() *world.State { return m.state }

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4
		footerHeight := 4
		viewportHeight := msg.Height - headerHeight - footerHeight - 2
		if viewportHeight < 3 {
			viewportHeight = 3
		}
		viewportWidth := msg.Width - m.gridWidth() - 10
		if viewportWidth < 20 {
			viewportWidth = 20
		}

		if !m.ready {
			m.viewport = viewport.New(viewportWidth, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = viewportWidth
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tickMsg:
		if !m.playing || msg.gen != m.gen {
			return m, nil
		}
		m.seek(m.pos + 1)
		if m.pos >= len(m.events) {
			m.playing = false
			return m, nil
		}
		cmds = append(cmds, m.tick())
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyRight:
		m.step(1)
		return m, nil

	case tea.KeyLeft:
		m.step(-1)
		return m, nil

	case tea.KeyHome:
		m.stop()
		m.seek(0)
		return m, nil

	case tea.KeyEnd:
		m.stop()
		m.seek(len(m.events))
		return m, nil

	case tea.KeySpace:
		return m.togglePlay()

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit
		case "l", "n":
			m.step(1)
		case "h", "p":
			m.step(-1)
		case "g":
			m.stop()
			m.seek(0)
		case "G":
			m.stop()
			m.seek(len(m.events))
		case " ":
			return m.togglePlay()
		case "+":
			m.speed = clampSpeed(m.speed / 2)
		case "-":
			m.speed = clampSpeed(m.speed * 2)
		}
	}

	return m, nil
}

func (m *Model) step(delta int) {
	m.stop()
	m.seek(m.pos + delta)
}

func (m *Model) stop() {
	if m.playing {
		m.playing = false
		m.gen++
	}
}

func (m Model) togglePlay() (tea.Model, tea.Cmd) {
	if m.playing {
		m.stop()
		return m, nil
	}
	if m.pos >= len(m.events) {
		m.seek(0)
	}
	m.playing = true
	m.gen++
	return m, m.tick()
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.speed, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// seek moves to position n, clamped to the event range
func (m *Model) seek(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(m.events) {
		n = len(m.events)
	}
	m.pos = n
	m.state = StateAt(m.initial, m.events, n)
	m.updateViewportContent()
}

func clampSpeed(d time.Duration) time.Duration {
	if d < minSpeed {
		return minSpeed
	}
	if d > maxSpeed {
		return maxSpeed
	}
	return d
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading replay..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		PanelStyle.Render(m.renderGrid()),
		PanelStyle.Height(m.viewport.Height).Render(m.viewport.View()),
	))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		SubHeaderStyle.Render(m.title),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

func (m Model) renderGrid() string {
	rows := Grid(m.state, m.events)
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, r := range row {
			b.WriteString(renderGlyph(r))
		}
	}
	return b.String()
}

func (m Model) gridWidth() int {
	rows := Grid(m.state, m.events)
	if len(rows) == 0 {
		return 0
	}
	return len(rows[0])
}

func (m Model) renderStatusBar() string {
	var play string
	if m.playing {
		play = m.spinner.View() + StatusPlayingStyle.Render(" playing")
	} else {
		play = StatusPausedStyle.Render("paused")
	}

	left := HelpDescStyle.Render(fmt.Sprintf("Step %d/%d", m.pos, len(m.events)))
	middle := HelpDescStyle.Render(fmt.Sprintf("Agent %s facing %s  Cleaned %d  Dirt left %d",
		m.state.Agent, m.state.Facing, m.state.Cleaned, len(m.state.Dirt)))
	right := play + HelpDescStyle.Render(fmt.Sprintf("  %s/step", m.speed))

	space := m.width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right) - 4
	if space < 2 {
		space = 2
	}
	pad := space / 2

	content := left + strings.Repeat(" ", pad) + middle + strings.Repeat(" ", space-pad) + right
	return StatusBarStyle.Width(m.width - 2).Render(content)
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("←/→", "Step"),
		RenderKeyHint("Space", "Play"),
		RenderKeyHint("g/G", "Start/End"),
		RenderKeyHint("+/-", "Speed"),
		RenderKeyHint("q", "Quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent lists the trace and keeps the current event visible
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}

	var content strings.Builder
	for i, ev := range m.events {
		line := fmt.Sprintf("%s %s %-9s %s %s",
			TraceSeqStyle.Render(fmt.Sprintf("%4d", ev.Seq)),
			TraceLineStyle.Render(fmt.Sprintf("L%-3d", ev.Line)),
			string(ev.Action),
			RenderOutcome(ev.Outcome),
			ev.Message,
		)
		if i == m.pos-1 {
			line = TraceCurrentStyle.Render("▶ ") + line
		} else {
			line = "  " + line
		}
		content.WriteString(line)
		content.WriteString("\n")
	}
	m.viewport.SetContent(content.String())

	if m.pos-1 >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.pos - m.viewport.Height)
	} else if m.pos-1 < m.viewport.YOffset {
		m.viewport.SetYOffset(max(m.pos-1, 0))
	}
}

// Run starts the replay viewer
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
