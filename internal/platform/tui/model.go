package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/game"
	"github.com/vovakirdan/snake-tui/internal/storage"
	"github.com/vovakirdan/snake-tui/internal/telemetry"
	"github.com/vovakirdan/snake-tui/internal/theme"
)

// boostWindow is how long a single space press keeps boost latched.
// Terminals report key presses but not releases, so the platform treats
// boost as a latch that expires unless autorepeat keeps refreshing it.
const boostWindow = 250 * time.Millisecond

// Model is the Bubble Tea model driving a snake session.
type Model struct {
	session    *game.Session
	theme      theme.Theme
	screen     *core.Screen
	keys       *KeyMapper
	store      storage.Store
	tracer     trace.Tracer
	fps        int
	width      int
	height     int
	boostUntil time.Time
	prevMode   game.Mode
	roundSpan  trace.Span
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given session.
// The store may be nil; the scoreboard then shows an empty list.
func NewModel(session *game.Session, th theme.Theme, store storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		session:  session,
		theme:    th,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:     NewKeyMapper(),
		store:    store,
		tracer:   telemetry.Tracer("session"),
		fps:      cfg.TickRate,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		prevMode: session.Mode(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Scoreboard has its own input handling while open.
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// updateScoreboard routes messages to the scoreboard overlay.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		// Keep the session clock anchored while the scoreboard is open.
		m.session.Advance(time.Time(msg))
		return m, frameCmd(m.fps)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
	}

	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		return m, nil
	}

	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.session.Mode()

	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "tab":
		if mode == game.ModeMenu {
			sb := NewScoreboardModel(m.store, m.width, m.height)
			m.scoreboard = &sb
		}
		return m, nil
	}

	if m.keys.IsPauseKey(msg) {
		m.session.TogglePause()
		return m, nil
	}

	ev := m.keys.MapKey(msg, mode)
	if ev == core.EventBoostOn {
		m.boostUntil = time.Now().Add(boostWindow)
	}
	m.session.Handle(ev)

	if m.session.Done() {
		m.quitting = true
		m.endRoundSpan()
		return m, tea.Quit
	}

	return m, nil
}

// handleFrame advances the session clock and tracks round transitions.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	// Boost stays latched only while key autorepeat keeps refreshing it.
	if m.session.BoostActive() && now.After(m.boostUntil) {
		m.session.Handle(core.EventBoostOff)
	}

	m.session.Advance(now)

	mode := m.session.Mode()
	if mode != m.prevMode {
		if mode == game.ModePlaying {
			_, m.roundSpan = m.tracer.Start(context.Background(), "round")
		} else if m.prevMode == game.ModePlaying {
			m.endRoundSpan()
		}
		m.prevMode = mode
	}

	if m.session.Done() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, frameCmd(m.fps)
}

// endRoundSpan closes the active round span with the final score attached.
func (m *Model) endRoundSpan() {
	if m.roundSpan == nil {
		return
	}
	snap := m.session.Snapshot()
	m.roundSpan.SetAttributes(
		attribute.Int("round.score", snap.FinalScore),
		attribute.String("round.outcome", snap.Outcome.String()),
		attribute.Int("round.length", len(snap.Snake)),
	)
	m.roundSpan.End()
	m.roundSpan = nil
}

// saveScreenshot writes the current frame to a file.
func (m *Model) saveScreenshot() {
	theme.Draw(m.theme, m.screen, m.session.Snapshot())

	dir := filepath.Join(os.Getenv("HOME"), ".snake-tui", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.theme.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	theme.Draw(m.theme, m.screen, m.session.Snapshot())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given session.
func Run(session *game.Session, th theme.Theme, store storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(session, th, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
