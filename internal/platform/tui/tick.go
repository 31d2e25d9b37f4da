// Package tui provides the Bubble Tea integration for the snake session.
// It handles the terminal UI loop, input mapping, and frame rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to advance the session clock by one render frame.
type FrameMsg time.Time

// defaultFPS is the render rate used when the configured one is unusable.
const defaultFPS = 60

// frameCmd returns a Bubble Tea command that sends frame messages at the
// specified rate. The session does its own step pacing; the frame rate only
// bounds how often we check the clock and redraw.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = defaultFPS
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
