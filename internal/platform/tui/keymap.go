package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/game"
)

// KeyMapper translates Bubble Tea key messages to session events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a session event for the given mode.
// The same physical key means different things in different modes: up/down
// move the menu cursor in the menu but steer the snake during play, and
// space confirms in the menu but boosts during play.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, mode game.Mode) core.Event {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.EventQuit
	}

	switch mode {
	case game.ModeMenu:
		return km.mapMenuKey(key)
	case game.ModePlaying:
		return km.mapPlayingKey(key)
	case game.ModeEnded:
		return km.mapEndedKey(key)
	}

	return core.EventNone
}

func (km *KeyMapper) mapMenuKey(key string) core.Event {
	switch key {
	case "w", "up", "k": // vim-style k for up
		return core.EventSelectPrev
	case "s", "down", "j": // vim-style j for down
		return core.EventSelectNext
	case "enter", " ":
		return core.EventConfirm
	}
	return core.EventNone
}

func (km *KeyMapper) mapPlayingKey(key string) core.Event {
	switch key {
	case "w", "up", "k":
		return core.EventMoveUp
	case "s", "down", "j":
		return core.EventMoveDown
	case "a", "left", "h":
		return core.EventMoveLeft
	case "d", "right", "l":
		return core.EventMoveRight
	case " ":
		return core.EventBoostOn
	}
	return core.EventNone
}

func (km *KeyMapper) mapEndedKey(key string) core.Event {
	switch key {
	case "enter", " ":
		return core.EventConfirm
	}
	return core.EventNone
}

// IsPauseKey reports whether the key toggles pause. Pause is a platform
// concern rather than a session event, so it gets its own check.
func (km *KeyMapper) IsPauseKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "p", "esc":
		return true
	}
	return false
}
