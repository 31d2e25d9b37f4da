package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/game"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyQuitInEveryMode(t *testing.T) {
	km := NewKeyMapper()

	for _, mode := range []game.Mode{game.ModeMenu, game.ModePlaying, game.ModeEnded} {
		if ev := km.MapKey(runeKey('q'), mode); ev != core.EventQuit {
			t.Errorf("q in %v = %v, expected Quit", mode, ev)
		}
		if ev := km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlC}, mode); ev != core.EventQuit {
			t.Errorf("ctrl+c in %v = %v, expected Quit", mode, ev)
		}
	}
}

func TestMapKeyMenuMode(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Event
	}{
		{runeKey('w'), core.EventSelectPrev},
		{tea.KeyMsg{Type: tea.KeyUp}, core.EventSelectPrev},
		{runeKey('k'), core.EventSelectPrev},
		{runeKey('s'), core.EventSelectNext},
		{tea.KeyMsg{Type: tea.KeyDown}, core.EventSelectNext},
		{runeKey('j'), core.EventSelectNext},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.EventConfirm},
		{tea.KeyMsg{Type: tea.KeySpace}, core.EventConfirm},
		{runeKey('a'), core.EventNone}, // no steering in the menu
	}

	for _, tt := range tests {
		if got := km.MapKey(tt.msg, game.ModeMenu); got != tt.want {
			t.Errorf("MapKey(%q, menu) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestMapKeyPlayingMode(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Event
	}{
		{runeKey('w'), core.EventMoveUp},
		{runeKey('s'), core.EventMoveDown},
		{runeKey('a'), core.EventMoveLeft},
		{runeKey('d'), core.EventMoveRight},
		{tea.KeyMsg{Type: tea.KeyUp}, core.EventMoveUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.EventMoveDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.EventMoveLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.EventMoveRight},
		{runeKey('h'), core.EventMoveLeft},
		{runeKey('l'), core.EventMoveRight},
		{tea.KeyMsg{Type: tea.KeySpace}, core.EventBoostOn},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.EventNone}, // no confirm mid-round
	}

	for _, tt := range tests {
		if got := km.MapKey(tt.msg, game.ModePlaying); got != tt.want {
			t.Errorf("MapKey(%q, playing) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestMapKeyEndedMode(t *testing.T) {
	km := NewKeyMapper()

	if got := km.MapKey(tea.KeyMsg{Type: tea.KeyEnter}, game.ModeEnded); got != core.EventConfirm {
		t.Errorf("enter on end screen = %v, expected Confirm", got)
	}
	if got := km.MapKey(runeKey('w'), game.ModeEnded); got != core.EventNone {
		t.Errorf("w on end screen = %v, expected None", got)
	}
}

func TestIsPauseKey(t *testing.T) {
	km := NewKeyMapper()

	if !km.IsPauseKey(runeKey('p')) {
		t.Error("p should toggle pause")
	}
	if !km.IsPauseKey(tea.KeyMsg{Type: tea.KeyEsc}) {
		t.Error("esc should toggle pause")
	}
	if km.IsPauseKey(runeKey('w')) {
		t.Error("w should not toggle pause")
	}
}
