package game

import (
	"time"

	"github.com/vovakirdan/snake-tui/internal/core"
)

// Mode is the top-level session state.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeEnded
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// MenuOption is one of the two main-menu entries.
type MenuOption int

const (
	OptionPlay MenuOption = iota
	OptionExit
)

// Timing holds the movement cadence parameters. The boost factor shortens
// the delay between movement ticks while the boost key is held; it never
// touches simulation logic.
type Timing struct {
	BaseDelay   time.Duration
	BoostFactor float64
}

// DefaultTiming matches the classic feel: a move every ~130ms, 1.2x boost.
func DefaultTiming() Timing {
	return Timing{
		BaseDelay:   130 * time.Millisecond,
		BoostFactor: 1.2,
	}
}

// Session owns the menu/play/end state machine. It interprets input events
// against the current mode, drives the simulation on due movement ticks, and
// notifies the score store when a round ends.
//
// Movement ticks and render frames are independent: the platform calls
// Advance once per frame and the session decides how many simulation steps
// (usually zero or one) are due.
type Session struct {
	sim    *Simulation
	scores *Scores
	timing Timing

	mode      Mode
	selection MenuOption
	boost     bool
	paused    bool
	done      bool

	highScore  int
	finalScore int
	won        bool

	ticks    uint64 // Movement steps taken this round
	lastStep time.Time
}

// NewSession creates a session in the menu with "Play" selected.
// The high score is loaded once, here; load failures yield zero.
func NewSession(sim *Simulation, scores *Scores, timing Timing) *Session {
	if timing.BaseDelay <= 0 {
		timing.BaseDelay = DefaultTiming().BaseDelay
	}
	if timing.BoostFactor < 1 {
		timing.BoostFactor = DefaultTiming().BoostFactor
	}
	return &Session{
		sim:       sim,
		scores:    scores,
		timing:    timing,
		mode:      ModeMenu,
		selection: OptionPlay,
		highScore: scores.Load(),
	}
}

// Handle interprets a single input event against the current mode.
// Events that are meaningless in the current mode are silently ignored.
func (s *Session) Handle(ev core.Event) {
	if ev == core.EventQuit {
		s.done = true
		return
	}

	switch s.mode {
	case ModeMenu:
		s.handleMenu(ev)
	case ModePlaying:
		s.handlePlaying(ev)
	case ModeEnded:
		if ev == core.EventConfirm {
			s.mode = ModeMenu
			s.selection = OptionPlay
		}
	}
}

func (s *Session) handleMenu(ev core.Event) {
	switch ev {
	case core.EventSelectPrev, core.EventSelectNext, core.EventMoveUp, core.EventMoveDown:
		// Exactly two options, so any vertical step toggles.
		if s.selection == OptionPlay {
			s.selection = OptionExit
		} else {
			s.selection = OptionPlay
		}
	case core.EventConfirm:
		if s.selection == OptionExit {
			s.done = true
			return
		}
		s.startRound()
	}
}

func (s *Session) handlePlaying(ev core.Event) {
	switch ev {
	case core.EventMoveUp:
		s.sim.RequestTurn(DirUp)
	case core.EventMoveDown:
		s.sim.RequestTurn(DirDown)
	case core.EventMoveLeft:
		s.sim.RequestTurn(DirLeft)
	case core.EventMoveRight:
		s.sim.RequestTurn(DirRight)
	case core.EventBoostOn:
		s.boost = true
	case core.EventBoostOff:
		s.boost = false
	}
}

// startRound resets the simulation and enters Playing. Resetting also
// discards any steering intent buffered from the previous round.
func (s *Session) startRound() {
	s.sim.Reset()
	s.mode = ModePlaying
	s.boost = false
	s.paused = false
	s.ticks = 0
	s.lastStep = time.Time{}
}

// TogglePause flips the pause flag. Pause is a flag inside Playing, not a
// separate mode; it only exists while a round is live.
func (s *Session) TogglePause() {
	if s.mode == ModePlaying {
		s.paused = !s.paused
	}
}

// stepDelay returns the current interval between movement ticks.
func (s *Session) stepDelay() time.Duration {
	if s.boost {
		return time.Duration(float64(s.timing.BaseDelay) / s.timing.BoostFactor)
	}
	return s.timing.BaseDelay
}

// Advance fires any movement ticks that have become due since the last call.
// Called once per render frame with the frame timestamp.
func (s *Session) Advance(now time.Time) {
	if s.mode != ModePlaying || s.paused {
		// Keep the clock anchored so resuming doesn't fire a burst of steps.
		s.lastStep = now
		return
	}

	if s.lastStep.IsZero() {
		s.lastStep = now
		return
	}

	for now.Sub(s.lastStep) >= s.stepDelay() {
		s.lastStep = s.lastStep.Add(s.stepDelay())
		s.ticks++
		if out := s.sim.Step(); out.Terminal() {
			s.endRound(out)
			return
		}
	}
}

// endRound records the outcome, updates the high score if beaten, and enters
// Ended. The save is best-effort; a failed write is invisible here.
func (s *Session) endRound(out Outcome) {
	s.finalScore = s.sim.Score()
	s.won = out.Won()
	s.boost = false
	if s.finalScore > s.highScore {
		s.highScore = s.finalScore
		s.scores.Save(s.finalScore)
	}
	s.mode = ModeEnded
}

// Mode returns the current session mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Done returns true once the user has asked to leave; the platform performs
// the actual exit.
func (s *Session) Done() bool {
	return s.done
}

// HighScore returns the best score seen so far, including this process run.
func (s *Session) HighScore() int {
	return s.highScore
}

// BoostActive returns true while the boost key is held.
func (s *Session) BoostActive() bool {
	return s.boost
}

// Paused returns true while the round is paused.
func (s *Session) Paused() bool {
	return s.paused
}
