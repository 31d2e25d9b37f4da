package game

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/snake-tui/internal/core"
)

// fakeStore records saves and serves a canned high score.
type fakeStore struct {
	best    int
	loadErr error
	saveErr error
	saved   []int
}

func (f *fakeStore) HighScore() (int, error) {
	return f.best, f.loadErr
}

func (f *fakeStore) RecordScore(score int) (int64, error) {
	f.saved = append(f.saved, score)
	return int64(len(f.saved)), f.saveErr
}

func newTestSession(store ScoreStore) *Session {
	sim := NewSimulation(smallRules(10, 10), 7)
	return NewSession(sim, NewScores(store), Timing{
		BaseDelay:   100 * time.Millisecond,
		BoostFactor: 2.0,
	})
}

func TestSessionInitialState(t *testing.T) {
	s := newTestSession(&fakeStore{best: 40})

	snap := s.Snapshot()
	if snap.Mode != ModeMenu {
		t.Errorf("Mode = %v, expected menu", snap.Mode)
	}
	if snap.Selection != OptionPlay {
		t.Errorf("Selection = %v, expected Play", snap.Selection)
	}
	if snap.HighScore != 40 {
		t.Errorf("HighScore = %d, expected 40 from store", snap.HighScore)
	}
}

func TestMenuSelectionToggles(t *testing.T) {
	s := newTestSession(&fakeStore{})

	s.Handle(core.EventSelectNext)
	if s.Snapshot().Selection != OptionExit {
		t.Error("SelectNext should move to Exit")
	}
	s.Handle(core.EventSelectNext)
	if s.Snapshot().Selection != OptionPlay {
		t.Error("SelectNext should wrap back to Play")
	}
	s.Handle(core.EventSelectPrev)
	if s.Snapshot().Selection != OptionExit {
		t.Error("SelectPrev should wrap to Exit")
	}
}

func TestMenuConfirmPlayStartsRound(t *testing.T) {
	s := newTestSession(&fakeStore{})

	s.Handle(core.EventConfirm)

	if s.Mode() != ModePlaying {
		t.Fatalf("Mode = %v, expected playing", s.Mode())
	}
	if s.Done() {
		t.Error("Confirm(Play) must not terminate the session")
	}
}

func TestMenuConfirmExitSignalsDone(t *testing.T) {
	s := newTestSession(&fakeStore{})

	s.Handle(core.EventSelectNext) // move to Exit
	s.Handle(core.EventConfirm)

	if !s.Done() {
		t.Error("Confirm(Exit) should set the done flag")
	}
	if s.Mode() != ModeMenu {
		t.Error("Exit should not change the mode; the platform exits")
	}
}

func TestMovementIgnoredOutsidePlaying(t *testing.T) {
	s := newTestSession(&fakeStore{})

	// In the menu, MoveLeft is not a selection key and must do nothing.
	s.Handle(core.EventMoveLeft)
	if s.Mode() != ModeMenu || s.Snapshot().Selection != OptionPlay {
		t.Error("MoveLeft in menu should be ignored")
	}
}

func TestAdvanceFiresDueSteps(t *testing.T) {
	s := newTestSession(&fakeStore{})
	s.Handle(core.EventConfirm)

	start := time.Unix(0, 0)
	s.Advance(start) // anchors the clock, no step yet

	snap := s.Snapshot()
	head := snap.Snake[0]

	// 100ms base delay: 250ms later exactly two steps are due.
	s.Advance(start.Add(250 * time.Millisecond))

	snap = s.Snapshot()
	if snap.Ticks != 2 {
		t.Fatalf("Ticks = %d, expected 2", snap.Ticks)
	}
	want := core.Point{X: head.X + 2, Y: head.Y}
	if snap.Snake[0] != want {
		t.Errorf("Head = %v, expected %v", snap.Snake[0], want)
	}
}

func TestBoostShortensDelay(t *testing.T) {
	s := newTestSession(&fakeStore{})
	s.Handle(core.EventConfirm)

	start := time.Unix(0, 0)
	s.Advance(start)

	// With 2x boost the 100ms delay drops to 50ms: 100ms fires two steps.
	s.Handle(core.EventBoostOn)
	s.Advance(start.Add(100 * time.Millisecond))

	if ticks := s.Snapshot().Ticks; ticks != 2 {
		t.Errorf("Ticks with boost = %d, expected 2", ticks)
	}

	s.Handle(core.EventBoostOff)
	if s.BoostActive() {
		t.Error("BoostOff should clear the boost flag")
	}
}

func TestPauseSuppressesSteps(t *testing.T) {
	s := newTestSession(&fakeStore{})
	s.Handle(core.EventConfirm)

	start := time.Unix(0, 0)
	s.Advance(start)
	s.TogglePause()

	s.Advance(start.Add(time.Second))
	if ticks := s.Snapshot().Ticks; ticks != 0 {
		t.Errorf("Ticks while paused = %d, expected 0", ticks)
	}

	// Resuming must not replay the paused interval as a burst.
	s.TogglePause()
	s.Advance(start.Add(time.Second + 10*time.Millisecond))
	if ticks := s.Snapshot().Ticks; ticks != 0 {
		t.Errorf("Ticks right after resume = %d, expected 0", ticks)
	}
}

// driveToWall steers the round into the right wall and returns the session.
func driveToWall(t *testing.T, store ScoreStore) *Session {
	t.Helper()
	s := newTestSession(store)
	s.Handle(core.EventConfirm)

	now := time.Unix(0, 0)
	s.Advance(now)
	for i := 0; i < 100 && s.Mode() == ModePlaying; i++ {
		now = now.Add(100 * time.Millisecond)
		s.Advance(now)
	}
	if s.Mode() != ModeEnded {
		t.Fatal("round did not end against the wall")
	}
	return s
}

func TestRoundEndsOnOutcome(t *testing.T) {
	s := driveToWall(t, &fakeStore{})

	snap := s.Snapshot()
	if snap.Outcome != OutcomeLostWall {
		t.Errorf("Outcome = %v, expected lost_wall", snap.Outcome)
	}
	if snap.Won {
		t.Error("Driving into a wall is not a win")
	}
}

func TestHighScoreSavedOnlyWhenBeaten(t *testing.T) {
	// First round ends with score 0 against a stored best of 40: no save.
	store := &fakeStore{best: 40}
	driveToWall(t, store)

	if len(store.saved) != 0 {
		t.Errorf("saved %v, expected no save when score <= high score", store.saved)
	}

	// A beaten high score is saved once, at round end.
	store2 := &fakeStore{best: 0}
	s2 := newTestSession(store2)
	s2.Handle(core.EventConfirm)
	s2.sim.score = 70 // round in progress with a better score
	s2.endRound(OutcomeLostSelf)

	if len(store2.saved) != 1 || store2.saved[0] != 70 {
		t.Errorf("saved %v, expected [70]", store2.saved)
	}
	if s2.HighScore() != 70 {
		t.Errorf("HighScore = %d, expected 70", s2.HighScore())
	}
}

func TestEndedConfirmReturnsToMenu(t *testing.T) {
	s := driveToWall(t, &fakeStore{})

	// Movement keys are meaningless on the end screen.
	s.Handle(core.EventMoveUp)
	if s.Mode() != ModeEnded {
		t.Error("movement on end screen should be ignored")
	}

	s.Handle(core.EventConfirm)
	if s.Mode() != ModeMenu {
		t.Errorf("Mode = %v, expected menu after Confirm", s.Mode())
	}
	if s.Snapshot().Selection != OptionPlay {
		t.Error("returning to menu should select Play")
	}
}

func TestNextRoundStartsClean(t *testing.T) {
	s := driveToWall(t, &fakeStore{})

	s.Handle(core.EventConfirm) // back to menu
	s.Handle(core.EventConfirm) // play again

	snap := s.Snapshot()
	if snap.Mode != ModePlaying {
		t.Fatalf("Mode = %v, expected playing", snap.Mode)
	}
	if snap.Score != 0 || snap.Ticks != 0 {
		t.Errorf("new round Score/Ticks = %d/%d, expected 0/0", snap.Score, snap.Ticks)
	}
	if snap.Outcome != OutcomeNone {
		t.Errorf("new round Outcome = %v, expected none", snap.Outcome)
	}
	if snap.Dir != DirRight {
		t.Errorf("new round Dir = %v, expected right (stale intents discarded)", snap.Dir)
	}
	if snap.BoostActive {
		t.Error("boost must not carry into a new round")
	}
}

func TestQuitFromAnyMode(t *testing.T) {
	s := newTestSession(&fakeStore{})
	s.Handle(core.EventQuit)
	if !s.Done() {
		t.Error("Quit in menu should set done")
	}

	s2 := newTestSession(&fakeStore{})
	s2.Handle(core.EventConfirm)
	s2.Handle(core.EventQuit)
	if !s2.Done() {
		t.Error("Quit while playing should set done")
	}
}

func TestScoresAbsorbsFaults(t *testing.T) {
	// Load failure yields zero, not an error.
	sc := NewScores(&fakeStore{best: 99, loadErr: errors.New("disk on fire")})
	if got := sc.Load(); got != 0 {
		t.Errorf("Load() with failing store = %d, expected 0", got)
	}

	// Save failure is silent.
	failing := &fakeStore{saveErr: errors.New("read-only")}
	NewScores(failing).Save(10)
	if len(failing.saved) != 1 {
		t.Error("Save should still attempt the write")
	}

	// Nil store is valid: scores just aren't persisted.
	nilScores := NewScores(nil)
	if nilScores.Load() != 0 {
		t.Error("Load() with nil store should be 0")
	}
	nilScores.Save(10) // must not panic
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestSession(&fakeStore{})
	s.Handle(core.EventConfirm)

	snap := s.Snapshot()
	if len(snap.Snake) == 0 {
		t.Fatal("snapshot has no snake")
	}
	snap.Snake[0] = core.Point{X: -99, Y: -99}

	if s.Snapshot().Snake[0] == (core.Point{X: -99, Y: -99}) {
		t.Error("mutating a snapshot must not affect the simulation")
	}
}
