package game

import (
	"sort"

	"github.com/vovakirdan/snake-tui/internal/core"
)

// Snapshot is an immutable copy of everything a renderer needs for one
// frame. Themes read it; nothing writes back through it.
type Snapshot struct {
	Mode      Mode
	Selection MenuOption

	GridW int
	GridH int
	Snake []core.Point // Head first
	Foods []core.Point // Sorted for stable rendering and tests
	Dir   Direction

	Score      int
	HighScore  int
	Outcome    Outcome
	Won        bool
	FinalScore int

	Paused      bool
	BoostActive bool
	Ticks       uint64
}

// Snapshot captures the current session and simulation state.
func (s *Session) Snapshot() Snapshot {
	foods := s.sim.Foods()
	sort.Slice(foods, func(i, j int) bool {
		if foods[i].Y != foods[j].Y {
			return foods[i].Y < foods[j].Y
		}
		return foods[i].X < foods[j].X
	})

	return Snapshot{
		Mode:        s.mode,
		Selection:   s.selection,
		GridW:       s.sim.Rules().Width,
		GridH:       s.sim.Rules().Height,
		Snake:       s.sim.Snake(),
		Foods:       foods,
		Dir:         s.sim.Direction(),
		Score:       s.sim.Score(),
		HighScore:   s.highScore,
		Outcome:     s.sim.Outcome(),
		Won:         s.won,
		FinalScore:  s.finalScore,
		Paused:      s.paused,
		BoostActive: s.boost,
		Ticks:       s.ticks,
	}
}
