// Package game contains the Snake simulation engine and the session state
// machine. It has no I/O: input arrives as core.Event values, rendering
// consumes immutable snapshots, and persistence sits behind the Scores
// adapter.
package game

import (
	"math/rand"

	"github.com/vovakirdan/snake-tui/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse of a direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// Vector returns the unit grid offset for a direction.
func (d Direction) Vector() core.Point {
	switch d {
	case DirUp:
		return core.Point{X: 0, Y: -1}
	case DirDown:
		return core.Point{X: 0, Y: 1}
	case DirLeft:
		return core.Point{X: -1, Y: 0}
	default:
		return core.Point{X: 1, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of a simulation step. Outcomes are ordinary
// values, never errors: hitting a wall is as expected as moving forward.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLostWall
	OutcomeLostSelf
	OutcomeWon
)

// Terminal returns true if the outcome ends the round.
func (o Outcome) Terminal() bool {
	return o != OutcomeNone
}

// Won returns true if the round ended with the grid filled.
func (o Outcome) Won() bool {
	return o == OutcomeWon
}

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeLostWall:
		return "lost_wall"
	case OutcomeLostSelf:
		return "lost_self"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// Rules are the fixed parameters of a round. They never change mid-round.
type Rules struct {
	Width         int // Playable interior width
	Height        int // Playable interior height
	MaxFoods      int // Foods kept on the board at once
	PointsPerFood int
	StartLength   int
}

// DefaultRules returns the standard 40x20 board.
func DefaultRules() Rules {
	return Rules{
		Width:         40,
		Height:        20,
		MaxFoods:      3,
		PointsPerFood: 10,
		StartLength:   3,
	}
}

// validate clamps nonsense values to something playable.
func (r Rules) validate() Rules {
	r.Width = core.Max(r.Width, 5)
	r.Height = core.Max(r.Height, 5)
	r.MaxFoods = core.Clamp(r.MaxFoods, 1, r.Width*r.Height/4)
	r.PointsPerFood = core.Max(r.PointsPerFood, 1)
	r.StartLength = core.Clamp(r.StartLength, 1, r.Width/2)
	return r
}

// Simulation is the Snake game engine. Coordinates (x, y) with
// 0 <= x < Width and 0 <= y < Height are playable; anything outside is wall.
// The snake is stored head-first.
//
// Self-collision policy: the full pre-move body counts, tail included.
// The head may not enter the cell the tail is vacating on the same step.
type Simulation struct {
	rules Rules
	rng   *rand.Rand

	snake     []core.Point
	foods     map[core.Point]struct{}
	direction Direction
	pending   Direction
	score     int
	outcome   Outcome
}

// NewSimulation creates a simulation with the given rules and RNG seed.
// The board is ready to play immediately.
func NewSimulation(rules Rules, seed int64) *Simulation {
	s := &Simulation{
		rules: rules.validate(),
		rng:   rand.New(rand.NewSource(seed)),
	}
	s.Reset()
	return s
}

// Rules returns the simulation's fixed parameters.
func (s *Simulation) Rules() Rules {
	return s.rules
}

// Reset reinitializes the round: a short snake centered on the grid facing
// right, score zero, fresh foods. It always succeeds.
func (s *Simulation) Reset() {
	startX := s.rules.Width / 2
	startY := s.rules.Height / 2

	// Head at the front, body trailing to the left.
	s.snake = make([]core.Point, 0, s.rules.StartLength)
	for i := 0; i < s.rules.StartLength; i++ {
		s.snake = append(s.snake, core.Point{X: startX - i, Y: startY})
	}

	s.direction = DirRight
	s.pending = DirRight
	s.score = 0
	s.outcome = OutcomeNone
	s.foods = make(map[core.Point]struct{})
	s.spawnFoods()
}

// RequestTurn buffers a steering intent for the next step. The turn is
// dropped if it would reverse the direction the snake is currently moving;
// checking against the applied direction (not the buffered one) prevents a
// rapid key sequence from folding the snake into its own neck.
func (s *Simulation) RequestTurn(d Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.pending = d
}

// Step advances the simulation by exactly one movement tick and returns the
// outcome. After a terminal outcome the state is frozen; further calls
// return the same outcome without moving.
func (s *Simulation) Step() Outcome {
	if s.outcome.Terminal() {
		return s.outcome
	}

	s.direction = s.pending
	newHead := s.snake[0].Add(s.direction.Vector())

	if !s.inBounds(newHead) {
		s.outcome = OutcomeLostWall
		return s.outcome
	}

	if s.occupied(newHead) {
		s.outcome = OutcomeLostSelf
		return s.outcome
	}

	s.snake = append([]core.Point{newHead}, s.snake...)

	if _, ate := s.foods[newHead]; ate {
		delete(s.foods, newHead)
		s.score += s.rules.PointsPerFood
		s.spawnFoods()
	} else {
		s.snake = s.snake[:len(s.snake)-1]
	}

	if len(s.snake) == s.rules.Width*s.rules.Height {
		s.outcome = OutcomeWon
	}
	return s.outcome
}

// spawnFoods tops the board up to MaxFoods, choosing free cells uniformly at
// random without replacement. When the board is nearly full fewer foods may
// be placed; that is expected, not an error.
func (s *Simulation) spawnFoods() {
	var free []core.Point
	for y := 0; y < s.rules.Height; y++ {
		for x := 0; x < s.rules.Width; x++ {
			p := core.Point{X: x, Y: y}
			if s.occupied(p) {
				continue
			}
			if _, hasFood := s.foods[p]; hasFood {
				continue
			}
			free = append(free, p)
		}
	}

	for len(s.foods) < s.rules.MaxFoods && len(free) > 0 {
		i := s.rng.Intn(len(free))
		s.foods[free[i]] = struct{}{}
		free[i] = free[len(free)-1]
		free = free[:len(free)-1]
	}
}

// inBounds reports whether p is inside the playable interior.
func (s *Simulation) inBounds(p core.Point) bool {
	return p.X >= 0 && p.X < s.rules.Width && p.Y >= 0 && p.Y < s.rules.Height
}

// occupied reports whether any snake segment sits on p.
func (s *Simulation) occupied(p core.Point) bool {
	for _, seg := range s.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Score returns the current score.
func (s *Simulation) Score() int {
	return s.score
}

// Outcome returns the terminal outcome of the round, or OutcomeNone while
// the round is still live.
func (s *Simulation) Outcome() Outcome {
	return s.outcome
}

// Direction returns the direction applied on the most recent step.
func (s *Simulation) Direction() Direction {
	return s.direction
}

// Len returns the snake's current length.
func (s *Simulation) Len() int {
	return len(s.snake)
}

// Snake returns a copy of the snake's segments, head first.
func (s *Simulation) Snake() []core.Point {
	out := make([]core.Point, len(s.snake))
	copy(out, s.snake)
	return out
}

// Foods returns a copy of the food positions in unspecified order.
func (s *Simulation) Foods() []core.Point {
	out := make([]core.Point, 0, len(s.foods))
	for p := range s.foods {
		out = append(out, p)
	}
	return out
}

// setState overwrites the snake and foods for tests.
func (s *Simulation) setState(snake []core.Point, foods []core.Point, dir Direction) {
	s.snake = append([]core.Point(nil), snake...)
	s.foods = make(map[core.Point]struct{}, len(foods))
	for _, p := range foods {
		s.foods[p] = struct{}{}
	}
	s.direction = dir
	s.pending = dir
	s.outcome = OutcomeNone
}
