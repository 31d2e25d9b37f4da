package game

// ScoreStore is the persistence collaborator as the session sees it.
// Implemented by the sqlite and score-file backends in internal/storage.
type ScoreStore interface {
	HighScore() (int, error)
	RecordScore(score int) (int64, error)
}

// Scores absorbs every persistence fault at the collaborator boundary.
// Load always returns a valid integer; Save never reports failure. The
// session can stay free of error handling for a concern that is, by
// contract, best-effort.
type Scores struct {
	store ScoreStore
}

// NewScores wraps a score store. A nil store is valid and means scores are
// simply not persisted this run.
func NewScores(store ScoreStore) *Scores {
	return &Scores{store: store}
}

// Load returns the stored high score, or 0 when the store is missing,
// unreadable, or empty.
func (s *Scores) Load() int {
	if s.store == nil {
		return 0
	}
	best, err := s.store.HighScore()
	if err != nil {
		return 0
	}
	return best
}

// Save records a score, fire-and-forget.
func (s *Scores) Save(score int) {
	if s.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	s.store.RecordScore(score)
}
