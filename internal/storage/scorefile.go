package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileStore keeps only the single best score in a JSON file shaped like
// {"high_score": N}. This matches the classic ~/score/score.json layout and
// is the lightweight alternative to the SQLite backend.
type FileStore struct {
	path string
}

type scoreFile struct {
	HighScore int `json:"high_score"`
}

// OpenFile creates a file-backed score store at the given path.
// The file itself is created lazily on the first RecordScore.
func OpenFile(path string) (*FileStore, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(expanded)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	return &FileStore{path: expanded}, nil
}

// HighScore reads the stored best score. A missing or corrupt file yields 0
// without an error: for this backend that is the defined empty state.
func (s *FileStore) HighScore() (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, nil
	}

	var f scoreFile
	if err := json.Unmarshal(data, &f); err != nil {
		return 0, nil
	}
	if f.HighScore < 0 {
		return 0, nil
	}
	return f.HighScore, nil
}

// RecordScore writes the score if it beats the stored best. Writing an
// equal-or-lower score is a no-op, so save(load()) never changes the file.
func (s *FileStore) RecordScore(score int) (int64, error) {
	best, _ := s.HighScore()
	if score < best {
		return 0, nil
	}

	data, err := json.MarshalIndent(scoreFile{HighScore: score}, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode score file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return 0, fmt.Errorf("storage: cannot write score file: %w", err)
	}
	return 1, nil
}

// TopScores returns at most one entry: the stored best, if any.
func (s *FileStore) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	best, err := s.HighScore()
	if err != nil || best == 0 {
		return nil, err
	}

	modTime := time.Time{}
	if info, statErr := os.Stat(s.path); statErr == nil {
		modTime = info.ModTime()
	}

	return []ScoreEntry{{ID: 1, Score: best, CreatedAt: modTime}}, nil
}

// Close is a no-op for the file backend.
func (s *FileStore) Close() error {
	return nil
}
