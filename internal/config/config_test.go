package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML is invalid: %v", err)
	}

	if cfg != DefaultConfig() {
		t.Errorf("embedded default %+v differs from DefaultConfig() %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	content := `
grid:
  width: 30
  height: 15
speed:
  base_move_delay_ms: 90
  boost_multiplier: 1.5
food:
  max_on_board: 2
  points: 25
theme: editor
difficulty: hard
storage:
  backend: json
  path: "/tmp/scores.json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Grid.Width != 30 || cfg.Grid.Height != 15 {
		t.Errorf("Grid = %+v, expected 30x15", cfg.Grid)
	}
	if cfg.Speed.BaseMoveDelay() != 90*time.Millisecond {
		t.Errorf("BaseMoveDelay = %v, expected 90ms", cfg.Speed.BaseMoveDelay())
	}
	if cfg.Theme != "editor" || cfg.Difficulty != "hard" {
		t.Errorf("Theme/Difficulty = %s/%s", cfg.Theme, cfg.Difficulty)
	}
	if cfg.Storage.Backend != "json" {
		t.Errorf("Storage.Backend = %s, expected json", cfg.Storage.Backend)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("Load() with missing explicit path should fail")
	}
}

func TestValidateClampsNonsense(t *testing.T) {
	bad := Config{
		Grid:  GridConfig{Width: -1, Height: 0},
		Speed: SpeedConfig{BaseMoveDelayMs: 1, BoostMultiplier: 0.2},
		Food:  FoodConfig{MaxOnBoard: 0, Points: -5},
		Storage: StorageConfig{
			Backend: "carrier-pigeon",
		},
	}

	got := bad.Validate()
	def := DefaultConfig()

	if got.Grid != def.Grid {
		t.Errorf("Grid = %+v, expected defaults", got.Grid)
	}
	if got.Speed != def.Speed {
		t.Errorf("Speed = %+v, expected defaults", got.Speed)
	}
	if got.Food != def.Food {
		t.Errorf("Food = %+v, expected defaults", got.Food)
	}
	if got.Storage.Backend != "sqlite" {
		t.Errorf("Storage.Backend = %s, expected sqlite", got.Storage.Backend)
	}
	if got.Theme != "plain" || got.Difficulty != "normal" {
		t.Errorf("Theme/Difficulty = %s/%s, expected plain/normal", got.Theme, got.Difficulty)
	}
}

func TestApplyDifficulty(t *testing.T) {
	base := 100 * time.Millisecond

	tests := []struct {
		preset DifficultyPreset
		want   time.Duration
	}{
		{DifficultyEasy, 135 * time.Millisecond},
		{DifficultyNormal, 100 * time.Millisecond},
		{DifficultyHard, 70 * time.Millisecond},
		{DifficultyFixed, 100 * time.Millisecond},
		{DifficultyPreset("bogus"), 100 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := ApplyDifficulty(base, tt.preset); got != tt.want {
			t.Errorf("ApplyDifficulty(%v, %s) = %v, expected %v", base, tt.preset, got, tt.want)
		}
	}
}

func TestValidPreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if !ValidPreset(name) {
			t.Errorf("ValidPreset(%q) = false, expected true", name)
		}
	}
	if ValidPreset("nightmare") {
		t.Error("ValidPreset(nightmare) = true, expected false")
	}
}
