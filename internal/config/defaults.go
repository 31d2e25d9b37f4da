package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the hardcoded default configuration. It mirrors
// defaults/snake.yaml and serves as the last-resort fallback if the embedded
// YAML ever fails to parse.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Width:  40,
			Height: 20,
		},
		Speed: SpeedConfig{
			BaseMoveDelayMs: 130,
			BoostMultiplier: 1.2,
		},
		Food: FoodConfig{
			MaxOnBoard: 3,
			Points:     10,
		},
		Theme:      "plain",
		Difficulty: "normal",
		Storage: StorageConfig{
			Backend: "sqlite",
			Path:    "~/.snake-tui/scores.db",
		},
	}
}
