// Package config provides YAML-based configuration loading and difficulty
// presets for snake-tui.
package config

import "time"

// Config contains everything tunable about the game. All of it is fixed at
// construction; nothing here mutates at runtime.
type Config struct {
	Grid       GridConfig    `yaml:"grid"`
	Speed      SpeedConfig   `yaml:"speed"`
	Food       FoodConfig    `yaml:"food"`
	Theme      string        `yaml:"theme"`
	Difficulty string        `yaml:"difficulty"`
	Storage    StorageConfig `yaml:"storage"`
}

// GridConfig defines the playable interior dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the movement cadence.
type SpeedConfig struct {
	BaseMoveDelayMs int     `yaml:"base_move_delay_ms"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
}

// FoodConfig defines the food policy.
type FoodConfig struct {
	MaxOnBoard int `yaml:"max_on_board"`
	Points     int `yaml:"points"`
}

// StorageConfig selects the score persistence backend.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "sqlite" or "json"
	Path    string `yaml:"path"`
}

// BaseMoveDelay returns the base delay as a duration.
func (s SpeedConfig) BaseMoveDelay() time.Duration {
	return time.Duration(s.BaseMoveDelayMs) * time.Millisecond
}

// Validate clamps nonsense values to something playable and fills empty
// strings with defaults. It never fails.
func (c Config) Validate() Config {
	def := DefaultConfig()

	if c.Grid.Width < 5 {
		c.Grid.Width = def.Grid.Width
	}
	if c.Grid.Height < 5 {
		c.Grid.Height = def.Grid.Height
	}
	if c.Speed.BaseMoveDelayMs < 20 {
		c.Speed.BaseMoveDelayMs = def.Speed.BaseMoveDelayMs
	}
	if c.Speed.BoostMultiplier < 1.0 {
		c.Speed.BoostMultiplier = def.Speed.BoostMultiplier
	}
	if c.Food.MaxOnBoard < 1 {
		c.Food.MaxOnBoard = def.Food.MaxOnBoard
	}
	if c.Food.Points < 1 {
		c.Food.Points = def.Food.Points
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.Difficulty == "" {
		c.Difficulty = def.Difficulty
	}
	if c.Storage.Backend != "sqlite" && c.Storage.Backend != "json" {
		c.Storage.Backend = def.Storage.Backend
	}
	if c.Storage.Path == "" {
		c.Storage.Path = def.Storage.Path
	}

	return c
}
