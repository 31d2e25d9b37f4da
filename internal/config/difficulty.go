package config

import "time"

// DifficultyPreset represents a named difficulty level. Snake has exactly
// one knob: how fast the movement ticks come. Presets scale the configured
// base delay.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // use the config delay as-is
)

// delayScale maps a preset to a multiplier on the base movement delay.
func delayScale(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.35
	case DifficultyHard:
		return 0.7
	default: // normal, fixed, unknown
		return 1.0
	}
}

// ApplyDifficulty returns the movement delay for the given preset.
func ApplyDifficulty(base time.Duration, preset DifficultyPreset) time.Duration {
	return time.Duration(float64(base) * delayScale(preset))
}

// ValidPreset reports whether the preset name is recognized. An empty
// string is valid and means "use the config file's preset".
func ValidPreset(name string) bool {
	switch DifficultyPreset(name) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}
