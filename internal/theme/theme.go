// Package theme renders game snapshots into a screen buffer. Every theme
// draws the same simulation; only the cosmetics differ. Themes register
// themselves in init() functions so the platform can list and instantiate
// them without hardcoded dependencies.
package theme

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/game"
)

// Theme draws full frames for each session mode from an immutable snapshot.
// Themes never touch game state; they only read the snapshot and write cells.
type Theme interface {
	// ID returns a unique identifier (e.g., "plain", "editor").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// DrawMenu renders the main menu frame.
	DrawMenu(dst *core.Screen, snap game.Snapshot)

	// DrawPlaying renders a live round: board, walls, snake, foods, HUD.
	DrawPlaying(dst *core.Screen, snap game.Snapshot)

	// DrawEnded renders the end screen over the final board state.
	DrawEnded(dst *core.Screen, snap game.Snapshot)
}

// Draw clears the screen and dispatches to the frame matching the
// snapshot's mode.
func Draw(th Theme, dst *core.Screen, snap game.Snapshot) {
	dst.Clear()
	switch snap.Mode {
	case game.ModeMenu:
		th.DrawMenu(dst, snap)
	case game.ModePlaying:
		th.DrawPlaying(dst, snap)
	case game.ModeEnded:
		th.DrawEnded(dst, snap)
	}
}

// Info contains metadata about a registered theme.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a theme.
type Factory func() Theme

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a theme factory to the registry.
// Typically called from a theme's init() function.
// Panics if a theme with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("theme: %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered themes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a theme by its ID.
// Returns an error if the theme ID is not registered.
func Create(id string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("theme: unknown theme %q", id)
	}

	return f(), nil
}

// Exists checks if a theme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
