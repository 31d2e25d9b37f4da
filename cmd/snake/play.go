package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-tui/internal/config"
	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/platform/tui"
	"github.com/vovakirdan/snake-tui/internal/storage"
	"github.com/vovakirdan/snake-tui/internal/telemetry"
	"github.com/vovakirdan/snake-tui/internal/theme"
)

var (
	flagTheme      string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session: menu, rounds, end screens.

Controls:
  W/A/S/D, arrows  - Steer
  Space            - Hold for speed boost
  P/Esc            - Pause
  Enter            - Confirm / back to menu after a round
  Tab              - High scores (from the menu)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty presets scale the base movement delay:
  easy   - Slower than the config's base speed
  normal - The config's base speed
  hard   - Faster than the config's base speed
  fixed  - The config's base speed, no scaling

Examples:
  snake play
  snake play --theme editor
  snake play --difficulty hard
  snake play --config ./my-snake.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Visual theme (see 'snake themes')")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log debug output to ~/.snake-tui/debug.log")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagDebug {
		home, homeErr := os.UserHomeDir()
		if homeErr == nil {
			logPath := filepath.Join(home, ".snake-tui", "debug.log")
			//nolint:errcheck // Best-effort log directory
			os.MkdirAll(filepath.Dir(logPath), 0o755)
			if f, logErr := tea.LogToFile(logPath, "debug"); logErr == nil {
				defer f.Close()
			}
		}
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override config
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
	if flagDifficulty != "" {
		if !config.ValidPreset(flagDifficulty) {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard, fixed)\n", flagDifficulty)
			os.Exit(1)
		}
		cfg.Difficulty = flagDifficulty
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	cfg = cfg.Validate()

	if !theme.Exists(cfg.Theme) {
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q\n", cfg.Theme)
		fmt.Fprintln(os.Stderr, "Run 'snake themes' to see available themes.")
		os.Exit(1)
	}
	th, err := theme.Create(cfg.Theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating theme: %v\n", err)
		os.Exit(1)
	}

	// Terminal size for the screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rtCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.OpenBackend(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score storage: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Tracing is active only when OTEL_EXPORTER_OTLP_ENDPOINT is set
	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: telemetry disabled: %v\n", err)
		shutdown = func(context.Context) error { return nil }
	}

	session := tui.BuildSession(cfg, store, flagSeed)
	runErr := tui.Run(session, th, store, rtCfg)

	//nolint:errcheck // Best-effort flush on exit
	shutdown(ctx)
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
