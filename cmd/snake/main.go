// snake is a terminal snake game with swappable visual themes.
//
// Usage:
//
//	snake                    - Play with the default theme
//	snake play               - Play (same as the bare command)
//	snake themes             - List available themes
//	snake scores             - Show the high score table
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set render frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Override the score storage path
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	// Load .env if present; real env vars win
	//nolint:errcheck // Missing .env is the normal case
	godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic, in your terminal",
	Long: `Snake is a terminal game: steer the snake, eat food, avoid the walls
and your own tail. Visual themes change how the board looks without
changing how the game plays.

Available commands:
  play     - Play the game (the bare 'snake' command does the same)
  themes   - List available visual themes
  scores   - View the high score table
  serve    - Start SSH server for remote play

Examples:
  snake
  snake play --theme sysmon
  snake play --difficulty hard
  snake serve --ssh :2222
  snake scores`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Score storage path (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
