package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-tui/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available visual themes",
	Long:  `Shows all registered themes. Pick one with 'snake play --theme <id>'.`,
	Run:   runThemes,
}

func runThemes(cmd *cobra.Command, args []string) {
	themes := theme.List()

	if len(themes) == 0 {
		fmt.Println("No themes available.")
		return
	}

	fmt.Println("Available themes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, t := range themes {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, t := range themes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, t.ID, t.Title)
	}

	fmt.Println()
	fmt.Println("Run 'snake play --theme <id>' to use a theme.")
}
