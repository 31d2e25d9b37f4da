package theme

import (
	"fmt"

	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/game"
)

// Editor is the code-editor look: syntax-highlight palette, ASCII walls, a
// directional head and code-shaped menu entries.
type Editor struct{}

func init() {
	Register("editor", func() Theme { return &Editor{} })
}

// menuArt is the code block shown under the title.
var menuArt = []string{
	"function play() {",
	"  snake.eat($food);",
	"  while (alive) {",
	"    snake.move();",
	"  }",
	"}",
}

// ID returns the theme identifier.
func (t *Editor) ID() string {
	return "editor"
}

// Title returns the display name.
func (t *Editor) Title() string {
	return "Code Editor"
}

// DrawMenu renders the main menu.
func (t *Editor) DrawMenu(dst *core.Screen, snap game.Snapshot) {
	y := dst.Height()/2 - len(menuArt)/2 - 4

	dst.DrawTextCenteredColor(y, "// CODE SNAKE", core.ColorBrightWhite)
	for i, line := range menuArt {
		dst.DrawTextCenteredColor(y+2+i, line, core.ColorMagenta)
	}

	optY := y + len(menuArt) + 3
	options := []string{"play()", "exit()"}
	for i, opt := range options {
		cursor := "  "
		color := core.ColorWhite
		if game.MenuOption(i) == snap.Selection {
			cursor = "→ "
			color = core.ColorBrightCyan
		}
		dst.DrawTextCenteredColor(optY+i, cursor+opt, color)
	}

	dst.DrawTextCenteredColor(optY+4, fmt.Sprintf("// high_score = %d", snap.HighScore), core.ColorGray)
}

// DrawPlaying renders a live round.
func (t *Editor) DrawPlaying(dst *core.Screen, snap game.Snapshot) {
	t.drawBoard(dst, snap)

	if snap.Paused {
		drawOverlayBox(dst, core.ColorWhite,
			[]string{"/* paused */", "press P to resume"},
			[]core.Color{core.ColorBrightYellow, core.ColorGray})
	}
}

// DrawEnded renders the end screen over the final board.
func (t *Editor) DrawEnded(dst *core.Screen, snap game.Snapshot) {
	t.drawBoard(dst, snap)

	title := "// GAME OVER"
	titleColor := core.ColorBrightRed
	if snap.Won {
		title = "// SUCCESS"
		titleColor = core.ColorBrightGreen
	}

	drawOverlayBox(dst, core.ColorWhite,
		[]string{
			title,
			fmt.Sprintf("final_score = %d", snap.FinalScore),
			"[press ENTER to continue]",
		},
		[]core.Color{titleColor, core.ColorMagenta, core.ColorGray})
}

// headRune returns the direction-shaped head character.
func (t *Editor) headRune(d game.Direction) rune {
	switch d {
	case game.DirUp:
		return '▲'
	case game.DirDown:
		return '▼'
	case game.DirLeft:
		return '◄'
	default:
		return '►'
	}
}

// drawBoard draws the HUD, ASCII walls, snake and foods.
func (t *Editor) drawBoard(dst *core.Screen, snap game.Snapshot) {
	hud := fmt.Sprintf(" score: %d | high: %d", snap.Score, snap.HighScore)
	if snap.BoostActive {
		hud += " | /* boost */"
	}
	dst.DrawTextColor(0, 0, hud, core.ColorCyan)

	ox, oy := boardOrigin(dst, snap)
	boardW := snap.GridW + 2
	boardH := snap.GridH + 2

	// ASCII wall ring with + corners
	for x := 1; x < boardW-1; x++ {
		dst.SetCell(ox+x, oy, '-', core.ColorWhite)
		dst.SetCell(ox+x, oy+boardH-1, '-', core.ColorWhite)
	}
	for y := 1; y < boardH-1; y++ {
		dst.SetCell(ox, oy+y, '|', core.ColorWhite)
		dst.SetCell(ox+boardW-1, oy+y, '|', core.ColorWhite)
	}
	dst.SetCell(ox, oy, '+', core.ColorWhite)
	dst.SetCell(ox+boardW-1, oy, '+', core.ColorWhite)
	dst.SetCell(ox, oy+boardH-1, '+', core.ColorWhite)
	dst.SetCell(ox+boardW-1, oy+boardH-1, '+', core.ColorWhite)

	for _, f := range snap.Foods {
		fx, fy := cellToScreen(ox, oy, f)
		dst.SetCell(fx, fy, '$', core.ColorBrightCyan)
	}

	for i, seg := range snap.Snake {
		sx, sy := cellToScreen(ox, oy, seg)
		if i == 0 {
			dst.SetCell(sx, sy, t.headRune(snap.Dir), core.ColorBrightMagenta)
		} else {
			dst.SetCell(sx, sy, '=', core.ColorMagenta)
		}
	}
}
