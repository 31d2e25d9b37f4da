package theme

import (
	"fmt"

	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/game"
)

// Plain is the classic look: solid walls, round snake segments, no gimmicks.
type Plain struct{}

func init() {
	Register("plain", func() Theme { return &Plain{} })
}

// ID returns the theme identifier.
func (t *Plain) ID() string {
	return "plain"
}

// Title returns the display name.
func (t *Plain) Title() string {
	return "Classic Terminal"
}

// DrawMenu renders the main menu.
func (t *Plain) DrawMenu(dst *core.Screen, snap game.Snapshot) {
	y := dst.Height()/2 - 4

	dst.DrawTextCenteredColor(y, "S N A K E", core.ColorBrightGreen)
	dst.DrawTextCenteredColor(y+2, fmt.Sprintf("high score: %d", snap.HighScore), core.ColorGray)

	options := []string{"Play", "Exit"}
	for i, opt := range options {
		cursor := "  "
		color := core.ColorWhite
		if game.MenuOption(i) == snap.Selection {
			cursor = "> "
			color = core.ColorBrightCyan
		}
		dst.DrawTextCenteredColor(y+4+i, cursor+opt, color)
	}

	dst.DrawTextCenteredColor(y+8, "W/S: select   Enter: confirm", core.ColorGray)
}

// DrawPlaying renders a live round.
func (t *Plain) DrawPlaying(dst *core.Screen, snap game.Snapshot) {
	t.drawBoard(dst, snap)

	if snap.Paused {
		drawOverlayBox(dst, core.ColorWhite,
			[]string{"PAUSED", "press P to continue"},
			[]core.Color{core.ColorBrightYellow, core.ColorGray})
	}
}

// DrawEnded renders the end screen over the final board.
func (t *Plain) DrawEnded(dst *core.Screen, snap game.Snapshot) {
	t.drawBoard(dst, snap)

	title := "GAME OVER"
	titleColor := core.ColorBrightRed
	if snap.Won {
		title = "YOU WIN!"
		titleColor = core.ColorBrightGreen
	}

	drawOverlayBox(dst, core.ColorWhite,
		[]string{
			title,
			fmt.Sprintf("score: %d", snap.FinalScore),
			"[press ENTER to continue]",
		},
		[]core.Color{titleColor, core.ColorWhite, core.ColorGray})
}

// drawBoard draws the HUD, walls, snake and foods.
func (t *Plain) drawBoard(dst *core.Screen, snap game.Snapshot) {
	hud := fmt.Sprintf(" score: %d | high: %d", snap.Score, snap.HighScore)
	if snap.BoostActive {
		hud += " | >> boost"
	}
	dst.DrawTextColor(0, 0, hud, core.ColorWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)

	ox, oy := boardOrigin(dst, snap)
	boardW := snap.GridW + 2
	boardH := snap.GridH + 2

	// Wall ring
	for x := 0; x < boardW; x++ {
		dst.SetCell(ox+x, oy, '█', core.ColorGray)
		dst.SetCell(ox+x, oy+boardH-1, '█', core.ColorGray)
	}
	for y := 0; y < boardH; y++ {
		dst.SetCell(ox, oy+y, '█', core.ColorGray)
		dst.SetCell(ox+boardW-1, oy+y, '█', core.ColorGray)
	}

	for _, f := range snap.Foods {
		fx, fy := cellToScreen(ox, oy, f)
		dst.SetCell(fx, fy, '@', core.ColorBrightYellow)
	}

	for i, seg := range snap.Snake {
		sx, sy := cellToScreen(ox, oy, seg)
		if i == 0 {
			dst.SetCell(sx, sy, '●', core.ColorBrightGreen)
		} else {
			dst.SetCell(sx, sy, '○', core.ColorCyan)
		}
	}
}
