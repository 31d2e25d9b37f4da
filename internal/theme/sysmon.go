package theme

import (
	"fmt"

	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/game"
)

// Sysmon dresses the game up as a process monitor: the snake is a process,
// food is free memory, and the HUD fakes uptime and resource gauges derived
// from the round's actual numbers.
type Sysmon struct{}

func init() {
	Register("sysmon", func() Theme { return &Sysmon{} })
}

// ID returns the theme identifier.
func (t *Sysmon) ID() string {
	return "sysmon"
}

// Title returns the display name.
func (t *Sysmon) Title() string {
	return "System Monitor"
}

// DrawMenu renders the main menu.
func (t *Sysmon) DrawMenu(dst *core.Screen, snap game.Snapshot) {
	y := dst.Height()/2 - 5

	dst.DrawTextCenteredColor(y, "┌──────────────────────────────────┐", core.ColorGray)
	dst.DrawTextCenteredColor(y+1, "│    SNAKE_PROCESS  [RUNNING]      │", core.ColorBrightGreen)
	dst.DrawTextCenteredColor(y+2, fmt.Sprintf("│    PID: 1337 | BEST: %-6d      │", snap.HighScore), core.ColorGray)
	dst.DrawTextCenteredColor(y+3, "└──────────────────────────────────┘", core.ColorGray)

	options := []string{"[START_PROCESS]", "[KILL_PROCESS]"}
	for i, opt := range options {
		cursor := "  "
		color := core.ColorWhite
		if game.MenuOption(i) == snap.Selection {
			cursor = "► "
			color = core.ColorBrightYellow
		}
		dst.DrawTextCenteredColor(y+5+i, cursor+opt, color)
	}
}

// DrawPlaying renders a live round.
func (t *Sysmon) DrawPlaying(dst *core.Screen, snap game.Snapshot) {
	t.drawBoard(dst, snap)

	if snap.Paused {
		drawOverlayBox(dst, core.ColorGray,
			[]string{"STATUS: PROCESS_SUSPENDED", "press P to resume"},
			[]core.Color{core.ColorBrightYellow, core.ColorGray})
	}
}

// DrawEnded renders the end screen over the final board.
func (t *Sysmon) DrawEnded(dst *core.Screen, snap game.Snapshot) {
	t.drawBoard(dst, snap)

	title := "STATUS: PROCESS_CRASHED"
	titleColor := core.ColorBrightRed
	if snap.Won {
		title = "STATUS: PROCESS_COMPLETE"
		titleColor = core.ColorBrightGreen
	}

	drawOverlayBox(dst, core.ColorGray,
		[]string{
			title,
			fmt.Sprintf("EXIT_SCORE: %d", snap.FinalScore),
			"[press ENTER to continue]",
		},
		[]core.Color{titleColor, core.ColorWhite, core.ColorGray})
}

// drawBoard draws the fake monitor HUD, walls, snake and foods.
func (t *Sysmon) drawBoard(dst *core.Screen, snap game.Snapshot) {
	// Gauges derived from real round state: uptime from movement ticks,
	// CPU from snake length relative to the grid, MEM from score.
	uptime := snap.Ticks / 8
	cpu := 0
	if snap.GridW*snap.GridH > 0 {
		cpu = len(snap.Snake) * 100 / (snap.GridW * snap.GridH)
	}
	mem := core.Min(snap.Score/10, 99)

	hud := fmt.Sprintf(" UPTIME: %ds | CPU: %d%% | MEM: %d%% | SCORE: %d/%d",
		uptime, cpu, mem, snap.Score, snap.HighScore)
	if snap.BoostActive {
		hud += " | TURBO"
	}
	dst.DrawTextColor(0, 0, hud, core.ColorBrightGreen)
	dst.DrawHLine(0, 1, dst.Width(), '═', core.ColorGray)

	ox, oy := boardOrigin(dst, snap)
	boardW := snap.GridW + 2
	boardH := snap.GridH + 2

	for x := 0; x < boardW; x++ {
		dst.SetCell(ox+x, oy, '▓', core.ColorGray)
		dst.SetCell(ox+x, oy+boardH-1, '▓', core.ColorGray)
	}
	for y := 0; y < boardH; y++ {
		dst.SetCell(ox, oy+y, '▓', core.ColorGray)
		dst.SetCell(ox+boardW-1, oy+y, '▓', core.ColorGray)
	}

	for _, f := range snap.Foods {
		fx, fy := cellToScreen(ox, oy, f)
		dst.SetCell(fx, fy, '*', core.ColorBrightYellow)
	}

	for i, seg := range snap.Snake {
		sx, sy := cellToScreen(ox, oy, seg)
		if i == 0 {
			dst.SetCell(sx, sy, '◆', core.ColorBrightGreen)
		} else {
			dst.SetCell(sx, sy, '◇', core.ColorCyan)
		}
	}
}
