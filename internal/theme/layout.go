package theme

import (
	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/game"
)

// hudHeight is the number of rows reserved above the board.
const hudHeight = 2

// boardOrigin returns the top-left screen position of the wall ring.
// The board (interior plus a one-cell wall border) is centered horizontally
// and sits below the HUD.
func boardOrigin(dst *core.Screen, snap game.Snapshot) (int, int) {
	boardW := snap.GridW + 2
	boardH := snap.GridH + 2

	ox := (dst.Width() - boardW) / 2
	oy := hudHeight + (dst.Height()-hudHeight-boardH)/2
	if oy < hudHeight {
		oy = hudHeight
	}
	return ox, oy
}

// cellToScreen maps an interior grid coordinate to screen coordinates,
// accounting for the wall ring.
func cellToScreen(ox, oy int, p core.Point) (int, int) {
	return ox + 1 + p.X, oy + 1 + p.Y
}

// drawOverlayBox draws a bordered message box centered on the board area
// with up to three text lines. Lines are drawn in the given color; the box
// itself uses boxColor.
func drawOverlayBox(dst *core.Screen, boxColor core.Color, lines []string, colors []core.Color) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 6
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), boxColor)

	for i, line := range lines {
		c := core.ColorDefault
		if i < len(colors) {
			c = colors[i]
		}
		dst.DrawTextCenteredColor(boxY+2+i, line, c)
	}
}
