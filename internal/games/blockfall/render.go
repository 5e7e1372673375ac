package blockfall

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

const (
	cellWidth  = 2  // Terminal columns per well cell
	hudHeight  = 1  // Title line above the well
	panelGap   = 2  // Columns between well and side panel
	holdBoxW   = 10 // Four cells plus borders
	holdBoxH   = 4  // Two cells plus borders
	panelWidth = 14
	statLines  = 3
)

// panelHeight covers the HOLD label, the box, the counters and one row
// per piece kind, with a blank line between groups.
const panelHeight = 1 + holdBoxH + 1 + statLines + 1 + engine.KindCount

// requiredSize returns the smallest terminal that fits the whole layout.
func (g *Game) requiredSize() (int, int) {
	wellW := g.cfg.Board.Width*cellWidth + 2
	wellH := g.cfg.Board.Height + 2
	return wellW + panelGap + panelWidth, hudHeight + max(wellH, panelHeight)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.configErr != nil {
		g.renderConfigError(dst)
		return
	}
	if g.eng == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	reqW, reqH := g.requiredSize()
	area := core.NewRect(0, 0, dst.Width(), dst.Height()).CenterIn(reqW, reqH)
	well := core.NewRect(area.X, area.Y+hudHeight, g.cfg.Board.Width*cellWidth+2, g.cfg.Board.Height+2)

	g.renderHUD(dst, area)
	g.renderWell(dst, well)
	g.renderPanel(dst, well.Right()+panelGap, well.Y)
	g.renderOverlays(dst, well)
}

// renderHUD draws the title line.
func (g *Game) renderHUD(dst *core.Screen, area core.Rect) {
	dst.DrawTextColored(area.X, area.Y, g.Title(), core.ColorWhite)
}

// renderWell draws the border, the locked cells and the active piece.
func (g *Game) renderWell(dst *core.Screen, well core.Rect) {
	dst.DrawBox(well, core.ColorGray)

	board := g.eng.Board()
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			cell := board.Get(x, y)
			switch {
			case cell.Filled:
				drawBlock(dst, well, x, y, cell.Color)
			case g.cfg.Display.GridDots:
				dst.SetColored(well.X+1+x*cellWidth+1, well.Y+1+y, '.', core.ColorDarkGray)
			}
		}
	}

	if g.eng.IsGameOver() {
		return
	}
	cur := g.eng.Current()
	for _, c := range cur.Cells() {
		if c.Y >= 0 {
			drawBlock(dst, well, c.X, c.Y, cur.Color())
		}
	}
}

// drawBlock fills one well cell.
func drawBlock(dst *core.Screen, well core.Rect, x, y int, c core.Color) {
	px := well.X + 1 + x*cellWidth
	py := well.Y + 1 + y
	for i := range cellWidth {
		dst.SetColored(px+i, py, '█', c)
	}
}

// renderPanel draws the held piece box, the session counters and how many
// pieces of each kind were locked.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, "HOLD")
	box := core.NewRect(x, y+1, holdBoxW, holdBoxH)
	boxColor := core.ColorGray
	if !g.eng.CanHold() {
		boxColor = core.ColorDarkGray
	}
	dst.DrawBox(box, boxColor)

	if kind, ok := g.eng.Held(); ok {
		preview := engine.NewPiece(kind, 0, 0)
		for _, c := range preview.Cells() {
			drawBlock(dst, box, c.X, c.Y, preview.Color())
		}
	}

	stats := g.eng.Stats()
	lines := []string{
		fmt.Sprintf("Lines  %d", stats.Lines),
		fmt.Sprintf("Pieces %d", stats.Pieces),
		fmt.Sprintf("Holds  %d", stats.Holds),
	}
	for i, line := range lines {
		dst.DrawText(x, box.Bottom()+1+i, line)
	}

	row := box.Bottom() + 1 + statLines + 1
	for k := range engine.Kind(engine.KindCount) {
		line := fmt.Sprintf("%-2s %4d", k, stats.Locked(k))
		dst.DrawTextColored(x, row+int(k), line, engine.Shapes[k].Color)
	}
}

// renderOverlays draws pause and game over messages over the well.
func (g *Game) renderOverlays(dst *core.Screen, well core.Rect) {
	if g.paused {
		drawOverlay(dst, well, "PAUSED", "P to resume")
		return
	}
	if g.eng.IsGameOver() {
		drawOverlay(dst, well, "GAME OVER", fmt.Sprintf("Lines: %d", g.eng.Score()), "R to restart")
	}
}

// drawOverlay draws a boxed message centered on the given area.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := area.CenterIn(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	for i, line := range lines {
		x := box.X + (box.W-len(line))/2
		dst.DrawTextColored(x, box.Y+1+i, line, core.ColorWhite)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	reqW, reqH := g.requiredSize()
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", reqW, reqH, dst.Width(), dst.Height()))
}

// renderConfigError shows why the game could not start.
func (g *Game) renderConfigError(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Configuration error")
	msg := truncateRunes(g.configErr.Error(), dst.Width())
	dst.DrawTextCentered(y, msg)
	dst.DrawTextCentered(y+2, "Press Q to quit")
}

// truncateRunes shortens s to at most n runes.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
