package snake

import (
	"fmt"

	"github.com/vovakirdan/grid-snake/internal/core"
)

const hudHeight = 2 // Score line plus separator

// Board cell contents, ordered by drawing priority.
type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellBody
	cellFruit
	cellHead
)

var cellColors = map[cellKind]core.Color{
	cellBody:  core.ColorGreen,
	cellFruit: core.ColorBrightRed,
	cellHead:  core.ColorBrightGreen,
}

// BoardRect returns where the framed board is drawn on a screen of the given
// size. Each terminal row holds two grid rows using half-block glyphs, so a
// cell renders roughly square.
func (g *Game) BoardRect(screenW int) core.Rect {
	cols, rows := g.settings.bounds.GridSize()
	w := cols + 2
	h := (rows+1)/2 + 2
	return core.NewRect((screenW-w)/2, hudHeight, w, h)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	board := g.BoardRect(dst.Width())
	if board.X < 0 || board.Bottom() > dst.Height() {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", board.W, board.Bottom()))
		return
	}

	dst.DrawBox(board, core.ColorGray)
	g.renderBoard(dst, board.Inset(1))

	switch {
	case g.status == StatusGameOver:
		g.renderOverlay(dst,
			fmt.Sprintf("Your score is: %d", g.score.Score),
			fmt.Sprintf("High score: %d", g.score.HighScore),
			"Press R to restart!")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  High: %d", g.variant.Title, g.score.Score, g.score.HighScore)
	dst.DrawText(0, 0, hud)
	if g.score.Beat {
		dst.DrawTextColored(len([]rune(hud))+2, 0, "NEW HIGH SCORE!", core.ColorBrightYellow)
	}

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderBoard draws the body and fruit inside area.
func (g *Game) renderBoard(dst *core.Screen, area core.Rect) {
	cols, rows := g.settings.bounds.GridSize()
	grid := make([]cellKind, cols*rows)
	inside := core.NewRect(0, 0, cols, rows)
	mark := func(p Position, k cellKind) {
		c, r := g.settings.bounds.Cell(p)
		if !inside.Contains(c, r) {
			return
		}
		if k > grid[r*cols+c] {
			grid[r*cols+c] = k
		}
	}

	if g.body != nil {
		for _, p := range g.body.Cells() {
			mark(p, cellBody)
		}
		mark(g.body.Head(), cellHead)
	}
	if g.fruit.Present {
		mark(g.fruit.Pos, cellFruit)
	}

	for r := 0; r < rows; r += 2 {
		for c := 0; c < cols; c++ {
			top := grid[r*cols+c]
			bottom := cellEmpty
			if r+1 < rows {
				bottom = grid[(r+1)*cols+c]
			}

			var glyph rune
			switch {
			case top == cellEmpty && bottom == cellEmpty:
				continue
			case bottom == cellEmpty:
				glyph = '▀'
			case top == cellEmpty:
				glyph = '▄'
			default:
				glyph = '█'
			}
			dst.SetColored(area.X+c, area.Y+r/2, glyph, cellColors[max(top, bottom)])
		}
	}
}

// renderOverlay draws a centered framed message.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	// Centered on the screen, pinned to the top-left when it does not fit.
	cx, cy := core.NewRect(0, 0, dst.Width(), dst.Height()).Center()
	box := core.NewRect(0, 0, width+4, len(lines)*2+1)
	box.X = core.Clamp(cx-box.W/2, 0, max(0, dst.Width()-box.W))
	box.Y = core.Clamp(cy-box.H/2, 0, max(0, dst.Height()-box.H))

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		color := core.ColorRed
		if i == len(lines)-1 && len(lines) > 2 {
			color = core.ColorGreen
		}
		dst.DrawTextCentered(box.Y+1+i*2, l, color)
	}
}
