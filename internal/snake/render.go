package snake

import (
	"fmt"

	"github.com/vovakirdan/autosnake/internal/core"
)

// Glyphs used on the board.
const (
	headRune = '█'
	bodyRune = '▓'
	foodRune = '█'
)

const hudHeight = 1

// BoardSize returns the screen footprint of the board including its border.
func (g *Game) BoardSize() core.Size {
	return core.Size{
		W: g.grid.Width()*g.settings.CellSize.W + 2,
		H: g.grid.Height()*g.settings.CellSize.H + 2,
	}
}

// MinScreenSize returns the smallest screen the game can be drawn on.
func (g *Game) MinScreenSize() core.Size {
	b := g.BoardSize()
	return core.Size{W: b.W, H: b.H + hudHeight}
}

// Render draws the HUD and the board, centered horizontally.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	need := g.MinScreenSize()
	if dst.Width() < need.W || dst.Height() < need.H {
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(mid+1, fmt.Sprintf("need %dx%d", need.W, need.H), core.ColorGray)
		return
	}

	b := g.BoardSize()
	frame := core.NewRect((dst.Width()-b.W)/2, hudHeight, b.W, b.H)
	dst.DrawBox(frame, core.ColorGray)
	DrawGrid(dst, g.grid, frame.Inset(1), g.settings.CellSize)
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Score: %d  Length: %d  Best: %d  Games: %d  Tick: %d",
		g.Title(), g.grid.Score(), g.grid.Len(), g.best, g.games, g.tick)
	if g.paused {
		hud += "  [PAUSED]"
	}
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)
}

// DrawGrid paints the snake and the food of grid into area, each grid cell
// covering cell.W x cell.H screen characters starting at the area's corner.
// Cells falling outside area are skipped.
func DrawGrid(dst *core.Screen, grid *Grid, area core.Rect, cell core.Size) {
	paint := func(c Cell, r rune, color core.Color) {
		rect := core.NewRect(area.X+c.X*cell.W, area.Y+c.Y*cell.H, cell.W, cell.H)
		if !area.Contains(rect.X, rect.Y) || !area.Contains(rect.Right()-1, rect.Bottom()-1) {
			return
		}
		dst.FillRect(rect, r, color)
	}

	if food, ok := grid.Food(); ok {
		paint(food, foodRune, core.ColorBrightRed)
	}
	// Body first so the head is painted last.
	for i := len(grid.snake) - 1; i >= 1; i-- {
		paint(grid.snake[i], bodyRune, core.ColorGreen)
	}
	paint(grid.Head(), headRune, core.ColorBrightGreen)
}
