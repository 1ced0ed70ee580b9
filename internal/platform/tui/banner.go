package tui

import (
	"fmt"

	"github.com/vovakirdan/autosnake/internal/core"
	"github.com/vovakirdan/autosnake/internal/snake"
)

// Banner is a snake.Notifier that overlays the result of the last game on
// the board for a fixed number of ticks while the next game runs.
type Banner struct {
	ticks     int
	remaining int
	result    snake.Result
}

// NewBanner returns a banner that stays up for ticks simulation ticks.
// A zero duration disables it.
func NewBanner(ticks int) *Banner {
	return &Banner{ticks: ticks}
}

// GameOver implements snake.Notifier.
func (b *Banner) GameOver(r snake.Result) {
	b.result = r
	b.remaining = b.ticks
}

// Tick counts down one simulation tick.
func (b *Banner) Tick() {
	if b.remaining > 0 {
		b.remaining--
	}
}

// Visible reports whether the banner is currently shown.
func (b *Banner) Visible() bool {
	return b.remaining > 0
}

// Draw paints the banner centered on dst when visible.
func (b *Banner) Draw(dst *core.Screen) {
	if !b.Visible() {
		return
	}

	lines := []string{
		fmt.Sprintf("GAME %d OVER", b.result.Game),
		fmt.Sprintf("hit %s", b.result.Cause),
		fmt.Sprintf("score %d  length %d", b.result.Score, b.result.Length),
	}
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2

	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorYellow)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, core.ColorYellow)
	}
}
