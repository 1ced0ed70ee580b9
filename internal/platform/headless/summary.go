package headless

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	totalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MeanScore returns the average score over finished games.
func (s Summary) MeanScore() float64 {
	if len(s.Results) == 0 {
		return 0
	}
	total := 0
	for _, r := range s.Results {
		total += r.Score
	}
	return float64(total) / float64(len(s.Results))
}

// Causes counts finished games per death cause name.
func (s Summary) Causes() map[string]int {
	out := make(map[string]int)
	for _, r := range s.Results {
		out[r.Cause.String()]++
	}
	return out
}

// Render formats the per-game results as a table followed by totals.
func (s Summary) Render() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("GAME", "SCORE", "LENGTH", "TICKS", "CAUSE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range s.Results {
		t.Row(
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Length),
			strconv.FormatUint(r.Ticks, 10),
			r.Cause.String(),
		)
	}

	var b strings.Builder
	if len(s.Results) > 0 {
		b.WriteString(t.Render())
		b.WriteString("\n")
	} else {
		b.WriteString("No game finished.\n")
	}

	causes := s.Causes()
	totals := fmt.Sprintf("games %d  ticks %d  best %d  mean %.2f  wall %d  self %d  (%s)",
		len(s.Results), s.Ticks, s.Best, s.MeanScore(), causes["wall"], causes["self"], s.Reason)
	if s.Current.Score > 0 {
		totals += fmt.Sprintf("\nunfinished game: score %d  length %d", s.Current.Score, s.Current.Length)
	}
	b.WriteString(totalStyle.Render(totals))
	return b.String()
}
