package headless

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/autosnake/internal/snake"
)

// LogNotifier writes one structured line per finished game.
type LogNotifier struct {
	logger *log.Logger
}

// NewLogNotifier returns a notifier logging to logger at info level.
func NewLogNotifier(logger *log.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// GameOver implements snake.Notifier.
func (n *LogNotifier) GameOver(r snake.Result) {
	n.logger.Info("game over",
		"game", r.Game,
		"score", r.Score,
		"length", r.Length,
		"ticks", r.Ticks,
		"cause", r.Cause.String(),
	)
}
