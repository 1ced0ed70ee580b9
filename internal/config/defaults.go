package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid:  GridConfig{Width: 20, Height: 20},
		Start: StartConfig{X: 10, Y: 10},
		Render: RenderConfig{
			CellWidth:   2,
			CellHeight:  1,
			BannerTicks: 10,
		},
		Timing: TimingConfig{TickInterval: Duration(100 * time.Millisecond)},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
