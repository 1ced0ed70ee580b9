// Package config provides YAML-based configuration loading for the
// simulation: board size, spawn point, rendering scale and tick timing.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// SnakeConfig contains all configuration for the simulation.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Start  StartConfig  `yaml:"start"`
	Render RenderConfig `yaml:"render"`
	Timing TimingConfig `yaml:"timing"`
	Seed   int64        `yaml:"seed"` // 0 means seed from the clock
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// StartConfig is the cell the snake spawns on after every game over.
type StartConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// RenderConfig defines how the board is drawn in the terminal.
type RenderConfig struct {
	CellWidth   int `yaml:"cell_width"`   // Characters per cell horizontally
	CellHeight  int `yaml:"cell_height"`  // Characters per cell vertically
	BannerTicks int `yaml:"banner_ticks"` // How long the game-over banner stays up
}

// TimingConfig defines the simulation clock.
type TimingConfig struct {
	TickInterval Duration `yaml:"tick_interval"`
}

// Duration is a time.Duration read from and written as a string like "100ms".
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("config: duration: %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: duration %q at line %d: %w", s, node.Line, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Validate returns the first setting that cannot describe a playable board.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Width < 1 || c.Grid.Height < 1:
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalid, c.Grid.Width, c.Grid.Height)
	case c.Grid.Width*c.Grid.Height < 2:
		return fmt.Errorf("%w: grid %dx%d has no room for food", ErrInvalid, c.Grid.Width, c.Grid.Height)
	case c.Start.X < 0 || c.Start.X >= c.Grid.Width || c.Start.Y < 0 || c.Start.Y >= c.Grid.Height:
		return fmt.Errorf("%w: start (%d,%d) outside the grid", ErrInvalid, c.Start.X, c.Start.Y)
	case c.Render.CellWidth < 1 || c.Render.CellHeight < 1:
		return fmt.Errorf("%w: cell size %dx%d must be positive", ErrInvalid, c.Render.CellWidth, c.Render.CellHeight)
	case c.Render.BannerTicks < 0:
		return fmt.Errorf("%w: banner_ticks %d is negative", ErrInvalid, c.Render.BannerTicks)
	case c.Timing.TickInterval <= 0:
		return fmt.Errorf("%w: tick_interval %s must be positive", ErrInvalid, c.Timing.TickInterval.Std())
	}
	return nil
}
