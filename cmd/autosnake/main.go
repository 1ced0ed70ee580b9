// autosnake is a snake that plays itself in the terminal.
//
// Usage:
//
//	autosnake watch     - Watch the autopilot play in a TUI
//	autosnake sim       - Run games headless and print a summary
//	autosnake config    - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - RNG seed for reproducible runs
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/autosnake/internal/config"
	"github.com/vovakirdan/autosnake/internal/core"
	"github.com/vovakirdan/autosnake/internal/snake"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "autosnake",
	Short: "Autosnake - a snake that plays itself",
	Long: `Autosnake runs a classic snake game driven by an autopilot. The snake
follows the shortest path to the food, treating the tail cell as free, and
falls back to a greedy move when the food is walled off.

Available commands:
  watch    - Watch the autopilot in the terminal
  sim      - Run games headless and print statistics
  config   - Print the effective configuration

Examples:
  autosnake watch
  autosnake watch --seed 42 --config ./snake.yaml
  autosnake sim --games 100
  autosnake config > ~/.autosnake/configs/snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time), overrides the config")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads and validates the configuration, applying the --seed
// override when the flag was given.
func loadConfig(cmd *cobra.Command) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	if f := cmd.Flag("seed"); f != nil && f.Changed {
		cfg.Seed = flagSeed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the process logger. Output goes to --log-file when set,
// otherwise to fallback. The returned function closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "autosnake",
		Level:           level,
	})
	return logger, closeFn, nil
}

// newGame builds a game from the configuration.
func newGame(cfg config.SnakeConfig, notifier snake.Notifier) (*snake.Game, error) {
	return snake.New(snake.Settings{
		Width:    cfg.Grid.Width,
		Height:   cfg.Grid.Height,
		Start:    snake.Cell{X: cfg.Start.X, Y: cfg.Start.Y},
		CellSize: core.Size{W: cfg.Render.CellWidth, H: cfg.Render.CellHeight},
	}, notifier)
}
