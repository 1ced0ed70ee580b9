package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/autosnake/internal/core"
	"github.com/vovakirdan/autosnake/internal/platform/headless"
)

var (
	flagGames    int
	flagMaxTicks uint64
	flagInterval time.Duration
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run games headless and print a summary",
	Long: `Run the simulation without a UI and print one row per finished game.

With no limit the run continues until interrupted with Ctrl+C; the summary is
printed either way.

Examples:
  autosnake sim --games 100
  autosnake sim --max-ticks 100000 --seed 7
  autosnake sim --games 5 --interval 100ms --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagGames, "games", 10, "Stop after this many finished games (0 = no limit)")
	simCmd.Flags().Uint64Var(&flagMaxTicks, "max-ticks", 0, "Stop after this many ticks (0 = no limit)")
	simCmd.Flags().DurationVar(&flagInterval, "interval", 0, "Delay between ticks (0 = as fast as possible)")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := newGame(cfg, headless.NewLogNotifier(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum := headless.Run(ctx, game, core.RuntimeConfig{Seed: cfg.Seed}, headless.Options{
		Interval: flagInterval,
		MaxTicks: flagMaxTicks,
		MaxGames: flagGames,
		Logger:   logger,
	})

	fmt.Fprintln(cmd.OutOrStdout(), sum.Render())
	return nil
}
