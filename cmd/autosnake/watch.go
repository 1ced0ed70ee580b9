package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/autosnake/internal/core"
	"github.com/vovakirdan/autosnake/internal/platform/headless"
	"github.com/vovakirdan/autosnake/internal/platform/tui"
	"github.com/vovakirdan/autosnake/internal/snake"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the autopilot play",
	Long: `Run the simulation in the terminal. A new game starts immediately after
every game over; the result stays on screen for a few ticks.

Controls:
  P/Space    - Pause
  N          - Single step while paused
  Ctrl+S     - Save a screenshot to ~/.autosnake/screenshots
  Q/Ctrl+C   - Quit

Logs are discarded unless --log-file is given.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	banner := tui.NewBanner(cfg.Render.BannerTicks)
	game, err := newGame(cfg, snake.Notifiers{banner, headless.NewLogNotifier(logger)})
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.Seed = cfg.Seed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	return tui.Run(game, rt, tui.Options{
		Interval: cfg.Timing.TickInterval.Std(),
		Banner:   banner,
		Logger:   logger,
	})
}
