// Package headless runs the simulation without a terminal UI, for batch
// runs and benchmarks of the autopilot.
package headless

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/autosnake/internal/core"
	"github.com/vovakirdan/autosnake/internal/snake"
)

// StopReason tells why Run returned.
type StopReason string

const (
	StopCanceled StopReason = "canceled"
	StopMaxTicks StopReason = "max ticks"
	StopMaxGames StopReason = "max games"
)

// Options limits a headless run. Zero limits mean unbounded; a run with no
// limit at all ends only when its context is canceled.
type Options struct {
	Interval time.Duration // Delay between ticks, 0 runs as fast as possible
	MaxTicks uint64
	MaxGames int
	Logger   *log.Logger
}

// Summary collects the outcome of a run.
type Summary struct {
	Results []snake.Result // Finished games in order
	Ticks   uint64
	Best    int
	Current core.GameState // The game still in progress when the run stopped
	Reason  StopReason
	Elapsed time.Duration
}

// Run resets game with cfg and steps it until a limit is reached or ctx is
// canceled. Cancellation is checked between ticks only.
func Run(ctx context.Context, game *snake.Game, cfg core.RuntimeConfig, opts Options) Summary {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	logger.Info("simulation started",
		"seed", cfg.Seed,
		"interval", opts.Interval,
		"max_ticks", opts.MaxTicks,
		"max_games", opts.MaxGames,
	)

	var timer *time.Timer
	if opts.Interval > 0 {
		timer = time.NewTimer(opts.Interval)
		defer timer.Stop()
	}

	start := time.Now()
	input := core.NewInputFrame()
	var sum Summary

	for {
		if reason, done := limitReached(sum, opts); done {
			sum.Reason = reason
			break
		}

		if timer != nil {
			select {
			case <-ctx.Done():
			case <-timer.C:
			}
		}
		if ctx.Err() != nil {
			sum.Reason = StopCanceled
			break
		}

		res := game.Step(input)
		sum.Ticks = res.State.Tick
		sum.Best = res.State.Best
		if res.GameOver {
			if r, ok := game.LastResult(); ok {
				sum.Results = append(sum.Results, r)
			}
		}

		if timer != nil {
			timer.Reset(opts.Interval)
		}
	}

	sum.Current = game.State()
	sum.Elapsed = time.Since(start)
	logger.Info("simulation stopped",
		"reason", string(sum.Reason),
		"ticks", sum.Ticks,
		"games", len(sum.Results),
		"best", sum.Best,
		"elapsed", sum.Elapsed.Round(time.Millisecond),
	)
	return sum
}

func limitReached(sum Summary, opts Options) (StopReason, bool) {
	if opts.MaxGames > 0 && len(sum.Results) >= opts.MaxGames {
		return StopMaxGames, true
	}
	if opts.MaxTicks > 0 && sum.Ticks >= opts.MaxTicks {
		return StopMaxTicks, true
	}
	return "", false
}
