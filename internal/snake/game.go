package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/autosnake/internal/core"
)

// Settings describes the board of a Game.
type Settings struct {
	Width    int       // Grid columns
	Height   int       // Grid rows
	Start    Cell      // Where the snake spawns on every reset
	CellSize core.Size // Screen characters per grid cell
}

// Game runs the autonomous simulation: each Step decides a direction,
// advances the snake, and on game over notifies and starts a fresh game.
type Game struct {
	settings Settings
	grid     *Grid
	policy   Policy
	notifier Notifier
	rng      *rand.Rand

	tick      uint64 // Simulated ticks since Reset
	gameTicks uint64 // Ticks in the current game
	games     int    // Completed games
	best      int
	paused    bool
	last      *Result
}

// New creates a game with the given board. The notifier may be nil.
func New(s Settings, notifier Notifier) (*Game, error) {
	if s.CellSize.W < 1 || s.CellSize.H < 1 {
		return nil, fmt.Errorf("%w: cell size %dx%d", ErrInvalidGrid, s.CellSize.W, s.CellSize.H)
	}
	grid, err := NewGrid(s.Width, s.Height, s.Start)
	if err != nil {
		return nil, err
	}
	return &Game{
		settings: s,
		grid:     grid,
		policy:   NewAutopilot(),
		notifier: notifier,
		rng:      rand.New(rand.NewSource(0)),
	}, nil
}

// UsePolicy replaces the autopilot. Intended for tests and experiments.
func (g *Game) UsePolicy(p Policy) {
	g.policy = p
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "autosnake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Autosnake"
}

// Reset reseeds the random source and starts over, clearing statistics.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.gameTicks = 0
	g.games = 0
	g.best = 0
	g.paused = false
	g.last = nil
	g.grid.Reset(g.rng)
}

// Step advances the simulation by one tick unless paused.
// ActionStep runs a single tick while paused.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused && !input.Has(core.ActionStep) {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.gameTicks++

	dir := g.policy.Decide(g.grid, g.grid.Heading(), g.rng)
	out := Advance(g.grid, dir, g.rng)
	if !out.GameOver {
		g.best = max(g.best, out.Score)
		return core.StepResult{State: g.State()}
	}

	g.games++
	res := Result{
		Game:   g.games,
		Score:  out.Score,
		Length: g.grid.Len(),
		Ticks:  g.gameTicks,
		Cause:  out.Cause,
	}
	g.last = &res
	if g.notifier != nil {
		g.notifier.GameOver(res)
	}

	g.grid.Reset(g.rng)
	g.gameTicks = 0
	return core.StepResult{State: g.State(), GameOver: true}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.grid.Score(),
		Length: g.grid.Len(),
		Tick:   g.tick,
		Games:  g.games,
		Best:   g.best,
		Paused: g.paused,
	}
}

// Grid exposes the board for read-only use by renderers and tests.
func (g *Game) Grid() *Grid {
	return g.grid
}

// LastResult returns the most recent finished game, if any.
func (g *Game) LastResult() (Result, bool) {
	if g.last == nil {
		return Result{}, false
	}
	return *g.last, true
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Game: %d, Score: %d, Best: %d\n", g.tick, g.games+1, g.grid.Score(), g.best)
	fmt.Fprintf(&b, "Snake len: %d, Heading: %s, Head: %s\n", g.grid.Len(), g.grid.Heading(), g.grid.Head())
	if food, ok := g.grid.Food(); ok {
		fmt.Fprintf(&b, "Food: %s\n", food)
	} else {
		b.WriteString("Food: none\n")
	}
	fmt.Fprintf(&b, "Paused: %v\n", g.paused)
	return b.String()
}
