package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/autosnake/internal/core"
)

func testSettings() Settings {
	return Settings{Width: 20, Height: 20, Start: Cell{10, 10}, CellSize: core.Size{W: 2, H: 1}}
}

func newTestGame(t *testing.T, seed int64, n Notifier) *Game {
	t.Helper()
	g, err := New(testSettings(), n)
	require.NoError(t, err)
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func TestNewRejectsBadSettings(t *testing.T) {
	s := testSettings()
	s.CellSize = core.Size{W: 0, H: 1}
	_, err := New(s, nil)
	assert.ErrorIs(t, err, ErrInvalidGrid)

	s = testSettings()
	s.Start = Cell{20, 0}
	_, err = New(s, nil)
	assert.ErrorIs(t, err, ErrInvalidGrid)
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345, nil)
	g2 := newTestGame(t, 12345, nil)

	input := core.NewInputFrame()
	for i := 0; i < 2000; i++ {
		r1 := g1.Step(input)
		r2 := g2.Step(input)
		require.Equal(t, r1, r2, "tick %d", i+1)
	}
	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestGameSeedChangesFood(t *testing.T) {
	foods := map[Cell]bool{}
	for seed := int64(1); seed <= 10; seed++ {
		food, ok := newTestGame(t, seed, nil).Grid().Food()
		require.True(t, ok)
		foods[food] = true
	}
	assert.Greater(t, len(foods), 1, "ten seeds should not all place food on the same cell")
}

func TestGameOverNotifiesAndResets(t *testing.T) {
	var results []Result
	g := newTestGame(t, 42, NotifierFunc(func(r Result) {
		results = append(results, r)
	}))
	g.UsePolicy(PolicyFunc(func(*Grid, Direction, Rand) Direction {
		return DirLeft
	}))

	input := core.NewInputFrame()
	for tick := 1; tick <= 10; tick++ {
		res := g.Step(input)
		require.False(t, res.GameOver, "tick %d", tick)
	}
	assert.Equal(t, Cell{0, 10}, g.Grid().Head())

	res := g.Step(input)
	require.True(t, res.GameOver)
	require.Len(t, results, 1)

	got := results[0]
	assert.Equal(t, 1, got.Game)
	assert.Equal(t, CauseWall, got.Cause)
	assert.Equal(t, uint64(11), got.Ticks)
	assert.Equal(t, got.Score+1, got.Length)

	last, ok := g.LastResult()
	require.True(t, ok)
	assert.Equal(t, got, last)

	// The board is fresh but the run statistics carry on.
	assert.Equal(t, Cell{10, 10}, g.Grid().Head())
	assert.Equal(t, 1, g.Grid().Len())
	assert.Equal(t, DirRight, g.Grid().Heading())
	assert.Equal(t, 0, res.State.Score)
	assert.Equal(t, 1, res.State.Games)
	assert.Equal(t, uint64(11), res.State.Tick)
}

func TestGameTicksRestartPerGame(t *testing.T) {
	var results []Result
	g := newTestGame(t, 7, NotifierFunc(func(r Result) {
		results = append(results, r)
	}))
	g.UsePolicy(PolicyFunc(func(*Grid, Direction, Rand) Direction {
		return DirUp
	}))

	input := core.NewInputFrame()
	for i := 0; i < 22; i++ {
		g.Step(input)
	}

	require.Len(t, results, 2)
	assert.Equal(t, uint64(11), results[0].Ticks)
	assert.Equal(t, uint64(11), results[1].Ticks)
	assert.Equal(t, 2, results[1].Game)
}

func TestGamePauseAndStep(t *testing.T) {
	g := newTestGame(t, 1, nil)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	step := core.NewInputFrame()
	step.Set(core.ActionStep)
	none := core.NewInputFrame()

	res := g.Step(pause)
	assert.True(t, res.State.Paused)
	assert.Equal(t, uint64(0), res.State.Tick)

	res = g.Step(none)
	assert.Equal(t, uint64(0), res.State.Tick, "paused game must not advance")

	res = g.Step(step)
	assert.Equal(t, uint64(1), res.State.Tick)
	assert.True(t, res.State.Paused)

	res = g.Step(pause)
	assert.False(t, res.State.Paused)
	assert.Equal(t, uint64(2), res.State.Tick)
}

func TestGameBestScore(t *testing.T) {
	g := newTestGame(t, 3, nil)

	input := core.NewInputFrame()
	best := 0
	for i := 0; i < 3000; i++ {
		res := g.Step(input)
		if !res.GameOver {
			best = max(best, res.State.Score)
		}
		require.Equal(t, best, res.State.Best, "tick %d", i+1)
	}
	assert.Positive(t, best, "autopilot should eat at least once")
}

func TestGameResetClearsStats(t *testing.T) {
	g := newTestGame(t, 9, nil)
	g.UsePolicy(PolicyFunc(func(*Grid, Direction, Rand) Direction {
		return DirDown
	}))
	input := core.NewInputFrame()
	for i := 0; i < 15; i++ {
		g.Step(input)
	}
	require.Equal(t, 1, g.State().Games)

	g.Reset(core.RuntimeConfig{Seed: 9})

	assert.Equal(t, core.GameState{Length: 1}, g.State())
	_, ok := g.LastResult()
	assert.False(t, ok)
}

func TestNotifiersFanOut(t *testing.T) {
	var a, b int
	n := Notifiers{
		NotifierFunc(func(Result) { a++ }),
		nil,
		NotifierFunc(func(Result) { b++ }),
	}

	n.GameOver(Result{Game: 1})
	n.GameOver(Result{Game: 2})

	assert.Equal(t, 2, a)
	assert.Equal(t, 2, b)
}
