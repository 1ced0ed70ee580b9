package snake

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceMoves(t *testing.T) {
	g := newTestGrid(t, 10, 10, []Cell{{5, 5}, {4, 5}, {3, 5}}, DirRight, Cell{9, 9})

	out := Advance(g, DirUp, &seqRand{vals: []int{0}})

	assert.Equal(t, Outcome{Score: 0}, out)
	assert.Equal(t, []Cell{{5, 4}, {5, 5}, {4, 5}}, g.Body())
	assert.Equal(t, DirUp, g.Heading())
	assert.Equal(t, 0, g.Score())
}

func TestAdvanceEats(t *testing.T) {
	g := newTestGrid(t, 10, 10, []Cell{{5, 5}, {4, 5}}, DirRight, Cell{6, 5})
	rng := rand.New(rand.NewSource(3))

	out := Advance(g, DirRight, rng)

	assert.True(t, out.Ate)
	assert.False(t, out.GameOver)
	assert.Equal(t, 1, out.Score)
	assert.Equal(t, 1, g.Score())
	assert.Equal(t, []Cell{{6, 5}, {5, 5}, {4, 5}}, g.Body())

	food, ok := g.Food()
	require.True(t, ok)
	assert.False(t, g.Occupied(food), "new food %v placed on the snake", food)
	assert.True(t, g.InBounds(food))
}

func TestAdvanceFoodRedrawsUntilFree(t *testing.T) {
	// 3x1 grid: after eating at (1,0) the snake covers (0,0) and (1,0).
	// Draws are (x, y) pairs: (0,0) taken, (1,0) taken, (2,0) free.
	g := newTestGrid(t, 3, 1, []Cell{{0, 0}}, DirRight, Cell{1, 0})
	rng := &seqRand{vals: []int{0, 0, 1, 0, 2, 0}}

	out := Advance(g, DirRight, rng)

	require.True(t, out.Ate)
	food, ok := g.Food()
	require.True(t, ok)
	assert.Equal(t, Cell{2, 0}, food)
	assert.Equal(t, 6, rng.calls)
}

func TestAdvanceFillsGrid(t *testing.T) {
	g := newTestGrid(t, 2, 1, []Cell{{0, 0}}, DirRight, Cell{1, 0})

	out := Advance(g, DirRight, &seqRand{vals: []int{0}})

	assert.True(t, out.Ate)
	_, ok := g.Food()
	assert.False(t, ok, "no room left for food")
	assert.Equal(t, 2, g.Len())
}

func TestAdvanceCollisions(t *testing.T) {
	tests := []struct {
		name  string
		body  []Cell
		dir   Direction
		cause DeathCause
	}{
		{"left wall", []Cell{{0, 3}}, DirLeft, CauseWall},
		{"right wall", []Cell{{5, 3}, {4, 3}}, DirRight, CauseWall},
		{"top wall", []Cell{{2, 0}}, DirUp, CauseWall},
		{"bottom wall", []Cell{{2, 5}, {2, 4}}, DirDown, CauseWall},
		{"neck", []Cell{{2, 2}, {1, 2}}, DirLeft, CauseSelf},
		{"body", []Cell{{2, 2}, {2, 3}, {3, 3}, {3, 2}, {3, 1}}, DirRight, CauseSelf},
		// The tail has not moved yet when the head arrives.
		{"tail", []Cell{{2, 2}, {2, 3}, {3, 3}, {3, 2}}, DirRight, CauseSelf},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGrid(t, 6, 6, tc.body, DirUp, Cell{5, 0})
			g.score = 4
			before := g.Body()

			out := Advance(g, tc.dir, &seqRand{vals: []int{0}})

			assert.True(t, out.GameOver)
			assert.Equal(t, tc.cause, out.Cause)
			assert.Equal(t, 4, out.Score)
			assert.Equal(t, before, g.Body(), "snake must not change on game over")
			assert.Equal(t, DirUp, g.Heading())
			assert.Equal(t, 4, g.Score())
		})
	}
}

func TestAdvanceScoreAndLengthProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 300; i++ {
		g := randomGrid(t, rng, 7, 7, 12)
		d := searchOrder[rng.Intn(len(searchOrder))]
		next := g.Head().Step(d)
		if !g.InBounds(next) || g.Occupied(next) {
			continue
		}
		lenBefore, scoreBefore := g.Len(), g.Score()
		food := g.food

		out := Advance(g, d, rng)
		require.False(t, out.GameOver)

		if next == food {
			assert.Equal(t, lenBefore+1, g.Len())
			assert.Equal(t, scoreBefore+1, g.Score())
		} else {
			assert.Equal(t, lenBefore, g.Len())
			assert.Equal(t, scoreBefore, g.Score())
		}
	}
}

func TestSimulationScenario(t *testing.T) {
	// 20x20, single cell at (10,10) heading right, food five cells east.
	g := newTestGrid(t, 20, 20, []Cell{{10, 10}}, DirRight, Cell{15, 10})
	rng := rand.New(rand.NewSource(1))
	pilot := NewAutopilot()

	path, ok := FindPath(g)
	require.True(t, ok)
	assert.Equal(t, []Direction{DirRight, DirRight, DirRight, DirRight, DirRight}, path)

	for tick := 1; tick <= 5; tick++ {
		dir := pilot.Decide(g, g.Heading(), rng)
		out := Advance(g, dir, rng)
		require.False(t, out.GameOver, "tick %d", tick)
	}

	assert.Equal(t, 1, g.Score())
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, Cell{15, 10}, g.Head())
	food, ok := g.Food()
	require.True(t, ok)
	assert.NotEqual(t, Cell{15, 10}, food)
	assert.False(t, g.Occupied(food))
}
