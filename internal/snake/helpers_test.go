package snake

import (
	"math/rand"
	"testing"
)

// seqRand replays a fixed sequence of values, each reduced modulo n.
type seqRand struct {
	vals  []int
	calls int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.calls%len(r.vals)]
	r.calls++
	return v % n
}

// newTestGrid builds a grid with an explicit body, heading and food.
func newTestGrid(t *testing.T, w, h int, body []Cell, heading Direction, food Cell) *Grid {
	t.Helper()
	g, err := NewGrid(w, h, body[0])
	if err != nil {
		t.Fatalf("NewGrid(%d, %d, %v) failed: %v", w, h, body[0], err)
	}
	g.snake = append([]Cell(nil), body...)
	g.heading = heading
	g.food = food
	g.hasFood = true
	return g
}

// randomGrid builds a w x h grid holding a random self-avoiding snake of up
// to maxLen cells and food on a random free cell.
func randomGrid(t *testing.T, rng *rand.Rand, w, h, maxLen int) *Grid {
	t.Helper()
	taken := map[Cell]bool{}
	head := Cell{X: rng.Intn(w), Y: rng.Intn(h)}
	body := []Cell{head}
	taken[head] = true

	target := 1 + rng.Intn(maxLen)
	for len(body) < target {
		last := body[len(body)-1]
		var options []Cell
		for _, d := range searchOrder {
			n := last.Step(d)
			if n.X >= 0 && n.X < w && n.Y >= 0 && n.Y < h && !taken[n] {
				options = append(options, n)
			}
		}
		if len(options) == 0 {
			break
		}
		next := options[rng.Intn(len(options))]
		body = append(body, next)
		taken[next] = true
	}

	var free []Cell
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c := (Cell{X: x, Y: y}); !taken[c] {
				free = append(free, c)
			}
		}
	}
	food := free[rng.Intn(len(free))]

	heading := DirRight
	if len(body) > 1 {
		heading = directionBetween(body[1], body[0])
	}
	return newTestGrid(t, w, h, body, heading, food)
}

func directionBetween(from, to Cell) Direction {
	for _, d := range searchOrder {
		if from.Step(d) == to {
			return d
		}
	}
	return DirRight
}

// bruteForceDistance relaxes distances over the free cells until nothing
// changes. The tail counts as free, like in FindPath.
func bruteForceDistance(g *Grid) (int, bool) {
	const inf = 1 << 30
	dist := map[Cell]int{}
	free := func(c Cell) bool {
		if !g.InBounds(c) {
			return false
		}
		return c == g.Tail() || !g.Occupied(c)
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			dist[Cell{X: x, Y: y}] = inf
		}
	}
	dist[g.Head()] = 0

	for changed := true; changed; {
		changed = false
		for c, dc := range dist {
			if c == g.Head() || !free(c) {
				continue
			}
			for _, d := range searchOrder {
				n := c.Step(d)
				if dn, ok := dist[n]; ok && dn+1 < dc {
					dc = dn + 1
					dist[c] = dc
					changed = true
				}
			}
		}
	}

	d := dist[g.food]
	return d, d < inf
}
