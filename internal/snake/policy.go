package snake

// Policy chooses the direction of the next move.
type Policy interface {
	// Decide returns the next direction given the current heading. It must
	// always return a direction.
	Decide(g *Grid, current Direction, rng Rand) Direction
}

// PolicyFunc adapts a function to the Policy interface.
type PolicyFunc func(g *Grid, current Direction, rng Rand) Direction

// Decide calls f.
func (f PolicyFunc) Decide(g *Grid, current Direction, rng Rand) Direction {
	return f(g, current, rng)
}

// fallbackOrder is the order in which safe directions are collected before
// one is drawn at random.
var fallbackOrder = [...]Direction{DirLeft, DirRight, DirDown, DirUp}

// Autopilot follows the shortest path to the food and falls back to a greedy
// heuristic when the food is walled off.
type Autopilot struct{}

// NewAutopilot returns the default policy.
func NewAutopilot() Autopilot {
	return Autopilot{}
}

// Decide implements Policy.
//
// A path whose first step turns back into the neck is discarded. That only
// happens for a two-cell snake, where the neck is also the tail and the tail
// exemption lets the search through it.
func (Autopilot) Decide(g *Grid, current Direction, rng Rand) Direction {
	if path, ok := FindPath(g); ok && len(path) > 0 {
		next := path[0]
		if g.Len() == 1 || next != current.Opposite() {
			return next
		}
	}
	return fallback(g, current, rng)
}

// fallback picks a move when no usable path exists.
//
// It first tries to close the horizontal gap to the food, then the vertical
// one, skipping the reverse of the heading and any move onto the body (tail
// included). Failing that it draws among every non-reverse move that does not
// hit the body, and as a last resort reverses. Walls are not checked here, so
// the random draw may pick a move that leaves the grid.
func fallback(g *Grid, current Direction, rng Rand) Direction {
	head := g.Head()
	reverse := current.Opposite()

	if g.hasFood {
		dx := g.food.X - head.X
		dy := g.food.Y - head.Y

		var greedy []Direction
		switch {
		case dx > 0:
			greedy = append(greedy, DirRight)
		case dx < 0:
			greedy = append(greedy, DirLeft)
		}
		switch {
		case dy > 0:
			greedy = append(greedy, DirDown)
		case dy < 0:
			greedy = append(greedy, DirUp)
		}

		for _, d := range greedy {
			if d != reverse && !g.Occupied(head.Step(d)) {
				return d
			}
		}
	}

	var safe []Direction
	for _, d := range fallbackOrder {
		next := head.Step(d)
		if d != reverse && !g.Occupied(next) {
			safe = append(safe, d)
		}
	}
	if len(safe) > 0 {
		return safe[rng.Intn(len(safe))]
	}

	return reverse
}
