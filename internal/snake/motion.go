package snake

// DeathCause tells why a game ended.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseWall
	CauseSelf
)

func (c DeathCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "none"
	}
}

// Outcome is the result of one Advance call.
type Outcome struct {
	GameOver bool
	Ate      bool
	Score    int // Score after the move, or the final score on game over
	Cause    DeathCause
}

// Advance moves the snake one cell in direction dir.
//
// Leaving the grid or running into any segment of the body as it was before
// the move ends the game. The tail is included in that check, so chasing the
// tail tightly is fatal even though the path finder treats the tail as free.
// On game over the grid is left untouched; resetting is the caller's job.
//
// Moving onto the food grows the snake by one, bumps the score and places new
// food off the body.
func Advance(g *Grid, dir Direction, rng Rand) Outcome {
	next := g.Head().Step(dir)

	if !g.InBounds(next) {
		return Outcome{GameOver: true, Score: g.score, Cause: CauseWall}
	}
	if g.Occupied(next) {
		return Outcome{GameOver: true, Score: g.score, Cause: CauseSelf}
	}

	g.heading = dir
	g.snake = append(g.snake, Cell{})
	copy(g.snake[1:], g.snake[:len(g.snake)-1])
	g.snake[0] = next

	if g.hasFood && next == g.food {
		g.score++
		g.placeFood(rng)
		return Outcome{Ate: true, Score: g.score}
	}

	g.snake = g.snake[:len(g.snake)-1]
	return Outcome{Score: g.score}
}
