package snake

// FindPath returns the shortest sequence of moves that brings the head onto
// the food, or false if the food cannot be reached.
//
// The search is a breadth-first walk over in-bounds cells not covered by the
// snake. The tail cell counts as free because it moves away on the same tick
// the head would arrive. This ignores the tick on which the snake grows and the
// tail stays put; the approximation is intentional.
//
// Cells are marked when enqueued, so each is expanded at most once. Neighbors
// are explored up, down, left, right, which fixes the choice among equally
// short paths. The grid is not modified.
func FindPath(g *Grid) ([]Direction, bool) {
	if !g.hasFood {
		return nil, false
	}

	start := g.Head()
	if start == g.food {
		return []Direction{}, true
	}

	blocked := make([]bool, g.width*g.height)
	for _, seg := range g.snake {
		blocked[g.index(seg)] = true
	}
	blocked[g.index(g.Tail())] = false

	visited := make([]bool, g.width*g.height)
	via := make([]Direction, g.width*g.height) // move that first reached each cell
	visited[g.index(start)] = true

	queue := []Cell{start}
	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		for _, d := range searchOrder {
			next := cur.Step(d)
			if !g.InBounds(next) {
				continue
			}
			idx := g.index(next)
			if visited[idx] || blocked[idx] {
				continue
			}
			visited[idx] = true
			via[idx] = d
			if next == g.food {
				return tracePath(g, via, start, next), true
			}
			queue = append(queue, next)
		}
	}
	return nil, false
}

// tracePath walks the via table back from target to start.
func tracePath(g *Grid, via []Direction, start, target Cell) []Direction {
	var path []Direction
	for cur := target; cur != start; {
		d := via[g.index(cur)]
		path = append(path, d)
		cur = cur.Step(d.Opposite())
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
