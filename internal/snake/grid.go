// Package snake implements the self-playing snake simulation: the grid model,
// a body-aware breadth-first path finder, the autopilot decision policy and
// the motion engine that advances the snake one cell per tick.
//
// Nothing in this package knows about terminals or timers; the platform
// packages schedule ticks and display the result.
package snake

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is returned when grid dimensions or the start cell cannot
// describe a playable game.
var ErrInvalidGrid = errors.New("snake: invalid grid")

// Direction is one of the four orthogonal movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// searchOrder is the neighbor expansion order of the path finder. It decides
// which of several shortest paths is returned.
var searchOrder = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Opposite returns the direct reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the cell offset of one step in direction d.
// The y axis grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Step returns the neighboring cell in direction d.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid holds the complete game state: bounds, snake body, heading, food and
// score. Only Advance mutates the snake and food during play; Reset restores
// the starting state.
type Grid struct {
	width, height int
	start         Cell

	snake   []Cell // Head at index 0
	heading Direction
	food    Cell
	hasFood bool
	score   int
}

// NewGrid creates a width x height grid whose snake starts at start, heading
// right. No food is placed until Reset is called.
func NewGrid(width, height int, start Cell) (*Grid, error) {
	if width < 1 || height < 1 || width*height < 2 {
		return nil, fmt.Errorf("%w: size %dx%d leaves no room for food", ErrInvalidGrid, width, height)
	}
	g := &Grid{width: width, height: height, start: start}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s outside %dx%d", ErrInvalidGrid, start, width, height)
	}
	g.snake = []Cell{start}
	g.heading = DirRight
	return g, nil
}

// Reset restores the starting state: a single-cell snake at the start cell
// heading right, zero score and freshly placed food.
func (g *Grid) Reset(rng Rand) {
	g.snake = append(g.snake[:0], g.start)
	g.heading = DirRight
	g.score = 0
	g.placeFood(rng)
}

// placeFood draws uniformly random cells until one is off the snake.
// A snake covering the whole grid leaves the food absent.
func (g *Grid) placeFood(rng Rand) {
	if len(g.snake) >= g.width*g.height {
		g.hasFood = false
		return
	}
	for {
		c := Cell{X: rng.Intn(g.width), Y: rng.Intn(g.height)}
		if !g.Occupied(c) {
			g.food = c
			g.hasFood = true
			return
		}
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Occupied reports whether any snake segment, tail included, is on c.
func (g *Grid) Occupied(c Cell) bool {
	for _, seg := range g.snake {
		if seg == c {
			return true
		}
	}
	return false
}

// Head returns the first snake segment.
func (g *Grid) Head() Cell {
	return g.snake[0]
}

// Tail returns the last snake segment.
func (g *Grid) Tail() Cell {
	return g.snake[len(g.snake)-1]
}

// Len returns the snake length.
func (g *Grid) Len() int {
	return len(g.snake)
}

// Body returns a copy of the snake segments, head first.
func (g *Grid) Body() []Cell {
	out := make([]Cell, len(g.snake))
	copy(out, g.snake)
	return out
}

// Heading returns the direction of the last move.
func (g *Grid) Heading() Direction {
	return g.heading
}

// Food returns the food cell and whether food is on the grid.
func (g *Grid) Food() (Cell, bool) {
	return g.food, g.hasFood
}

// Score returns the number of food items eaten since the last reset.
func (g *Grid) Score() int {
	return g.score
}

func (g *Grid) index(c Cell) int {
	return c.Y*g.width + c.X
}
