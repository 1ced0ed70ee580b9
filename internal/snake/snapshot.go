package snake

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Games   int
	Score   int
	Best    int
	Length  int
	Head    Cell
	Heading Direction
	Food    Cell
	HasFood bool
	Paused  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	food, ok := g.grid.Food()
	return Snapshot{
		Tick:    g.tick,
		Games:   g.games,
		Score:   g.grid.Score(),
		Best:    g.best,
		Length:  g.grid.Len(),
		Head:    g.grid.Head(),
		Heading: g.grid.Heading(),
		Food:    food,
		HasFood: ok,
		Paused:  g.paused,
	}
}
