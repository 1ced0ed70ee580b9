package snake

// Result describes a finished game.
type Result struct {
	Game   int        // 1-based game number within the process
	Score  int        // Food eaten
	Length int        // Snake length at the time of death
	Ticks  uint64     // Ticks the game lasted, including the fatal one
	Cause  DeathCause // What the head ran into
}

// Notifier receives game-over notices. Calls are fire-and-forget: the game
// resets right after GameOver returns.
type Notifier interface {
	GameOver(r Result)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(r Result)

// GameOver calls f.
func (f NotifierFunc) GameOver(r Result) {
	f(r)
}

// Notifiers fans a notice out to several notifiers in order.
type Notifiers []Notifier

// GameOver implements Notifier.
func (ns Notifiers) GameOver(r Result) {
	for _, n := range ns {
		if n != nil {
			n.GameOver(r)
		}
	}
}
