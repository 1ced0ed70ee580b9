package core

// RuntimeConfig contains the terminal-facing settings passed to the game at
// initialization. Grid settings live in the config package.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic runs
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState summarizes the simulation for the platform layer.
type GameState struct {
	Score  int    // Score of the game in progress
	Length int    // Snake length
	Tick   uint64 // Ticks since the process started
	Games  int    // Completed games (game overs)
	Best   int    // Best score seen in this process
	Paused bool
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
	// GameOver is set on the tick that ended a game. The game has already
	// been reset when the result is returned.
	GameOver bool
}
