package snake

// Rand is the random source used for food placement and for the autopilot's
// random fallback. *math/rand.Rand satisfies it; tests pass scripted sources.
type Rand interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}
