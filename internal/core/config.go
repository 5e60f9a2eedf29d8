package core

// RuntimeConfig contains configuration passed to the visualizer at startup.
// It carries the terminal dimensions and the RNG seed so that maze
// generation and searches are reproducible.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // UI refresh ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  120,
		ScreenH:  36,
		TickRate: 30,
		Seed:     0, // 0 means use current time in the platform layer
	}
}
