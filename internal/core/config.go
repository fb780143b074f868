package core

// RuntimeConfig contains configuration passed to the simulation at startup.
// The simulation uses this to adapt to screen size and for deterministic seeding.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic randomize
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// SimState represents the observable state of the simulation.
// Returned by Simulation.State() to communicate status to the platform.
type SimState struct {
	Generation uint64 // Generations advanced since session start
	Population int    // Number of live cells
	Paused     bool   // Whether the clock is paused
}

// StepResult is returned by Simulation.Step() after each frame tick.
type StepResult struct {
	State SimState
}
