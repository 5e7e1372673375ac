package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// TickMillis returns the simulated time that passes in one tick.
// A non-positive tick rate falls back to 60 ticks per second.
func (c RuntimeConfig) TickMillis() int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1000 / rate
}

// GameState is returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Placeholder counter (lines cleared)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Summary holds the per-session counters the platform records when a
// session ends.
type Summary struct {
	Lines  int    // Rows cleared
	Pieces int    // Pieces locked
	Holds  int    // Successful holds
	Ticks  uint64 // Simulation ticks played
}
