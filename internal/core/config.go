package core

// DefaultTickRate is the number of simulation steps per second.
const DefaultTickRate = 9

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation steps per second (default 9)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score of this process
	Beat      bool // Current round passed the previous high score
	GameOver  bool // Whether the round has ended
	Paused    bool // Whether the game is paused
}

// RoundSummary describes a round that ended during a step.
type RoundSummary struct {
	Score  int
	Length int
	Ticks  uint64
	Cause  string
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Ended is non-nil only on the tick the round ended.
	Ended *RoundSummary
}
