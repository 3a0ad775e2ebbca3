package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Complete bool   // Every pair on the board is solved
	Solved   int    // Pairs solved so far
	Total    int    // Pairs on the board
	Level    string // ID of the level being played
	HasNext  bool   // Another level follows the current one
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
