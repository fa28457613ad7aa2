package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform (default 60)
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Lives    int    // Remaining lives, never negative
	Coins    int    // Coins left in the current level
	Level    string // ID of the level being played
	GameOver bool   // Whether the run has ended (won or aborted)
	Won      bool   // Whether every level was cleared
	Paused   bool   // Whether the game is paused

	Collected int // Coins collected over the whole run
	Restarts  int // Level restarts, from lost lives or the restart key
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState

	// BackToMenu is set when the player asked to leave the level (escape).
	BackToMenu bool

	// Err is set when the game cannot continue, e.g. a level failed to load.
	// The platform should stop the session and report it.
	Err error
}
