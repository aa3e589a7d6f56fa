package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Player   string // Name recorded with saved scores
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Player:   "player",
	}
}

// WithDefaults fills every zero or negative field from DefaultConfig.
// Hosts call it on sizes reported by a terminal or SSH PTY, which may be
// missing.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	d := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = d.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = d.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	if c.Player == "" {
		c.Player = d.Player
	}
	return c
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the host.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended with every enemy destroyed
	Paused   bool // Whether the game is paused
	Ticks    int  // Simulation ticks advanced so far
}

// Event is something noteworthy that happened during a step.
// Hosts use events for feedback such as sound effects.
type Event int

const (
	EventFire Event = iota + 1 // A projectile was launched
	EventKill                  // An enemy was destroyed
	EventWin                   // The last enemy was destroyed
	EventLoss                  // An enemy crossed the fail line
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventFire:
		return "fire"
	case EventKill:
		return "kill"
	case EventWin:
		return "win"
	case EventLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Game is the contract between a game core and the hosts that drive it.
// Games contain pure logic; hosts handle input mapping, timing and display.
type Game interface {
	// ID returns a unique identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game state.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
