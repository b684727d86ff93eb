package core

// Game is the contract between a simulation and a frontend.
// Games hold pure logic; the platform handles input mapping, timing and
// terminal output.
type Game interface {
	// ID returns a stable identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current state into dst. The screen is cleared by
	// the game itself.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
