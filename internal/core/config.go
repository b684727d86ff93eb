package core

// RuntimeConfig contains configuration passed to games at initialization.
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

// GameState is the externally visible status of a run.
type GameState struct {
	Score  int  // Current score
	Paused bool // Whether the game is paused
}

// Events counts what happened during a single tick.
// Frontends use it for sound effects and run statistics.
type Events struct {
	ShotsFired int // Bullets created
	Hits       int // Targets struck by a bullet
	Spawned    int // Targets created
	Expired    int // Explosions that finished and removed their target
}

// Add accumulates another tick's events into e.
func (e *Events) Add(other Events) {
	e.ShotsFired += other.ShotsFired
	e.Hits += other.Hits
	e.Spawned += other.Spawned
	e.Expired += other.Expired
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events Events
}
