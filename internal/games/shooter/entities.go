package shooter

// Player is the ship at the bottom of the arena. Only input moves it.
type Player struct {
	X, Y float64 // Top-left corner in world units
	Size float64
}

// Bullet is a projectile travelling straight up.
type Bullet struct {
	X, Y float64 // Center in world units
}

// Target is a falling square. Once hit it freezes in place until its
// explosion finishes.
type Target struct {
	X, Y float64 // Top-left corner in world units
	Hit  bool
}

// Explosion tracks the post-hit animation of a target.
type Explosion struct {
	Target  *Target
	StartMS int64 // Game time when the hit happened
}
