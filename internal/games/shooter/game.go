// Package shooter implements a fixed-screen arcade shooter.
// The player moves a ship along the bottom edge and fires upward at
// targets falling from the top. Each hit scores points and leaves a short
// explosion before the target disappears.
package shooter

import (
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// ID is the identifier used for score storage.
const ID = "shooter"

// Title is the display name, also used as the window title.
const Title = "Simple Shooting Game"

// Game implements the shooter simulation.
// All timing derives from the tick counter, so identical seeds and inputs
// always produce identical runs.
type Game struct {
	cfg     config.ShooterConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	player     Player
	bullets    []*Bullet
	targets    []*Target
	explosions []*Explosion

	score       int
	paused      bool
	tickCount   uint64
	nowMS       int64
	lastShotMS  int64
	lastSpawnMS int64
}

var _ core.Game = (*Game)(nil)

// New creates a shooter using the given configuration.
// The game is ready to step at the configured frame rate with seed 0;
// frontends call Reset to apply their own runtime settings.
func New(cfg config.ShooterConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.RuntimeConfig{TickRate: cfg.Loop.FPS})
	return g
}

// NewDefault creates a shooter with the built-in configuration.
func NewDefault() *Game {
	return New(config.DefaultShooterConfig())
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.ShooterConfig {
	return g.cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = g.cfg.Loop.FPS
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	size := float64(g.cfg.Player.Size)
	g.player = Player{
		X:    float64(g.cfg.Arena.Width/2 - g.cfg.Player.Size/2),
		Y:    float64(g.cfg.Arena.Height - g.cfg.Player.Size - g.cfg.Player.Margin),
		Size: size,
	}

	g.bullets = g.bullets[:0]
	g.targets = g.targets[:0]
	g.explosions = g.explosions[:0]

	g.score = 0
	g.paused = false
	g.tickCount = 0
	g.nowMS = 0
	g.lastShotMS = 0
	g.lastSpawnMS = 0
}

// Step advances the game by one tick:
// input, spawn/shoot, update, collide, then explosions.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var ev core.Events

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.nowMS = int64(g.tickCount) * 1000 / int64(g.runtime.TickRate)

	g.movePlayer(in)

	if in.Has(core.ActionFire) && g.nowMS-g.lastShotMS > int64(g.cfg.Bullet.CooldownMS) {
		g.fire()
		g.lastShotMS = g.nowMS
		ev.ShotsFired++
	}

	if g.nowMS-g.lastSpawnMS > int64(g.cfg.Target.SpawnIntervalMS) {
		g.spawnTarget()
		g.lastSpawnMS = g.nowMS
		ev.Spawned++
	}

	g.updateBullets()
	g.updateTargets()
	ev.Hits = g.checkCollisions()
	ev.Expired = g.updateExplosions()

	return core.StepResult{State: g.State(), Events: ev}
}

// movePlayer applies horizontal input and keeps the ship inside the arena.
func (g *Game) movePlayer(in core.InputFrame) {
	speed := float64(g.cfg.Player.Speed)
	if in.Has(core.ActionLeft) {
		g.player.X -= speed
	}
	if in.Has(core.ActionRight) {
		g.player.X += speed
	}
	g.player.X = core.ClampF(g.player.X, 0, float64(g.cfg.Arena.Width)-g.player.Size)
}

// fire launches a bullet from the nose of the ship.
func (g *Game) fire() {
	g.bullets = append(g.bullets, &Bullet{
		X: g.player.X + float64(g.cfg.Player.Size/2),
		Y: g.player.Y,
	})
}

// spawnTarget drops a new target above the visible arena.
func (g *Game) spawnTarget() {
	size := g.cfg.Target.Size
	x := g.rng.Intn(g.cfg.Arena.Width - size + 1)
	minY := g.cfg.Target.SpawnMinY
	y := minY + g.rng.Intn(-size-minY+1)

	g.targets = append(g.targets, &Target{X: float64(x), Y: float64(y)})
}

// updateBullets moves bullets up and drops the ones past the top edge.
func (g *Game) updateBullets() {
	speed := float64(g.cfg.Bullet.Speed)
	alive := g.bullets[:0]
	for _, b := range g.bullets {
		b.Y -= speed
		if b.Y < 0 {
			continue
		}
		alive = append(alive, b)
	}
	g.bullets = alive
}

// updateTargets moves unhit targets down and drops the ones past the
// bottom edge. Hit targets stay where they were struck.
func (g *Game) updateTargets() {
	speed := float64(g.cfg.Target.Speed)
	height := float64(g.cfg.Arena.Height)
	alive := g.targets[:0]
	for _, t := range g.targets {
		if !t.Hit {
			t.Y += speed
			if t.Y > height {
				continue
			}
		}
		alive = append(alive, t)
	}
	g.targets = alive
}

// updateExplosions retires finished explosions together with their targets.
// Returns the number of explosions removed.
func (g *Game) updateExplosions() int {
	duration := int64(g.cfg.Explosion.DurationMS)
	expired := 0
	active := g.explosions[:0]
	for _, e := range g.explosions {
		if g.nowMS-e.StartMS > duration {
			g.removeTarget(e.Target)
			expired++
			continue
		}
		active = append(active, e)
	}
	g.explosions = active
	return expired
}

// removeTarget deletes a target by identity.
func (g *Game) removeTarget(target *Target) {
	for i, t := range g.targets {
		if t == target {
			g.targets = append(g.targets[:i], g.targets[i+1:]...)
			return
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Paused: g.paused,
	}
}

// Elapsed returns the game time in milliseconds.
func (g *Game) Elapsed() int64 {
	return g.nowMS
}

// Player returns a copy of the ship.
func (g *Game) Player() Player {
	return g.player
}

// Bullets returns a copy of the live bullets.
func (g *Game) Bullets() []Bullet {
	out := make([]Bullet, len(g.bullets))
	for i, b := range g.bullets {
		out[i] = *b
	}
	return out
}

// Targets returns a copy of the live targets, hit or not.
func (g *Game) Targets() []Target {
	out := make([]Target, len(g.targets))
	for i, t := range g.targets {
		out[i] = *t
	}
	return out
}

// Explosions returns the number of running explosions.
func (g *Game) Explosions() int {
	return len(g.explosions)
}
