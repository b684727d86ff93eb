package shooter

// Snapshot contains the complete game state for replay comparison.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        uint64
	NowMS       int64
	Score       int
	Paused      bool
	PlayerX     int
	PlayerY     int
	LastShotMS  int64
	LastSpawnMS int64

	// Bullets flattened as X, Y pairs
	BulletData []int

	// Targets flattened as X, Y, Hit triples
	TargetData []int

	// Explosions flattened as TargetIndex, StartMS pairs
	ExplosionData []int64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bullets := make([]int, 0, len(g.bullets)*2)
	for _, b := range g.bullets {
		bullets = append(bullets, int(b.X), int(b.Y))
	}

	targetIndex := make(map[*Target]int, len(g.targets))
	targets := make([]int, 0, len(g.targets)*3)
	for i, t := range g.targets {
		targetIndex[t] = i
		hit := 0
		if t.Hit {
			hit = 1
		}
		targets = append(targets, int(t.X), int(t.Y), hit)
	}

	explosions := make([]int64, 0, len(g.explosions)*2)
	for _, e := range g.explosions {
		idx, ok := targetIndex[e.Target]
		if !ok {
			idx = -1
		}
		explosions = append(explosions, int64(idx), e.StartMS)
	}

	return Snapshot{
		Tick:          g.tickCount,
		NowMS:         g.nowMS,
		Score:         g.score,
		Paused:        g.paused,
		PlayerX:       int(g.player.X),
		PlayerY:       int(g.player.Y),
		LastShotMS:    g.lastShotMS,
		LastSpawnMS:   g.lastSpawnMS,
		BulletData:    bullets,
		TargetData:    targets,
		ExplosionData: explosions,
	}
}
