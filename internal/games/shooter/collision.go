package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// bulletHitsTarget reports whether a bullet overlaps a target, treating the
// target as a circle inscribed in its square.
func bulletHitsTarget(b *Bullet, t *Target, bulletRadius, targetSize int) bool {
	half := targetSize / 2
	cx := t.X + float64(half)
	cy := t.Y + float64(half)
	return core.Dist(b.X, b.Y, cx, cy) < float64(bulletRadius+half)
}

// checkCollisions tests every bullet against every unhit target.
// A bullet is consumed by its first hit. Returns the number of hits.
func (g *Game) checkCollisions() int {
	radius := g.cfg.Bullet.Radius
	size := g.cfg.Target.Size
	hits := 0

	remaining := g.bullets[:0]
	for _, b := range g.bullets {
		consumed := false
		for _, t := range g.targets {
			if t.Hit || !bulletHitsTarget(b, t, radius, size) {
				continue
			}
			t.Hit = true
			g.score += g.cfg.Target.Points
			g.explosions = append(g.explosions, &Explosion{Target: t, StartMS: g.nowMS})
			hits++
			consumed = true
			break
		}
		if !consumed {
			remaining = append(remaining, b)
		}
	}
	g.bullets = remaining
	return hits
}
