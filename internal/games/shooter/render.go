package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Visual characters for rendering
const (
	ShipNoseChar  = '▲'
	ShipBodyChar  = '█'
	BulletChar    = '|'
	TargetChar    = '█'
	ExplosionChar = '*'
)

// Minimum terminal size for a readable arena.
const (
	MinScreenW = 20
	MinScreenH = 8
)

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(arenaW, arenaH, screenW, screenH int) viewport {
	return viewport{
		sx: float64(screenW) / float64(arenaW),
		sy: float64(screenH) / float64(arenaH),
	}
}

// cell converts a world point to the cell containing it.
func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), int(math.Floor(y * v.sy))
}

// rect converts a world box to the cells it covers, at least one cell.
func (v viewport) rect(x, y, w, h float64) core.Rect {
	c0, r0 := v.cell(x, y)
	c1 := int(math.Ceil((x + w) * v.sx))
	r1 := int(math.Ceil((y + h) * v.sy))
	return core.NewRect(c0, r0, core.Max(c1-c0, 1), core.Max(r1-r0, 1))
}

// center returns the world point at the middle of cell (col, row).
func (v viewport) center(col, row int) (float64, float64) {
	return (float64(col) + 0.5) / v.sx, (float64(row) + 0.5) / v.sy
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	vp := newViewport(g.cfg.Arena.Width, g.cfg.Arena.Height, dst.Width(), dst.Height())

	g.drawTargets(dst, vp)
	for _, b := range g.bullets {
		col, row := vp.cell(b.X, b.Y)
		dst.SetColored(col, row, BulletChar, core.ColorBrightBlue)
	}
	g.drawPlayer(dst, vp)

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawPlayer fills every cell whose center lies inside the ship triangle.
func (g *Game) drawPlayer(dst *core.Screen, vp viewport) {
	p := g.player
	box := vp.rect(p.X, p.Y, p.Size, p.Size)
	apexX := p.X + p.Size/2
	drawn := false

	for row := box.Y; row < box.Bottom(); row++ {
		nose := !drawn
		for col := box.X; col < box.Right(); col++ {
			wx, wy := vp.center(col, row)
			depth := (wy - p.Y) / p.Size
			if depth < 0 || depth > 1 {
				continue
			}
			if math.Abs(wx-apexX) > depth*p.Size/2 {
				continue
			}
			ch := ShipBodyChar
			if nose {
				ch = ShipNoseChar
			}
			dst.SetColored(col, row, ch, core.ColorGreen)
			drawn = true
		}
	}

	// Narrow terminals can miss every cell center; keep the ship visible.
	if !drawn {
		col, row := vp.cell(apexX, p.Y+p.Size/2)
		dst.SetColored(col, row, ShipNoseChar, core.ColorGreen)
	}
}

// drawTargets draws falling targets as red blocks and hit ones as an
// orange burst inscribed in their square.
func (g *Game) drawTargets(dst *core.Screen, vp viewport) {
	size := float64(g.cfg.Target.Size)
	radius := size / 2

	for _, t := range g.targets {
		box := vp.rect(t.X, t.Y, size, size)
		if !t.Hit {
			dst.DrawRectColored(box, TargetChar, core.ColorRed)
			continue
		}

		cx, cy := t.X+radius, t.Y+radius
		for row := box.Y; row < box.Bottom(); row++ {
			for col := box.X; col < box.Right(); col++ {
				wx, wy := vp.center(col, row)
				if core.Dist(wx, wy, cx, cy) <= radius {
					dst.SetColored(col, row, ExplosionChar, core.ColorOrange)
				}
			}
		}
		col, row := vp.cell(cx, cy)
		dst.SetColored(col, row, ExplosionChar, core.ColorOrange)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
