// Package window runs the shooter in a desktop window using Ebitengine.
// Unlike a terminal, a window reports real key state, so held keys are
// polled every tick.
package window

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	colorBackground = color.RGBA{0x00, 0x00, 0x00, 0xff}
	colorPlayer     = color.RGBA{0x00, 0xff, 0x00, 0xff}
	colorBullet     = color.RGBA{0x00, 0x00, 0xff, 0xff}
	colorTarget     = color.RGBA{0xff, 0x00, 0x00, 0xff}
	colorExplosion  = color.RGBA{0xff, 0xa5, 0x00, 0xff}
	colorText       = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// whiteImage is the source texture for filled paths.
var whiteImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

// Options carries the optional collaborators of a window run.
type Options struct {
	Player string
	Seed   int64          // 0 picks a time-based seed
	Sound  *audio.Manager // nil for silence
	Logger *log.Logger    // nil discards log output
}

// Window adapts the simulation to ebiten.Game.
type Window struct {
	game   *shooter.Game
	store  *storage.Store
	sound  *audio.Manager
	logger *log.Logger
	player string
	config core.RuntimeConfig
	fixed  bool

	events core.Events
	saved  bool
}

// New creates a window frontend for game. Call Run to open it.
func New(game *shooter.Game, store *storage.Store, opts Options) *Window {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := game.Config()
	w := &Window{
		game:   game,
		store:  store,
		sound:  opts.Sound,
		logger: logger,
		player: opts.Player,
		config: core.RuntimeConfig{
			ScreenW:  cfg.Arena.Width,
			ScreenH:  cfg.Arena.Height,
			TickRate: cfg.Loop.FPS,
			Seed:     opts.Seed,
		},
		fixed: opts.Seed != 0,
	}
	if !w.fixed {
		w.config.Seed = time.Now().UnixNano()
	}
	w.game.Reset(w.config)
	return w
}

// Run opens the window and blocks until the player quits.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.config.ScreenW, w.config.ScreenH)
	ebiten.SetWindowTitle(shooter.Title)
	ebiten.SetTPS(w.config.TickRate)
	ebiten.SetWindowClosingHandled(true)

	w.logger.Debug("window opened", "seed", w.config.Seed, "tps", w.config.TickRate)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Update advances the simulation by one tick.
func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.recordRun()
		return ebiten.Termination
	}

	frame := pollInput()
	if frame.Has(core.ActionRestart) {
		w.restart()
		return nil
	}

	result := w.game.Step(frame)
	w.events.Add(result.Events)
	w.sound.PlayEvents(result.Events)
	return nil
}

// pollInput reads the keyboard into an input frame.
func pollInput() core.InputFrame {
	frame := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		frame.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		frame.Set(core.ActionRight)
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		frame.Set(core.ActionFire)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		frame.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		frame.Set(core.ActionRestart)
	}
	return frame
}

func (w *Window) restart() {
	w.recordRun()
	if !w.fixed {
		w.config.Seed = time.Now().UnixNano()
	}
	w.game.Reset(w.config)
	w.events, w.saved = core.Events{}, false
}

// recordRun saves the current run once, if it scored anything.
func (w *Window) recordRun() {
	score := w.game.State().Score
	if w.saved || score <= 0 {
		return
	}
	w.saved = true

	run := storage.Run{
		Player:     w.player,
		Frontend:   "window",
		Score:      score,
		Shots:      w.events.ShotsFired,
		Hits:       w.events.Hits,
		DurationMS: w.game.Elapsed(),
	}
	w.logger.Info("run finished", "player", run.Player, "score", run.Score,
		"shots", run.Shots, "hits", run.Hits, "duration_ms", run.DurationMS)

	if w.store == nil {
		return
	}
	if _, err := w.store.SaveRun(run); err != nil {
		w.logger.Error("failed to save run", "err", err)
	}
}

// Draw renders the arena at world scale.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	cfg := w.game.Config()
	size := float32(cfg.Target.Size)
	for _, t := range w.game.Targets() {
		if t.Hit {
			r := size / 2
			vector.DrawFilledCircle(screen, float32(t.X)+r, float32(t.Y)+r, r, colorExplosion, true)
			continue
		}
		vector.DrawFilledRect(screen, float32(t.X), float32(t.Y), size, size, colorTarget, false)
	}

	radius := float32(cfg.Bullet.Radius)
	for _, b := range w.game.Bullets() {
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), radius, colorBullet, true)
	}

	drawPlayer(screen, w.game.Player())

	text.Draw(screen, fmt.Sprintf("Score: %d", w.game.State().Score), basicfont.Face7x13, 10, 20, colorText)

	if w.game.State().Paused {
		msg := "PAUSED - press P to resume"
		x := (w.config.ScreenW - len(msg)*7) / 2
		text.Draw(screen, msg, basicfont.Face7x13, x, w.config.ScreenH/2, colorText)
	}
}

// drawPlayer fills the ship triangle: apex at the top center, base along
// the bottom edge.
func drawPlayer(screen *ebiten.Image, p shooter.Player) {
	var path vector.Path
	path.MoveTo(float32(p.X+p.Size/2), float32(p.Y))
	path.LineTo(float32(p.X), float32(p.Y+p.Size))
	path.LineTo(float32(p.X+p.Size), float32(p.Y+p.Size))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := colorPlayer.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whiteImage, op)
}

// Layout keeps the logical screen at arena size; ebiten scales it to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.config.ScreenW, w.config.ScreenH
}
