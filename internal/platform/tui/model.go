package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// Options carries the optional collaborators of a Model.
type Options struct {
	Player   string         // Recorded with each run
	Frontend string         // "tui" unless set
	HoldMS   int            // How long a key press counts as held
	Sound    *audio.Manager // nil for silence
	Logger   *log.Logger    // nil discards log output
}

// runStats accumulates what happened during the current run.
// Model copies share it, so a session can record the run after the
// program has exited.
type runStats struct {
	events core.Events
	saved  bool
}

// Model is the Bubble Tea model for a single shooter session.
type Model struct {
	game      *shooter.Game
	screen    *core.Screen
	store     *storage.Store
	sound     *audio.Manager
	logger    *log.Logger
	config    core.RuntimeConfig
	fixedSeed bool
	keys      *KeyMapper
	held      *holdTracker
	player    string
	frontend  string
	gameState core.GameState
	stats     *runStats
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *shooter.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = game.Config().Loop.FPS
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	frontend := opts.Frontend
	if frontend == "" {
		frontend = "tui"
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		sound:     opts.Sound,
		logger:    logger,
		config:    cfg,
		fixedSeed: fixedSeed,
		keys:      NewKeyMapper(),
		held:      newHoldTracker(opts.HoldMS, cfg.TickRate),
		player:    opts.Player,
		frontend:  frontend,
		stats:     &runStats{},
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("run started", "seed", m.config.Seed, "tick_rate", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.recordRun()
		m.quitting = true
		return m, tea.Quit
	}

	m.held.Press(action)
	return m, nil
}

// handleResize processes window resize events.
// Only the rendering scale changes; the arena keeps its world size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.held.Frame()

	if frame.Has(core.ActionRestart) {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(frame)
	m.gameState = result.State
	m.stats.events.Add(result.Events)
	m.sound.PlayEvents(result.Events)

	return m, tickCmd(m.config.TickRate)
}

// restart records the finished run and starts a fresh one.
func (m *Model) restart() {
	m.recordRun()

	if !m.fixedSeed {
		m.config.Seed = nextSeed(m.config.Seed)
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	*m.stats = runStats{}
	m.held.Release()

	m.logger.Debug("run restarted", "seed", m.config.Seed)
}

// nextSeed returns a clock-based seed that differs from prev.
func nextSeed(prev int64) int64 {
	seed := time.Now().UnixNano()
	if seed == prev {
		seed++
	}
	return seed
}

// recordRun saves the current run once, if it scored anything.
func (m *Model) recordRun() {
	score := m.game.State().Score
	if m.stats.saved || score <= 0 {
		return
	}
	m.stats.saved = true

	run := storage.Run{
		Player:     m.player,
		Frontend:   m.frontend,
		Score:      score,
		Shots:      m.stats.events.ShotsFired,
		Hits:       m.stats.events.Hits,
		DurationMS: m.game.Elapsed(),
	}
	m.logger.Info("run finished", "player", run.Player, "score", run.Score,
		"shots", run.Shots, "hits", run.Hits, "duration_ms", run.DurationMS)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Error("failed to save run", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".shooter", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", shooter.ID, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *shooter.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
