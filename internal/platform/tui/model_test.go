package tui

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

func newTestModel(t *testing.T) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99}
	m := NewModel(shooter.NewDefault(), store, cfg, Options{Player: "tester", HoldMS: 120})
	m.Init()
	return m, store
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", updated)
	}
	return next, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, TickMsg{})
	return m
}

// playUntilScore steers toward the lowest falling target while firing.
func playUntilScore(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 20000; i++ {
		if m.gameState.Score > 0 {
			return m
		}

		p := m.game.Player()
		shipCenter := p.X + p.Size/2
		var aim *shooter.Target
		for _, tg := range m.game.Targets() {
			if !tg.Hit && (aim == nil || tg.Y > aim.Y) {
				aim = &tg
			}
		}
		if aim != nil {
			targetCenter := aim.X + float64(m.game.Config().Target.Size)/2
			switch {
			case targetCenter < shipCenter-5:
				m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
			case targetCenter > shipCenter+5:
				m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
			}
		}
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		m = tick(t, m)
	}
	t.Fatal("never scored")
	return m
}

func TestModelHeldMovement(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < 8; i++ {
		m = tick(t, m)
	}
	if x := m.game.Player().X; x != 335 {
		t.Fatalf("expected 8 held ticks to move to 335, got %v", x)
	}

	m = tick(t, m)
	if x := m.game.Player().X; x != 335 {
		t.Errorf("ship should stop once the hold expires, got %v", x)
	}
}

func TestModelPause(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, runeKey('p'))
	m = tick(t, m)
	if !m.gameState.Paused {
		t.Fatal("p should pause the game")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should show PAUSED")
	}

	elapsed := m.game.Elapsed()
	for i := 0; i < 10; i++ {
		m = tick(t, m)
	}
	if m.game.Elapsed() != elapsed {
		t.Error("game time should not advance while paused")
	}

	m, _ = send(t, m, runeKey('p'))
	m = tick(t, m)
	if m.gameState.Paused {
		t.Error("second p should resume")
	}
}

func TestModelQuitRecordsRun(t *testing.T) {
	m, store := newTestModel(t)
	m = playUntilScore(t, m)
	score := m.gameState.Score

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	r := runs[0]
	if r.Score != score || r.Player != "tester" || r.Frontend != "tui" {
		t.Errorf("unexpected run %+v", r)
	}
	if r.Hits < 1 || r.Shots < r.Hits || r.DurationMS <= 0 {
		t.Errorf("run stats not accumulated: %+v", r)
	}

	// A second quit must not record the same run twice
	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	runs, _ = store.TopRuns(10)
	if len(runs) != 1 {
		t.Errorf("run recorded twice, got %d runs", len(runs))
	}
}

func TestModelQuitWithoutScoreRecordsNothing(t *testing.T) {
	m, store := newTestModel(t)
	for i := 0; i < 30; i++ {
		m = tick(t, m)
	}

	send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("zero-score run should not be recorded, got %d", len(runs))
	}
}

func TestModelRestart(t *testing.T) {
	m, store := newTestModel(t)
	m = playUntilScore(t, m)

	m, _ = send(t, m, runeKey('r'))
	m = tick(t, m)

	if m.gameState.Score != 0 || m.game.Elapsed() != 0 {
		t.Errorf("restart should start a fresh run, score=%d elapsed=%d",
			m.gameState.Score, m.game.Elapsed())
	}
	if m.stats.events != (core.Events{}) || m.stats.saved {
		t.Errorf("restart should reset run stats, got %+v", *m.stats)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 1 {
		t.Errorf("restart should record the finished run, got %d runs", len(runs))
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}
	x, elapsed := m.game.Player().X, m.game.Elapsed()

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.game.Player().X != x || m.game.Elapsed() != elapsed {
		t.Error("resize must not reset the run")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen not resized: %dx%d", m.screen.Width(), m.screen.Height())
	}
	if lines := strings.Count(m.View(), "\n"); lines != 39 {
		t.Errorf("expected 40 rendered lines, got %d", lines+1)
	}
}

func TestModelNilStore(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5}
	m := NewModel(shooter.NewDefault(), nil, cfg, Options{HoldMS: 120})
	m.Init()

	m = playUntilScore(t, m)
	m, _ = send(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("quit should work without a store")
	}
}

func TestModelRestartWithoutSeedChangesSpawns(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	m := NewModel(shooter.NewDefault(), nil, cfg, Options{HoldMS: 120})
	m.Init()
	if m.fixedSeed {
		t.Fatal("a zero seed should not be treated as fixed")
	}

	firstSeed := m.config.Seed
	firstRun := spawnSequence(t, m)

	m, _ = send(t, m, runeKey('r'))
	m = tick(t, m)
	if m.config.Seed == firstSeed {
		t.Fatal("restart should pick a new seed")
	}
	if secondRun := spawnSequence(t, m); reflect.DeepEqual(firstRun, secondRun) {
		t.Errorf("restart replayed the same targets: %v", secondRun)
	}
}

func TestModelRestartWithFixedSeedReplays(t *testing.T) {
	m, _ := newTestModel(t)
	firstRun := spawnSequence(t, m)

	m, _ = send(t, m, runeKey('r'))
	m = tick(t, m)
	if secondRun := spawnSequence(t, m); !reflect.DeepEqual(firstRun, secondRun) {
		t.Errorf("fixed seed should replay targets, got %v then %v", firstRun, secondRun)
	}
}

// spawnSequence ticks until three targets have spawned and returns
// their spawn positions.
func spawnSequence(t *testing.T, m Model) [][2]float64 {
	t.Helper()
	var seq [][2]float64
	for len(seq) < 3 {
		before := len(m.game.Targets())
		m = tick(t, m)
		if targets := m.game.Targets(); len(targets) > before {
			last := targets[len(targets)-1]
			seq = append(seq, [2]float64{last.X, last.Y - float64(m.game.Config().Target.Speed)})
		}
	}
	return seq
}

func TestModelCopyRecordsRunAfterExit(t *testing.T) {
	initial, store := newTestModel(t)
	played := playUntilScore(t, initial)

	initial.recordRun()

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	if runs[0].Score != played.gameState.Score || runs[0].Hits < 1 {
		t.Errorf("recorded run does not match the played run: %+v", runs[0])
	}

	send(t, played, runeKey('q'))
	runs, _ = store.TopRuns(10)
	if len(runs) != 1 {
		t.Errorf("run recorded twice, got %d runs", len(runs))
	}
}
