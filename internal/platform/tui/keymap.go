package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ", "up", "w", "k":
		return core.ActionFire, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// holdTracker turns key presses into per-tick input frames.
// Terminals send a press (and autorepeat) but never a release, so a
// continuous action stays active for a fixed number of ticks after its
// last press. Edge actions are delivered exactly once.
type holdTracker struct {
	holdTicks int
	remaining map[core.Action]int
	edges     core.InputFrame
}

// newHoldTracker converts holdMS into ticks at the given rate, rounding up.
// A press always lasts at least one tick.
func newHoldTracker(holdMS, tickRate int) *holdTracker {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := (holdMS*tickRate + 999) / 1000
	if ticks < 1 {
		ticks = 1
	}
	return &holdTracker{
		holdTicks: ticks,
		remaining: make(map[core.Action]int),
		edges:     core.NewInputFrame(),
	}
}

// Press records a key press.
func (h *holdTracker) Press(a core.Action) {
	switch a {
	case core.ActionNone, core.ActionQuit:
		return
	case core.ActionLeft:
		delete(h.remaining, core.ActionRight)
	case core.ActionRight:
		delete(h.remaining, core.ActionLeft)
	}

	if a.Continuous() {
		h.remaining[a] = h.holdTicks
		return
	}
	h.edges.Set(a)
}

// Frame returns the actions for the next tick and ages held keys.
func (h *holdTracker) Frame() core.InputFrame {
	frame := h.edges.Clone()
	h.edges.Clear()

	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	return frame
}

// Release drops every held key and pending edge.
func (h *holdTracker) Release() {
	for a := range h.remaining {
		delete(h.remaining, a)
	}
	h.edges.Clear()
}
