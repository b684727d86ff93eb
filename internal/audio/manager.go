// Package audio plays synthesized sound effects through the system speaker.
// A nil *Manager is valid and silent, so callers never need to check
// whether sound is enabled.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the speaker and mixes short effects into it.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// New creates a manager with the given volume in [0, 1].
// Call Init before playing anything.
func New(volume float64) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker. Safe to call more than once.
func (m *Manager) Init() error {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close silences everything and releases the speaker.
func (m *Manager) Close() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.initialized = false
}

// PlayShot plays the firing blip.
func (m *Manager) PlayShot() {
	m.play(ShotSound)
}

// PlayHit plays the explosion burst.
func (m *Manager) PlayHit() {
	m.play(HitSound)
}

// PlayEvents plays at most one sound of each kind for a tick's events.
func (m *Manager) PlayEvents(ev core.Events) {
	if ev.ShotsFired > 0 {
		m.PlayShot()
	}
	if ev.Hits > 0 {
		m.PlayHit()
	}
}

func (m *Manager) play(sound func(beep.SampleRate, float64) beep.Streamer) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	s := sound(sampleRate, m.volume)
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}
