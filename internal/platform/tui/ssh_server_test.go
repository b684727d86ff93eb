package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestSSHServer(seed int64) *SSHServer {
	cfg := DefaultSSHServerConfig()
	cfg.Seed = seed
	return &SSHServer{config: cfg, logger: log.New(io.Discard)}
}

func TestSessionModel(t *testing.T) {
	tests := []struct {
		name  string
		seed  int64
		fixed bool
	}{
		{"no seed picks a new one per run", 0, false},
		{"server seed is fixed", 7, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestSSHServer(tc.seed).sessionModel("alice", 100, 30)

			if m.fixedSeed != tc.fixed {
				t.Errorf("fixedSeed = %v, expected %v", m.fixedSeed, tc.fixed)
			}
			if tc.fixed && m.config.Seed != tc.seed {
				t.Errorf("seed = %d, expected %d", m.config.Seed, tc.seed)
			}
			if m.player != "alice" || m.frontend != "ssh" {
				t.Errorf("unexpected session identity %q/%q", m.player, m.frontend)
			}
			if m.screen.Width() != 100 || m.screen.Height() != 30 {
				t.Errorf("screen %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
			}
		})
	}
}

func TestSessionModelsAreIndependent(t *testing.T) {
	srv := newTestSSHServer(0)
	a := srv.sessionModel("alice", 80, 24)
	b := srv.sessionModel("bob", 80, 24)

	if a.game == b.game || a.stats == b.stats {
		t.Error("sessions must not share game or run state")
	}
}
