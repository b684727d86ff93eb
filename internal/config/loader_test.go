package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML ShooterConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	if fromYAML != DefaultShooterConfig() {
		t.Errorf("embedded YAML and DefaultShooterConfig() differ:\n yaml: %+v\n code: %+v",
			fromYAML, DefaultShooterConfig())
	}
	if err := fromYAML.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadCustomPartialFile(t *testing.T) {
	path := writeConfig(t, `
bullet:
  cooldown_ms: 100
target:
  points: 25
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Bullet.CooldownMS != 100 {
		t.Errorf("cooldown = %d, expected 100", cfg.Bullet.CooldownMS)
	}
	if cfg.Target.Points != 25 {
		t.Errorf("points = %d, expected 25", cfg.Target.Points)
	}
	// Untouched fields keep defaults
	if cfg.Bullet.Speed != 10 {
		t.Errorf("bullet speed = %d, expected default 10", cfg.Bullet.Speed)
	}
	if cfg.Arena.Width != 800 || cfg.Arena.Height != 600 {
		t.Errorf("arena = %dx%d, expected default 800x600", cfg.Arena.Width, cfg.Arena.Height)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Fatal("expected error for missing custom config")
		}
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "arena: [1, 2"))
		if err == nil {
			t.Fatal("expected parse error")
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "player:\n  speed: 0\n"))
		if !errors.Is(err, ErrInvalid) {
			t.Fatalf("expected ErrInvalid, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShooterConfig)
		valid  bool
	}{
		{"defaults", func(*ShooterConfig) {}, true},
		{"zero fps", func(c *ShooterConfig) { c.Loop.FPS = 0 }, false},
		{"negative bullet speed", func(c *ShooterConfig) { c.Bullet.Speed = -1 }, false},
		{"zero explosion", func(c *ShooterConfig) { c.Explosion.DurationMS = 0 }, false},
		{"target wider than arena", func(c *ShooterConfig) { c.Target.Size = 900 }, false},
		{"player taller than arena", func(c *ShooterConfig) { c.Player.Margin = 590 }, false},
		{"spawn band inside arena", func(c *ShooterConfig) { c.Target.SpawnMinY = 0 }, false},
		{"spawn band single row", func(c *ShooterConfig) { c.Target.SpawnMinY = -40 }, true},
		{"negative points", func(c *ShooterConfig) { c.Target.Points = -10 }, false},
		{"zero points allowed", func(c *ShooterConfig) { c.Target.Points = 0 }, true},
		{"loud volume", func(c *ShooterConfig) { c.Audio.Volume = 1.5 }, false},
		{"negative hold", func(c *ShooterConfig) { c.Input.HoldMS = -5 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid config, got %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultShooterConfig()
	cfg.Target.Points = 15

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	loaded, err := Load(writeConfig(t, string(data)))
	if err != nil {
		t.Fatalf("Load() of marshalled config failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded config differs from marshalled one:\n got: %+v\nwant: %+v", loaded, cfg)
	}
}
