// Package config provides YAML-based configuration loading for the shooter.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// ShooterConfig contains all tunables for the game.
type ShooterConfig struct {
	Arena     ArenaConfig     `yaml:"arena"`
	Player    PlayerConfig    `yaml:"player"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Target    TargetConfig    `yaml:"target"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Loop      LoopConfig      `yaml:"loop"`
	Input     InputConfig     `yaml:"input"`
	Audio     AudioConfig     `yaml:"audio"`
}

// ArenaConfig defines the size of the simulated world in world units.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Size   int `yaml:"size"`
	Speed  int `yaml:"speed"`
	Margin int `yaml:"margin"`
}

// BulletConfig defines projectiles.
type BulletConfig struct {
	Radius     int `yaml:"radius"`
	Speed      int `yaml:"speed"`
	CooldownMS int `yaml:"cooldown_ms"`
}

// TargetConfig defines falling targets and how they spawn.
type TargetConfig struct {
	Size            int `yaml:"size"`
	Speed           int `yaml:"speed"`
	SpawnIntervalMS int `yaml:"spawn_interval_ms"`
	SpawnMinY       int `yaml:"spawn_min_y"` // Highest spawn row; the lowest is -Size
	Points          int `yaml:"points"`
}

// ExplosionConfig defines the post-hit animation.
type ExplosionConfig struct {
	DurationMS int `yaml:"duration_ms"`
}

// LoopConfig defines the fixed timestep.
type LoopConfig struct {
	FPS int `yaml:"fps"`
}

// InputConfig defines terminal key handling.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"`
}

// AudioConfig defines sound effects.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Validate checks that every value can drive a playable game.
func (c ShooterConfig) Validate() error {
	positive := []struct {
		name string
		val  int
	}{
		{"arena.width", c.Arena.Width},
		{"arena.height", c.Arena.Height},
		{"player.size", c.Player.Size},
		{"player.speed", c.Player.Speed},
		{"bullet.radius", c.Bullet.Radius},
		{"bullet.speed", c.Bullet.Speed},
		{"bullet.cooldown_ms", c.Bullet.CooldownMS},
		{"target.size", c.Target.Size},
		{"target.speed", c.Target.Speed},
		{"target.spawn_interval_ms", c.Target.SpawnIntervalMS},
		{"explosion.duration_ms", c.Explosion.DurationMS},
		{"loop.fps", c.Loop.FPS},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("config: %s must be positive, got %d: %w", p.name, p.val, ErrInvalid)
		}
	}

	if c.Player.Margin < 0 {
		return fmt.Errorf("config: player.margin must not be negative: %w", ErrInvalid)
	}
	if c.Target.Points < 0 {
		return fmt.Errorf("config: target.points must not be negative: %w", ErrInvalid)
	}
	if c.Input.HoldMS < 0 {
		return fmt.Errorf("config: input.hold_ms must not be negative: %w", ErrInvalid)
	}
	if c.Player.Size > c.Arena.Width || c.Player.Size+c.Player.Margin > c.Arena.Height {
		return fmt.Errorf("config: player does not fit in a %dx%d arena: %w",
			c.Arena.Width, c.Arena.Height, ErrInvalid)
	}
	if c.Target.Size > c.Arena.Width {
		return fmt.Errorf("config: target.size %d exceeds arena width %d: %w",
			c.Target.Size, c.Arena.Width, ErrInvalid)
	}
	if c.Target.SpawnMinY > -c.Target.Size {
		return fmt.Errorf("config: target.spawn_min_y must be <= %d, got %d: %w",
			-c.Target.Size, c.Target.SpawnMinY, ErrInvalid)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio.volume must be within [0, 1], got %g: %w", c.Audio.Volume, ErrInvalid)
	}
	return nil
}
