package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in configuration, matching the
// classic 800x600 layout.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Size:   50,
			Speed:  5,
			Margin: 10,
		},
		Bullet: BulletConfig{
			Radius:     5,
			Speed:      10,
			CooldownMS: 250,
		},
		Target: TargetConfig{
			Size:            40,
			Speed:           2,
			SpawnIntervalMS: 1000,
			SpawnMinY:       -100,
			Points:          10,
		},
		Explosion: ExplosionConfig{
			DurationMS: 200,
		},
		Loop: LoopConfig{
			FPS: 60,
		},
		Input: InputConfig{
			HoldMS: 120,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
