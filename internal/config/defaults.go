package config

import (
	_ "embed"
)

//go:embed defaults/zombies.yaml
var defaultZombiesYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultZombiesYAML))
	copy(out, defaultZombiesYAML)
	return out
}

// DefaultZombiesConfig returns the default zombie game configuration.
func DefaultZombiesConfig() ZombiesConfig {
	return ZombiesConfig{
		Field: FieldConfig{
			Width:  640,
			Height: 480,
			Ground: 290,
		},
		Player: PlayerConfig{
			X:            50,
			Y:            225,
			Width:        40,
			Height:       60,
			PickupRadius: 30,
		},
		Health: HealthConfig{
			Max:        100,
			DamageRate: 20,
			RegenRate:  5,
		},
		Score: ScoreConfig{
			Target: 10,
		},
		Targets: TargetConfig{
			SpawnInterval: 3,
			MinSpeed:      30,
			MaxSpeed:      45,
			Width:         40,
			Height:        60,
			LaneTop:       200,
			LaneBottom:    240,
			Proximity:     30,
		},
		Projectiles: ProjectileConfig{
			Speed: 600,
		},
		PowerUps: PowerUpConfig{
			SpawnInterval:        8,
			Radius:               12,
			MoveSpeed:            40,
			Grace:                2,
			SafeMargin:           60,
			HealAmount:           25,
			SpeedFactor:          2,
			SpeedDuration:        5,
			ShieldDuration:       5,
			TrailInterval:        0.2,
			AttractTrailInterval: 0.05,
		},
		Ability: AbilityConfig{
			Cooldown:   10,
			Duration:   3,
			Multiplier: 4,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Words: []string{
			"brain", "grave", "moan", "crypt", "ghoul",
			"night", "rot", "bite", "shamble", "flesh",
			"tomb", "horde", "undead", "shovel", "lantern",
			"coffin", "dread", "zombie", "skull", "fog",
		},
	}
}
