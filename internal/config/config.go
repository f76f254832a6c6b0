// Package config provides YAML-based game configuration loading and
// validation for the zombie typing game.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// ValidationError describes a single rejected config field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalid.
func (e ValidationError) Unwrap() error {
	return ErrInvalid
}

// ZombiesConfig contains all configuration for the zombie typing game.
// World units are nominal pixels; the renderer scales them to the terminal.
type ZombiesConfig struct {
	Field       FieldConfig      `yaml:"field"`
	Player      PlayerConfig     `yaml:"player"`
	Health      HealthConfig     `yaml:"health"`
	Score       ScoreConfig      `yaml:"score"`
	Targets     TargetConfig     `yaml:"targets"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	PowerUps    PowerUpConfig    `yaml:"powerups"`
	Ability     AbilityConfig    `yaml:"ability"`
	Audio       AudioConfig      `yaml:"audio"`
	Words       []string         `yaml:"words"`
}

// FieldConfig defines the size of the play field.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Ground float64 `yaml:"ground"` // y where the ground band starts
}

// PlayerConfig defines the player's box and pickup reach.
type PlayerConfig struct {
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	PickupRadius float64 `yaml:"pickup_radius"`
}

// HealthConfig defines health drain and regeneration.
type HealthConfig struct {
	Max        float64 `yaml:"max"`
	DamageRate float64 `yaml:"damage_rate"` // per second while a zombie is close
	RegenRate  float64 `yaml:"regen_rate"`  // per second otherwise
}

// ScoreConfig defines the win condition.
type ScoreConfig struct {
	Target int `yaml:"target"`
}

// TargetConfig defines zombie spawning and movement.
type TargetConfig struct {
	SpawnInterval float64 `yaml:"spawn_interval"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	LaneTop       float64 `yaml:"lane_top"`
	LaneBottom    float64 `yaml:"lane_bottom"`
	Proximity     float64 `yaml:"proximity"` // damage distance from the player's edge
}

// ProjectileConfig defines bullet movement.
type ProjectileConfig struct {
	Speed float64 `yaml:"speed"`
}

// PowerUpConfig defines power-up spawning, movement and buffs.
type PowerUpConfig struct {
	SpawnInterval        float64 `yaml:"spawn_interval"`
	Radius               float64 `yaml:"radius"`
	MoveSpeed            float64 `yaml:"move_speed"`
	Grace                float64 `yaml:"grace"`
	SafeMargin           float64 `yaml:"safe_margin"`
	HealAmount           float64 `yaml:"heal_amount"`
	SpeedFactor          float64 `yaml:"speed_factor"`
	SpeedDuration        float64 `yaml:"speed_duration"`
	ShieldDuration       float64 `yaml:"shield_duration"`
	TrailInterval        float64 `yaml:"trail_interval"`
	AttractTrailInterval float64 `yaml:"attract_trail_interval"`
}

// AbilityConfig defines the attract ability.
type AbilityConfig struct {
	Cooldown   float64 `yaml:"cooldown"`
	Duration   float64 `yaml:"duration"`
	Multiplier float64 `yaml:"multiplier"` // power-up speed factor while active
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // clamped to [0, 1] by the player
}

// Validate checks the config for values the simulation cannot run with.
// The returned error wraps ErrInvalid.
func (c ZombiesConfig) Validate() error {
	positive := []struct {
		field string
		value float64
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"health.max", c.Health.Max},
		{"targets.spawn_interval", c.Targets.SpawnInterval},
		{"targets.min_speed", c.Targets.MinSpeed},
		{"targets.width", c.Targets.Width},
		{"targets.height", c.Targets.Height},
		{"projectiles.speed", c.Projectiles.Speed},
		{"powerups.spawn_interval", c.PowerUps.SpawnInterval},
		{"powerups.radius", c.PowerUps.Radius},
		{"powerups.move_speed", c.PowerUps.MoveSpeed},
		{"powerups.trail_interval", c.PowerUps.TrailInterval},
		{"powerups.attract_trail_interval", c.PowerUps.AttractTrailInterval},
		{"ability.cooldown", c.Ability.Cooldown},
		{"ability.duration", c.Ability.Duration},
		{"ability.multiplier", c.Ability.Multiplier},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return ValidationError{Field: p.field, Message: fmt.Sprintf("must be > 0, got %g", p.value)}
		}
	}

	nonNegative := []struct {
		field string
		value float64
	}{
		{"health.damage_rate", c.Health.DamageRate},
		{"health.regen_rate", c.Health.RegenRate},
		{"player.pickup_radius", c.Player.PickupRadius},
		{"targets.proximity", c.Targets.Proximity},
		{"powerups.grace", c.PowerUps.Grace},
		{"powerups.safe_margin", c.PowerUps.SafeMargin},
		{"powerups.heal_amount", c.PowerUps.HealAmount},
		{"powerups.speed_duration", c.PowerUps.SpeedDuration},
		{"powerups.shield_duration", c.PowerUps.ShieldDuration},
	}
	for _, p := range nonNegative {
		if p.value < 0 {
			return ValidationError{Field: p.field, Message: fmt.Sprintf("must be >= 0, got %g", p.value)}
		}
	}

	if c.Score.Target <= 0 {
		return ValidationError{Field: "score.target", Message: fmt.Sprintf("must be > 0, got %d", c.Score.Target)}
	}
	if c.Targets.MaxSpeed < c.Targets.MinSpeed {
		return ValidationError{Field: "targets.max_speed", Message: "must be >= min_speed"}
	}
	if c.Targets.LaneBottom < c.Targets.LaneTop {
		return ValidationError{Field: "targets.lane_bottom", Message: "must be >= lane_top"}
	}
	if c.PowerUps.SpeedFactor < 1 {
		return ValidationError{Field: "powerups.speed_factor", Message: fmt.Sprintf("must be >= 1, got %g", c.PowerUps.SpeedFactor)}
	}
	if 2*c.PowerUps.SafeMargin >= c.Field.Width || 2*c.PowerUps.SafeMargin >= c.Field.Height {
		return ValidationError{Field: "powerups.safe_margin", Message: "leaves no room inside the field"}
	}
	if len(c.Words) == 0 {
		return ValidationError{Field: "words", Message: "at least one word is required"}
	}
	for i, w := range c.Words {
		if w == "" {
			return ValidationError{Field: fmt.Sprintf("words[%d]", i), Message: "must not be empty"}
		}
		// typing delivers letters only
		if j := strings.IndexFunc(w, func(r rune) bool { return !unicode.IsLetter(r) }); j >= 0 {
			return ValidationError{Field: fmt.Sprintf("words[%d]", i), Message: fmt.Sprintf("%q has a non-letter at byte %d", w, j)}
		}
	}
	return nil
}
