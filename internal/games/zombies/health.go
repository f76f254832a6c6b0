package zombies

import "github.com/vovakirdan/word-zombies/internal/core"

// Health tracks the player's hit points. Current health is clamped to
// [0, max] after every mutation.
type Health struct {
	max        float64
	current    float64
	damageRate float64
	baseDamage float64
	regenRate  float64
}

// NewHealth creates a full health model.
func NewHealth(maxHealth, damageRate, regenRate float64) *Health {
	return &Health{
		max:        maxHealth,
		current:    maxHealth,
		damageRate: damageRate,
		baseDamage: damageRate,
		regenRate:  regenRate,
	}
}

// Update drains health while a threat is active and regenerates otherwise.
// Returns whether the player is still alive.
func (h *Health) Update(dt float64, threat bool) bool {
	if threat {
		h.current -= h.damageRate * dt
	} else {
		h.current += h.regenRate * dt
	}
	h.clamp()
	return h.Alive()
}

// Heal adds a fixed amount of health.
func (h *Health) Heal(amount float64) {
	h.current += amount
	h.clamp()
}

// SetDamageRate overrides the drain rate until RestoreDamageRate.
func (h *Health) SetDamageRate(rate float64) {
	h.damageRate = rate
}

// RestoreDamageRate returns the drain rate to its configured value.
func (h *Health) RestoreDamageRate() {
	h.damageRate = h.baseDamage
}

// DamageRate returns the current drain rate per second.
func (h *Health) DamageRate() float64 {
	return h.damageRate
}

// Reset restores full health and the configured drain rate.
func (h *Health) Reset() {
	h.current = h.max
	h.damageRate = h.baseDamage
}

// Current returns the current health.
func (h *Health) Current() float64 {
	return h.current
}

// Max returns the maximum health.
func (h *Health) Max() float64 {
	return h.max
}

// Fraction returns current/max in [0, 1].
func (h *Health) Fraction() float64 {
	if h.max <= 0 {
		return 0
	}
	return h.current / h.max
}

// Alive reports whether any health remains.
func (h *Health) Alive() bool {
	return h.current > 0
}

func (h *Health) clamp() {
	h.current = core.ClampF(h.current, 0, h.max)
}

// HealthColor picks the health bar color for a fill fraction.
func HealthColor(frac float64) core.Color {
	switch {
	case frac > 0.6:
		return core.ColorGreen
	case frac > 0.3:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}
