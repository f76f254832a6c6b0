package zombies

import "github.com/vovakirdan/word-zombies/internal/config"

// Ability is the attract pulse: a timed effect with its own cooldown.
// The active window ends on its own while the cooldown keeps running.
type Ability struct {
	cooldown   float64
	duration   float64
	multiplier float64

	cooldownLeft float64
	activeLeft   float64
}

// NewAbility creates a ready ability.
func NewAbility(cfg config.AbilityConfig) *Ability {
	return &Ability{
		cooldown:   cfg.Cooldown,
		duration:   cfg.Duration,
		multiplier: cfg.Multiplier,
	}
}

// Trigger activates the ability if its cooldown has run out.
func (a *Ability) Trigger() bool {
	if a.cooldownLeft > 0 {
		return false
	}
	a.cooldownLeft = a.cooldown
	a.activeLeft = a.duration
	return true
}

// Tick counts both timers down. Returns true on the tick the active window ends.
func (a *Ability) Tick(dt float64) bool {
	wasActive := a.Active()
	a.cooldownLeft = max(a.cooldownLeft-dt, 0)
	a.activeLeft = max(a.activeLeft-dt, 0)
	return wasActive && !a.Active()
}

// Active reports whether the attract pulse is running.
func (a *Ability) Active() bool { return a.activeLeft > 0 }

// Ready reports whether Trigger would succeed.
func (a *Ability) Ready() bool { return a.cooldownLeft <= 0 }

// Cooldown returns seconds until the ability can be triggered again.
func (a *Ability) Cooldown() float64 { return a.cooldownLeft }

// ActiveLeft returns seconds left in the active window.
func (a *Ability) ActiveLeft() float64 { return a.activeLeft }

// Multiplier returns the power-up speed factor while active.
func (a *Ability) Multiplier() float64 { return a.multiplier }

// Reset makes the ability ready and inactive.
func (a *Ability) Reset() {
	a.cooldownLeft = 0
	a.activeLeft = 0
}
