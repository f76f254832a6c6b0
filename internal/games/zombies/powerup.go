package zombies

import (
	"math"

	"github.com/vovakirdan/word-zombies/internal/config"
	"github.com/vovakirdan/word-zombies/internal/core"
)

// PowerUpKind represents different types of power-ups.
type PowerUpKind int

const (
	PowerUpHealth PowerUpKind = iota // restore health
	PowerUpSpeed                     // faster bullets for a while
	PowerUpShield                    // no damage for a while
	powerUpKindCount
)

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpHealth:
		return '+'
	case PowerUpSpeed:
		return '»'
	case PowerUpShield:
		return '◊'
	default:
		return '?'
	}
}

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpHealth:
		return "Health"
	case PowerUpSpeed:
		return "Speed"
	case PowerUpShield:
		return "Shield"
	default:
		return "?"
	}
}

// Color returns the display color for a power-up kind.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerUpHealth:
		return core.ColorBrightGreen
	case PowerUpSpeed:
		return core.ColorBrightCyan
	case PowerUpShield:
		return core.ColorBrightBlue
	default:
		return core.ColorWhite
	}
}

// PowerUpPhase is the movement state of a power-up.
type PowerUpPhase int

const (
	PhaseTracking  PowerUpPhase = iota // idle during the grace period
	PhaseHoming                        // drifting toward the player
	PhaseAttracted                     // pulled in fast by the attract ability
)

// String returns the name of the phase.
func (p PowerUpPhase) String() string {
	switch p {
	case PhaseTracking:
		return "Tracking"
	case PhaseHoming:
		return "Homing"
	case PhaseAttracted:
		return "Attracted"
	default:
		return "?"
	}
}

const (
	spinSpeed = 180.0 // degrees per second
	pulseRate = 1.5   // pulses per second
	pulseSize = 0.2   // radius swing as a fraction
)

// PowerUp is a collectible floating on the field.
type PowerUp struct {
	Kind     PowerUpKind
	Pos      core.Vec // center
	Radius   float64
	Age      float64
	Rotation float64 // degrees, for the orbiting spark
	Phase    PowerUpPhase

	trailTimer float64
}

// Pulse returns the current radius scale of the breathing animation.
func (p *PowerUp) Pulse() float64 {
	return 1 + pulseSize*math.Sin(2*math.Pi*pulseRate*p.Age)
}

// PowerUpField spawns, moves and resolves pickups of power-ups.
type PowerUpField struct {
	items []*PowerUp
	clock spawnClock
	cfg   config.PowerUpConfig
	field core.Box
	rng   *RNG
}

// NewPowerUpField creates an empty field spawning inside field bounds.
func NewPowerUpField(cfg config.PowerUpConfig, field core.Box, rng *RNG) *PowerUpField {
	return &PowerUpField{
		clock: spawnClock{interval: cfg.SpawnInterval},
		cfg:   cfg,
		field: field,
		rng:   rng,
	}
}

// Tick advances the spawn timer and returns how many spawns are due.
func (f *PowerUpField) Tick(dt float64) int {
	return f.clock.Advance(dt)
}

// SpawnRandom adds a power-up of a uniformly random kind at a uniformly
// random position inside the safe margin.
func (f *PowerUpField) SpawnRandom() *PowerUp {
	kind := PowerUpKind(f.rng.Intn(int(powerUpKindCount)))
	m := f.cfg.SafeMargin
	pos := core.V(
		f.rng.Range(f.field.X+m, f.field.Right()-m),
		f.rng.Range(f.field.Y+m, f.field.Bottom()-m),
	)
	return f.SpawnAt(kind, pos)
}

// SpawnAt adds a power-up of the given kind centered at pos.
func (f *PowerUpField) SpawnAt(kind PowerUpKind, pos core.Vec) *PowerUp {
	p := &PowerUp{
		Kind:   kind,
		Pos:    pos,
		Radius: f.cfg.Radius,
		Phase:  PhaseTracking,
	}
	f.items = append(f.items, p)
	return p
}

// Update animates and moves every power-up, then collects those within
// reach of the player. While attracting, all power-ups move at speed times
// multiplier regardless of grace. Returns the kinds collected this tick in
// spawn order.
func (f *PowerUpField) Update(dt float64, player core.Vec, pickupRadius float64, attracting bool, multiplier float64, effects *EffectField) []PowerUpKind {
	var collected []PowerUpKind

	live := f.items[:0]
	for _, p := range f.items {
		p.Age += dt
		p.Rotation = math.Mod(p.Rotation+spinSpeed*dt, 360)

		switch {
		case attracting:
			p.Phase = PhaseAttracted
		case p.Age < f.cfg.Grace:
			p.Phase = PhaseTracking
		default:
			p.Phase = PhaseHoming
		}

		speed := f.cfg.MoveSpeed
		interval := f.cfg.TrailInterval
		switch p.Phase {
		case PhaseTracking:
			speed = 0
		case PhaseAttracted:
			speed *= multiplier
			interval = f.cfg.AttractTrailInterval
		}

		if speed > 0 {
			p.Pos = p.Pos.MoveToward(player, speed*dt)
			p.trailTimer += dt
			if p.trailTimer >= interval {
				p.trailTimer = 0
				effects.SpawnColored(EffectTrail, p.Pos, p.Kind.Color().Dim())
			}
		}

		if p.Pos.Dist(player) < p.Radius+pickupRadius {
			effects.SpawnColored(EffectPickup, p.Pos, p.Kind.Color())
			collected = append(collected, p.Kind)
			continue
		}
		live = append(live, p)
	}
	for i := len(live); i < len(f.items); i++ {
		f.items[i] = nil
	}
	f.items = live
	return collected
}

// Items returns the live power-ups in spawn order.
func (f *PowerUpField) Items() []*PowerUp {
	return f.items
}

// Len returns the number of live power-ups.
func (f *PowerUpField) Len() int {
	return len(f.items)
}

// Reset removes every power-up and zeroes the spawn timer.
func (f *PowerUpField) Reset() {
	f.items = nil
	f.clock.Reset()
}
