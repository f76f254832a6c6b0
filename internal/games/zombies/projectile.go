package zombies

import "github.com/vovakirdan/word-zombies/internal/core"

// Projectile is a bullet homing on a locked target.
type Projectile struct {
	Origin core.Vec
	Pos    core.Vec
	Vel    core.Vec
	Target TargetID
}

// Projectiles owns every bullet in flight.
type Projectiles struct {
	items      []Projectile
	speed      float64
	multiplier float64
}

// NewProjectiles creates an empty projectile system with a base speed.
func NewProjectiles(speed float64) *Projectiles {
	return &Projectiles{speed: speed, multiplier: 1}
}

// Fire launches a bullet from origin at the field's selected target.
// Nothing is fired when no live target is selected.
func (p *Projectiles) Fire(origin core.Vec, field *TargetField) bool {
	t, ok := field.Selected()
	if !ok {
		return false
	}
	dir := t.Center().Sub(origin).Normalize()
	p.items = append(p.items, Projectile{
		Origin: origin,
		Pos:    origin,
		Vel:    dir.Scale(p.Speed()),
		Target: t.ID,
	})
	return true
}

// Update moves every bullet toward its target's current center.
// Bullets whose target is gone are dropped silently. A bullet inside its
// target's box registers a hit effect and is removed. Bullets that leave the
// horizontal bounds are dropped. Returns the number of hits.
func (p *Projectiles) Update(dt float64, field *TargetField, effects *EffectField, bounds core.Box) int {
	hits := 0
	step := p.Speed() * dt

	live := p.items[:0]
	for _, b := range p.items {
		t, ok := field.Lookup(b.Target)
		if !ok {
			continue
		}

		aim := t.Center()
		b.Vel = aim.Sub(b.Pos).Normalize().Scale(p.Speed())
		b.Pos = b.Pos.MoveToward(aim, step)

		if t.Bounds().Contains(b.Pos) {
			effects.Spawn(EffectHit, aim)
			hits++
			continue
		}
		if b.Pos.X < bounds.X || b.Pos.X > bounds.Right() {
			continue
		}
		live = append(live, b)
	}
	p.items = live
	return hits
}

// SetMultiplier scales bullet speed, for the Speed buff.
func (p *Projectiles) SetMultiplier(m float64) {
	p.multiplier = m
}

// Multiplier returns the current speed factor.
func (p *Projectiles) Multiplier() float64 {
	return p.multiplier
}

// Speed returns the effective bullet speed.
func (p *Projectiles) Speed() float64 {
	return p.speed * p.multiplier
}

// Items returns the bullets in flight.
func (p *Projectiles) Items() []Projectile {
	return p.items
}

// Len returns the number of bullets in flight.
func (p *Projectiles) Len() int {
	return len(p.items)
}

// Reset removes every bullet and restores normal speed.
func (p *Projectiles) Reset() {
	p.items = nil
	p.multiplier = 1
}
