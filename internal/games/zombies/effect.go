package zombies

import "github.com/vovakirdan/word-zombies/internal/core"

// EffectKind identifies a cosmetic particle.
type EffectKind int

const (
	EffectHit       EffectKind = iota // bullet struck a zombie
	EffectExplosion                   // zombie word cleared
	EffectMuzzle                      // shot fired
	EffectTrail                       // moving power-up
	EffectPickup                      // power-up collected
)

// String returns the name of the effect kind.
func (k EffectKind) String() string {
	switch k {
	case EffectHit:
		return "Hit"
	case EffectExplosion:
		return "Explosion"
	case EffectMuzzle:
		return "Muzzle"
	case EffectTrail:
		return "Trail"
	case EffectPickup:
		return "Pickup"
	default:
		return "?"
	}
}

// effectPreset holds lifetime and interpolation endpoints for a kind.
type effectPreset struct {
	duration           float64
	radiusFrom, radius float64
	alphaFrom, alpha   float64
	color              core.Color
}

var effectPresets = map[EffectKind]effectPreset{
	EffectHit:       {duration: 0.25, radiusFrom: 4, radius: 14, alphaFrom: 1, alpha: 0, color: core.ColorBrightYellow},
	EffectExplosion: {duration: 0.6, radiusFrom: 8, radius: 40, alphaFrom: 1, alpha: 0, color: core.ColorOrange},
	EffectMuzzle:    {duration: 0.1, radiusFrom: 6, radius: 2, alphaFrom: 1, alpha: 0.3, color: core.ColorBrightWhite},
	EffectTrail:     {duration: 0.4, radiusFrom: 4, radius: 1, alphaFrom: 0.8, alpha: 0, color: core.ColorCyan},
	EffectPickup:    {duration: 0.5, radiusFrom: 10, radius: 50, alphaFrom: 1, alpha: 0, color: core.ColorBrightGreen},
}

// Effect is a short-lived visual. It never affects gameplay.
type Effect struct {
	Kind     EffectKind
	Pos      core.Vec
	TimeLeft float64
	Color    core.Color
	preset   effectPreset
}

// Progress returns how far through its life the effect is, in [0, 1].
func (e *Effect) Progress() float64 {
	if e.preset.duration <= 0 {
		return 1
	}
	return core.ClampF(1-e.TimeLeft/e.preset.duration, 0, 1)
}

// Radius interpolates linearly over the effect's lifetime.
func (e *Effect) Radius() float64 {
	return core.Lerp(e.preset.radiusFrom, e.preset.radius, e.Progress())
}

// Alpha interpolates linearly over the effect's lifetime.
func (e *Effect) Alpha() float64 {
	return core.Lerp(e.preset.alphaFrom, e.preset.alpha, e.Progress())
}

// Frame returns the animation frame index for an n-frame sequence.
func (e *Effect) Frame(n int) int {
	if n <= 0 {
		return 0
	}
	return core.Clamp(int(e.Progress()*float64(n)), 0, n-1)
}

// EffectField holds every live effect.
type EffectField struct {
	effects []*Effect
}

// NewEffectField creates an empty effect field.
func NewEffectField() *EffectField {
	return &EffectField{}
}

// Spawn adds an effect with the kind's default color.
func (f *EffectField) Spawn(kind EffectKind, pos core.Vec) *Effect {
	p := effectPresets[kind]
	return f.SpawnColored(kind, pos, p.color)
}

// SpawnColored adds an effect with an explicit color.
func (f *EffectField) SpawnColored(kind EffectKind, pos core.Vec, c core.Color) *Effect {
	p := effectPresets[kind]
	e := &Effect{
		Kind:     kind,
		Pos:      pos,
		TimeLeft: p.duration,
		Color:    c,
		preset:   p,
	}
	f.effects = append(f.effects, e)
	return e
}

// Update ages every effect and prunes those at or below zero time left.
func (f *EffectField) Update(dt float64) {
	live := f.effects[:0]
	for _, e := range f.effects {
		e.TimeLeft -= dt
		if e.TimeLeft > 0 {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(f.effects); i++ {
		f.effects[i] = nil
	}
	f.effects = live
}

// Effects returns the live effects in spawn order.
func (f *EffectField) Effects() []*Effect {
	return f.effects
}

// Len returns the number of live effects.
func (f *EffectField) Len() int {
	return len(f.effects)
}

// Count returns the number of live effects of one kind.
func (f *EffectField) Count(kind EffectKind) int {
	n := 0
	for _, e := range f.effects {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Reset removes every effect.
func (f *EffectField) Reset() {
	f.effects = nil
}
