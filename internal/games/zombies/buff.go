package zombies

// BuffKind represents a timed effect granted by a power-up.
type BuffKind int

const (
	BuffSpeed  BuffKind = iota // faster bullets
	BuffShield                 // no health drain
)

// String returns the short name for HUD display.
func (k BuffKind) String() string {
	switch k {
	case BuffSpeed:
		return "SPEED"
	case BuffShield:
		return "SHIELD"
	default:
		return "?"
	}
}

// Buff is an active timed effect. The session reverts it when it expires.
type Buff struct {
	Kind     BuffKind
	TimeLeft float64
}

// Buffs holds the active timed effects, at most one per kind.
type Buffs struct {
	items []*Buff
}

// Add starts a buff, or refreshes its timer if already active.
func (b *Buffs) Add(kind BuffKind, duration float64) {
	for _, e := range b.items {
		if e.Kind == kind {
			e.TimeLeft = duration
			return
		}
	}
	b.items = append(b.items, &Buff{Kind: kind, TimeLeft: duration})
}

// Tick counts every buff down and returns the kinds that expired.
func (b *Buffs) Tick(dt float64) []BuffKind {
	var expired []BuffKind
	active := b.items[:0]

	for _, e := range b.items {
		e.TimeLeft -= dt
		if e.TimeLeft <= 0 {
			expired = append(expired, e.Kind)
		} else {
			active = append(active, e)
		}
	}

	b.items = active
	return expired
}

// Has returns true if the given buff is active.
func (b *Buffs) Has(kind BuffKind) bool {
	return b.Remaining(kind) > 0
}

// Remaining returns seconds left on a buff, or 0 if not active.
func (b *Buffs) Remaining(kind BuffKind) float64 {
	for _, e := range b.items {
		if e.Kind == kind {
			return e.TimeLeft
		}
	}
	return 0
}

// Items returns the active buffs in the order they were first granted.
func (b *Buffs) Items() []*Buff {
	return b.items
}

// Reset drops every buff without reporting expiry.
func (b *Buffs) Reset() {
	b.items = nil
}
