package zombies

import "math"

// fixedPoint scales world floats into snapshot ints.
const fixedPoint = 1000

func fixed(v float64) int {
	return int(math.Round(v * fixedPoint))
}

// Snapshot is the observable session state in primitive types, for replay
// checks and the headless simulator.
type Snapshot struct {
	Tick     uint64
	State    string
	Score    int
	Target   int
	Health   int // fixed-point
	Selected uint64

	// Each zombie is 5 ints: ID, X, Y, Typed, WordLen
	TargetCount int
	TargetData  []int

	// Each bullet is 3 ints: Target, X, Y
	ProjectileCount int
	ProjectileData  []int

	// Each power-up is 4 ints: Kind, Phase, X, Y
	PowerUpCount int
	PowerUpData  []int

	EffectCount int
	BuffCount   int
	Attracting  bool

	Stats    Stats
	RNGState uint64
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	targets := s.targets.Targets()
	targetData := make([]int, 0, len(targets)*5)
	count := 0
	for _, t := range targets {
		if !t.Alive() {
			continue
		}
		count++
		targetData = append(targetData,
			int(t.ID), //#nosec G115 -- ids stay small
			fixed(t.Pos.X), fixed(t.Pos.Y),
			len([]rune(t.Typed())), len([]rune(t.Word())))
	}

	bullets := s.projectiles.Items()
	bulletData := make([]int, 0, len(bullets)*3)
	for _, b := range bullets {
		bulletData = append(bulletData,
			int(b.Target), //#nosec G115 -- ids stay small
			fixed(b.Pos.X), fixed(b.Pos.Y))
	}

	pickups := s.powerups.Items()
	pickupData := make([]int, 0, len(pickups)*4)
	for _, p := range pickups {
		pickupData = append(pickupData, int(p.Kind), int(p.Phase), fixed(p.Pos.X), fixed(p.Pos.Y))
	}

	return Snapshot{
		Tick:            s.tick,
		State:           s.state.String(),
		Score:           s.score.Value(),
		Target:          s.score.Target(),
		Health:          fixed(s.health.Current()),
		Selected:        uint64(s.targets.SelectedID()),
		TargetCount:     count,
		TargetData:      targetData,
		ProjectileCount: len(bullets),
		ProjectileData:  bulletData,
		PowerUpCount:    len(pickups),
		PowerUpData:     pickupData,
		EffectCount:     s.effects.Len(),
		BuffCount:       len(s.buffs.Items()),
		Attracting:      s.ability.Active(),
		Stats:           s.stats,
		RNGState:        s.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TargetCount)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ProjectileCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUpCount)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EffectCount)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BuffCount)       //#nosec G115 -- hash computation
	h = h*31 + snap.Selected

	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	if snap.Attracting {
		h = h*31 + 1
	}

	for _, v := range snap.TargetData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.ProjectileData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.PowerUpData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	st := snap.Stats
	for _, v := range []int{st.Shots, st.Hits, st.Mistypes, st.Kills, st.PowerUps, fixed(st.Elapsed)} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
