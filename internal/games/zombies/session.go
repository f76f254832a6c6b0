// Package zombies implements the word-typing zombie shooter.
//
// A Session owns every subsystem and advances them once per frame in a fixed
// order. Zombies walk in from the right carrying words; typing a word's
// letters fires homing shots and clearing the word scores a point. The game
// is won at the target score and lost when health runs out.
package zombies

import (
	"fmt"
	"io"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/word-zombies/internal/config"
	"github.com/vovakirdan/word-zombies/internal/core"
)

//go:generate go tool mockgen -destination=mocks/sound_mock.go -package=mocks . SoundPlayer

// SoundPlayer plays named sounds fire-and-forget.
type SoundPlayer interface {
	Play(id string)
}

// Sound ids passed to SoundPlayer.
const (
	SoundFire    = "fire"
	SoundExplode = "explode"
	SoundPickup  = "pickup"
	SoundAbility = "ability"
)

// State is the session's top-level state.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state needs a restart to continue.
func (s State) Terminal() bool {
	return s == StateWon || s == StateOver
}

// Stats are counters for the end-of-game summary.
type Stats struct {
	Shots    int
	Hits     int
	Mistypes int
	Kills    int
	PowerUps int
	Elapsed  float64
}

// Accuracy returns the share of letters typed correctly, in [0, 1].
func (s Stats) Accuracy() float64 {
	total := s.Shots + s.Mistypes
	if total == 0 {
		return 0
	}
	return float64(s.Shots) / float64(total)
}

type nopSound struct{}

func (nopSound) Play(string) {}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSound sets the sound player.
func WithSound(p SoundPlayer) Option {
	return func(s *Session) {
		if p != nil {
			s.sound = p
		}
	}
}

// WithRunID overrides the generated run id attached to log lines.
func WithRunID(id string) Option {
	return func(s *Session) {
		s.runID = id
	}
}

// Session is one game: the root of all game state.
type Session struct {
	cfg    config.ZombiesConfig
	logger *log.Logger
	sound  SoundPlayer
	runID  string

	rng         *RNG
	words       *WordBank
	health      *Health
	score       *Score
	targets     *TargetField
	projectiles *Projectiles
	powerups    *PowerUpField
	effects     *EffectField
	ability     *Ability
	buffs       *Buffs

	field  core.Box
	player core.Box
	state  State
	stats  Stats
	tick   uint64
}

// NewSession validates cfg and builds a session in the Playing state.
func NewSession(cfg config.ZombiesConfig, seed int64, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("zombies: %w", err)
	}

	s := &Session{
		cfg:    cfg,
		logger: log.New(io.Discard),
		sound:  nopSound{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.runID == "" {
		s.runID = uuid.NewString()
	}
	s.logger = s.logger.With("run", s.runID)

	s.field = core.Box{W: cfg.Field.Width, H: cfg.Field.Height}
	s.player = core.Box{X: cfg.Player.X, Y: cfg.Player.Y, W: cfg.Player.Width, H: cfg.Player.Height}

	s.rng = NewRNG(seed)
	s.words = NewWordBank(cfg.Words, s.rng)
	s.health = NewHealth(cfg.Health.Max, cfg.Health.DamageRate, cfg.Health.RegenRate)
	s.score = NewScore(cfg.Score.Target)
	s.targets = NewTargetField(
		cfg.Targets.SpawnInterval,
		cfg.Field.Width-cfg.Targets.Width,
		core.V(cfg.Targets.Width, cfg.Targets.Height),
	)
	s.projectiles = NewProjectiles(cfg.Projectiles.Speed)
	s.powerups = NewPowerUpField(cfg.PowerUps, s.field, s.rng)
	s.effects = NewEffectField()
	s.ability = NewAbility(cfg.Ability)
	s.buffs = &Buffs{}

	s.logger.Info("session started", "seed", seed, "target", cfg.Score.Target)
	return s, nil
}

// HandleInput routes one input event. While the game is over only restart
// is accepted; otherwise letters go to the typing state machine and the
// ability key triggers the attract pulse.
func (s *Session) HandleInput(ev core.InputEvent) {
	if s.state.Terminal() {
		if ev.Action == core.ActionRestart {
			s.Reset()
		}
		return
	}

	switch ev.Action {
	case core.ActionType:
		s.typeRune(ev.Rune)
	case core.ActionAbility:
		if s.ability.Trigger() {
			s.sound.Play(SoundAbility)
			s.logger.Debug("attract triggered", "powerups", s.powerups.Len())
		}
	}
}

func (s *Session) typeRune(r rune) {
	if !unicode.IsLetter(r) {
		return
	}

	if _, ok := s.targets.Selected(); !ok && !s.targets.TryBeginTyping(r) {
		s.stats.Mistypes++
		return
	}

	if t, ok := s.targets.Selected(); ok && t.Next(r) {
		origin := s.muzzle()
		if s.projectiles.Fire(origin, s.targets) {
			s.stats.Shots++
			s.sound.Play(SoundFire)
			s.effects.Spawn(EffectMuzzle, origin)
		}
	}

	result, t := s.targets.ContinueTyping(r)
	switch result {
	case TypeMismatch:
		s.stats.Mistypes++
	case TypeCleared:
		s.stats.Kills++
		s.effects.Spawn(EffectExplosion, t.Center())
		s.sound.Play(SoundExplode)
		s.logger.Debug("zombie cleared", "id", t.ID, "word", t.Word())
		if s.score.Increment() {
			s.state = StateWon
			s.logger.Info("game won", "score", s.score.Value(), "elapsed", s.stats.Elapsed)
		}
	}
}

// Update advances the simulation by dt seconds. Does nothing once the game
// has ended.
func (s *Session) Update(dt float64) {
	if s.state.Terminal() {
		return
	}
	if dt < 0 {
		dt = 0
	}
	s.tick++
	s.stats.Elapsed += dt

	// 1. Ability and buff timers
	if s.ability.Tick(dt) {
		s.logger.Debug("attract ended")
	}
	for _, kind := range s.buffs.Tick(dt) {
		s.revertBuff(kind)
	}

	// 2. Spawns
	for n := s.targets.Tick(dt); n > 0; n-- {
		s.spawnTarget()
	}
	for n := s.powerups.Tick(dt); n > 0; n-- {
		p := s.powerups.SpawnRandom()
		s.logger.Debug("powerup spawned", "kind", p.Kind, "x", p.Pos.X, "y", p.Pos.Y)
	}

	// 3. Targets and proximity
	threat := s.targets.Advance(dt, s.player.Right(), s.cfg.Targets.Proximity)

	// 4. Health
	if !s.health.Update(dt, threat) {
		s.score.SetOver()
		s.state = StateOver
		s.logger.Info("game over", "score", s.score.Value(), "elapsed", s.stats.Elapsed)
		return
	}

	// 5. Projectiles
	s.stats.Hits += s.projectiles.Update(dt, s.targets, s.effects, s.field)

	// 6. Power-ups
	collected := s.powerups.Update(dt, s.player.Center(), s.cfg.Player.PickupRadius,
		s.ability.Active(), s.ability.Multiplier(), s.effects)
	for _, kind := range collected {
		s.applyPowerUp(kind)
	}

	// 7. Effects
	s.effects.Update(dt)
}

func (s *Session) spawnTarget() {
	word := s.words.Next()
	speed := s.rng.Range(s.cfg.Targets.MinSpeed, s.cfg.Targets.MaxSpeed)
	y := s.rng.Range(s.cfg.Targets.LaneTop, s.cfg.Targets.LaneBottom)

	t, err := s.targets.Spawn(word, speed, y)
	if err != nil {
		s.logger.Warn("zombie spawn rejected", "error", err)
		return
	}
	s.logger.Debug("zombie spawned", "id", t.ID, "word", word, "speed", speed)
}

func (s *Session) applyPowerUp(kind PowerUpKind) {
	s.stats.PowerUps++
	s.sound.Play(SoundPickup)
	s.logger.Debug("powerup collected", "kind", kind)

	switch kind {
	case PowerUpHealth:
		s.health.Heal(s.cfg.PowerUps.HealAmount)
	case PowerUpSpeed:
		s.buffs.Add(BuffSpeed, s.cfg.PowerUps.SpeedDuration)
		s.projectiles.SetMultiplier(s.cfg.PowerUps.SpeedFactor)
	case PowerUpShield:
		s.buffs.Add(BuffShield, s.cfg.PowerUps.ShieldDuration)
		s.health.SetDamageRate(0)
	}
}

func (s *Session) revertBuff(kind BuffKind) {
	switch kind {
	case BuffSpeed:
		s.projectiles.SetMultiplier(1)
	case BuffShield:
		s.health.RestoreDamageRate()
	}
	s.logger.Debug("buff expired", "kind", kind)
}

// Reset reinitializes every subsystem and returns to Playing.
// The RNG stream continues so consecutive games differ.
func (s *Session) Reset() {
	s.health.Reset()
	s.score.Reset()
	s.targets.Reset()
	s.projectiles.Reset()
	s.powerups.Reset()
	s.effects.Reset()
	s.ability.Reset()
	s.buffs.Reset()

	s.state = StatePlaying
	s.stats = Stats{}
	s.tick = 0
	s.logger.Info("session reset")
}

// muzzle returns the point bullets leave the player from.
func (s *Session) muzzle() core.Vec {
	return core.V(s.player.Right(), s.player.Y+s.player.H/3)
}

// State returns the top-level state.
func (s *Session) State() State { return s.state }

// Stats returns the end-of-game counters.
func (s *Session) Stats() Stats { return s.stats }

// RunID returns the id attached to this session's log lines.
func (s *Session) RunID() string { return s.runID }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.ZombiesConfig { return s.cfg }

// Field returns the play field bounds.
func (s *Session) Field() core.Box { return s.field }

// Player returns the player's box.
func (s *Session) Player() core.Box { return s.player }

// Health returns the health model.
func (s *Session) Health() *Health { return s.health }

// Score returns the score model.
func (s *Session) Score() *Score { return s.score }

// Targets returns the zombie field.
func (s *Session) Targets() *TargetField { return s.targets }

// Projectiles returns the bullets in flight.
func (s *Session) Projectiles() *Projectiles { return s.projectiles }

// PowerUps returns the power-up field.
func (s *Session) PowerUps() *PowerUpField { return s.powerups }

// Effects returns the effect field.
func (s *Session) Effects() *EffectField { return s.effects }

// Ability returns the attract ability.
func (s *Session) Ability() *Ability { return s.ability }

// Buffs returns the active timed buffs.
func (s *Session) Buffs() *Buffs { return s.buffs }
