package zombies

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/word-zombies/internal/config"
	"github.com/vovakirdan/word-zombies/internal/core"
	"github.com/vovakirdan/word-zombies/internal/games/zombies/mocks"
)

func newTestSession(t *testing.T, mutate func(*config.ZombiesConfig), opts ...Option) *Session {
	t.Helper()
	cfg := config.DefaultZombiesConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := NewSession(cfg, 42, append([]Option{WithRunID("test")}, opts...)...)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

func typeWord(s *Session, word string) {
	for _, r := range word {
		s.HandleInput(core.TypeEvent(r))
	}
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultZombiesConfig()
	cfg.Words = nil
	if _, err := NewSession(cfg, 1); err == nil {
		t.Error("NewSession() with no words should fail")
	}

	cfg = config.DefaultZombiesConfig()
	cfg.Words = []string{"brain", "don't"}
	if _, err := NewSession(cfg, 1); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("NewSession() with an untypeable word = %v, expected ErrInvalid", err)
	}
}

func TestSessionFirstSpawnAtInterval(t *testing.T) {
	s := newTestSession(t, nil)

	for i := range 30 {
		if i < 29 && s.Targets().Len() != 0 {
			t.Fatalf("spawned early at frame %d", i)
		}
		s.Update(0.1)
	}

	if s.Targets().Len() != 1 {
		t.Fatalf("targets = %d, expected 1", s.Targets().Len())
	}
	z := s.Targets().Targets()[0]
	cfg := s.Config().Targets
	if z.Pos.Y < cfg.LaneTop || z.Pos.Y >= cfg.LaneBottom {
		t.Errorf("lane y = %v outside [%v, %v)", z.Pos.Y, cfg.LaneTop, cfg.LaneBottom)
	}
	if z.Speed < cfg.MinSpeed || z.Speed >= cfg.MaxSpeed {
		t.Errorf("speed = %v outside [%v, %v)", z.Speed, cfg.MinSpeed, cfg.MaxSpeed)
	}
}

func TestSessionTypingFiresAndScores(t *testing.T) {
	s := newTestSession(t, nil)
	if _, err := s.Targets().Spawn("fog", 30, 200); err != nil {
		t.Fatal(err)
	}

	typeWord(s, "fo")
	if s.Projectiles().Len() != 2 || s.Stats().Shots != 2 {
		t.Errorf("bullets=%d shots=%d, expected 2 2", s.Projectiles().Len(), s.Stats().Shots)
	}
	if s.Effects().Count(EffectMuzzle) != 2 {
		t.Errorf("muzzle effects = %d, expected 2", s.Effects().Count(EffectMuzzle))
	}

	typeWord(s, "g")
	if s.Score().Value() != 1 || s.Stats().Kills != 1 {
		t.Errorf("score=%d kills=%d, expected 1 1", s.Score().Value(), s.Stats().Kills)
	}
	if s.Effects().Count(EffectExplosion) != 1 {
		t.Error("clearing a word should explode the zombie")
	}
	if s.Targets().SelectedID() != NoTarget {
		t.Error("selection survived the clear")
	}

	s.Update(1.0 / 60)
	if s.Projectiles().Len() != 0 {
		t.Errorf("bullets at a cleared zombie = %d, expected 0", s.Projectiles().Len())
	}
	if s.Stats().Hits != 0 {
		t.Errorf("hits = %d, expected 0 for stale locks", s.Stats().Hits)
	}
}

func TestSessionMistypes(t *testing.T) {
	s := newTestSession(t, nil)
	if _, err := s.Targets().Spawn("tomb", 30, 200); err != nil {
		t.Fatal(err)
	}

	typeWord(s, "z") // matches nothing
	typeWord(s, "tx")
	typeWord(s, "1") // not a letter

	st := s.Stats()
	if st.Mistypes != 2 || st.Shots != 1 {
		t.Errorf("mistypes=%d shots=%d, expected 2 1", st.Mistypes, st.Shots)
	}
	if !near(st.Accuracy(), 1.0/3) {
		t.Errorf("Accuracy() = %v, expected 1/3", st.Accuracy())
	}
}

func TestSessionWin(t *testing.T) {
	s := newTestSession(t, func(c *config.ZombiesConfig) { c.Score.Target = 1 })
	if _, err := s.Targets().Spawn("skull", 30, 200); err != nil {
		t.Fatal(err)
	}

	typeWord(s, "skull")
	if s.State() != StateWon || !s.Score().Won() {
		t.Fatalf("State() = %v, expected won", s.State())
	}

	snap := s.Snapshot()
	s.Update(5)
	s.HandleInput(core.ActionEvent(core.ActionAbility))
	after := s.Snapshot()
	if snap.Hash() != after.Hash() {
		t.Error("a won session kept simulating")
	}
}

// killPlayer puts a zombie on the player and drains the last health.
func killPlayer(t *testing.T, s *Session) {
	t.Helper()
	z, err := s.Targets().Spawn("grave", 30, 200)
	if err != nil {
		t.Fatal(err)
	}
	z.Pos.X = s.Player().Right() + 10
	s.health.current = 10
	s.Update(1)
	if s.State() != StateOver {
		t.Fatalf("State() = %v, expected over", s.State())
	}
}

func TestSessionGameOver(t *testing.T) {
	s := newTestSession(t, nil)
	killPlayer(t, s)

	if !s.Score().Over() || s.Health().Current() != 0 {
		t.Errorf("over=%v health=%v", s.Score().Over(), s.Health().Current())
	}

	before := s.Snapshot()
	typeWord(s, "grave")
	s.HandleInput(core.ActionEvent(core.ActionAbility))
	s.Update(1)
	after := s.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("a finished session accepted input or simulated")
	}
}

func TestSessionResetFromTerminal(t *testing.T) {
	tests := []struct {
		name   string
		finish func(t *testing.T, s *Session)
		state  State
	}{
		{"won", func(t *testing.T, s *Session) {
			typeWord(s, "gra")
			s.Score().target = 1
			typeWord(s, "ve")
		}, StateWon},
		{"over", func(t *testing.T, s *Session) {
			typeWord(s, "g")
			killPlayer(t, s)
		}, StateOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, nil)
			if _, err := s.Targets().Spawn("grave", 30, 200); err != nil {
				t.Fatal(err)
			}
			s.HandleInput(core.ActionEvent(core.ActionAbility))
			s.Update(2.5)
			s.PowerUps().SpawnAt(PowerUpShield, core.V(600, 420))

			tt.finish(t, s)
			if s.State() != tt.state {
				t.Fatalf("State() = %v, expected %v", s.State(), tt.state)
			}
			if s.Projectiles().Len()+s.Effects().Len()+s.PowerUps().Len() == 0 {
				t.Fatal("nothing to reset")
			}

			s.HandleInput(core.ActionEvent(core.ActionRestart))

			if s.State() != StatePlaying {
				t.Errorf("State() = %v, expected playing", s.State())
			}
			if s.Score().Value() != 0 || s.Score().Won() || s.Score().Over() {
				t.Error("score not reset")
			}
			if s.Health().Current() != s.Health().Max() {
				t.Errorf("health = %v, expected full", s.Health().Current())
			}
			if n := s.Targets().Len() + s.Projectiles().Len() + s.PowerUps().Len() + s.Effects().Len(); n != 0 {
				t.Errorf("%d entities survived reset", n)
			}
			if s.targets.clock.Elapsed() != 0 || s.powerups.clock.Elapsed() != 0 {
				t.Error("spawn timers not zeroed")
			}
			if !s.Ability().Ready() || s.Ability().Active() || len(s.Buffs().Items()) != 0 {
				t.Error("ability or buffs not reset")
			}
			if s.Stats() != (Stats{}) {
				t.Errorf("Stats() = %+v, expected zero", s.Stats())
			}
		})
	}
}

func TestSessionPowerUpEffects(t *testing.T) {
	s := newTestSession(t, nil)
	cfg := s.Config().PowerUps
	center := s.Player().Center()

	s.health.current = 50
	s.PowerUps().SpawnAt(PowerUpHealth, center)
	s.Update(0)
	if want := 50 + cfg.HealAmount; s.Health().Current() != want {
		t.Errorf("health = %v, expected %v", s.Health().Current(), want)
	}

	s.PowerUps().SpawnAt(PowerUpSpeed, center)
	s.Update(0)
	if s.Projectiles().Multiplier() != cfg.SpeedFactor || !s.Buffs().Has(BuffSpeed) {
		t.Errorf("multiplier = %v, expected %v", s.Projectiles().Multiplier(), cfg.SpeedFactor)
	}

	s.PowerUps().SpawnAt(PowerUpShield, center)
	s.Update(0)
	if s.Health().DamageRate() != 0 || !s.Buffs().Has(BuffShield) {
		t.Errorf("damage rate = %v, expected 0 under shield", s.Health().DamageRate())
	}
	if s.Stats().PowerUps != 3 {
		t.Errorf("collected = %d, expected 3", s.Stats().PowerUps)
	}

	s.Update(cfg.SpeedDuration)
	if s.Projectiles().Multiplier() != 1 {
		t.Errorf("multiplier after expiry = %v, expected 1", s.Projectiles().Multiplier())
	}
	if s.Health().DamageRate() != s.Config().Health.DamageRate {
		t.Errorf("damage rate after expiry = %v", s.Health().DamageRate())
	}
}

func TestSessionAbilityAttracts(t *testing.T) {
	s := newTestSession(t, nil)
	p := s.PowerUps().SpawnAt(PowerUpHealth, core.V(500, 100))

	s.HandleInput(core.ActionEvent(core.ActionAbility))
	if !s.Ability().Active() {
		t.Fatal("ability not active after trigger")
	}
	s.Update(0.1)
	if p.Phase != PhaseAttracted {
		t.Errorf("Phase = %v, expected Attracted", p.Phase)
	}

	s.HandleInput(core.ActionEvent(core.ActionAbility))
	if s.Ability().Cooldown() >= s.Config().Ability.Cooldown {
		t.Error("second trigger during cooldown restarted the timer")
	}
}

func TestSessionNegativeDeltaIgnored(t *testing.T) {
	s := newTestSession(t, nil)
	s.Update(-5)
	if s.Stats().Elapsed != 0 {
		t.Errorf("Elapsed = %v, expected 0", s.Stats().Elapsed)
	}
}

func TestSessionPlaysFireOncePerShot(t *testing.T) {
	ctrl := gomock.NewController(t)
	sound := mocks.NewMockSoundPlayer(ctrl)

	sound.EXPECT().Play(SoundFire).Times(4)
	sound.EXPECT().Play(SoundExplode).Times(1)

	s := newTestSession(t, nil, WithSound(sound))
	if _, err := s.Targets().Spawn("fog", 30, 200); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Targets().Spawn("bite", 30, 210); err != nil {
		t.Fatal(err)
	}

	typeWord(s, "fq") // hit then mismatch
	typeWord(s, "z")  // no target
	typeWord(s, "og") // "fog" lost its progress, so 'o' matches nothing
	typeWord(s, "fog")
}

func TestSessionSoundIgnoresOtherEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	sound := mocks.NewMockSoundPlayer(ctrl)

	sound.EXPECT().Play(SoundFire).Times(1)
	sound.EXPECT().Play(gomock.Not(SoundFire)).AnyTimes()

	s := newTestSession(t, nil, WithSound(sound))
	if _, err := s.Targets().Spawn("rot", 30, 200); err != nil {
		t.Fatal(err)
	}
	s.HandleInput(core.ActionEvent(core.ActionAbility))
	s.PowerUps().SpawnAt(PowerUpHealth, s.Player().Center())
	s.Update(0)
	typeWord(s, "r")
}

// autoplay types the next letter of the selected zombie, or starts on the
// oldest one.
func autoplay(s *Session) {
	t, ok := s.Targets().Selected()
	if !ok {
		for _, z := range s.Targets().Targets() {
			if z.Alive() {
				t, ok = z, true
				break
			}
		}
	}
	if ok {
		s.HandleInput(core.TypeEvent([]rune(t.Remaining())[0]))
	}
}

func TestSessionDeterministic(t *testing.T) {
	run := func(seed int64) []uint64 {
		cfg := config.DefaultZombiesConfig()
		s, err := NewSession(cfg, seed)
		if err != nil {
			t.Fatal(err)
		}
		var hashes []uint64
		for frame := range 1200 {
			if frame%8 == 0 {
				autoplay(s)
			}
			if frame == 400 {
				s.HandleInput(core.ActionEvent(core.ActionAbility))
			}
			s.Update(1.0 / 60)
			snap := s.Snapshot()
			hashes = append(hashes, snap.Hash())
		}
		if s.Stats().Shots == 0 {
			t.Fatal("autoplay never fired")
		}
		return hashes
	}

	a, b := run(7), run(7)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at frame %d", i)
		}
	}

	c := run(8)
	if a[len(a)-1] == c[len(c)-1] {
		t.Error("different seeds produced the same final state")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		want     string
		terminal bool
	}{
		{StatePlaying, "playing", false},
		{StateWon, "won", true},
		{StateOver, "over", true},
	}
	for _, tt := range tests {
		if tt.state.String() != tt.want || tt.state.Terminal() != tt.terminal {
			t.Errorf("%d: String()=%q Terminal()=%v", tt.state, tt.state.String(), tt.state.Terminal())
		}
	}
}
