package zombies

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/word-zombies/internal/config"
	"github.com/vovakirdan/word-zombies/internal/core"
	"github.com/vovakirdan/word-zombies/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(config.DefaultZombiesConfig(), nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func render(g *Game) *core.Screen {
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	return screen
}

func TestGameRegistered(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if !registry.Exists(GameID) {
		t.Fatalf("%q not registered", GameID)
	}
	g, err := registry.Create(GameID, registry.Env{})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != GameID || g.Title() != "Word Zombies" {
		t.Errorf("ID()=%q Title()=%q", g.ID(), g.Title())
	}
}

func TestGameRejectsBadConfigFile(t *testing.T) {
	_, err := registry.Create(GameID, registry.Env{ConfigPath: "/nonexistent/zombies.yaml"})
	if err == nil {
		t.Fatal("Create() with a missing config file should fail")
	}

	cfg := config.DefaultZombiesConfig()
	cfg.Score.Target = 0
	if _, err := New(cfg, nil, nil); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("New() error = %v, expected ErrInvalid", err)
	}
}

func TestGameResetKeepsSessionOnError(t *testing.T) {
	g := newTestGame(t)
	prev := g.Session()

	g.cfg.Words = nil
	g.Reset(core.RuntimeConfig{Seed: 7})

	if g.Session() != prev {
		t.Error("Reset() with a broken config replaced the session")
	}

	fresh, err := New(config.DefaultZombiesConfig(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	fresh.cfg.Words = nil
	fresh.Reset(core.RuntimeConfig{Seed: 7})
	if fresh.Session() != nil {
		t.Error("Reset() with a broken config built a session")
	}
	fresh.Update(1)
	render(fresh)
}

func TestGameState(t *testing.T) {
	g := newTestGame(t)
	if _, err := g.Session().Targets().Spawn("fog", 30, 200); err != nil {
		t.Fatal(err)
	}
	for _, r := range "fog" {
		g.HandleInput(core.TypeEvent(r))
	}
	g.Update(1.0 / 60)

	st := g.State()
	if st.Score != 1 || st.Target != 10 || st.GameOver || st.Won {
		t.Errorf("State() = %+v", st)
	}
}

func TestRenderPlaying(t *testing.T) {
	g := newTestGame(t)
	if _, err := g.Session().Targets().Spawn("brain", 30, 200); err != nil {
		t.Fatal(err)
	}
	g.HandleInput(core.TypeEvent('b'))
	g.Session().PowerUps().SpawnAt(PowerUpHealth, core.V(320, 100))

	out := render(g).String()

	for _, want := range []string{"Score: 0/10", "(o)", "[x]", "brain", "♥", "+"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "GAME OVER") {
		t.Error("banner drawn while playing")
	}
}

func TestRenderWordColors(t *testing.T) {
	g := newTestGame(t)
	z, err := g.Session().Targets().Spawn("brain", 30, 200)
	if err != nil {
		t.Fatal(err)
	}
	g.HandleInput(core.TypeEvent('b'))
	g.HandleInput(core.TypeEvent('r'))

	screen := render(g)

	// label sits labelGap above the zombie, centered on it
	surface := core.NewCellSurface(screen, g.Session().Field())
	anchor := surface.ToCell(core.Translate(z.Pos, z.Size.X/2, -labelGap))
	y := anchor.Y
	x := strings.Index(screen.Row(y), "brain")
	if x < 0 {
		t.Fatalf("row %d = %q, expected the label", y, screen.Row(y))
	}
	x = len([]rune(screen.Row(y)[:x]))

	if c := screen.GetCell(x, y).Color; c != core.ColorDarkGray {
		t.Errorf("typed letter color = %v, expected dark gray", c)
	}
	if c := screen.GetCell(x+2, y).Color; c != core.ColorBrightYellow {
		t.Errorf("remaining letter color = %v, expected bright yellow", c)
	}
}

func TestRenderBanner(t *testing.T) {
	tests := []struct {
		name  string
		end   func(s *Session)
		title string
	}{
		{"won", func(s *Session) {
			s.Score().target = 1
			if _, err := s.Targets().Spawn("fog", 30, 200); err == nil {
				typeWord(s, "fog")
			}
		}, "YOU WIN!"},
		{"over", func(s *Session) {
			s.health.current = 0.5
			if z, err := s.Targets().Spawn("fog", 30, 200); err == nil {
				z.Pos.X = 100
			}
			s.Update(1)
		}, "GAME OVER!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			tt.end(g.Session())

			out := render(g).String()
			for _, want := range []string{tt.title, "Final Score:", "Press SPACE to restart"} {
				if !strings.Contains(out, want) {
					t.Errorf("screen missing %q:\n%s", want, out)
				}
			}
			if !g.State().GameOver {
				t.Error("State().GameOver = false")
			}
		})
	}
}

func TestRenderEffectsDoNotPanic(t *testing.T) {
	g := newTestGame(t)
	s := g.Session()
	for kind := EffectHit; kind <= EffectPickup; kind++ {
		s.Effects().Spawn(kind, core.V(float64(kind)*100+50, 300))
	}
	s.Effects().Spawn(EffectExplosion, core.V(-50, -50))
	s.Effects().Spawn(EffectExplosion, core.V(700, 500))

	for range 10 {
		render(g)
		s.Effects().Update(0.06)
	}
}

func TestRenderBeforeReset(t *testing.T) {
	g, err := New(config.DefaultZombiesConfig(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	screen := render(g)
	if strings.TrimSpace(screen.String()) != "" {
		t.Error("Render() before Reset drew something")
	}
	if st := g.State(); st.Target != 10 || st.GameOver {
		t.Errorf("State() = %+v", st)
	}
}
