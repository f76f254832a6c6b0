package zombies

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/word-zombies/internal/config"
	"github.com/vovakirdan/word-zombies/internal/core"
	"github.com/vovakirdan/word-zombies/internal/registry"
)

// GameID is the registry id of the zombie game.
const GameID = "zombies"

// Game adapts a Session to the registry's Game interface.
type Game struct {
	cfg     config.ZombiesConfig
	logger  *log.Logger
	sound   SoundPlayer
	session *Session
}

func init() {
	registry.Register(GameID, "Word Zombies", func(env registry.Env) (registry.Game, error) {
		cfg, err := config.LoadZombies(env.ConfigPath)
		if err != nil {
			return nil, err
		}
		return New(cfg, env.Logger, env.Sound)
	})
}

// New creates a game over cfg. The config is validated up front so a bad
// file fails here rather than at the first Reset.
func New(cfg config.ZombiesConfig, logger *log.Logger, sound SoundPlayer) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("zombies: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{cfg: cfg, logger: logger, sound: sound}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Word Zombies" }

// Reset starts a fresh session seeded from rc. If the session cannot be
// built the previous one, if any, stays in play.
func (g *Game) Reset(rc core.RuntimeConfig) {
	s, err := NewSession(g.cfg, rc.Seed, WithLogger(g.logger), WithSound(g.sound))
	if err != nil {
		g.logger.Error("reset failed, keeping current session", "error", err)
		return
	}
	g.session = s
}

// HandleInput forwards one event to the session.
func (g *Game) HandleInput(ev core.InputEvent) {
	if g.session != nil {
		g.session.HandleInput(ev)
	}
}

// Update advances the session by dt seconds.
func (g *Game) Update(dt float64) {
	if g.session != nil {
		g.session.Update(dt)
	}
}

// Render maps the play field onto dst and draws the session.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		return
	}
	g.session.Draw(core.NewCellSurface(dst, g.session.Field()))
}

// State reports score and end-of-game status to the host.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Target: g.cfg.Score.Target}
	}
	st := g.session.State()
	return core.GameState{
		Score:    g.session.Score().Value(),
		Target:   g.session.Score().Target(),
		GameOver: st.Terminal(),
		Won:      st == StateWon,
	}
}

// Session returns the running session, or nil before the first Reset.
func (g *Game) Session() *Session { return g.session }
