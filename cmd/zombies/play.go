package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/word-zombies/internal/audio"
	"github.com/vovakirdan/word-zombies/internal/config"
	"github.com/vovakirdan/word-zombies/internal/core"
	"github.com/vovakirdan/word-zombies/internal/games/zombies"
	"github.com/vovakirdan/word-zombies/internal/platform/tui"
	"github.com/vovakirdan/word-zombies/internal/registry"
)

var (
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Word Zombies",
	Long: `Start a game in the terminal.

Controls:
  letters    - Type the word over a zombie to shoot it
  Tab        - Attract: pull power-ups to you, then wait for the cooldown
  Space      - Restart after the game ends
  Ctrl+S     - Save a screenshot
  ?          - Show all keys
  Esc/Ctrl+C - Quit

Power-ups:
  +  Health  restores health
  »  Speed   faster bullets for a while
  ◊  Shield  no damage for a while

Examples:
  zombies play
  zombies play --seed 42
  zombies play --mute
  zombies play --volume 0.2
  zombies play --config ./my-zombies.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", -1, "Sound volume 0..1 (default: from config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger(flagLogPath, flagLogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := config.LoadZombies(flagConfig)
	if err != nil {
		return err
	}

	sound, cleanup := newSound(logger, cfg.Audio, flagMute, flagVolume)
	defer cleanup()

	game, err := registry.Create(zombies.GameID, registry.Env{
		Logger:     logger,
		Sound:      sound,
		ConfigPath: flagConfig,
	})
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	logger.Info("starting", "game", game.ID(), "fps", rc.TickRate, "size", fmt.Sprintf("%dx%d", width, height))

	if err := tui.Run(game, rc, tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// newSound starts the synthesizer, falling back to silence when audio is
// disabled or the device cannot be opened. A negative volume keeps the
// configured one.
func newSound(logger *log.Logger, cfg config.AudioConfig, mute bool, volume float64) (zombies.SoundPlayer, func()) {
	if mute || !cfg.Enabled {
		return audio.Nop{}, func() {}
	}

	synth := audio.NewSynth(logger, cfg.Volume)
	if volume >= 0 {
		synth.SetVolume(volume)
	}
	if err := synth.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing muted", "error", err)
		return audio.Nop{}, func() {}
	}
	logger.Debug("audio ready", "volume", synth.Volume(), "sounds", audio.Sounds())
	return synth, synth.Cleanup
}
