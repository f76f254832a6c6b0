package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-zombies/internal/config"
	"github.com/vovakirdan/word-zombies/internal/core"
	"github.com/vovakirdan/word-zombies/internal/games/zombies"
)

var (
	flagSimSeconds float64
	flagSimDT      float64
	flagSimCPS     float64
	flagSimTrace   int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with an automatic typist",
	Long: `Runs a game without a terminal UI. A simple typist clears the oldest
zombie at a fixed rate of characters per second. The final state and its
hash are printed; two runs with the same flags print the same hash.

Examples:
  zombies sim --seed 7
  zombies sim --seed 7 --seconds 120 --cps 3
  zombies sim --seed 7 --trace 60`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 60, "Simulated seconds")
	simCmd.Flags().Float64Var(&flagSimDT, "dt", 1.0/60, "Seconds per frame")
	simCmd.Flags().Float64Var(&flagSimCPS, "cps", 4, "Typist speed in characters per second (0 = idle)")
	simCmd.Flags().IntVar(&flagSimTrace, "trace", 0, "Print a hash every N frames (0 = off)")
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger(flagLogPath, flagLogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := config.LoadZombies(flagConfig)
	if err != nil {
		return err
	}

	s, err := zombies.NewSession(cfg, flagSeed, zombies.WithLogger(logger))
	if err != nil {
		return err
	}

	res, err := simulate(s, simOptions{
		seconds: flagSimSeconds,
		dt:      flagSimDT,
		cps:     flagSimCPS,
		trace:   flagSimTrace,
	}, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), s, res)
	return nil
}

type simOptions struct {
	seconds float64
	dt      float64
	cps     float64
	trace   int
}

type simResult struct {
	frames int
	snap   zombies.Snapshot
}

// simulate steps s until it ends or the time runs out.
func simulate(s *zombies.Session, opts simOptions, trace io.Writer) (simResult, error) {
	if opts.dt <= 0 {
		return simResult{}, fmt.Errorf("--dt must be positive, got %v", opts.dt)
	}
	frames := int(opts.seconds / opts.dt)

	var budget float64
	n := 0
	for n < frames && !s.State().Terminal() {
		budget += opts.cps * opts.dt
		for budget >= 1 {
			budget--
			autotype(s)
		}
		s.Update(opts.dt)
		n++

		if opts.trace > 0 && n%opts.trace == 0 {
			snap := s.Snapshot()
			fmt.Fprintf(trace, "frame %6d  %016x\n", n, snap.Hash())
		}
	}
	return simResult{frames: n, snap: s.Snapshot()}, nil
}

// autotype sends the next letter of the selected zombie, or the first
// letter of the oldest one still walking.
func autotype(s *zombies.Session) {
	t, ok := s.Targets().Selected()
	if !ok {
		for _, z := range s.Targets().Targets() {
			if z.Alive() {
				t, ok = z, true
				break
			}
		}
	}
	if !ok {
		return
	}
	if rest := []rune(t.Remaining()); len(rest) > 0 {
		s.HandleInput(core.TypeEvent(rest[0]))
	}
}

func printResult(out io.Writer, s *zombies.Session, res simResult) {
	st := s.Stats()
	snap := res.snap
	fmt.Fprintf(out, "seed:      %d\n", flagSeed)
	fmt.Fprintf(out, "frames:    %d (%.1fs)\n", res.frames, st.Elapsed)
	fmt.Fprintf(out, "state:     %s\n", s.State())
	fmt.Fprintf(out, "score:     %d/%d\n", snap.Score, snap.Target)
	fmt.Fprintf(out, "health:    %.1f\n", s.Health().Current())
	fmt.Fprintf(out, "shots:     %d (hits %d, mistypes %d)\n", st.Shots, st.Hits, st.Mistypes)
	fmt.Fprintf(out, "kills:     %d\n", st.Kills)
	fmt.Fprintf(out, "power-ups: %d\n", st.PowerUps)
	fmt.Fprintf(out, "accuracy:  %.0f%%\n", st.Accuracy()*100)
	fmt.Fprintf(out, "hash:      %016x\n", snap.Hash())
}
