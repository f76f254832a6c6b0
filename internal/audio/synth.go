// Package audio implements sound playback for the game.
// Synth renders procedural effects through the system speaker; Nop is used
// when no audio device is available.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Synth plays named, procedurally generated sound effects.
// All methods are safe to call before Initialize; they do nothing until the
// speaker is up.
type Synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
	reported    map[string]bool
}

// NewSynth creates a synthesizer with the given volume in [0, 1].
func NewSynth(logger *log.Logger, volume float64) *Synth {
	return &Synth{
		mixer:    &beep.Mixer{},
		volume:   clampVolume(volume),
		logger:   logger,
		reported: make(map[string]bool),
	}
}

// Initialize opens the speaker and starts the mixer.
func (s *Synth) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play starts the named sound. Unknown ids are logged once and ignored.
func (s *Synth) Play(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	build, ok := bank[id]
	if !ok {
		if !s.reported[id] {
			s.reported[id] = true
			if s.logger != nil {
				s.logger.Warn("sound not found", "id", id)
			}
		}
		return
	}
	if !s.initialized || s.volume <= 0 {
		return
	}

	streamer := withVolume(build(), s.volume)
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// SetVolume sets the output volume, clamped to [0, 1].
// Applies to sounds started afterwards.
func (s *Synth) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = clampVolume(v)
}

// Volume returns the current output volume.
func (s *Synth) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// Cleanup silences everything that is still playing.
func (s *Synth) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	s.initialized = false
}

func clampVolume(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// withVolume scales a stream linearly; beep volume is logarithmic.
func withVolume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Nop is a sound player that discards every request.
type Nop struct{}

// Play does nothing.
func (Nop) Play(string) {}
