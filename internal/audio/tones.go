package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// waveform selects the oscillator shape of a tone.
type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveNoise
)

// tone is a finite oscillator with a linear pitch sweep and an
// exponential amplitude decay.
type tone struct {
	from, to float64 // Hz at start and end
	wave     waveform
	decay    float64 // amplitude falloff per second
	gain     float64
	rate     beep.SampleRate
	total    int
	pos      int
	phase    float64
	noise    uint32
}

func newTone(from, to float64, d time.Duration, wave waveform, decay, gain float64) *tone {
	return &tone{
		from:  from,
		to:    to,
		wave:  wave,
		decay: decay,
		gain:  gain,
		rate:  sampleRate,
		total: sampleRate.N(d),
		noise: 0x9e3779b9,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		progress := float64(t.pos) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress
		secs := float64(t.pos) / float64(t.rate)
		amp := t.gain * math.Exp(-t.decay*secs)

		var v float64
		switch t.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case waveNoise:
			// xorshift keeps the burst reproducible
			t.noise ^= t.noise << 13
			t.noise ^= t.noise >> 17
			t.noise ^= t.noise << 5
			v = float64(t.noise)/float64(math.MaxUint32)*2 - 1
		}

		samples[i][0] = v * amp
		samples[i][1] = v * amp

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// bank maps sound ids to constructors of fresh streamers.
var bank = map[string]func() beep.Streamer{
	"fire": func() beep.Streamer {
		return newTone(1100, 320, 90*time.Millisecond, waveSquare, 18, 0.35)
	},
	"explode": func() beep.Streamer {
		return newTone(0, 0, 260*time.Millisecond, waveNoise, 11, 0.5)
	},
	"pickup": func() beep.Streamer {
		return beep.Seq(
			newTone(660, 660, 70*time.Millisecond, waveSine, 4, 0.4),
			newTone(990, 990, 110*time.Millisecond, waveSine, 8, 0.4),
		)
	},
	"ability": func() beep.Streamer {
		return newTone(200, 800, 300*time.Millisecond, waveSine, 3, 0.3)
	},
}

// Sounds returns the ids the synthesizer knows how to play.
func Sounds() []string {
	ids := make([]string, 0, len(bank))
	for id := range bank {
		ids = append(ids, id)
	}
	return ids
}
