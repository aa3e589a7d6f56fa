package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SweepGenerator plays a sine tone gliding from one frequency to another
// with a linear fade out. It ends after the given duration.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep lasting d.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: max(sr.N(d), 1),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress

		sample := 0.3 * (1 - progress) * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// BlastGenerator generates a short noise burst over a low rumble.
// The noise source is a fixed-seed LCG so output is reproducible.
type BlastGenerator struct {
	sr      beep.SampleRate
	samples int
	pos     int
	seed    int64
}

// NewBlastGenerator creates a blast lasting d.
func NewBlastGenerator(sr beep.SampleRate, d time.Duration) *BlastGenerator {
	return &BlastGenerator{
		sr:      sr,
		samples: max(sr.N(d), 1),
		seed:    1,
	}
}

func (g *BlastGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, exponential decay
		envelope := math.Exp(-t * 12)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*70*t)

		sample := envelope * (0.3*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlastGenerator) Err() error {
	return nil
}

// Arpeggio plays each frequency for noteLen in sequence, attenuated by gain.
func Arpeggio(sr beep.SampleRate, noteLen time.Duration, gain float64, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		tone, err := generators.SineTone(sr, f)
		if err != nil {
			// Frequencies above Nyquist are skipped
			continue
		}
		notes = append(notes, beep.Take(sr.N(noteLen), tone))
	}
	return &effects.Gain{
		Streamer: beep.Seq(notes...),
		Gain:     gain - 1, // effects.Gain scales by 1+Gain
	}
}
