package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-highway/internal/core"
)

type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveNoise
)

// tone is a single sweep from one frequency to another.
type tone struct {
	wave waveform
	from float64 // Hz
	to   float64 // Hz
	dur  time.Duration
	gain float64
}

var cueTones = map[core.Cue][]tone{
	core.CuePickup: {
		{wave: waveSine, from: 880, to: 880, dur: 40 * time.Millisecond, gain: 0.4},
		{wave: waveSine, from: 1320, to: 1320, dur: 60 * time.Millisecond, gain: 0.4},
	},
	core.CueShield: {
		{wave: waveSine, from: 300, to: 900, dur: 180 * time.Millisecond, gain: 0.35},
	},
	core.CueShieldBreak: {
		{wave: waveSquare, from: 600, to: 200, dur: 150 * time.Millisecond, gain: 0.25},
	},
	core.CueShot: {
		{wave: waveSquare, from: 1200, to: 700, dur: 30 * time.Millisecond, gain: 0.15},
	},
	core.CueHazardShot: {
		{wave: waveNoise, dur: 80 * time.Millisecond, gain: 0.3},
	},
	core.CueCrash: {
		{wave: waveNoise, dur: 250 * time.Millisecond, gain: 0.5},
		{wave: waveSine, from: 160, to: 60, dur: 300 * time.Millisecond, gain: 0.4},
	},
}

// toneGenerator streams one tone with a short attack and a linear
// release.
type toneGenerator struct {
	sr    beep.SampleRate
	t     tone
	pos   int
	total int
	phase float64
	rng   *rand.Rand
}

func newToneGenerator(sr beep.SampleRate, t tone) *toneGenerator {
	return &toneGenerator{
		sr:    sr,
		t:     t,
		total: sr.N(t.dur),
		rng:   rand.New(rand.NewSource(int64(t.from) + 1)),
	}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			break
		}
		progress := float64(g.pos) / float64(g.total)
		v := g.sample() * g.t.gain * envelope(progress)
		samples[i][0] = v
		samples[i][1] = v

		freq := g.t.from + (g.t.to-g.t.from)*progress
		g.phase += freq / float64(g.sr)
		if g.phase >= 1 {
			g.phase -= math.Floor(g.phase)
		}
		g.pos++
		n++
	}
	return n, true
}

func (g *toneGenerator) Err() error {
	return nil
}

func (g *toneGenerator) sample() float64 {
	switch g.t.wave {
	case waveSquare:
		if g.phase < 0.5 {
			return 1
		}
		return -1
	case waveNoise:
		return g.rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * g.phase)
	}
}

// envelope ramps up over the first 5% and down over the last 30%.
func envelope(progress float64) float64 {
	const attack, release = 0.05, 0.3
	switch {
	case progress < attack:
		return progress / attack
	case progress > 1-release:
		return (1 - progress) / release
	default:
		return 1
	}
}
