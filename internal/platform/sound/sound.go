// Package sound turns game cues into short synthesized effects played
// through the system speaker.
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-highway/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cue effects onto a single speaker stream.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64 // Volume in beep's log2 scale; 0 is unity gain
	ready  bool
}

// NewPlayer creates a player. Call Init before Play.
func NewPlayer() *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: -1,
	}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}

	// 100ms buffer keeps latency below one dodge window
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// SetVolume sets the gain applied to new cues.
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.volume = v
	p.mu.Unlock()
}

// Play starts the effect for c. Unknown cues and an uninitialized player
// are silent.
func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	s := Streamer(c)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(&effects.Volume{Streamer: s, Base: 2, Volume: p.volume})
	speaker.Unlock()
}

// Close stops all effects and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.ready = false
}

// Streamer builds the effect for c, or nil when the cue has none.
func Streamer(c core.Cue) beep.Streamer {
	parts, ok := cueTones[c]
	if !ok {
		return nil
	}
	streams := make([]beep.Streamer, 0, len(parts))
	for _, t := range parts {
		streams = append(streams, newToneGenerator(sampleRate, t))
	}
	return beep.Seq(streams...)
}

// Length returns the number of samples the effect for c produces.
func Length(c core.Cue) int {
	n := 0
	for _, t := range cueTones[c] {
		n += sampleRate.N(t.dur)
	}
	return n
}
