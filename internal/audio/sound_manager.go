// Package audio plays short generated sound effects for game events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager owns the speaker and mixes event sounds.
// All methods are safe for concurrent use and no-ops until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues the sound for a game event. Unknown events are silent.
// Safe to call on a nil manager.
func (sm *SoundManager) Play(ev core.Event) {
	if sm == nil {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if s := EventStreamer(ev); s != nil {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
}

// PlayAll plays the sounds for every event of a step.
func (sm *SoundManager) PlayAll(events []core.Event) {
	for _, ev := range events {
		sm.Play(ev)
	}
}

// Cleanup stops all sounds and closes the audio device
func (sm *SoundManager) Cleanup() {
	if sm == nil {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// EventStreamer returns a finite streamer for the event, or nil.
func EventStreamer(ev core.Event) beep.Streamer {
	switch ev {
	case core.EventFire:
		return NewSweepGenerator(sampleRate, 1200, 400, 80*time.Millisecond)
	case core.EventKill:
		return NewBlastGenerator(sampleRate, 200*time.Millisecond)
	case core.EventWin:
		return Arpeggio(sampleRate, 120*time.Millisecond, 0.25, 523.25, 659.25, 783.99, 1046.5)
	case core.EventLoss:
		return NewSweepGenerator(sampleRate, 440, 60, 900*time.Millisecond)
	default:
		return nil
	}
}
