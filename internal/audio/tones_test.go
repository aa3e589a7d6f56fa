package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// drain streams s to completion and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for range 10000 {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestSweepGeneratorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	gen := NewSweepGenerator(rate, 1000, 200, 100*time.Millisecond)

	samples := drain(t, gen)

	if len(samples) != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), len(samples))
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("Sample %d invalid: %v", i, s)
		}
	}
	if gen.Err() != nil {
		t.Errorf("Expected no error, got: %v", gen.Err())
	}
}

func TestSweepGeneratorFadesOut(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(t, NewSweepGenerator(rate, 440, 440, 200*time.Millisecond))

	peak := func(from, to int) float64 {
		p := 0.0
		for _, s := range samples[from:to] {
			p = max(p, s[0], -s[0])
		}
		return p
	}

	quarter := len(samples) / 4
	if head, tail := peak(0, quarter), peak(3*quarter, len(samples)); tail >= head {
		t.Errorf("Expected fade out: head peak %f, tail peak %f", head, tail)
	}
}

func TestBlastGeneratorDeterministic(t *testing.T) {
	rate := beep.SampleRate(44100)
	a := drain(t, NewBlastGenerator(rate, 50*time.Millisecond))
	b := drain(t, NewBlastGenerator(rate, 50*time.Millisecond))

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs", i)
		}
		if a[i][0] < -1 || a[i][0] > 1 {
			t.Fatalf("sample %d out of range: %f", i, a[i][0])
		}
	}
}

func TestArpeggioLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(t, Arpeggio(rate, 50*time.Millisecond, 0.5, 440, 880))

	if len(samples) != 2*rate.N(50*time.Millisecond) {
		t.Errorf("Expected two notes of samples, got %d", len(samples))
	}
	for i, s := range samples {
		if s[0] < -0.5001 || s[0] > 0.5001 {
			t.Fatalf("Sample %d exceeds gain: %f", i, s[0])
		}
	}
}

func TestEventStreamer(t *testing.T) {
	tests := []struct {
		event core.Event
		sound bool
	}{
		{core.EventFire, true},
		{core.EventKill, true},
		{core.EventWin, true},
		{core.EventLoss, true},
		{core.Event(0), false},
	}

	for _, tc := range tests {
		t.Run(tc.event.String(), func(t *testing.T) {
			s := EventStreamer(tc.event)
			if (s != nil) != tc.sound {
				t.Fatalf("EventStreamer(%s) nil = %v", tc.event, s == nil)
			}
			if s != nil && len(drain(t, s)) == 0 {
				t.Error("Expected a non-empty sound")
			}
		})
	}
}

func TestSoundManagerUninitialized(t *testing.T) {
	sm := NewSoundManager()

	// None of these touch the audio device.
	sm.Play(core.EventFire)
	sm.PlayAll([]core.Event{core.EventKill, core.EventWin})
	sm.Cleanup()

	if sm.initialized {
		t.Error("Expected the manager to stay uninitialized")
	}

	var nilManager *SoundManager
	nilManager.Play(core.EventLoss)
	nilManager.Cleanup()
}
