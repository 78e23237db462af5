package audio

import (
	"testing"
	"time"

	"go-path-defense/internal/component"
	"go-path-defense/internal/event"

	"github.com/gopxl/beep"
)

func TestCueFor(t *testing.T) {
	tests := []struct {
		name   string
		event  event.Event
		want   bool
		freqGT float64
	}{
		{"tower placed", event.Event{Type: event.TowerPlaced}, true, 0},
		{"enemy killed", event.Event{Type: event.EnemyKilled}, true, 0},
		{"projectile is silent", event.Event{Type: event.ProjectileFired}, false, 0},
		{"spawn is silent", event.Event{Type: event.EnemySpawned}, false, 0},
		{"game over", event.Event{Type: event.PhaseChanged, Data: event.PhaseData{From: component.Playing, To: component.GameOver}}, true, 0},
		{"victory", event.Event{Type: event.PhaseChanged, Data: event.PhaseData{From: component.Playing, To: component.Victory}}, true, 1000},
		{"wave transition is silent", event.Event{Type: event.PhaseChanged, Data: event.PhaseData{From: component.Playing, To: component.WaveTransition}}, false, 0},
		{"phase without payload", event.Event{Type: event.PhaseChanged}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := CueFor(tt.event)
			if ok != tt.want {
				t.Fatalf("CueFor() ok = %v, want %v", ok, tt.want)
			}
			if ok && c.Freq <= tt.freqGT {
				t.Errorf("Freq = %v, want > %v", c.Freq, tt.freqGT)
			}
			if ok && c.Duration <= 0 {
				t.Errorf("Duration = %v, want > 0", c.Duration)
			}
		})
	}
}

func TestTone(t *testing.T) {
	rate := beep.SampleRate(44100)
	c := Cue{Freq: 440, Duration: 10 * time.Millisecond, Volume: -1}

	s, err := Tone(c, rate)
	if err != nil {
		t.Fatalf("Tone() error = %v", err)
	}

	want := rate.N(c.Duration)
	samples := make([][2]float64, want+100)
	n, _ := s.Stream(samples)
	if n != want {
		t.Errorf("streamed %d samples, want %d", n, want)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -0.5001 || samples[i][0] > 0.5001 {
			t.Fatalf("sample %d = %f, want within half amplitude", i, samples[i][0])
		}
	}

	if n, ok := s.Stream(samples); n != 0 || ok {
		t.Errorf("after end Stream() = (%d, %v), want (0, false)", n, ok)
	}
}

func TestToneRejectsBadFrequency(t *testing.T) {
	if _, err := Tone(Cue{Freq: 30000, Duration: time.Millisecond}, beep.SampleRate(44100)); err == nil {
		t.Error("expected error for frequency above Nyquist")
	}
}

func TestPlayerWithoutSpeakerIsSilent(t *testing.T) {
	p := NewCuePlayer()
	d := event.NewDispatcher()
	p.Attach(d)

	// Init не вызывался: события не должны паниковать.
	d.Dispatch(event.Event{Type: event.TowerPlaced})
	d.Dispatch(event.Event{Type: event.PhaseChanged, Data: event.PhaseData{To: component.Victory}})
	p.Close()
}
