// internal/audio/player.go
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"go-path-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// CuePlayer озвучивает события сессии. Без звуковой карты Init возвращает
// ошибку, и плеер остаётся немым.
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	Muted       bool
}

var _ event.Listener = (*CuePlayer)(nil)

func NewCuePlayer() *CuePlayer {
	return &CuePlayer{mixer: &beep.Mixer{}}
}

// Init sets up the speaker.
func (p *CuePlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Attach подписывает плеер на все события диспетчера.
func (p *CuePlayer) Attach(d *event.Dispatcher) {
	d.SubscribeAll(p)
}

// OnEvent plays the cue of e, if any.
func (p *CuePlayer) OnEvent(e event.Event) {
	if c, ok := CueFor(e); ok {
		p.Play(c)
	}
}

// Play mixes c into the output.
func (p *CuePlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.Muted {
		return
	}
	s, err := Tone(c, sampleRate)
	if err != nil {
		log.Printf("[Audio] %v", err)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close clears the mixer.
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Tone builds the streamer of c: a sine wave cut to c.Duration.
func Tone(c Cue, sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, c.Freq)
	if err != nil {
		return nil, fmt.Errorf("tone %.0f Hz: %w", c.Freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(c.Duration), sine),
		Base:     2,
		Volume:   c.Volume,
	}, nil
}
