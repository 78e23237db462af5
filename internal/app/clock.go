// internal/app/clock.go
package app

// FrameClock превращает метки времени кадров в дельты для тика.
// Остановленные часы тиков не выдают; первый кадр после Start только
// запоминает метку.
type FrameClock struct {
	running bool
	primed  bool
	last    float64
}

// Start resumes the clock. Calling Start on a running clock keeps its last timestamp.
func (c *FrameClock) Start() {
	if c.running {
		return
	}
	c.running = true
	c.primed = false
}

// Stop guarantees that no further Advance reports a tick until Start.
func (c *FrameClock) Stop() {
	c.running = false
	c.primed = false
}

func (c *FrameClock) Running() bool {
	return c.running
}

// Advance records the frame timestamp now (ms) and returns the delta since the
// previous frame. ok is false when the clock is stopped or was just started.
// Большие дельты не обрезаются.
func (c *FrameClock) Advance(now float64) (deltaMs float64, ok bool) {
	if !c.running {
		return 0, false
	}
	if !c.primed {
		c.primed = true
		c.last = now
		return 0, false
	}
	deltaMs = now - c.last
	c.last = now
	return deltaMs, true
}
