// internal/audio/cues.go
package audio

import (
	"time"

	"go-path-defense/internal/component"
	"go-path-defense/internal/event"
)

// Cue — короткий синусоидальный сигнал.
type Cue struct {
	Freq     float64 // Гц
	Duration time.Duration
	Volume   float64 // в степенях двойки, 0 — без изменений, -1 — вдвое тише
}

var cues = map[event.EventType]Cue{
	event.TowerPlaced:   {Freq: 523.25, Duration: 80 * time.Millisecond, Volume: -1},
	event.TowerSold:     {Freq: 392.00, Duration: 80 * time.Millisecond, Volume: -1},
	event.TowerUpgraded: {Freq: 659.25, Duration: 120 * time.Millisecond, Volume: -1},
	event.LootPulled:    {Freq: 783.99, Duration: 150 * time.Millisecond, Volume: -1},
	event.WaveStarted:   {Freq: 440.00, Duration: 200 * time.Millisecond, Volume: -1},
	event.WaveCleared:   {Freq: 587.33, Duration: 200 * time.Millisecond, Volume: -1},
	event.EnemyKilled:   {Freq: 880.00, Duration: 40 * time.Millisecond, Volume: -3},
	event.EnemyEscaped:  {Freq: 196.00, Duration: 150 * time.Millisecond, Volume: -1},
}

var phaseCues = map[component.Phase]Cue{
	component.GameOver: {Freq: 130.81, Duration: 600 * time.Millisecond},
	component.Victory:  {Freq: 1046.50, Duration: 600 * time.Millisecond},
}

// CueFor returns the cue for e. Выстрелы и появления врагов беззвучны:
// их слишком много.
func CueFor(e event.Event) (Cue, bool) {
	if e.Type == event.PhaseChanged {
		data, ok := e.Data.(event.PhaseData)
		if !ok {
			return Cue{}, false
		}
		c, ok := phaseCues[data.To]
		return c, ok
	}
	c, ok := cues[e.Type]
	return c, ok
}
