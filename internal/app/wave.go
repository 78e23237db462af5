// internal/app/wave.go
package app

import (
	"fmt"
	"log"

	"go-path-defense/internal/component"
	"go-path-defense/internal/event"
	"go-path-defense/internal/system"
)

// StartWave loads the current wave into the spawn queue and enters PLAYING.
// Outside WAVE_TRANSITION it changes nothing.
func (g *Game) StartWave() bool {
	if g.Phase() != component.WaveTransition {
		return false
	}
	wave := system.NewWave(g.Lib, g.WaveIndex, g.gameTime)
	if wave == nil {
		log.Printf("[Session] Wave %d is not defined", g.WaveIndex)
		return false
	}
	g.World.Wave = wave
	if !g.StateSystem.Transition(component.Playing) {
		g.World.Wave = nil
		return false
	}

	log.Printf("[Session] Wave %d/%d started, %d units queued", g.WaveIndex+1, g.Lib.WaveCount(), wave.Pending())
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Index: g.WaveIndex, Total: g.Lib.WaveCount()},
	})
	return true
}

// WaveLabel returns "n / total", or "VICTORY!" once the game is won.
func (g *Game) WaveLabel() string {
	if g.Phase() == component.Victory {
		return "VICTORY!"
	}
	return fmt.Sprintf("%d / %d", g.WaveIndex+1, g.Lib.WaveCount())
}
