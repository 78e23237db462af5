// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-path-defense/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var phaseColors = map[component.Phase]color.RGBA{
	component.StartMenu:      {156, 163, 175, 255},
	component.WaveTransition: {34, 197, 94, 255},
	component.Playing:        {239, 68, 68, 255},
	component.GameOver:       {75, 85, 99, 255},
	component.Victory:        {250, 204, 21, 255},
}

// PhaseIndicator — кружок цвета текущей фазы; пульсирует при смене фазы.
type PhaseIndicator struct {
	X, Y       float32
	Radius     float32
	lastPhase  component.Phase
	lastChange time.Time
}

func NewPhaseIndicator(x, y, radius float32) *PhaseIndicator {
	return &PhaseIndicator{X: x, Y: y, Radius: radius}
}

// Draw отрисовывает индикатор
func (i *PhaseIndicator) Draw(screen *ebiten.Image, phase component.Phase) {
	if phase != i.lastPhase {
		i.lastPhase = phase
		i.lastChange = time.Now()
	}
	elapsed := time.Since(i.lastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, phaseColors[phase], true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}
