// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"

	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthCols          = 10
	HealthCircleRadius  = 6.0
	HealthCircleSpacing = 4.0
)

// PlayerHealthIndicator отображает здоровье игрока сеткой кружков.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует по кружку на единицу здоровья: заполненный — осталось, пустой — потеряно.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	for n := 0; n < maxHealth; n++ {
		col, row := n%HealthCols, n/HealthCols
		cx := i.X + HealthCircleRadius + float32(col)*step
		cy := i.Y + HealthCircleRadius + float32(row)*step
		if n < health {
			vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, config.HealthBarFill, true)
		} else {
			vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, config.HealthBarBack, true)
		}
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.RGBA{255, 255, 255, 90}, true)
	}
}

// Height returns the pixel height of the grid for maxHealth circles.
func (i *PlayerHealthIndicator) Height(maxHealth int) float32 {
	rows := (maxHealth + HealthCols - 1) / HealthCols
	return float32(rows) * (HealthCircleRadius*2 + HealthCircleSpacing)
}
