// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton: две полоски во время игры, треугольник на паузе.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image, paused bool) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	s := b.Size * float32(scale)

	if paused {
		// Треугольник (play) из вертикальных линий убывающей высоты
		for i := float32(0); i <= 2*s; i++ {
			h := s * 1.2 * (1 - i/(2*s))
			vector.StrokeLine(screen, b.X-s+i, b.Y-h, b.X-s+i, b.Y+h, 1, b.PlayColor, true)
		}
		return
	}
	// Две полоски (pause)
	width := s * 0.6
	height := s * 2.0
	spacing := s * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
}

func (b *PauseButton) IsClicked(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*2
}

func (b *PauseButton) Toggle() {
	b.LastClickTime = time.Now()
}
