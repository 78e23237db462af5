// internal/ui/speed_button.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton показывает множитель скорости; цвет зависит от состояния.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
}

func NewSpeedButton(x, y, size float32) *SpeedButton {
	return &SpeedButton{X: x, Y: y, Size: size}
}

func (b *SpeedButton) Draw(screen *ebiten.Image, face text.Face, speedIndex int) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	clr := config.SpeedColors[speedIndex%len(config.SpeedColors)]
	vector.DrawFilledCircle(screen, b.X, b.Y, size, clr, true)
	vector.StrokeCircle(screen, b.X, b.Y, size, 1, color.White, true)
	label := fmt.Sprintf("x%g", config.SpeedMultipliers[speedIndex%len(config.SpeedMultipliers)])
	DrawTextCentered(screen, label, face, float64(b.X), float64(b.Y), color.White)
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

func (b *SpeedButton) Toggle() {
	b.LastClickTime = time.Now()
}
