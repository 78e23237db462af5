// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect     image.Rectangle
	Text     string
	SubText  string // вторая строка мелким планом, может быть пустой
	Color    color.RGBA
	Selected bool
	Disabled bool
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h int, label string, clr color.RGBA) *Button {
	return &Button{
		Rect:  image.Rect(x, y, x+w, y+h),
		Text:  label,
		Color: clr,
	}
}

// Contains reports whether the point lies inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked проверяет, был ли сделан клик по активной кнопке.
func (b *Button) IsClicked(x, y int) bool {
	return !b.Disabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку; (mx, my) — позиция курсора для подсветки.
func (b *Button) Draw(screen *ebiten.Image, face text.Face, mx, my int) {
	bg := b.Color
	switch {
	case b.Disabled:
		bg = config.ButtonDisabled
	case b.Contains(mx, my):
		bg = lighten(bg)
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)

	stroke := color.RGBA{156, 163, 175, 255}
	if b.Selected {
		stroke = config.SelectedColor
	}
	vector.StrokeRect(screen, x, y, w, h, 2, stroke, true)

	cx := float64(b.Rect.Min.X) + float64(b.Rect.Dx())/2
	cy := float64(b.Rect.Min.Y) + float64(b.Rect.Dy())/2
	textColor := config.TextLightColor
	if b.Disabled {
		textColor = color.RGBA{156, 163, 175, 255}
	}
	if b.SubText == "" {
		DrawTextCentered(screen, b.Text, face, cx, cy, textColor)
		return
	}
	DrawTextCentered(screen, b.Text, face, cx, cy-8, textColor)
	DrawTextCentered(screen, b.SubText, face, cx, cy+8, textColor)
}

func lighten(c color.RGBA) color.RGBA {
	up := func(v uint8) uint8 {
		if v > 215 {
			return 255
		}
		return v + 40
	}
	return color.RGBA{up(c.R), up(c.G), up(c.B), c.A}
}
