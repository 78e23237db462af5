// pkg/render/color.go
package render

import "image/color"

// BoardColors holds the colours of the static board background.
type BoardColors struct {
	Background color.RGBA
	GridLine   color.RGBA
	PathOuter  color.RGBA
	PathInner  color.RGBA
}

// RangeColors — заливка и обводка круга дальности.
type RangeColors struct {
	Fill   color.RGBA
	Stroke color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced. Каналы не премультиплицируются,
// ebiten трактует color.RGBA как premultiplied, поэтому RGB масштабируются.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	scale := float64(a) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * scale),
		G: uint8(float64(c.G) * scale),
		B: uint8(float64(c.B) * scale),
		A: a,
	}
}
