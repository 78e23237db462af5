// internal/ui/modal.go
package ui

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Modal — затемнение всего экрана, заголовок и одна кнопка.
type Modal struct {
	Title         string
	Button        *Button
	width, height int
}

// HasModal reports whether phase is shown as a modal.
func HasModal(phase component.Phase) bool {
	return phase == component.StartMenu || phase.IsTerminal()
}

// ModalFor returns the modal shown in phase, or nil if the phase has none.
func ModalFor(phase component.Phase, screenW, screenH int) *Modal {
	var title, label string
	switch phase {
	case component.StartMenu:
		title, label = "Welcome!", "Start Game"
	case component.GameOver:
		title, label = "Game Over", "Try Again"
	case component.Victory:
		title, label = "Victory!", "Play Again"
	default:
		return nil
	}
	const w, h = 220, 50
	x := (screenW - w) / 2
	y := screenH/2 + 10
	return &Modal{
		Title:  title,
		Button: NewButton(x, y, w, h, label, config.UpgradeColor),
		width:  screenW,
		height: screenH,
	}
}

func (m *Modal) Draw(screen *ebiten.Image, face text.Face, mx, my int) {
	vector.DrawFilledRect(screen, 0, 0, float32(m.width), float32(m.height), config.ModalShadeColor, false)

	const bw, bh = 360, 200
	bx := float32(m.width-bw) / 2
	by := float32(m.height-bh) / 2
	vector.DrawFilledRect(screen, bx, by, bw, bh, config.PanelColor, true)
	vector.StrokeRect(screen, bx, by, bw, bh, 2, config.PanelStroke, true)

	DrawTextCentered(screen, m.Title, face, float64(m.width)/2, float64(by)+50, config.TextAccentColor)
	m.Button.Draw(screen, face, mx, my)
}
