// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"math"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	infoPanelHeight = 170
	panelMargin     = 10
	animationSpeed  = 20.0
	lineHeight      = 18
)

// InfoPanelAction — что нажато в панели башни.
type InfoPanelAction int

const (
	InfoNone InfoPanelAction = iota
	InfoUpgrade
	InfoSell
)

// InfoPanel выезжает снизу боковой панели, пока выбрана башня.
type InfoPanel struct {
	X, Width      float64
	screenHeight  float64
	currentY      float64
	targetY       float64
	info          app.TowerInfo
	visible       bool
	UpgradeButton *Button
	SellButton    *Button
}

// NewInfoPanel creates a hidden panel occupying [x, x+width) at the bottom of the screen.
func NewInfoPanel(x, width, screenHeight float64) *InfoPanel {
	p := &InfoPanel{
		X:            x,
		Width:        width,
		screenHeight: screenHeight,
		currentY:     screenHeight,
		targetY:      screenHeight,
	}
	p.UpgradeButton = NewButton(0, 0, 0, 0, "Upgrade", config.UpgradeColor)
	p.SellButton = NewButton(0, 0, 0, 0, "Sell", config.SellColor)
	return p
}

// SetTarget показывает панель с данными башни.
func (p *InfoPanel) SetTarget(info app.TowerInfo) {
	p.info = info
	p.visible = true
	p.targetY = p.screenHeight - infoPanelHeight
}

func (p *InfoPanel) Hide() {
	p.visible = false
	p.targetY = p.screenHeight
}

func (p *InfoPanel) Visible() bool {
	return p.visible
}

// Update двигает панель к цели и раскладывает кнопки.
func (p *InfoPanel) Update() {
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else {
			p.currentY += math.Copysign(animationSpeed, diff)
		}
	}

	bw := int(p.Width-3*panelMargin) / 2
	by := int(p.currentY) + infoPanelHeight - 50
	bx := int(p.X) + panelMargin
	p.UpgradeButton.Rect.Min.X, p.UpgradeButton.Rect.Min.Y = bx, by
	p.UpgradeButton.Rect.Max.X, p.UpgradeButton.Rect.Max.Y = bx+bw, by+40
	p.SellButton.Rect.Min.X, p.SellButton.Rect.Min.Y = bx+bw+panelMargin, by
	p.SellButton.Rect.Max.X, p.SellButton.Rect.Max.Y = bx+2*bw+panelMargin, by+40

	if p.info.MaxLevel {
		p.UpgradeButton.Text = "MAX"
		p.UpgradeButton.SubText = ""
		p.UpgradeButton.Disabled = true
	} else {
		p.UpgradeButton.Text = "Upgrade"
		p.UpgradeButton.SubText = fmt.Sprintf("$%d", p.info.UpgradeCost)
		p.UpgradeButton.Disabled = !p.info.CanUpgrade
	}
	p.SellButton.SubText = fmt.Sprintf("+$%d", p.info.SellValue)
}

// HandleClick возвращает действие, если клик попал в кнопку панели.
func (p *InfoPanel) HandleClick(x, y int) InfoPanelAction {
	if !p.visible {
		return InfoNone
	}
	switch {
	case p.UpgradeButton.IsClicked(x, y):
		return InfoUpgrade
	case p.SellButton.IsClicked(x, y):
		return InfoSell
	}
	return InfoNone
}

// Draw рисует панель, если она хотя бы частично видна.
func (p *InfoPanel) Draw(screen *ebiten.Image, face text.Face, mx, my int) {
	if p.currentY >= p.screenHeight {
		return
	}
	y := float32(p.currentY)
	vector.DrawFilledRect(screen, float32(p.X), y, float32(p.Width), infoPanelHeight, config.PanelColor, true)
	vector.StrokeRect(screen, float32(p.X), y, float32(p.Width), infoPanelHeight, 2, config.PanelStroke, true)

	tx := p.X + panelMargin
	ty := p.currentY + panelMargin
	DrawText(screen, fmt.Sprintf("%s (Lvl %d)", p.info.Name, p.info.Level), face, tx, ty, config.TextAccentColor)
	ty += lineHeight
	if p.info.MaxLevel {
		DrawText(screen, fmt.Sprintf("DMG: %.0f", p.info.Damage), face, tx, ty, config.TextLightColor)
	} else {
		DrawText(screen, fmt.Sprintf("DMG: %.0f -> %.0f", p.info.Damage, p.info.NextDamage), face, tx, ty, config.TextLightColor)
	}
	ty += lineHeight
	DrawText(screen, fmt.Sprintf("Range: %.0f px", p.info.RangePx), face, tx, ty, config.TextLightColor)

	p.UpgradeButton.Draw(screen, face, mx, my)
	p.SellButton.Draw(screen, face, mx, my)
}
