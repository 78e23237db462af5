// internal/ui/side_panel.go
package ui

import (
	"fmt"
	"image/color"

	"go-path-defense/internal/app"
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	shopButtonHeight = 44
	shopColumns      = 2
)

// SidePanel — правая панель: статус, магазин, гача, старт волны и панель башни.
type SidePanel struct {
	X, Width, Height float64

	Health      *PlayerHealthIndicator
	Phase       *PhaseIndicator
	Speed       *SpeedButton
	Pause       *PauseButton
	Info        *InfoPanel
	ShopButtons []*Button
	shopUnits   []defs.UnitID
	LootButton  *Button
	WaveButton  *Button
}

// NewSidePanel раскладывает панель для списка башен магазина.
func NewSidePanel(lib *defs.Library, x, width, height int) *SidePanel {
	p := &SidePanel{
		X:      float64(x),
		Width:  float64(width),
		Height: float64(height),
		Health: NewPlayerHealthIndicator(float32(x+panelMargin), 40),
		Phase:  NewPhaseIndicator(float32(x+width-30), 20, 8),
		Speed:  NewSpeedButton(float32(x+width-90), 20, 14),
		Pause:  NewPauseButton(float32(x+width-55), 20, 10, config.TextLightColor, config.TextAccentColor),
		Info:   NewInfoPanel(float64(x), float64(width), float64(height)),
	}

	bw := (width - (shopColumns+1)*panelMargin) / shopColumns
	top := 150
	for i, id := range lib.Placeable {
		col, row := i%shopColumns, i/shopColumns
		bx := x + panelMargin + col*(bw+panelMargin)
		by := top + row*(shopButtonHeight+panelMargin)
		b := NewButton(bx, by, bw, shopButtonHeight, lib.Name(id), config.ButtonColor)
		if stats, ok := lib.TowerStats(id); ok {
			b.SubText = fmt.Sprintf("$%d", stats.Cost)
		}
		p.ShopButtons = append(p.ShopButtons, b)
		p.shopUnits = append(p.shopUnits, id)
	}

	rows := (len(lib.Placeable) + shopColumns - 1) / shopColumns
	y := top + rows*(shopButtonHeight+panelMargin) + panelMargin
	fullWidth := width - 2*panelMargin
	p.LootButton = NewButton(x+panelMargin, y, fullWidth, shopButtonHeight, "Pull Loot", config.LootColor)
	p.LootButton.SubText = fmt.Sprintf("$%d", lib.Settings.LootCost)
	y += shopButtonHeight + 3*panelMargin
	p.WaveButton = NewButton(x+panelMargin, y, fullWidth, shopButtonHeight, "Start Wave", config.UpgradeColor)
	return p
}

// Update синхронизирует кнопки с состоянием сессии.
func (p *SidePanel) Update(g *app.Game) {
	view := g.Snapshot()
	board := view.Phase.AcceptsBoardCommands()
	for i, b := range p.ShopButtons {
		id := p.shopUnits[i]
		b.Selected = view.SelectedType == id
		b.Disabled = !board || !g.CanAfford(id)
	}
	p.LootButton.Disabled = !board || view.Money < g.Settings.LootCost
	p.LootButton.Selected = view.PendingLoot != ""
	p.WaveButton.Disabled = view.Phase != component.WaveTransition

	if info, ok := g.TowerInfo(view.SelectedTower); ok {
		p.Info.SetTarget(info)
	} else {
		p.Info.Hide()
	}
	p.Info.Update()
}

// HandleClick выполняет команду по клику в панели. Возвращает false, если клик мимо.
func (p *SidePanel) HandleClick(g *app.Game, x, y int) bool {
	if float64(x) < p.X {
		return false
	}
	switch action := p.Info.HandleClick(x, y); action {
	case InfoUpgrade:
		g.UpgradeTower(g.SelectedTower())
		return true
	case InfoSell:
		g.SellTower(g.SelectedTower())
		return true
	}
	if p.Speed.IsClicked(x, y) {
		g.CycleSpeed()
		p.Speed.Toggle()
		return true
	}
	if p.Pause.IsClicked(x, y) {
		if g.TogglePause() {
			p.Pause.Toggle()
		}
		return true
	}
	for i, b := range p.ShopButtons {
		if b.IsClicked(x, y) {
			g.ToggleTowerType(p.shopUnits[i])
			return true
		}
	}
	if p.LootButton.IsClicked(x, y) {
		g.PullLoot()
		return true
	}
	if p.WaveButton.IsClicked(x, y) {
		g.StartWave()
		return true
	}
	return true
}

// Draw рисует панель целиком.
func (p *SidePanel) Draw(screen *ebiten.Image, g *app.Game, face text.Face, mx, my int) {
	view := g.Snapshot()
	vector.DrawFilledRect(screen, float32(p.X), 0, float32(p.Width), float32(p.Height), config.PanelColor, true)
	vector.StrokeLine(screen, float32(p.X), 0, float32(p.X), float32(p.Height), 2, config.PanelStroke, true)

	tx := p.X + panelMargin
	DrawText(screen, fmt.Sprintf("Wave %s", view.WaveLabel), face, tx, 12, config.TextAccentColor)
	p.Phase.Draw(screen, view.Phase)
	p.Speed.Draw(screen, face, view.SpeedIndex)
	p.Pause.Draw(screen, view.Paused)

	p.Health.Draw(screen, view.Health, g.Settings.InitialHealth)
	y := 40 + float64(p.Health.Height(g.Settings.InitialHealth)) + 6
	DrawText(screen, fmt.Sprintf("Health: %d", view.Health), face, tx, y, config.TextLightColor)
	DrawText(screen, fmt.Sprintf("Money: $%d", view.Money), face, tx+p.Width/2, y, config.TextAccentColor)

	for _, b := range p.ShopButtons {
		b.Draw(screen, face, mx, my)
	}
	p.LootButton.Draw(screen, face, mx, my)
	if view.PendingLoot != "" {
		notice := fmt.Sprintf("Place %s for free!", g.Lib.Name(view.PendingLoot))
		DrawText(screen, notice, face, tx, float64(p.LootButton.Rect.Max.Y)+4, config.TextAccentColor)
	}
	p.WaveButton.Draw(screen, face, mx, my)

	if view.Paused {
		DrawTextCentered(screen, "PAUSED", face, p.X+p.Width/2, float64(p.WaveButton.Rect.Max.Y)+20, color.RGBA{250, 204, 21, 255})
	}
	p.Info.Draw(screen, face, mx, my)
}
