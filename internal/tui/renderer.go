// internal/tui/renderer.go
package tui

import (
	"fmt"
	"strings"

	"go-path-defense/internal/app"
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/pkg/grid"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// CellWidth — клетка поля занимает две колонки терминала.
const CellWidth = 2

var (
	styleGrass    = tcell.StyleDefault.Background(tcell.NewRGBColor(22, 101, 52))
	stylePath     = tcell.StyleDefault.Background(tcell.NewRGBColor(161, 98, 7))
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBoss     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleAccent   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleDisabled = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Renderer рисует снимок сессии символами.
type Renderer struct {
	screen tcell.Screen
	lib    *defs.Library
	onPath map[grid.Point]bool
}

func NewRenderer(screen tcell.Screen, lib *defs.Library) *Renderer {
	onPath := make(map[grid.Point]bool)
	for y := 0; y < lib.Settings.BoardHeight; y++ {
		for x := 0; x < lib.Settings.BoardWidth; x++ {
			p := grid.Point{X: x, Y: y}
			if lib.Path.Contains(p) {
				onPath[p] = true
			}
		}
	}
	return &Renderer{screen: screen, lib: lib, onPath: onPath}
}

// Draw рисует поле, статус и подсказки. cursor — клетка под курсором.
func (r *Renderer) Draw(g *app.Game, cursor grid.Point) {
	v := g.Snapshot()
	s := r.lib.Settings
	r.screen.Clear()

	for y := 0; y < s.BoardHeight; y++ {
		for x := 0; x < s.BoardWidth; x++ {
			st := styleGrass
			if r.onPath[grid.Point{X: x, Y: y}] {
				st = stylePath
			}
			r.fill(x, y, ' ', ' ', st)
		}
	}

	for _, t := range v.Towers {
		st := tcell.StyleDefault.Background(r.unitColor(t.Type)).Foreground(tcell.ColorBlack)
		if t.ID == v.SelectedTower {
			st = st.Reverse(true)
		}
		level := ' '
		if t.Level > 1 {
			level = rune('0' + t.Level%10)
		}
		r.fill(t.X, t.Y, initial(r.lib.Name(t.Type)), level, st)
	}

	for _, e := range v.Enemies {
		p := grid.TileAt(e.X, e.Y, s.TileSize)
		ch, st := 'e', styleEnemy
		if stats, ok := r.lib.EnemyStats(e.Type); ok && stats.IsBoss {
			ch, st = 'B', styleBoss
		}
		r.overlay(p, ch, st)
	}

	for _, pr := range v.Projectiles {
		p := grid.TileAt(pr.X, pr.Y, s.TileSize)
		r.overlay(p, r.projectileGlyph(pr.Type), styleAccent)
	}

	if grid.InBounds(cursor, s.BoardWidth, s.BoardHeight) {
		r.screen.SetContent(cursor.X*CellWidth, cursor.Y, '[', nil, styleAccent)
		r.screen.SetContent(cursor.X*CellWidth+1, cursor.Y, ']', nil, styleAccent)
	}

	r.drawStatus(g, v, s.BoardHeight+1)
	r.screen.Show()
}

func (r *Renderer) drawStatus(g *app.Game, v app.View, row int) {
	pause := ""
	if v.Paused {
		pause = "  PAUSED"
	}
	status := fmt.Sprintf("Wave %s  Health %d  Money $%d  %s  x%g%s",
		v.WaveLabel, v.Health, v.Money, v.Phase, g.SpeedMultiplier(), pause)
	r.text(0, row, status, styleStatus)
	row++

	col := 0
	for i, id := range r.lib.Placeable {
		stats, _ := r.lib.TowerStats(id)
		label := fmt.Sprintf("[%d] %s $%d ", i+1, r.lib.Name(id), stats.Cost)
		st := styleStatus
		switch {
		case v.SelectedType == id:
			st = styleAccent
		case !g.CanAfford(id):
			st = styleDisabled
		}
		r.text(col, row, label, st)
		col += runewidth.StringWidth(label)
	}
	row++

	loot := fmt.Sprintf("[l] Pull loot $%d", r.lib.Settings.LootCost)
	if v.PendingLoot != "" {
		loot = fmt.Sprintf("Place %s for free!", r.lib.Name(v.PendingLoot))
	}
	r.text(0, row, loot, styleAccent)
	row++

	if info, ok := g.TowerInfo(v.SelectedTower); ok {
		up := "MAX"
		if !info.MaxLevel {
			up = fmt.Sprintf("[u] Upgrade $%d (DMG %.0f -> %.0f)", info.UpgradeCost, info.Damage, info.NextDamage)
		}
		line := fmt.Sprintf("%s Lvl %d  %s  [s] Sell +$%d", info.Name, info.Level, up, info.SellValue)
		r.text(0, row, line, styleStatus)
	}
	row++

	switch v.Phase {
	case component.StartMenu:
		r.text(0, row, "Welcome! [r] Start Game", styleAccent)
	case component.GameOver:
		r.text(0, row, "Game Over. [r] Try Again", styleBoss)
	case component.Victory:
		r.text(0, row, "Victory! [r] Play Again", styleAccent)
	default:
		r.text(0, row, "arrows move  enter place/select  [w] wave  [p] pause  [f] speed  [q] quit", styleDisabled)
	}
}

func (r *Renderer) fill(x, y int, a, b rune, st tcell.Style) {
	r.screen.SetContent(x*CellWidth, y, a, nil, st)
	r.screen.SetContent(x*CellWidth+1, y, b, nil, st)
}

// overlay ставит символ поверх клетки, сохраняя её фон.
func (r *Renderer) overlay(p grid.Point, ch rune, st tcell.Style) {
	s := r.lib.Settings
	if !grid.InBounds(p, s.BoardWidth, s.BoardHeight) {
		return
	}
	_, _, cellStyle, _ := r.screen.GetContent(p.X*CellWidth, p.Y)
	_, bg, _ := cellStyle.Decompose()
	fg, _, attrs := st.Decompose()
	merged := tcell.StyleDefault.Foreground(fg).Background(bg).Attributes(attrs)
	r.screen.SetContent(p.X*CellWidth, p.Y, ch, nil, merged)
}

func (r *Renderer) text(x, y int, s string, st tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, st)
		x += runewidth.RuneWidth(ch)
	}
}

func (r *Renderer) unitColor(id defs.UnitID) tcell.Color {
	if def, ok := r.lib.Unit(id); ok && def.Color.A != 0 {
		c := def.Color.RGBA
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.ColorFuchsia
}

// projectileGlyph — символ снаряда; широкие эмодзи заменяются звёздочкой.
func (r *Renderer) projectileGlyph(id defs.UnitID) rune {
	if stats, ok := r.lib.TowerStats(id); ok {
		for _, ch := range stats.Projectile.Glyph {
			if runewidth.RuneWidth(ch) == 1 {
				return ch
			}
			break
		}
	}
	return '*'
}

func initial(name string) rune {
	for _, ch := range strings.ToUpper(name) {
		return ch
	}
	return '?'
}
