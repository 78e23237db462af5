// pkg/render/board_renderer.go
package render

import (
	"image/color"
	"strconv"
	"strings"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/system"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Hover — клетка под курсором и юнит, который туда поставится.
type Hover struct {
	Tile     grid.Point
	Unit     defs.UnitID
	CanPlace bool
}

// BoardRenderer рисует игровое поле: фон с путём, башни, врагов и снаряды.
type BoardRenderer struct {
	lib      *defs.Library
	tileSize float64
	width    int
	height   int
	colors   BoardColors
	face     text.Face
	mapImage *ebiten.Image // предрендеренный фон
}

func NewBoardRenderer(lib *defs.Library, colors BoardColors, face text.Face) *BoardRenderer {
	s := lib.Settings
	r := &BoardRenderer{
		lib:      lib,
		tileSize: s.TileSize,
		width:    int(s.TileSize * float64(s.BoardWidth)),
		height:   int(s.TileSize * float64(s.BoardHeight)),
		colors:   colors,
		face:     face,
	}
	r.mapImage = ebiten.NewImage(r.width, r.height)
	r.drawBackground(r.mapImage)
	return r
}

// drawBackground рисует траву, сетку и дорогу один раз.
func (r *BoardRenderer) drawBackground(dst *ebiten.Image) {
	dst.Fill(r.colors.Background)

	w, h := float32(r.width), float32(r.height)
	ts := float32(r.tileSize)
	for x := float32(0); x <= w; x += ts {
		vector.StrokeLine(dst, x, 0, x, h, 1, r.colors.GridLine, false)
	}
	for y := float32(0); y <= h; y += ts {
		vector.StrokeLine(dst, 0, y, w, y, 1, r.colors.GridLine, false)
	}

	r.drawPathBand(dst, config.PathBandWidth, r.colors.PathOuter)
	r.drawPathBand(dst, config.PathInnerWidth, r.colors.PathInner)
}

func (r *BoardRenderer) drawPathBand(dst *ebiten.Image, width float32, clr color.RGBA) {
	path := r.lib.Path
	for i, p := range path {
		x, y := grid.TileCenter(p, r.tileSize)
		vector.DrawFilledCircle(dst, float32(x), float32(y), width/2, clr, true)
		if i == 0 {
			continue
		}
		px, py := grid.TileCenter(path[i-1], r.tileSize)
		vector.StrokeLine(dst, float32(px), float32(py), float32(x), float32(y), width, clr, true)
	}
}

// Draw рисует поле целиком. selected — выбранная башня (или types.None).
func (r *BoardRenderer) Draw(screen *ebiten.Image, snap entity.Snapshot, selected types.EntityID, hover *Hover) {
	screen.DrawImage(r.mapImage, nil)

	for i := range snap.Towers {
		t := &snap.Towers[i]
		r.drawTower(screen, t, t.ID == selected)
	}
	if hover != nil {
		r.drawHover(screen, hover)
	}
	for i := range snap.Enemies {
		r.drawEnemy(screen, &snap.Enemies[i])
	}
	for i := range snap.Projectiles {
		r.drawProjectile(screen, &snap.Projectiles[i])
	}
}

func (r *BoardRenderer) unitColor(id defs.UnitID) color.RGBA {
	if def, ok := r.lib.Unit(id); ok && def.Color.A != 0 {
		return def.Color.RGBA
	}
	return config.DefaultTowerTint
}

func (r *BoardRenderer) rangeOf(id defs.UnitID, level int) float64 {
	stats, ok := r.lib.TowerStats(id)
	if !ok {
		return 0
	}
	return system.EffectiveRange(stats, level, r.lib.Settings)
}

func (r *BoardRenderer) drawTower(screen *ebiten.Image, t *component.Tower, selected bool) {
	ts := float32(r.tileSize)
	x, y := float32(t.X)*ts, float32(t.Y)*ts
	pad := ts * 0.1
	clr := r.unitColor(t.Type)

	if selected {
		cx, cy := grid.TileCenter(grid.Point{X: t.X, Y: t.Y}, r.tileSize)
		r.drawRange(screen, cx, cy, r.rangeOf(t.Type, t.Level), RangeColors{config.RangeOkColor, config.RangeOkStroke})
	}

	vector.DrawFilledRect(screen, x+pad, y+pad, ts-2*pad, ts-2*pad, clr, true)
	stroke := DarkenColor(clr)
	if selected {
		stroke = config.SelectedColor
	}
	vector.StrokeRect(screen, x+pad, y+pad, ts-2*pad, ts-2*pad, 2, stroke, true)

	r.drawCentered(screen, initial(r.lib.Name(t.Type)), float64(x+ts/2), float64(y+ts/2), color.White)

	if t.Level > 1 {
		bx, by := x+ts-pad, y+pad
		vector.DrawFilledCircle(screen, bx, by, 7, config.PanelColor, true)
		r.drawCentered(screen, strconv.Itoa(t.Level), float64(bx), float64(by), config.TextAccentColor)
	}
}

func (r *BoardRenderer) drawHover(screen *ebiten.Image, h *Hover) {
	ts := float32(r.tileSize)
	x, y := float32(h.Tile.X)*ts, float32(h.Tile.Y)*ts
	rc := RangeColors{config.RangeOkColor, config.RangeOkStroke}
	if !h.CanPlace {
		rc = RangeColors{config.RangeBadColor, config.RangeBadStroke}
	}
	vector.DrawFilledRect(screen, x, y, ts, ts, WithAlpha(r.unitColor(h.Unit), 110), true)
	cx, cy := grid.TileCenter(h.Tile, r.tileSize)
	r.drawRange(screen, cx, cy, r.rangeOf(h.Unit, 1), rc)
}

func (r *BoardRenderer) drawRange(screen *ebiten.Image, cx, cy, radius float64, rc RangeColors) {
	if radius <= 0 {
		return
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius), rc.Fill, true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(radius), 1, rc.Stroke, true)
}

func (r *BoardRenderer) drawEnemy(screen *ebiten.Image, e *component.Enemy) {
	radius := float32(r.tileSize / 3)
	boss := false
	if stats, ok := r.lib.EnemyStats(e.Type); ok && stats.IsBoss {
		boss = true
		radius *= config.BossScale
	}
	x, y := float32(e.X), float32(e.Y)
	vector.DrawFilledCircle(screen, x, y, radius, e.Color, true)
	if boss {
		vector.StrokeCircle(screen, x, y, radius+2, 2, config.BossRingColor, true)
	}

	barW := radius * 2
	barY := y - radius - config.EnemyBarHeight - 3
	vector.DrawFilledRect(screen, x-radius, barY, barW, config.EnemyBarHeight, config.HealthBarBack, false)
	vector.DrawFilledRect(screen, x-radius, barY, barW*float32(e.HealthRatio()), config.EnemyBarHeight, config.HealthBarFill, false)
}

func (r *BoardRenderer) drawProjectile(screen *ebiten.Image, p *component.Projectile) {
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.ProjectileRadius, r.unitColor(p.Type), true)
	vector.StrokeCircle(screen, float32(p.X), float32(p.Y), config.ProjectileRadius, 1, color.White, true)
}

func (r *BoardRenderer) drawCentered(screen *ebiten.Image, s string, cx, cy float64, clr color.Color) {
	if r.face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, r.face, op)
}

// initial — первая буква имени для значка башни.
func initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.ToUpper(string([]rune(name)[0]))
}
