// internal/app/view.go
package app

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/system"
	"go-path-defense/internal/types"
)

// View — снимок сессии для отрисовки. Изменения View не влияют на игру.
type View struct {
	entity.Snapshot

	Phase         component.Phase
	Health        int
	Money         int
	WaveIndex     int
	WaveCount     int
	WaveLabel     string
	SelectedType  defs.UnitID
	SelectedTower types.EntityID
	PendingLoot   defs.UnitID
	Paused        bool
	SpeedIndex    int
}

// Snapshot returns a read-only copy of the session for one render.
func (g *Game) Snapshot() View {
	return View{
		Snapshot:      g.World.Snapshot(),
		Phase:         g.Phase(),
		Health:        g.Health,
		Money:         g.Money,
		WaveIndex:     g.WaveIndex,
		WaveCount:     g.Lib.WaveCount(),
		WaveLabel:     g.WaveLabel(),
		SelectedType:  g.selectedType,
		SelectedTower: g.selectedTower,
		PendingLoot:   g.pendingLoot,
		Paused:        g.paused,
		SpeedIndex:    g.speedIndex,
	}
}

// TowerInfo — данные панели выбранной башни.
type TowerInfo struct {
	ID          types.EntityID
	Type        defs.UnitID
	Name        string
	Level       int
	Damage      float64
	NextDamage  float64 // 0 на максимальном уровне
	RangePx     float64
	UpgradeCost int
	MaxLevel    bool
	CanUpgrade  bool
	SellValue   int
}

// TowerInfo describes tower id for the info panel.
func (g *Game) TowerInfo(id types.EntityID) (TowerInfo, bool) {
	tower, ok := g.World.Tower(id)
	if !ok {
		return TowerInfo{}, false
	}
	stats, ok := g.Lib.TowerStats(tower.Type)
	if !ok {
		return TowerInfo{}, false
	}

	info := TowerInfo{
		ID:        tower.ID,
		Type:      tower.Type,
		Name:      g.Lib.Name(tower.Type),
		Level:     tower.Level,
		Damage:    system.EffectiveDamage(stats, tower.Level, g.Settings),
		RangePx:   system.EffectiveRange(stats, tower.Level, g.Settings),
		MaxLevel:  tower.Level >= g.Settings.MaxTowerLevel,
		SellValue: g.sellValue(tower),
	}
	if !info.MaxLevel {
		info.NextDamage = system.EffectiveDamage(stats, tower.Level+1, g.Settings)
		info.UpgradeCost, _ = g.upgradeCost(tower)
		info.CanUpgrade = g.Money >= info.UpgradeCost
	}
	return info, true
}

// UpgradeCost returns the price of the next level, false if the tower is
// missing or already at max level.
func (g *Game) UpgradeCost(id types.EntityID) (int, bool) {
	tower, ok := g.World.Tower(id)
	if !ok || tower.Level >= g.Settings.MaxTowerLevel {
		return 0, false
	}
	return g.upgradeCost(tower)
}

// SellValue returns the refund for selling tower id.
func (g *Game) SellValue(id types.EntityID) (int, bool) {
	tower, ok := g.World.Tower(id)
	if !ok {
		return 0, false
	}
	return g.sellValue(tower), true
}

// CanAfford reports whether the shop tower id is affordable now.
func (g *Game) CanAfford(id defs.UnitID) bool {
	stats, ok := g.Lib.TowerStats(id)
	return ok && g.Money >= stats.Cost
}

// CanPlaceAt reports whether a tower could stand on tile (x, y).
// Деньги не проверяются: это подсветка клетки под курсором.
func (g *Game) CanPlaceAt(x, y int) bool {
	return g.tileAvailable(x, y)
}

// PlacingUnit returns the unit a board click would place, or "".
func (g *Game) PlacingUnit() defs.UnitID {
	if g.pendingLoot != "" {
		return g.pendingLoot
	}
	return g.selectedType
}

func (g *Game) SelectedType() defs.UnitID {
	return g.selectedType
}

func (g *Game) SelectedTower() types.EntityID {
	return g.selectedTower
}
