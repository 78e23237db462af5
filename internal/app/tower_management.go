// internal/app/tower_management.go
package app

import (
	"log"
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/grid"
)

// SelectTowerType selects a shop tower for placement; "" clears the selection.
// Выбор типа сбрасывает выбранную башню и юнит из гачи.
func (g *Game) SelectTowerType(id defs.UnitID) bool {
	if !g.Phase().AcceptsBoardCommands() {
		return false
	}
	if id == "" {
		g.ClearTowerType()
		return true
	}
	if !g.isPlaceable(id) {
		return false
	}
	g.clearSelections()
	g.selectedType = id
	return true
}

// ToggleTowerType selects id, or clears it when it is already selected.
func (g *Game) ToggleTowerType(id defs.UnitID) bool {
	if id != "" && g.selectedType == id {
		return g.SelectTowerType("")
	}
	return g.SelectTowerType(id)
}

func (g *Game) ClearTowerType() {
	g.selectedType = ""
}

// SelectExistingTower selects a tower on the board; types.None clears it.
func (g *Game) SelectExistingTower(id types.EntityID) bool {
	if !g.Phase().AcceptsBoardCommands() {
		return false
	}
	if id == types.None {
		g.ClearSelection()
		return true
	}
	if _, ok := g.World.Tower(id); !ok {
		return false
	}
	g.clearSelections()
	g.selectedTower = id
	return true
}

// ClearSelection deselects the board tower.
func (g *Game) ClearSelection() {
	g.selectedTower = types.None
}

func (g *Game) clearSelections() {
	g.selectedType = ""
	g.selectedTower = types.None
	g.pendingLoot = ""
}

// ClickTile handles a click on board tile (x, y): place when a type or a loot
// unit is pending, otherwise toggle selection of the tower there.
func (g *Game) ClickTile(x, y int) bool {
	if !g.Phase().AcceptsBoardCommands() {
		return false
	}
	if !grid.InBounds(grid.Point{X: x, Y: y}, g.Settings.BoardWidth, g.Settings.BoardHeight) {
		return false
	}
	if g.selectedType != "" || g.pendingLoot != "" {
		return g.PlaceTower(x, y)
	}
	tower, ok := g.World.TowerAt(x, y)
	if !ok {
		g.ClearSelection()
		return true
	}
	if tower.ID == g.selectedTower {
		g.ClearSelection()
		return true
	}
	return g.SelectExistingTower(tower.ID)
}

// PlaceTower places the pending loot unit (free) or the selected shop type at
// tile (x, y). A path or occupied tile rejects the command and drops a pending
// loot unit.
func (g *Game) PlaceTower(x, y int) bool {
	if !g.Phase().AcceptsBoardCommands() {
		return false
	}

	unit, free := g.pendingLoot, true
	if unit == "" {
		unit, free = g.selectedType, false
	}
	if unit == "" {
		return false
	}

	if !g.tileAvailable(x, y) {
		g.pendingLoot = ""
		return false
	}

	stats, ok := g.Lib.TowerStats(unit)
	if !ok {
		log.Printf("[Session] Tower definition not found for %q", unit)
		return false
	}
	cost, spent := stats.Cost, stats.Cost
	if free {
		cost, spent = 0, g.Settings.LootCost
	}
	if g.Money < cost {
		return false
	}

	g.Money -= cost
	tower := &component.Tower{
		ID:             g.World.NewID("tower"),
		Type:           unit,
		X:              x,
		Y:              y,
		Level:          1,
		LastAttackTime: component.NeverFired,
		TotalSpent:     spent,
	}
	g.World.AddTower(tower)
	if free {
		g.pendingLoot = ""
	}

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerData{TowerID: tower.ID, Type: unit, Level: 1, Money: cost},
	})
	return true
}

// SellTower refunds floor(totalSpent * sellMultiplier) and removes the tower.
func (g *Game) SellTower(id types.EntityID) bool {
	if !g.Phase().AcceptsBoardCommands() {
		return false
	}
	tower, ok := g.World.Tower(id)
	if !ok {
		return false
	}
	refund := g.sellValue(tower)
	g.World.RemoveTower(id)
	g.Money += refund
	g.ClearSelection()

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerSold,
		Data: event.TowerData{TowerID: id, Type: tower.Type, Level: tower.Level, Money: refund},
	})
	return true
}

// UpgradeTower raises the tower level by one if it is below max level and
// affordable.
func (g *Game) UpgradeTower(id types.EntityID) bool {
	if !g.Phase().AcceptsBoardCommands() {
		return false
	}
	tower, ok := g.World.Tower(id)
	if !ok || tower.Level >= g.Settings.MaxTowerLevel {
		return false
	}
	cost, ok := g.upgradeCost(tower)
	if !ok || g.Money < cost {
		return false
	}

	g.Money -= cost
	tower.Level++
	tower.TotalSpent += cost

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerUpgraded,
		Data: event.TowerData{TowerID: id, Type: tower.Type, Level: tower.Level, Money: cost},
	})
	return true
}

// upgradeCost = floor(baseCost * costMultiplier * level), baseCost — цена из
// определения даже для юнита из гачи.
func (g *Game) upgradeCost(tower *component.Tower) (int, bool) {
	stats, ok := g.Lib.TowerStats(tower.Type)
	if !ok {
		return 0, false
	}
	return int(math.Floor(float64(stats.Cost) * g.Settings.UpgradeCostMultiplier * float64(tower.Level))), true
}

func (g *Game) sellValue(tower *component.Tower) int {
	return int(math.Floor(float64(tower.TotalSpent) * g.Settings.SellMultiplier))
}

// tileAvailable: клетка на поле, не на пути и не занята.
func (g *Game) tileAvailable(x, y int) bool {
	p := grid.Point{X: x, Y: y}
	if !grid.InBounds(p, g.Settings.BoardWidth, g.Settings.BoardHeight) {
		return false
	}
	if g.Lib.Path.Contains(p) {
		return false
	}
	_, occupied := g.World.TowerAt(x, y)
	return !occupied
}

func (g *Game) isPlaceable(id defs.UnitID) bool {
	for _, p := range g.Lib.Placeable {
		if p == id {
			return true
		}
	}
	return false
}
