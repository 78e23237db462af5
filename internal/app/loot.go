// internal/app/loot.go
package app

import (
	"log"

	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
)

// PullLoot pays the loot cost and draws a unit for free placement. The drawn
// unit replaces any other selection.
func (g *Game) PullLoot() bool {
	if !g.Phase().AcceptsBoardCommands() {
		return false
	}
	cost := g.Settings.LootCost
	if g.Money < cost {
		return false
	}

	unit := g.Rng.DrawLoot(g.Lib.Loot)
	if _, ok := g.Lib.TowerStats(unit); !ok {
		log.Printf("[Session] Loot draw returned unusable unit %q", unit)
		return false
	}

	g.Money -= cost
	g.clearSelections()
	g.pendingLoot = unit
	log.Printf("[Session] Loot pull: %s", g.Lib.Name(unit))

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.LootPulled,
		Data: event.LootData{Unit: unit, Cost: cost},
	})
	return true
}

// PendingLoot returns the unit waiting for free placement, or "".
func (g *Game) PendingLoot() defs.UnitID {
	return g.pendingLoot
}
