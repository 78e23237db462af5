// internal/interfaces/game.go
package interfaces

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

// Commands — команды игрока, которые вызывают экраны (ebiten и терминал).
type Commands interface {
	StartGame() bool
	Restart() bool
	StartWave() bool
	ToggleTowerType(id defs.UnitID) bool
	ClickTile(x, y int) bool
	SellTower(id types.EntityID) bool
	UpgradeTower(id types.EntityID) bool
	PullLoot() bool
	TogglePause() bool
	CycleSpeed()
}
