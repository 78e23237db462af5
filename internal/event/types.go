// internal/event/types.go
package event

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

const (
	TowerPlaced     EventType = "TowerPlaced"   // Башня поставлена
	TowerSold       EventType = "TowerSold"     // Башня продана
	TowerUpgraded   EventType = "TowerUpgraded" // Уровень башни повышен
	LootPulled      EventType = "LootPulled"    // Гача выдала юнита
	WaveStarted     EventType = "WaveStarted"
	WaveCleared     EventType = "WaveCleared" // Волна зачищена
	EnemySpawned    EventType = "EnemySpawned"
	EnemyKilled     EventType = "EnemyKilled"  // Враг уничтожен, награда начислена
	EnemyEscaped    EventType = "EnemyEscaped" // Враг дошёл до конца пути
	ProjectileFired EventType = "ProjectileFired"
	PhaseChanged    EventType = "PhaseChanged"
)

// TowerData is the payload of tower events.
type TowerData struct {
	TowerID types.EntityID
	Type    defs.UnitID
	Level   int
	Money   int // потрачено (положительно) или возвращено при продаже
}

// EnemyData is the payload of enemy events.
type EnemyData struct {
	EnemyID types.EntityID
	Type    defs.UnitID
	Reward  int
}

// WaveData is the payload of wave events. Index is 0-based.
type WaveData struct {
	Index int
	Total int
}

// PhaseData is the payload of PhaseChanged.
type PhaseData struct {
	From component.Phase
	To   component.Phase
}

// LootData is the payload of LootPulled.
type LootData struct {
	Unit defs.UnitID
	Cost int
}
