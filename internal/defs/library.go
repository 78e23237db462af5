// internal/defs/library.go
package defs

import (
	"go-path-defense/internal/config"
	"go-path-defense/pkg/grid"
)

// Library — неизменяемый набор статических данных одной игры:
// юниты, путь, волны, список башен магазина, таблица гачи и настройки.
// Собирается один раз при старте и проверяется Validate.
type Library struct {
	Units     map[UnitID]UnitDefinition
	Path      grid.Path
	Waves     []WaveDefinition
	Placeable []UnitID
	Loot      LootTable
	Settings  config.Settings
}

// Unit looks up a unit definition.
func (l *Library) Unit(id UnitID) (UnitDefinition, bool) {
	def, ok := l.Units[id]
	return def, ok
}

// TowerStats returns the tower-role stats of id, or false if id cannot be a tower.
func (l *Library) TowerStats(id UnitID) (*TowerStats, bool) {
	def, ok := l.Units[id]
	if !ok || def.Tower == nil {
		return nil, false
	}
	return def.Tower, true
}

// EnemyStats returns the enemy-role stats of id, or false if id cannot be an enemy.
func (l *Library) EnemyStats(id UnitID) (*EnemyStats, bool) {
	def, ok := l.Units[id]
	if !ok || def.Enemy == nil {
		return nil, false
	}
	return def.Enemy, true
}

// Name returns the display name of id, falling back to the id itself.
func (l *Library) Name(id UnitID) string {
	if def, ok := l.Units[id]; ok && def.Name != "" {
		return def.Name
	}
	return string(id)
}

// WaveCount returns the number of configured waves.
func (l *Library) WaveCount() int {
	return len(l.Waves)
}

// Wave returns wave i (0-based).
func (l *Library) Wave(i int) (WaveDefinition, bool) {
	if i < 0 || i >= len(l.Waves) {
		return WaveDefinition{}, false
	}
	return l.Waves[i], true
}

// IsLastWave reports whether i is the final wave index.
func (l *Library) IsLastWave(i int) bool {
	return i >= len(l.Waves)-1
}
