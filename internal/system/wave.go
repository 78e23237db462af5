// internal/system/wave.go
package system

import (
	"log"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/grid"
)

// SpawnSystem выпускает врагов активной волны: не больше одного за тик,
// без догоняющего спавна после длинной паузы.
type SpawnSystem struct {
	lib *defs.Library
	rng *utils.PRNGService
}

func NewSpawnSystem(lib *defs.Library, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{lib: lib, rng: rng}
}

// Update spawns the next queued enemy if spawning is allowed and the interval
// has strictly elapsed since the previous spawn. Returns the new enemy or nil.
func (s *SpawnSystem) Update(w *entity.World, now float64, spawning bool) *component.Enemy {
	wave := w.Wave
	if !spawning || wave.Pending() == 0 {
		return nil
	}
	if now-wave.LastSpawnTime <= wave.SpawnIntervalMs {
		return nil
	}

	unit, _ := wave.Pop()
	wave.LastSpawnTime = now

	stats, ok := s.lib.EnemyStats(unit)
	if !ok {
		log.Printf("[Engine] Enemy definition not found for %q, skipping spawn", unit)
		return nil
	}

	x, y := grid.TileCenter(s.lib.Path[0], s.lib.Settings.TileSize)
	enemy := &component.Enemy{
		ID:        w.NewID("enemy"),
		Type:      unit,
		HP:        stats.HP,
		MaxHP:     stats.HP,
		X:         x,
		Y:         y,
		PathIndex: 0,
		Progress:  0,
		Color:     s.rng.RandomColor(),
	}
	w.Enemies = append(w.Enemies, enemy)
	return enemy
}

// NewWave builds the spawn state for wave index i, boss appended to the queue.
func NewWave(lib *defs.Library, i int, now float64) *component.Wave {
	def, ok := lib.Wave(i)
	if !ok {
		return nil
	}
	return &component.Wave{
		Index:           i,
		Queue:           def.SpawnQueue(),
		SpawnIntervalMs: def.SpawnIntervalMs,
		LastSpawnTime:   now,
	}
}
