// internal/system/movement.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
)

// MovementSystem двигает врагов по ломаной пути.
type MovementSystem struct {
	lib *defs.Library
}

func NewMovementSystem(lib *defs.Library) *MovementSystem {
	return &MovementSystem{lib: lib}
}

// Update advances every enemy by deltaMs and removes the ones that passed the
// last waypoint. Returns the escaped enemies.
//
// За тик враг переходит не более чем на один сегмент: остаток прогресса
// переносится на следующий сегмент один раз, даже если он длиннее сегмента.
func (s *MovementSystem) Update(w *entity.World, deltaMs float64) []*component.Enemy {
	path := s.lib.Path
	tileSize := s.lib.Settings.TileSize
	lastSegment := path.Segments()

	var escaped []*component.Enemy
	kept := make([]*component.Enemy, 0, len(w.Enemies))
	for _, enemy := range w.Enemies {
		stats, ok := s.lib.EnemyStats(enemy.Type)
		if !ok {
			continue
		}
		enemy.Progress += stats.SpeedTilesPerSec * tileSize * (deltaMs / 1000)

		if enemy.PathIndex >= lastSegment {
			escaped = append(escaped, enemy)
			continue
		}

		// Сегмент нулевой длины завершается сразу, деления на его длину нет.
		segmentLength := path.SegmentLength(enemy.PathIndex, tileSize)
		if enemy.Progress >= segmentLength {
			enemy.PathIndex++
			enemy.Progress -= segmentLength
			if enemy.PathIndex >= lastSegment {
				escaped = append(escaped, enemy)
				continue
			}
		}

		enemy.X, enemy.Y = path.PointAt(enemy.PathIndex, enemy.Progress, tileSize)
		kept = append(kept, enemy)
	}
	w.Enemies = kept
	return escaped
}
