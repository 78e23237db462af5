// internal/system/projectile.go
package system

import (
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
)

// HitReport — итог шага снарядов.
type HitReport struct {
	MoneyGained int
	Killed      []*component.Enemy
	Hits        int
}

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	lib *defs.Library
}

func NewProjectileSystem(lib *defs.Library) *ProjectileSystem {
	return &ProjectileSystem{lib: lib}
}

// Update moves every projectile toward its target's current position and
// resolves hits. Enemies killed this step are removed only after all
// projectiles were processed, so every hit in the tick sees them.
func (s *ProjectileSystem) Update(w *entity.World, deltaMs float64) HitReport {
	settings := s.lib.Settings
	hitRadius := settings.HitRadius()

	enemies := make(map[types.EntityID]*component.Enemy, len(w.Enemies))
	for _, e := range w.Enemies {
		enemies[e.ID] = e
	}

	var report HitReport
	dead := make(map[types.EntityID]bool)
	kept := make([]*component.Projectile, 0, len(w.Projectiles))
	for _, proj := range w.Projectiles {
		target, exists := enemies[proj.TargetID]
		if !exists {
			// Цель пропала, снаряд исчезает без эффекта
			continue
		}
		stats, ok := s.lib.TowerStats(proj.Type)
		if !ok {
			continue
		}

		step := stats.Projectile.SpeedTilesPerSec * settings.TileSize * (deltaMs / 1000)
		angle := math.Atan2(target.Y-proj.Y, target.X-proj.X)
		proj.X += math.Cos(angle) * step
		proj.Y += math.Sin(angle) * step

		if math.Hypot(target.X-proj.X, target.Y-proj.Y) >= hitRadius {
			kept = append(kept, proj)
			continue
		}

		report.Hits++
		tower, alive := w.Tower(proj.TowerID)
		if !alive {
			// башню продали, пока снаряд летел: попадание без урона
			continue
		}
		towerStats, ok := s.lib.TowerStats(tower.Type)
		if !ok {
			continue
		}
		target.HP -= EffectiveDamage(towerStats, tower.Level, settings)
		if target.HP <= 0 && !dead[target.ID] {
			dead[target.ID] = true
			report.Killed = append(report.Killed, target)
			if enemyStats, ok := s.lib.EnemyStats(target.Type); ok {
				report.MoneyGained += enemyStats.Reward
			}
		}
	}
	w.Projectiles = kept

	if len(dead) > 0 {
		alive := make([]*component.Enemy, 0, len(w.Enemies))
		for _, e := range w.Enemies {
			if !dead[e.ID] {
				alive = append(alive, e)
			}
		}
		w.Enemies = alive
	}
	return report
}
