// internal/system/combat.go
package system

import (
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/pkg/grid"
)

// CombatSystem управляет атакой башен: перезарядка, выбор цели, выстрел.
type CombatSystem struct {
	lib *defs.Library
}

func NewCombatSystem(lib *defs.Library) *CombatSystem {
	return &CombatSystem{lib: lib}
}

// EffectiveRange returns the tower range in pixels at the given level.
func EffectiveRange(stats *defs.TowerStats, level int, s config.Settings) float64 {
	return stats.RangeTiles * s.TileSize * math.Pow(s.UpgradeRangeMultiplier, float64(level-1))
}

// EffectiveDamage returns the damage of one hit at the given level.
func EffectiveDamage(stats *defs.TowerStats, level int, s config.Settings) float64 {
	return stats.Damage * math.Pow(s.UpgradeDamageMultiplier, float64(level-1))
}

// PathProgress is the ranking key used for targeting: segment index plus a
// scaled-down in-segment progress. It is not a physical distance.
func PathProgress(e *component.Enemy) float64 {
	return float64(e.PathIndex) + e.Progress/config.ProgressRankDivisor
}

// Update fires every tower whose cooldown has elapsed and that has an enemy in
// range. Returns the projectiles created this tick.
func (s *CombatSystem) Update(w *entity.World, now float64) []*component.Projectile {
	tileSize := s.lib.Settings.TileSize

	var fired []*component.Projectile
	for _, tower := range w.Towers {
		stats, ok := s.lib.TowerStats(tower.Type)
		if !ok {
			continue
		}
		if now-tower.LastAttackTime <= stats.AttackIntervalMs {
			continue
		}

		rangePx := EffectiveRange(stats, tower.Level, s.lib.Settings)
		towerX, towerY := grid.TileCenter(grid.Point{X: tower.X, Y: tower.Y}, tileSize)

		target := s.findTarget(w.Enemies, towerX, towerY, rangePx)
		if target == nil {
			continue
		}

		tower.LastAttackTime = now
		projectile := &component.Projectile{
			ID:       w.NewID("proj"),
			TowerID:  tower.ID,
			TargetID: target.ID,
			Type:     tower.Type,
			X:        towerX,
			Y:        towerY,
		}
		w.Projectiles = append(w.Projectiles, projectile)
		fired = append(fired, projectile)
	}
	return fired
}

// findTarget выбирает врага, дальше всех продвинувшегося по пути.
// При равенстве побеждает первый найденный.
func (s *CombatSystem) findTarget(enemies []*component.Enemy, x, y, rangePx float64) *component.Enemy {
	var target *component.Enemy
	maxProgress := -1.0
	for _, enemy := range enemies {
		if math.Hypot(enemy.X-x, enemy.Y-y) > rangePx {
			continue
		}
		if progress := PathProgress(enemy); progress > maxProgress {
			maxProgress = progress
			target = enemy
		}
	}
	return target
}
