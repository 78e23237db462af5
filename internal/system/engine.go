// internal/system/engine.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/utils"
)

// TickInput — входные данные одного кадра симуляции.
type TickInput struct {
	DeltaMs  float64 // прошло с прошлого тика; большие значения применяются за один шаг
	Now      float64 // текущее время сессии, мс
	Spawning bool    // разрешён ли спавн (фаза PLAYING)
}

// TickResult — дельты, которые сессия применяет после тика.
type TickResult struct {
	HealthLost  int
	MoneyGained int
	Spawned     *component.Enemy
	Escaped     []*component.Enemy
	Killed      []*component.Enemy
	Fired       []*component.Projectile
}

// Engine — ядро симуляции. Не хранит состояние сессии: всё изменяемое
// приходит через World, поэтому Tick можно гонять в тестах изолированно.
type Engine struct {
	Spawn       *SpawnSystem
	Movement    *MovementSystem
	Combat      *CombatSystem
	Projectiles *ProjectileSystem
}

func NewEngine(lib *defs.Library, rng *utils.PRNGService) *Engine {
	return &Engine{
		Spawn:       NewSpawnSystem(lib, rng),
		Movement:    NewMovementSystem(lib),
		Combat:      NewCombatSystem(lib),
		Projectiles: NewProjectileSystem(lib),
	}
}

// Tick advances the world by one frame: spawn, move, fire, resolve projectiles.
// The order is fixed.
func (e *Engine) Tick(w *entity.World, in TickInput) TickResult {
	delta := in.DeltaMs
	if delta < 0 {
		delta = 0
	}

	var result TickResult
	result.Spawned = e.Spawn.Update(w, in.Now, in.Spawning)

	result.Escaped = e.Movement.Update(w, delta)
	result.HealthLost = len(result.Escaped)

	result.Fired = e.Combat.Update(w, in.Now)

	hits := e.Projectiles.Update(w, delta)
	result.MoneyGained = hits.MoneyGained
	result.Killed = hits.Killed
	return result
}
