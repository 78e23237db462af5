package system

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/utils"
)

// Путь: (0,0) -> (5,0) -> (5,3). Сегменты 240 и 144 пикселей при клетке 48.
const fixtureYAML = `
settings:
  tileSize: 48
path:
  - { x: 0, y: 0 }
  - { x: 5, y: 0 }
  - { x: 5, y: 3 }
units:
  LEAF:
    name: Leaf
    tower: { cost: 100, damage: 15, rangeTiles: 2.5, attackIntervalMs: 1000, projectile: { glyph: "*", speedTilesPerSec: 8 } }
  GRUNT:
    name: Grunt
    enemy: { hp: 50, speedTilesPerSec: 1, reward: 5 }
  BOSS:
    enemy: { hp: 200, speedTilesPerSec: 0.5, reward: 50, isBoss: true }
  RUNNER:
    enemy: { hp: 10, speedTilesPerSec: 100, reward: 1 }
placeable: [LEAF]
waves:
  - enemies: [{ unit: GRUNT, count: 2 }]
    spawnIntervalMs: 1000
    boss: BOSS
  - enemies: [{ unit: RUNNER, count: 1 }]
    spawnIntervalMs: 500
loot:
  entries: [{ category: BASIC, probability: 1.0 }]
  basicPool: [LEAF]
`

func newTestLibrary(t *testing.T) *defs.Library {
	t.Helper()
	lib, err := defs.ParseLibrary([]byte(fixtureYAML))
	if err != nil {
		t.Fatalf("ParseLibrary() error = %v", err)
	}
	return lib
}

func newTestWorld() *entity.World {
	return entity.NewWorldWithIDs(entity.SequentialIDs())
}

func newTestEngine(t *testing.T) (*Engine, *defs.Library) {
	t.Helper()
	lib := newTestLibrary(t)
	return NewEngine(lib, utils.NewPRNGService(1)), lib
}

func addEnemy(w *entity.World, unit defs.UnitID, hp, x, y float64, pathIndex int, progress float64) *component.Enemy {
	e := &component.Enemy{
		ID:        w.NewID("enemy"),
		Type:      unit,
		HP:        hp,
		MaxHP:     hp,
		X:         x,
		Y:         y,
		PathIndex: pathIndex,
		Progress:  progress,
	}
	w.Enemies = append(w.Enemies, e)
	return e
}

func addTower(w *entity.World, unit defs.UnitID, x, y, level int) *component.Tower {
	t := &component.Tower{
		ID:             w.NewID("tower"),
		Type:           unit,
		X:              x,
		Y:              y,
		Level:          level,
		LastAttackTime: component.NeverFired,
	}
	w.AddTower(t)
	return t
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
