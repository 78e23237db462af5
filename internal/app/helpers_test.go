package app

import (
	"testing"

	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
)

// Поле 10x6, путь (0,0) -> (5,0) -> (5,3).
const fixtureYAML = `
settings:
  tileSize: 48
  boardWidth: 10
  boardHeight: 6
  initialHealth: 20
  initialMoney: 250
  lootCost: 200
path:
  - { x: 0, y: 0 }
  - { x: 5, y: 0 }
  - { x: 5, y: 3 }
units:
  LEAF:
    name: Leaf
    tower: { cost: 100, damage: 15, rangeTiles: 2.5, attackIntervalMs: 1000, projectile: { glyph: "*", speedTilesPerSec: 8 } }
  FIRE:
    name: Fire
    tower: { cost: 125, damage: 25, rangeTiles: 3, attackIntervalMs: 1500, projectile: { glyph: "*", speedTilesPerSec: 7 } }
  GOLD:
    name: Gold
    tower: { cost: 1000, damage: 150, rangeTiles: 4, attackIntervalMs: 2000, projectile: { glyph: "*", speedTilesPerSec: 10 } }
  GRUNT:
    name: Grunt
    enemy: { hp: 50, speedTilesPerSec: 1, reward: 5 }
  FAST:
    enemy: { hp: 10, speedTilesPerSec: 100, reward: 1 }
placeable: [LEAF, FIRE]
waves:
  - enemies: [{ unit: GRUNT, count: 1 }]
    spawnIntervalMs: 1000
  - enemies: [{ unit: FAST, count: 1 }]
    spawnIntervalMs: 500
loot:
  entries:
    - { category: BASIC, probability: 0.5 }
    - { category: GOLD, probability: 0.5 }
  basicPool: [LEAF, FIRE]
`

// fixedSource отдаёт заранее заданные значения, затем нули.
type fixedSource struct {
	floats []float64
	ints   []int
}

func (s *fixedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *fixedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0] % n
	s.ints = s.ints[1:]
	return v
}

func newTestLibrary(t *testing.T) *defs.Library {
	t.Helper()
	lib, err := defs.ParseLibrary([]byte(fixtureYAML))
	if err != nil {
		t.Fatalf("ParseLibrary() error = %v", err)
	}
	return lib
}

func newTestGame(t *testing.T, src *fixedSource) *Game {
	t.Helper()
	if src == nil {
		src = &fixedSource{}
	}
	return NewGame(newTestLibrary(t), Options{Source: src, IDs: entity.SequentialIDs()})
}

// startedGame returns a game in WAVE_TRANSITION.
func startedGame(t *testing.T, src *fixedSource) *Game {
	t.Helper()
	g := newTestGame(t, src)
	if !g.StartGame() {
		t.Fatal("StartGame() = false")
	}
	return g
}

// runUntilPhaseChanges steps the game in 16 ms ticks until the phase changes.
func runUntilPhaseChanges(t *testing.T, g *Game, maxTicks int) {
	t.Helper()
	start := g.Phase()
	for i := 0; i < maxTicks; i++ {
		g.Step(16)
		if g.Phase() != start {
			return
		}
	}
	t.Fatalf("phase still %s after %d ticks", g.Phase(), maxTicks)
}
