// internal/entity/world.go
package entity

import (
	"fmt"

	"go-path-defense/internal/component"
	"go-path-defense/internal/types"

	"github.com/google/uuid"
)

// IDGenerator выдаёт новый уникальный ID с заданным префиксом.
type IDGenerator func(prefix string) types.EntityID

// UUIDs is the default generator: prefix plus a random UUID.
func UUIDs(prefix string) types.EntityID {
	return types.EntityID(prefix + "_" + uuid.NewString())
}

// SequentialIDs returns a generator producing prefix_1, prefix_2, ...
// Счётчик общий для всех префиксов.
func SequentialIDs() IDGenerator {
	next := 0
	return func(prefix string) types.EntityID {
		next++
		return types.EntityID(fmt.Sprintf("%s_%d", prefix, next))
	}
}

// World — три изменяемые коллекции сущностей и состояние активной волны.
// Порядок в срезах — порядок создания; от него зависит выбор цели при равенстве.
type World struct {
	Towers      []*component.Tower
	Enemies     []*component.Enemy
	Projectiles []*component.Projectile
	Wave        *component.Wave

	newID IDGenerator
}

// NewWorld creates an empty world with UUID-based ids.
func NewWorld() *World {
	return NewWorldWithIDs(UUIDs)
}

// NewWorldWithIDs creates an empty world with a custom id generator.
func NewWorldWithIDs(gen IDGenerator) *World {
	if gen == nil {
		gen = UUIDs
	}
	return &World{newID: gen}
}

// NewID returns a fresh id for an entity of the given kind.
func (w *World) NewID(prefix string) types.EntityID {
	return w.newID(prefix)
}

// Reset drops every entity and the active wave.
func (w *World) Reset() {
	w.Towers = nil
	w.Enemies = nil
	w.Projectiles = nil
	w.Wave = nil
}

// Tower finds a tower by id.
func (w *World) Tower(id types.EntityID) (*component.Tower, bool) {
	for _, t := range w.Towers {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// TowerAt finds the tower standing on tile (x, y).
func (w *World) TowerAt(x, y int) (*component.Tower, bool) {
	for _, t := range w.Towers {
		if t.X == x && t.Y == y {
			return t, true
		}
	}
	return nil, false
}

// Enemy finds an enemy by id.
func (w *World) Enemy(id types.EntityID) (*component.Enemy, bool) {
	for _, e := range w.Enemies {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// AddTower appends a tower.
func (w *World) AddTower(t *component.Tower) {
	w.Towers = append(w.Towers, t)
}

// RemoveTower deletes a tower by id, keeping the order of the rest.
func (w *World) RemoveTower(id types.EntityID) bool {
	for i, t := range w.Towers {
		if t.ID == id {
			w.Towers = append(w.Towers[:i], w.Towers[i+1:]...)
			return true
		}
	}
	return false
}

// PendingSpawns returns how many units of the active wave are still queued.
func (w *World) PendingSpawns() int {
	return w.Wave.Pending()
}
