// internal/entity/snapshot.go
package entity

import "go-path-defense/internal/component"

// Snapshot — копия коллекций только для чтения, отдаётся слою отрисовки.
type Snapshot struct {
	Towers      []component.Tower
	Enemies     []component.Enemy
	Projectiles []component.Projectile
	Pending     int
}

// Snapshot copies the collections so the caller cannot mutate the world.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Towers:      make([]component.Tower, len(w.Towers)),
		Enemies:     make([]component.Enemy, len(w.Enemies)),
		Projectiles: make([]component.Projectile, len(w.Projectiles)),
		Pending:     w.PendingSpawns(),
	}
	for i, t := range w.Towers {
		s.Towers[i] = *t
	}
	for i, e := range w.Enemies {
		s.Enemies[i] = *e
	}
	for i, p := range w.Projectiles {
		s.Projectiles[i] = *p
	}
	return s
}
