// internal/component/wave.go
package component

import "go-path-defense/internal/defs"

// Wave — состояние активной волны: очередь спавна и таймер.
type Wave struct {
	Index           int
	Queue           []defs.UnitID
	SpawnIntervalMs float64
	LastSpawnTime   float64
}

// Pending returns the number of units still waiting to spawn.
func (w *Wave) Pending() int {
	if w == nil {
		return 0
	}
	return len(w.Queue)
}

// Pop removes and returns the next queued unit.
func (w *Wave) Pop() (defs.UnitID, bool) {
	if w == nil || len(w.Queue) == 0 {
		return "", false
	}
	next := w.Queue[0]
	w.Queue = w.Queue[1:]
	return next, true
}
