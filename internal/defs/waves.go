// internal/defs/waves.go
package defs

// SpawnGroup — несколько одинаковых врагов подряд в очереди волны.
type SpawnGroup struct {
	Unit  UnitID `yaml:"unit"`
	Count int    `yaml:"count"`
}

// WaveDefinition описывает одну волну: очередь врагов, интервал и босса.
type WaveDefinition struct {
	Groups          []SpawnGroup `yaml:"enemies"`
	SpawnIntervalMs float64      `yaml:"spawnIntervalMs"`
	Boss            UnitID       `yaml:"boss,omitempty"`
}

// Enemies expands the groups into the ordered spawn sequence, boss excluded.
func (w WaveDefinition) Enemies() []UnitID {
	var out []UnitID
	for _, g := range w.Groups {
		for i := 0; i < g.Count; i++ {
			out = append(out, g.Unit)
		}
	}
	return out
}

// SpawnQueue returns a fresh queue: the enemies followed by the boss, if any.
func (w WaveDefinition) SpawnQueue() []UnitID {
	queue := w.Enemies()
	if w.Boss != "" {
		queue = append(queue, w.Boss)
	}
	return queue
}
