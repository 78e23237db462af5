// internal/defs/loot_tables.go
package defs

// LootEntry представляет одну запись в таблице выпадения.
// Category — это ID юнита либо BasicCategory, Probability — вероятность выпадения.
type LootEntry struct {
	Category    UnitID  `yaml:"category"`
	Probability float64 `yaml:"probability"`
}

// LootTable — таблица гачи. Вероятности в сумме дают 1.0, порядок записей важен.
type LootTable struct {
	Entries   []LootEntry `yaml:"entries"`
	BasicPool []UnitID    `yaml:"basicPool"`
}

// Total returns the sum of all entry probabilities.
func (t LootTable) Total() float64 {
	total := 0.0
	for _, e := range t.Entries {
		total += e.Probability
	}
	return total
}
