// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"go-path-defense/internal/config"
	"go-path-defense/pkg/grid"

	"gopkg.in/yaml.v3"
)

//go:embed data/default.yaml
var defaultData []byte

var (
	ErrUnknownUnit     = errors.New("unknown unit")
	ErrNotTower        = errors.New("unit has no tower stats")
	ErrNotEnemy        = errors.New("unit has no enemy stats")
	ErrInvalidUnit     = errors.New("invalid unit definition")
	ErrInvalidPath     = errors.New("invalid path")
	ErrNoWaves         = errors.New("at least one wave is required")
	ErrInvalidWave     = errors.New("invalid wave")
	ErrLootTable       = errors.New("invalid loot table")
	ErrInvalidSettings = errors.New("invalid settings")
)

// probabilityTolerance — допуск при проверке суммы вероятностей гачи.
const probabilityTolerance = 1e-6

// libraryFile mirrors the YAML layout of a data file.
type libraryFile struct {
	Settings  config.Settings           `yaml:"settings"`
	Path      grid.Path                 `yaml:"path"`
	Units     map[UnitID]UnitDefinition `yaml:"units"`
	Placeable []UnitID                  `yaml:"placeable"`
	Waves     []WaveDefinition          `yaml:"waves"`
	Loot      LootTable                 `yaml:"loot"`
}

// DefaultLibrary returns the embedded stock game data.
func DefaultLibrary() (*Library, error) {
	lib, err := ParseLibrary(defaultData)
	if err != nil {
		return nil, fmt.Errorf("embedded data: %w", err)
	}
	return lib, nil
}

// LoadLibrary reads a YAML data file, applies defaults and validates it.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file %s: %w", path, err)
	}
	lib, err := ParseLibrary(data)
	if err != nil {
		return nil, fmt.Errorf("definitions file %s: %w", path, err)
	}
	return lib, nil
}

// ParseLibrary decodes YAML data into a validated Library.
// Поля settings, которых нет в файле, остаются значениями по умолчанию.
func ParseLibrary(data []byte) (*Library, error) {
	file := libraryFile{Settings: config.DefaultSettings()}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	lib := &Library{
		Units:     make(map[UnitID]UnitDefinition, len(file.Units)),
		Path:      file.Path,
		Waves:     file.Waves,
		Placeable: file.Placeable,
		Loot:      file.Loot,
		Settings:  file.Settings,
	}
	for id, def := range file.Units {
		def.ID = id
		if def.Name == "" {
			def.Name = string(id)
		}
		lib.Units[id] = def
	}

	if err := lib.Validate(); err != nil {
		return nil, err
	}

	log.Printf("[Defs] Loaded %d units, %d waves, %d path points", len(lib.Units), len(lib.Waves), len(lib.Path))
	return lib, nil
}

// Validate checks that every reference resolves to a unit with the matching role
// and that path, waves, loot table and settings are usable.
func (l *Library) Validate() error {
	for id, def := range l.Units {
		if err := validateUnit(id, def); err != nil {
			return err
		}
	}

	if err := l.Path.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}

	if len(l.Waves) == 0 {
		return ErrNoWaves
	}
	for i, wave := range l.Waves {
		if wave.SpawnIntervalMs < 0 {
			return fmt.Errorf("wave %d: spawnIntervalMs cannot be negative: %w", i, ErrInvalidWave)
		}
		if len(wave.SpawnQueue()) == 0 {
			return fmt.Errorf("wave %d: spawn queue is empty: %w", i, ErrInvalidWave)
		}
		for j, g := range wave.Groups {
			if g.Count < 1 {
				return fmt.Errorf("wave %d, group %d: count must be at least 1, got %d: %w", i, j, g.Count, ErrInvalidWave)
			}
			if err := l.requireEnemy(g.Unit); err != nil {
				return fmt.Errorf("wave %d, group %d: %w", i, j, err)
			}
		}
		if wave.Boss != "" {
			if err := l.requireEnemy(wave.Boss); err != nil {
				return fmt.Errorf("wave %d boss: %w", i, err)
			}
		}
	}

	for _, id := range l.Placeable {
		if err := l.requireTower(id); err != nil {
			return fmt.Errorf("placeable: %w", err)
		}
	}

	if err := l.validateLoot(); err != nil {
		return err
	}

	return validateSettings(l.Settings)
}

func (l *Library) requireTower(id UnitID) error {
	def, ok := l.Units[id]
	if !ok {
		return fmt.Errorf("%q: %w", id, ErrUnknownUnit)
	}
	if def.Tower == nil {
		return fmt.Errorf("%q: %w", id, ErrNotTower)
	}
	return nil
}

func (l *Library) requireEnemy(id UnitID) error {
	def, ok := l.Units[id]
	if !ok {
		return fmt.Errorf("%q: %w", id, ErrUnknownUnit)
	}
	if def.Enemy == nil {
		return fmt.Errorf("%q: %w", id, ErrNotEnemy)
	}
	return nil
}

func (l *Library) validateLoot() error {
	if len(l.Loot.Entries) == 0 {
		return fmt.Errorf("%w: no entries", ErrLootTable)
	}
	if len(l.Loot.BasicPool) == 0 {
		// пул нужен и для категории BASIC, и как запасной вариант
		return fmt.Errorf("%w: basic pool is empty", ErrLootTable)
	}
	for _, id := range l.Loot.BasicPool {
		if err := l.requireTower(id); err != nil {
			return fmt.Errorf("%w: basic pool: %w", ErrLootTable, err)
		}
	}
	for i, e := range l.Loot.Entries {
		if e.Probability < 0 {
			return fmt.Errorf("%w: entry %d has negative probability", ErrLootTable, i)
		}
		if e.Category == BasicCategory {
			continue
		}
		if err := l.requireTower(e.Category); err != nil {
			return fmt.Errorf("%w: entry %d: %w", ErrLootTable, i, err)
		}
	}
	if total := l.Loot.Total(); math.Abs(total-1.0) > probabilityTolerance {
		return fmt.Errorf("%w: probabilities sum to %v, want 1.0", ErrLootTable, total)
	}
	return nil
}

func validateUnit(id UnitID, def UnitDefinition) error {
	if def.Tower == nil && def.Enemy == nil {
		return fmt.Errorf("%q: neither tower nor enemy: %w", id, ErrInvalidUnit)
	}
	if t := def.Tower; t != nil {
		if t.Cost < 0 || t.Damage < 0 || t.RangeTiles <= 0 || t.AttackIntervalMs < 0 || t.Projectile.SpeedTilesPerSec <= 0 {
			return fmt.Errorf("%q: tower stats out of range: %w", id, ErrInvalidUnit)
		}
	}
	if e := def.Enemy; e != nil {
		if e.HP <= 0 || e.SpeedTilesPerSec < 0 || e.Reward < 0 {
			return fmt.Errorf("%q: enemy stats out of range: %w", id, ErrInvalidUnit)
		}
	}
	return nil
}

func validateSettings(s config.Settings) error {
	switch {
	case s.TileSize <= 0:
		return fmt.Errorf("%w: tileSize must be positive", ErrInvalidSettings)
	case s.BoardWidth <= 0 || s.BoardHeight <= 0:
		return fmt.Errorf("%w: board dimensions must be positive", ErrInvalidSettings)
	case s.InitialHealth <= 0:
		return fmt.Errorf("%w: initialHealth must be positive", ErrInvalidSettings)
	case s.InitialMoney < 0:
		return fmt.Errorf("%w: initialMoney cannot be negative", ErrInvalidSettings)
	case s.MaxTowerLevel < 1:
		return fmt.Errorf("%w: maxTowerLevel must be at least 1", ErrInvalidSettings)
	case s.SellMultiplier < 0:
		return fmt.Errorf("%w: sellMultiplier cannot be negative", ErrInvalidSettings)
	case s.LootCost < 0:
		return fmt.Errorf("%w: lootCost cannot be negative", ErrInvalidSettings)
	case s.UpgradeCostMultiplier < 0 || s.UpgradeDamageMultiplier <= 0 || s.UpgradeRangeMultiplier <= 0:
		return fmt.Errorf("%w: upgrade multipliers out of range", ErrInvalidSettings)
	}
	return nil
}
