// internal/defs/towers.go
package defs

// ProjectileDef describes what a tower fires.
type ProjectileDef struct {
	Glyph            string  `yaml:"glyph"`
	SpeedTilesPerSec float64 `yaml:"speedTilesPerSec"`
}

// TowerStats contains parameters related to a unit's tower role.
type TowerStats struct {
	Cost             int           `yaml:"cost"`
	Damage           float64       `yaml:"damage"`
	RangeTiles       float64       `yaml:"rangeTiles"`
	AttackIntervalMs float64       `yaml:"attackIntervalMs"` // не масштабируется уровнем
	Projectile       ProjectileDef `yaml:"projectile"`
}

// UnitDefinition holds all the static data for one unit identifier.
// Tower и Enemy опциональны: юнит может быть башней, врагом или (в теории) и тем, и другим.
type UnitDefinition struct {
	ID    UnitID      `yaml:"-"`
	Name  string      `yaml:"name"`
	Color HexColor    `yaml:"color"`
	Tower *TowerStats `yaml:"tower,omitempty"`
	Enemy *EnemyStats `yaml:"enemy,omitempty"`
}

// IsTower reports whether the unit can be placed as a tower.
func (d UnitDefinition) IsTower() bool { return d.Tower != nil }

// IsEnemy reports whether the unit can be spawned as an enemy.
func (d UnitDefinition) IsEnemy() bool { return d.Enemy != nil }
