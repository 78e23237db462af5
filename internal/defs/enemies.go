// internal/defs/enemies.go
package defs

// EnemyStats holds the enemy-role data of a unit.
type EnemyStats struct {
	HP               float64 `yaml:"hp"`
	SpeedTilesPerSec float64 `yaml:"speedTilesPerSec"`
	Reward           int     `yaml:"reward"`
	IsBoss           bool    `yaml:"isBoss"`
}
