// internal/component/projectile.go
package component

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

// Projectile представляет летящий самонаводящийся снаряд.
// TowerID может исчезнуть в полёте (башню продали).
type Projectile struct {
	ID       types.EntityID
	TowerID  types.EntityID
	TargetID types.EntityID
	Type     defs.UnitID // тип башни: скорость и вид снаряда
	X, Y     float64
}
