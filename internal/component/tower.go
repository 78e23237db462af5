// component/tower.go
package component

import (
	"math"

	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

// Tower — поставленная на поле башня.
type Tower struct {
	ID             types.EntityID
	Type           defs.UnitID
	X, Y           int     // клетка поля
	Level          int     // 1..MaxTowerLevel
	LastAttackTime float64 // мс, время последнего выстрела
	TotalSpent     int     // всего вложено, от этого считается возврат при продаже
}

// NeverFired — LastAttackTime новой башни: она готова стрелять сразу.
var NeverFired = math.Inf(-1)
