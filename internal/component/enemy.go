// component/enemy.go
package component

import (
	"image/color"

	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
	"go-path-defense/internal/utils"
)

// Enemy представляет вражескую сущность на пути.
type Enemy struct {
	ID        types.EntityID
	Type      defs.UnitID
	HP        float64
	MaxHP     float64
	X, Y      float64 // пиксели, выводятся из PathIndex/Progress
	PathIndex int     // индекс текущего сегмента пути
	Progress  float64 // пикселей пройдено по текущему сегменту
	Color     color.RGBA
}

// HealthRatio returns HP/MaxHP clamped to [0, 1].
func (e *Enemy) HealthRatio() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	return utils.Clamp(e.HP/e.MaxHP, 0, 1)
}
