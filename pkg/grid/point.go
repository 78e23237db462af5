// pkg/grid/point.go
package grid

import "math"

// Point — клетка поля в целочисленных координатах (X — столбец, Y — строка)
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// TileCenter возвращает пиксельный центр клетки.
func TileCenter(p Point, tileSize float64) (x, y float64) {
	x = float64(p.X)*tileSize + tileSize/2
	y = float64(p.Y)*tileSize + tileSize/2
	return
}

// TileAt переводит пиксельные координаты в клетку, которой они принадлежат.
// Отрицательные координаты округляются вниз, а не к нулю.
func TileAt(px, py, tileSize float64) Point {
	return Point{
		X: int(math.Floor(px / tileSize)),
		Y: int(math.Floor(py / tileSize)),
	}
}

// InBounds reports whether p lies on a board of width x height tiles.
func InBounds(p Point, width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Add возвращает сумму двух точек
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Subtract возвращает разность двух точек
func (p Point) Subtract(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}
