// pkg/grid/path.go
package grid

import (
	"errors"
	"fmt"
	"math"

	"go-path-defense/pkg/utils"
)

var (
	// ErrPathTooShort is returned for a path with fewer than two waypoints.
	ErrPathTooShort = errors.New("path needs at least two waypoints")
	// ErrPathDiagonal is returned when consecutive waypoints differ in both axes.
	ErrPathDiagonal = errors.New("path segment is not orthogonal")
)

// Path — упорядоченная ломаная из клеток. Соседние точки отличаются
// ровно по одной оси; враги входят в точке 0 и выходят за последней.
type Path []Point

// Validate checks the waypoint invariants. Zero-length segments are allowed.
func (p Path) Validate() error {
	if len(p) < 2 {
		return ErrPathTooShort
	}
	for i := 0; i < len(p)-1; i++ {
		a, b := p[i], p[i+1]
		if a.X != b.X && a.Y != b.Y {
			return fmt.Errorf("segment %d (%d,%d)->(%d,%d): %w", i, a.X, a.Y, b.X, b.Y, ErrPathDiagonal)
		}
	}
	return nil
}

// Segments returns the number of segments, len(p)-1.
func (p Path) Segments() int {
	if len(p) < 2 {
		return 0
	}
	return len(p) - 1
}

// SegmentLength returns the pixel length of segment i, or 0 if i is out of range.
func (p Path) SegmentLength(i int, tileSize float64) float64 {
	if i < 0 || i >= p.Segments() {
		return 0
	}
	d := p[i+1].Subtract(p[i])
	return math.Hypot(float64(d.X)*tileSize, float64(d.Y)*tileSize)
}

// Direction returns the unit vector of segment i. A zero-length or missing
// segment has no direction and yields (0, 0).
func (p Path) Direction(i int) (dx, dy float64) {
	if i < 0 || i >= p.Segments() {
		return 0, 0
	}
	d := p[i+1].Subtract(p[i])
	length := math.Hypot(float64(d.X), float64(d.Y))
	if length == 0 {
		return 0, 0
	}
	return float64(d.X) / length, float64(d.Y) / length
}

// PointAt returns the pixel position progress pixels along segment i.
func (p Path) PointAt(i int, progress, tileSize float64) (x, y float64) {
	if len(p) == 0 {
		return 0, 0
	}
	if i >= len(p) {
		i = len(p) - 1
	}
	if i < 0 {
		i = 0
	}
	x, y = TileCenter(p[i], tileSize)
	dx, dy := p.Direction(i)
	return x + dx*progress, y + dy*progress
}

// Contains reports whether tile t lies on any segment of the path, endpoints included.
func (p Path) Contains(t Point) bool {
	for i := 0; i < len(p)-1; i++ {
		a, b := p[i], p[i+1]
		if a.X == b.X && t.X == a.X {
			if t.Y >= utils.Min(a.Y, b.Y) && t.Y <= utils.Max(a.Y, b.Y) {
				return true
			}
		}
		if a.Y == b.Y && t.Y == a.Y {
			if t.X >= utils.Min(a.X, b.X) && t.X <= utils.Max(a.X, b.X) {
				return true
			}
		}
	}
	return false
}

// TotalLength возвращает длину всего пути в пикселях.
func (p Path) TotalLength(tileSize float64) float64 {
	total := 0.0
	for i := 0; i < p.Segments(); i++ {
		total += p.SegmentLength(i, tileSize)
	}
	return total
}
