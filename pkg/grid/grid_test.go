package grid

import (
	"errors"
	"math"
	"testing"
)

func TestTileCenterAndTileAt(t *testing.T) {
	tests := []struct {
		name  string
		p     Point
		wantX float64
		wantY float64
	}{
		{"origin", Point{0, 0}, 24, 24},
		{"inner", Point{3, 2}, 168, 120},
		{"off board", Point{-1, 7}, -24, 360},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := TileCenter(tt.p, 48)
			if x != tt.wantX || y != tt.wantY {
				t.Fatalf("TileCenter() = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
			if got := TileAt(x, y, 48); got != tt.p {
				t.Errorf("TileAt(TileCenter()) = %+v, want %+v", got, tt.p)
			}
		})
	}
}

func TestTileAtFloorsNegative(t *testing.T) {
	if got := TileAt(-0.5, 10, 48); got.X != -1 || got.Y != 0 {
		t.Errorf("TileAt(-0.5, 10) = %+v, want (-1, 0)", got)
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{19, 14}, true},
		{Point{20, 0}, false},
		{Point{0, 15}, false},
		{Point{-1, 3}, false},
	}
	for _, tt := range tests {
		if got := InBounds(tt.p, 20, 15); got != tt.want {
			t.Errorf("InBounds(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPathValidate(t *testing.T) {
	tests := []struct {
		name    string
		path    Path
		wantErr error
	}{
		{"ok", Path{{0, 0}, {5, 0}, {5, 3}}, nil},
		{"zero length segment", Path{{0, 0}, {0, 0}, {2, 0}}, nil},
		{"single point", Path{{0, 0}}, ErrPathTooShort},
		{"diagonal", Path{{0, 0}, {2, 2}}, ErrPathDiagonal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.path.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPathGeometry(t *testing.T) {
	p := Path{{0, 0}, {5, 0}, {5, 3}, {5, 3}}

	if got := p.Segments(); got != 3 {
		t.Fatalf("Segments() = %d, want 3", got)
	}
	if got := p.SegmentLength(0, 48); got != 240 {
		t.Errorf("SegmentLength(0) = %v, want 240", got)
	}
	if got := p.SegmentLength(1, 48); got != 144 {
		t.Errorf("SegmentLength(1) = %v, want 144", got)
	}
	if got := p.SegmentLength(2, 48); got != 0 {
		t.Errorf("SegmentLength(2) = %v, want 0", got)
	}
	if got := p.SegmentLength(7, 48); got != 0 {
		t.Errorf("SegmentLength(out of range) = %v, want 0", got)
	}
	if got := p.TotalLength(48); got != 384 {
		t.Errorf("TotalLength() = %v, want 384", got)
	}

	if dx, dy := p.Direction(1); dx != 0 || dy != 1 {
		t.Errorf("Direction(1) = (%v, %v), want (0, 1)", dx, dy)
	}
	if dx, dy := p.Direction(2); dx != 0 || dy != 0 {
		t.Errorf("Direction(zero segment) = (%v, %v), want (0, 0)", dx, dy)
	}

	x, y := p.PointAt(0, 100, 48)
	if math.Abs(x-124) > 1e-9 || math.Abs(y-24) > 1e-9 {
		t.Errorf("PointAt(0, 100) = (%v, %v), want (124, 24)", x, y)
	}
	x, y = p.PointAt(99, 0, 48)
	if x != 264 || y != 168 {
		t.Errorf("PointAt(past end) = (%v, %v), want last waypoint centre (264, 168)", x, y)
	}
}

func TestPathContains(t *testing.T) {
	p := Path{{-1, 2}, {3, 2}, {3, 0}}
	tests := []struct {
		tile Point
		want bool
	}{
		{Point{0, 2}, true},
		{Point{3, 2}, true},
		{Point{3, 1}, true},
		{Point{3, 0}, true},
		{Point{4, 2}, false},
		{Point{2, 1}, false},
		{Point{3, 3}, false},
	}
	for _, tt := range tests {
		if got := p.Contains(tt.tile); got != tt.want {
			t.Errorf("Contains(%+v) = %v, want %v", tt.tile, got, tt.want)
		}
	}
}
