package app

import (
	"testing"

	"go-path-defense/internal/component"
)

func TestTowerInfo(t *testing.T) {
	g := startedGame(t, nil)
	g.SelectTowerType("LEAF")
	g.PlaceTower(2, 2)
	id := g.World.Towers[0].ID

	info, ok := g.TowerInfo(id)
	if !ok {
		t.Fatal("TowerInfo() = false")
	}
	if info.Name != "Leaf" || info.Level != 1 {
		t.Errorf("info = %s level %d", info.Name, info.Level)
	}
	if info.Damage != 15 || info.NextDamage != 22.5 || info.RangePx != 120 {
		t.Errorf("damage %v -> %v, range %v", info.Damage, info.NextDamage, info.RangePx)
	}
	if info.UpgradeCost != 150 || !info.CanUpgrade || info.MaxLevel {
		t.Errorf("upgrade = %d can=%v max=%v", info.UpgradeCost, info.CanUpgrade, info.MaxLevel)
	}
	if info.SellValue != 75 {
		t.Errorf("SellValue = %d, want 75", info.SellValue)
	}

	g.World.Towers[0].Level = 5
	info, _ = g.TowerInfo(id)
	if !info.MaxLevel || info.NextDamage != 0 || info.CanUpgrade {
		t.Errorf("max level info = %+v", info)
	}

	if _, ok := g.TowerInfo("tower_missing"); ok {
		t.Error("TowerInfo() found a missing tower")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := startedGame(t, nil)
	g.SelectTowerType("LEAF")
	g.PlaceTower(2, 2)

	v := g.Snapshot()
	if v.Phase != component.WaveTransition || v.Money != 150 || v.WaveLabel != "1 / 2" {
		t.Errorf("view = phase %s money %d label %q", v.Phase, v.Money, v.WaveLabel)
	}
	if len(v.Towers) != 1 || v.SelectedType != "LEAF" {
		t.Fatalf("view towers %d, selected %q", len(v.Towers), v.SelectedType)
	}

	v.Towers[0].Level = 4
	if g.World.Towers[0].Level != 1 {
		t.Error("mutating the view changed the world")
	}
}

func TestPlacementQueries(t *testing.T) {
	g := startedGame(t, nil)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "free tile", x: 2, y: 2, want: true},
		{name: "path tile", x: 5, y: 1, want: false},
		{name: "outside", x: 0, y: 6, want: false},
	}
	for _, tt := range tests {
		if got := g.CanPlaceAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: CanPlaceAt(%d, %d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}

	if !g.CanAfford("LEAF") || g.CanAfford("GOLD") || g.CanAfford("GRUNT") {
		t.Error("CanAfford() mismatch")
	}
	if g.WaveLabel() != "1 / 2" {
		t.Errorf("WaveLabel() = %q", g.WaveLabel())
	}
}
