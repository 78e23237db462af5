package app

import (
	"testing"

	"go-path-defense/internal/event"
)

func TestPullLoot(t *testing.T) {
	tests := []struct {
		name     string
		floats   []float64
		ints     []int
		money    int
		wantOK   bool
		wantUnit string
	}{
		{name: "basic pool second draw", floats: []float64{0.2}, ints: []int{1}, money: 250, wantOK: true, wantUnit: "FIRE"},
		{name: "named category", floats: []float64{0.75}, money: 250, wantOK: true, wantUnit: "GOLD"},
		{name: "draw at the top edge", floats: []float64{0.999999}, money: 250, wantOK: true, wantUnit: "GOLD"},
		{name: "not enough money", floats: []float64{0.2}, money: 199, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := startedGame(t, &fixedSource{floats: tt.floats, ints: tt.ints})
			g.Money = tt.money

			if got := g.PullLoot(); got != tt.wantOK {
				t.Fatalf("PullLoot() = %v, want %v", got, tt.wantOK)
			}
			if !tt.wantOK {
				if g.Money != tt.money || g.PendingLoot() != "" {
					t.Error("rejected pull changed state")
				}
				return
			}
			if g.Money != tt.money-200 {
				t.Errorf("Money = %d, want %d", g.Money, tt.money-200)
			}
			if string(g.PendingLoot()) != tt.wantUnit {
				t.Errorf("PendingLoot() = %q, want %q", g.PendingLoot(), tt.wantUnit)
			}
		})
	}
}

func TestFreePlacement(t *testing.T) {
	g := startedGame(t, &fixedSource{floats: []float64{0.75}})
	var pulled event.LootData
	g.EventDispatcher.Subscribe(event.LootPulled, event.ListenerFunc(func(e event.Event) {
		pulled = e.Data.(event.LootData)
	}))

	g.PullLoot()
	if pulled.Unit != "GOLD" || pulled.Cost != 200 {
		t.Errorf("LootPulled = %+v", pulled)
	}
	if !g.PlaceTower(2, 2) {
		t.Fatal("PlaceTower() = false for a pending loot unit")
	}
	if g.Money != 50 {
		t.Errorf("Money = %d, want 50 (free placement)", g.Money)
	}
	tower := g.World.Towers[0]
	if tower.Type != "GOLD" || tower.TotalSpent != 200 {
		t.Errorf("tower = %s spent %d, want GOLD spent 200", tower.Type, tower.TotalSpent)
	}
	if g.PendingLoot() != "" {
		t.Error("pending loot unit not consumed")
	}
	if v, _ := g.SellValue(tower.ID); v != 150 {
		t.Errorf("SellValue() = %d, want 150", v)
	}
}

func TestFreePlacementLostOnInvalidTile(t *testing.T) {
	g := startedGame(t, &fixedSource{floats: []float64{0.75}})
	g.PullLoot()

	if g.PlaceTower(1, 0) {
		t.Fatal("placement on the path accepted")
	}
	if g.PendingLoot() != "" {
		t.Error("pending loot unit should be dropped by an invalid placement")
	}
	if g.Money != 50 {
		t.Errorf("Money = %d, want 50 (the pull is not refunded)", g.Money)
	}
}
