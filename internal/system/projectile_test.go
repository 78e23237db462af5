package system

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
)

func addProjectile(w *entity.World, towerID, targetID types.EntityID, x, y float64) *component.Projectile {
	p := &component.Projectile{
		ID:       w.NewID("proj"),
		TowerID:  towerID,
		TargetID: targetID,
		Type:     "LEAF",
		X:        x,
		Y:        y,
	}
	w.Projectiles = append(w.Projectiles, p)
	return p
}

func TestProjectileSystem_FourHitsKillOnce(t *testing.T) {
	lib := newTestLibrary(t)
	projectiles := NewProjectileSystem(lib)
	w := newTestWorld()
	tower := addTower(w, "LEAF", 2, 2, 1)
	enemy := addEnemy(w, "GRUNT", 50, 300, 300, 0, 0)

	totalMoney := 0
	wantHP := []float64{35, 20, 5}
	for i, hp := range wantHP {
		addProjectile(w, tower.ID, enemy.ID, 300, 300)
		report := projectiles.Update(w, 16)
		totalMoney += report.MoneyGained
		if enemy.HP != hp {
			t.Fatalf("hit %d: hp = %v, want %v", i+1, enemy.HP, hp)
		}
		if len(w.Enemies) != 1 || len(report.Killed) != 0 {
			t.Fatalf("hit %d: enemy removed too early", i+1)
		}
	}

	addProjectile(w, tower.ID, enemy.ID, 300, 300)
	report := projectiles.Update(w, 16)
	totalMoney += report.MoneyGained

	if len(report.Killed) != 1 || report.Killed[0] != enemy {
		t.Fatalf("Killed = %v, want the enemy", report.Killed)
	}
	if totalMoney != 5 {
		t.Errorf("reward = %d, want 5 credited once", totalMoney)
	}
	if len(w.Enemies) != 0 || len(w.Projectiles) != 0 {
		t.Errorf("world not cleaned: %d enemies, %d projectiles", len(w.Enemies), len(w.Projectiles))
	}
}

func TestProjectileSystem_SameTickHitsRewardOnce(t *testing.T) {
	lib := newTestLibrary(t)
	projectiles := NewProjectileSystem(lib)
	w := newTestWorld()
	tower := addTower(w, "LEAF", 2, 2, 1)
	enemy := addEnemy(w, "GRUNT", 50, 300, 300, 0, 0)
	for i := 0; i < 5; i++ {
		addProjectile(w, tower.ID, enemy.ID, 300, 300)
	}

	report := projectiles.Update(w, 16)

	if report.Hits != 5 {
		t.Errorf("Hits = %d, want 5", report.Hits)
	}
	if report.MoneyGained != 5 || len(report.Killed) != 1 {
		t.Errorf("MoneyGained = %d, Killed = %d, want 5 and 1", report.MoneyGained, len(report.Killed))
	}
	if enemy.HP != -25 {
		t.Errorf("hp = %v, want -25 (every hit sees the enemy)", enemy.HP)
	}
	if len(w.Enemies) != 0 {
		t.Errorf("len(Enemies) = %d, want 0", len(w.Enemies))
	}
}

func TestProjectileSystem_LevelScalesDamage(t *testing.T) {
	lib := newTestLibrary(t)
	projectiles := NewProjectileSystem(lib)
	w := newTestWorld()
	tower := addTower(w, "LEAF", 2, 2, 3)
	enemy := addEnemy(w, "GRUNT", 50, 300, 300, 0, 0)
	addProjectile(w, tower.ID, enemy.ID, 300, 300)

	projectiles.Update(w, 16)

	if enemy.HP != 50-33.75 {
		t.Errorf("hp = %v, want %v", enemy.HP, 50-33.75)
	}
}

func TestProjectileSystem_SoldTowerHitsWithoutDamage(t *testing.T) {
	lib := newTestLibrary(t)
	projectiles := NewProjectileSystem(lib)
	w := newTestWorld()
	tower := addTower(w, "LEAF", 2, 2, 1)
	enemy := addEnemy(w, "GRUNT", 50, 300, 300, 0, 0)
	addProjectile(w, tower.ID, enemy.ID, 300, 300)
	w.RemoveTower(tower.ID)

	report := projectiles.Update(w, 16)

	if enemy.HP != 50 {
		t.Errorf("hp = %v, want 50", enemy.HP)
	}
	if report.Hits != 1 || len(w.Projectiles) != 0 {
		t.Errorf("projectile should resolve and disappear: hits=%d, left=%d", report.Hits, len(w.Projectiles))
	}
}

func TestProjectileSystem_MissingTargetDropsProjectile(t *testing.T) {
	lib := newTestLibrary(t)
	projectiles := NewProjectileSystem(lib)
	w := newTestWorld()
	tower := addTower(w, "LEAF", 2, 2, 1)
	addProjectile(w, tower.ID, "enemy_gone", 100, 100)

	report := projectiles.Update(w, 16)

	if len(w.Projectiles) != 0 || report.Hits != 0 || report.MoneyGained != 0 {
		t.Errorf("orphan projectile not dropped cleanly: left=%d hits=%d money=%d",
			len(w.Projectiles), report.Hits, report.MoneyGained)
	}
}

func TestProjectileSystem_HomesTowardTarget(t *testing.T) {
	lib := newTestLibrary(t)
	projectiles := NewProjectileSystem(lib)
	w := newTestWorld()
	tower := addTower(w, "LEAF", 2, 2, 1)
	enemy := addEnemy(w, "GRUNT", 50, 200, 24, 0, 0)
	p := addProjectile(w, tower.ID, enemy.ID, 0, 24)

	// 8 клеток/с * 48 = 384 px/s, за 100 мс — 38.4 px.
	projectiles.Update(w, 100)
	if !almostEqual(p.X, 38.4) || !almostEqual(p.Y, 24) {
		t.Fatalf("position = (%v, %v), want (38.4, 24)", p.X, p.Y)
	}

	// Цель сместилась: направление пересчитывается.
	enemy.X, enemy.Y = 38.4, 224
	projectiles.Update(w, 100)
	if !almostEqual(p.X, 38.4) || !almostEqual(p.Y, 62.4) {
		t.Errorf("position = (%v, %v), want (38.4, 62.4)", p.X, p.Y)
	}
	if len(w.Projectiles) != 1 || enemy.HP != 50 {
		t.Errorf("projectile hit too early")
	}
}
