package defs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-path-defense/internal/config"
)

const validYAML = `
settings:
  boardWidth: 10
  boardHeight: 6
path:
  - { x: 0, y: 0 }
  - { x: 5, y: 0 }
units:
  LEAF:
    name: Leaf
    color: "#22c55e"
    tower: { cost: 100, damage: 15, rangeTiles: 2.5, attackIntervalMs: 1000, projectile: { glyph: "*", speedTilesPerSec: 8 } }
  GOLD:
    tower: { cost: 1000, damage: 150, rangeTiles: 4, attackIntervalMs: 2000, projectile: { glyph: "*", speedTilesPerSec: 10 } }
  GRUNT:
    name: Grunt
    enemy: { hp: 50, speedTilesPerSec: 1, reward: 5 }
  KING:
    enemy: { hp: 500, speedTilesPerSec: 0.5, reward: 50, isBoss: true }
placeable: [LEAF]
waves:
  - enemies: [{ unit: GRUNT, count: 2 }]
    spawnIntervalMs: 1000
    boss: KING
loot:
  entries:
    - { category: BASIC, probability: 0.9 }
    - { category: GOLD, probability: 0.1 }
  basicPool: [LEAF]
`

func TestParseLibrary_Valid(t *testing.T) {
	lib, err := ParseLibrary([]byte(validYAML))
	if err != nil {
		t.Fatalf("ParseLibrary() error = %v", err)
	}

	if lib.Settings.BoardWidth != 10 || lib.Settings.BoardHeight != 6 {
		t.Errorf("board = %dx%d, want 10x6", lib.Settings.BoardWidth, lib.Settings.BoardHeight)
	}
	// Поля без значений в файле берутся по умолчанию.
	if lib.Settings.InitialHealth != config.InitialHealth || lib.Settings.LootCost != config.LootCost {
		t.Errorf("defaults not applied: %+v", lib.Settings)
	}

	if got := lib.Name("GOLD"); got != "GOLD" {
		t.Errorf("Name(GOLD) = %q, want id as fallback", got)
	}
	if leaf, _ := lib.Unit("LEAF"); leaf.ID != "LEAF" || leaf.Color.G != 0xc5 {
		t.Errorf("LEAF = %+v", leaf)
	}
	if _, ok := lib.TowerStats("GRUNT"); ok {
		t.Error("TowerStats(GRUNT) ok, want false")
	}
	if stats, ok := lib.EnemyStats("KING"); !ok || !stats.IsBoss {
		t.Errorf("EnemyStats(KING) = %+v, %v", stats, ok)
	}

	wave, ok := lib.Wave(0)
	if !ok {
		t.Fatal("Wave(0) missing")
	}
	queue := wave.SpawnQueue()
	want := []UnitID{"GRUNT", "GRUNT", "KING"}
	if len(queue) != len(want) {
		t.Fatalf("SpawnQueue() = %v, want %v", queue, want)
	}
	for i := range want {
		if queue[i] != want[i] {
			t.Errorf("SpawnQueue()[%d] = %q, want %q", i, queue[i], want[i])
		}
	}
	if !lib.IsLastWave(0) {
		t.Error("IsLastWave(0) = false for a single wave")
	}
	if _, ok := lib.Wave(1); ok {
		t.Error("Wave(1) ok, want false")
	}
}

func TestParseLibrary_Errors(t *testing.T) {
	tests := []struct {
		name        string
		old, new    string
		wantErr     error
		errContains string
	}{
		{
			name:    "diagonal path",
			old:     "- { x: 5, y: 0 }",
			new:     "- { x: 5, y: 3 }",
			wantErr: ErrInvalidPath,
		},
		{
			name:    "unknown wave unit",
			old:     "{ unit: GRUNT, count: 2 }",
			new:     "{ unit: GHOST, count: 2 }",
			wantErr: ErrUnknownUnit,
		},
		{
			name:    "tower in wave",
			old:     "{ unit: GRUNT, count: 2 }",
			new:     "{ unit: LEAF, count: 2 }",
			wantErr: ErrNotEnemy,
		},
		{
			name:        "zero count",
			old:         "{ unit: GRUNT, count: 2 }",
			new:         "{ unit: GRUNT, count: 0 }",
			wantErr:     ErrInvalidWave,
			errContains: "count must be at least 1",
		},
		{
			name:        "negative interval",
			old:         "spawnIntervalMs: 1000",
			new:         "spawnIntervalMs: -1",
			wantErr:     ErrInvalidWave,
			errContains: "negative",
		},
		{
			name:    "enemy in shop",
			old:     "placeable: [LEAF]",
			new:     "placeable: [GRUNT]",
			wantErr: ErrNotTower,
		},
		{
			name:        "probabilities do not sum to one",
			old:         "probability: 0.1 }",
			new:         "probability: 0.2 }",
			wantErr:     ErrLootTable,
			errContains: "sum",
		},
		{
			name:    "enemy in basic pool",
			old:     "basicPool: [LEAF]",
			new:     "basicPool: [GRUNT]",
			wantErr: ErrLootTable,
		},
		{
			name:        "empty basic pool",
			old:         "basicPool: [LEAF]",
			new:         "basicPool: []",
			wantErr:     ErrLootTable,
			errContains: "basic pool is empty",
		},
		{
			name:    "unit without role",
			old:     "  KING:\n    enemy: { hp: 500, speedTilesPerSec: 0.5, reward: 50, isBoss: true }",
			new:     "  KING:\n    name: King\n  GRUNT2:\n    name: Nobody",
			wantErr: ErrInvalidUnit,
		},
		{
			name:    "zero range tower",
			old:     "rangeTiles: 2.5",
			new:     "rangeTiles: 0",
			wantErr: ErrInvalidUnit,
		},
		{
			name:    "bad board",
			old:     "boardWidth: 10",
			new:     "boardWidth: 0",
			wantErr: ErrInvalidSettings,
		},
		{
			name:        "bad colour",
			old:         `color: "#22c55e"`,
			new:         `color: "#22c55"`,
			errContains: "expected 6 hex digits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(validYAML, tt.old) {
				t.Fatalf("fixture does not contain %q", tt.old)
			}
			data := strings.Replace(validYAML, tt.old, tt.new, 1)

			_, err := ParseLibrary([]byte(data))
			if err == nil {
				t.Fatal("ParseLibrary() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseLibrary() error = %v, want %v", err, tt.wantErr)
			}
			if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
			}
		})
	}
}

func TestParseLibrary_NoWaves(t *testing.T) {
	i := strings.Index(validYAML, "waves:")
	j := strings.Index(validYAML, "loot:")
	data := validYAML[:i] + validYAML[j:]

	if _, err := ParseLibrary([]byte(data)); !errors.Is(err, ErrNoWaves) {
		t.Errorf("ParseLibrary() error = %v, want %v", err, ErrNoWaves)
	}
}

func TestLoadLibrary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, []byte(validYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	lib, err := LoadLibrary(path)
	if err != nil {
		t.Fatalf("LoadLibrary() error = %v", err)
	}
	if lib.WaveCount() != 1 {
		t.Errorf("WaveCount() = %d, want 1", lib.WaveCount())
	}

	_, err = LoadLibrary(filepath.Join(dir, "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "missing.yaml") {
		t.Errorf("LoadLibrary(missing) error = %v, want error naming the file", err)
	}
}

func TestDefaultLibrary(t *testing.T) {
	lib, err := DefaultLibrary()
	if err != nil {
		t.Fatalf("DefaultLibrary() error = %v", err)
	}
	if lib.WaveCount() != 7 {
		t.Errorf("WaveCount() = %d, want 7", lib.WaveCount())
	}
	if len(lib.Placeable) != 4 {
		t.Errorf("Placeable = %v, want 4 shop towers", lib.Placeable)
	}
	if lib.Settings != config.DefaultSettings() {
		t.Errorf("Settings = %+v, want defaults", lib.Settings)
	}
	for i := range lib.Waves {
		if lib.Waves[i].Boss == "" {
			t.Errorf("wave %d has no boss", i)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
		wantErr bool
	}{
		{"#ff8000", 0xff, 0x80, 0x00, false},
		{"00ff7f", 0x00, 0xff, 0x7f, false},
		{" #FFFFFF ", 0xff, 0xff, 0xff, false},
		{"#fff", 0, 0, 0, true},
		{"#gggggg", 0, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != 255 {
				t.Errorf("ParseHexColor() = %+v", c)
			}
		})
	}
}
