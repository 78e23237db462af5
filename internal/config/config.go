// internal/config/config.go
package config

import "image/color"

const (
	TileSize         = 48.0
	BoardWidthTiles  = 20
	BoardHeightTiles = 15
	BoardWidthPx     = TileSize * BoardWidthTiles
	BoardHeightPx    = TileSize * BoardHeightTiles

	SidePanelWidth  = 320
	MinScreenHeight = 600
	ScreenWidth     = int(BoardWidthPx) + SidePanelWidth
	ScreenHeight    = int(BoardHeightPx)

	InitialHealth  = 20
	InitialMoney   = 250
	LootCost       = 200
	SellMultiplier = 0.75
	MaxTowerLevel  = 5

	UpgradeCostMultiplier   = 1.5
	UpgradeDamageMultiplier = 1.5
	UpgradeRangeMultiplier  = 1.1

	// Делитель прогресса внутри сегмента при ранжировании целей (pathIndex + progress/1000)
	ProgressRankDivisor = 1000.0

	BossScale        = 1.5
	EnemyBarHeight   = 4.0
	PathBandWidth    = 40.0
	PathInnerWidth   = 32.0
	ProjectileRadius = 5.0

	ClickCooldown = 150 // ms
)

var (
	BackgroundColor  = color.RGBA{22, 101, 52, 255}
	GridLineColor    = color.RGBA{255, 255, 255, 26}
	PathOuterColor   = color.RGBA{161, 98, 7, 255}
	PathInnerColor   = color.RGBA{250, 204, 21, 255}
	PanelColor       = color.RGBA{17, 24, 39, 255}
	PanelStroke      = color.RGBA{250, 204, 21, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextAccentColor  = color.RGBA{253, 224, 71, 255}
	SelectedColor    = color.RGBA{234, 179, 8, 255}
	ButtonColor      = color.RGBA{55, 65, 81, 255}
	ButtonHover      = color.RGBA{75, 85, 99, 255}
	ButtonDisabled   = color.RGBA{55, 65, 81, 110}
	UpgradeColor     = color.RGBA{37, 99, 235, 255}
	SellColor        = color.RGBA{220, 38, 38, 255}
	LootColor        = color.RGBA{107, 33, 168, 255}
	HealthBarBack    = color.RGBA{75, 85, 99, 255}
	HealthBarFill    = color.RGBA{239, 68, 68, 255}
	BossRingColor    = color.RGBA{239, 68, 68, 255}
	RangeOkColor     = color.RGBA{255, 255, 255, 26}
	RangeOkStroke    = color.RGBA{255, 255, 255, 128}
	RangeBadColor    = color.RGBA{255, 0, 0, 26}
	RangeBadStroke   = color.RGBA{255, 0, 0, 128}
	ModalShadeColor  = color.RGBA{0, 0, 0, 178}
	DefaultTowerTint = color.RGBA{236, 72, 153, 255}
	SpeedColors      = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4
	}
	SpeedMultipliers = []float64{1, 2, 4}
)

// Settings — настраиваемые константы сессии. Значения по умолчанию совпадают
// с константами выше; файл данных может переопределить любое поле.
type Settings struct {
	TileSize                float64 `yaml:"tileSize"`
	BoardWidth              int     `yaml:"boardWidth"`
	BoardHeight             int     `yaml:"boardHeight"`
	InitialHealth           int     `yaml:"initialHealth"`
	InitialMoney            int     `yaml:"initialMoney"`
	MaxTowerLevel           int     `yaml:"maxTowerLevel"`
	UpgradeCostMultiplier   float64 `yaml:"upgradeCostMultiplier"`
	UpgradeDamageMultiplier float64 `yaml:"upgradeDamageMultiplier"`
	UpgradeRangeMultiplier  float64 `yaml:"upgradeRangeMultiplier"`
	SellMultiplier          float64 `yaml:"sellMultiplier"`
	LootCost                int     `yaml:"lootCost"`
}

// DefaultSettings returns the settings of the stock game.
func DefaultSettings() Settings {
	return Settings{
		TileSize:                TileSize,
		BoardWidth:              BoardWidthTiles,
		BoardHeight:             BoardHeightTiles,
		InitialHealth:           InitialHealth,
		InitialMoney:            InitialMoney,
		MaxTowerLevel:           MaxTowerLevel,
		UpgradeCostMultiplier:   UpgradeCostMultiplier,
		UpgradeDamageMultiplier: UpgradeDamageMultiplier,
		UpgradeRangeMultiplier:  UpgradeRangeMultiplier,
		SellMultiplier:          SellMultiplier,
		LootCost:                LootCost,
	}
}

// HitRadius is the projectile proximity threshold, a quarter tile.
func (s Settings) HitRadius() float64 {
	return s.TileSize / 4
}

// BoardSize returns the board size in pixels.
func (s Settings) BoardSize() (w, h int) {
	return int(s.TileSize * float64(s.BoardWidth)), int(s.TileSize * float64(s.BoardHeight))
}

// ScreenSize returns the window size: the board plus the side panel.
func (s Settings) ScreenSize() (w, h int) {
	bw, bh := s.BoardSize()
	return bw + SidePanelWidth, max(bh, MinScreenHeight)
}
