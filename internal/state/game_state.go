// internal/state/game_state.go
package state

import (
	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/ui"
	"go-path-defense/pkg/grid"
	"go-path-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var _ State = (*GameState)(nil)

// GameState — основной экран: поле слева, панель справа.
type GameState struct {
	sm        *StateMachine
	game      *app.Game
	renderer  *render.BoardRenderer
	panel     *ui.SidePanel
	face      text.Face
	elapsedMs float64 // монотонные часы кадров, передаются в game.Update
	boardW    int
	boardH    int
	screenW   int
	screenH   int
}

func NewGameState(sm *StateMachine, g *app.Game) *GameState {
	face := ui.DefaultFace()
	boardW, boardH := g.Settings.BoardSize()
	screenW, screenH := g.Settings.ScreenSize()
	colors := render.BoardColors{
		Background: config.BackgroundColor,
		GridLine:   config.GridLineColor,
		PathOuter:  config.PathOuterColor,
		PathInner:  config.PathInnerColor,
	}
	return &GameState{
		sm:       sm,
		game:     g,
		renderer: render.NewBoardRenderer(g.Lib, colors, face),
		panel:    ui.NewSidePanel(g.Lib, boardW, screenW-boardW, screenH),
		face:     face,
		boardW:   boardW,
		boardH:   boardH,
		screenW:  screenW,
		screenH:  screenH,
	}
}

// Game returns the session driven by this screen.
func (s *GameState) Game() *app.Game {
	return s.game
}

func (s *GameState) Enter() {}

func (s *GameState) Update(deltaTime float64) {
	s.tick(deltaTime)

	if ui.HasModal(s.game.Phase()) {
		s.sm.SetState(NewMenuState(s.sm, s))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		if s.game.Pause() {
			s.sm.SetState(NewPauseState(s.sm, s))
			return
		}
	}

	s.handleKeys()
	s.panel.Update(s.game)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !s.panel.HandleClick(s.game, x, y) {
			s.handleBoardClick(x, y)
		}
		if s.game.IsPaused() {
			s.sm.SetState(NewPauseState(s.sm, s))
			return
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.game.ClearTowerType()
		s.game.ClearSelection()
	}
}

// tick двигает часы кадров и сессию. Пауза и меню тоже вызывают tick:
// часы сессии сами решают, идёт ли время.
func (s *GameState) tick(deltaTime float64) {
	s.elapsedMs += deltaTime * 1000
	s.game.Update(s.elapsedMs)
}

func (s *GameState) handleKeys() {
	keys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9}
	for i, id := range s.game.Lib.Placeable {
		if i < len(keys) && inpututil.IsKeyJustPressed(keys[i]) {
			s.game.ToggleTowerType(id)
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.game.StartWave()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		s.game.PullLoot()
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		s.game.UpgradeTower(s.game.SelectedTower())
	case inpututil.IsKeyJustPressed(ebiten.KeyS), inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		s.game.SellTower(s.game.SelectedTower())
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		s.game.CycleSpeed()
		s.panel.Speed.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.game.ClearTowerType()
		s.game.ClearSelection()
	}
}

func (s *GameState) handleBoardClick(x, y int) {
	if x < 0 || y < 0 || x >= s.boardW || y >= s.boardH {
		return
	}
	tile := grid.TileAt(float64(x), float64(y), s.game.Settings.TileSize)
	s.game.ClickTile(tile.X, tile.Y)
}

// hover returns the placement preview under the cursor, nil if nothing is being placed.
func (s *GameState) hover() *render.Hover {
	unit := s.game.PlacingUnit()
	if unit == "" {
		return nil
	}
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= s.boardW || y >= s.boardH {
		return nil
	}
	tile := grid.TileAt(float64(x), float64(y), s.game.Settings.TileSize)
	return &render.Hover{
		Tile:     tile,
		Unit:     unit,
		CanPlace: s.game.CanPlaceAt(tile.X, tile.Y),
	}
}

func (s *GameState) Draw(screen *ebiten.Image) {
	view := s.game.Snapshot()
	s.renderer.Draw(screen, view.Snapshot, view.SelectedTower, s.hover())
	mx, my := ebiten.CursorPosition()
	s.panel.Draw(screen, s.game, s.face, mx, my)
}

func (s *GameState) Exit() {}
