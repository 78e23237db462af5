// internal/state/menu_state.go
package state

import (
	"go-path-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*MenuState)(nil)

// MenuState — модальное окно START_MENU, GAME_OVER или VICTORY поверх поля.
type MenuState struct {
	sm    *StateMachine
	board *GameState
	modal *ui.Modal
}

func NewMenuState(sm *StateMachine, board *GameState) *MenuState {
	return &MenuState{sm: sm, board: board}
}

func (m *MenuState) Enter() {
	m.modal = ui.ModalFor(m.board.game.Phase(), m.board.screenW, m.board.screenH)
}

func (m *MenuState) Update(deltaTime float64) {
	m.board.tick(deltaTime)

	if m.modal == nil {
		m.sm.SetState(m.board)
		return
	}

	confirm := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		confirm = confirm || m.modal.Button.IsClicked(x, y)
	}
	if confirm && m.board.game.StartGame() {
		m.sm.SetState(m.board)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.board.Draw(screen)
	if m.modal != nil {
		mx, my := ebiten.CursorPosition()
		m.modal.Draw(screen, m.board.face, mx, my)
	}
}

func (m *MenuState) Exit() {}
