// internal/state/pause_state.go
package state

import (
	"go-path-defense/internal/config"
	"go-path-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

// PauseState затемняет поле; часы сессии остановлены game.Pause.
type PauseState struct {
	sm    *StateMachine
	board *GameState
}

func NewPauseState(sm *StateMachine, board *GameState) *PauseState {
	return &PauseState{sm: sm, board: board}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	s.board.tick(deltaTime)

	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.board.panel.Pause.IsClicked(x, y)
	}
	if unpause {
		s.board.game.Resume()
		s.board.panel.Pause.Toggle()
		s.sm.SetState(s.board)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.board.Draw(screen)

	w, h := float32(s.board.boardW), float32(s.board.boardH)
	vector.DrawFilledRect(screen, 0, 0, w, h, config.ModalShadeColor, false)
	face := s.board.face
	ui.DrawTextCentered(screen, "PAUSED", face, float64(w)/2, float64(h)/2, config.TextLightColor)
	ui.DrawTextCentered(screen, "press P to resume", face, float64(w)/2, float64(h)/2+20, config.TextLightColor)
}

func (s *PauseState) Exit() {}
