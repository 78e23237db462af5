// internal/system/state.go
package system

import (
	"log"

	"go-path-defense/internal/component"
	"go-path-defense/internal/event"
	"go-path-defense/internal/interfaces"
)

// StateSystem хранит фазу сессии и проверяет переходы по таблице.
// Побочные эффекты фазы (часы, сброс выделения) уходят в GameContext.
type StateSystem struct {
	phase           component.Phase
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		phase:           component.StartMenu,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
}

// Current returns the current phase.
func (s *StateSystem) Current() component.Phase {
	return s.phase
}

// Transition moves the session to the given phase. Illegal transitions are
// logged and ignored.
func (s *StateSystem) Transition(to component.Phase) bool {
	from := s.phase
	if !from.CanTransition(to) {
		log.Printf("[Session] Ignored phase change %s -> %s", from, to)
		return false
	}
	s.phase = to

	if to.Ticking() {
		s.gameContext.StartClock()
	} else {
		s.gameContext.StopClock()
	}
	if to == component.WaveTransition {
		s.gameContext.ClearBoardSelection()
	}

	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PhaseChanged,
			Data: event.PhaseData{From: from, To: to},
		})
	}
	return true
}
