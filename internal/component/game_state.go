// internal/component/game_state.go
package component

// Phase — фаза игровой сессии.
type Phase int

const (
	StartMenu Phase = iota
	WaveTransition
	Playing
	GameOver
	Victory
)

var phaseNames = map[Phase]string{
	StartMenu:      "START_MENU",
	WaveTransition: "WAVE_TRANSITION",
	Playing:        "PLAYING",
	GameOver:       "GAME_OVER",
	Victory:        "VICTORY",
}

// legalTransitions lists every allowed phase change.
var legalTransitions = map[Phase][]Phase{
	StartMenu:      {WaveTransition},
	WaveTransition: {Playing},
	Playing:        {WaveTransition, Victory, GameOver},
	GameOver:       {StartMenu},
	Victory:        {StartMenu},
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the session has ended.
func (p Phase) IsTerminal() bool {
	return p == GameOver || p == Victory
}

// Ticking reports whether the frame clock runs in this phase.
func (p Phase) Ticking() bool {
	return p == WaveTransition || p == Playing
}

// AcceptsBoardCommands reports whether placement, selling, upgrades and loot pulls are allowed.
func (p Phase) AcceptsBoardCommands() bool {
	return p == WaveTransition || p == Playing
}

// CanTransition reports whether p -> to is a legal transition.
func (p Phase) CanTransition(to Phase) bool {
	for _, next := range legalTransitions[p] {
		if next == to {
			return true
		}
	}
	return false
}
