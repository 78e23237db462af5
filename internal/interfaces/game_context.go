// internal/interfaces/game_context.go
package interfaces

// GameContext — то, что StateSystem дёргает при смене фазы.
type GameContext interface {
	StartClock()
	StopClock()
	ClearBoardSelection()
}
