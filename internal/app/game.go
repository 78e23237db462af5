// internal/app/game.go
package app

import (
	"log"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/system"
	"go-path-defense/internal/types"
	"go-path-defense/internal/utils"
)

// Options настраивает новую сессию. Нулевое значение даёт обычную игру.
type Options struct {
	Seed   int64              // 0 — сид от времени
	Source utils.Source       // если задан, заменяет Seed (тесты)
	IDs    entity.IDGenerator // если nil, UUID
}

// Game holds the session state: scalars, selections, the world and the
// systems that advance it.
type Game struct {
	Lib             *defs.Library
	Settings        config.Settings
	World           *entity.World
	Engine          *system.Engine
	StateSystem     *system.StateSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Clock           *FrameClock

	Health    int
	Money     int
	WaveIndex int // 0-based

	// Выделение: не больше одного из трёх режимов одновременно.
	selectedType  defs.UnitID
	selectedTower types.EntityID
	pendingLoot   defs.UnitID

	gameTime   float64 // время сессии в мс, масштабированное скоростью
	speedIndex int
	paused     bool
}

// NewGame creates a session in START_MENU.
func NewGame(lib *defs.Library, opts Options) *Game {
	if lib == nil {
		panic("library cannot be nil")
	}

	rng := utils.NewPRNGService(opts.Seed)
	if opts.Source != nil {
		rng = utils.NewPRNGServiceFrom(opts.Source)
	}

	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Lib:             lib,
		Settings:        lib.Settings,
		World:           entity.NewWorldWithIDs(opts.IDs),
		Engine:          system.NewEngine(lib, rng),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Clock:           &FrameClock{},
	}
	g.StateSystem = system.NewStateSystem(g, eventDispatcher)
	g.reset()

	eventDispatcher.Subscribe(event.PhaseChanged, event.ListenerFunc(func(e event.Event) {
		if data, ok := e.Data.(event.PhaseData); ok {
			log.Printf("[Session] Phase %s -> %s", data.From, data.To)
		}
	}))
	return g
}

// Phase returns the current session phase.
func (g *Game) Phase() component.Phase {
	return g.StateSystem.Current()
}

// StartGame begins a fresh session. From a terminal phase it passes through
// START_MENU first.
func (g *Game) StartGame() bool {
	if g.Phase().IsTerminal() {
		g.StateSystem.Transition(component.StartMenu)
	}
	if g.Phase() != component.StartMenu {
		return false
	}
	g.reset()
	return g.StateSystem.Transition(component.WaveTransition)
}

// Restart is StartGame restricted to the GAME_OVER and VICTORY phases.
func (g *Game) Restart() bool {
	if !g.Phase().IsTerminal() {
		return false
	}
	return g.StartGame()
}

func (g *Game) reset() {
	g.World.Reset()
	g.Health = g.Settings.InitialHealth
	g.Money = g.Settings.InitialMoney
	g.WaveIndex = 0
	g.gameTime = 0
	g.paused = false
	g.clearSelections()
}

// Update is called once per rendered frame with a monotonic timestamp in ms.
func (g *Game) Update(nowMs float64) {
	delta, ok := g.Clock.Advance(nowMs)
	if !ok {
		return
	}
	g.Step(delta * g.SpeedMultiplier())
}

// Step advances the session by deltaMs of game time. Outside the ticking
// phases it does nothing.
func (g *Game) Step(deltaMs float64) {
	phase := g.Phase()
	if !phase.Ticking() {
		return
	}
	if deltaMs > 0 {
		g.gameTime += deltaMs
	}

	result := g.Engine.Tick(g.World, system.TickInput{
		DeltaMs:  deltaMs,
		Now:      g.gameTime,
		Spawning: phase == component.Playing,
	})
	g.dispatchTick(result)

	g.Health = utils.ClampInt(g.Health-result.HealthLost, 0, g.Settings.InitialHealth)
	g.Money += result.MoneyGained

	g.checkPhase()
}

// checkPhase завершает волну или игру. Проигрыш важнее победы в том же тике.
func (g *Game) checkPhase() {
	if g.Phase() != component.Playing {
		return
	}
	if g.Health <= 0 {
		g.StateSystem.Transition(component.GameOver)
		return
	}
	if len(g.World.Enemies) > 0 || g.World.PendingSpawns() > 0 {
		return
	}

	cleared := g.WaveIndex
	g.World.Wave = nil
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.WaveCleared,
		Data: event.WaveData{Index: cleared, Total: g.Lib.WaveCount()},
	})
	log.Printf("[Session] Wave %d/%d cleared", cleared+1, g.Lib.WaveCount())

	if g.Lib.IsLastWave(cleared) {
		g.StateSystem.Transition(component.Victory)
		return
	}
	g.WaveIndex++
	g.StateSystem.Transition(component.WaveTransition)
}

func (g *Game) dispatchTick(result system.TickResult) {
	if e := result.Spawned; e != nil {
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.EnemySpawned,
			Data: event.EnemyData{EnemyID: e.ID, Type: e.Type},
		})
	}
	for _, e := range result.Escaped {
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.EnemyEscaped,
			Data: event.EnemyData{EnemyID: e.ID, Type: e.Type},
		})
	}
	for _, p := range result.Fired {
		g.EventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: p.TowerID})
	}
	for _, e := range result.Killed {
		reward := 0
		if stats, ok := g.Lib.EnemyStats(e.Type); ok {
			reward = stats.Reward
		}
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyData{EnemyID: e.ID, Type: e.Type, Reward: reward},
		})
	}
}

// GameTime returns the session time in ms.
func (g *Game) GameTime() float64 {
	return g.gameTime
}

// StartClock, StopClock и ClearBoardSelection вызываются StateSystem при смене фазы.

func (g *Game) StartClock() {
	if !g.paused {
		g.Clock.Start()
	}
}

func (g *Game) StopClock() {
	g.Clock.Stop()
}

func (g *Game) ClearBoardSelection() {
	g.selectedTower = types.None
}

// Pause stops the frame clock without changing the phase.
func (g *Game) Pause() bool {
	if !g.Phase().Ticking() || g.paused {
		return false
	}
	g.paused = true
	g.Clock.Stop()
	return true
}

// Resume restarts the frame clock after Pause.
func (g *Game) Resume() bool {
	if !g.paused {
		return false
	}
	g.paused = false
	if g.Phase().Ticking() {
		g.Clock.Start()
	}
	return true
}

// TogglePause switches between Pause and Resume.
func (g *Game) TogglePause() bool {
	if g.paused {
		return g.Resume()
	}
	return g.Pause()
}

func (g *Game) IsPaused() bool {
	return g.paused
}

// SetSpeed selects one of config.SpeedMultipliers.
func (g *Game) SetSpeed(multiplier float64) bool {
	for i, m := range config.SpeedMultipliers {
		if m == multiplier {
			g.speedIndex = i
			return true
		}
	}
	return false
}

// CycleSpeed switches x1 -> x2 -> x4 -> x1.
func (g *Game) CycleSpeed() {
	g.speedIndex = (g.speedIndex + 1) % len(config.SpeedMultipliers)
}

func (g *Game) SpeedMultiplier() float64 {
	return config.SpeedMultipliers[g.speedIndex]
}

// SpeedIndex returns the index into config.SpeedMultipliers.
func (g *Game) SpeedIndex() int {
	return g.speedIndex
}
