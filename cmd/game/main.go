// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-path-defense/internal/app"
	"go-path-defense/internal/audio"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "", "YAML file with units, path and waves (default: built-in)")
	seed := flag.Int64("seed", 0, "random seed, 0 for time-based")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	lib, err := loadLibrary(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	g := app.NewGame(lib, app.Options{Seed: *seed})

	if !*mute {
		player := audio.NewCuePlayer()
		if err := player.Init(); err != nil {
			log.Printf("[Audio] disabled: %v", err)
		} else {
			player.Attach(g.EventDispatcher)
			defer player.Close()
		}
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, g))

	w, h := lib.Settings.ScreenSize()
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          w,
		height:         h,
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Path Defense")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}

func loadLibrary(path string) (*defs.Library, error) {
	if path == "" {
		return defs.DefaultLibrary()
	}
	return defs.LoadLibrary(path)
}
