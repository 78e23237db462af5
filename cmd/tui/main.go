// cmd/tui/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go-path-defense/internal/app"
	"go-path-defense/internal/audio"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "YAML file with units, path and waves (default: built-in)")
	seed := flag.Int64("seed", 0, "random seed, 0 for time-based")
	logPath := flag.String("log", "", "write the log to this file (the terminal is busy with the board)")
	sound := flag.Bool("sound", false, "play sound cues")
	flag.Parse()

	if err := setupLog(*logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	lib, err := loadLibrary(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	g := app.NewGame(lib, app.Options{Seed: *seed})

	if *sound {
		player := audio.NewCuePlayer()
		if err := player.Init(); err != nil {
			log.Printf("[Audio] disabled: %v", err)
		} else {
			player.Attach(g.EventDispatcher)
			defer player.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()

	tui.NewClient(screen, g).Run()
}

func setupLog(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log %s: %w", path, err)
	}
	log.SetOutput(f)
	return nil
}

func loadLibrary(path string) (*defs.Library, error) {
	if path == "" {
		return defs.DefaultLibrary()
	}
	return defs.LoadLibrary(path)
}
