// cmd/path_viewer/main.go
//
// Просмотр пути и волн в 3D: враги идут по пути без башен.
// N — следующая волна, R — сброс, Q/E — поворот, колесо — угол камеры.
package main

import (
	"flag"
	"fmt"
	"log"

	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/system"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/grid"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	cellSize     = 4.0 // клетка поля в мировых единицах
)

// Vector3Lerp выполняет линейную интерполяцию между двумя векторами
func Vector3Lerp(v1, v2 rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(v1, rl.Vector3Scale(rl.Vector3Subtract(v2, v1), t))
}

// viewer — мир, движок и счётчик волн без сессии и фаз.
type viewer struct {
	lib     *defs.Library
	world   *entity.World
	engine  *system.Engine
	now     float64
	wave    int
	escaped int
}

func newViewer(lib *defs.Library, seed int64) *viewer {
	return &viewer{
		lib:    lib,
		world:  entity.NewWorldWithIDs(entity.SequentialIDs()),
		engine: system.NewEngine(lib, utils.NewPRNGService(seed)),
	}
}

func (v *viewer) nextWave() {
	wave := system.NewWave(v.lib, v.wave, v.now)
	if wave == nil {
		return
	}
	v.world.Wave = wave
	v.wave++
}

func (v *viewer) reset() {
	v.world.Reset()
	v.now, v.wave, v.escaped = 0, 0, 0
}

func (v *viewer) update(deltaMs float64) {
	v.now += deltaMs
	result := v.engine.Tick(v.world, system.TickInput{DeltaMs: deltaMs, Now: v.now, Spawning: true})
	v.escaped += len(result.Escaped)
}

// toWorld переводит пиксели поля в мировые координаты с центром поля в нуле.
func (v *viewer) toWorld(px, py float64) rl.Vector3 {
	s := v.lib.Settings
	x := float32(px/s.TileSize)*cellSize - float32(s.BoardWidth)*cellSize/2
	z := float32(py/s.TileSize)*cellSize - float32(s.BoardHeight)*cellSize/2
	return rl.NewVector3(x, 0, z)
}

func colorToRL(r, g, b, a uint8) rl.Color {
	return rl.NewColor(r, g, b, a)
}

func main() {
	configPath := flag.String("config", "", "YAML file with units, path and waves (default: built-in)")
	seed := flag.Int64("seed", 0, "random seed, 0 for time-based")
	flag.Parse()

	var lib *defs.Library
	var err error
	if *configPath == "" {
		lib, err = defs.DefaultLibrary()
	} else {
		lib, err = defs.LoadLibrary(*configPath)
	}
	if err != nil {
		log.Fatal(err)
	}
	v := newViewer(lib, *seed)
	s := lib.Settings

	rl.InitWindow(screenWidth, screenHeight, "Path Viewer | N - next wave, R - reset, Q/E - rotate, wheel - angle")
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective

	isoPos := rl.NewVector3(40, 70, 70)
	topDownPos := rl.NewVector3(0, 110, 0.1)
	origin := rl.NewVector3(0, 0, 0)
	isoFovy := float32(55.0)
	topDownFovy := float32(45.0)
	cameraAngleT := float32(0.5)

	grass := colorToRL(22, 101, 52, 255)
	road := colorToRL(161, 98, 7, 255)

	for !rl.WindowShouldClose() {
		if rl.IsKeyDown(rl.KeyQ) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, -0.02)
		}
		if rl.IsKeyDown(rl.KeyE) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, 0.02)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cameraAngleT = float32(utils.Clamp(float64(cameraAngleT+wheel*0.05), 0, 0.99))
		}
		if rl.IsKeyPressed(rl.KeyN) {
			v.nextWave()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			v.reset()
		}

		camera.Position = Vector3Lerp(isoPos, topDownPos, cameraAngleT)
		camera.Target = origin
		camera.Fovy = float32(utils.Lerp(float64(isoFovy), float64(topDownFovy), float64(cameraAngleT)))

		v.update(float64(rl.GetFrameTime()) * 1000)

		rl.BeginDrawing()
		rl.ClearBackground(colorToRL(10, 10, 20, 255))
		rl.BeginMode3D(camera)

		for y := 0; y < s.BoardHeight; y++ {
			for x := 0; x < s.BoardWidth; x++ {
				c := grass
				if lib.Path.Contains(grid.Point{X: x, Y: y}) {
					c = road
				}
				pos := v.toWorld((float64(x)+0.5)*s.TileSize, (float64(y)+0.5)*s.TileSize)
				pos.Y = -0.5
				rl.DrawCube(pos, cellSize, 1, cellSize, c)
				rl.DrawCubeWires(pos, cellSize, 1, cellSize, rl.DarkGray)
			}
		}

		for _, e := range v.world.Enemies {
			pos := v.toWorld(e.X, e.Y)
			radius := float32(cellSize / 3)
			if stats, ok := lib.EnemyStats(e.Type); ok && stats.IsBoss {
				radius *= 1.5
			}
			pos.Y = radius
			rl.DrawSphere(pos, radius, colorToRL(e.Color.R, e.Color.G, e.Color.B, 255))
		}

		rl.EndMode3D()

		status := fmt.Sprintf("wave %d/%d  enemies %d  queued %d  escaped %d",
			v.wave, lib.WaveCount(), len(v.world.Enemies), v.world.PendingSpawns(), v.escaped)
		rl.DrawText(status, 10, 10, 20, rl.White)
		rl.DrawFPS(10, 40)
		rl.EndDrawing()
	}

	rl.CloseWindow()
}
