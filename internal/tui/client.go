// internal/tui/client.go
package tui

import (
	"log"
	"time"

	"go-path-defense/internal/app"
	"go-path-defense/internal/interfaces"
	"go-path-defense/pkg/grid"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond

// Client — терминальный интерфейс сессии: клавиатура и мышь через tcell.
type Client struct {
	screen   tcell.Screen
	game     *app.Game
	cmds     interfaces.Commands
	renderer *Renderer
	cursor   grid.Point
	start    time.Time
	buttons  tcell.ButtonMask // кнопки мыши в прошлом событии
}

// NewClient wraps an initialised screen.
func NewClient(screen tcell.Screen, g *app.Game) *Client {
	screen.EnableMouse()
	return &Client{
		screen:   screen,
		game:     g,
		cmds:     g,
		renderer: NewRenderer(screen, g.Lib),
		start:    time.Now(),
	}
}

// Cursor returns the highlighted tile.
func (c *Client) Cursor() grid.Point {
	return c.cursor
}

// Run крутит цикл до выхода: события из PollEvent в канал, кадр каждые 16 мс.
func (c *Client) Run() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !c.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			c.Frame(float64(now.Sub(c.start).Milliseconds()))
		}
	}
}

// Frame advances the session to nowMs and redraws.
func (c *Client) Frame(nowMs float64) {
	c.game.Update(nowMs)
	c.renderer.Draw(c.game, c.cursor)
}

// HandleEvent применяет событие терминала. Возвращает false, если пора выходить.
func (c *Client) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.handleKey(ev)
	case *tcell.EventMouse:
		c.handleMouse(ev)
	case *tcell.EventResize:
		c.screen.Sync()
	}
	return true
}

func (c *Client) handleKey(ev *tcell.EventKey) bool {
	s := c.game.Settings
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		c.moveCursor(0, -1, s.BoardWidth, s.BoardHeight)
	case tcell.KeyDown:
		c.moveCursor(0, 1, s.BoardWidth, s.BoardHeight)
	case tcell.KeyLeft:
		c.moveCursor(-1, 0, s.BoardWidth, s.BoardHeight)
	case tcell.KeyRight:
		c.moveCursor(1, 0, s.BoardWidth, s.BoardHeight)
	case tcell.KeyEnter:
		c.cmds.ClickTile(c.cursor.X, c.cursor.Y)
	case tcell.KeyEscape:
		c.game.ClearTowerType()
		c.game.ClearSelection()
	case tcell.KeyRune:
		return c.handleRune(ev.Rune())
	}
	return true
}

func (c *Client) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		c.cmds.ClickTile(c.cursor.X, c.cursor.Y)
	case 'w':
		c.cmds.StartWave()
	case 'l':
		c.cmds.PullLoot()
	case 'u':
		c.cmds.UpgradeTower(c.game.SelectedTower())
	case 's':
		c.cmds.SellTower(c.game.SelectedTower())
	case 'p':
		c.cmds.TogglePause()
	case 'f':
		c.cmds.CycleSpeed()
	case 'r':
		if !c.cmds.StartGame() {
			log.Printf("[TUI] start ignored in %s", c.game.Phase())
		}
	default:
		if r >= '1' && r <= '9' {
			i := int(r - '1')
			if i < len(c.game.Lib.Placeable) {
				c.cmds.ToggleTowerType(c.game.Lib.Placeable[i])
			}
		}
	}
	return true
}

func (c *Client) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0 && c.buttons&tcell.Button1 == 0
	c.buttons = ev.Buttons()
	if !pressed {
		return
	}
	x, y := ev.Position()
	p := grid.Point{X: x / CellWidth, Y: y}
	s := c.game.Settings
	if !grid.InBounds(p, s.BoardWidth, s.BoardHeight) {
		return
	}
	c.cursor = p
	c.cmds.ClickTile(p.X, p.Y)
}

func (c *Client) moveCursor(dx, dy, w, h int) {
	next := c.cursor.Add(grid.Point{X: dx, Y: dy})
	if grid.InBounds(next, w, h) {
		c.cursor = next
	}
}
