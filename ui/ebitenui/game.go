// Package ebitenui runs the game on ebiten. Ebiten calls Update at a fixed
// rate and Draw once per frame, Update drains the frame queue.
package ebitenui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"tile-snake/game"
	"tile-snake/game/input"
	"tile-snake/game/types"
	"tile-snake/ui"
)

// KeyMap binds arrows and WASD
var KeyMap = input.KeyMap[ebiten.Key]{
	ebiten.KeyArrowUp:    types.Up,
	ebiten.KeyArrowDown:  types.Down,
	ebiten.KeyArrowLeft:  types.Left,
	ebiten.KeyArrowRight: types.Right,
	ebiten.KeyW:          types.Up,
	ebiten.KeyS:          types.Down,
	ebiten.KeyA:          types.Left,
	ebiten.KeyD:          types.Right,
}

type Options struct {
	FPS     int
	Palette types.Palette
	Logger  *zerolog.Logger
}

// Game adapts the loop to ebiten.Game
type Game struct {
	loop    *game.Loop
	queue   *game.FrameQueue
	list    *ui.DisplayList
	grid    types.Grid
	palette types.Palette
	keys    []ebiten.Key
}

func NewGame(settings game.Settings, opts Options) *Game {
	g := &Game{
		queue:   game.NewFrameQueue(),
		list:    ui.NewDisplayList(),
		grid:    settings.Grid,
		palette: opts.Palette,
	}
	g.loop = game.NewLoop(settings, game.LoopOptions{
		Scheduler: g.queue,
		Surface:   g.list,
		Logger:    opts.Logger,
	})
	return g
}

// Run opens the window and blocks until it is closed or Q is pressed
func Run(settings game.Settings, opts Options) error {
	ebiten.SetWindowSize(settings.Grid.Width, settings.Grid.Height)
	ebiten.SetWindowTitle("Tile Snake")
	if opts.FPS > 0 {
		ebiten.SetTPS(opts.FPS)
	}

	g := NewGame(settings, opts)
	g.loop.Start()
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, key := range g.keys {
		switch key {
		case ebiten.KeyQ:
			return ebiten.Termination
		case ebiten.KeySpace, ebiten.KeyP:
			g.loop.Toggle()
		default:
			if dir, ok := KeyMap.Lookup(key); ok {
				g.loop.Direction(dir)
			}
		}
	}

	g.queue.Drain()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.color(types.ColorBackground))

	g.list.Replay(func(f ui.Fill) {
		ebitenutil.DrawRect(screen,
			float64(f.Rect.X), float64(f.Rect.Y),
			float64(f.Rect.W), float64(f.Rect.H),
			g.color(f.Color))
	})

	switch g.loop.State() {
	case game.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED - space to play", 4, 4)
	case game.NotStarted:
		ebitenutil.DebugPrintAt(screen, "space to start", 4, 4)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.Width, g.grid.Height
}

func (g *Game) color(c types.Color) color.RGBA {
	rgb := g.palette.Lookup(c)
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}
