// Package raylibui runs the game in a raylib window.
package raylibui

import (
	"github.com/rs/zerolog"

	"tile-snake/game"
	"tile-snake/game/input"
	"tile-snake/game/types"
	"tile-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyMap binds arrows and WASD
var KeyMap = input.KeyMap[int32]{
	rl.KeyUp:    types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyRight: types.Right,
	rl.KeyW:     types.Up,
	rl.KeyS:     types.Down,
	rl.KeyA:     types.Left,
	rl.KeyD:     types.Right,
}

type Options struct {
	FPS     int
	Palette types.Palette
	Logger  *zerolog.Logger
}

// Run opens the window and plays until it is closed or Q is pressed.
// Frames are paced by SetTargetFPS, the loop re-arms on the frame queue.
func Run(settings game.Settings, opts Options) error {
	width, height := WindowSize(settings.Grid)
	rl.InitWindow(width, height, "Tile Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(opts.FPS))

	queue := game.NewFrameQueue()
	list := ui.NewDisplayList()
	loop := game.NewLoop(settings, game.LoopOptions{
		Scheduler: queue,
		Surface:   list,
		Logger:    opts.Logger,
	})
	renderer := NewRenderer(settings.Grid, opts.Palette)

	loop.Start()
	for !rl.WindowShouldClose() {
		if !handleKeys(loop) {
			break
		}
		queue.Drain()
		renderer.Draw(list, loop.State())
	}
	return nil
}

// handleKeys feeds every key pressed since the last frame to the loop,
// returns false when the player asked to quit
func handleKeys(loop *game.Loop) bool {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		switch key {
		case rl.KeyQ:
			return false
		case rl.KeySpace, rl.KeyP:
			loop.Toggle()
		default:
			if dir, ok := KeyMap.Lookup(key); ok {
				loop.Direction(dir)
			}
		}
	}
	return true
}
