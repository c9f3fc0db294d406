package raylibui

import (
	"tile-snake/game"
	"tile-snake/game/types"
	"tile-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	statusHeight  = 24 // Room for the status line under the grid
)

// Renderer paints the display list into the raylib window
type Renderer struct {
	grid         types.Grid
	palette      types.Palette
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer(grid types.Grid, palette types.Palette) *Renderer {
	r := &Renderer{grid: grid, palette: palette}
	r.UpdateDimensions()
	return r
}

// WindowSize is the window that fits the grid, its border and status line
func WindowSize(grid types.Grid) (int32, int32) {
	return int32(grid.Width + borderPadding*2), int32(grid.Height + borderPadding*2 + statusHeight)
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Keep the grid centered horizontally when the window is resized
	r.offsetX = (r.screenWidth - int32(r.grid.Width)) / 2
	if r.offsetX < borderPadding {
		r.offsetX = borderPadding
	}
	r.offsetY = borderPadding
}

func (r *Renderer) Draw(list *ui.DisplayList, state game.State) {
	if rl.IsWindowResized() {
		r.UpdateDimensions()
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	// Playfield border and background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, int32(r.grid.Width)+2, int32(r.grid.Height)+2, rl.DarkGray)
	cleared := list.Cleared()
	if cleared.W == 0 || cleared.H == 0 {
		cleared = r.grid.Bounds()
	}
	rl.DrawRectangle(
		r.offsetX+int32(cleared.X),
		r.offsetY+int32(cleared.Y),
		int32(cleared.W), int32(cleared.H),
		r.color(types.ColorBackground))

	list.Replay(func(f ui.Fill) {
		rl.DrawRectangle(
			r.offsetX+int32(f.Rect.X),
			r.offsetY+int32(f.Rect.Y),
			int32(f.Rect.W), int32(f.Rect.H),
			r.color(f.Color))
	})

	r.drawStatus(state)
	rl.EndDrawing()
}

func (r *Renderer) drawStatus(state game.State) {
	if state == game.Running {
		return
	}
	fontSize := int32(statusHeight - 6)
	text := "PAUSED - space to play"
	if state == game.NotStarted {
		text = "space to start"
	}
	textWidth := rl.MeasureText(text, fontSize)
	rl.DrawText(text,
		(r.screenWidth-textWidth)/2,
		r.offsetY+int32(r.grid.Height)+borderPadding/2,
		fontSize, r.color(types.ColorText))
}

func (r *Renderer) color(c types.Color) rl.Color {
	rgb := r.palette.Lookup(c)
	return rl.Color{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}
