package entity

import "tile-snake/game/types"

// Tile is a square of fixed size sitting on the grid
type Tile struct {
	Position types.Point
	Size     int
	Color    types.Color
	Step     int
}

// NewTile creates a tile at the origin that moves one tile per step
func NewTile(size int, color types.Color) *Tile {
	return NewTileWithStep(size, color, size)
}

// NewTileWithStep creates a tile with a custom movement step.
// A non-positive step falls back to the tile size.
func NewTileWithStep(size int, color types.Color, step int) *Tile {
	if step <= 0 {
		step = size
	}
	return &Tile{Size: size, Color: color, Step: step}
}

// SetPosition moves the tile without wrapping
func (t *Tile) SetPosition(p types.Point) {
	t.Position = p
}

// Advance moves the tile one step and wraps it around the grid
func (t *Tile) Advance(dir types.Direction, grid types.Grid) {
	d := dir.Delta()
	t.Position = grid.Wrap(types.Point{
		X: t.Position.X + d.X*t.Step,
		Y: t.Position.Y + d.Y*t.Step,
	})
}

// Render fills the tile in its color
func (t *Tile) Render(s types.Surface) {
	s.FillRect(t.Position.X, t.Position.Y, t.Size, t.Size, t.Color)
}

// CollidesWith compares positions only, tiles share a size
func (t *Tile) CollidesWith(other *Tile) bool {
	return t.Position == other.Position
}
