package types

import "time"

// Point is a pixel position on the playfield
type Point struct {
	X, Y int
}

// Grid represents the playfield dimensions in pixels
type Grid struct {
	Width  int
	Height int
}

// Cols returns how many tiles fit across the grid
func (g Grid) Cols(tile int) int {
	return g.Width / tile
}

// Rows returns how many tiles fit down the grid
func (g Grid) Rows(tile int) int {
	return g.Height / tile
}

// Bounds returns the whole grid as a region
func (g Grid) Bounds() Rect {
	return Rect{W: g.Width, H: g.Height}
}

// Wrap maps any point back onto the torus
func (g Grid) Wrap(p Point) Point {
	return Point{X: wrap(p.X, g.Width), Y: wrap(p.Y, g.Height)}
}

// wrap is a modulo that never goes negative
func wrap(v, bound int) int {
	return ((v % bound) + bound) % bound
}

// Rect is a region of the surface
type Rect struct {
	X, Y, W, H int
}

// Game defaults
const (
	TileSize         = 20
	TickInterval     = 100 * time.Millisecond
	MaxFruitInterval = 10 * time.Second
)
