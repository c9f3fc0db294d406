// Package ui holds the pieces shared by the hosts that put the game on
// screen.
package ui

import "tile-snake/game/types"

// Fill is one retained FillRect call
type Fill struct {
	Rect  types.Rect
	Color types.Color
}

// DisplayList is a render surface that remembers the last pass. Hosts that
// repaint every frame replay it, so a paused game keeps its last picture.
type DisplayList struct {
	cleared types.Rect
	fills   []Fill
	version int
}

func NewDisplayList() *DisplayList {
	return &DisplayList{}
}

func (d *DisplayList) Clear(region types.Rect) {
	d.cleared = region
	d.fills = d.fills[:0]
	d.version++
}

func (d *DisplayList) FillRect(x, y, w, h int, c types.Color) {
	d.fills = append(d.fills, Fill{Rect: types.Rect{X: x, Y: y, W: w, H: h}, Color: c})
}

// Replay hands every retained fill to draw in the order it was recorded
func (d *DisplayList) Replay(draw func(Fill)) {
	for _, f := range d.fills {
		draw(f)
	}
}

// Cleared is the region wiped by the last pass
func (d *DisplayList) Cleared() types.Rect {
	return d.cleared
}

func (d *DisplayList) Len() int {
	return len(d.fills)
}

// Version changes every time a new pass starts
func (d *DisplayList) Version() int {
	return d.version
}
