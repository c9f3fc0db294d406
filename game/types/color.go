package types

// Color is what a tile represents, hosts decide how it looks
type Color int

const (
	ColorBackground Color = iota
	ColorSnake
	ColorFruit
	ColorText
)

// RGB is a concrete color a host paints with
type RGB struct {
	R, G, B uint8
}

// Palette maps semantic colors to concrete ones
type Palette map[Color]RGB

// DefaultPalette is tuned for a dark background
var DefaultPalette = Palette{
	ColorBackground: {R: 20, G: 20, B: 20},
	ColorSnake:      {R: 80, G: 200, B: 120},
	ColorFruit:      {R: 230, G: 41, B: 55},
	ColorText:       {R: 245, G: 245, B: 245},
}

// Lookup returns the concrete color, falling back to the default palette
func (p Palette) Lookup(c Color) RGB {
	if rgb, ok := p[c]; ok {
		return rgb
	}
	return DefaultPalette[c]
}
