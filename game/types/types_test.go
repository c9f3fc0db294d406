package types

import "testing"

func TestGridWrap(t *testing.T) {
	g := Grid{Width: 200, Height: 100}

	tests := []struct {
		in, want Point
	}{
		{Point{0, 0}, Point{0, 0}},
		{Point{-20, 0}, Point{180, 0}},
		{Point{200, 100}, Point{0, 0}},
		{Point{-420, -250}, Point{180, 50}},
		{Point{199, 99}, Point{199, 99}},
	}

	for _, tt := range tests {
		if got := g.Wrap(tt.in); got != tt.want {
			t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDirectionOrthogonal(t *testing.T) {
	all := []Direction{Up, Down, Left, Right}
	for _, a := range all {
		for _, b := range all {
			want := a.Axis() != b.Axis()
			if got := a.Orthogonal(b); got != want {
				t.Errorf("%v.Orthogonal(%v) = %v, want %v", a, b, got, want)
			}
		}
		if a.Orthogonal(None) || None.Orthogonal(a) {
			t.Errorf("None must not be orthogonal to %v", a)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	if d := Up.Delta(); d != (Point{0, -1}) {
		t.Errorf("Up delta = %v", d)
	}
	if d := Right.Delta(); d != (Point{1, 0}) {
		t.Errorf("Right delta = %v", d)
	}
	if d := None.Delta(); d != (Point{}) {
		t.Errorf("None delta = %v", d)
	}
}

func TestPaletteLookupFallsBack(t *testing.T) {
	p := Palette{ColorSnake: {R: 1, G: 2, B: 3}}
	if got := p.Lookup(ColorSnake); got != (RGB{1, 2, 3}) {
		t.Errorf("override lost: %v", got)
	}
	if got := p.Lookup(ColorFruit); got != DefaultPalette[ColorFruit] {
		t.Errorf("fallback = %v, want %v", got, DefaultPalette[ColorFruit])
	}
}
