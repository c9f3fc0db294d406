package types

// Direction is a cardinal direction of travel
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Axis groups directions that cannot be swapped for one another
type Axis int

const (
	NoAxis Axis = iota
	Vertical
	Horizontal
)

// Axis returns the axis the direction moves along
func (d Direction) Axis() Axis {
	switch d {
	case Up, Down:
		return Vertical
	case Left, Right:
		return Horizontal
	default:
		return NoAxis
	}
}

// Delta returns the unit vector for the direction, Y grows downwards
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Orthogonal reports whether d and other lie on different axes.
// None is orthogonal to nothing.
func (d Direction) Orthogonal(other Direction) bool {
	a, b := d.Axis(), other.Axis()
	return a != NoAxis && b != NoAxis && a != b
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}
