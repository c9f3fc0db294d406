package entity

import "tile-snake/game/types"

// GrowthPolicy decides what several growth requests within one tick mean
type GrowthPolicy int

const (
	// GrowthCoalesce treats growth as a flag, many requests add one segment
	GrowthCoalesce GrowthPolicy = iota
	// GrowthStack counts requests and adds one segment per tick until drained
	GrowthStack
)

func (p GrowthPolicy) String() string {
	if p == GrowthStack {
		return "stack"
	}
	return "coalesce"
}

// Snake keeps its body tail first, the head is the last element
type Snake struct {
	Body      []*Tile
	Direction types.Direction
	Growth    GrowthPolicy
	grid      types.Grid
	tileSize  int
	color     types.Color
	pending   int
}

// NewSnake creates a one segment snake at the origin heading down
func NewSnake(grid types.Grid, tileSize int) *Snake {
	return NewSnakeAt(grid, tileSize, types.Down, types.Point{})
}

// NewSnakeAt builds a snake from explicit positions listed head first
func NewSnakeAt(grid types.Grid, tileSize int, dir types.Direction, positions ...types.Point) *Snake {
	if len(positions) == 0 {
		positions = []types.Point{{}}
	}

	s := &Snake{
		Direction: dir,
		grid:      grid,
		tileSize:  tileSize,
		color:     types.ColorSnake,
		Body:      make([]*Tile, len(positions)),
	}
	for i, p := range positions {
		t := NewTile(tileSize, s.color)
		t.SetPosition(p)
		s.Body[len(positions)-1-i] = t
	}
	return s
}

// RequestGrowth asks for one more segment on the next Advance
func (s *Snake) RequestGrowth() {
	if s.Growth == GrowthStack {
		s.pending++
		return
	}
	s.pending = 1
}

func (s *Snake) GrowthPending() bool {
	return s.pending > 0
}

// Advance moves the snake one step. The tail tile is recycled as the new
// head unless growth is pending, every other segment keeps its place.
func (s *Snake) Advance() {
	head := s.GetHead()

	var next *Tile
	if s.pending > 0 {
		s.pending--
		next = NewTile(s.tileSize, s.color)
	} else {
		next = s.Body[0]
		s.Body[0] = nil
		s.Body = s.Body[1:]
	}

	next.SetPosition(head.Position)
	s.Body = append(s.Body, next)
	next.Advance(s.Direction, s.grid)
}

// HasSelfCollision reports whether the head sits on another segment
func (s *Snake) HasSelfCollision() bool {
	head := s.GetHead()
	for _, t := range s.Body[:len(s.Body)-1] {
		if head.CollidesWith(t) {
			return true
		}
	}
	return false
}

// Render draws the segments head first
func (s *Snake) Render(surface types.Surface) {
	for i := len(s.Body) - 1; i >= 0; i-- {
		s.Body[i].Render(surface)
	}
}

func (s *Snake) GetHead() *Tile {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Segment returns the i-th segment counting from the head
func (s *Snake) Segment(i int) *Tile {
	return s.Body[len(s.Body)-1-i]
}

// Segments returns the body positions head first
func (s *Snake) Segments() []types.Point {
	out := make([]types.Point, 0, len(s.Body))
	for i := len(s.Body) - 1; i >= 0; i-- {
		out = append(out, s.Body[i].Position)
	}
	return out
}

func (s *Snake) GetDirection() types.Direction {
	return s.Direction
}

// SetDirection trusts the caller, see input.Mapper for the turn rules
func (s *Snake) SetDirection(dir types.Direction) {
	s.Direction = dir
}
