// Package input turns key presses into steering decisions.
package input

import "tile-snake/game/types"

// Steerable is whatever carries a direction of travel
type Steerable interface {
	GetDirection() types.Direction
	SetDirection(types.Direction)
}

// Mapper applies the turning rule: only a change of axis is accepted, so
// the head can never fold back onto the segment right behind it.
type Mapper struct{}

func NewMapper() *Mapper {
	return &Mapper{}
}

// Steer sets the requested direction if it turns onto the other axis and
// reports whether it did. Repeats and reversals are dropped. A snake with
// no direction yet takes any real direction.
func (m *Mapper) Steer(s Steerable, requested types.Direction) bool {
	if requested.Axis() == types.NoAxis {
		return false
	}
	if cur := s.GetDirection(); cur != types.None && !cur.Orthogonal(requested) {
		return false
	}
	s.SetDirection(requested)
	return true
}

// KeyMap translates a host's key codes into directions
type KeyMap[K comparable] map[K]types.Direction

// Lookup returns the direction bound to key, ok is false for unmapped keys
func (km KeyMap[K]) Lookup(key K) (types.Direction, bool) {
	d, ok := km[key]
	return d, ok && d != types.None
}
