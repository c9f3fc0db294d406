package game

import "time"

// Clock tells the loop what time it is
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to, for tests and replays
type ManualClock struct {
	current time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

func (c *ManualClock) Now() time.Time {
	return c.current
}

func (c *ManualClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
