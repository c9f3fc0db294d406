package game

import (
	"sync"
	"time"
)

// Scheduler runs a callback once, soon. Callers re-arm explicitly.
type Scheduler interface {
	Schedule(fn func())
}

// FrameQueue holds callbacks until the host's next frame. It is meant to
// be used from the host's loop goroutine only.
type FrameQueue struct {
	pending []func()
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) Schedule(fn func()) {
	q.pending = append(q.pending, fn)
}

// Drain runs what was queued before the call. Callbacks queued while
// draining wait for the next frame. Returns how many ran.
func (q *FrameQueue) Drain() int {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

func (q *FrameQueue) Len() int {
	return len(q.pending)
}

// TimerScheduler delivers callbacks after a fixed delay on a channel, the
// host receives from Ready and runs them on its own goroutine.
type TimerScheduler struct {
	delay time.Duration
	ready chan func()
	done  chan struct{}
	once  sync.Once
}

func NewTimerScheduler(delay time.Duration) *TimerScheduler {
	return &TimerScheduler{
		delay: delay,
		ready: make(chan func(), 1),
		done:  make(chan struct{}),
	}
}

func (s *TimerScheduler) Schedule(fn func()) {
	time.AfterFunc(s.delay, func() {
		select {
		case s.ready <- fn:
		case <-s.done:
		}
	})
}

func (s *TimerScheduler) Ready() <-chan func() {
	return s.ready
}

// Stop drops pending deliveries
func (s *TimerScheduler) Stop() {
	s.once.Do(func() { close(s.done) })
}
