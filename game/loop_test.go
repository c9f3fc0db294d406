package game

import (
	"testing"
	"time"

	"tile-snake/game/entity"
	"tile-snake/game/types"
)

type recorder struct {
	clears int
	fills  []types.Rect
	colors []types.Color
}

func (r *recorder) Clear(types.Rect) {
	r.clears++
	r.fills = r.fills[:0]
	r.colors = r.colors[:0]
}

func (r *recorder) FillRect(x, y, w, h int, c types.Color) {
	r.fills = append(r.fills, types.Rect{X: x, Y: y, W: w, H: h})
	r.colors = append(r.colors, c)
}

type harness struct {
	loop    *Loop
	clock   *ManualClock
	queue   *FrameQueue
	surface *recorder
}

func newHarness(t *testing.T, settings Settings) *harness {
	t.Helper()
	h := &harness{
		clock:   NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		queue:   NewFrameQueue(),
		surface: &recorder{},
	}
	h.loop = NewLoop(settings, LoopOptions{
		Clock:     h.clock,
		Scheduler: h.queue,
		Surface:   h.surface,
	})
	return h
}

// tick moves the clock one interval forward and runs a frame
func (h *harness) tick() {
	h.clock.Advance(h.loop.Game().Settings().TickInterval)
	h.queue.Drain()
}

func smallSettings() Settings {
	s := DefaultSettings()
	s.Grid = types.Grid{Width: 200, Height: 200}
	s.MaxFruitInterval = 24 * time.Hour
	s.Seed = 42
	return s
}

func TestLoopWrapsAroundTheGrid(t *testing.T) {
	h := newHarness(t, smallSettings())
	h.loop.Start()
	h.queue.Drain()

	for i := 0; i < 5; i++ {
		h.tick()
	}
	if head := h.loop.Game().Snake.GetHead().Position; head != (types.Point{X: 0, Y: 100}) {
		t.Fatalf("after 5 ticks head = %v, want (0,100)", head)
	}

	for i := 0; i < 5; i++ {
		h.tick()
	}
	if head := h.loop.Game().Snake.GetHead().Position; head != (types.Point{X: 0, Y: 0}) {
		t.Fatalf("after 10 ticks head = %v, want (0,0)", head)
	}

	h.tick()
	if head := h.loop.Game().Snake.GetHead().Position; head != (types.Point{X: 0, Y: 20}) {
		t.Fatalf("after 11 ticks head = %v, want (0,20)", head)
	}
	if h.loop.Ticks() != 11 {
		t.Errorf("ticks = %d, want 11", h.loop.Ticks())
	}
}

func TestLoopTicksOnlyAfterInterval(t *testing.T) {
	h := newHarness(t, smallSettings())
	h.loop.Start()

	h.clock.Advance(99 * time.Millisecond)
	h.queue.Drain()
	if h.loop.Ticks() != 0 {
		t.Fatal("ticked before the interval")
	}

	h.clock.Advance(time.Millisecond)
	h.queue.Drain()
	if h.loop.Ticks() != 1 {
		t.Fatalf("ticks = %d, want 1", h.loop.Ticks())
	}

	// one frame never runs more than one update
	h.clock.Advance(time.Second)
	h.queue.Drain()
	if h.loop.Ticks() != 2 {
		t.Errorf("ticks = %d, want 2", h.loop.Ticks())
	}
}

func TestLoopRendersAfterEachTick(t *testing.T) {
	h := newHarness(t, smallSettings())
	h.loop.Start()
	h.tick()

	if h.surface.clears != 1 {
		t.Fatalf("clears = %d, want 1", h.surface.clears)
	}
	if len(h.surface.fills) != 1 || h.surface.fills[0] != (types.Rect{X: 0, Y: 20, W: 20, H: 20}) {
		t.Errorf("fills = %v", h.surface.fills)
	}

	h.loop.Game().Fruits.Place(types.Point{X: 100, Y: 100})
	h.tick()
	if len(h.surface.colors) != 2 || h.surface.colors[0] != types.ColorSnake || h.surface.colors[1] != types.ColorFruit {
		t.Errorf("draw order = %v, want snake then fruit", h.surface.colors)
	}
}

func TestLoopRearmsEveryFrame(t *testing.T) {
	h := newHarness(t, smallSettings())

	h.loop.Frame()
	if h.queue.Len() != 1 {
		t.Fatalf("not started loop did not re-arm, queue %d", h.queue.Len())
	}
	h.queue.Drain()

	h.loop.Start()
	if h.queue.Len() != 2 {
		t.Fatalf("queue = %d, want 2", h.queue.Len())
	}
	for i := 0; i < 10; i++ {
		h.queue.Drain()
	}
	if h.queue.Len() != 2 {
		t.Errorf("callback chain grew or died: %d", h.queue.Len())
	}
}

func TestLoopPauseFreezesState(t *testing.T) {
	h := newHarness(t, smallSettings())
	h.loop.Start()
	h.tick()

	h.loop.Toggle()
	if h.loop.State() != Paused || h.loop.Running() {
		t.Fatalf("state = %v", h.loop.State())
	}

	before := h.loop.Game().Snake.Segments()
	clears := h.surface.clears
	for i := 0; i < 20; i++ {
		h.tick()
	}

	if h.loop.Ticks() != 1 {
		t.Errorf("ticked while paused: %d", h.loop.Ticks())
	}
	if h.surface.clears != clears {
		t.Error("drew while paused")
	}
	if got := h.loop.Game().Snake.Segments(); got[0] != before[0] {
		t.Errorf("snake moved while paused: %v -> %v", before, got)
	}
	if h.queue.Len() != 1 {
		t.Errorf("paused loop stopped re-arming: %d", h.queue.Len())
	}
	if h.loop.Direction(types.Left) {
		t.Error("input accepted while paused")
	}

	h.loop.Toggle()
	h.queue.Drain()
	if h.loop.Ticks() != 1 {
		t.Error("resume fired a tick straight away")
	}
	h.tick()
	if h.loop.Ticks() != 2 {
		t.Errorf("ticks after resume = %d, want 2", h.loop.Ticks())
	}
}

func TestLoopInputTakesEffectNextTick(t *testing.T) {
	h := newHarness(t, smallSettings())
	if h.loop.Direction(types.Left) {
		t.Fatal("input accepted before start")
	}

	h.loop.Start()
	h.tick()

	if !h.loop.Direction(types.Right) {
		t.Fatal("turn right rejected")
	}
	if h.loop.Direction(types.Left) {
		t.Fatal("reversal accepted")
	}
	if head := h.loop.Game().Snake.GetHead().Position; head != (types.Point{X: 0, Y: 20}) {
		t.Fatalf("head moved on input: %v", head)
	}

	h.tick()
	if head := h.loop.Game().Snake.GetHead().Position; head != (types.Point{X: 20, Y: 20}) {
		t.Errorf("head = %v, want (20,20)", head)
	}
}

func TestLoopResetsOnSelfCollision(t *testing.T) {
	h := newHarness(t, smallSettings())
	h.loop.Start()

	g := h.loop.Game()
	g.Snake = entity.NewSnakeAt(g.Grid, g.TileSize, types.Down,
		types.Point{X: 20, Y: 20}, types.Point{X: 40, Y: 20}, types.Point{X: 40, Y: 40},
		types.Point{X: 20, Y: 40}, types.Point{X: 0, Y: 40})
	g.Fruits.Place(types.Point{X: 160, Y: 160})

	h.tick()

	if g.Rounds != 2 {
		t.Errorf("rounds = %d, want 2", g.Rounds)
	}
	if g.Snake.Len() != 1 || g.Snake.GetHead().Position != (types.Point{}) {
		t.Errorf("snake not reset: %v", g.Snake.Segments())
	}
	if g.Snake.Direction != types.Down {
		t.Errorf("direction = %v", g.Snake.Direction)
	}
	if !g.Fruits.Empty() {
		t.Error("fruit survived the reset")
	}
	if h.loop.State() != Running {
		t.Errorf("state = %v, reset must not stop the loop", h.loop.State())
	}
}

func TestLoopSpawnsFruitWhenDue(t *testing.T) {
	s := smallSettings()
	s.MaxFruitInterval = 500 * time.Millisecond
	h := newHarness(t, s)
	h.loop.Start()

	for i := 0; i < 5 && h.loop.Game().Fruits.Empty(); i++ {
		h.tick()
	}
	if h.loop.Game().Fruits.Len() != 1 {
		t.Fatalf("fruit = %d, want 1", h.loop.Game().Fruits.Len())
	}

	for i := 0; i < 50; i++ {
		h.tick()
		if n := h.loop.Game().Fruits.Len(); n > 1 {
			t.Fatalf("tick %d: %d fruits on the field", i, n)
		}
	}
}

func TestLoopStartIsIdempotent(t *testing.T) {
	h := newHarness(t, smallSettings())
	if h.loop.Running() {
		t.Error("running before Start")
	}
	h.loop.Start()
	h.loop.Start()
	if h.queue.Len() != 1 {
		t.Errorf("queue = %d, want 1", h.queue.Len())
	}
	if !h.loop.Running() || h.loop.State().String() != "running" {
		t.Errorf("state = %v", h.loop.State())
	}
}

func TestGameEatsFruitAndGrowsNextTick(t *testing.T) {
	g := NewGame(smallSettings(), time.Now())
	g.Snake = entity.NewSnakeAt(g.Grid, g.TileSize, types.Right, types.Point{X: 20, Y: 40})
	g.Fruits.Place(types.Point{X: 40, Y: 40})

	report := g.Step()
	if report.FruitsEaten != 1 {
		t.Fatalf("report = %+v", report)
	}
	if !g.Fruits.Empty() {
		t.Error("fruit left on the field")
	}
	if g.Snake.Len() != 1 {
		t.Errorf("grew before the next tick: %d", g.Snake.Len())
	}

	g.Step()
	if g.Snake.Len() != 2 {
		t.Errorf("len = %d, want 2", g.Snake.Len())
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	a := NewGame(smallSettings(), time.Now())
	b := NewGame(smallSettings(), time.Now())

	if a.UUID == b.UUID {
		t.Error("sessions share an id")
	}
	a.Step()
	if b.Snake.GetHead().Position != (types.Point{}) {
		t.Error("stepping one game moved the other")
	}
}
