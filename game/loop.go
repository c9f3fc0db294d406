package game

import (
	"time"

	"github.com/rs/zerolog"

	"tile-snake/game/input"
	"tile-snake/game/types"
)

// State of the loop
type State int

const (
	NotStarted State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "not started"
	}
}

// LoopOptions wires a loop to its host
type LoopOptions struct {
	Clock     Clock
	Scheduler Scheduler
	Surface   types.Surface
	Logger    *zerolog.Logger
}

// Loop drives a Game: fixed rate logic, a render pass after each tick and
// fruit spawning on its own timer. The host calls Frame through the
// scheduler, the loop re-arms itself after every frame.
type Loop struct {
	game      *Game
	state     State
	clock     Clock
	scheduler Scheduler
	surface   types.Surface
	mapper    *input.Mapper
	log       zerolog.Logger
	lastTick  time.Time
	ticks     int
}

func NewLoop(settings Settings, opts LoopOptions) *Loop {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Scheduler == nil {
		opts.Scheduler = NewFrameQueue()
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	g := NewGame(settings, opts.Clock.Now())
	return &Loop{
		game:      g,
		clock:     opts.Clock,
		scheduler: opts.Scheduler,
		surface:   opts.Surface,
		mapper:    input.NewMapper(),
		log:       logger.With().Str("session", g.UUID).Logger(),
	}
}

// Start begins play and arms the first frame. Calling it twice is a no-op.
func (l *Loop) Start() {
	if l.state != NotStarted {
		return
	}
	now := l.clock.Now()
	l.state = Running
	l.lastTick = now
	l.game.Fruits.Reset(now)
	l.log.Info().
		Int("width", l.game.Grid.Width).
		Int("height", l.game.Grid.Height).
		Int("tile", l.game.TileSize).
		Msg("game started")
	l.scheduler.Schedule(l.Frame)
}

func (l *Loop) Pause() {
	if l.state != Running {
		return
	}
	l.state = Paused
	l.log.Info().Msg("paused")
}

// Resume continues a paused game. The tick timer starts over so a long
// pause does not fire a tick the moment play resumes.
func (l *Loop) Resume() {
	if l.state != Paused {
		return
	}
	l.state = Running
	l.lastTick = l.clock.Now()
	l.log.Info().Msg("resumed")
}

// Toggle is the play/pause button
func (l *Loop) Toggle() {
	switch l.state {
	case NotStarted:
		l.Start()
	case Running:
		l.Pause()
	case Paused:
		l.Resume()
	}
}

// Frame is the per-frame callback
func (l *Loop) Frame() {
	defer l.scheduler.Schedule(l.Frame)

	if !l.Running() {
		return
	}

	now := l.clock.Now()
	if now.Sub(l.lastTick) >= l.game.settings.TickInterval {
		l.tick(now)
		l.lastTick = now
	}

	if l.game.Fruits.Update(now) {
		l.log.Debug().Interface("fruit", l.game.Fruits.GetFruitList()[0].Position).Msg("fruit spawned")
	}
}

func (l *Loop) tick(now time.Time) {
	l.ticks++
	report := l.game.Step()

	if report.SelfCollision {
		l.log.Info().
			Int("round", l.game.Rounds).
			Int("length", l.game.Snake.Len()).
			Dur("lasted", now.Sub(l.game.RoundStarted)).
			Msg("snake bit itself, new round")
		l.Reset()
	} else if report.FruitsEaten > 0 {
		l.log.Debug().
			Int("eaten", report.FruitsEaten).
			Interface("at", report.Head).
			Msg("fruit eaten")
	}

	if l.surface != nil {
		l.game.Render(l.surface)
	}
}

// Reset starts a new round without touching the run state
func (l *Loop) Reset() {
	l.game.Reset(l.clock.Now())
}

// Direction is the input entry point. Presses while not running are dropped.
func (l *Loop) Direction(d types.Direction) bool {
	if !l.Running() {
		return false
	}
	return l.mapper.Steer(l.game.Snake, d)
}

func (l *Loop) State() State {
	return l.state
}

// Running reports whether ticks are being played
func (l *Loop) Running() bool {
	return l.state == Running
}

func (l *Loop) Game() *Game {
	return l.game
}

// Ticks counts logic updates since the loop was created
func (l *Loop) Ticks() int {
	return l.ticks
}
