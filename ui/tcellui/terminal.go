// Package tcellui runs the game in a terminal. One tile is one row by two
// columns so tiles stay roughly square.
package tcellui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"tile-snake/game"
	"tile-snake/game/input"
	"tile-snake/game/types"
	"tile-snake/ui"
)

const cellWidth = 2

// KeyMap binds the arrow keys
var KeyMap = input.KeyMap[tcell.Key]{
	tcell.KeyUp:    types.Up,
	tcell.KeyDown:  types.Down,
	tcell.KeyLeft:  types.Left,
	tcell.KeyRight: types.Right,
}

// RuneMap binds WASD and hjkl
var RuneMap = input.KeyMap[rune]{
	'w': types.Up, 'k': types.Up,
	's': types.Down, 'j': types.Down,
	'a': types.Left, 'h': types.Left,
	'd': types.Right, 'l': types.Right,
}

type Options struct {
	FPS     int
	Palette types.Palette
	Logger  *zerolog.Logger
	Clock   game.Clock
}

// Terminal owns the screen and the loop playing on it
type Terminal struct {
	screen   tcell.Screen
	loop     *game.Loop
	list     *ui.DisplayList
	timer    *game.TimerScheduler
	grid     types.Grid
	tileSize int
	palette  types.Palette
}

// Run plays on the process terminal until q, Esc or Ctrl-C
func Run(ctx context.Context, settings game.Settings, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	return NewTerminal(screen, settings, opts).Run(ctx)
}

// NewTerminal wires a loop to an initialized screen
func NewTerminal(screen tcell.Screen, settings game.Settings, opts Options) *Terminal {
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}

	t := &Terminal{
		screen:   screen,
		list:     ui.NewDisplayList(),
		timer:    game.NewTimerScheduler(time.Second / time.Duration(fps)),
		grid:     settings.Grid,
		tileSize: settings.TileSize,
		palette:  opts.Palette,
	}
	t.loop = game.NewLoop(settings, game.LoopOptions{
		Clock:     opts.Clock,
		Scheduler: t.timer,
		Surface:   t.list,
		Logger:    opts.Logger,
	})
	screen.HideCursor()
	return t
}

func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go t.screen.ChannelEvents(events, quit)
	defer close(quit)
	defer t.timer.Stop()

	t.loop.Start()
	t.Paint()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || !t.HandleEvent(ev) {
				return nil
			}
		case fn := <-t.timer.Ready():
			v := t.list.Version()
			fn()
			if t.list.Version() != v {
				t.Paint()
			}
		}
	}
}

// HandleEvent applies one terminal event, false means quit
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
		t.Paint()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch r := ev.Rune(); r {
			case 'q':
				return false
			case ' ', 'p':
				t.loop.Toggle()
				t.Paint()
			default:
				if dir, ok := RuneMap.Lookup(r); ok {
					t.loop.Direction(dir)
				}
			}
		default:
			if dir, ok := KeyMap.Lookup(ev.Key()); ok {
				t.loop.Direction(dir)
			}
		}
	}
	return true
}

// Paint copies the display list to the screen
func (t *Terminal) Paint() {
	t.screen.Clear()

	cols, rows := t.grid.Cols(t.tileSize), t.grid.Rows(t.tileSize)
	bg := t.style(types.ColorBackground)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols*cellWidth; col++ {
			t.screen.SetContent(col, row, ' ', nil, bg)
		}
	}

	t.list.Replay(func(f ui.Fill) {
		style := t.style(f.Color)
		col, row := f.Rect.X/t.tileSize, f.Rect.Y/t.tileSize
		w, h := max(f.Rect.W/t.tileSize, 1), max(f.Rect.H/t.tileSize, 1)
		for y := row; y < row+h; y++ {
			for x := col * cellWidth; x < (col+w)*cellWidth; x++ {
				t.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	})

	t.drawStatus(rows)
	t.screen.Show()
}

func (t *Terminal) drawStatus(row int) {
	var text string
	switch t.loop.State() {
	case game.NotStarted:
		text = "space to start, q to quit"
	case game.Paused:
		text = "PAUSED - space to play, q to quit"
	default:
		return
	}
	style := tcell.StyleDefault.Foreground(t.color(types.ColorText))
	for i, r := range text {
		t.screen.SetContent(i, row, r, nil, style)
	}
}

func (t *Terminal) style(c types.Color) tcell.Style {
	return tcell.StyleDefault.Background(t.color(c))
}

func (t *Terminal) color(c types.Color) tcell.Color {
	rgb := t.palette.Lookup(c)
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

func (t *Terminal) Loop() *game.Loop {
	return t.loop
}
