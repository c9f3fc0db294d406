package game

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"tile-snake/game/entity"
	"tile-snake/game/manager"
	"tile-snake/game/types"
)

// Settings fixes the playfield and pacing of one session
type Settings struct {
	Grid             types.Grid
	TileSize         int
	TickInterval     time.Duration
	MaxFruitInterval time.Duration
	Growth           entity.GrowthPolicy
	Seed             uint64
}

// DefaultSettings is a 400x400 field of 20px tiles
func DefaultSettings() Settings {
	return Settings{
		Grid:             types.Grid{Width: 400, Height: 400},
		TileSize:         types.TileSize,
		TickInterval:     types.TickInterval,
		MaxFruitInterval: types.MaxFruitInterval,
		Growth:           entity.GrowthCoalesce,
	}
}

// Game holds the state of one session
type Game struct {
	UUID         string
	Grid         types.Grid
	TileSize     int
	Snake        *entity.Snake
	Fruits       *manager.FruitManager
	Collisions   *manager.CollisionManager
	Rounds       int
	RoundStarted time.Time
	settings     Settings
}

func NewGame(settings Settings, now time.Time) *Game {
	seed := settings.Seed
	if seed == 0 {
		seed = uint64(now.UnixNano())
	}
	fruits := manager.NewFruitManager(settings.Grid, settings.TileSize, settings.MaxFruitInterval,
		rand.New(rand.NewSource(seed)))

	g := &Game{
		UUID:       uuid.New().String(),
		Grid:       settings.Grid,
		TileSize:   settings.TileSize,
		Fruits:     fruits,
		Collisions: manager.NewCollisionManager(fruits),
		settings:   settings,
	}
	g.Reset(now)
	return g
}

// Reset starts a new round in place
func (g *Game) Reset(now time.Time) {
	g.Snake = entity.NewSnake(g.Grid, g.TileSize)
	g.Snake.Growth = g.settings.Growth
	g.Fruits.Reset(now)
	g.Rounds++
	g.RoundStarted = now
}

// Step moves the snake once and resolves what it ran into
func (g *Game) Step() manager.CollisionReport {
	g.Snake.Advance()
	return g.Collisions.Check(g.Snake)
}

// Render clears the field and paints the snake, then the fruit
func (g *Game) Render(s types.Surface) {
	s.Clear(g.Grid.Bounds())
	g.Snake.Render(s)
	g.Fruits.Render(s)
}

func (g *Game) Settings() Settings {
	return g.settings
}
