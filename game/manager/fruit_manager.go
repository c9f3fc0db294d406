package manager

import (
	"time"

	"golang.org/x/exp/rand"

	"tile-snake/game/entity"
	"tile-snake/game/types"
)

// Grower is told to grow once per eaten fruit
type Grower interface {
	RequestGrowth()
}

// FruitManager owns the fruit on the field and the spawn timer
type FruitManager struct {
	grid        types.Grid
	tileSize    int
	fruitList   []*entity.Tile
	rng         *rand.Rand
	maxInterval time.Duration
	interval    time.Duration
	lastSpawn   time.Time
}

func NewFruitManager(grid types.Grid, tileSize int, maxInterval time.Duration, rng *rand.Rand) *FruitManager {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &FruitManager{
		grid:        grid,
		tileSize:    tileSize,
		fruitList:   make([]*entity.Tile, 0, 1),
		rng:         rng,
		maxInterval: maxInterval,
	}
}

// Reset drops every fruit and restarts the spawn timer at now
func (fm *FruitManager) Reset(now time.Time) {
	fm.fruitList = fm.fruitList[:0]
	fm.lastSpawn = now
	fm.interval = fm.rollInterval()
}

// Update spawns a fruit once the field is empty and the current interval
// has run out, then rolls the next interval. Reports whether it spawned.
func (fm *FruitManager) Update(now time.Time) bool {
	if len(fm.fruitList) > 0 || now.Sub(fm.lastSpawn) < fm.interval {
		return false
	}

	fm.Spawn()
	fm.lastSpawn = now
	fm.interval = fm.rollInterval()
	return true
}

// Spawn places a fruit on a random grid aligned cell. The snake may be
// there already, the next consumption check takes care of that.
func (fm *FruitManager) Spawn() *entity.Tile {
	return fm.Place(types.Point{
		X: fm.rng.Intn(fm.grid.Cols(fm.tileSize)) * fm.tileSize,
		Y: fm.rng.Intn(fm.grid.Rows(fm.tileSize)) * fm.tileSize,
	})
}

// Place puts a fruit at p, which is expected to be grid aligned
func (fm *FruitManager) Place(p types.Point) *entity.Tile {
	fruit := entity.NewTile(fm.tileSize, types.ColorFruit)
	fruit.SetPosition(p)
	fm.fruitList = append(fm.fruitList, fruit)
	return fruit
}

// CheckConsumption removes every fruit at head and asks g to grow for
// each of them. Returns how many were eaten.
func (fm *FruitManager) CheckConsumption(head types.Point, g Grower) int {
	eaten := 0
	kept := fm.fruitList[:0]
	for _, fruit := range fm.fruitList {
		if fruit.Position == head {
			eaten++
			g.RequestGrowth()
			continue
		}
		kept = append(kept, fruit)
	}
	for i := len(kept); i < len(fm.fruitList); i++ {
		fm.fruitList[i] = nil
	}
	fm.fruitList = kept
	return eaten
}

// Render draws every fruit
func (fm *FruitManager) Render(s types.Surface) {
	for _, fruit := range fm.fruitList {
		fruit.Render(s)
	}
}

func (fm *FruitManager) GetFruitList() []*entity.Tile {
	return fm.fruitList
}

func (fm *FruitManager) Len() int {
	return len(fm.fruitList)
}

func (fm *FruitManager) Empty() bool {
	return len(fm.fruitList) == 0
}

// Interval is the wait before the next spawn
func (fm *FruitManager) Interval() time.Duration {
	return fm.interval
}

func (fm *FruitManager) rollInterval() time.Duration {
	if fm.maxInterval <= 0 {
		return 0
	}
	return time.Duration(fm.rng.Int63n(int64(fm.maxInterval)))
}
