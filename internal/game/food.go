package game

import (
	"golang.org/x/exp/rand"
)

// Occupancy is the view of the board the food spawner needs.
type Occupancy interface {
	Occupies(p Position) bool
	OccupiedCells() int
}

// FoodSpawner places food on uniformly random free cells.
type FoodSpawner struct {
	rng         *rand.Rand
	cols, rows  int
	cellSize    int
	maxAttempts int
}

func NewFoodSpawner(cfg Config, seed uint64) *FoodSpawner {
	return &FoodSpawner{
		rng:         rand.New(rand.NewSource(splitmix64(seed ^ 0xF00D))),
		cols:        cfg.Cols(),
		rows:        cfg.Rows(),
		cellSize:    cfg.CellSize,
		maxAttempts: cfg.MaxSpawnAttempts(),
	}
}

// Spawn picks a random cell not covered by occ. It resamples until a free
// cell turns up; after maxAttempts misses it draws uniformly from the
// enumerated free cells instead, which has the same distribution. Returns
// false only when every cell is occupied.
func (f *FoodSpawner) Spawn(occ Occupancy) (Position, bool) {
	total := f.cols * f.rows
	if occ.OccupiedCells() >= total {
		return Position{}, false
	}
	for i := 0; i < f.maxAttempts; i++ {
		p := f.cellAt(f.rng.Intn(total))
		if !occ.Occupies(p) {
			return p, true
		}
	}

	free := total - occ.OccupiedCells()
	n := f.rng.Intn(free)
	for i := 0; i < total; i++ {
		p := f.cellAt(i)
		if occ.Occupies(p) {
			continue
		}
		if n == 0 {
			return p, true
		}
		n--
	}
	return Position{}, false
}

func (f *FoodSpawner) cellAt(i int) Position {
	return Position{X: (i % f.cols) * f.cellSize, Y: (i / f.cols) * f.cellSize}
}
