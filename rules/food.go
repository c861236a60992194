package rules

import "math/rand"

const (
	// DefaultMaxAttempts bounds the rejection sampling loop before the
	// spawner falls back to enumerating free cells.
	DefaultMaxAttempts = 64
	// DefaultDenseThreshold is the share of occupied cells above which the
	// spawner skips rejection sampling entirely.
	DefaultDenseThreshold = 0.7
)

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// FoodSpawner picks cells for food that the snake does not occupy.
type FoodSpawner struct {
	Rand           Rand
	MaxAttempts    int
	DenseThreshold float64
}

// NewFoodSpawner returns a spawner with the default limits. A nil r uses
// the math/rand package source.
func NewFoodSpawner(r Rand) *FoodSpawner {
	if r == nil {
		r = globalRand{}
	}
	return &FoodSpawner{
		Rand:           r,
		MaxAttempts:    DefaultMaxAttempts,
		DenseThreshold: DefaultDenseThreshold,
	}
}

// Spawn returns a free cell for food. It only fails when the snake covers
// the whole board.
func (f *FoodSpawner) Spawn(grid Grid, snake *Snake) (Point, bool) {
	occupied := float64(snake.Len()) / float64(grid.Cells())
	if occupied <= f.DenseThreshold {
		for i := 0; i < f.MaxAttempts; i++ {
			p := grid.RandomPoint(f.Rand)
			if !snake.Occupies(p) {
				return p, true
			}
		}
	}
	return f.spawnFromFree(grid, snake)
}

func (f *FoodSpawner) spawnFromFree(grid Grid, snake *Snake) (Point, bool) {
	free := unoccupiedPoints(grid, snake)
	if len(free) == 0 {
		return Point{}, false
	}
	return free[f.Rand.Intn(len(free))], true
}

func unoccupiedPoints(grid Grid, snake *Snake) []Point {
	taken := make(map[Point]bool, snake.Len())
	for _, b := range snake.Body {
		taken[b] = true
	}

	n := grid.Cells() - len(taken)
	if n < 0 {
		n = 0
	}
	candidates := make([]Point, 0, n)
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			p := Point{X: x, Y: y}
			if !taken[p] {
				candidates = append(candidates, p)
			}
		}
	}
	return candidates
}
