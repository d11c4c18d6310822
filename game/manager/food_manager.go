package manager

import (
	"circle-snake/game/entity"
	"circle-snake/game/types"

	"golang.org/x/exp/rand"
)

// maxSpawnAttempts bounds the random retries before falling back to an
// exhaustive scan of free cells.
const maxSpawnAttempts = 64

type FoodManager struct {
	food types.Point
	xs   []int
	ys   []int
	rng  *rand.Rand
}

func NewFoodManager(cfg types.Config, rng *rand.Rand) *FoodManager {
	margin := cfg.BorderWidth + cfg.Radius
	return &FoodManager{
		food: cfg.FoodStart,
		xs:   alignedBetween(margin, cfg.WindowWidth-margin, cfg.Step),
		ys:   alignedBetween(margin, cfg.WindowHeight-margin, cfg.Step),
		rng:  rng,
	}
}

// alignedBetween returns every multiple of step strictly between lo and hi.
func alignedBetween(lo, hi, step int) []int {
	var out []int
	for v := (lo/step + 1) * step; v < hi; v += step {
		out = append(out, v)
	}
	return out
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

// Respawn moves the food to a random aligned cell not covered by the
// snake. It reports false, leaving the food in place, when no cell is free.
func (fm *FoodManager) Respawn(snake *entity.Snake) bool {
	food, ok := fm.GenerateFood(snake)
	if ok {
		fm.food = food
	}
	return ok
}

func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, bool) {
	if len(fm.xs) == 0 || len(fm.ys) == 0 {
		return types.Point{}, false
	}

	for i := 0; i < maxSpawnAttempts; i++ {
		food := types.Point{
			X: fm.xs[fm.rng.Intn(len(fm.xs))],
			Y: fm.ys[fm.rng.Intn(len(fm.ys))],
		}
		if !snake.Occupies(food) {
			return food, true
		}
	}

	free := make([]types.Point, 0, len(fm.xs)*len(fm.ys))
	for _, x := range fm.xs {
		for _, y := range fm.ys {
			p := types.Point{X: x, Y: y}
			if !snake.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}
