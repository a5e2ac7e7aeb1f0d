package manager

import (
	"log"
	"math"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

const (
	// SeparationFactor scales the item size into the minimum distance
	// kept between any two food items.
	SeparationFactor = 4

	maxPlacementAttempts = 10000
)

// Source yields uniform samples in [0, 1).
type Source interface {
	Float64() float64
}

type FoodManager struct {
	foods []entity.Food
	rng   Source
	cols  int
	rows  int
}

// lattice returns the number of whole cells of the given size across and
// down the screen, never less than one.
func lattice(screen types.Size, size float32) (cols, rows int) {
	cell := max(int(size), 1)
	return max(screen.Width/cell, 1), max(screen.Height/cell, 1)
}

// Capacity is the largest item count for which every placement is
// guaranteed a free cell: each placed item rules out at most the cells
// within SeparationFactor cells of it.
func Capacity(screen types.Size, size float32) int {
	cols, rows := lattice(screen, size)
	blocked := 0
	for i := -SeparationFactor; i <= SeparationFactor; i++ {
		for j := -SeparationFactor; j <= SeparationFactor; j++ {
			if i*i+j*j <= SeparationFactor*SeparationFactor {
				blocked++
			}
		}
	}
	return (cols*rows-1)/blocked + 1
}

// NewFoodManager places count items of the given size on a lattice with
// cell size equal to size. A board smaller than one cell still has one.
func NewFoodManager(screen types.Size, size float32, count int, rng Source) *FoodManager {
	cols, rows := lattice(screen, size)
	fm := &FoodManager{
		foods: make([]entity.Food, 0, count),
		rng:   rng,
		cols:  cols,
		rows:  rows,
	}
	// items not placed yet do not take part in the separation check
	for i := 0; i < count; i++ {
		fm.foods = append(fm.foods, entity.Food{Size: size})
		fm.place(i, size)
	}
	return fm
}

// place draws lattice cells until the candidate lies farther than
// SeparationFactor×size from every other item. After maxPlacementAttempts
// the best candidate seen is kept.
func (fm *FoodManager) place(i int, size float32) {
	threshold := size * SeparationFactor
	var best types.Vector2
	bestDist := float32(-1)

	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		candidate := types.Vector2{
			X: size * float32(int(fm.rng.Float64()*float64(fm.cols))),
			Y: size * float32(int(fm.rng.Float64()*float64(fm.rows))),
		}
		d := fm.nearest(i, candidate)
		if d > threshold {
			fm.foods[i].Position = candidate
			return
		}
		if d > bestDist {
			best, bestDist = candidate, d
		}
	}

	log.Printf("food: no cell farther than %.0f after %d attempts, using %v (%.0f away)",
		threshold, maxPlacementAttempts, best, bestDist)
	fm.foods[i].Position = best
}

// nearest returns the distance from pos to the closest item other than i.
func (fm *FoodManager) nearest(i int, pos types.Vector2) float32 {
	nearest := float32(math.MaxFloat32)
	for j, f := range fm.foods {
		if j == i {
			continue
		}
		if d := f.Position.Sub(pos).Length(); d < nearest {
			nearest = d
		}
	}
	return nearest
}

// IsEaten moves the first item touched by the snake's head and reports
// whether there was one. Respawn uses the snake's scale.
func (fm *FoodManager) IsEaten(snake *entity.Snake) bool {
	for i, f := range fm.foods {
		if snake.IsCollidedWith(f.Bounds()) {
			fm.place(i, snake.Size())
			return true
		}
	}
	return false
}

// Foods returns a copy of the current items.
func (fm *FoodManager) Foods() []entity.Food {
	foods := make([]entity.Food, len(fm.foods))
	copy(foods, fm.foods)
	return foods
}

func (fm *FoodManager) Len() int {
	return len(fm.foods)
}

func (fm *FoodManager) Draw(sink types.Sink) {
	for _, f := range fm.foods {
		f.Draw(sink)
	}
}
