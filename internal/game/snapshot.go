package game

import (
	"sort"

	"github.com/CuriAlexity/snake-arcade/internal/core"
)

// Snapshot is a read-only copy of the simulation state for the presentation
// layer and for replay/determinism tests. Cell slices are freshly allocated;
// mutating them does not touch the game.
type Snapshot struct {
	Tick        uint64
	Phase       Phase
	Score       int
	Speed       int
	Dir         core.Direction
	Snake       []core.Cell // Head first
	Food        core.Cell   // CellNone when absent
	FoodPresent bool
	Obstacles   []core.Cell // Sorted row-major
	Reason      string      // Death reason, "" unless game over
}

// Head returns the snake's head cell, or CellNone for an empty snake.
func (s Snapshot) Head() core.Cell {
	if len(s.Snake) == 0 {
		return core.CellNone
	}
	return s.Snake[0]
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	snake := make([]core.Cell, len(g.snake))
	copy(snake, g.snake)

	obstacles := make([]core.Cell, 0, len(g.obstacles))
	for c := range g.obstacles {
		obstacles = append(obstacles, c)
	}
	sort.Slice(obstacles, func(i, j int) bool {
		if obstacles[i].Y != obstacles[j].Y {
			return obstacles[i].Y < obstacles[j].Y
		}
		return obstacles[i].X < obstacles[j].X
	})

	return Snapshot{
		Tick:        g.tick,
		Phase:       g.phase,
		Score:       g.score,
		Speed:       g.speed,
		Dir:         g.direction,
		Snake:       snake,
		Food:        g.food,
		FoodPresent: g.food != core.CellNone,
		Obstacles:   obstacles,
		Reason:      g.deathReason,
	}
}
