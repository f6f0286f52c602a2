package game

import (
	"math/rand"

	"github.com/CuriAlexity/snake-arcade/internal/core"
)

// freeCells enumerates every cell inside the margin-adjusted bounding box
// that is not excluded, in row-major order. The deterministic candidate
// order makes the random draws reproducible under a seeded source.
func freeCells(width, height, margin int, excluded map[core.Cell]bool) []core.Cell {
	var candidates []core.Cell
	for y := margin; y < height-margin; y++ {
		for x := margin; x < width-margin; x++ {
			c := core.Cell{X: x, Y: y}
			if !excluded[c] {
				candidates = append(candidates, c)
			}
		}
	}
	return candidates
}

// RandomFreeCell returns a uniformly random free cell within the
// margin-adjusted bounds, or false when no free cell remains (the board-full
// win condition).
func RandomFreeCell(rng *rand.Rand, width, height, margin int, excluded map[core.Cell]bool) (core.Cell, bool) {
	candidates := freeCells(width, height, margin, excluded)
	if len(candidates) == 0 {
		return core.CellNone, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// RandomObstacleSet returns a uniformly random subset of free cells of size
// min(count, free cells available), drawn without replacement.
func RandomObstacleSet(rng *rand.Rand, width, height, margin, count int, excluded map[core.Cell]bool) map[core.Cell]bool {
	candidates := freeCells(width, height, margin, excluded)
	k := core.Min(count, len(candidates))

	set := make(map[core.Cell]bool, k)
	// Partial Fisher-Yates: the first k slots end up a uniform sample.
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		set[candidates[i]] = true
	}
	return set
}
