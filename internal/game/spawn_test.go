package game

import (
	"math/rand"
	"testing"

	"github.com/CuriAlexity/snake-arcade/internal/core"
)

func TestFreeCellsRespectsMarginAndExclusions(t *testing.T) {
	excluded := map[core.Cell]bool{
		{X: 1, Y: 1}: true,
		{X: 2, Y: 2}: true,
	}

	cells := freeCells(5, 4, 1, excluded)

	// 5x4 grid with margin 1 leaves a 3x2 interior, minus 2 exclusions
	if len(cells) != 4 {
		t.Fatalf("Expected 4 free cells, got %d", len(cells))
	}

	for _, c := range cells {
		if c.X < 1 || c.X >= 4 || c.Y < 1 || c.Y >= 3 {
			t.Errorf("Cell (%d, %d) outside margin-adjusted bounds", c.X, c.Y)
		}
		if excluded[c] {
			t.Errorf("Excluded cell (%d, %d) returned as free", c.X, c.Y)
		}
	}
}

func TestRandomFreeCellDeterminism(t *testing.T) {
	excluded := map[core.Cell]bool{{X: 3, Y: 3}: true}

	c1, ok1 := RandomFreeCell(rand.New(rand.NewSource(7)), 30, 20, 1, excluded)
	c2, ok2 := RandomFreeCell(rand.New(rand.NewSource(7)), 30, 20, 1, excluded)

	if !ok1 || !ok2 {
		t.Fatal("Expected a free cell on a mostly empty grid")
	}
	if c1 != c2 {
		t.Errorf("Same seed produced different cells: (%d,%d) vs (%d,%d)", c1.X, c1.Y, c2.X, c2.Y)
	}
}

func TestRandomFreeCellBoardFull(t *testing.T) {
	// 3x3 grid with margin 1 has exactly one interior cell
	excluded := map[core.Cell]bool{{X: 1, Y: 1}: true}

	c, ok := RandomFreeCell(rand.New(rand.NewSource(1)), 3, 3, 1, excluded)
	if ok {
		t.Errorf("Expected no free cell, got (%d, %d)", c.X, c.Y)
	}
	if c != core.CellNone {
		t.Errorf("Expected CellNone sentinel, got (%d, %d)", c.X, c.Y)
	}
}

func TestRandomObstacleSetSize(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	set := RandomObstacleSet(rng, 30, 20, 1, 3, nil)
	if len(set) != 3 {
		t.Errorf("Expected 3 obstacles, got %d", len(set))
	}
}

func TestRandomObstacleSetClampedToCandidates(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	// 4x4 grid with margin 1 has a 2x2 interior: only 4 candidates
	set := RandomObstacleSet(rng, 4, 4, 1, 10, nil)
	if len(set) != 4 {
		t.Errorf("Expected obstacle count clamped to 4, got %d", len(set))
	}
}

func TestRandomObstacleSetAvoidsExclusions(t *testing.T) {
	excluded := map[core.Cell]bool{
		{X: 5, Y: 5}: true,
		{X: 6, Y: 5}: true,
		{X: 7, Y: 5}: true,
	}

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		set := RandomObstacleSet(rng, 30, 20, 1, 3, excluded)
		for c := range set {
			if excluded[c] {
				t.Errorf("Seed %d: obstacle on excluded cell (%d, %d)", seed, c.X, c.Y)
			}
			if c.X < 1 || c.X >= 29 || c.Y < 1 || c.Y >= 19 {
				t.Errorf("Seed %d: obstacle (%d, %d) outside margin-adjusted bounds", seed, c.X, c.Y)
			}
		}
	}
}
