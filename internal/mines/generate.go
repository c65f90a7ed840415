package mines

import (
	"fmt"
	"math/rand/v2"
)

// Placer picks the mine positions for a size×size board. It must never
// return safe, a duplicate, or a point outside the board.
type Placer func(size, count int, safe Point, r *rand.Rand) []Point

// RandomPlacer draws uniformly random cells, drawing again whenever the
// cell is the safe one or already holds a mine.
func RandomPlacer(size, count int, safe Point, r *rand.Rand) []Point {
	taken := make([]bool, size*size)
	points := make([]Point, 0, count)
	for range count {
		p := Point{r.IntN(size), r.IntN(size)}
		for taken[p.Row*size+p.Col] || p == safe {
			p = Point{r.IntN(size), r.IntN(size)}
		}
		taken[p.Row*size+p.Col] = true
		points = append(points, p)
	}
	return points
}

// FixedPlacer places mines exactly at points, whatever the requested count.
// The board's mine count becomes len(points).
func FixedPlacer(points ...Point) Placer {
	return func(int, int, Point, *rand.Rand) []Point {
		return points
	}
}

// panics [AssertionError]
func (e *Engine) generateBombs(safe Point) {
	// the safe cell must stay free, so a board can hold at most size²-1 mines
	count := min(e.mineCount, len(e.cells)-1)

	placed := 0
	for _, p := range e.placer(e.size, count, safe, e.rnd) {
		if !inBounds(e.size, p) {
			panic(AssertionError{fmt.Sprintf("mine %s outside the board", p)})
		}
		if p == safe {
			panic(AssertionError{"mine in starting cell"})
		}
		c := e.cell(p)
		if c.IsMine() {
			panic(AssertionError{fmt.Sprintf("mine %s placed twice", p)})
		}
		c.Value = Mine
		placed++
	}
	e.mineCount = placed
}

func (e *Engine) generateHints() {
	for r := range e.size {
		for c := range e.size {
			p := Point{r, c}
			if e.cell(p).IsMine() {
				continue
			}
			v := 0
			for q := range neighbours(e.size, p) {
				if e.cell(q).IsMine() {
					v++
				}
			}
			e.cell(p).Value = v
		}
	}
}
