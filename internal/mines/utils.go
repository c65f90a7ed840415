package mines

import "iter"

// neighbours yields the up to 8 cells around p that lie inside a size×size grid.
func neighbours(size int, p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				q := Point{p.Row + dr, p.Col + dc}
				if !inBounds(size, q) {
					continue
				}
				if !yield(q) {
					return
				}
			}
		}
	}
}

func inBounds(size int, p Point) bool {
	return 0 <= p.Row && p.Row < size && 0 <= p.Col && p.Col < size
}
