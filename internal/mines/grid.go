package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

// Mine is the value of a cell holding a mine; 0-8 for the number of mined
// neighbours otherwise.
const Mine = -1

const (
	HiddenMarker = "[ ]"
	FlagMarker   = "[|>]"
	MineMarker   = "[X]"
	// used by the export format, which must stay one token per cell
	ExportMineMarker = "X"
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "!"
	}
}

type Cell struct {
	Value int
	State CellState
}

func (c Cell) IsMine() bool {
	return c.Value == Mine
}

// String renders the cell as the player sees it.
func (c Cell) String() string {
	switch c.State {
	case Flagged:
		return FlagMarker
	case Revealed:
		return c.valueString()
	default:
		return HiddenMarker
	}
}

func (c Cell) valueString() string {
	if c.IsMine() {
		return MineMarker
	}
	return strconv.Itoa(c.Value)
}

type Point struct {
	Row, Col int
}

// Point implements [fmt.Stringer]
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

func (e *Engine) render(cellString func(Cell) string) string {
	var b strings.Builder
	row := make([]string, e.size)
	for r := range e.size {
		for c := range e.size {
			row[c] = cellString(e.cells[r*e.size+c])
		}
		fmt.Fprint(&b, strings.Join(row, "\t"), "\n")
	}
	return b.String()
}

// RenderGrid returns the board as the player currently sees it, one row per
// line and tab separated cells.
func (e *Engine) RenderGrid() string {
	return e.render(Cell.String)
}

// RenderFullyRevealed returns the solution: every value shown, mines marked.
func (e *Engine) RenderFullyRevealed() string {
	return e.render(Cell.valueString)
}

func (e *Engine) Stats() string {
	return fmt.Sprintf(
		"Lives remaining: %d\tTurns taken: %d\tFlagged places: %d\tNumber of Mines: %d",
		e.lives, e.turns, e.flags, e.mineCount,
	)
}
