package mines

import (
	"errors"
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

const (
	defaultLives = 3
	// mines take up 15% of the board, rounded up
	minePercent = 15
)

// Engine owns one square minesweeper board and its counters for the length
// of a single game. Coordinates are 0-indexed and assumed to be in range.
type Engine struct {
	size      int
	cells     []Cell
	mineCount int
	lives     int
	turns     int
	flags     int
	generated bool

	rnd    *rand.Rand
	placer Placer
}

type Option func(*Engine)

func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.rnd = r
	}
}

func WithPlacer(p Placer) Option {
	return func(e *Engine) {
		e.placer = p
	}
}

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// MineCountFor returns ceil(0.15 * size²).
func MineCountFor(size int) int {
	return (minePercent*size*size + 99) / 100
}

func livesFor(mineCount int) int {
	if mineCount < 4 {
		return max(1, mineCount-1)
	}
	return defaultLives
}

// New allocates a size×size board of hidden zero cells. Mines are not placed
// until [Engine.GenerateMap] is called.
func New(size int, opts ...Option) (*Engine, error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}
	mineCount := MineCountFor(size)
	e := &Engine{
		size:      size,
		cells:     make([]Cell, size*size),
		mineCount: mineCount,
		lives:     livesFor(mineCount),
		placer:    RandomPlacer,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rnd == nil {
		e.rnd = NewRand()
	}
	return e, nil
}

func (e *Engine) cell(p Point) *Cell {
	return &e.cells[p.Row*e.size+p.Col]
}

// GenerateMap places the mines, keeping (row, col) free, and computes the
// hints. It may only be called once per board.
func (e *Engine) GenerateMap(row, col int) (err error) {
	if e.generated {
		return ErrMapGenerated
	}

	defer func() {
		var ae AssertionError
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok && errors.As(rerr, &ae) {
				for i := range e.cells {
					e.cells[i].Value = 0
				}
				err = ae
				return
			}
			panic(r)
		}
	}()

	safe := Point{row, col}
	e.generateBombs(safe)
	e.generateHints()
	e.generated = true

	Log.WithFields(logrus.Fields{
		"size":  e.size,
		"mines": e.mineCount,
		"safe":  safe.String(),
	}).Debug("map generated")

	return nil
}

// Reveal opens the cell at (row, col) and returns its value along with the
// number of cells that became revealed. Opening a zero cell cascades over
// its neighbours; revealed cells are never visited twice.
func (e *Engine) Reveal(row, col int) (value int, revealed int) {
	start := Point{row, col}
	c := e.cell(start)
	if c.State == Revealed {
		return c.Value, 0
	}

	revealed = e.open(start)
	todo := []Point{start}
	for len(todo) > 0 {
		p := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if e.cell(p).Value != 0 {
			continue
		}
		for q := range neighbours(e.size, p) {
			if e.cell(q).State != Revealed {
				revealed += e.open(q)
				todo = append(todo, q)
			}
		}
	}

	return c.Value, revealed
}

func (e *Engine) open(p Point) int {
	c := e.cell(p)
	if c.State == Flagged {
		e.flags--
	}
	c.State = Revealed
	return 1
}

// Flag toggles the flag on a hidden cell. It returns false, changing
// nothing, when the cell is already revealed.
func (e *Engine) Flag(row, col int) bool {
	c := e.cell(Point{row, col})
	switch c.State {
	case Revealed:
		return false
	case Flagged:
		c.State = Hidden
		e.flags--
	default:
		c.State = Flagged
		e.flags++
	}
	return true
}

func (e *Engine) TakeTurn() {
	e.turns++
}

// LoseLife takes one life away. It returns false when there was none left.
func (e *Engine) LoseLife() bool {
	if e.lives == 0 {
		return false
	}
	e.lives--
	return true
}

func (e *Engine) IsHidden(row, col int) bool {
	return e.cell(Point{row, col}).State == Hidden
}

func (e *Engine) IsFlagged(row, col int) bool {
	return e.cell(Point{row, col}).State == Flagged
}

func (e *Engine) IsRevealed(row, col int) bool {
	return e.cell(Point{row, col}).State == Revealed
}

// Cell returns a copy of the cell at (row, col).
func (e *Engine) Cell(row, col int) Cell {
	return *e.cell(Point{row, col})
}

func (e *Engine) Size() int      { return e.size }
func (e *Engine) MineCount() int { return e.mineCount }
func (e *Engine) Lives() int     { return e.lives }
func (e *Engine) Turns() int     { return e.turns }
func (e *Engine) Flags() int     { return e.flags }
func (e *Engine) Generated() bool {
	return e.generated
}

// SafeCells is the number of cells without a mine.
func (e *Engine) SafeCells() int {
	return len(e.cells) - e.mineCount
}

// Values returns a copy of every cell value, row by row.
func (e *Engine) Values() [][]int {
	values := make([][]int, e.size)
	for r := range e.size {
		values[r] = make([]int, e.size)
		for c := range e.size {
			values[r][c] = e.cells[r*e.size+c].Value
		}
	}
	return values
}
