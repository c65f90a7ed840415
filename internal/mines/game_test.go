package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func newEngine(t *testing.T, size int, mines ...Point) *Engine {
	t.Helper()
	e, err := New(size, WithPlacer(FixedPlacer(mines...)))
	require.NoError(t, err)
	return e
}

func TestNew(t *testing.T) {
	tests := []struct {
		size, mines, lives int
	}{
		{size: 1, mines: 1, lives: 1},
		{size: 2, mines: 1, lives: 1},
		{size: 3, mines: 2, lives: 1},
		{size: 4, mines: 3, lives: 2},
		{size: 5, mines: 4, lives: 3},
		{size: 9, mines: 13, lives: 3},
		{size: 10, mines: 15, lives: 3},
		{size: 16, mines: 39, lives: 3},
	}
	for _, test := range tests {
		e, err := New(test.size)
		require.NoError(t, err)
		assert.Equal(t, test.mines, e.MineCount(), "size %d", test.size)
		assert.Equal(t, test.lives, e.Lives(), "size %d", test.size)
		assert.Zero(t, e.Turns())
		assert.Zero(t, e.Flags())
		assert.False(t, e.Generated())
		for r := range test.size {
			for c := range test.size {
				assert.True(t, e.IsHidden(r, c))
				assert.Equal(t, 0, e.Cell(r, c).Value)
			}
		}
	}
}

func TestNewInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := New(size)
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestGenerateMapRandom(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for size := 3; size <= 12; size++ {
		for sr := range size {
			for sc := range size {
				e, err := New(size, WithRand(r))
				require.NoError(t, err)
				require.NoError(t, e.GenerateMap(sr, sc))

				assert.NotEqual(t, Mine, e.Cell(sr, sc).Value, "mine in safe cell")
				assert.Equal(t, MineCountFor(size), e.MineCount())
				assertConsistent(t, e)
			}
		}
	}
}

func assertConsistent(t *testing.T, e *Engine) {
	t.Helper()
	mines := 0
	for r := range e.Size() {
		for c := range e.Size() {
			if e.Cell(r, c).IsMine() {
				mines++
				continue
			}
			want := 0
			for q := range neighbours(e.Size(), Point{r, c}) {
				if e.Cell(q.Row, q.Col).IsMine() {
					want++
				}
			}
			assert.Equal(t, want, e.Cell(r, c).Value, "hint at %d:%d", r, c)
		}
	}
	assert.Equal(t, e.MineCount(), mines)
}

func TestGenerateMapOnce(t *testing.T) {
	e := newEngine(t, 3, Point{0, 0})
	require.NoError(t, e.GenerateMap(2, 2))
	assert.ErrorIs(t, e.GenerateMap(2, 2), ErrMapGenerated)
}

func TestGenerateMapTinyBoard(t *testing.T) {
	e, err := New(1)
	require.NoError(t, err)
	require.NoError(t, e.GenerateMap(0, 0))
	assert.Equal(t, 0, e.MineCount())
	assert.Equal(t, 1, e.SafeCells())
}

func TestGenerateMapBadPlacer(t *testing.T) {
	tests := []struct {
		name  string
		mines []Point
	}{
		{name: "safe cell", mines: []Point{{1, 1}}},
		{name: "duplicate", mines: []Point{{0, 0}, {0, 0}}},
		{name: "outside", mines: []Point{{3, 0}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e := newEngine(t, 3, test.mines...)
			e.Flag(2, 2)

			var ae AssertionError
			require.ErrorAs(t, e.GenerateMap(1, 1), &ae)
			assert.False(t, e.Generated())
			for r := range 3 {
				for c := range 3 {
					assert.Equal(t, 0, e.Cell(r, c).Value)
				}
			}
			assert.True(t, e.IsFlagged(2, 2))
		})
	}
}

func TestHints(t *testing.T) {
	e := newEngine(t, 3, Point{0, 0})
	require.NoError(t, e.GenerateMap(2, 2))

	assert.Equal(t, Mine, e.Cell(0, 0).Value)
	assert.Equal(t, 1, e.Cell(1, 1).Value)
	assert.Equal(t, 0, e.Cell(2, 2).Value)
	assert.Equal(t, [][]int{
		{-1, 1, 0},
		{1, 1, 0},
		{0, 0, 0},
	}, e.Values())
}

func TestRevealIdempotent(t *testing.T) {
	e := newEngine(t, 3, Point{0, 0})
	require.NoError(t, e.GenerateMap(2, 2))

	value, revealed := e.Reveal(1, 1)
	assert.Equal(t, 1, value)
	assert.Equal(t, 1, revealed)
	assert.True(t, e.IsRevealed(1, 1))

	value, revealed = e.Reveal(1, 1)
	assert.Equal(t, 1, value)
	assert.Equal(t, 0, revealed)
}

func TestRevealCascadeMineFree(t *testing.T) {
	e := newEngine(t, 3)
	require.NoError(t, e.GenerateMap(1, 1))

	value, revealed := e.Reveal(1, 1)
	assert.Equal(t, 0, value)
	assert.Equal(t, 9, revealed)
	for r := range 3 {
		for c := range 3 {
			assert.True(t, e.IsRevealed(r, c))
		}
	}
}

func TestRevealCascadeStopsAtHints(t *testing.T) {
	e := newEngine(t, 3, Point{0, 0}, Point{2, 2})
	require.NoError(t, e.GenerateMap(0, 2))

	value, revealed := e.Reveal(0, 2)
	assert.Equal(t, 0, value)
	assert.Equal(t, 4, revealed)
	assert.True(t, e.IsHidden(0, 0))
	assert.True(t, e.IsHidden(1, 0))
	assert.True(t, e.IsHidden(2, 2))
}

func TestRevealCascadeUnflags(t *testing.T) {
	e := newEngine(t, 3)
	require.True(t, e.Flag(0, 0))
	require.True(t, e.Flag(2, 2))
	require.NoError(t, e.GenerateMap(1, 1))

	_, revealed := e.Reveal(1, 1)
	assert.Equal(t, 9, revealed)
	assert.Zero(t, e.Flags())
	assert.True(t, e.IsRevealed(0, 0))
}

func TestRevealLargeBoard(t *testing.T) {
	e := newEngine(t, 300)
	require.NoError(t, e.GenerateMap(150, 150))

	_, revealed := e.Reveal(0, 0)
	assert.Equal(t, 300*300, revealed)
}

func TestRevealMine(t *testing.T) {
	e := newEngine(t, 3, Point{0, 0})
	require.NoError(t, e.GenerateMap(2, 2))

	value, revealed := e.Reveal(0, 0)
	assert.Equal(t, Mine, value)
	assert.Equal(t, 1, revealed)
	assert.Equal(t, 1, e.Lives(), "revealing never touches lives")
}

func TestFlag(t *testing.T) {
	e := newEngine(t, 3, Point{0, 0})
	require.NoError(t, e.GenerateMap(2, 2))

	assert.True(t, e.Flag(0, 0))
	assert.True(t, e.IsFlagged(0, 0))
	assert.Equal(t, 1, e.Flags())

	assert.True(t, e.Flag(0, 0))
	assert.True(t, e.IsHidden(0, 0))
	assert.Equal(t, 0, e.Flags())

	lives := e.Lives()
	e.Reveal(1, 1)
	assert.False(t, e.Flag(1, 1))
	assert.True(t, e.IsRevealed(1, 1))
	assert.Equal(t, 0, e.Flags())
	assert.Equal(t, lives, e.Lives())
	assert.Equal(t, 1, e.Cell(1, 1).Value)
}

func TestLoseLife(t *testing.T) {
	e := newEngine(t, 5)
	assert.Equal(t, 3, e.Lives())
	assert.True(t, e.LoseLife())
	assert.True(t, e.LoseLife())
	assert.True(t, e.LoseLife())
	assert.False(t, e.LoseLife())
	assert.Zero(t, e.Lives())
}
