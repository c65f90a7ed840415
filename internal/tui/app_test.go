package tui

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-term/internal/mines"
)

type recordedSound struct {
	lifeLost, won, lost int
}

func (s *recordedSound) LifeLost() { s.lifeLost++ }
func (s *recordedSound) Won()      { s.won++ }
func (s *recordedSound) Lost()     { s.lost++ }

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

// 0 0 0
// 0 1 1
// 0 1 X
func newApp(t *testing.T, placed ...mines.Point) (*App, *recordedSound) {
	t.Helper()
	if len(placed) == 0 {
		placed = []mines.Point{{Row: 2, Col: 2}}
	}
	s, err := mines.NewSession(3, mines.WithPlacer(mines.FixedPlacer(placed...)))
	require.NoError(t, err)
	sound := new(recordedSound)
	return New(newScreen(t), s, sound), sound
}

func TestCursorStaysOnBoard(t *testing.T) {
	app, _ := newApp(t)
	assert.Equal(t, mines.Point{Row: 1, Col: 1}, app.cursor)

	for range 5 {
		app.handleKey(tcell.KeyUp, 0)
		app.handleKey(tcell.KeyRune, 'h')
	}
	assert.Equal(t, mines.Point{Row: 0, Col: 0}, app.cursor)

	for range 5 {
		app.handleKey(tcell.KeyRune, 'j')
		app.handleKey(tcell.KeyRight, 0)
	}
	assert.Equal(t, mines.Point{Row: 2, Col: 2}, app.cursor)
}

func TestRevealWins(t *testing.T) {
	app, sound := newApp(t)
	app.handleKey(tcell.KeyRune, 'k')
	app.handleKey(tcell.KeyRune, 'a')
	app.handleKey(tcell.KeyRune, ' ')

	assert.Equal(t, mines.Won, app.Session().Outcome())
	assert.Equal(t, 1, sound.won)
	assert.Contains(t, app.status, "Congrats!")
	assert.False(t, app.done)

	app.handleKey(tcell.KeyRune, 'x')
	assert.True(t, app.done)
}

func TestFlagAndRejectedFlag(t *testing.T) {
	app, _ := newApp(t)
	app.handleKey(tcell.KeyRune, 'f')
	assert.True(t, app.Session().View().IsFlagged(1, 1))
	app.handleKey(tcell.KeyRune, 'f')
	assert.True(t, app.Session().View().IsHidden(1, 1))

	app.handleKey(tcell.KeyEnter, 0)
	app.handleKey(tcell.KeyRune, 'f')
	assert.Equal(t, "Invalid location: Already revealed", app.status)
	assert.Equal(t, 3, app.Session().View().Turns())
}

func TestLoseLivesThenGame(t *testing.T) {
	// two mines: one life
	app, sound := newApp(t, mines.Point{Row: 0, Col: 0}, mines.Point{Row: 2, Col: 2})
	app.handleKey(tcell.KeyRune, 'r')
	app.handleKey(tcell.KeyRune, 'k')
	app.handleKey(tcell.KeyRune, 'h')
	app.handleKey(tcell.KeyRune, 'r')
	assert.Equal(t, 1, sound.lifeLost)
	assert.Equal(t, "1 life lost!", app.status)

	app.handleKey(tcell.KeyDown, 0)
	app.handleKey(tcell.KeyDown, 0)
	app.handleKey(tcell.KeyRight, 0)
	app.handleKey(tcell.KeyRight, 0)
	app.handleKey(tcell.KeyEnter, 0)
	assert.Equal(t, mines.Lost, app.Session().Outcome())
	assert.Equal(t, 1, sound.lost)
}

func TestQuit(t *testing.T) {
	for _, key := range []struct {
		key tcell.Key
		r   rune
	}{
		{tcell.KeyRune, 'q'},
		{tcell.KeyEscape, 0},
		{tcell.KeyCtrlC, 0},
	} {
		app, _ := newApp(t)
		app.handleKey(key.key, key.r)
		assert.True(t, app.done)
		assert.Equal(t, mines.Quit, app.Session().Outcome())
	}
}

func TestRun(t *testing.T) {
	app, sound := newApp(t)
	for _, r := range "kh x" {
		require.NoError(t, app.screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)))
	}

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, mines.Won, app.Session().Outcome())
	assert.Equal(t, 1, sound.won)
}

func TestRunCancelled(t *testing.T) {
	app, _ := newApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, app.Run(ctx), context.Canceled)
	assert.Equal(t, mines.Quit, app.Session().Outcome())
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		name string
		cell mines.Cell
		over bool
		want rune
	}{
		{"hidden", mines.Cell{Value: 2}, false, '.'},
		{"hidden mine", mines.Cell{Value: mines.Mine}, false, '.'},
		{"hidden mine after game", mines.Cell{Value: mines.Mine}, true, '*'},
		{"flag", mines.Cell{Value: 1, State: mines.Flagged}, false, 'F'},
		{"flagged mine after game", mines.Cell{Value: mines.Mine, State: mines.Flagged}, true, '*'},
		{"open zero", mines.Cell{State: mines.Revealed}, false, ' '},
		{"open hint", mines.Cell{Value: 3, State: mines.Revealed}, false, '3'},
		{"open mine", mines.Cell{Value: mines.Mine, State: mines.Revealed}, false, '*'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := glyph(tt.cell, tt.over)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeader(t *testing.T) {
	app, _ := newApp(t)
	assert.Equal(t, "Lives 1  Turns 0  Flags 0  Mines 2", header(app.Session().View()))
}

func TestSteppingOnRevealedMineAgainLoses(t *testing.T) {
	app, sound := newApp(t, mines.Point{Row: 0, Col: 0}, mines.Point{Row: 2, Col: 2})
	app.handleKey(tcell.KeyRune, 'r')
	app.handleKey(tcell.KeyRune, 'k')
	app.handleKey(tcell.KeyRune, 'h')
	app.handleKey(tcell.KeyRune, 'r')
	require.Equal(t, mines.Playing, app.Session().Outcome())

	app.handleKey(tcell.KeyRune, 'r')
	assert.Equal(t, mines.Lost, app.Session().Outcome())
	assert.Equal(t, 1, sound.lifeLost)
	assert.Equal(t, 1, sound.lost)
}
