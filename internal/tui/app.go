package tui

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/minesweeper-term/internal/mines"
)

// App is the full screen front-end for a single [mines.Session].
type App struct {
	screen  tcell.Screen
	session *mines.Session
	sound   Sound
	cursor  mines.Point
	status  string
	done    bool
}

func New(screen tcell.Screen, session *mines.Session, sound Sound) *App {
	if sound == nil {
		sound = Silent{}
	}
	size := session.View().Size()
	return &App{
		screen:  screen,
		session: session,
		sound:   sound,
		cursor:  mines.Point{Row: size / 2, Col: size / 2},
	}
}

// Run draws the board and handles key presses until the player quits or
// dismisses the final board. Cancelling ctx quits the game.
func (a *App) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for !a.done {
		a.draw()
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			// screen finalized
			return nil
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				if !a.session.Over() {
					a.apply(mines.QuitMove())
				}
				return ctx.Err()
			}
		case *tcell.EventKey:
			a.handleKey(ev.Key(), ev.Rune())
		}
	}
	return nil
}

func (a *App) handleKey(key tcell.Key, r rune) {
	if a.session.Over() {
		a.done = true
		return
	}

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.apply(mines.QuitMove())
	case tcell.KeyUp:
		a.moveCursor(-1, 0)
	case tcell.KeyDown:
		a.moveCursor(1, 0)
	case tcell.KeyLeft:
		a.moveCursor(0, -1)
	case tcell.KeyRight:
		a.moveCursor(0, 1)
	case tcell.KeyEnter:
		a.apply(mines.RevealMove(a.cursor.Row, a.cursor.Col))
	case tcell.KeyRune:
		switch r {
		case 'k', 'w':
			a.moveCursor(-1, 0)
		case 'j', 's':
			a.moveCursor(1, 0)
		case 'h', 'a':
			a.moveCursor(0, -1)
		case 'l', 'd':
			a.moveCursor(0, 1)
		case ' ', 'r':
			a.apply(mines.RevealMove(a.cursor.Row, a.cursor.Col))
		case 'f':
			a.apply(mines.FlagMove(a.cursor.Row, a.cursor.Col))
		case 'q':
			a.apply(mines.QuitMove())
		}
	}
}

func (a *App) moveCursor(dr, dc int) {
	size := a.session.View().Size()
	a.cursor.Row = min(max(a.cursor.Row+dr, 0), size-1)
	a.cursor.Col = min(max(a.cursor.Col+dc, 0), size-1)
}

func (a *App) apply(m mines.Move) {
	ev, err := a.session.Apply(m)
	switch {
	case errors.Is(err, mines.ErrAlreadyRevealed):
		a.status = "Invalid location: Already revealed"
		return
	case err != nil:
		a.status = err.Error()
		return
	}

	a.status = ""
	if ev.LifeLost {
		a.status = "1 life lost!"
		a.sound.LifeLost()
	}
	switch ev.Outcome {
	case mines.Won:
		a.status = "Congrats! Press any key."
		a.sound.Won()
	case mines.Lost:
		a.status = "Better luck next time! Press any key."
		a.sound.Lost()
	case mines.Quit:
		a.done = true
	}
}

// Session returns the session the app is playing.
func (a *App) Session() *mines.Session {
	return a.session
}
