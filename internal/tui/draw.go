package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/minesweeper-term/internal/mines"
)

const (
	cellWidth = 3
	boardTop  = 2
	boardLeft = 1
	help      = "arrows/hjkl move  space/enter reveal  f flag  q quit"
)

var (
	styleText   = tcell.StyleDefault
	styleHidden = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleOpen   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleFlag   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleMine   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorRed)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

var numberColors = [...]tcell.Color{
	1: tcell.ColorBlue,
	2: tcell.ColorGreen,
	3: tcell.ColorRed,
	4: tcell.ColorNavy,
	5: tcell.ColorMaroon,
	6: tcell.ColorTeal,
	7: tcell.ColorPurple,
	8: tcell.ColorGray,
}

// glyph picks what a cell looks like. Once the game is over every mine is
// shown.
func glyph(c mines.Cell, over bool) (rune, tcell.Style) {
	switch {
	case c.State == mines.Revealed && c.IsMine():
		return '*', styleMine
	case c.State == mines.Revealed && c.Value == 0:
		return ' ', styleOpen
	case c.State == mines.Revealed:
		return rune('0' + c.Value), tcell.StyleDefault.Foreground(numberColors[c.Value]).Bold(true)
	case over && c.IsMine():
		return '*', styleHidden.Foreground(tcell.ColorRed)
	case c.State == mines.Flagged:
		return 'F', styleFlag
	default:
		return '.', styleHidden
	}
}

func header(view mines.View) string {
	return fmt.Sprintf("Lives %d  Turns %d  Flags %d  Mines %d",
		view.Lives(), view.Turns(), view.Flags(), view.MineCount())
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func (a *App) draw() {
	a.screen.Clear()
	view := a.session.View()
	over := a.session.Over()

	drawText(a.screen, boardLeft, 0, styleText, header(view))
	for row := range view.Size() {
		for col := range view.Size() {
			ch, style := glyph(view.Cell(row, col), over)
			if !over && a.cursor == (mines.Point{Row: row, Col: col}) {
				style = style.Reverse(true)
			}
			x := boardLeft + col*cellWidth
			y := boardTop + row
			a.screen.SetContent(x, y, ' ', nil, style)
			a.screen.SetContent(x+1, y, ch, nil, style)
			a.screen.SetContent(x+2, y, ' ', nil, style)
		}
	}

	y := boardTop + view.Size() + 1
	drawText(a.screen, boardLeft, y, styleStatus, a.status)
	drawText(a.screen, boardLeft, y+1, styleHidden, help)
	a.screen.Show()
}
