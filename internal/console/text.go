package console

import "fmt"

const welcome = `
 __  __ _
|  \/  (_)
| \  / |_ _ __   ___  _____      _____  ___ _ __   ___ _ __
| |\/| | | '_ \ / _ \/ __\ \ /\ / / _ \/ _ \ '_ \ / _ \ '__|
| |  | | | | | |  __/\__ \\ V  V /  __/  __/ |_) |  __/ |
|_|  |_|_|_| |_|\___||___/ \_/\_/ \___|\___| .__/ \___|_|
                                           | |
                                           |_|
`

const menu = `MENU

1: Play
2: Export a Map
3: How to Play Instructions
4: About
5: Exit
`

const about = `ABOUT
A terminal Minesweeper. Pick a size, reveal every safe cell and try not to
step on more mines than you have lives for. Feedback and suggestions are
very much welcome! Hope you have fun playing this!
`

var instructions = []struct{ header, body string }{
	{"HOW TO PLAY", ": [mode] [x coordinate] [y coordinate]"},
	{"Allowed map sizes", fmt.Sprintf(
		"Maps smaller than %d are not legal, they would only hold a single mine.", MinSize,
	)},
	{"Entering coordinates: [x coordinate] [y coordinate]",
		"[x coordinate] is the row of the cell and [y coordinate] its column. " +
			"1 1 is the top left corner of the map. Coordinates are 1 indexed.\n" +
			`For example: "1 2" is the cell in the 1st row and the 2nd column.`},
	{"Reveal mode: r",
		"Reveals the value of the given tile. 0 means none of the 8 neighbouring " +
			"tiles is a mine, 1 means one of them is, and so on. Revealing a 0 opens its " +
			"neighbours too. Revealing a mine costs a life; with no lives left the game ends. " +
			"Your first reveal is always safe.\n" +
			`For example: "r 1 1" reveals the top left tile.`},
	{"Flag mode: f",
		"Flags the given tile. Flagging a flagged tile unflags it. A revealed tile " +
			"cannot be flagged. Revealing a flagged tile removes the flag. Flags never " +
			"cost lives; they are there to help you mark potential mines.\n" +
			`For example: "f 1 1" flags the top left tile, "f 1 1" again unflags it.`},
	{"Quit: q", "Quits the game at any time and goes back to the menu."},
	{"Win conditions", "If all non-mine cells have been revealed, the game is won."},
	{"Lose conditions", "If a mine is revealed with no lives remaining, the game is lost."},
	{"Exporting maps", exportHelp},
}

const exportHelp = "Maps exported have 2 integers in the first line: the size of the map " +
	"and the number of mines in it. The following lines hold the revealed map, one row " +
	"per line, mines marked with X."
