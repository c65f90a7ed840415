package mines

import (
	"errors"
	"strconv"
	"strings"
)

type Op int

const (
	OpReveal Op = iota
	OpFlag
	OpQuit
)

func (o Op) String() string {
	switch o {
	case OpReveal:
		return "r"
	case OpFlag:
		return "f"
	case OpQuit:
		return "q"
	default:
		return "?"
	}
}

// Move is a single player action in 0-indexed coordinates.
type Move struct {
	Op       Op
	Row, Col int
}

func RevealMove(row, col int) Move { return Move{Op: OpReveal, Row: row, Col: col} }
func FlagMove(row, col int) Move   { return Move{Op: OpFlag, Row: row, Col: col} }
func QuitMove() Move               { return Move{Op: OpQuit} }

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"r": 2,
	"f": 2,
	"q": 0,
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// ParseMove reads "r X Y", "f X Y" or "q". X is the row and Y the column,
// both 1-indexed as the player types them; the returned move is 0-indexed.
func ParseMove(line string, size int) (Move, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Move{}, ErrUnknownCommand
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return Move{}, ErrUnknownCommand
	}
	if nargs != len(parts)-1 {
		return Move{}, ErrInvalidArgs
	}
	switch parts[0] {
	case "q":
		return QuitMove(), nil
	case "r", "f":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return Move{}, err
		}
		p := Point{x - 1, y - 1}
		if !inBounds(size, p) {
			return Move{}, ErrOutOfBounds
		}
		if parts[0] == "r" {
			return RevealMove(p.Row, p.Col), nil
		}
		return FlagMove(p.Row, p.Col), nil
	}
	return Move{}, ErrUnknownCommand
}
