package mines

import "errors"

var (
	ErrInvalidSize     = errors.New("grid size must be positive")
	ErrMapGenerated    = errors.New("map already generated")
	ErrAlreadyRevealed = errors.New("invalid location: already revealed")
	ErrSessionOver     = errors.New("session is over")

	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidArgs    = errors.New("invalid number of arguments")
	ErrOutOfBounds    = errors.New("invalid square coordinates")

	ErrCorruptExport = errors.New("corrupt map export")
)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
