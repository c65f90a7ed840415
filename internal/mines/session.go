package mines

import (
	"time"

	"github.com/sirupsen/logrus"
)

type Outcome int

const (
	Playing Outcome = iota
	Won
	Lost
	Quit
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// View is the read-only side of a board handed to renderers.
type View interface {
	Size() int
	MineCount() int
	Lives() int
	Turns() int
	Flags() int
	IsHidden(row, col int) bool
	IsFlagged(row, col int) bool
	IsRevealed(row, col int) bool
	Cell(row, col int) Cell
	RenderGrid() string
	RenderFullyRevealed() string
	Stats() string
}

// Event describes what a single move did to the session.
type Event struct {
	Move     Move
	Value    int
	Revealed int
	LifeLost bool
	Outcome  Outcome
}

// Session runs the turn policy on top of an [Engine]: the first reveal
// generates the map, mine hits cost lives, and revealing every safe cell
// wins.
type Session struct {
	engine    *Engine
	remaining int
	outcome   Outcome
	startedAt time.Time
	endedAt   time.Time
	now       func() time.Time
}

func NewSession(size int, opts ...Option) (*Session, error) {
	engine, err := New(size, opts...)
	if err != nil {
		return nil, err
	}
	s := &Session{
		engine:    engine,
		remaining: engine.SafeCells(),
		now:       time.Now,
	}
	s.startedAt = s.now()
	return s, nil
}

func (s *Session) View() View {
	return s.engine
}

func (s *Session) Outcome() Outcome     { return s.outcome }
func (s *Session) Over() bool           { return s.outcome != Playing }
func (s *Session) Remaining() int       { return s.remaining }
func (s *Session) StartedAt() time.Time { return s.startedAt }
func (s *Session) EndedAt() time.Time   { return s.endedAt }

// Started reports whether the map has been generated, i.e. the player has
// revealed at least one cell.
func (s *Session) Started() bool {
	return s.engine.Generated()
}

// Apply performs one move. A flag on a revealed cell is rejected with
// [ErrAlreadyRevealed] and does not count as a turn.
func (s *Session) Apply(m Move) (Event, error) {
	ev := Event{Move: m, Outcome: s.outcome}
	if s.Over() {
		return ev, ErrSessionOver
	}

	switch m.Op {
	case OpQuit:
		s.finish(Quit)

	case OpFlag:
		if !s.engine.Flag(m.Row, m.Col) {
			return ev, ErrAlreadyRevealed
		}
		s.engine.TakeTurn()

	case OpReveal:
		if !s.engine.Generated() {
			if err := s.engine.GenerateMap(m.Row, m.Col); err != nil {
				return ev, err
			}
			s.remaining = s.engine.SafeCells()
		}
		ev.Value, ev.Revealed = s.engine.Reveal(m.Row, m.Col)
		switch ev.Value {
		case Mine:
			// stepping on an already revealed mine costs a life too
			if s.engine.LoseLife() {
				ev.LifeLost = true
			} else {
				s.finish(Lost)
			}
		default:
			s.remaining -= ev.Revealed
			if s.remaining == 0 {
				s.finish(Won)
			}
		}
		s.engine.TakeTurn()
	}

	ev.Outcome = s.outcome
	Log.WithFields(logrus.Fields{
		"move":     m.Op.String(),
		"row":      m.Row,
		"col":      m.Col,
		"value":    ev.Value,
		"revealed": ev.Revealed,
		"lifeLost": ev.LifeLost,
		"outcome":  ev.Outcome.String(),
	}).Debug("move applied")
	return ev, nil
}

func (s *Session) finish(o Outcome) {
	s.outcome = o
	s.endedAt = s.now()
}
