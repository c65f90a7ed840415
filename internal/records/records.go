package records

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/vancomm/minesweeper-term/internal/mines"
)

// Record is a finished game as kept on the leaderboard.
type Record struct {
	RecordId  int       `json:"record_id"`
	Player    string    `json:"player"`
	Size      int       `json:"size"`
	MineCount int       `json:"mine_count"`
	Turns     int       `json:"turns"`
	LivesLeft int       `json:"lives_left"`
	Outcome   string    `json:"outcome"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

func (r Record) Won() bool {
	return r.Outcome == mines.Won.String()
}

func (r Record) Playtime() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// FromSession builds the record of a session that has ended. ok is false for
// sessions that are still running or that never got past the first reveal.
func FromSession(player string, s *mines.Session) (rec Record, ok bool) {
	if !s.Over() || !s.Started() {
		return Record{}, false
	}
	view := s.View()
	return Record{
		Player:    player,
		Size:      view.Size(),
		MineCount: view.MineCount(),
		Turns:     view.Turns(),
		LivesLeft: view.Lives(),
		Outcome:   s.Outcome().String(),
		StartedAt: s.StartedAt(),
		EndedAt:   s.EndedAt(),
	}, true
}

type Filter struct {
	Player *string
	Size   *int
	Limit  int
}

func (f Filter) Match(r Record) bool {
	if !r.Won() {
		return false
	}
	if f.Player != nil && r.Player != *f.Player {
		return false
	}
	if f.Size != nil && r.Size != *f.Size {
		return false
	}
	return true
}

// SortHighscores orders won games by playtime, then by turns taken.
func SortHighscores(rs []Record) {
	slices.SortStableFunc(rs, func(a, b Record) int {
		if c := cmp.Compare(a.Playtime(), b.Playtime()); c != 0 {
			return c
		}
		return cmp.Compare(a.Turns, b.Turns)
	})
}

type Store interface {
	Save(ctx context.Context, rec *Record) error
	Highscores(ctx context.Context, filter Filter) ([]Record, error)
	Close() error
}

// Nop discards every record.
type Nop struct{}

func (Nop) Save(context.Context, *Record) error { return nil }

func (Nop) Highscores(context.Context, Filter) ([]Record, error) { return nil, nil }

func (Nop) Close() error { return nil }
