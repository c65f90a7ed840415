package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/vancomm/minesweeper-term/internal/mines"
	"github.com/vancomm/minesweeper-term/internal/records"
)

func (q *Queries) Save(ctx context.Context, rec *records.Record) error {
	playerId, err := q.EnsurePlayer(ctx, rec.Player)
	if err != nil {
		return fmt.Errorf("unable to ensure player %s: %w", rec.Player, err)
	}
	return q.db.QueryRow(
		ctx,
		`INSERT INTO game_record (
			player_id, size, mine_count, turns, lives_left, outcome, started_at, ended_at
		)
		VALUES (
			@player_id, @size, @mine_count, @turns, @lives_left, @outcome, @started_at, @ended_at
		)
		RETURNING game_record_id;`,
		pgx.NamedArgs{
			"player_id":  playerId,
			"size":       rec.Size,
			"mine_count": rec.MineCount,
			"turns":      rec.Turns,
			"lives_left": rec.LivesLeft,
			"outcome":    rec.Outcome,
			"started_at": rec.StartedAt,
			"ended_at":   rec.EndedAt,
		},
	).Scan(&rec.RecordId)
}

type highscoreRow struct {
	GameRecordId int       `db:"game_record_id"`
	Username     string    `db:"username"`
	Size         int       `db:"size"`
	MineCount    int       `db:"mine_count"`
	Turns        int       `db:"turns"`
	LivesLeft    int       `db:"lives_left"`
	Outcome      string    `db:"outcome"`
	StartedAt    time.Time `db:"started_at"`
	EndedAt      time.Time `db:"ended_at"`
}

func (r highscoreRow) record() records.Record {
	return records.Record{
		RecordId:  r.GameRecordId,
		Player:    r.Username,
		Size:      r.Size,
		MineCount: r.MineCount,
		Turns:     r.Turns,
		LivesLeft: r.LivesLeft,
		Outcome:   r.Outcome,
		StartedAt: r.StartedAt,
		EndedAt:   r.EndedAt,
	}
}

func whereClause(f records.Filter) (string, pgx.NamedArgs) {
	clauses := []string{"outcome = @outcome"}
	args := pgx.NamedArgs{"outcome": mines.Won.String()}
	if f.Player != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Player
	}
	if f.Size != nil {
		clauses = append(clauses, "size = @size")
		args["size"] = *f.Size
	}
	return strings.Join(clauses, " AND "), args
}

func (q *Queries) Highscores(
	ctx context.Context, filter records.Filter,
) ([]records.Record, error) {
	query := `
	SELECT
		game_record_id,
		username,
		size,
		mine_count,
		turns,
		lives_left,
		outcome,
		started_at,
		ended_at
	FROM game_record
		JOIN player USING (player_id)
	WHERE `

	where, args := whereClause(filter)
	query += where
	query += " ORDER BY ended_at - started_at, turns"
	if filter.Limit > 0 {
		query += " LIMIT @limit"
		args["limit"] = filter.Limit
	}

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	hs, err := pgx.CollectRows(rows, pgx.RowToStructByName[highscoreRow])
	if err != nil {
		return nil, err
	}
	rs := make([]records.Record, len(hs))
	for i, h := range hs {
		rs[i] = h.record()
	}
	return rs, nil
}
