package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// EnsurePlayer returns the id of username, creating the player on first use.
func (q *Queries) EnsurePlayer(ctx context.Context, username string) (int, error) {
	var playerId int
	err := q.db.QueryRow(
		ctx,
		"INSERT INTO player (username) VALUES ($1) RETURNING player_id",
		username,
	).Scan(&playerId)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		err = q.db.QueryRow(
			ctx, "SELECT player_id FROM player WHERE username = $1", username,
		).Scan(&playerId)
	}
	if err != nil {
		return 0, err
	}
	return playerId, nil
}
