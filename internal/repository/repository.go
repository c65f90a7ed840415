package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/minesweeper-term/internal/database"
	"github.com/vancomm/minesweeper-term/internal/records"
)

var _ records.Store = (*Postgres)(nil)

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Postgres is a [records.Store] backed by a migrated connection pool.
type Postgres struct {
	*Queries
	pool *pgxpool.Pool
}

func Open(ctx context.Context, url string) (*Postgres, error) {
	pool, err := database.ConnectAndMigrate(ctx, url)
	if err != nil {
		return nil, err
	}
	return &Postgres{Queries: New(pool), pool: pool}, nil
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
