package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-term/internal/records"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		*(d.(*int)) = r.values[i].(int)
	}
	return nil
}

type queryCall struct {
	sql  string
	args []any
}

// fakeDB answers QueryRow calls with the queued rows in order.
type fakeDB struct {
	rows  []fakeRow
	calls []queryCall
}

func (db *fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not implemented")
}

func (db *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (db *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.calls = append(db.calls, queryCall{sql, args})
	row := db.rows[0]
	db.rows = db.rows[1:]
	return row
}

func TestEnsurePlayerNew(t *testing.T) {
	db := &fakeDB{rows: []fakeRow{{values: []any{7}}}}
	id, err := New(db).EnsurePlayer(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.Len(t, db.calls, 1)
}

func TestEnsurePlayerExisting(t *testing.T) {
	db := &fakeDB{rows: []fakeRow{
		{err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}},
		{values: []any{3}},
	}}
	id, err := New(db).EnsurePlayer(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, 3, id)
	require.Len(t, db.calls, 2)
	assert.Contains(t, db.calls[1].sql, "SELECT player_id FROM player")
	assert.Equal(t, []any{"bob"}, db.calls[1].args)
}

func TestEnsurePlayerError(t *testing.T) {
	boom := errors.New("connection reset")
	db := &fakeDB{rows: []fakeRow{{err: boom}}}
	_, err := New(db).EnsurePlayer(context.Background(), "bob")
	assert.ErrorIs(t, err, boom)
	assert.Len(t, db.calls, 1)
}

func TestSave(t *testing.T) {
	db := &fakeDB{rows: []fakeRow{{values: []any{2}}, {values: []any{41}}}}
	now := time.Now()
	rec := &records.Record{
		Player: "bob", Size: 9, MineCount: 13, Turns: 20, LivesLeft: 2,
		Outcome: "won", StartedAt: now.Add(-time.Minute), EndedAt: now,
	}
	require.NoError(t, New(db).Save(context.Background(), rec))
	assert.Equal(t, 41, rec.RecordId)

	require.Len(t, db.calls, 2)
	args := db.calls[1].args[0].(pgx.NamedArgs)
	assert.Equal(t, 2, args["player_id"])
	assert.Equal(t, 9, args["size"])
	assert.Equal(t, "won", args["outcome"])
}

func TestWhereClause(t *testing.T) {
	clause, args := whereClause(records.Filter{})
	assert.Equal(t, "outcome = @outcome", clause)
	assert.Equal(t, pgx.NamedArgs{"outcome": "won"}, args)

	bob, nine := "bob", 9
	clause, args = whereClause(records.Filter{Player: &bob, Size: &nine})
	assert.Equal(t, "outcome = @outcome AND username = @username AND size = @size", clause)
	assert.Equal(t, pgx.NamedArgs{"outcome": "won", "username": "bob", "size": 9}, args)
}
