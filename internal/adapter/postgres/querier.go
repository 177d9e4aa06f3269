package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool used by repositories and the unit of
// work. pgxmock.PgxPoolIface satisfies it as well.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Builder is the squirrel statement builder configured for PostgreSQL
// placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Statement is a staged write waiting for Commit.
type Statement struct {
	SQL  string
	Args []any
	// Entity and ID name the affected aggregate in failure messages.
	Entity string
	ID     string
	// MustAffect turns "0 rows affected" into a not-found failure.
	MustAffect bool
}

// NewStatement renders a squirrel builder into a Statement.
func NewStatement(b sq.Sqlizer, entity, id string, mustAffect bool) (Statement, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return Statement{}, err
	}
	return Statement{SQL: sql, Args: args, Entity: entity, ID: id, MustAffect: mustAffect}, nil
}
