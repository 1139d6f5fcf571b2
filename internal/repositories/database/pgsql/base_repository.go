package pgsql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides the shared connection pool for all pgsql
// repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// uniqueViolationCode is the Postgres error code for a unique constraint
// violation; check-and-insert conflicts surface through it.
const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
