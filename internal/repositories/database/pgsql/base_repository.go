package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository carries the shared connection pool for repositories
// that embed it.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
