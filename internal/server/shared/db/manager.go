package db

import (
	"context"
	"database/sql"

	"github.com/albertopena123/evaluacion-enla/internal/server/users"
)

// RepositoryManager owns the database connection and hands out the
// repositories built on top of it.
type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Close() error
}
