// Package repomanager wires a SQL backend to the repository set. The backend
// is chosen from the DSN: postgres:// DSNs use pgx, anything else is treated
// as a sqlite file path (or in-memory URI).
package repomanager

import (
	"context"
	"database/sql"
	"strings"

	"github.com/mkravets/promptease/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Close() error
}

// New picks the backend from the DSN scheme.
func New(dsn string) (RepositoryManager, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return NewPostgresRepositoryManager(dsn)
	}
	return NewSqliteRepositoryManager(dsn)
}
