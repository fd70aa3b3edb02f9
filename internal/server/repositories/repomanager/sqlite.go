package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/mkravets/promptease/internal/server/migrations"
	"github.com/mkravets/promptease/internal/server/repositories/users"
)

type SqliteRepositoryManager struct {
	db    *sql.DB
	users users.Repository
}

// NewSqliteRepositoryManager opens (or creates) the local database file. An
// in-memory URI like "file:x?mode=memory&cache=shared" also works, which is
// what the tests use.
func NewSqliteRepositoryManager(dsn string) (*SqliteRepositoryManager, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	// modernc.org/sqlite serializes writes; a single connection avoids
	// SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)

	m := &SqliteRepositoryManager{
		db:    db,
		users: users.NewSqliteRepository(db),
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

func (m *SqliteRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Sqlite)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, m.db, "sqlite")
}

func (m *SqliteRepositoryManager) Conn() *sql.DB { return m.db }

func (m *SqliteRepositoryManager) Users() users.Repository { return m.users }

func (m *SqliteRepositoryManager) Close() error { return m.db.Close() }
