package client

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/pillyapp/accountd/internal/client/migrations"
)

// RunMigrations applies the embedded goose migrations to the local cache.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the client's SQLite cache at dsn and brings its schema
// up to date. The caller owns the returned handle and must Close it.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
