package db

import (
	"context"
	"database/sql"

	"github.com/finta-app/finta/internal/db/migrations"
	"github.com/pressly/goose/v3"
)

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
