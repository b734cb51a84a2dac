package app

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	migrations "github.com/guttosm/hogpulse/db"
	"github.com/guttosm/hogpulse/internal/logger"
)

// Migrate applies every pending goose migration embedded in the binary.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	logger.L().Info().Int64("version", version).Msg("database schema up to date")
	return nil
}
