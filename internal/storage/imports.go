package storage

import (
	"context"

	"github.com/jmoiron/sqlx"
	pq "github.com/lib/pq"

	"github.com/guttosm/hogpulse/internal/domain/models"
)

// ImportRepository defines the datastore contract used by the bulk CSV importer.
type ImportRepository interface {
	InsertObservationsBatch(ctx context.Context, rows []models.PriceObservation) error
	HasImport(ctx context.Context, filename string) (bool, error)
	UpsertImportLog(ctx context.Context, filename string, rowCount int) error
	DeleteByImportBatch(ctx context.Context, filename string) error
}

type importRepository struct {
	db *sqlx.DB
}

// NewImportRepository builds an ImportRepository over an sqlx handle.
func NewImportRepository(db *sqlx.DB) ImportRepository {
	return &importRepository{db: db}
}

// InsertObservationsBatch inserts multiple observations into DB in a single transaction using COPY.
func (r *importRepository) InsertObservationsBatch(ctx context.Context, rows []models.PriceObservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	// Small optimization for bulk load
	if _, err := tx.ExecContext(ctx, `SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(
		"price_observations",
		"id",
		"user_id",
		"verification_status",
		"region",
		"city",
		"price_per_kg",
		"livestock_type",
		"breed",
		"notes",
		"date_observed",
		"import_batch",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, rec := range rows {
		if _, err := stmt.ExecContext(ctx,
			rec.ID,
			rec.UserID,
			string(rec.VerificationStatus),
			rec.Region,
			rec.City,
			rec.PricePerKg,
			rec.LivestockType,
			rec.Breed,
			rec.Notes,
			rec.DateObserved,
			rec.ImportBatch,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// HasImport checks whether a file was already imported.
func (r *importRepository) HasImport(ctx context.Context, filename string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM import_log WHERE filename = $1)`, filename).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertImportLog records (or updates) the import of one file.
func (r *importRepository) UpsertImportLog(ctx context.Context, filename string, rowCount int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO import_log (filename, row_count)
		VALUES ($1, $2)
		ON CONFLICT (filename)
		DO UPDATE SET row_count = EXCLUDED.row_count,
					  imported_at = NOW()
	`, filename, rowCount)
	return err
}

// DeleteByImportBatch removes every observation loaded from filename.
func (r *importRepository) DeleteByImportBatch(ctx context.Context, filename string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM price_observations WHERE import_batch = $1`, filename)
	return err
}
