package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/guttosm/hogpulse/internal/domain/models"
)

// observationColumns is the column list shared by every price_observations read.
const observationColumns = `id, user_id, verification_status, region, city, price_per_kg,
	livestock_type, breed, notes, date_observed, import_batch, created_at, updated_at`

// PriceRepository defines the datastore contract for price observations.
//
// Aggregation reads return raw SUM/COUNT/MAX per partition; means are derived
// by the service so rounding is controlled in one place.
type PriceRepository interface {
	SummarizeLocation(ctx context.Context, region, city string) ([]models.PartitionStats, error)
	SummarizeRegions(ctx context.Context) ([]models.RegionStats, error)
	InsertObservation(ctx context.Context, o *models.PriceObservation) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.PriceObservation, int64, error)
	GetByIDForUser(ctx context.Context, id, userID string) (*models.PriceObservation, error)
}

type priceRepository struct {
	db *sqlx.DB
}

// NewPriceRepository builds a PriceRepository over an sqlx handle.
func NewPriceRepository(db *sqlx.DB) PriceRepository {
	return &priceRepository{db: db}
}

// SummarizeLocation returns one row per non-empty verification status for an exact region+city match.
func (r *priceRepository) SummarizeLocation(ctx context.Context, region, city string) ([]models.PartitionStats, error) {
	var out []models.PartitionStats
	err := r.db.SelectContext(ctx, &out, `
		SELECT verification_status,
		       SUM(price_per_kg) AS price_sum,
		       COUNT(*)          AS sample_size,
		       MAX(created_at)   AS last_updated
		FROM price_observations
		WHERE region = $1 AND city = $2
		GROUP BY verification_status
	`, region, city)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SummarizeRegions groups every row by region only, ordered by region with byte-wise collation.
func (r *priceRepository) SummarizeRegions(ctx context.Context) ([]models.RegionStats, error) {
	var out []models.RegionStats
	err := r.db.SelectContext(ctx, &out, `
		SELECT region,
		       SUM(price_per_kg) FILTER (WHERE verification_status = 'verified')   AS verified_sum,
		       COUNT(*)          FILTER (WHERE verification_status = 'verified')   AS verified_sample_size,
		       SUM(price_per_kg) FILTER (WHERE verification_status = 'unverified') AS unverified_sum,
		       COUNT(*)          FILTER (WHERE verification_status = 'unverified') AS unverified_sample_size,
		       MAX(created_at)   AS last_updated
		FROM price_observations
		GROUP BY region
		ORDER BY region COLLATE "C"
	`)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InsertObservation writes one row and fills CreatedAt/UpdatedAt from the database.
func (r *priceRepository) InsertObservation(ctx context.Context, o *models.PriceObservation) error {
	row := r.db.QueryRowxContext(ctx, `
		INSERT INTO price_observations
			(id, user_id, verification_status, region, city, price_per_kg,
			 livestock_type, breed, notes, date_observed, import_batch)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`,
		o.ID,
		o.UserID,
		string(o.VerificationStatus),
		o.Region,
		o.City,
		o.PricePerKg,
		o.LivestockType,
		o.Breed,
		o.Notes,
		o.DateObserved,
		o.ImportBatch,
	)
	return row.Scan(&o.CreatedAt, &o.UpdatedAt)
}

// ListByUser returns one page of a user's rows, newest first, plus the total row count.
func (r *priceRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.PriceObservation, int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM price_observations WHERE user_id = $1`, userID); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []models.PriceObservation{}, 0, nil
	}

	out := []models.PriceObservation{}
	err := r.db.SelectContext(ctx, &out, `
		SELECT `+observationColumns+`
		FROM price_observations
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// GetByIDForUser returns the row only when it belongs to userID; (nil, nil) otherwise.
func (r *priceRepository) GetByIDForUser(ctx context.Context, id, userID string) (*models.PriceObservation, error) {
	var o models.PriceObservation
	err := r.db.GetContext(ctx, &o, `
		SELECT `+observationColumns+`
		FROM price_observations
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}
