package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	pq "github.com/lib/pq"

	"github.com/guttosm/hogpulse/internal/domain/errs"
	"github.com/guttosm/hogpulse/internal/domain/models"
)

const profileColumns = `id, first_name, last_name, display_name, email, phone, region, city,
	user_roles, provider, provider_id, avatar_url, created_at, updated_at`

// ProfileRepository defines the datastore contract for profiles.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	Update(ctx context.Context, id string, patch models.ProfilePatch) (*models.Profile, error)
	UpsertExternal(ctx context.Context, p models.Profile) (*models.Profile, error)
}

type profileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository builds a ProfileRepository over an sqlx handle.
func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// GetByID returns the profile or (nil, nil) when it does not exist.
func (r *profileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	var p models.Profile
	err := r.db.GetContext(ctx, &p, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update applies the non-nil fields of patch. It returns (nil, nil) when the profile
// does not exist and an ErrConflict wrap when the new email is already taken.
func (r *profileRepository) Update(ctx context.Context, id string, patch models.ProfilePatch) (*models.Profile, error) {
	var roles any
	if patch.UserRoles != nil {
		roles = pq.Array(patch.UserRoles)
	}

	var p models.Profile
	err := r.db.GetContext(ctx, &p, `
		UPDATE profiles SET
			first_name   = COALESCE($2, first_name),
			last_name    = COALESCE($3, last_name),
			display_name = COALESCE($4, display_name),
			email        = COALESCE($5, email),
			phone        = COALESCE($6, phone),
			region       = COALESCE($7, region),
			city         = COALESCE($8, city),
			user_roles   = COALESCE($9::text[], user_roles),
			updated_at   = NOW()
		WHERE id = $1
		RETURNING `+profileColumns,
		id,
		patch.FirstName,
		patch.LastName,
		patch.DisplayName,
		patch.Email,
		patch.Phone,
		patch.Region,
		patch.City,
		roles,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("email already in use: %w", errs.ErrConflict)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertExternal creates or refreshes the profile keyed by email after an
// identity-provider login. Names already set by the user are kept.
func (r *profileRepository) UpsertExternal(ctx context.Context, in models.Profile) (*models.Profile, error) {
	var p models.Profile
	err := r.db.GetContext(ctx, &p, `
		INSERT INTO profiles (id, first_name, last_name, display_name, email, provider, provider_id, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (email) DO UPDATE SET
			first_name   = COALESCE(profiles.first_name, EXCLUDED.first_name),
			last_name    = COALESCE(profiles.last_name, EXCLUDED.last_name),
			display_name = COALESCE(profiles.display_name, EXCLUDED.display_name),
			provider     = EXCLUDED.provider,
			provider_id  = EXCLUDED.provider_id,
			avatar_url   = COALESCE(EXCLUDED.avatar_url, profiles.avatar_url),
			updated_at   = NOW()
		RETURNING `+profileColumns,
		in.ID,
		in.FirstName,
		in.LastName,
		in.DisplayName,
		in.Email,
		in.Provider,
		in.ProviderID,
		in.AvatarURL,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// isUniqueViolation reports whether err is a Postgres unique_violation (23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
