package storage

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	pq "github.com/lib/pq"

	"github.com/guttosm/hogpulse/internal/domain/errs"
	"github.com/guttosm/hogpulse/internal/domain/models"
)

var profileCols = []string{
	"id", "first_name", "last_name", "display_name", "email", "phone", "region", "city",
	"user_roles", "provider", "provider_id", "avatar_url", "created_at", "updated_at",
}

func profileRow(ts time.Time) []driver.Value {
	return []driver.Value{"p-1", "Juan", "Dela Cruz", nil, "juan@example.com", nil, "Region III", nil,
		"{hog_raiser,buyer}", "google", "g-123", nil, ts, ts}
}

func newMockProfileRepo(t *testing.T) (*profileRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, done := newMockDB(t)
	return &profileRepository{db: db}, mock, done
}

func TestProfileGetByID_SQLMock(t *testing.T) {
	ts := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	cases := []struct {
		name    string
		rows    *sqlmock.Rows
		err     error
		wantNil bool
		wantErr bool
	}{
		{name: "found", rows: sqlmock.NewRows(profileCols).AddRow(profileRow(ts)...)},
		{name: "missing", rows: sqlmock.NewRows(profileCols), wantNil: true},
		{name: "error", err: dummyErr{}, wantNil: true, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, done := newMockProfileRepo(t)
			defer done()
			exp := mock.ExpectQuery(`FROM profiles WHERE id = \$1`).WithArgs("p-1")
			if tc.err != nil {
				exp.WillReturnError(tc.err)
			} else {
				exp.WillReturnRows(tc.rows)
			}
			p, err := repo.GetByID(context.Background(), "p-1")
			if (err != nil) != tc.wantErr || (p == nil) != tc.wantNil {
				t.Fatalf("unexpected p=%+v err=%v", p, err)
			}
			if p != nil && (len(p.UserRoles) != 2 || p.UserRoles[0] != "hog_raiser") {
				t.Fatalf("roles not scanned: %v", p.UserRoles)
			}
		})
	}
}

func TestProfileUpdate_SQLMock(t *testing.T) {
	ts := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	city := "San Fernando"
	email := "taken@example.com"

	t.Run("applies patch", func(t *testing.T) {
		repo, mock, done := newMockProfileRepo(t)
		defer done()
		mock.ExpectQuery(`UPDATE profiles SET.*WHERE id = \$1\s+RETURNING`).
			WithArgs("p-1", nil, nil, nil, nil, nil, nil, city, pq.Array([]string{"trader"})).
			WillReturnRows(sqlmock.NewRows(profileCols).AddRow(profileRow(ts)...))
		p, err := repo.Update(context.Background(), "p-1", models.ProfilePatch{City: &city, UserRoles: []string{"trader"}})
		if err != nil || p == nil {
			t.Fatalf("unexpected p=%v err=%v", p, err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("missing profile", func(t *testing.T) {
		repo, mock, done := newMockProfileRepo(t)
		defer done()
		mock.ExpectQuery(`UPDATE profiles SET`).WillReturnRows(sqlmock.NewRows(profileCols))
		p, err := repo.Update(context.Background(), "p-x", models.ProfilePatch{City: &city})
		if err != nil || p != nil {
			t.Fatalf("want nil,nil got p=%v err=%v", p, err)
		}
	})

	t.Run("email conflict", func(t *testing.T) {
		repo, mock, done := newMockProfileRepo(t)
		defer done()
		mock.ExpectQuery(`UPDATE profiles SET`).WillReturnError(&pq.Error{Code: "23505"})
		_, err := repo.Update(context.Background(), "p-1", models.ProfilePatch{Email: &email})
		if !errors.Is(err, errs.ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})
}

func TestProfileUpsertExternal_SQLMock(t *testing.T) {
	ts := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	repo, mock, done := newMockProfileRepo(t)
	defer done()

	first, provider, pid := "Juan", "google", "g-123"
	in := models.Profile{ID: "p-new", FirstName: &first, Email: "juan@example.com", Provider: &provider, ProviderID: &pid}

	mock.ExpectQuery(`INSERT INTO profiles .*ON CONFLICT \(email\) DO UPDATE SET`).
		WithArgs("p-new", "Juan", nil, nil, "juan@example.com", "google", "g-123", nil).
		WillReturnRows(sqlmock.NewRows(profileCols).AddRow(profileRow(ts)...))

	p, err := repo.UpsertExternal(context.Background(), in)
	if err != nil || p == nil {
		t.Fatalf("unexpected p=%v err=%v", p, err)
	}
	// Existing row wins on conflict: the returned id is the stored one.
	if p.ID != "p-1" {
		t.Fatalf("expected stored id, got %s", p.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pq.Error{Code: "23505"}) {
		t.Fatalf("23505 must be a unique violation")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) || isUniqueViolation(dummyErr{}) || isUniqueViolation(nil) {
		t.Fatalf("unexpected unique violation")
	}
}
