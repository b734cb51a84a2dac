package storage

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/guttosm/hogpulse/internal/domain/models"
)

var observationCols = []string{
	"id", "user_id", "verification_status", "region", "city", "price_per_kg",
	"livestock_type", "breed", "notes", "date_observed", "import_batch", "created_at", "updated_at",
}

func newMockPriceRepo(t *testing.T) (*priceRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, done := newMockDB(t)
	return &priceRepository{db: db}, mock, done
}

func TestSummarizeLocation_SQLMock(t *testing.T) {
	ts := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	query := `SELECT verification_status,\s+SUM\(price_per_kg\) AS price_sum,.*FROM price_observations\s+WHERE region = \$1 AND city = \$2\s+GROUP BY verification_status`

	cases := []struct {
		name    string
		rows    *sqlmock.Rows
		wantLen int
	}{
		{
			name: "both partitions",
			rows: sqlmock.NewRows([]string{"verification_status", "price_sum", "sample_size", "last_updated"}).
				AddRow("verified", "555.50", int64(3), ts).
				AddRow("unverified", "190.00", int64(1), ts),
			wantLen: 2,
		},
		{
			name:    "no rows",
			rows:    sqlmock.NewRows([]string{"verification_status", "price_sum", "sample_size", "last_updated"}),
			wantLen: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, done := newMockPriceRepo(t)
			defer done()

			mock.ExpectQuery(query).WithArgs("Region III", "San Fernando").WillReturnRows(tc.rows)

			out, err := repo.SummarizeLocation(context.Background(), "Region III", "San Fernando")
			if err != nil {
				t.Fatalf("SummarizeLocation: %v", err)
			}
			if len(out) != tc.wantLen {
				t.Fatalf("want %d partitions, got %d", tc.wantLen, len(out))
			}
			if tc.wantLen > 0 {
				if out[0].Status != models.StatusVerified || out[0].Count != 3 || out[0].Sum.String() != "555.5" {
					t.Fatalf("unexpected partition %+v", out[0])
				}
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestSummarizeLocation_Error(t *testing.T) {
	repo, mock, done := newMockPriceRepo(t)
	defer done()
	mock.ExpectQuery(`FROM price_observations`).WillReturnError(dummyErr{})
	if _, err := repo.SummarizeLocation(context.Background(), "R", "C"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestSummarizeRegions_SQLMock(t *testing.T) {
	repo, mock, done := newMockPriceRepo(t)
	defer done()

	ts := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	cols := []string{"region", "verified_sum", "verified_sample_size", "unverified_sum", "unverified_sample_size", "last_updated"}
	mock.ExpectQuery(`GROUP BY region\s+ORDER BY region COLLATE "C"`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("Region I", nil, int64(0), "360.00", int64(2), ts).
			AddRow("Region III", "555.50", int64(3), nil, int64(0), ts))

	out, err := repo.SummarizeRegions(context.Background())
	if err != nil {
		t.Fatalf("SummarizeRegions: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("want 2 regions, got %d", len(out))
	}
	if out[0].VerifiedSum.Valid || !out[0].UnverifiedSum.Valid || out[0].UnverifiedCount != 2 {
		t.Fatalf("unexpected first region %+v", out[0])
	}
	if !out[1].VerifiedSum.Valid || out[1].UnverifiedSum.Valid || out[1].VerifiedCount != 3 {
		t.Fatalf("unexpected second region %+v", out[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertObservation_SQLMock(t *testing.T) {
	repo, mock, done := newMockPriceRepo(t)
	defer done()

	created := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	uid := "user-1"
	o := &models.PriceObservation{
		ID:                 "5f0c6d7e-8a9b-4c1d-9e2f-3a4b5c6d7e8f",
		UserID:             &uid,
		VerificationStatus: models.StatusUnverified,
		Region:             "Region III",
		City:               "San Fernando",
		PricePerKg:         models.MustPrice("185.50"),
		DateObserved:       created,
	}

	mock.ExpectQuery(`INSERT INTO price_observations.*RETURNING created_at, updated_at`).
		WithArgs(o.ID, "user-1", "unverified", "Region III", "San Fernando", sqlmock.AnyArg(), nil, nil, nil, created, nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, created))

	if err := repo.InsertObservation(context.Background(), o); err != nil {
		t.Fatalf("InsertObservation: %v", err)
	}
	if !o.CreatedAt.Equal(created) || !o.UpdatedAt.Equal(created) {
		t.Fatalf("timestamps not filled: %+v", o)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertObservation_Error(t *testing.T) {
	repo, mock, done := newMockPriceRepo(t)
	defer done()
	mock.ExpectQuery(`INSERT INTO price_observations`).WillReturnError(dummyErr{})
	if err := repo.InsertObservation(context.Background(), &models.PriceObservation{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestListByUser_SQLMock(t *testing.T) {
	ts := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("page", func(t *testing.T) {
		repo, mock, done := newMockPriceRepo(t)
		defer done()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM price_observations WHERE user_id = $1`)).
			WithArgs("user-1").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(21)))
		mock.ExpectQuery(`WHERE user_id = \$1\s+ORDER BY created_at DESC, id\s+LIMIT \$2 OFFSET \$3`).
			WithArgs("user-1", 20, 20).
			WillReturnRows(sqlmock.NewRows(observationCols).
				AddRow("id-1", "user-1", "unverified", "Region III", "San Fernando", "185.50", nil, nil, nil, ts, nil, ts, ts))

		rows, total, err := repo.ListByUser(context.Background(), "user-1", 20, 20)
		if err != nil {
			t.Fatalf("ListByUser: %v", err)
		}
		if total != 21 || len(rows) != 1 || rows[0].PricePerKg.String() != "185.50" {
			t.Fatalf("unexpected result total=%d rows=%+v", total, rows)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("empty skips page query", func(t *testing.T) {
		repo, mock, done := newMockPriceRepo(t)
		defer done()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM price_observations WHERE user_id = $1`)).
			WithArgs("user-2").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

		rows, total, err := repo.ListByUser(context.Background(), "user-2", 20, 0)
		if err != nil || total != 0 || rows == nil || len(rows) != 0 {
			t.Fatalf("unexpected rows=%v total=%d err=%v", rows, total, err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})
}

func TestGetByIDForUser_SQLMock(t *testing.T) {
	ts := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	query := `FROM price_observations\s+WHERE id = \$1 AND user_id = \$2`

	t.Run("found", func(t *testing.T) {
		repo, mock, done := newMockPriceRepo(t)
		defer done()
		mock.ExpectQuery(query).WithArgs("id-1", "user-1").
			WillReturnRows(sqlmock.NewRows(observationCols).
				AddRow("id-1", "user-1", "unverified", "Region III", "San Fernando", "185.50", "hog", "Large White", nil, ts, nil, ts, ts))
		o, err := repo.GetByIDForUser(context.Background(), "id-1", "user-1")
		if err != nil || o == nil {
			t.Fatalf("unexpected o=%v err=%v", o, err)
		}
		if o.Breed == nil || *o.Breed != "Large White" || o.Notes != nil {
			t.Fatalf("unexpected optional fields %+v", o)
		}
	})

	t.Run("not owned", func(t *testing.T) {
		repo, mock, done := newMockPriceRepo(t)
		defer done()
		mock.ExpectQuery(query).WithArgs("id-1", "user-2").WillReturnRows(sqlmock.NewRows(observationCols))
		o, err := repo.GetByIDForUser(context.Background(), "id-1", "user-2")
		if err != nil || o != nil {
			t.Fatalf("want nil,nil got o=%v err=%v", o, err)
		}
	})

	t.Run("error", func(t *testing.T) {
		repo, mock, done := newMockPriceRepo(t)
		defer done()
		mock.ExpectQuery(query).WillReturnError(dummyErr{})
		if _, err := repo.GetByIDForUser(context.Background(), "id-1", "user-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
