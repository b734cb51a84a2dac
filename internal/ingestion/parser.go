package ingestion

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/guttosm/hogpulse/internal/domain/models"
	"github.com/guttosm/hogpulse/internal/service"
	"github.com/guttosm/hogpulse/internal/storage"
)

// expectedHeaders enforces strict column ordering for price files.
// If the header doesn't match EXACTLY (order + count), the import must fail.
var expectedHeaders = []string{
	"region",
	"city",
	"price_per_kg",
	"livestock_type",
	"breed",
	"notes",
	"date_observed",
}

// parseAndPersistFile validates every row of one file, then persists them in batches.
// Nothing is inserted unless the whole file passes. It fails on:
//   - header not matching expected order/length
//   - any row rejected by the submission rules
//   - unrecoverable I/O errors
//
// Parameters:
//   - ctx:    context for cancellation/timeouts.
//   - path:   file path; its base name becomes the rows' import batch.
//   - repo:   repository for DB insertion.
//   - batch:  batch size for inserts (e.g., 5000).
func parseAndPersistFile(ctx context.Context, path string, repo storage.ImportRepository, batch int) (int, error) {
	rows, err := readObservations(ctx, path)
	if err != nil {
		return 0, err
	}

	for start := 0; start < len(rows); start += batch {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		end := min(start+batch, len(rows))
		if err := repo.InsertObservationsBatch(ctx, rows[start:end]); err != nil {
			return 0, fmt.Errorf("insert rows %d-%d: %w", start+1, end, err)
		}
	}

	return len(rows), nil
}

// readObservations parses and validates a whole file without touching the database.
func readObservations(ctx context.Context, path string) ([]models.PriceObservation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return nil, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) != expectedHeaders[i] {
			return nil, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	batchName := filepath.Base(path)
	now := time.Now().UTC()
	var rows []models.PriceObservation
	lineNumber := 1

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if len(rec) != len(expectedHeaders) {
			return nil, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(expectedHeaders), len(rec))
		}

		obs, err := service.BuildObservation(recordToDraft(rec), nil, now)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		obs.ImportBatch = &batchName
		rows = append(rows, obs)
	}

	return rows, nil
}

// recordToDraft maps one CSV record (already validated length==7) onto a
// submission draft. Empty optional cells become nil.
//
//	0 region          → Region
//	1 city            → City
//	2 price_per_kg    → PricePerKg (dot decimal separator)
//	3 livestock_type  → LivestockType
//	4 breed           → Breed
//	5 notes           → Notes
//	6 date_observed   → DateObserved (ISO-8601 date or datetime; empty means now)
func recordToDraft(rec []string) models.PriceDraft {
	return models.PriceDraft{
		Region:        strings.TrimSpace(rec[0]),
		City:          strings.TrimSpace(rec[1]),
		PricePerKg:    strings.TrimSpace(rec[2]),
		LivestockType: cell(rec[3]),
		Breed:         cell(rec[4]),
		Notes:         cell(rec[5]),
		DateObserved:  strings.TrimSpace(rec[6]),
	}
}

func cell(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
