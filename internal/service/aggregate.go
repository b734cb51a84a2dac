package service

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guttosm/hogpulse/internal/domain/errs"
	"github.com/guttosm/hogpulse/internal/domain/models"
	"github.com/guttosm/hogpulse/internal/storage"
)

// Sort keys and directions accepted by GetRegionalPrices.
const (
	SortRegion            = "region"
	SortVerifiedAverage   = "verifiedAverage"
	SortUnverifiedAverage = "unverifiedAverage"
	SortLastUpdated       = "lastUpdated"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

const (
	msgNoLocationData = "No data available for this location"
	msgNoRegionalData = "No price data available"
)

// RegionalQuery carries the optional listing parameters. Empty fields take their defaults.
type RegionalQuery struct {
	Sort   string
	Order  string
	Search string
}

// AggregateService defines business logic for computing price aggregates.
type AggregateService interface {
	GetAggregatedPrices(ctx context.Context, region, city string) (*models.LocationAggregate, error)
	GetRegionalPrices(ctx context.Context, q RegionalQuery) (*models.RegionalListing, error)
}

type aggregateService struct {
	repo storage.PriceRepository
}

// NewAggregateService builds an AggregateService over the price store.
func NewAggregateService(repo storage.PriceRepository) AggregateService {
	return &aggregateService{repo: repo}
}

// GetAggregatedPrices summarises the exact region+city pair by verification status.
//
// Parameters:
//   - region, city: required, compared verbatim.
//
// Returns:
//   - *models.LocationAggregate: averages are nil for empty partitions; when both
//     are empty Message explains that nothing was found. This is not an error.
//   - error: ValidationError for blank inputs, StorageError on datastore failure.
func (s *aggregateService) GetAggregatedPrices(ctx context.Context, region, city string) (*models.LocationAggregate, error) {
	v := &errs.ValidationError{}
	if region == "" {
		v.Add("region", "is required")
	}
	if city == "" {
		v.Add("city", "is required")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	parts, err := s.repo.SummarizeLocation(ctx, region, city)
	if err != nil {
		return nil, errs.Storage("summarize location", err)
	}

	out := &models.LocationAggregate{Region: region, City: city}
	for _, p := range parts {
		if p.Count <= 0 {
			continue
		}
		avg := &models.PriceAverage{
			PricePerKg:  models.Mean(p.Sum, p.Count),
			SampleSize:  p.Count,
			LastUpdated: p.LastUpdated,
		}
		switch p.Status {
		case models.StatusVerified:
			out.VerifiedAverage = avg
		case models.StatusUnverified:
			out.UnverifiedAverage = avg
		}
	}
	if out.VerifiedAverage == nil && out.UnverifiedAverage == nil {
		out.Message = msgNoLocationData
	}
	return out, nil
}

// GetRegionalPrices lists every region with per-status averages, then filters and sorts in memory.
//
// Null averages sort as the lowest value. The store returns regions in byte-wise
// ascending order and the sort is stable, so ties stay region-ascending.
func (s *aggregateService) GetRegionalPrices(ctx context.Context, q RegionalQuery) (*models.RegionalListing, error) {
	sortKey, desc, err := normalizeQuery(q)
	if err != nil {
		return nil, err
	}

	stats, err := s.repo.SummarizeRegions(ctx)
	if err != nil {
		return nil, errs.Storage("summarize regions", err)
	}

	needle := strings.ToLower(q.Search)
	rows := make([]models.RegionAggregate, 0, len(stats))
	for _, st := range stats {
		if needle != "" && !strings.Contains(strings.ToLower(st.Region), needle) {
			continue
		}
		rows = append(rows, models.RegionAggregate{
			Region:               st.Region,
			VerifiedAverage:      nullableMean(st.VerifiedSum, st.VerifiedCount),
			UnverifiedAverage:    nullableMean(st.UnverifiedSum, st.UnverifiedCount),
			LastUpdated:          st.LastUpdated,
			VerifiedSampleSize:   st.VerifiedCount,
			UnverifiedSampleSize: st.UnverifiedCount,
		})
	}

	less := lessFor(sortKey)
	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})

	out := &models.RegionalListing{
		Regions:         rows,
		TotalRegions:    len(rows),
		RegionsWithData: len(rows),
	}
	if len(rows) == 0 {
		out.Message = msgNoRegionalData
	}
	return out, nil
}

func normalizeQuery(q RegionalQuery) (string, bool, error) {
	v := &errs.ValidationError{}
	sortKey := q.Sort
	switch sortKey {
	case "":
		sortKey = SortRegion
	case SortRegion, SortVerifiedAverage, SortUnverifiedAverage, SortLastUpdated:
	default:
		v.Add("sort", "must be one of: region, verifiedAverage, unverifiedAverage, lastUpdated")
	}
	desc := false
	switch q.Order {
	case "", OrderAsc:
	case OrderDesc:
		desc = true
	default:
		v.Add("order", "must be one of: asc, desc")
	}
	return sortKey, desc, v.OrNil()
}

func nullableMean(sum decimal.NullDecimal, count int64) *models.Price {
	if !sum.Valid || count <= 0 {
		return nil
	}
	m := models.Mean(sum.Decimal, count)
	return &m
}

func lessFor(key string) func(a, b models.RegionAggregate) bool {
	switch key {
	case SortVerifiedAverage:
		return func(a, b models.RegionAggregate) bool { return lessNullable(a.VerifiedAverage, b.VerifiedAverage) }
	case SortUnverifiedAverage:
		return func(a, b models.RegionAggregate) bool { return lessNullable(a.UnverifiedAverage, b.UnverifiedAverage) }
	case SortLastUpdated:
		return func(a, b models.RegionAggregate) bool { return a.LastUpdated.Before(b.LastUpdated) }
	default:
		return func(a, b models.RegionAggregate) bool { return a.Region < b.Region }
	}
}

// lessNullable orders nil before any value.
func lessNullable(a, b *models.Price) bool {
	switch {
	case a == nil:
		return b != nil
	case b == nil:
		return false
	default:
		return a.LessThan(b.Decimal)
	}
}
