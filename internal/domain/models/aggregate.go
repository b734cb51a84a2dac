package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartitionStats is the raw SQL summary of one verification-status partition.
//
// Sum is the exact numeric sum of price_per_kg; the mean is derived in Go so
// rounding stays half away from zero regardless of the database settings.
type PartitionStats struct {
	Status      VerificationStatus `db:"verification_status"`
	Sum         decimal.Decimal    `db:"price_sum"`
	Count       int64              `db:"sample_size"`
	LastUpdated time.Time          `db:"last_updated"`
}

// RegionStats is the raw SQL summary of one region, both partitions side by side.
// Sums are NULL-able because a region may have no rows in one of the partitions.
type RegionStats struct {
	Region          string              `db:"region"`
	VerifiedSum     decimal.NullDecimal `db:"verified_sum"`
	VerifiedCount   int64               `db:"verified_sample_size"`
	UnverifiedSum   decimal.NullDecimal `db:"unverified_sum"`
	UnverifiedCount int64               `db:"unverified_sample_size"`
	LastUpdated     time.Time           `db:"last_updated"`
}

// PriceAverage is the mean of one non-empty partition.
type PriceAverage struct {
	PricePerKg  Price     `json:"pricePerKg" swaggertype:"number" example:"185.17"`
	SampleSize  int64     `json:"sampleSize" example:"3"`
	LastUpdated time.Time `json:"lastUpdated" example:"2025-01-15T10:30:00Z"`
}

// LocationAggregate summarises one region+city pair.
// Averages are nil when their partition is empty; Message is set only when both are.
type LocationAggregate struct {
	VerifiedAverage   *PriceAverage
	UnverifiedAverage *PriceAverage
	Region            string
	City              string
	Message           string
}

// RegionAggregate is one row of the regional listing.
type RegionAggregate struct {
	Region               string
	VerifiedAverage      *Price
	UnverifiedAverage    *Price
	LastUpdated          time.Time
	VerifiedSampleSize   int64
	UnverifiedSampleSize int64
}

// RegionalListing is the filtered and sorted set of region rows.
type RegionalListing struct {
	Regions         []RegionAggregate
	TotalRegions    int
	RegionsWithData int
	Message         string
}

// Mean divides sum by count and rounds half away from zero to two places.
// It returns the zero price when count is not positive.
func Mean(sum decimal.Decimal, count int64) Price {
	if count <= 0 {
		return Price{}
	}
	return NewPrice(sum.Div(decimal.NewFromInt(count)))
}
