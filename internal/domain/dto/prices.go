package dto

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/guttosm/hogpulse/internal/domain/models"
)

// AggregatedPricesResponse is returned by GET /api/v1/prices/aggregated.
//
// Both averages are null when their partition has no rows. When both are null
// Message explains that the location has no data; this is still a 200.
type AggregatedPricesResponse struct {
	VerifiedAverage   *models.PriceAverage `json:"verifiedAverage"`
	UnverifiedAverage *models.PriceAverage `json:"unverifiedAverage"`
	Region            string               `json:"region" example:"Region III"`
	City              string               `json:"city" example:"San Fernando"`
	Message           string               `json:"message,omitempty" example:"No data available for this location"`
}

// RegionRow is one entry of the regional listing.
type RegionRow struct {
	Region               string        `json:"region" example:"Region III"`
	VerifiedAverage      *models.Price `json:"verifiedAverage" swaggertype:"number" example:"185.17"`
	UnverifiedAverage    *models.Price `json:"unverifiedAverage" swaggertype:"number" example:"190.00"`
	PriceChange          *float64      `json:"priceChange"`
	LastUpdated          time.Time     `json:"lastUpdated" example:"2025-01-15T10:30:00Z"`
	VerifiedSampleSize   int64         `json:"verifiedSampleSize" example:"3"`
	UnverifiedSampleSize int64         `json:"unverifiedSampleSize" example:"5"`
}

// RegionalPricesResponse is returned by GET /api/v1/prices/regional.
type RegionalPricesResponse struct {
	Regions         []RegionRow `json:"regions"`
	TotalRegions    int         `json:"totalRegions" example:"2"`
	RegionsWithData int         `json:"regionsWithData" example:"2"`
	Message         string      `json:"message,omitempty" example:"No price data available"`
}

// SubmitPriceRequest is the body of POST /api/v1/prices/submit.
//
// PricePerKg is kept raw so a quoted string can be reported as a field error
// alongside every other failing field. Unknown keys (e.g. verificationStatus)
// are ignored.
type SubmitPriceRequest struct {
	Region        string          `json:"region" example:"Region III"`
	City          string          `json:"city" example:"San Fernando"`
	PricePerKg    json.RawMessage `json:"pricePerKg" swaggertype:"number" example:"185.50"`
	LivestockType *string         `json:"livestockType,omitempty" example:"hog"`
	Breed         *string         `json:"breed,omitempty" example:"Large White"`
	Notes         *string         `json:"notes,omitempty" example:"farm gate"`
	DateObserved  *string         `json:"dateObserved,omitempty" example:"2025-01-15"`
}

// Draft converts the request into an unvalidated observation draft.
func (r SubmitPriceRequest) Draft() models.PriceDraft {
	d := models.PriceDraft{
		Region:        r.Region,
		City:          r.City,
		LivestockType: r.LivestockType,
		Breed:         r.Breed,
		Notes:         r.Notes,
	}
	raw := bytes.TrimSpace(r.PricePerKg)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
	case raw[0] == '"':
		d.PriceIsText = true
		d.PricePerKg = strings.Trim(string(raw), `"`)
	default:
		d.PricePerKg = string(raw)
	}
	if r.DateObserved != nil {
		d.DateObserved = *r.DateObserved
	}
	return d
}

// PriceObservationDTO is the public shape of a persisted price observation.
type PriceObservationDTO struct {
	ID                 string       `json:"id" example:"5f0c6d7e-8a9b-4c1d-9e2f-3a4b5c6d7e8f"`
	UserID             *string      `json:"userId"`
	VerificationStatus string       `json:"verificationStatus" example:"unverified"`
	Region             string       `json:"region" example:"Region III"`
	City               string       `json:"city" example:"San Fernando"`
	PricePerKg         models.Price `json:"pricePerKg" swaggertype:"number" example:"185.50"`
	LivestockType      *string      `json:"livestockType"`
	Breed              *string      `json:"breed"`
	Notes              *string      `json:"notes"`
	DateObserved       time.Time    `json:"dateObserved"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

// SubmitPriceResponse is the 201 envelope of a successful submission.
type SubmitPriceResponse struct {
	Success bool                `json:"success" example:"true"`
	Message string              `json:"message" example:"Price submitted successfully!"`
	Data    PriceObservationDTO `json:"data"`
}

// FromObservation maps a stored row to its public shape.
func FromObservation(o models.PriceObservation) PriceObservationDTO {
	return PriceObservationDTO{
		ID:                 o.ID,
		UserID:             o.UserID,
		VerificationStatus: string(o.VerificationStatus),
		Region:             o.Region,
		City:               o.City,
		PricePerKg:         o.PricePerKg,
		LivestockType:      o.LivestockType,
		Breed:              o.Breed,
		Notes:              o.Notes,
		DateObserved:       o.DateObserved,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

// FromLocationAggregate maps the engine result to the response body.
func FromLocationAggregate(a models.LocationAggregate) AggregatedPricesResponse {
	return AggregatedPricesResponse{
		VerifiedAverage:   a.VerifiedAverage,
		UnverifiedAverage: a.UnverifiedAverage,
		Region:            a.Region,
		City:              a.City,
		Message:           a.Message,
	}
}

// FromRegionalListing maps the listing to the response body; Regions is never null.
func FromRegionalListing(l models.RegionalListing) RegionalPricesResponse {
	rows := make([]RegionRow, 0, len(l.Regions))
	for _, r := range l.Regions {
		rows = append(rows, RegionRow{
			Region:               r.Region,
			VerifiedAverage:      r.VerifiedAverage,
			UnverifiedAverage:    r.UnverifiedAverage,
			LastUpdated:          r.LastUpdated,
			VerifiedSampleSize:   r.VerifiedSampleSize,
			UnverifiedSampleSize: r.UnverifiedSampleSize,
		})
	}
	return RegionalPricesResponse{
		Regions:         rows,
		TotalRegions:    l.TotalRegions,
		RegionsWithData: l.RegionsWithData,
		Message:         l.Message,
	}
}
