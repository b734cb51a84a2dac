package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/guttosm/hogpulse/internal/domain/errs"
	"github.com/guttosm/hogpulse/internal/domain/models"
)

var (
	minPricePerKg = decimal.RequireFromString("50.00")
	maxPricePerKg = decimal.RequireFromString("500.00")
)

// dateLayouts are the accepted dateObserved formats, tried in order. Values
// without an offset are read as UTC.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// errDraftRejected is returned when a check fails without naming a field.
var errDraftRejected = errors.New("intake: draft rejected")

// BuildObservation validates a draft and turns it into a new, unverified observation.
//
// Every failing field is reported in a single ValidationError. On success the
// returned row has a fresh UUID, status "unverified" and DateObserved defaulted
// to now when the draft carried none. Empty breed/notes become NULL.
func BuildObservation(d models.PriceDraft, userID *string, now time.Time) (models.PriceObservation, error) {
	v := collect(d, &errs.ValidationError{})

	price, ok := parsePrice(d, v)
	observed, dateOK := parseObserved(d.DateObserved, now, v)
	if err := v.OrNil(); err != nil {
		return models.PriceObservation{}, err
	}
	if !ok || !dateOK {
		return models.PriceObservation{}, errDraftRejected
	}

	return models.PriceObservation{
		ID:                 uuid.NewString(),
		UserID:             userID,
		VerificationStatus: models.StatusUnverified,
		Region:             d.Region,
		City:               d.City,
		PricePerKg:         models.NewPrice(price),
		LivestockType:      d.LivestockType,
		Breed:              nilIfEmpty(d.Breed),
		Notes:              nilIfEmpty(d.Notes),
		DateObserved:       observed,
	}, nil
}

// parsePrice checks the number type, the two-decimal precision and the inclusive range.
// An absent or empty price is already reported by the required tag.
func parsePrice(d models.PriceDraft, v *errs.ValidationError) (decimal.Decimal, bool) {
	if d.PricePerKg == "" {
		return decimal.Decimal{}, false
	}
	if d.PriceIsText {
		v.Add("pricePerKg", "must be a number")
		return decimal.Decimal{}, false
	}
	p, err := decimal.NewFromString(d.PricePerKg)
	if err != nil {
		v.Add("pricePerKg", "must be a number")
		return decimal.Decimal{}, false
	}
	switch {
	case !p.Equal(p.Round(2)):
		v.Add("pricePerKg", "must have at most 2 decimal places")
	case p.LessThan(minPricePerKg):
		v.Add("pricePerKg", "must be at least 50.00 per kilogram")
	case p.GreaterThan(maxPricePerKg):
		v.Add("pricePerKg", "must not exceed 500.00 per kilogram")
	default:
		return p, true
	}
	return decimal.Decimal{}, false
}

func parseObserved(raw string, now time.Time, v *errs.ValidationError) (time.Time, bool) {
	if raw == "" {
		return now, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	v.Add("dateObserved", "must be an ISO-8601 date (YYYY-MM-DD) or RFC 3339 timestamp")
	return time.Time{}, false
}

func nilIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
