package models

import "time"

// VerificationStatus is the trust level of a price observation.
type VerificationStatus string

const (
	StatusVerified   VerificationStatus = "verified"
	StatusUnverified VerificationStatus = "unverified"
)

// PriceObservation is a single row of the price_observations table.
//
// Fields:
//   - ID: service generated UUID.
//   - UserID: submitter identity (JWT subject); nil for guests and bulk imports.
//   - VerificationStatus: always "unverified" at creation.
//   - Region/City: free text location, matched exactly on read.
//   - PricePerKg: numeric(10,2) in [50.00, 500.00].
//   - LivestockType/Breed/Notes: optional free text (nil when absent).
//   - DateObserved: when the price was seen; defaults to submission time.
//   - ImportBatch: source file name for rows loaded by the bulk importer.
//   - CreatedAt/UpdatedAt: assigned by the database.
type PriceObservation struct {
	ID                 string             `db:"id"`
	UserID             *string            `db:"user_id"`
	VerificationStatus VerificationStatus `db:"verification_status"`
	Region             string             `db:"region"`
	City               string             `db:"city"`
	PricePerKg         Price              `db:"price_per_kg"`
	LivestockType      *string            `db:"livestock_type"`
	Breed              *string            `db:"breed"`
	Notes              *string            `db:"notes"`
	DateObserved       time.Time          `db:"date_observed"`
	ImportBatch        *string            `db:"import_batch"`
	CreatedAt          time.Time          `db:"created_at"`
	UpdatedAt          time.Time          `db:"updated_at"`
}

// PriceDraft is a candidate observation as received from a client or an import
// file, before validation.
//
// PricePerKg holds the literal decimal text; PriceIsText is set when the client
// sent it as a JSON string, which is rejected. DateObserved is empty when absent.
type PriceDraft struct {
	Region        string  `validate:"required"`
	City          string  `validate:"required"`
	PricePerKg    string  `validate:"required"`
	PriceIsText   bool
	LivestockType *string `validate:"omitempty,max=100"`
	Breed         *string `validate:"omitempty,max=100"`
	Notes         *string `validate:"omitempty,max=2000"`
	DateObserved  string
}
