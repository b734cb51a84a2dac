package dto

import (
	"time"

	"github.com/guttosm/hogpulse/internal/domain/errs"
)

// ErrorResponse is the standard JSON error body returned by every endpoint.
//
// Fields:
//   - Message: human readable summary.
//   - ErrorDetails: underlying error text, omitted when empty.
//   - Fields: per-field validation failures (400 responses only).
//   - Timestamp: when the error was produced.
type ErrorResponse struct {
	Message      string            `json:"message" example:"validation failed"`
	ErrorDetails string            `json:"error,omitempty" example:"pricePerKg: must be between 50.00 and 500.00"`
	Fields       []errs.FieldError `json:"fields,omitempty"`
	Timestamp    time.Time         `json:"timestamp" example:"2025-01-15T10:30:00Z"`
}

// Error implements the error interface so the response can travel through c.Error.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse with the current timestamp.
//
// Parameters:
//   - message: summary shown to the client.
//   - err: optional underlying error; its text goes to ErrorDetails.
//
// Returns:
//   - ErrorResponse ready to be serialized.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// NewValidationResponse renders a ValidationError with its field list.
func NewValidationResponse(v *errs.ValidationError) ErrorResponse {
	resp := NewErrorResponse("validation failed", nil)
	resp.Fields = v.Fields
	return resp
}
