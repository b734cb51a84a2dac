package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/guttosm/hogpulse/internal/domain/errs"
)

func TestErrorResponse_Error(t *testing.T) {
	cases := []struct {
		resp ErrorResponse
		want string
	}{
		{ErrorResponse{Message: "Unauthorized"}, "Unauthorized"},
		{ErrorResponse{Message: "Internal server error", ErrorDetails: "storage: insert observation"}, "Internal server error: storage: insert observation"},
	}
	for _, tc := range cases {
		if got := tc.resp.Error(); got != tc.want {
			t.Fatalf("want %q got %q", tc.want, got)
		}
	}
}

func TestNewErrorResponse(t *testing.T) {
	e := NewErrorResponse("Not found", nil)
	if e.Message != "Not found" || e.ErrorDetails != "" || e.Fields != nil {
		t.Fatalf("unexpected %+v", e)
	}
	if e.Timestamp.Location() != time.UTC || time.Since(e.Timestamp) > time.Second {
		t.Fatalf("timestamp not set to now in UTC: %v", e.Timestamp)
	}

	e2 := NewErrorResponse("Rate limit exceeded", errors.New("60 requests per minute"))
	if e2.ErrorDetails != "60 requests per minute" {
		t.Fatalf("unexpected %+v", e2)
	}
}

func TestNewValidationResponse(t *testing.T) {
	v := &errs.ValidationError{}
	v.Add("pricePerKg", "must be at least 50.00 per kilogram")
	v.Add("city", "is required")

	resp := NewValidationResponse(v)
	if resp.Message != "validation failed" || resp.ErrorDetails != "" {
		t.Fatalf("unexpected summary %+v", resp)
	}
	if len(resp.Fields) != 2 || resp.Fields[0].Field != "pricePerKg" || resp.Fields[1].Message != "is required" {
		t.Fatalf("fields not carried over: %+v", resp.Fields)
	}

	body, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(body), `"fields":[{"field":"pricePerKg","message":"must be at least 50.00 per kilogram"},{"field":"city","message":"is required"}]`) {
		t.Fatalf("unexpected body %s", body)
	}
	if strings.Contains(string(body), `"error"`) {
		t.Fatalf("empty details must be omitted: %s", body)
	}
}

func TestErrorResponse_JSONOmitsEmptyFields(t *testing.T) {
	body, err := json.Marshal(NewErrorResponse("Not found", nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(body), `"fields"`) || !strings.Contains(string(body), `"message":"Not found"`) {
		t.Fatalf("unexpected body %s", body)
	}
}
