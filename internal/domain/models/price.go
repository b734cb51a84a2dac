package models

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Price is a per-kilogram amount with two fraction digits.
//
// It embeds decimal.Decimal so Scan/Value work against numeric(10,2) columns,
// and always encodes as a bare JSON number with exactly two decimals (e.g. 185.50).
type Price struct {
	decimal.Decimal
}

// NewPrice wraps a decimal, rounding half away from zero to two places.
func NewPrice(d decimal.Decimal) Price {
	return Price{Decimal: d.Round(2)}
}

// MustPrice parses a literal such as "185.50"; it panics on invalid input.
func MustPrice(s string) Price {
	return Price{Decimal: decimal.RequireFromString(s)}
}

// String renders the price with exactly two fraction digits.
func (p Price) String() string {
	return p.StringFixed(2)
}

// MarshalJSON encodes the price as an unquoted number with two decimals.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.StringFixed(2)), nil
}

// UnmarshalJSON accepts JSON numbers only. Quoted strings are rejected.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return errors.New("price must be a number")
	}
	if data[0] == '"' {
		return errors.New("price must be a number, not a string")
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("price must be a number: %w", err)
	}
	p.Decimal = d
	return nil
}
