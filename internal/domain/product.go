package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Carries records whether the competitor stocks an item
type Carries string

const (
	// CarriesYes means the competitor stocks the item and a price can be compared
	CarriesYes Carries = "Yes"
	// CarriesDNC means the competitor does not carry the item
	CarriesDNC Carries = "DNC"
)

// ParseCarries converts user input into a Carries value.
// An empty value defaults to Yes, matching the input form's first option.
func ParseCarries(s string) (Carries, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yes", "y", "true":
		return CarriesYes, nil
	case "dnc", "no", "n", "false", "does not carry":
		return CarriesDNC, nil
	}
	return "", fmt.Errorf("%w: carries must be Yes or DNC, got %q", ErrInvalidRequest, s)
}

// Valid reports whether c is one of the known values
func (c Carries) Valid() bool {
	return c == CarriesYes || c == CarriesDNC
}

// ParsePrice reads a price as typed by a user, with or without a leading "$"
// and thousands separators. Blank, malformed and negative input is zero,
// like an untouched number field.
func ParsePrice(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "$"))
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ProductRow is one entered comparison line
type ProductRow struct {
	Name            string          `json:"name" yaml:"name"`
	ReferencePrice  decimal.Decimal `json:"referencePrice" yaml:"referencePrice"`
	CompetitorPrice decimal.Decimal `json:"competitorPrice" yaml:"competitorPrice"`
	Carries         Carries         `json:"carries" yaml:"carries" binding:"omitempty,carries"`
}

// IsDNC reports whether the row renders as a "does not carry" card.
// A Yes row without a competitor price is treated as DNC until one is entered.
func (r ProductRow) IsDNC() bool {
	return r.Carries == CarriesDNC || r.CompetitorPrice.IsZero()
}

// IsValidComparison reports whether both prices are entered and the competitor carries the item
func (r ProductRow) IsValidComparison() bool {
	return r.Carries == CarriesYes && r.CompetitorPrice.IsPositive() && r.ReferencePrice.IsPositive()
}

// IsPricedAboveCompetitor reports whether the store's own price is higher than
// the competitor's on a carried item. Raw values are used on purpose.
func (r ProductRow) IsPricedAboveCompetitor() bool {
	return r.Carries == CarriesYes && r.CompetitorPrice.IsPositive() && r.ReferencePrice.GreaterThan(r.CompetitorPrice)
}
