package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/brandyemurray/compare-and-save/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(name, reference, competitor string, carries domain.Carries) domain.ProductRow {
	return domain.ProductRow{
		Name:            name,
		ReferencePrice:  decimal.RequireFromString(reference),
		CompetitorPrice: decimal.RequireFromString(competitor),
		Carries:         carries,
	}
}

func names(rows []domain.ClassifiedRow) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Row.Name)
	}
	return out
}

func TestClassify_Scenario(t *testing.T) {
	rows := []domain.ProductRow{
		row("Milk", "3.99", "4.99", domain.CarriesYes),
		row("Eggs", "2.50", "0", domain.CarriesYes),
		row("Bread", "4.00", "3.00", domain.CarriesDNC),
	}

	got := Classify(rows)

	require.Len(t, got.Valid, 1)
	assert.Equal(t, "Milk", got.Valid[0].Row.Name)
	assert.Equal(t, domain.StatusValid, got.Valid[0].Status)
	assert.Equal(t, "$1.00", FormatMoney(got.Valid[0].Savings))
	assert.Equal(t, []string{"Eggs", "Bread"}, names(got.DNC))
	assert.Empty(t, got.Incomplete)
}

func TestClassify_Rules(t *testing.T) {
	tests := []struct {
		name       string
		row        domain.ProductRow
		wantStatus domain.Status // empty means the row is not classified
		incomplete bool
	}{
		{"DNC wins over prices", row("Soup", "1.00", "2.00", domain.CarriesDNC), domain.StatusDNC, false},
		{"DNC with large competitor price", row("Soup", "1.00", "99999.99", domain.CarriesDNC), domain.StatusDNC, false},
		{"DNC with negative competitor price", row("Soup", "1.00", "-5", domain.CarriesDNC), domain.StatusDNC, false},
		{"Yes with no competitor price is DNC", row("Eggs", "2.50", "0", domain.CarriesYes), domain.StatusDNC, false},
		{"Yes with both prices is valid", row("Milk", "3.99", "4.99", domain.CarriesYes), domain.StatusValid, false},
		{"priced above competitor still valid", row("Chips", "6.00", "4.00", domain.CarriesYes), domain.StatusValid, false},
		{"missing reference price is incomplete", row("Tea", "0", "3.00", domain.CarriesYes), "", true},
		{"blank name is skipped", row("   ", "1.00", "2.00", domain.CarriesYes), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify([]domain.ProductRow{tt.row})

			var statuses []domain.Status
			for _, r := range got.Ordered() {
				statuses = append(statuses, r.Status)
			}

			if tt.wantStatus == "" {
				assert.Empty(t, statuses)
			} else {
				assert.Equal(t, []domain.Status{tt.wantStatus}, statuses)
			}
			assert.Equal(t, tt.incomplete, len(got.Incomplete) == 1)
		})
	}
}

func TestClassify_SavingsNeverNegative(t *testing.T) {
	prices := []string{"0.01", "0.99", "1.00", "3.49", "10.00", "1234.56"}

	for _, ref := range prices {
		for _, comp := range prices {
			got := Classify([]domain.ProductRow{row("Item", ref, comp, domain.CarriesYes)})
			require.Len(t, got.Valid, 1, "ref=%s comp=%s", ref, comp)

			want := decimal.RequireFromString(comp).Sub(decimal.RequireFromString(ref)).Abs()
			assert.True(t, got.Valid[0].Savings.Equal(want), "ref=%s comp=%s savings=%s", ref, comp, got.Valid[0].Savings)
			assert.False(t, got.Valid[0].Savings.IsNegative())
		}
	}
}

func TestClassify_TrimsNamesAndPreservesOrder(t *testing.T) {
	rows := []domain.ProductRow{
		row("  Bread ", "4.00", "0", domain.CarriesYes),
		row("Milk", "3.99", "4.99", domain.CarriesYes),
		row("", "1.00", "1.00", domain.CarriesYes),
		row("Apples", "1.00", "0", domain.CarriesDNC),
		row("Cheese", "5.00", "6.50", domain.CarriesYes),
	}

	got := Classify(rows)

	assert.Equal(t, []string{"Milk", "Cheese"}, names(got.Valid))
	assert.Equal(t, []string{"Bread", "Apples"}, names(got.DNC))
	assert.Equal(t, "  Bread ", rows[0].Name, "input must not be modified")
}

func TestClassify_Empty(t *testing.T) {
	got := Classify(nil)

	assert.Empty(t, got.Valid)
	assert.Empty(t, got.DNC)
	assert.Empty(t, got.Incomplete)
}

func TestDecorateCards(t *testing.T) {
	classified := Classify([]domain.ProductRow{
		row("Milk", "3.99", "4.99", domain.CarriesYes),
		row("Bread", "4.00", "3.00", domain.CarriesDNC),
	})
	cc := CardContext{
		Competitor: "Safeway/Albertsons",
		CheckDate:  time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC),
		StoreLabel: "Super 1",
	}

	got := DecorateCards(classified, cc)

	assert.Equal(t, domain.CardView{
		Product:         "Milk",
		CompetitorLabel: []string{"Safeway/Albertsons", "Price"},
		CompetitorPrice: "$4.99",
		ReferenceLabel:  "Super 1 Price",
		ReferencePrice:  "$3.99",
		Savings:         "$1.00",
		CheckDate:       "3/4/2025",
	}, got.Valid[0].Card)

	assert.Equal(t, domain.CardView{
		Product:        "Bread",
		ReferenceLabel: "Super 1 Price",
		ReferencePrice: "$4.00",
		DNCLines:       []string{"Safeway/Albertsons", "DOES NOT CARRY"},
		CheckDate:      "3/4/2025",
	}, got.DNC[0].Card)

	assert.Empty(t, classified.Valid[0].Card.Product, "input classification must not be modified")
}

func TestPricingWarnings(t *testing.T) {
	rows := []domain.ProductRow{
		row("Soda", "5.00", "3.00", domain.CarriesDNC),
		row("Chips", "6.00", "4.00", domain.CarriesYes),
		row("Milk", "3.99", "4.99", domain.CarriesYes),
		row("Eggs", "2.50", "0", domain.CarriesYes),
		row(" ", "9.00", "1.00", domain.CarriesYes),
	}

	got := PricingWarnings(rows, "Winco", "Super 1")

	require.Len(t, got, 1)
	assert.Equal(t, "Chips", got[0].Product)
	assert.Equal(t, "$6.00", got[0].ReferencePrice)
	assert.Equal(t, "$4.00", got[0].CompetitorPrice)
	assert.Equal(t, "Chips - Super 1: $6.00 vs Winco: $4.00", got[0].Message)
	assert.True(t, strings.Contains(got[0].Message, "Chips"))
}

func TestPricingWarnings_ReferenceBelowCompetitor(t *testing.T) {
	got := PricingWarnings([]domain.ProductRow{row("Soda", "3.00", "5.00", domain.CarriesYes)}, "Winco", "Super 1")
	assert.Empty(t, got)
}

func TestPricingWarnings_DoNotExcludeFromValid(t *testing.T) {
	rows := []domain.ProductRow{row("Chips", "6.00", "4.00", domain.CarriesYes)}

	assert.Len(t, PricingWarnings(rows, "Winco", "Super 1"), 1)
	got := Classify(rows)
	require.Len(t, got.Valid, 1)
	assert.Equal(t, "$2.00", FormatMoney(got.Valid[0].Savings))
}
