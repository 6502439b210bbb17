package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/brandyemurray/compare-and-save/internal/domain"
	"github.com/shopspring/decimal"
)

// dncMessage is printed under the competitor name on DNC cards
const dncMessage = "DOES NOT CARRY"

// CardContext holds the sheet-wide values printed on every card
type CardContext struct {
	Competitor string
	CheckDate  time.Time
	StoreLabel string
}

// Classify splits entered rows into valid comparisons and DNC rows.
//
// Rows with a blank name are skipped. A row is DNC when the competitor does
// not carry it or no competitor price was entered; it is valid when it is
// carried and both prices are positive. Anything else (a competitor price
// with no reference price) lands in Incomplete. Input order is preserved.
func Classify(rows []domain.ProductRow) domain.Classification {
	var out domain.Classification

	for _, row := range rows {
		row.Name = strings.TrimSpace(row.Name)
		if row.Name == "" {
			continue
		}

		switch {
		case row.IsDNC():
			out.DNC = append(out.DNC, domain.ClassifiedRow{
				Row:     row,
				Status:  domain.StatusDNC,
				Savings: decimal.Zero,
			})
		case row.IsValidComparison():
			out.Valid = append(out.Valid, domain.ClassifiedRow{
				Row:     row,
				Status:  domain.StatusValid,
				Savings: Savings(row),
			})
		default:
			out.Incomplete = append(out.Incomplete, row)
		}
	}

	return out
}

// Savings is the magnitude of the price difference. It is never negative.
func Savings(row domain.ProductRow) decimal.Decimal {
	return row.CompetitorPrice.Sub(row.ReferencePrice).Abs()
}

// DecorateCards returns a copy of c with the display fields of every card filled in
func DecorateCards(c domain.Classification, cc CardContext) domain.Classification {
	out := domain.Classification{
		Valid:      make([]domain.ClassifiedRow, len(c.Valid)),
		DNC:        make([]domain.ClassifiedRow, len(c.DNC)),
		Incomplete: append([]domain.ProductRow(nil), c.Incomplete...),
	}

	for i, row := range c.Valid {
		row.Card = validCard(row, cc)
		out.Valid[i] = row
	}
	for i, row := range c.DNC {
		row.Card = dncCard(row, cc)
		out.DNC[i] = row
	}

	return out
}

func validCard(row domain.ClassifiedRow, cc CardContext) domain.CardView {
	return domain.CardView{
		Product:         row.Row.Name,
		CompetitorLabel: CompetitorLabel(cc.Competitor),
		CompetitorPrice: FormatMoney(row.Row.CompetitorPrice),
		ReferenceLabel:  ReferenceLabel(cc.StoreLabel),
		ReferencePrice:  FormatMoney(row.Row.ReferencePrice),
		Savings:         FormatMoney(row.Savings),
		CheckDate:       FormatCheckDate(cc.CheckDate),
	}
}

// dncCard shows only the store's price plus the "does not carry" message
func dncCard(row domain.ClassifiedRow, cc CardContext) domain.CardView {
	return domain.CardView{
		Product:        row.Row.Name,
		ReferenceLabel: ReferenceLabel(cc.StoreLabel),
		ReferencePrice: FormatMoney(row.Row.ReferencePrice),
		DNCLines:       []string{strings.TrimSpace(cc.Competitor), dncMessage},
		CheckDate:      FormatCheckDate(cc.CheckDate),
	}
}

// PricingWarnings lists carried rows where the store's price is above the
// competitor's. Warnings are advisory; those rows still classify as valid.
func PricingWarnings(rows []domain.ProductRow, competitor, storeLabel string) []domain.PricingWarning {
	var warnings []domain.PricingWarning

	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" || !row.IsPricedAboveCompetitor() {
			continue
		}

		reference := FormatMoney(row.ReferencePrice)
		compPrice := FormatMoney(row.CompetitorPrice)
		warnings = append(warnings, domain.PricingWarning{
			Product:         name,
			ReferencePrice:  reference,
			CompetitorPrice: compPrice,
			Message: fmt.Sprintf("%s - %s: %s vs %s: %s",
				name, strings.TrimSpace(storeLabel), reference, strings.TrimSpace(competitor), compPrice),
		})
	}

	return warnings
}
