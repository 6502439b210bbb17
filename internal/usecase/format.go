package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// checkDateLayout prints month and day without leading zeros, e.g. 3/4/2025
const checkDateLayout = "1/2/2006"

// safewayLabel is split across two lines on the printed card
var safewayLabel = []string{"Safeway/Albertsons", "Price"}

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatMoney renders an amount as USD with thousands grouping and two decimals.
// Rounding is half away from zero, so 0.005 becomes $0.01.
func FormatMoney(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	whole := rounded.Truncate(0)
	cents := rounded.Sub(whole).Shift(2).IntPart()

	return fmt.Sprintf("%s$%s.%02d", sign, groupDollars(whole), cents)
}

// groupDollars inserts thousands separators into a non-negative whole amount.
// The locale printer only handles machine integers, so larger amounts are
// grouped from their decimal digits.
func groupDollars(whole decimal.Decimal) string {
	if n := whole.BigInt(); n.IsInt64() {
		return usdPrinter.Sprintf("%d", n.Int64())
	}

	digits := whole.String()
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}

// FormatCheckDate renders the price check date as M/D/YYYY
func FormatCheckDate(t time.Time) string {
	return t.Format(checkDateLayout)
}

// CompetitorLabel returns the price label lines for a competitor.
// Any name starting with "safeway" gets the two-line Safeway/Albertsons label.
func CompetitorLabel(competitor string) []string {
	name := strings.TrimSpace(competitor)
	if strings.HasPrefix(strings.ToLower(name), "safeway") {
		return append([]string(nil), safewayLabel...)
	}
	return []string{name + " Price"}
}

// ReferenceLabel returns the label printed above the store's own price
func ReferenceLabel(storeLabel string) string {
	return strings.TrimSpace(storeLabel) + " Price"
}
