package domain

import "github.com/shopspring/decimal"

// DefaultPageSize is the number of cards printed per sheet (2x2 grid)
const DefaultPageSize = 4

// Status is the resolved classification of an entered row
type Status string

const (
	StatusValid Status = "valid"
	StatusDNC   Status = "dnc"
)

// CardView holds the display-ready strings for one card.
// Values are plain text; escaping is the renderer's job.
type CardView struct {
	Product         string   `json:"product"`
	CompetitorLabel []string `json:"competitorLabel,omitempty"`
	CompetitorPrice string   `json:"competitorPrice,omitempty"`
	ReferenceLabel  string   `json:"referenceLabel"`
	ReferencePrice  string   `json:"referencePrice"`
	Savings         string   `json:"savings,omitempty"`
	DNCLines        []string `json:"dncLines,omitempty"`
	CheckDate       string   `json:"checkDate"`
}

// ClassifiedRow is a ProductRow tagged with its classification
type ClassifiedRow struct {
	Row     ProductRow      `json:"row"`
	Status  Status          `json:"status"`
	Savings decimal.Decimal `json:"savings"`
	Card    CardView        `json:"card"`
}

// IsDNC reports whether the card renders the "does not carry" layout
func (c ClassifiedRow) IsDNC() bool {
	return c.Status == StatusDNC
}

// Classification is the result of classifying a set of rows.
// Incomplete holds named rows that are neither valid nor DNC
// (competitor price entered but no reference price); they never print.
type Classification struct {
	Valid      []ClassifiedRow `json:"valid"`
	DNC        []ClassifiedRow `json:"dnc"`
	Incomplete []ProductRow    `json:"incomplete,omitempty"`
}

// Ordered returns valid rows followed by DNC rows
func (c Classification) Ordered() []ClassifiedRow {
	out := make([]ClassifiedRow, 0, len(c.Valid)+len(c.DNC))
	out = append(out, c.Valid...)
	return append(out, c.DNC...)
}

// Page is one printed sheet of cards
type Page struct {
	Number int             `json:"number"`
	Rows   []ClassifiedRow `json:"rows"`
	IsLast bool            `json:"isLast"`
}

// PricingWarning flags a row whose store price is above the competitor's
type PricingWarning struct {
	Product         string `json:"product"`
	ReferencePrice  string `json:"referencePrice"`
	CompetitorPrice string `json:"competitorPrice"`
	Message         string `json:"message"`
}

// SheetRequest is the full input for one render pass
type SheetRequest struct {
	Competitor string       `json:"competitor" binding:"required"`
	CheckDate  Date         `json:"checkDate"`
	PageSize   int          `json:"pageSize,omitempty" binding:"omitempty,min=1,max=16"`
	Rows       []ProductRow `json:"rows" binding:"dive"`
}

// SheetSummary holds the counts shown next to a preview
type SheetSummary struct {
	ValidCount      int `json:"validCount"`
	DNCCount        int `json:"dncCount"`
	IncompleteCount int `json:"incompleteCount"`
	TotalCards      int `json:"totalCards"`
	PageCount       int `json:"pageCount"`
}

// CardSheet is everything a renderer needs for preview and print
type CardSheet struct {
	Competitor     string           `json:"competitor"`
	CheckDate      string           `json:"checkDate"`
	Classification Classification   `json:"classification"`
	Warnings       []PricingWarning `json:"warnings"`
	Pages          []Page           `json:"pages"`
	Summary        SheetSummary     `json:"summary"`
}
