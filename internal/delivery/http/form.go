package http

import (
	"fmt"
	"strings"

	"github.com/brandyemurray/compare-and-save/internal/domain"
	"github.com/brandyemurray/compare-and-save/internal/infrastructure/render"
	"github.com/gin-gonic/gin"
)

// Input form field names
const (
	fieldCompetitor      = "competitor"
	fieldCheckDate       = "check_date"
	fieldName            = "name"
	fieldReferencePrice  = "reference_price"
	fieldCompetitorPrice = "competitor_price"
	fieldCarries         = "carries"
)

// parseSheetForm reads the repeated product fields of the input form. The
// returned form view echoes what was submitted so it can be re-rendered.
func (h *Handler) parseSheetForm(c *gin.Context) (render.FormView, *domain.SheetRequest, error) {
	form := h.newFormView()

	names := c.PostFormArray(fieldName)
	references := c.PostFormArray(fieldReferencePrice)
	competitors := c.PostFormArray(fieldCompetitorPrice)
	carries := c.PostFormArray(fieldCarries)

	if len(names) > h.cards.MaxRows {
		names = names[:h.cards.MaxRows]
	}

	request := &domain.SheetRequest{
		Competitor: strings.TrimSpace(c.PostForm(fieldCompetitor)),
	}
	if request.Competitor != "" {
		form.Competitor = request.Competitor
	}

	if raw := strings.TrimSpace(c.PostForm(fieldCheckDate)); raw != "" {
		form.CheckDate = raw
		date, err := domain.ParseDate(raw)
		if err != nil {
			form.Rows = blankFormRows(max(len(names), 1))
			return form, nil, err
		}
		request.CheckDate = date
	}

	form.Rows = make([]render.FormRow, 0, len(names))
	for i, name := range names {
		fr := render.FormRow{
			Index:           i,
			Name:            name,
			ReferencePrice:  valueAt(references, i),
			CompetitorPrice: valueAt(competitors, i),
			Carries:         valueAt(carries, i),
		}

		carried, err := domain.ParseCarries(fr.Carries)
		if err != nil {
			form.Rows = append(form.Rows, fr)
			return form, nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		fr.Carries = string(carried)
		form.Rows = append(form.Rows, fr)

		request.Rows = append(request.Rows, domain.ProductRow{
			Name:            name,
			ReferencePrice:  domain.ParsePrice(fr.ReferencePrice),
			CompetitorPrice: domain.ParsePrice(fr.CompetitorPrice),
			Carries:         carried,
		})
	}

	if len(form.Rows) == 0 {
		form.Rows = blankFormRows(h.cards.DefaultRows)
	}

	return form, request, nil
}

func valueAt(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

func blankFormRows(n int) []render.FormRow {
	rows := make([]render.FormRow, n)
	for i := range rows {
		rows[i] = render.FormRow{Index: i, Carries: string(domain.CarriesYes)}
	}
	return rows
}
