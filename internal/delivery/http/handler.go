package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/brandyemurray/compare-and-save/config"
	"github.com/brandyemurray/compare-and-save/internal/domain"
	"github.com/brandyemurray/compare-and-save/internal/infrastructure/render"
	"github.com/brandyemurray/compare-and-save/internal/usecase"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pageTitle = "Compare and Save"

// Handler holds dependencies for HTTP handlers
type Handler struct {
	cardService *usecase.CardService
	renderer    *render.Renderer
	cards       config.CardsConfig
	logger      *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(cardService *usecase.CardService, renderer *render.Renderer, cards config.CardsConfig, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cards.DefaultRows < 1 {
		cards.DefaultRows = 10
	}
	if cards.MaxRows < cards.DefaultRows {
		cards.MaxRows = max(cards.DefaultRows, 100)
	}
	return &Handler{
		cardService: cardService,
		renderer:    renderer,
		cards:       cards,
		logger:      logger,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "compare-and-save",
		"version": "1.0.0",
	})
}

// Index renders an empty input form. ?rows=N sets the number of product lines.
func (h *Handler) Index(c *gin.Context) {
	if !h.htmlReady(c) {
		return
	}

	rows := h.cards.DefaultRows
	if n, err := strconv.Atoi(c.Query("rows")); err == nil {
		rows = min(max(n, 1), h.cards.MaxRows)
	}

	form := h.newFormView()
	form.Rows = blankFormRows(rows)

	c.HTML(http.StatusOK, render.IndexPage, render.PageData{Title: pageTitle, Form: form})
}

// Preview classifies the submitted form and renders the cards below it
func (h *Handler) Preview(c *gin.Context) {
	if !h.htmlReady(c) {
		return
	}

	form, request, err := h.parseSheetForm(c)
	data := render.PageData{Title: pageTitle, Form: form}
	if err != nil {
		data.Error = err.Error()
		c.HTML(http.StatusBadRequest, render.PreviewPage, data)
		return
	}

	sheet, err := h.cardService.BuildSheet(c.Request.Context(), request)
	switch {
	case errors.Is(err, domain.ErrNoProducts):
		// Empty state, not a failure
	case err != nil:
		h.logger.Error("build card sheet failed", zap.Error(err))
		data.Error = errorMessage(err)
		c.HTML(statusFor(err), render.PreviewPage, data)
		return
	default:
		data.Sheet = sheet
	}

	c.HTML(http.StatusOK, render.PreviewPage, data)
}

// SubmitPrint stores the submitted form as a print sheet and redirects to
// its print-only view
func (h *Handler) SubmitPrint(c *gin.Context) {
	if !h.htmlReady(c) {
		return
	}

	form, request, err := h.parseSheetForm(c)
	data := render.PageData{Title: pageTitle, Form: form}
	if err != nil {
		data.Error = err.Error()
		c.HTML(http.StatusBadRequest, render.PreviewPage, data)
		return
	}

	id, err := h.cardService.SavePrintSheet(c.Request.Context(), request)
	if err != nil {
		data.Error = errorMessage(err)
		c.HTML(statusFor(err), render.PreviewPage, data)
		return
	}

	c.Redirect(http.StatusSeeOther, printURL(id)+"?autoprint=1")
}

// PrintSheet renders a stored print sheet as a standalone document
func (h *Handler) PrintSheet(c *gin.Context) {
	if !h.htmlReady(c) {
		return
	}

	sheet, err := h.cardService.LoadPrintSheet(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.String(statusFor(err), errorMessage(err))
		return
	}

	c.HTML(http.StatusOK, render.PrintPage, render.PrintData{
		Sheet:     sheet,
		AutoPrint: c.Query("autoprint") == "1",
	})
}

// ClassifyCards returns the classification, warnings and summary for a set of rows
func (h *Handler) ClassifyCards(c *gin.Context) {
	sheet, ok := h.bindAndBuild(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"competitor":     sheet.Competitor,
		"checkDate":      sheet.CheckDate,
		"classification": sheet.Classification,
		"warnings":       sheet.Warnings,
		"summary":        sheet.Summary,
	})
}

// PaginateCards returns the printable pages for a set of rows
func (h *Handler) PaginateCards(c *gin.Context) {
	sheet, ok := h.bindAndBuild(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pages":   sheet.Pages,
		"summary": sheet.Summary,
	})
}

// CreatePrintSheet stores a print sheet and returns its id and print URL
func (h *Handler) CreatePrintSheet(c *gin.Context) {
	if !h.serviceReady(c) {
		return
	}

	var request domain.SheetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, bindError(err))
		return
	}

	id, err := h.cardService.SavePrintSheet(c.Request.Context(), &request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":  id,
		"url": printURL(id),
	})
}

// GetPrintSheet returns a stored print sheet as JSON
func (h *Handler) GetPrintSheet(c *gin.Context) {
	if !h.serviceReady(c) {
		return
	}

	sheet, err := h.cardService.LoadPrintSheet(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sheet)
}

func (h *Handler) bindAndBuild(c *gin.Context) (*domain.CardSheet, bool) {
	if !h.serviceReady(c) {
		return nil, false
	}

	var request domain.SheetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, bindError(err))
		return nil, false
	}

	sheet, err := h.cardService.BuildSheet(c.Request.Context(), &request)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return sheet, true
}

func (h *Handler) serviceReady(c *gin.Context) bool {
	if h.cardService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Card service not configured",
		})
		return false
	}
	return true
}

func (h *Handler) htmlReady(c *gin.Context) bool {
	if !h.serviceReady(c) {
		return false
	}
	if h.renderer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Page renderer not configured",
		})
		return false
	}
	return true
}

func (h *Handler) newFormView() render.FormView {
	return render.FormView{
		Competitors: h.cardService.Competitors(),
		Competitor:  firstOrEmpty(h.cardService.Competitors()),
		CheckDate:   h.cardService.Today().String(),
		StoreLabel:  h.cardService.StoreLabel(),
		MaxRows:     h.cards.MaxRows,
	}
}

func printURL(id string) string {
	return "/print/" + id
}

func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
