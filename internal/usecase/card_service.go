package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brandyemurray/compare-and-save/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CardServiceConfig holds configuration for the card service
type CardServiceConfig struct {
	PageSize    int
	StoreLabel  string
	Competitors []string
	SheetTTL    time.Duration
	// Now is used to default the price check date; tests override it.
	Now func() time.Time
}

// CardService builds card sheets from entered rows and keeps print sheets
// around long enough to open a print-only view
type CardService struct {
	cache       domain.CacheRepository
	logger      *zap.Logger
	pageSize    int
	storeLabel  string
	competitors []string
	sheetTTL    time.Duration
	now         func() time.Time
}

// NewCardService creates a new card service with dependencies
func NewCardService(
	cache domain.CacheRepository,
	logger *zap.Logger,
	config CardServiceConfig,
) *CardService {
	if logger == nil {
		logger = zap.NewNop()
	}

	pageSize := config.PageSize
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}

	storeLabel := strings.TrimSpace(config.StoreLabel)
	if storeLabel == "" {
		storeLabel = "Super 1"
	}

	sheetTTL := config.SheetTTL
	if sheetTTL == 0 {
		sheetTTL = time.Hour
	}

	now := config.Now
	if now == nil {
		now = time.Now
	}

	return &CardService{
		cache:       cache,
		logger:      logger,
		pageSize:    pageSize,
		storeLabel:  storeLabel,
		competitors: append([]string(nil), config.Competitors...),
		sheetTTL:    sheetTTL,
		now:         now,
	}
}

// Competitors returns the configured competitor choices
func (s *CardService) Competitors() []string {
	return append([]string(nil), s.competitors...)
}

// StoreLabel returns the name printed above the store's own price
func (s *CardService) StoreLabel() string {
	return s.storeLabel
}

// Today returns the default price check date
func (s *CardService) Today() domain.Date {
	return domain.NewDate(s.now())
}

// BuildSheet classifies, decorates and paginates the rows of a request.
// Flow: normalize -> classify -> build card views -> warnings -> paginate
func (s *CardService) BuildSheet(ctx context.Context, request *domain.SheetRequest) (*domain.CardSheet, error) {
	if request == nil {
		return nil, domain.ErrInvalidRequest
	}

	req := s.normalize(request)

	classification := Classify(req.Rows)
	if len(classification.Valid)+len(classification.DNC)+len(classification.Incomplete) == 0 {
		return nil, domain.ErrNoProducts
	}

	classification = DecorateCards(classification, CardContext{
		Competitor: req.Competitor,
		CheckDate:  req.CheckDate.Time,
		StoreLabel: s.storeLabel,
	})

	warnings := PricingWarnings(req.Rows, req.Competitor, s.storeLabel)
	if len(warnings) > 0 {
		s.logger.Warn("products priced above competitor",
			zap.String("competitor", req.Competitor),
			zap.Int("count", len(warnings)))
	}

	pages := Paginate(classification.Valid, classification.DNC, req.PageSize)

	s.logger.Debug("card sheet built",
		zap.String("competitor", req.Competitor),
		zap.Int("valid", len(classification.Valid)),
		zap.Int("dnc", len(classification.DNC)),
		zap.Int("incomplete", len(classification.Incomplete)),
		zap.Int("pages", len(pages)))

	return &domain.CardSheet{
		Competitor:     req.Competitor,
		CheckDate:      FormatCheckDate(req.CheckDate.Time),
		Classification: classification,
		Warnings:       warnings,
		Pages:          pages,
		Summary: domain.SheetSummary{
			ValidCount:      len(classification.Valid),
			DNCCount:        len(classification.DNC),
			IncompleteCount: len(classification.Incomplete),
			TotalCards:      len(classification.Valid) + len(classification.DNC),
			PageCount:       len(pages),
		},
	}, nil
}

// SavePrintSheet stores a request for the print-only view and returns its id.
// The request is validated by building it once; the sheet itself is rebuilt on load.
func (s *CardService) SavePrintSheet(ctx context.Context, request *domain.SheetRequest) (string, error) {
	if _, err := s.BuildSheet(ctx, request); err != nil {
		return "", err
	}

	id := uuid.NewString()
	req := s.normalize(request)
	if err := s.cache.Set(ctx, printSheetKey(id), req, s.sheetTTL); err != nil {
		return "", fmt.Errorf("store print sheet: %w", err)
	}

	s.logger.Debug("print sheet stored", zap.String("id", id), zap.Duration("ttl", s.sheetTTL))
	return id, nil
}

// LoadPrintSheet rebuilds a stored print sheet
func (s *CardService) LoadPrintSheet(ctx context.Context, id string) (*domain.CardSheet, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrSheetNotFound
	}

	value, err := s.cache.Get(ctx, printSheetKey(id))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.ErrSheetNotFound
		}
		return nil, fmt.Errorf("load print sheet: %w", err)
	}

	req, err := decodeSheetRequest(value)
	if err != nil {
		return nil, fmt.Errorf("load print sheet: %w", err)
	}

	return s.BuildSheet(ctx, req)
}

// normalize returns a copy of the request with defaults applied and
// prices clamped to zero. The caller's request is not modified.
func (s *CardService) normalize(request *domain.SheetRequest) *domain.SheetRequest {
	req := &domain.SheetRequest{
		Competitor: strings.TrimSpace(request.Competitor),
		CheckDate:  request.CheckDate,
		PageSize:   request.PageSize,
		Rows:       make([]domain.ProductRow, len(request.Rows)),
	}

	if req.Competitor == "" && len(s.competitors) > 0 {
		req.Competitor = s.competitors[0]
	}
	if req.CheckDate.IsZero() {
		req.CheckDate = s.Today()
	}
	if req.PageSize <= 0 {
		req.PageSize = s.pageSize
	}

	for i, row := range request.Rows {
		row.Name = strings.TrimSpace(row.Name)
		row.ReferencePrice = nonNegative(row.ReferencePrice)
		row.CompetitorPrice = nonNegative(row.CompetitorPrice)
		if row.Carries == "" {
			row.Carries = domain.CarriesYes
		}
		req.Rows[i] = row
	}

	return req
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// printSheetKey format: "printsheet:{uuid}"
func printSheetKey(id string) string {
	return "printsheet:" + id
}

// decodeSheetRequest accepts the request as stored directly or after the
// JSON round trip the memory cache performs
func decodeSheetRequest(value interface{}) (*domain.SheetRequest, error) {
	switch v := value.(type) {
	case *domain.SheetRequest:
		return v, nil
	case domain.SheetRequest:
		return &v, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var req domain.SheetRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
