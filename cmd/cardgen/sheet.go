package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/brandyemurray/compare-and-save/internal/domain"
	"github.com/brandyemurray/compare-and-save/internal/infrastructure/rowfile"
	"github.com/brandyemurray/compare-and-save/internal/usecase"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sheetFlags select the rows and card settings shared by render and check
type sheetFlags struct {
	input      string
	competitor string
	date       string
	pageSize   int
}

func (f *sheetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "row file (.csv, .json, .yaml)")
	cmd.Flags().StringVarP(&f.competitor, "competitor", "c", "", "competitor name (default: first configured competitor)")
	cmd.Flags().StringVarP(&f.date, "date", "d", "", "price check date, YYYY-MM-DD (default: today)")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 0, "cards per page (default: cards.page_size)")
	_ = cmd.MarkFlagRequired("input")
}

func (a *app) buildSheet(ctx context.Context, flags sheetFlags) (*domain.CardSheet, error) {
	if flags.pageSize < 0 {
		return nil, fmt.Errorf("%w: page size must not be negative", domain.ErrInvalidRequest)
	}

	rows, err := rowfile.Read(flags.input)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("rows loaded", zap.String("input", flags.input), zap.Int("rows", len(rows)))

	request := &domain.SheetRequest{
		Competitor: flags.competitor,
		PageSize:   flags.pageSize,
		Rows:       rows,
	}
	if strings.TrimSpace(flags.date) != "" {
		date, err := domain.ParseDate(flags.date)
		if err != nil {
			return nil, err
		}
		request.CheckDate = date
	}

	service := usecase.NewCardService(nil, a.logger.Named("cards"), usecase.CardServiceConfig{
		PageSize:    a.cfg.Cards.PageSize,
		StoreLabel:  a.cfg.Cards.StoreLabel,
		Competitors: a.cfg.Cards.Competitors,
	})

	sheet, err := service.BuildSheet(ctx, request)
	if errors.Is(err, domain.ErrNoProducts) {
		return nil, fmt.Errorf("%w: add product rows to %s", err, flags.input)
	}
	return sheet, err
}

// printSummary writes the one-line card count and the incomplete row notice
func printSummary(w io.Writer, sheet *domain.CardSheet, storeLabel string) {
	s := sheet.Summary
	fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("%s Comparisons - %s", sheet.Competitor, sheet.CheckDate)))
	fmt.Fprintln(w, SuccessStyle.Render(fmt.Sprintf(
		"%d valid comparisons | %d items not carried | %d cards on %d page(s)",
		s.ValidCount, s.DNCCount, s.TotalCards, s.PageCount,
	)))

	if s.IncompleteCount > 0 {
		names := make([]string, 0, len(sheet.Classification.Incomplete))
		for _, row := range sheet.Classification.Incomplete {
			names = append(names, row.Name)
		}
		fmt.Fprintln(w, WarningStyle.Render(fmt.Sprintf(
			"%d product(s) are missing a %s price and will not print: %s",
			s.IncompleteCount, storeLabel, strings.Join(names, ", "),
		)))
	}
}
