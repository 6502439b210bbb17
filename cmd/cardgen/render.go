package main

import (
	"fmt"
	"io"
	"os"

	"github.com/brandyemurray/compare-and-save/internal/infrastructure/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func renderCmd(a *app) *cobra.Command {
	var (
		flags     sheetFlags
		output    string
		autoPrint bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the print-only HTML document for a row file",
		Long: `Render builds the comparison cards for every row in the input file and writes
a standalone HTML document with one page per four cards. Open it in a
browser to print or save as PDF.

Pricing warnings are reported but never stop the cards from printing.`,
		Example: `  cardgen render -i week.csv -c Winco -o cards.html
  cardgen render -i week.yaml -c "Safeway/Albertsons" -d 2025-03-04 > cards.html`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sheet, err := a.buildSheet(cmd.Context(), flags)
			if err != nil {
				return err
			}

			renderer, err := render.New()
			if err != nil {
				return err
			}

			var out io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer func() {
					if closeErr := f.Close(); closeErr != nil {
						a.logger.Error("failed to close output file", zap.Error(closeErr))
					}
				}()
				out = f
			}

			if err := renderer.WritePrintDocument(out, sheet, autoPrint); err != nil {
				return fmt.Errorf("failed to write cards: %w", err)
			}

			status := cmd.ErrOrStderr()
			printSummary(status, sheet, a.cfg.Cards.StoreLabel)
			if n := len(sheet.Warnings); n > 0 {
				fmt.Fprintln(status, ErrorStyle.Render(fmt.Sprintf(
					"HOLD UP! %d product(s) have HIGHER %s prices than the competitor. Run 'cardgen check' for details.",
					n, a.cfg.Cards.StoreLabel,
				)))
			}
			if output != "" && output != "-" {
				fmt.Fprintln(status, SubtleStyle.Render("Wrote "+output))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&autoPrint, "autoprint", false, "open the print dialog when the document loads")

	return cmd
}
