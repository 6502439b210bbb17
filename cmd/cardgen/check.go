package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var errPricingWarnings = errors.New("pricing warnings found")

func checkCmd(a *app) *cobra.Command {
	var flags sheetFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report card counts and pricing warnings for a row file",
		Long: `Check classifies the rows the same way render does and lists the pages that
would print. It exits with an error when any carried product is priced
above the competitor, so it can gate a print job in a script.`,
		Example: `  cardgen check -i week.csv -c Winco`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sheet, err := a.buildSheet(cmd.Context(), flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSummary(out, sheet, a.cfg.Cards.StoreLabel)

			for _, page := range sheet.Pages {
				names := make([]string, 0, len(page.Rows))
				for _, row := range page.Rows {
					name := row.Row.Name
					if row.IsDNC() {
						name += " (DNC)"
					}
					names = append(names, name)
				}
				fmt.Fprintln(out, SubtleStyle.Render(fmt.Sprintf("Page %d: %s", page.Number, strings.Join(names, ", "))))
			}

			if len(sheet.Warnings) == 0 {
				fmt.Fprintln(out, SuccessStyle.Render("No pricing warnings"))
				return nil
			}

			lines := make([]string, 0, len(sheet.Warnings)+1)
			lines = append(lines, ErrorStyle.Render(fmt.Sprintf(
				"HOLD UP! %d product(s) have HIGHER %s prices than the competitor!",
				len(sheet.Warnings), a.cfg.Cards.StoreLabel,
			)))
			for _, w := range sheet.Warnings {
				lines = append(lines, "- "+w.Message)
			}
			fmt.Fprintln(out, BoxStyle.Render(strings.Join(lines, "\n")))

			return fmt.Errorf("%w: %d product(s)", errPricingWarnings, len(sheet.Warnings))
		},
	}

	flags.register(cmd)

	return cmd
}
