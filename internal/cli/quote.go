package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/OwaisQuadri/Musharakaat/internal/application/dto"
	"github.com/OwaisQuadri/Musharakaat/internal/application/usecase"
	"github.com/OwaisQuadri/Musharakaat/internal/domain/valueobject"
)

type quoteFlags struct {
	title       string
	value       string
	currency    string
	downPayment string
	rentRate    string
	term        int
	unit        string
	asJSON      bool
}

func newQuoteCommand(uc *usecase.QuoteFinancingUseCase) *cobra.Command {
	var f quoteFlags

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Estimate the level monthly payment and schedule for a listing",
		Example: `  # One year on a 1,000 CAD listing at 1% monthly rent
  musharakah quote --value 1000 --rent-rate 0.01 --term 12 --unit months

  # Twenty five years with a down payment, as JSON
  musharakah quote --title "Semi in Leslieville" --value 950,000 --down-payment 190,000 \
    --rent-rate 0.004 --term 25 --unit years --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := uc.Execute(cmd.Context(), dto.QuoteRequest{
				FinancingTerms: dto.FinancingTerms{
					Title:       f.title,
					Value:       f.value,
					Currency:    f.currency,
					DownPayment: f.downPayment,
					RentRate:    f.rentRate,
				},
				TermCount: f.term,
				TermUnit:  f.unit,
			})
			if err != nil {
				return err
			}

			if f.asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			return renderQuote(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&f.title, "title", "Listing", "listing title")
	cmd.Flags().StringVar(&f.value, "value", "", "listing value, thousands separators allowed [REQUIRED]")
	cmd.Flags().StringVar(&f.currency, "currency", "CAD", "currency code (CAD, USD, GBP)")
	cmd.Flags().StringVar(&f.downPayment, "down-payment", "", "down payment paid at signing")
	cmd.Flags().StringVar(&f.rentRate, "rent-rate", "0.01", "monthly rent as a fraction of the value")
	cmd.Flags().IntVar(&f.term, "term", 25, "length of the financing")
	cmd.Flags().StringVar(&f.unit, "unit", valueobject.TermUnitYear.String(), "term unit (month or year)")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print the quote as JSON")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func renderQuote(w io.Writer, resp dto.QuoteResponse) error {
	if _, err := fmt.Fprintln(w, resp.Summary); err != nil {
		return err
	}
	if len(resp.Schedule) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tDATE\tRENT\tEQUITY\tTOTAL\tRETIRED\t")
	for _, row := range resp.Schedule {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s%%\t\n",
			row.Period,
			row.Date.Format(usecase.SummaryDateLayout),
			row.RentPortion.StringFixed(2),
			row.EquityPortion.StringFixed(2),
			row.Total.StringFixed(2),
			row.EquityRetired.Shift(2).StringFixed(2),
		)
	}
	return tw.Flush()
}
