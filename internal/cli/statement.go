package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/OwaisQuadri/Musharakaat/internal/application/dto"
	"github.com/OwaisQuadri/Musharakaat/internal/application/usecase"
	"github.com/OwaisQuadri/Musharakaat/pkg/money"
)

func newStatementCommand(uc *usecase.GenerateStatementUseCase) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Replay a ledger of payments and billing cycles and print the invoices",
		Long: `Reads a statement request as JSON, from --file or standard input, opens the listing at
start_date and applies each operation in order.

  {
    "title": "Two bedroom condo", "value": "1000", "currency": "CAD", "rent_rate": "0.01",
    "start_date": "2024-03-01T10:00:00Z",
    "operations": [
      {"kind": "invoice", "date": "2024-04-05T10:00:00Z"},
      {"kind": "payment", "amount": "80", "date": "2024-04-05T10:00:00Z"}
    ]
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := cmd.InOrStdin()
			if file != "" && file != "-" {
				fh, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("open ledger: %w", err)
				}
				defer fh.Close()
				in = fh
			}

			var req dto.StatementRequest
			if err := json.NewDecoder(in).Decode(&req); err != nil {
				return fmt.Errorf("decode ledger: %w", err)
			}

			resp, err := uc.Execute(cmd.Context(), req)
			if err != nil {
				return err
			}
			return renderStatement(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "ledger JSON file, - for standard input")
	return cmd
}

func renderStatement(w io.Writer, resp dto.StatementResponse) error {
	fmt.Fprintf(w, "%s (%s)\n", resp.Title, resp.Status)
	currency, err := money.ParseSupportedCurrency(resp.Currency)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Seller equity: %s%%  Equity paid: %s  Held: %s\n\n",
		resp.SellerEquityPercent.Shift(2).StringFixed(2),
		money.New(resp.EquityPaid, currency),
		money.New(resp.HeldAmount, currency),
	)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DUE\tSTATUS\tSTANDING\tDUE AMOUNT\tPAID\tINTO EQUITY\t")
	for _, inv := range resp.Invoices {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			inv.DueDate.Format(usecase.SummaryDateLayout),
			inv.Status,
			inv.Standing,
			inv.AmountDue.StringFixed(2),
			inv.AmountPaid.StringFixed(2),
			inv.AmountIntoEquity.StringFixed(2),
		)
	}
	return tw.Flush()
}
