package cli

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/OwaisQuadri/Musharakaat/internal/application/usecase"
	"github.com/OwaisQuadri/Musharakaat/internal/domain/port"
	"github.com/OwaisQuadri/Musharakaat/internal/infrastructure/config"
)

// Version is stamped at build time.
var Version = "dev"

// Options carries the collaborators shared by every command.
type Options struct {
	Logger    *slog.Logger
	Clock     port.Clock
	Publisher port.EventPublisher
	Kafka     config.KafkaConfig
}

// NewRootCommand builds the musharakah command tree.
func NewRootCommand(opts Options) *cobra.Command {
	validate := validator.New()
	quoteUC := usecase.NewQuoteFinancingUseCase(opts.Publisher, opts.Clock, validate)
	statementUC := usecase.NewGenerateStatementUseCase(opts.Publisher, validate)

	root := &cobra.Command{
		Use:   "musharakah",
		Short: "Quote and replay diminishing musharakah home financings",
		Long: `musharakah prices co-ownership home financings in which the buyer pays rent on the
seller's remaining share and buys that share out over time.

Use "quote" to estimate a level monthly payment and its schedule, "statement" to replay a
ledger of payments and billing cycles, and "events" to follow published domain events.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newQuoteCommand(quoteUC),
		newStatementCommand(statementUC),
		newEventsCommand(opts.Kafka, opts.Logger),
	)
	return root
}
