package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/OwaisQuadri/Musharakaat/internal/infrastructure/config"
	pkgkafka "github.com/OwaisQuadri/Musharakaat/pkg/kafka"
)

var errKafkaDisabled = errors.New("KAFKA_BROKERS is not set")

func newEventsCommand(cfg config.KafkaConfig, logger *slog.Logger) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Follow financing events published to Kafka",
		Long: `Prints one line per domain event published on KAFKA_TOPIC until interrupted.
Without --group only events published after start-up are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cfg.Enabled() {
				return errKafkaDisabled
			}
			consumerCfg := cfg.Producer()
			consumerCfg.ConsumerGroup = group

			out := cmd.OutOrStdout()
			consumer, err := pkgkafka.NewConsumer(consumerCfg, cfg.Topic, printEvent(out), logger)
			if err != nil {
				return err
			}
			defer consumer.Close()

			return consumer.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "consumer group, committing offsets as events are printed")
	return cmd
}

func printEvent(w io.Writer) pkgkafka.Handler {
	return func(_ context.Context, msg pkgkafka.Message) error {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			msg.Headers["occurred_at"],
			msg.Headers["event_type"],
			msg.Key,
			msg.Value,
		)
		return err
	}
}
