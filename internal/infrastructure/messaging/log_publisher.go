package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/OwaisQuadri/Musharakaat/internal/domain/event"
)

// LogEventPublisher implements port.EventPublisher by writing events to the structured log.
// It is used when no Kafka brokers are configured and by the command line tool.
type LogEventPublisher struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogEventPublisher creates a publisher logging each event at level.
func NewLogEventPublisher(logger *slog.Logger, level slog.Level) *LogEventPublisher {
	return &LogEventPublisher{logger: logger, level: level}
}

// Publish logs each event with its JSON payload.
func (p *LogEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}

		p.logger.Log(ctx, p.level, "domain event",
			"event_type", evt.EventType(),
			"event_id", evt.EventID(),
			"aggregate_id", evt.AggregateID(),
			"payload", json.RawMessage(payload),
		)
	}
	return nil
}
