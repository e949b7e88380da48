package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OwaisQuadri/Musharakaat/internal/domain/event"
)

func TestLogEventPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	publisher := NewLogEventPublisher(logger, slog.LevelInfo)

	listingID := uuid.New()
	evt := event.NewInvoiceIssued(listingID, uuid.New(), time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), "RENT_ONLY", time.Now())

	require.NoError(t, publisher.Publish(context.Background(), evt))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "domain event", record["msg"])
	assert.Equal(t, event.TypeInvoiceIssued, record["event_type"])
	assert.Equal(t, listingID.String(), record["aggregate_id"])

	payload, ok := record["payload"].(map[string]any)
	require.True(t, ok, "payload should be embedded as JSON")
	assert.Equal(t, "RENT_ONLY", payload["standing"])
}

func TestLogEventPublisher_BelowLevelIsSilent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	publisher := NewLogEventPublisher(logger, slog.LevelDebug)

	err := publisher.Publish(context.Background(),
		event.NewPaymentHeld(uuid.New(), uuid.New(), decimal.NewFromInt(5), time.Now()))

	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
