package event

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTypesAndAggregate(t *testing.T) {
	listingID := uuid.New()
	at := time.Date(2024, 10, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		event DomainEvent
		want  string
	}{
		{"created", NewListingCreated(listingID, "Condo", decimal.NewFromInt(1000), decimal.NewFromInt(10), "CAD", uuid.New(), at), TypeListingCreated},
		{"issued", NewInvoiceIssued(listingID, uuid.New(), at, "RENT_ONLY", at), TypeInvoiceIssued},
		{"late", NewInvoiceMarkedLate(listingID, uuid.New(), at, decimal.NewFromInt(10), at), TypeInvoiceMarkedLate},
		{"held", NewPaymentHeld(listingID, uuid.New(), decimal.NewFromInt(60), at), TypePaymentHeld},
		{"credited", NewEquityCredited(listingID, uuid.New(), decimal.NewFromInt(50), decimal.RequireFromString("0.95"), at), TypeEquityCredited},
		{"quoted", NewFinancingQuoted(listingID, "Condo", decimal.NewFromInt(1000), "CAD", decimal.Zero, decimal.NewFromInt(88), 13, at, at), TypeFinancingQuoted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.EventType())
			assert.Equal(t, listingID, tt.event.AggregateID())
			assert.Equal(t, "Listing", tt.event.AggregateType())
			assert.Equal(t, at, tt.event.OccurredAt())
			assert.NotEqual(t, uuid.Nil, tt.event.EventID())
		})
	}
}

func TestPaymentHeld_JSONIsFlat(t *testing.T) {
	evt := NewPaymentHeld(uuid.New(), uuid.New(), decimal.NewFromInt(60), time.Now())

	data, err := json.Marshal(evt)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, TypePaymentHeld, decoded["event_type"])
	assert.Equal(t, "60", decoded["amount"])
	assert.Contains(t, decoded, "payment_id")
}
