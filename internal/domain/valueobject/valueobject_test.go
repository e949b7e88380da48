package valueobject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceStatus_RoundTrip(t *testing.T) {
	for _, s := range []InvoiceStatus{InvoiceStatusOpen, InvoiceStatusClosed} {
		parsed, err := NewInvoiceStatus(s.String())
		require.NoError(t, err)
		assert.True(t, parsed.Equal(s))
	}

	_, err := NewInvoiceStatus("PAID")
	assert.Error(t, err)
	assert.True(t, InvoiceStatus{}.IsZero())
}

func TestInvoiceStanding_RoundTrip(t *testing.T) {
	for _, s := range []InvoiceStanding{InvoiceStandingRentOnly, InvoiceStandingRentAndEquity, InvoiceStandingLate} {
		parsed, err := NewInvoiceStanding(s.String())
		require.NoError(t, err)
		assert.True(t, parsed.Equal(s))
	}

	_, err := NewInvoiceStanding("rentOnly")
	assert.Error(t, err)
	assert.False(t, InvoiceStandingLate.Equal(InvoiceStandingRentOnly))
}

func TestListingStatus_RoundTrip(t *testing.T) {
	for _, s := range []ListingStatus{
		ListingStatusDraft, ListingStatusLookingForBuyer, ListingStatusInProgress, ListingStatusClosed,
	} {
		parsed, err := NewListingStatus(s.String())
		require.NoError(t, err)
		assert.True(t, parsed.Equal(s))
	}

	_, err := NewListingStatus("SOLD")
	assert.Error(t, err)
}

func TestNewTermUnit(t *testing.T) {
	tests := []struct {
		input string
		want  TermUnit
	}{
		{"month", TermUnitMonth},
		{"Months", TermUnitMonth},
		{" YEAR ", TermUnitYear},
		{"years", TermUnitYear},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewTermUnit(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
		})
	}

	_, err := NewTermUnit("week")
	assert.ErrorIs(t, err, ErrInvalidTermUnit)
}

func TestTermUnit_Label(t *testing.T) {
	assert.Equal(t, "month", TermUnitMonth.Label(1))
	assert.Equal(t, "months", TermUnitMonth.Label(12))
	assert.Equal(t, "years", TermUnitYear.Label(0))
}

func TestNewTerm(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		term, err := NewTerm(12, TermUnitMonth)
		require.NoError(t, err)
		assert.Equal(t, 12, term.Count())
		assert.True(t, term.Unit().Equal(TermUnitMonth))
		assert.Equal(t, "12 months", term.String())
	})

	t.Run("zero count", func(t *testing.T) {
		_, err := NewTerm(0, TermUnitYear)
		assert.Error(t, err)
	})

	t.Run("missing unit", func(t *testing.T) {
		_, err := NewTerm(3, TermUnit{})
		assert.ErrorIs(t, err, ErrInvalidTermUnit)
	})
}

func TestTerm_EndDate(t *testing.T) {
	start := time.Date(2024, 10, 12, 9, 30, 0, 0, time.UTC)

	months, err := NewTerm(18, TermUnitMonth)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 12, 9, 30, 0, 0, time.UTC), months.EndDate(start))

	years, err := NewTerm(1, TermUnitYear)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 12, 9, 30, 0, 0, time.UTC), years.EndDate(start))
}
