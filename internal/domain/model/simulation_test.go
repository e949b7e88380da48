package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OwaisQuadri/Musharakaat/internal/domain/calendar"
)

func TestSimulateSchedule_RetiresEquity(t *testing.T) {
	l := newTestListing(t)
	end := calendar.AddMonths(quoteStart, 12)
	level, err := l.EstimatedMonthlyPayment(quoteStart, end, d("0"))
	require.NoError(t, err)

	schedule, err := l.SimulateSchedule(quoteStart, end, level, d("0"))
	require.NoError(t, err)

	// The linear rent approximation overestimates rent, so the level payment
	// retires slightly less than 1/12 of the asset each month and a small
	// final instalment is left for a thirteenth period.
	require.Len(t, schedule, 13)

	first := schedule[0]
	assert.Equal(t, 1, first.Period)
	assert.Equal(t, calendar.AddMonths(quoteStart, 1), first.Date)
	assertDecimal(t, "10", first.RentPortion)
	assertDecimal(t, "78.3333333333333333", first.EquityPortion)
	assert.True(t, first.Payment.Equal(first.RentPortion.Add(first.EquityPortion)))

	for i, row := range schedule[:12] {
		assert.True(t, row.Payment.Equal(level), "row %d", i+1)
		assert.Equal(t, calendar.AddMonths(quoteStart, i+1), row.Date)
		if i > 0 {
			assert.True(t, row.EquityRetired.GreaterThan(schedule[i-1].EquityRetired))
			assert.True(t, row.RentPortion.LessThan(schedule[i-1].RentPortion))
		}
	}

	last := schedule[12]
	assert.True(t, last.Payment.IsPositive())
	assert.True(t, last.Payment.LessThan(level))
	assertDecimal(t, "1", last.EquityRetired)
}

func TestSimulateSchedule_DownPaymentShortensSchedule(t *testing.T) {
	l := newTestListing(t)
	end := calendar.AddMonths(quoteStart, 12)

	schedule, err := l.SimulateSchedule(quoteStart, end, d("100"), d("500"))
	require.NoError(t, err)

	require.NotEmpty(t, schedule)
	assertDecimal(t, "5", schedule[0].RentPortion)
	assertDecimal(t, "1", schedule[len(schedule)-1].EquityRetired)
	assert.Less(t, len(schedule), 7)
}

func TestSimulateSchedule_FullDownPaymentHasNoRows(t *testing.T) {
	l := newTestListing(t)

	schedule, err := l.SimulateSchedule(quoteStart, calendar.AddMonths(quoteStart, 12), d("100"), d("1000"))
	require.NoError(t, err)
	assert.Empty(t, schedule)
}

func TestSimulateSchedule_Errors(t *testing.T) {
	l := newTestListing(t)
	end := calendar.AddMonths(quoteStart, 12)

	_, err := l.SimulateSchedule(quoteStart, end, d("0"), d("0"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = l.SimulateSchedule(quoteStart, end, d("100"), d("-1"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = l.SimulateSchedule(quoteStart, quoteStart.AddDate(0, -1, 0), d("100"), d("0"))
	assert.ErrorIs(t, err, ErrInvalidTerm)
}

func TestSimulateSchedule_PaymentBelowRentDiverges(t *testing.T) {
	l := newTestListing(t)

	_, err := l.SimulateSchedule(quoteStart, calendar.AddMonths(quoteStart, 12), d("5"), d("0"))
	assert.ErrorIs(t, err, ErrScheduleDiverges)
}

func TestSimulateSchedule_LeavesListingUntouched(t *testing.T) {
	l := newTestListing(t)
	require.NoError(t, l.MakePayment(NewPayment(d("4"), day0)))
	invoicesBefore := l.Invoices()
	eventsBefore := len(l.Events())

	_, err := l.SimulateSchedule(quoteStart, calendar.AddMonths(quoteStart, 12), d("90"), d("200"))
	require.NoError(t, err)

	assert.Equal(t, invoicesBefore, l.Invoices())
	assert.Empty(t, l.EquityPayments())
	assert.Empty(t, l.OnHoldPayments())
	assert.Len(t, l.Events(), eventsBefore)
}
