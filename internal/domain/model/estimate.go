package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/OwaisQuadri/Musharakaat/internal/domain/calendar"
)

// estimateMonth is the fixed month length used to turn a horizon into whole periods.
const estimateMonth = 30 * 24 * time.Hour

// MonthsBetween counts whole 30-day periods from the start of start's day up to end.
func MonthsBetween(start, end time.Time) int {
	return int(end.Sub(calendar.StartOfDay(start)) / estimateMonth)
}

// EstimatedMonthlyPayment returns the level payment that retires the seller's share between
// startDate and endDate, after an optional down payment.
//
// The estimate assumes rent decays linearly with the seller's share, so the total rent over
// the horizon is approximated by half the current rent per month:
//
//	total   = value*e + rent*e*months/2
//	payment = total / months
//
// The down payment is only applied to the computation; the listing is left untouched.
func (l *Listing) EstimatedMonthlyPayment(startDate, endDate time.Time, downPayment decimal.Decimal) (decimal.Decimal, error) {
	if downPayment.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: down payment must not be negative, got %s", ErrInvalidInput, downPayment)
	}
	months := MonthsBetween(startDate, endDate)
	if months <= 0 {
		return decimal.Zero, fmt.Errorf("%w: %s to %s is shorter than one month",
			ErrInvalidTerm, startDate.Format(time.DateOnly), endDate.Format(time.DateOnly))
	}

	e := equityPercent(l.value, l.EquityPaid().Add(downPayment))
	n := decimal.NewFromInt(int64(months))

	principalRemaining := l.value.Mul(e)
	remainingMaxRent := l.rentPrice.Mul(e)
	total := principalRemaining.Add(remainingMaxRent.Mul(n).Div(decimal.NewFromInt(2)))

	return total.Div(n), nil
}
