package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/OwaisQuadri/Musharakaat/internal/domain/calendar"
)

// ScheduleEntry is one simulated billing period.
type ScheduleEntry struct {
	Period        int
	Date          time.Time
	Payment       decimal.Decimal
	RentPortion   decimal.Decimal
	EquityPortion decimal.Decimal
	// EquityRetired is the cumulative fraction of the asset bought after this payment.
	EquityRetired decimal.Decimal
}

// SimulateSchedule replays a level payment month by month until the seller's share is gone.
// The last payment is reduced to exactly what is left when that is less than the level
// payment.
//
// The simulation runs on a scratch listing with the same commercial terms opened at
// startDate; the receiver is never mutated. endDate is the intended horizon and is only
// checked against startDate: the schedule runs for as many periods as the level payment
// needs, which may differ from it.
func (l *Listing) SimulateSchedule(startDate, endDate time.Time, levelPayment, downPayment decimal.Decimal) ([]ScheduleEntry, error) {
	if !levelPayment.IsPositive() {
		return nil, fmt.Errorf("%w: level payment must be positive, got %s", ErrInvalidInput, levelPayment)
	}
	if downPayment.IsNegative() {
		return nil, fmt.Errorf("%w: down payment must not be negative, got %s", ErrInvalidInput, downPayment)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end %s is before start %s",
			ErrInvalidTerm, endDate.Format(time.DateOnly), startDate.Format(time.DateOnly))
	}

	scratch, err := NewListing(l.title, l.value, l.rentPrice, l.currency, l.seller, startDate)
	if err != nil {
		return nil, fmt.Errorf("open scratch listing: %w", err)
	}
	if err := scratch.MakeDownPayment(NewPayment(downPayment, startDate)); err != nil {
		return nil, err
	}

	var schedule []ScheduleEntry
	for period := 1; scratch.SellerEquityPercent().IsPositive(); period++ {
		if period > MaxSimulatedPeriods {
			return nil, fmt.Errorf("%w: %s per month still owes %s after %d periods",
				ErrScheduleDiverges, levelPayment.StringFixed(2), scratch.RemainingPrincipal().StringFixed(2), MaxSimulatedPeriods)
		}
		running := calendar.AddMonths(startDate, period)

		rent := scratch.SellerEquityPercent().Mul(scratch.rentPrice)
		payoff := rent.Add(scratch.RemainingPrincipal())
		amount := levelPayment
		if payoff.LessThan(levelPayment) {
			amount = payoff
		}

		if err := scratch.MakePayment(NewPayment(amount, running)); err != nil {
			return nil, err
		}
		scratch.GenerateInvoice(running)

		schedule = append(schedule, ScheduleEntry{
			Period:        period,
			Date:          running,
			Payment:       amount,
			RentPortion:   rent,
			EquityPortion: amount.Sub(rent),
			EquityRetired: decimal.NewFromInt(1).Sub(scratch.SellerEquityPercent()),
		})
	}
	return schedule, nil
}
