package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/OwaisQuadri/Musharakaat/internal/application/dto"
	"github.com/OwaisQuadri/Musharakaat/internal/domain/event"
	"github.com/OwaisQuadri/Musharakaat/internal/domain/model"
	"github.com/OwaisQuadri/Musharakaat/internal/domain/port"
	"github.com/OwaisQuadri/Musharakaat/internal/domain/valueobject"
	"github.com/OwaisQuadri/Musharakaat/pkg/money"
)

// SummaryDateLayout is how completion dates appear in quote summaries.
const SummaryDateLayout = "Jan 2, 2006"

// QuoteFinancingUseCase estimates the level monthly payment for a prospective listing and
// simulates the schedule it produces.
type QuoteFinancingUseCase struct {
	publisher port.EventPublisher
	clock     port.Clock
	validate  *validator.Validate
}

// NewQuoteFinancingUseCase wires dependencies.
func NewQuoteFinancingUseCase(
	publisher port.EventPublisher,
	clock port.Clock,
	validate *validator.Validate,
) *QuoteFinancingUseCase {
	return &QuoteFinancingUseCase{
		publisher: publisher,
		clock:     clock,
		validate:  validate,
	}
}

// Execute quotes a financing starting now and running for the requested term.
func (uc *QuoteFinancingUseCase) Execute(
	ctx context.Context,
	req dto.QuoteRequest,
) (dto.QuoteResponse, error) {
	now := uc.clock.Now()

	// 1. Validate input.
	if err := validateRequest(uc.validate, req); err != nil {
		return dto.QuoteResponse{}, err
	}
	terms, err := parseTerms(req.FinancingTerms)
	if err != nil {
		return dto.QuoteResponse{}, err
	}
	unit, err := valueobject.NewTermUnit(req.TermUnit)
	if err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	term, err := valueobject.NewTerm(req.TermCount, unit)
	if err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	// 2. Open the listing.
	listing, err := model.NewListing(terms.title, terms.value, terms.rentPrice, terms.currency, terms.seller, now)
	if err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("open listing: %w", err)
	}

	// 3. Estimate and simulate.
	end := term.EndDate(now)
	level, err := listing.EstimatedMonthlyPayment(now, end, terms.downPayment)
	if err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("estimate payment: %w", err)
	}
	var schedule []model.ScheduleEntry
	if level.IsPositive() {
		schedule, err = listing.SimulateSchedule(now, end, level, terms.downPayment)
		if err != nil {
			return dto.QuoteResponse{}, fmt.Errorf("simulate schedule: %w", err)
		}
	}

	completesOn := now
	if len(schedule) > 0 {
		completesOn = schedule[len(schedule)-1].Date
	}

	// 4. Publish events.
	quoted := event.NewFinancingQuoted(
		listing.ID(), listing.Title(), terms.value, terms.currency.Code(),
		terms.downPayment, level, len(schedule), completesOn, now,
	)
	if err := uc.publisher.Publish(ctx, quoted); err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("publish events: %w", err)
	}

	levelMoney := money.New(level, terms.currency)
	return dto.QuoteResponse{
		ListingID:    listing.ID().String(),
		Title:        listing.Title(),
		Currency:     terms.currency.Code(),
		Value:        terms.value,
		DownPayment:  terms.downPayment,
		RentPrice:    terms.rentPrice,
		Term:         term.String(),
		StartDate:    now,
		EndDate:      end,
		LevelPayment: levelMoney.RoundCents().Amount(),
		Periods:      len(schedule),
		CompletesOn:  completesOn,
		Summary:      Summary(len(schedule), levelMoney, completesOn),
		Schedule:     toScheduleRows(schedule),
	}, nil
}

// Summary renders the one-line description shown above a schedule.
func Summary(periods int, level money.Money, completesOn time.Time) string {
	return fmt.Sprintf("It will take approx. %d payments of %s to complete your musharakah financing by %s.",
		periods, level, completesOn.Format(SummaryDateLayout))
}

func toScheduleRows(schedule []model.ScheduleEntry) []dto.ScheduleRowResponse {
	rows := make([]dto.ScheduleRowResponse, 0, len(schedule))
	for _, e := range schedule {
		total := e.Payment.Round(2)
		rent := e.RentPortion.Round(2)
		rows = append(rows, dto.ScheduleRowResponse{
			Period:        e.Period,
			Date:          e.Date,
			RentPortion:   rent,
			EquityPortion: total.Sub(rent),
			Total:         total,
			EquityRetired: e.EquityRetired.Round(4),
		})
	}
	return rows
}
