package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/OwaisQuadri/Musharakaat/internal/application/dto"
	"github.com/OwaisQuadri/Musharakaat/internal/domain/model"
	"github.com/OwaisQuadri/Musharakaat/internal/domain/port"
)

// GenerateStatementUseCase replays a ledger of payments and billing ticks against a freshly
// opened listing and reports the resulting invoices and equity.
type GenerateStatementUseCase struct {
	publisher port.EventPublisher
	validate  *validator.Validate
}

// NewGenerateStatementUseCase wires dependencies.
func NewGenerateStatementUseCase(
	publisher port.EventPublisher,
	validate *validator.Validate,
) *GenerateStatementUseCase {
	return &GenerateStatementUseCase{
		publisher: publisher,
		validate:  validate,
	}
}

// Execute applies the operations in request order.
func (uc *GenerateStatementUseCase) Execute(
	ctx context.Context,
	req dto.StatementRequest,
) (dto.StatementResponse, error) {
	// 1. Validate input.
	if err := validateRequest(uc.validate, req); err != nil {
		return dto.StatementResponse{}, err
	}
	terms, err := parseTerms(req.FinancingTerms)
	if err != nil {
		return dto.StatementResponse{}, err
	}
	buyer := uuid.New()
	if req.BuyerID != "" {
		if buyer, err = uuid.Parse(req.BuyerID); err != nil {
			return dto.StatementResponse{}, fmt.Errorf("%w: buyer_id: %v", model.ErrInvalidInput, err)
		}
	}
	amounts := make([]model.Payment, len(req.Operations))
	for i, op := range req.Operations {
		if op.Kind != dto.OperationPayment {
			continue
		}
		amount, err := parseAmount(fmt.Sprintf("operations[%d].amount", i), op.Amount)
		if err != nil {
			return dto.StatementResponse{}, err
		}
		if op.PaymentID == "" {
			amounts[i] = model.NewPayment(amount, op.Date)
			continue
		}
		id, err := uuid.Parse(op.PaymentID)
		if err != nil {
			return dto.StatementResponse{}, fmt.Errorf("%w: operations[%d].payment_id: %v", model.ErrInvalidInput, i, err)
		}
		amounts[i] = model.ReconstructPayment(id, amount, op.Date)
	}

	// 2. Open the listing with its buyer.
	listing, err := model.NewListing(terms.title, terms.value, terms.rentPrice, terms.currency, terms.seller, req.StartDate)
	if err != nil {
		return dto.StatementResponse{}, fmt.Errorf("open listing: %w", err)
	}
	listing.Publish()
	if err := listing.AssignBuyer(buyer); err != nil {
		return dto.StatementResponse{}, fmt.Errorf("assign buyer: %w", err)
	}
	if err := listing.MakeDownPayment(model.NewPayment(terms.downPayment, req.StartDate)); err != nil {
		return dto.StatementResponse{}, fmt.Errorf("down payment: %w", err)
	}

	// 3. Replay the ledger.
	for i, op := range req.Operations {
		switch op.Kind {
		case dto.OperationPayment:
			if err := listing.MakePayment(amounts[i]); err != nil {
				return dto.StatementResponse{}, fmt.Errorf("operation %d: %w", i, err)
			}
		case dto.OperationInvoice:
			listing.GenerateInvoice(op.Date)
		}
	}

	// 4. Publish events.
	if err := uc.publisher.Publish(ctx, listing.ClearEvents()...); err != nil {
		return dto.StatementResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toStatementResponse(listing), nil
}

func toStatementResponse(l *model.Listing) dto.StatementResponse {
	equity := l.SellerEquityPercent()
	invoices := l.Invoices()
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, dto.InvoiceResponse{
			ID:                 inv.ID().String(),
			DueDate:            inv.DueDate(),
			Status:             inv.Status().String(),
			Standing:           inv.Standing().String(),
			AmountDue:          inv.TotalAmountDue(equity).Round(2),
			AmountPaid:         inv.AmountPaid().Round(2),
			RemainingAmountDue: inv.RemainingAmountDue(equity).Round(2),
			AmountIntoEquity:   inv.AmountIntoEquity(equity).Round(2),
		})
	}
	return dto.StatementResponse{
		ListingID:           l.ID().String(),
		Title:               l.Title(),
		Currency:            l.Currency().Code(),
		Status:              l.Status().String(),
		SellerEquityPercent: equity.Round(4),
		EquityPaid:          l.EquityPaid().Round(2),
		RemainingPrincipal:  l.RemainingPrincipal().Round(2),
		HeldAmount:          l.HeldAmount().Round(2),
		Invoices:            out,
	}
}
