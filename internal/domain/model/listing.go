package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/OwaisQuadri/Musharakaat/internal/domain/calendar"
	"github.com/OwaisQuadri/Musharakaat/internal/domain/event"
	"github.com/OwaisQuadri/Musharakaat/internal/domain/valueobject"
	"github.com/OwaisQuadri/Musharakaat/pkg/events"
	"github.com/OwaisQuadri/Musharakaat/pkg/money"
)

// ---------------------------------------------------------------------------
// Listing aggregate root (diminishing partnership)
// ---------------------------------------------------------------------------

// Listing is an asset co-owned by a seller and a buyer. The buyer pays rent on the seller's
// remaining share plus equity purchases until the seller's share reaches zero.
//
// A Listing is mutable and owned by a single caller; it is not safe for concurrent use.
type Listing struct {
	events.EventCollector

	id        uuid.UUID
	title     string
	value     decimal.Decimal
	rentPrice decimal.Decimal
	currency  money.Currency
	seller    uuid.UUID
	buyer     uuid.UUID
	isDraft   bool
	createdAt time.Time

	invoices       []*Invoice
	onHoldPayments []Payment
	equityPayments []Payment
}

// NewListing validates the commercial terms and opens the first billing cycle as of asOf.
// The listing starts as a draft.
func NewListing(
	title string,
	value, rentPrice decimal.Decimal,
	currency money.Currency,
	seller uuid.UUID,
	asOf time.Time,
) (*Listing, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidListing)
	}
	if !value.IsPositive() {
		return nil, fmt.Errorf("%w: value must be positive, got %s", ErrInvalidListing, value)
	}
	if rentPrice.IsNegative() {
		return nil, fmt.Errorf("%w: rent price must not be negative, got %s", ErrInvalidListing, rentPrice)
	}
	if !currency.IsSupported() {
		return nil, fmt.Errorf("%w: unsupported currency %q", ErrInvalidListing, currency.Code())
	}

	l := &Listing{
		id:        uuid.New(),
		title:     title,
		value:     value,
		rentPrice: rentPrice,
		currency:  currency,
		seller:    seller,
		isDraft:   true,
		createdAt: asOf,
	}
	l.Record(event.NewListingCreated(l.id, title, value, rentPrice, currency.Code(), seller, asOf))
	l.GenerateInvoice(asOf)
	return l, nil
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

// Publish makes the listing visible to buyers.
func (l *Listing) Publish() {
	l.isDraft = false
}

// AssignBuyer records the counterparty buying out the seller.
func (l *Listing) AssignBuyer(buyer uuid.UUID) error {
	if buyer == uuid.Nil {
		return fmt.Errorf("%w: buyer id is required", ErrInvalidInput)
	}
	l.buyer = buyer
	return nil
}

// MakeDownPayment credits the payment straight to equity, bypassing invoices.
func (l *Listing) MakeDownPayment(p Payment) error {
	if p.amount.IsNegative() {
		return fmt.Errorf("%w: down payment must not be negative, got %s", ErrInvalidInput, p.amount)
	}
	if p.amount.IsZero() {
		return nil
	}
	l.creditEquity(p)
	return nil
}

// ---------------------------------------------------------------------------
// Invoicing engine
// ---------------------------------------------------------------------------

// GenerateInvoice opens the billing cycle that follows asOf and settles the cycle that has
// elapsed before it. A paid elapsed cycle is closed and the buyer stays in good standing; an
// unpaid one is marked late and the new cycle is rent-only. Payments held during a rent-only
// cycle are then replayed in arrival order. A cycle that is already open for the same due date
// is not issued again.
func (l *Listing) GenerateInvoice(asOf time.Time) {
	dueDate := calendar.StartOfDay(calendar.AddMonths(asOf, 1))
	if last := l.lastInvoice(); last != nil && last.dueDate.Equal(dueDate) {
		l.replayHeld()
		return
	}
	standing := valueobject.InvoiceStandingRentAndEquity

	if current := l.lastInvoiceDueBefore(asOf); current != nil {
		equity := l.SellerEquityPercent()
		if current.IsPaid(equity) {
			current.Close(asOf)
		} else {
			current.markLate()
			standing = valueobject.InvoiceStandingRentOnly
			l.Record(event.NewInvoiceMarkedLate(l.id, current.id, current.dueDate, current.RemainingAmountDue(equity), asOf))
		}
	}

	inv := newInvoice(l.id, l.rentPrice, dueDate, standing)
	l.invoices = append(l.invoices, inv)
	l.Record(event.NewInvoiceIssued(l.id, inv.id, dueDate, standing.String(), asOf))

	l.replayHeld()
}

func (l *Listing) replayHeld() {
	held := l.onHoldPayments
	l.onHoldPayments = nil
	for _, p := range held {
		l.allocate(p)
	}
}

// MakePayment allocates money to open invoices oldest first, splitting it so each invoice is
// satisfied before the next one is touched. Money left over buys equity, or is held back while
// the most recent cycle is rent-only. Held funds are folded into the allocation and consumed.
func (l *Listing) MakePayment(p Payment) error {
	if p.amount.IsNegative() {
		return fmt.Errorf("%w: payment must not be negative, got %s", ErrInvalidInput, p.amount)
	}
	if p.amount.IsZero() {
		return nil
	}
	l.allocate(p)
	return nil
}

func (l *Listing) allocate(p Payment) {
	equity := l.SellerEquityPercent()
	open := l.openInvoices(equity)

	pot := p.amount
	if len(l.onHoldPayments) > 0 {
		pot = pot.Add(sumPayments(l.onHoldPayments))
		l.onHoldPayments = nil
	}

	for _, inv := range open {
		if !pot.IsPositive() {
			break
		}
		due := inv.TotalAmountDue(equity)
		if pot.LessThanOrEqual(due) {
			if pot.Equal(p.amount) {
				inv.apply(p)
			} else {
				inv.apply(NewPayment(pot, p.date))
			}
			pot = decimal.Zero
		} else {
			inv.apply(NewPayment(due, p.date))
			pot = pot.Sub(due)
		}
		if inv.IsPaid(equity) {
			inv.Close(p.date)
		}
	}

	if !pot.IsPositive() {
		return
	}
	remainder := NewPayment(pot, p.date)
	if last := l.lastInvoice(); last != nil && last.standing.Equal(valueobject.InvoiceStandingRentOnly) {
		l.onHoldPayments = append(l.onHoldPayments, remainder)
		l.Record(event.NewPaymentHeld(l.id, remainder.id, remainder.amount, p.date))
		return
	}
	l.creditEquity(remainder)
}

func (l *Listing) creditEquity(p Payment) {
	l.equityPayments = append(l.equityPayments, p)
	l.Record(event.NewEquityCredited(l.id, p.id, p.amount, l.SellerEquityPercent(), p.date))
}

func (l *Listing) openInvoices(equity decimal.Decimal) []*Invoice {
	var open []*Invoice
	for _, inv := range l.invoices {
		if inv.IsOpen() && !inv.IsPaid(equity) {
			open = append(open, inv)
		}
	}
	return open
}

func (l *Listing) lastInvoiceDueBefore(asOf time.Time) *Invoice {
	for i := len(l.invoices) - 1; i >= 0; i-- {
		if l.invoices[i].dueDate.Before(asOf) {
			return l.invoices[i]
		}
	}
	return nil
}

func (l *Listing) lastInvoice() *Invoice {
	if len(l.invoices) == 0 {
		return nil
	}
	return l.invoices[len(l.invoices)-1]
}

// ---------------------------------------------------------------------------
// Equity queries
// ---------------------------------------------------------------------------

// SellerEquityPercent is the seller's remaining ownership fraction, from 1 down to 0.
func (l *Listing) SellerEquityPercent() decimal.Decimal {
	return equityPercent(l.value, l.EquityPaid())
}

func equityPercent(value, equityPaid decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.NewFromInt(1).Sub(equityPaid.Div(value)), decimal.Zero)
}

// EquityPaid sums every payment credited to equity, down payments included.
func (l *Listing) EquityPaid() decimal.Decimal {
	return sumPayments(l.equityPayments)
}

// RemainingPrincipal is the part of the value the buyer has not bought yet.
func (l *Listing) RemainingPrincipal() decimal.Decimal {
	return decimal.Max(l.value.Sub(l.EquityPaid()), decimal.Zero)
}

// HeldAmount sums the payments waiting for the buyer to return to good standing.
func (l *Listing) HeldAmount() decimal.Decimal {
	return sumPayments(l.onHoldPayments)
}

// Status derives the lifecycle stage from the draft flag, the buyer and the seller's share.
func (l *Listing) Status() valueobject.ListingStatus {
	switch {
	case l.isDraft:
		return valueobject.ListingStatusDraft
	case l.buyer == uuid.Nil:
		return valueobject.ListingStatusLookingForBuyer
	case !l.SellerEquityPercent().IsPositive():
		return valueobject.ListingStatusClosed
	default:
		return valueobject.ListingStatusInProgress
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l *Listing) ID() uuid.UUID              { return l.id }
func (l *Listing) Title() string              { return l.title }
func (l *Listing) Value() decimal.Decimal     { return l.value }
func (l *Listing) RentPrice() decimal.Decimal { return l.rentPrice }
func (l *Listing) Currency() money.Currency   { return l.currency }
func (l *Listing) Seller() uuid.UUID          { return l.seller }
func (l *Listing) Buyer() uuid.UUID           { return l.buyer }
func (l *Listing) IsDraft() bool              { return l.isDraft }
func (l *Listing) CreatedAt() time.Time       { return l.createdAt }

// Invoices returns snapshots of every billing cycle, oldest first.
func (l *Listing) Invoices() []Invoice {
	out := make([]Invoice, len(l.invoices))
	for i, inv := range l.invoices {
		out[i] = inv.snapshot()
	}
	return out
}

// EquityPayments returns a copy of the payments credited to equity.
func (l *Listing) EquityPayments() []Payment {
	out := make([]Payment, len(l.equityPayments))
	copy(out, l.equityPayments)
	return out
}

// OnHoldPayments returns a copy of the payments held during rent-only cycles.
func (l *Listing) OnHoldPayments() []Payment {
	out := make([]Payment, len(l.onHoldPayments))
	copy(out, l.onHoldPayments)
	return out
}
