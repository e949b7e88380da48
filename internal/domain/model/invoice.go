package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/OwaisQuadri/Musharakaat/internal/domain/calendar"
	"github.com/OwaisQuadri/Musharakaat/internal/domain/valueobject"
)

// Invoice is one monthly billing cycle of a listing.
//
// The amount due is not stored: it is the listing's rent scaled by the seller's equity share
// at the moment of the query, so the derived methods take that share as an argument.
type Invoice struct {
	id        uuid.UUID
	listingID uuid.UUID
	rentPrice decimal.Decimal
	dueDate   time.Time
	payments  []Payment
	status    valueobject.InvoiceStatus
	standing  valueobject.InvoiceStanding
}

func newInvoice(listingID uuid.UUID, rentPrice decimal.Decimal, dueDate time.Time, standing valueobject.InvoiceStanding) *Invoice {
	return &Invoice{
		id:        uuid.New(),
		listingID: listingID,
		rentPrice: rentPrice,
		dueDate:   dueDate,
		status:    valueobject.InvoiceStatusOpen,
		standing:  standing,
	}
}

// ---------------------------------------------------------------------------
// Derived amounts
// ---------------------------------------------------------------------------

// TotalAmountDue is the rent owed for this cycle at the given seller equity share.
func (i Invoice) TotalAmountDue(equityPercent decimal.Decimal) decimal.Decimal {
	return i.rentPrice.Mul(equityPercent)
}

// AmountPaid sums the payments applied to this invoice.
func (i Invoice) AmountPaid() decimal.Decimal {
	return sumPayments(i.payments)
}

// RemainingAmountDue is negative when the invoice has been overpaid.
func (i Invoice) RemainingAmountDue(equityPercent decimal.Decimal) decimal.Decimal {
	return i.TotalAmountDue(equityPercent).Sub(i.AmountPaid())
}

// IsPaid reports whether the applied payments cover the amount due.
func (i Invoice) IsPaid(equityPercent decimal.Decimal) bool {
	return i.AmountPaid().GreaterThanOrEqual(i.TotalAmountDue(equityPercent))
}

// AmountIntoEquity is the overpayment on a cycle in good standing. Rent-only cycles never
// contribute to equity.
func (i Invoice) AmountIntoEquity(equityPercent decimal.Decimal) decimal.Decimal {
	if i.standing.Equal(valueobject.InvoiceStandingRentOnly) {
		return decimal.Zero
	}
	remaining := i.RemainingAmountDue(equityPercent)
	if remaining.IsPositive() {
		return decimal.Zero
	}
	return remaining.Neg()
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// Close stops the invoice from accepting payments. A cycle whose due date falls on an earlier
// day than asOf is closed as late; closing on the due date itself is on time. Closing an
// already closed invoice changes nothing.
func (i *Invoice) Close(asOf time.Time) {
	if i.IsClosed() {
		return
	}
	i.status = valueobject.InvoiceStatusClosed
	if i.dueDate.Before(calendar.StartOfDay(asOf)) {
		i.standing = valueobject.InvoiceStandingLate
	}
}

func (i *Invoice) markLate() {
	i.standing = valueobject.InvoiceStandingLate
}

func (i *Invoice) apply(p Payment) {
	i.payments = append(i.payments, p)
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (i Invoice) ID() uuid.UUID                         { return i.id }
func (i Invoice) ListingID() uuid.UUID                  { return i.listingID }
func (i Invoice) DueDate() time.Time                    { return i.dueDate }
func (i Invoice) Status() valueobject.InvoiceStatus     { return i.status }
func (i Invoice) Standing() valueobject.InvoiceStanding { return i.standing }

// IsOpen reports whether the invoice still accepts payments.
func (i Invoice) IsOpen() bool { return i.status.Equal(valueobject.InvoiceStatusOpen) }

// IsClosed reports whether the invoice was closed.
func (i Invoice) IsClosed() bool { return i.status.Equal(valueobject.InvoiceStatusClosed) }

// Payments returns a copy of the applied payments in the order they were received.
func (i Invoice) Payments() []Payment {
	out := make([]Payment, len(i.payments))
	copy(out, i.payments)
	return out
}

func (i *Invoice) snapshot() Invoice {
	cp := *i
	cp.payments = i.Payments()
	return cp
}
