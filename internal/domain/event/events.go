package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/OwaisQuadri/Musharakaat/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

const aggregateListing = "Listing"

// Event type names published on the financing topic.
const (
	TypeListingCreated    = "financing.listing.created"
	TypeInvoiceIssued     = "financing.invoice.issued"
	TypeInvoiceMarkedLate = "financing.invoice.marked_late"
	TypePaymentHeld       = "financing.payment.held"
	TypeEquityCredited    = "financing.equity.credited"
	TypeFinancingQuoted   = "financing.quote.issued"
)

// ---------------------------------------------------------------------------
// Listing Events
// ---------------------------------------------------------------------------

// ListingCreated is raised when a listing is constructed with its commercial terms.
type ListingCreated struct {
	events.BaseEvent
	Title     string          `json:"title"`
	Value     decimal.Decimal `json:"value"`
	RentPrice decimal.Decimal `json:"rent_price"`
	Currency  string          `json:"currency"`
	SellerID  uuid.UUID       `json:"seller_id"`
}

func NewListingCreated(
	listingID uuid.UUID, title string,
	value, rentPrice decimal.Decimal, currency string,
	sellerID uuid.UUID, at time.Time,
) ListingCreated {
	return ListingCreated{
		BaseEvent: events.NewBaseEvent(TypeListingCreated, listingID, aggregateListing, at),
		Title:     title,
		Value:     value,
		RentPrice: rentPrice,
		Currency:  currency,
		SellerID:  sellerID,
	}
}

// InvoiceIssued is raised each time a billing cycle opens.
type InvoiceIssued struct {
	events.BaseEvent
	InvoiceID uuid.UUID `json:"invoice_id"`
	DueDate   time.Time `json:"due_date"`
	Standing  string    `json:"standing"`
}

func NewInvoiceIssued(listingID, invoiceID uuid.UUID, dueDate time.Time, standing string, at time.Time) InvoiceIssued {
	return InvoiceIssued{
		BaseEvent: events.NewBaseEvent(TypeInvoiceIssued, listingID, aggregateListing, at),
		InvoiceID: invoiceID,
		DueDate:   dueDate,
		Standing:  standing,
	}
}

// InvoiceMarkedLate is raised when an elapsed cycle is found unpaid.
type InvoiceMarkedLate struct {
	events.BaseEvent
	InvoiceID          uuid.UUID       `json:"invoice_id"`
	DueDate            time.Time       `json:"due_date"`
	RemainingAmountDue decimal.Decimal `json:"remaining_amount_due"`
}

func NewInvoiceMarkedLate(
	listingID, invoiceID uuid.UUID, dueDate time.Time, remaining decimal.Decimal, at time.Time,
) InvoiceMarkedLate {
	return InvoiceMarkedLate{
		BaseEvent:          events.NewBaseEvent(TypeInvoiceMarkedLate, listingID, aggregateListing, at),
		InvoiceID:          invoiceID,
		DueDate:            dueDate,
		RemainingAmountDue: remaining,
	}
}

// PaymentHeld is raised when excess money arrives during a rent-only cycle.
type PaymentHeld struct {
	events.BaseEvent
	PaymentID uuid.UUID       `json:"payment_id"`
	Amount    decimal.Decimal `json:"amount"`
}

func NewPaymentHeld(listingID, paymentID uuid.UUID, amount decimal.Decimal, at time.Time) PaymentHeld {
	return PaymentHeld{
		BaseEvent: events.NewBaseEvent(TypePaymentHeld, listingID, aggregateListing, at),
		PaymentID: paymentID,
		Amount:    amount,
	}
}

// EquityCredited is raised when money reduces the seller's share.
type EquityCredited struct {
	events.BaseEvent
	PaymentID           uuid.UUID       `json:"payment_id"`
	Amount              decimal.Decimal `json:"amount"`
	SellerEquityPercent decimal.Decimal `json:"seller_equity_percent"`
}

func NewEquityCredited(
	listingID, paymentID uuid.UUID, amount, equityPercent decimal.Decimal, at time.Time,
) EquityCredited {
	return EquityCredited{
		BaseEvent:           events.NewBaseEvent(TypeEquityCredited, listingID, aggregateListing, at),
		PaymentID:           paymentID,
		Amount:              amount,
		SellerEquityPercent: equityPercent,
	}
}

// ---------------------------------------------------------------------------
// Quote Events
// ---------------------------------------------------------------------------

// FinancingQuoted is raised after a level payment and schedule were computed for a prospect.
type FinancingQuoted struct {
	events.BaseEvent
	Title        string          `json:"title"`
	Value        decimal.Decimal `json:"value"`
	Currency     string          `json:"currency"`
	DownPayment  decimal.Decimal `json:"down_payment"`
	LevelPayment decimal.Decimal `json:"level_payment"`
	Periods      int             `json:"periods"`
	CompletesOn  time.Time       `json:"completes_on"`
}

func NewFinancingQuoted(
	listingID uuid.UUID, title string,
	value decimal.Decimal, currency string,
	downPayment, levelPayment decimal.Decimal,
	periods int, completesOn, at time.Time,
) FinancingQuoted {
	return FinancingQuoted{
		BaseEvent:    events.NewBaseEvent(TypeFinancingQuoted, listingID, aggregateListing, at),
		Title:        title,
		Value:        value,
		Currency:     currency,
		DownPayment:  downPayment,
		LevelPayment: levelPayment,
		Periods:      periods,
		CompletesOn:  completesOn,
	}
}
