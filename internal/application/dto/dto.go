package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// FinancingTerms carries the commercial terms exactly as a user typed them. Amounts are
// strings so that malformed input is reported instead of silently becoming zero.
type FinancingTerms struct {
	Title       string `json:"title" validate:"required,max=200"`
	Value       string `json:"value" validate:"required"`
	Currency    string `json:"currency" validate:"required,alpha,len=3"`
	DownPayment string `json:"down_payment,omitempty"`
	RentRate    string `json:"rent_rate" validate:"required"`
	SellerID    string `json:"seller_id,omitempty" validate:"omitempty,uuid"`
}

// QuoteRequest asks for a level payment and schedule over a term.
type QuoteRequest struct {
	FinancingTerms
	TermCount int    `json:"term_count" validate:"required,gt=0,lte=1200"`
	TermUnit  string `json:"term_unit" validate:"required"`
}

// LedgerOperation is one step replayed against a listing: a payment received or a billing
// cycle tick.
// PaymentID, when set, is kept on the recorded payment so that events can be matched to the
// caller's own records.
type LedgerOperation struct {
	Kind      string    `json:"kind" validate:"required,oneof=payment invoice"`
	Amount    string    `json:"amount,omitempty" validate:"required_if=Kind payment"`
	PaymentID string    `json:"payment_id,omitempty" validate:"omitempty,uuid"`
	Date      time.Time `json:"date" validate:"required"`
}

// Ledger operation kinds.
const (
	OperationPayment = "payment"
	OperationInvoice = "invoice"
)

// StatementRequest replays a ledger against a listing opened at StartDate.
type StatementRequest struct {
	FinancingTerms
	BuyerID    string            `json:"buyer_id,omitempty" validate:"omitempty,uuid"`
	StartDate  time.Time         `json:"start_date" validate:"required"`
	Operations []LedgerOperation `json:"operations" validate:"dive"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ScheduleRowResponse is one period of a simulated schedule.
type ScheduleRowResponse struct {
	Period        int             `json:"period"`
	Date          time.Time       `json:"date"`
	RentPortion   decimal.Decimal `json:"rent_portion"`
	EquityPortion decimal.Decimal `json:"equity_portion"`
	Total         decimal.Decimal `json:"total"`
	EquityRetired decimal.Decimal `json:"equity_retired"`
}

// QuoteResponse is the estimated level payment and the schedule it produces.
type QuoteResponse struct {
	ListingID    string                `json:"listing_id"`
	Title        string                `json:"title"`
	Currency     string                `json:"currency"`
	Value        decimal.Decimal       `json:"value"`
	DownPayment  decimal.Decimal       `json:"down_payment"`
	RentPrice    decimal.Decimal       `json:"rent_price"`
	Term         string                `json:"term"`
	StartDate    time.Time             `json:"start_date"`
	EndDate      time.Time             `json:"end_date"`
	LevelPayment decimal.Decimal       `json:"level_payment"`
	Periods      int                   `json:"periods"`
	CompletesOn  time.Time             `json:"completes_on"`
	Summary      string                `json:"summary"`
	Schedule     []ScheduleRowResponse `json:"schedule"`
}

// InvoiceResponse is the external representation of a billing cycle, priced at the
// listing's current equity share.
type InvoiceResponse struct {
	ID                 string          `json:"id"`
	DueDate            time.Time       `json:"due_date"`
	Status             string          `json:"status"`
	Standing           string          `json:"standing"`
	AmountDue          decimal.Decimal `json:"amount_due"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	RemainingAmountDue decimal.Decimal `json:"remaining_amount_due"`
	AmountIntoEquity   decimal.Decimal `json:"amount_into_equity"`
}

// StatementResponse is the state of a listing after a ledger replay.
type StatementResponse struct {
	ListingID           string            `json:"listing_id"`
	Title               string            `json:"title"`
	Currency            string            `json:"currency"`
	Status              string            `json:"status"`
	SellerEquityPercent decimal.Decimal   `json:"seller_equity_percent"`
	EquityPaid          decimal.Decimal   `json:"equity_paid"`
	RemainingPrincipal  decimal.Decimal   `json:"remaining_principal"`
	HeldAmount          decimal.Decimal   `json:"held_amount"`
	Invoices            []InvoiceResponse `json:"invoices"`
}
