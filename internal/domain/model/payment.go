package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is an immutable record of money received on a given date.
type Payment struct {
	id     uuid.UUID
	amount decimal.Decimal
	date   time.Time
}

// NewPayment creates a payment with a fresh identifier.
func NewPayment(amount decimal.Decimal, date time.Time) Payment {
	return Payment{id: uuid.New(), amount: amount, date: date}
}

// ReconstructPayment rebuilds a payment whose identifier is already known.
func ReconstructPayment(id uuid.UUID, amount decimal.Decimal, date time.Time) Payment {
	return Payment{id: id, amount: amount, date: date}
}

func (p Payment) ID() uuid.UUID           { return p.id }
func (p Payment) Amount() decimal.Decimal { return p.amount }
func (p Payment) Date() time.Time         { return p.date }

func sumPayments(payments []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.amount)
	}
	return total
}
