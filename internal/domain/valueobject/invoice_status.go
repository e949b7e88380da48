package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// InvoiceStatus – immutable value object
// ---------------------------------------------------------------------------

// InvoiceStatus tells whether a billing cycle still accepts payments.
type InvoiceStatus struct {
	value string
}

const (
	invoiceStatusOpen   = "OPEN"
	invoiceStatusClosed = "CLOSED"
)

var (
	InvoiceStatusOpen   = InvoiceStatus{value: invoiceStatusOpen}
	InvoiceStatusClosed = InvoiceStatus{value: invoiceStatusClosed}
)

var validInvoiceStatuses = map[string]InvoiceStatus{
	invoiceStatusOpen:   InvoiceStatusOpen,
	invoiceStatusClosed: InvoiceStatusClosed,
}

// NewInvoiceStatus creates an InvoiceStatus from a raw string.
func NewInvoiceStatus(s string) (InvoiceStatus, error) {
	v, ok := validInvoiceStatuses[s]
	if !ok {
		return InvoiceStatus{}, fmt.Errorf("invalid invoice status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s InvoiceStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s InvoiceStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s InvoiceStatus) Equal(other InvoiceStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// InvoiceStanding – immutable value object
// ---------------------------------------------------------------------------

// InvoiceStanding classifies how payments against a billing cycle are treated.
//
//   - RENT_AND_EQUITY: the buyer is in good standing; money beyond the rent buys equity.
//   - RENT_ONLY: penalty cycle after a missed invoice; excess money is held back.
//   - LATE: the cycle elapsed or closed after its due date.
type InvoiceStanding struct {
	value string
}

const (
	invoiceStandingRentOnly      = "RENT_ONLY"
	invoiceStandingRentAndEquity = "RENT_AND_EQUITY"
	invoiceStandingLate          = "LATE"
)

var (
	InvoiceStandingRentOnly      = InvoiceStanding{value: invoiceStandingRentOnly}
	InvoiceStandingRentAndEquity = InvoiceStanding{value: invoiceStandingRentAndEquity}
	InvoiceStandingLate          = InvoiceStanding{value: invoiceStandingLate}
)

var validInvoiceStandings = map[string]InvoiceStanding{
	invoiceStandingRentOnly:      InvoiceStandingRentOnly,
	invoiceStandingRentAndEquity: InvoiceStandingRentAndEquity,
	invoiceStandingLate:          InvoiceStandingLate,
}

// NewInvoiceStanding creates an InvoiceStanding from a raw string.
func NewInvoiceStanding(s string) (InvoiceStanding, error) {
	v, ok := validInvoiceStandings[s]
	if !ok {
		return InvoiceStanding{}, fmt.Errorf("invalid invoice standing: %q", s)
	}
	return v, nil
}

// String returns the string representation of the standing.
func (s InvoiceStanding) String() string { return s.value }

// IsZero returns true if the standing has not been initialised.
func (s InvoiceStanding) IsZero() bool { return s.value == "" }

// Equal returns true when both standings carry the same value.
func (s InvoiceStanding) Equal(other InvoiceStanding) bool { return s.value == other.value }
