package money

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// Currency is an ISO 4217 currency code.
type Currency struct {
	code string
}

// NewCurrency creates a Currency after validating the code is exactly 3 uppercase letters.
func NewCurrency(code string) (Currency, error) {
	if !currencyCodeRe.MatchString(code) {
		return Currency{}, fmt.Errorf("invalid currency code %q: must be exactly 3 uppercase letters", code)
	}
	return Currency{code: code}, nil
}

// MustCurrency creates a Currency and panics on error. Intended for package-level variable
// initialization only.
func MustCurrency(code string) Currency {
	c, err := NewCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseSupportedCurrency accepts a code in any letter case and returns it only when
// listings can be priced in it.
func ParseSupportedCurrency(code string) (Currency, error) {
	c, err := NewCurrency(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return Currency{}, err
	}
	if !c.IsSupported() {
		return Currency{}, fmt.Errorf("unsupported currency %q: expected one of %s", c.code, supportedCodes())
	}
	return c, nil
}

// Code returns the ISO 4217 currency code.
func (c Currency) Code() string {
	return c.code
}

// String returns the currency code.
func (c Currency) String() string {
	return c.code
}

// IsSupported reports whether c is one of SupportedCurrencies.
func (c Currency) IsSupported() bool {
	for _, s := range SupportedCurrencies {
		if s == c {
			return true
		}
	}
	return false
}

// Currencies offered to sellers when pricing a listing.
var (
	CAD = MustCurrency("CAD")
	USD = MustCurrency("USD")
	GBP = MustCurrency("GBP")
)

// SupportedCurrencies lists the currencies in picker order.
var SupportedCurrencies = []Currency{CAD, USD, GBP}

func supportedCodes() string {
	codes := make([]string, 0, len(SupportedCurrencies))
	for _, c := range SupportedCurrencies {
		codes = append(codes, c.code)
	}
	return strings.Join(codes, ", ")
}

// Money represents an immutable monetary amount with currency.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// New creates a Money value from a decimal amount and currency.
func New(amount decimal.Decimal, currency Currency) Money {
	return Money{amount: amount, currency: currency}
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency.
func (m Money) Currency() Currency {
	return m.currency
}

// RoundCents rounds half away from zero to two decimal places.
func (m Money) RoundCents() Money {
	return Money{amount: m.amount.Round(2), currency: m.currency}
}

// String formats the value with cents and a thousands separator, for example
// "25,000.00 CAD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", groupThousands(m.amount.StringFixed(2)), m.currency.Code())
}

func groupThousands(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return sign + b.String()
}
