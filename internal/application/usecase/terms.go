package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/OwaisQuadri/Musharakaat/internal/application/dto"
	"github.com/OwaisQuadri/Musharakaat/internal/domain/model"
	"github.com/OwaisQuadri/Musharakaat/pkg/money"
)

// Rent rate bounds, as a fraction of the listing value per month.
var (
	MinRentRate = decimal.RequireFromString("0.0001")
	MaxRentRate = decimal.RequireFromString("0.05")
)

type listingTerms struct {
	title       string
	value       decimal.Decimal
	currency    money.Currency
	rentRate    decimal.Decimal
	rentPrice   decimal.Decimal
	downPayment decimal.Decimal
	seller      uuid.UUID
}

// validateRequest runs struct tag validation and folds failures into ErrInvalidInput.
func validateRequest(v *validator.Validate, req any) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", model.ErrInvalidInput, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
}

func parseTerms(in dto.FinancingTerms) (listingTerms, error) {
	value, err := parseAmount("value", in.Value)
	if err != nil {
		return listingTerms{}, err
	}
	if !value.IsPositive() {
		return listingTerms{}, fmt.Errorf("%w: value must be positive", model.ErrInvalidInput)
	}

	currency, err := money.ParseSupportedCurrency(in.Currency)
	if err != nil {
		return listingTerms{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	rentRate, err := parseAmount("rent_rate", in.RentRate)
	if err != nil {
		return listingTerms{}, err
	}
	if rentRate.LessThan(MinRentRate) || rentRate.GreaterThan(MaxRentRate) {
		return listingTerms{}, fmt.Errorf("%w: rent_rate %s outside [%s, %s]",
			model.ErrInvalidInput, rentRate, MinRentRate, MaxRentRate)
	}

	downPayment := decimal.Zero
	if strings.TrimSpace(in.DownPayment) != "" {
		downPayment, err = parseAmount("down_payment", in.DownPayment)
		if err != nil {
			return listingTerms{}, err
		}
	}
	if downPayment.GreaterThan(value) {
		return listingTerms{}, fmt.Errorf("%w: down_payment %s exceeds value %s",
			model.ErrInvalidInput, downPayment, value)
	}

	seller := uuid.New()
	if in.SellerID != "" {
		if seller, err = uuid.Parse(in.SellerID); err != nil {
			return listingTerms{}, fmt.Errorf("%w: seller_id: %v", model.ErrInvalidInput, err)
		}
	}

	return listingTerms{
		title:       strings.TrimSpace(in.Title),
		value:       value,
		currency:    currency,
		rentRate:    rentRate,
		rentPrice:   value.Mul(rentRate),
		downPayment: downPayment,
		seller:      seller,
	}, nil
}

// parseAmount reads a non-negative decimal typed by a user. Thousands separators are
// accepted.
func parseAmount(field, raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q is not a number", model.ErrInvalidInput, field, raw)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s must not be negative", model.ErrInvalidInput, field)
	}
	return amount, nil
}
