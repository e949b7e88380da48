package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/OwaisQuadri/Musharakaat/pkg/money"
)

var day0 = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func days(n int) time.Time { return day0.AddDate(0, 0, n) }

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestListing(t *testing.T) *Listing {
	t.Helper()
	l, err := NewListing("Two bedroom condo", d("1000"), d("10"), money.CAD, uuid.New(), day0)
	require.NoError(t, err)
	return l
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, d(want).Equal(got), "expected %s, got %s", want, got)
}
