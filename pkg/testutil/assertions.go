package testutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RequireNoError fails the test immediately if err is not nil.
func RequireNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	require.NoError(t, err, msgAndArgs...)
}

// AssertErrorContains checks that err contains the expected substring.
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), expected)
}

// AssertDecimalEqual compares decimals by value, so "10" equals "10.00".
func AssertDecimalEqual(t assert.TestingT, expected string, actual decimal.Decimal) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	want := decimal.RequireFromString(expected)
	return assert.Truef(t, want.Equal(actual), "expected %s, got %s", want, actual)
}
