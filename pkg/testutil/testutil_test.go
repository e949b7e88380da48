package testutil

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAssertDecimalEqual(t *testing.T) {
	if !AssertDecimalEqual(t, "10", decimal.RequireFromString("10.00")) {
		t.Fatal("expected equal decimals")
	}

	inner := &recordingT{}
	if AssertDecimalEqual(inner, "10", decimal.RequireFromString("10.01")) {
		t.Fatal("expected different decimals to fail")
	}
	if len(inner.errors) != 1 {
		t.Fatalf("expected one recorded error, got %d", len(inner.errors))
	}
}

type recordingT struct {
	errors []string
}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func TestFixedClock(t *testing.T) {
	c := FixedClock{Time: TestQuoteTime}
	if !c.Now().Equal(TestQuoteTime) {
		t.Fatalf("expected %s, got %s", TestQuoteTime, c.Now())
	}
}
