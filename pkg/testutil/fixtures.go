package testutil

import (
	"time"

	"github.com/google/uuid"
)

// Fixed identifiers and instants for deterministic tests.
var (
	TestSellerID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	TestBuyerID  = uuid.MustParse("00000000-0000-0000-0000-000000000002")

	// TestQuoteTime is mid-morning so that invoice due dates, which fall at the start of a
	// day, are strictly before the instants in a monthly simulation.
	TestQuoteTime = time.Date(2024, 10, 12, 9, 30, 0, 0, time.UTC)
)

// FixedClock always reports the same instant.
type FixedClock struct {
	Time time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return c.Time }
