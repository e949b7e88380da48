package model

import "errors"

// MaxSimulatedPeriods bounds SimulateSchedule. A hundred years of monthly cycles is far beyond
// any term the quote surfaces accept.
const MaxSimulatedPeriods = 1200

var (
	// ErrInvalidInput is returned for malformed or negative amounts and out of range terms.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidTerm is returned when a financing horizon resolves to zero whole months.
	ErrInvalidTerm = errors.New("invalid term")
	// ErrInvalidListing is returned when a listing's commercial terms cannot be financed.
	ErrInvalidListing = errors.New("invalid listing")
	// ErrScheduleDiverges is returned when a level payment never retires the seller's share.
	ErrScheduleDiverges = errors.New("schedule does not converge")
)
