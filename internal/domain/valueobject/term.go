package valueobject

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/OwaisQuadri/Musharakaat/internal/domain/calendar"
)

// ErrInvalidTermUnit is returned for units other than month and year.
var ErrInvalidTermUnit = errors.New("invalid term unit")

// TermUnit is the granularity a financing term is expressed in.
type TermUnit struct {
	value string
}

const (
	termUnitMonth = "month"
	termUnitYear  = "year"
)

var (
	TermUnitMonth = TermUnit{value: termUnitMonth}
	TermUnitYear  = TermUnit{value: termUnitYear}
)

// TermUnits lists the units in picker order.
var TermUnits = []TermUnit{TermUnitMonth, TermUnitYear}

// NewTermUnit parses "month"/"months"/"year"/"years" in any letter case.
func NewTermUnit(s string) (TermUnit, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s") {
	case termUnitMonth:
		return TermUnitMonth, nil
	case termUnitYear:
		return TermUnitYear, nil
	}
	return TermUnit{}, fmt.Errorf("%w: %q", ErrInvalidTermUnit, s)
}

// String returns the singular unit name.
func (u TermUnit) String() string { return u.value }

// IsZero returns true if the unit has not been initialised.
func (u TermUnit) IsZero() bool { return u.value == "" }

// Equal returns true when both units carry the same value.
func (u TermUnit) Equal(other TermUnit) bool { return u.value == other.value }

// Label returns the unit name pluralised for count ("1 month", "3 months").
func (u TermUnit) Label(count int) string {
	if count == 1 {
		return u.value
	}
	return u.value + "s"
}

// Term is a financing horizon such as "12 months" or "5 years".
type Term struct {
	count int
	unit  TermUnit
}

// NewTerm validates that count is positive and unit is known.
func NewTerm(count int, unit TermUnit) (Term, error) {
	if count <= 0 {
		return Term{}, fmt.Errorf("term count must be positive, got %d", count)
	}
	if unit.IsZero() {
		return Term{}, ErrInvalidTermUnit
	}
	return Term{count: count, unit: unit}, nil
}

// Count returns the number of units.
func (t Term) Count() int { return t.count }

// Unit returns the term unit.
func (t Term) Unit() TermUnit { return t.unit }

// EndDate returns start moved forward by the term in calendar units.
func (t Term) EndDate(start time.Time) time.Time {
	if t.unit.Equal(TermUnitYear) {
		return calendar.AddYears(start, t.count)
	}
	return calendar.AddMonths(start, t.count)
}

// String renders the term for display, e.g. "12 months".
func (t Term) String() string {
	return fmt.Sprintf("%d %s", t.count, t.unit.Label(t.count))
}
