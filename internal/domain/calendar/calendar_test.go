package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{
			name: "mid month",
			in:   time.Date(2024, 10, 12, 9, 30, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2024, 11, 12, 9, 30, 0, 0, time.UTC),
		},
		{
			name: "clamps to leap february",
			in:   time.Date(2024, 1, 31, 8, 0, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "clamps to short february",
			in:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "crosses year",
			in:   time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
			n:    2,
			want: time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "negative",
			in:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			n:    -1,
			want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.in, tt.n))
		})
	}
}

func TestAddYears_LeapDay(t *testing.T) {
	got := AddYears(time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), 1)
	assert.Equal(t, time.Date(2025, 2, 28, 12, 0, 0, 0, time.UTC), got)
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("EDT", -4*3600)
	got := StartOfDay(time.Date(2024, 10, 12, 23, 59, 59, 999, loc))
	assert.Equal(t, time.Date(2024, 10, 12, 0, 0, 0, 0, loc), got)
}
