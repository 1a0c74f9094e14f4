package daterange_test

import (
	"testing"
	"time"

	"lodge/shared/daterange"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRange_Overlaps(t *testing.T) {
	base := daterange.New(date(2024, 3, 10), date(2024, 3, 15))

	tests := []struct {
		name     string
		other    daterange.Range
		expected bool
	}{
		{
			name:     "identical ranges overlap",
			other:    daterange.New(date(2024, 3, 10), date(2024, 3, 15)),
			expected: true,
		},
		{
			name:     "contained range overlaps",
			other:    daterange.New(date(2024, 3, 11), date(2024, 3, 13)),
			expected: true,
		},
		{
			name:     "containing range overlaps",
			other:    daterange.New(date(2024, 3, 1), date(2024, 3, 31)),
			expected: true,
		},
		{
			name:     "overlap at start",
			other:    daterange.New(date(2024, 3, 8), date(2024, 3, 11)),
			expected: true,
		},
		{
			name:     "overlap at end",
			other:    daterange.New(date(2024, 3, 14), date(2024, 3, 20)),
			expected: true,
		},
		{
			name:     "single shared night",
			other:    daterange.New(date(2024, 3, 14), date(2024, 3, 15)),
			expected: true,
		},
		{
			name:     "check-in on existing check-out does not overlap",
			other:    daterange.New(date(2024, 3, 15), date(2024, 3, 20)),
			expected: false,
		},
		{
			name:     "check-out on existing check-in does not overlap",
			other:    daterange.New(date(2024, 3, 5), date(2024, 3, 10)),
			expected: false,
		},
		{
			name:     "disjoint before",
			other:    daterange.New(date(2024, 2, 1), date(2024, 2, 5)),
			expected: false,
		},
		{
			name:     "disjoint after",
			other:    daterange.New(date(2024, 4, 1), date(2024, 4, 5)),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tt.expected)
			}

			// Overlap is symmetric.
			if got := tt.other.Overlaps(base); got != tt.expected {
				t.Errorf("reverse Overlaps() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRange_Nights(t *testing.T) {
	tests := []struct {
		name     string
		r        daterange.Range
		expected int
	}{
		{
			name:     "single night",
			r:        daterange.New(date(2024, 1, 1), date(2024, 1, 2)),
			expected: 1,
		},
		{
			name:     "three nights",
			r:        daterange.New(date(2024, 1, 1), date(2024, 1, 4)),
			expected: 3,
		},
		{
			name:     "across month boundary",
			r:        daterange.New(date(2024, 1, 30), date(2024, 2, 2)),
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Nights(); got != tt.expected {
				t.Errorf("Nights() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  bool
	}{
		{
			name:     "valid range",
			checkIn:  "2024-03-01",
			checkOut: "2024-03-03",
			wantErr:  false,
		},
		{
			name:     "zero nights rejected",
			checkIn:  "2024-03-01",
			checkOut: "2024-03-01",
			wantErr:  true,
		},
		{
			name:     "reversed range rejected",
			checkIn:  "2024-03-03",
			checkOut: "2024-03-01",
			wantErr:  true,
		},
		{
			name:     "garbage check-in rejected",
			checkIn:  "yesterday",
			checkOut: "2024-03-01",
			wantErr:  true,
		},
		{
			name:     "garbage check-out rejected",
			checkIn:  "2024-03-01",
			checkOut: "03/05/2024",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := daterange.Parse(tt.checkIn, tt.checkOut)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got range %+v", r)
				}

				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParse_TruncatesTimeComponent(t *testing.T) {
	r := daterange.New(
		time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC),
		time.Date(2024, 3, 4, 0, 1, 0, 0, time.UTC),
	)

	if r.Nights() != 3 {
		t.Errorf("expected 3 nights after truncation, got %d", r.Nights())
	}
}
