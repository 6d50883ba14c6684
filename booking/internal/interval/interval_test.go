package interval_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stayhub/stay-booking/booking/internal/errs"
	"github.com/stayhub/stay-booking/booking/internal/interval"
)

func oct(day int) time.Time {
	return time.Date(2025, time.October, day, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end int) interval.Interval {
	t.Helper()
	rng, err := interval.New(oct(start), oct(end))
	require.NoError(t, err)
	return rng
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("start after end", func(t *testing.T) {
		_, err := interval.New(oct(10), oct(5))
		require.ErrorIs(t, err, errs.ErrInvalidRange)
	})

	t.Run("same day is geometrically valid", func(t *testing.T) {
		rng, err := interval.New(oct(10), oct(10))
		require.NoError(t, err)
		require.True(t, rng.ZeroLength())
	})

	t.Run("truncates time of day", func(t *testing.T) {
		rng, err := interval.New(
			time.Date(2025, time.October, 1, 15, 30, 0, 0, time.UTC),
			time.Date(2025, time.October, 2, 8, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		require.Equal(t, oct(1), rng.Start)
		require.Equal(t, oct(2), rng.End)
	})
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b interval.Interval
		want bool
	}{
		{"disjoint", mustRange(t, 1, 5), mustRange(t, 6, 9), false},
		{"shared boundary day", mustRange(t, 1, 5), mustRange(t, 5, 9), true},
		{"inside", mustRange(t, 1, 10), mustRange(t, 3, 7), true},
		{"envelope", mustRange(t, 3, 7), mustRange(t, 1, 10), true},
		{"partial", mustRange(t, 1, 6), mustRange(t, 4, 9), true},
		{"identical", mustRange(t, 2, 4), mustRange(t, 2, 4), true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// overlap is symmetric
			require.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		outer, inner interval.Interval
		want         bool
	}{
		{"inside", mustRange(t, 1, 10), mustRange(t, 3, 7), true},
		{"exact", mustRange(t, 1, 10), mustRange(t, 1, 10), true},
		{"spills right", mustRange(t, 1, 5), mustRange(t, 3, 7), false},
		{"spills left", mustRange(t, 5, 10), mustRange(t, 3, 7), false},
		{"disjoint", mustRange(t, 1, 2), mustRange(t, 3, 7), false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.outer.Contains(tt.inner))
		})
	}
}
