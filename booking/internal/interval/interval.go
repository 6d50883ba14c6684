// Package interval holds the closed calendar-day range algebra every
// conflict decision in the service is built on. Both ends are inclusive:
// two ranges that share a single boundary day overlap.
package interval

import (
	"time"

	"github.com/stayhub/stay-booking/booking/internal/errs"
)

// Interval is a closed date range [Start, End] at day granularity.
type Interval struct {
	Start time.Time
	End   time.Time
}

// New truncates both ends to midnight UTC and rejects ranges where start is
// after end. A zero-length (same-day) range is geometrically valid here;
// forbidding it is a booking policy, checked by the caller via ZeroLength.
func New(start, end time.Time) (Interval, error) {
	start, end = day(start), day(end)
	if start.After(end) {
		return Interval{}, errs.ErrInvalidRange
	}
	return Interval{Start: start, End: end}, nil
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether the two ranges share at least one day:
// max(a.Start, b.Start) <= min(a.End, b.End).
func (i Interval) Overlaps(o Interval) bool {
	return !i.Start.After(o.End) && !o.Start.After(i.End)
}

// Contains reports whether o lies entirely inside i.
func (i Interval) Contains(o Interval) bool {
	return !i.Start.After(o.Start) && !i.End.Before(o.End)
}

func (i Interval) ZeroLength() bool {
	return i.Start.Equal(i.End)
}
