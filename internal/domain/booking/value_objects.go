package booking

import (
	"fmt"
	"time"
)

const chargeableDay = 24 * time.Hour

// DateRange is the rental window of a booking. Both bounds are inclusive
// for conflict purposes: a booking ending on day D blocks another one
// starting on day D (no same-day turnover).
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange accepts inverted and zero-length ranges; pricing clamps them
// to one chargeable day instead of rejecting them.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{start: start, end: end}
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// Overlaps uses the inclusive test on both boundaries: [s1,e1] and [s2,e2]
// overlap iff s1 <= e2 and s2 <= e1.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !other.start.After(r.end)
}

// ChargeableDays truncates the span to whole days and clamps to a minimum
// of one, so same-day and inverted ranges still charge a single day.
func (r DateRange) ChargeableDays() int {
	days := int(r.end.Sub(r.start) / chargeableDay)
	if days <= 0 {
		return 1
	}
	return days
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s,%s]", r.start.Format(time.RFC3339), r.end.Format(time.RFC3339))
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) MultiplyDays(days int) Money {
	return Money{cents: m.cents * int64(days)}
}
