package booking

import (
	"fmt"
	"math"
	"time"
)

type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if start.IsZero() || end.IsZero() {
		return TimeSlot{}, ErrMissingTimeSlot
	}
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}

	return TimeSlot{
		start: start,
		end:   end,
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) IsZero() bool {
	return ts.start.IsZero() && ts.end.IsZero()
}

// Slots are half-open, so back-to-back slots do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return Overlaps(ts.start, ts.end, other.start, other.end)
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
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

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// Percent rounds half away from zero to the nearest cent.
func (m Money) Percent(pct float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * pct / 100.0))}
}

// String renders two decimals without a currency sign, e.g. "225.00".
func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

type Refund struct {
	amount     Money
	percentage float64
}

func NewRefund(total Money, percentage float64) (Refund, error) {
	if math.IsNaN(percentage) || percentage < 0 || percentage > 100 {
		return Refund{}, ErrInvalidRefundPercentage
	}
	return Refund{
		amount:     total.Percent(percentage),
		percentage: percentage,
	}, nil
}

func (r Refund) Amount() Money       { return r.amount }
func (r Refund) Percentage() float64 { return r.percentage }
