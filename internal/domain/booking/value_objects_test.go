//go:build unit

package booking_test

import (
	"math"
	"testing"
	"time"

	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/domain/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, time.January, 1, hour, minute, 0, 0, time.UTC)
}

func mustSlot(t *testing.T, start, end time.Time) booking.TimeSlot {
	t.Helper()
	slot, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	return slot
}

func TestNewTimeSlot(t *testing.T) {
	t.Run("valid slot", func(t *testing.T) {
		slot, err := booking.NewTimeSlot(at(9, 0), at(11, 0))
		require.NoError(t, err)
		assert.Equal(t, at(9, 0), slot.Start())
		assert.Equal(t, at(11, 0), slot.End())
		assert.Equal(t, 2*time.Hour, slot.Duration())
		assert.False(t, slot.IsZero())
	})

	testCases := []struct {
		name       string
		start, end time.Time
		errIs      error
	}{
		{name: "end equals start", start: at(9, 0), end: at(9, 0), errIs: booking.ErrInvalidTimeSlot},
		{name: "end before start", start: at(11, 0), end: at(9, 0), errIs: booking.ErrInvalidTimeSlot},
		{name: "missing start", end: at(9, 0), errIs: booking.ErrMissingTimeSlot},
		{name: "missing end", start: at(9, 0), errIs: booking.ErrMissingTimeSlot},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.NewTimeSlot(tc.start, tc.end)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestMoney(t *testing.T) {
	price := booking.NewMoney(45000)

	assert.Equal(t, "450.00", price.String())
	assert.Equal(t, "225.00", price.Percent(50).String())
	assert.Equal(t, "135.00", booking.NewMoney(4500).Times(3).String())
	assert.Equal(t, int64(9500), booking.NewMoney(4500).Add(booking.NewMoney(5000)).Cents())
	assert.InDelta(t, 45.0, booking.NewMoney(4500).Dollars(), 0.0001)
	assert.Equal(t, "-1.05", booking.NewMoney(-105).String())

	// 33.333...% of 1.00 rounds to the nearest cent.
	assert.Equal(t, int64(33), booking.NewMoney(100).Percent(100.0/3).Cents())
}

func TestNewRefund(t *testing.T) {
	t.Run("amount is rounded to cents", func(t *testing.T) {
		r, err := booking.NewRefund(booking.NewMoney(45000), 50)
		require.NoError(t, err)
		assert.Equal(t, "225.00", r.Amount().String())
		assert.Equal(t, 50.0, r.Percentage())
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		r, err := booking.NewRefund(booking.NewMoney(1000), 0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), r.Amount().Cents())

		r, err = booking.NewRefund(booking.NewMoney(1000), 100)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), r.Amount().Cents())
	})

	for _, pct := range []float64{-0.01, 100.5, math.NaN()} {
		_, err := booking.NewRefund(booking.NewMoney(1000), pct)
		assert.ErrorIs(t, err, booking.ErrInvalidRefundPercentage, "pct=%v", pct)
	}
}

func TestOverlaps(t *testing.T) {
	testCases := []struct {
		name string
		a, b [2]time.Time
		want bool
	}{
		{name: "touching end to start", a: [2]time.Time{at(9, 0), at(11, 0)}, b: [2]time.Time{at(11, 0), at(13, 0)}, want: false},
		{name: "touching start to end", a: [2]time.Time{at(11, 0), at(13, 0)}, b: [2]time.Time{at(9, 0), at(11, 0)}, want: false},
		{name: "partial overlap", a: [2]time.Time{at(9, 0), at(11, 0)}, b: [2]time.Time{at(10, 30), at(12, 0)}, want: true},
		{name: "containment", a: [2]time.Time{at(9, 0), at(17, 0)}, b: [2]time.Time{at(10, 0), at(11, 0)}, want: true},
		{name: "identical", a: [2]time.Time{at(9, 0), at(11, 0)}, b: [2]time.Time{at(9, 0), at(11, 0)}, want: true},
		{name: "disjoint", a: [2]time.Time{at(9, 0), at(10, 0)}, b: [2]time.Time{at(12, 0), at(13, 0)}, want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, booking.Overlaps(tc.a[0], tc.a[1], tc.b[0], tc.b[1]))
			// symmetric
			assert.Equal(t, tc.want, booking.Overlaps(tc.b[0], tc.b[1], tc.a[0], tc.a[1]))
		})
	}
}

func TestHasConflict(t *testing.T) {
	existing, err := booking.NewSingle(booking.Draft{
		ID:         1,
		Title:      "John Smith - 2hrs",
		Slot:       mustSlot(t, at(9, 0), at(11, 0)),
		ResourceID: "small-1",
	})
	require.NoError(t, err)
	bookings := []*booking.Booking{existing}

	assert.True(t, booking.HasConflict(mustSlot(t, at(10, 0), at(12, 0)), "small-1", booking.NoID, bookings))
	assert.False(t, booking.HasConflict(mustSlot(t, at(11, 0), at(13, 0)), "small-1", booking.NoID, bookings))
	assert.False(t, booking.HasConflict(mustSlot(t, at(10, 0), at(12, 0)), resource.ID("small-2"), booking.NoID, bookings))
	assert.False(t, booking.HasConflict(mustSlot(t, at(10, 0), at(12, 0)), "small-1", existing.ID(), bookings), "a booking never conflicts with itself")
	assert.False(t, booking.HasConflict(mustSlot(t, at(10, 0), at(12, 0)), "small-1", booking.NoID, nil))
}
