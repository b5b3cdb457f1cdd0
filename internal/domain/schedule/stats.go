package schedule

import (
	"time"

	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/domain/resource"
)

// Filter narrows a booking list. Zero values match everything.
type Filter struct {
	From       time.Time
	To         time.Time
	ResourceID resource.ID
}

func (f Filter) Match(b *booking.Booking) bool {
	if f.ResourceID != "" && b.ResourceID() != f.ResourceID {
		return false
	}
	slot := b.Slot()
	if !f.From.IsZero() && !slot.End().After(f.From) {
		return false
	}
	if !f.To.IsZero() && !slot.Start().Before(f.To) {
		return false
	}
	return true
}

func (s *Store) Find(f Filter) []*booking.Booking {
	var out []*booking.Booking
	for _, b := range s.bookings {
		if f.Match(b) {
			out = append(out, b)
		}
	}
	return out
}

type Stats struct {
	Total         int
	CheckedIn     int
	Refunded      int
	Pending       int
	HeadCount     int
	Revenue       booking.Money
	RefundedTotal booking.Money
	// OccupancyRate is bookings per boat, as a percentage.
	OccupancyRate float64
}

// ComputeStats summarises bookings. Revenue excludes refunded bookings, and passenger
// refunds are deducted from their booking's revenue.
func ComputeStats(bookings []*booking.Booking, boats int, singlePrice booking.Money) Stats {
	var st Stats
	for _, b := range bookings {
		st.Total++
		st.HeadCount += b.HeadCount()

		if r, ok := b.Refund(); ok {
			st.Refunded++
			st.RefundedTotal = st.RefundedTotal.Add(r.Amount())
			continue
		}
		if b.CheckedIn() {
			st.CheckedIn++
		} else {
			st.Pending++
		}

		st.Revenue = st.Revenue.Add(b.TotalPrice(singlePrice))
		if party, err := b.Party(); err == nil {
			for _, p := range party.Passengers() {
				if r, ok := p.Refund(); ok {
					st.RefundedTotal = st.RefundedTotal.Add(r.Amount())
					st.Revenue = st.Revenue.Add(booking.NewMoney(-r.Amount().Cents()))
				}
			}
		}
	}
	if boats > 0 {
		st.OccupancyRate = float64(st.Total) / float64(boats) * 100
	}
	return st
}
