//go:build unit || e2e

package builder

import (
	"time"

	reqdto "boat-scheduler/internal/handler/dto/request"
	"boat-scheduler/internal/usecase/queries"
)

var baseDay = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	ResourceID string
	Start      time.Time
	End        time.Time
	Name       string
	Email      string
	HeadCount  int
	PriceCents int64
}

// NewBookingBuilder starts from a two-hour morning trip on small-1.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ResourceID: "small-1",
		Start:      baseDay.Add(9 * time.Hour),
		End:        baseDay.Add(11 * time.Hour),
		Name:       "John Smith",
		Email:      "john@example.com",
		HeadCount:  1,
	}
}

func (b *BookingBuilder) WithResource(id string) *BookingBuilder {
	b.ResourceID = id
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.Start, b.End = start, end
	return b
}

func (b *BookingBuilder) WithName(name string) *BookingBuilder {
	b.Name = name
	return b
}

func (b *BookingBuilder) WithHeadCount(n int) *BookingBuilder {
	b.HeadCount = n
	return b
}

func (b *BookingBuilder) WithPrice(cents int64) *BookingBuilder {
	b.PriceCents = cents
	return b
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ResourceID: b.ResourceID,
		Start:      b.Start,
		End:        b.End,
		Name:       b.Name,
		Email:      b.Email,
		HeadCount:  b.HeadCount,
		PriceCents: b.PriceCents,
	}
}

func (b *BookingBuilder) BuildView(id int) queries.BookingView {
	return queries.BookingView{
		ID:         id,
		Title:      b.Name,
		Start:      b.Start,
		End:        b.End,
		ResourceID: b.ResourceID,
		Capacity:   "single",
		Color:      "#FF6B6B",
		TotalCents: b.PriceCents,
		HeadCount:  b.HeadCount,
	}
}

// ScheduleView wraps bookings in a snapshot with the small-1 boat and an idle gate.
func ScheduleView(bookings ...queries.BookingView) *queries.ScheduleView {
	return &queries.ScheduleView{
		Resources: []queries.ResourceView{
			{ID: "small-1", Name: "Small Boat 1 (2 hrs)", GroupID: "small-boats", Capacity: "single", Color: "#FF6B6B"},
		},
		Bookings: bookings,
		Gate:     queries.GateView{Timeout: 3 * time.Second},
	}
}
