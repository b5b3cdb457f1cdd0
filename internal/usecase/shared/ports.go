package shared

import (
	"context"
	"time"

	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/domain/resource"
	"boat-scheduler/internal/domain/schedule"
)

// RemoteSchedule is what the reservation service holds for a time window.
type RemoteSchedule struct {
	Resources []*resource.Resource
	Bookings  []*booking.Booking
}

// ReservationGateway mirrors accepted local mutations to the external reservation service.
// Refs are the service's reservation ids. Failures carry errs.KindUpstream.
type ReservationGateway interface {
	Enabled() bool
	FetchSchedule(ctx context.Context, from, to time.Time) (*RemoteSchedule, error)
	// Create books b on the service and returns the new reservation id.
	Create(ctx context.Context, b *booking.Booking, contact schedule.Contact) (string, error)
	CheckIn(ctx context.Context, ref string) error
	CheckOut(ctx context.Context, ref string) error
	Cancel(ctx context.Context, ref, reason string) error
	Refund(ctx context.Context, ref string, amount booking.Money) error
	Modify(ctx context.Context, ref string, slot booking.TimeSlot) error
}

// ScheduleLoader builds the store a new session starts from.
type ScheduleLoader interface {
	Load(ctx context.Context) (*schedule.Store, error)
}
