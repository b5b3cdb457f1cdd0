package commands

import (
	"context"
	"time"

	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/domain/schedule"
	"boat-scheduler/internal/usecase/shared"
)

const remoteCancelReason = "Cancelled by admin"

// mutator runs an engine operation and, for bookings that came from the reservation service,
// mirrors it there before the new store is returned. A remote failure discards the new store.
type mutator struct {
	engine  *schedule.Engine
	gateway shared.ReservationGateway
}

// createBooking books single-capacity bookings on the reservation service when one is
// configured and links the returned id. Group bookings stay local.
func (m *mutator) createBooking(ctx context.Context, cur *schedule.Store, in schedule.CreateBookingInput) (*schedule.Store, *booking.Booking, error) {
	next, created, err := m.engine.CreateBooking(cur, in)
	if err != nil {
		return nil, nil, err
	}
	if !m.gateway.Enabled() || created.IsGroup() {
		return next, created, nil
	}
	ref, err := m.gateway.Create(ctx, created, in.Contact)
	if err != nil {
		return nil, nil, err
	}
	created.LinkExternal(ref)
	return next, created, nil
}

func (m *mutator) moveBooking(ctx context.Context, cur *schedule.Store, id booking.ID, start, end time.Time) (*schedule.Store, *booking.Booking, error) {
	next, moved, err := m.engine.MoveBooking(cur, id, start, end)
	if err != nil {
		return nil, nil, err
	}
	if ref := moved.ExternalRef(); ref != "" {
		if err := m.gateway.Modify(ctx, ref, moved.Slot()); err != nil {
			return nil, nil, err
		}
	}
	return next, moved, nil
}

func (m *mutator) toggleCheckIn(ctx context.Context, cur *schedule.Store, target schedule.CheckInTarget) (*schedule.Store, bool, error) {
	next, checkedIn, err := m.engine.ToggleCheckIn(cur, target)
	if err != nil {
		return nil, false, err
	}
	if target.PassengerID != "" {
		return next, checkedIn, nil
	}
	b, err := next.Get(target.BookingID)
	if err != nil {
		return nil, false, err
	}
	if ref := b.ExternalRef(); ref != "" {
		if checkedIn {
			err = m.gateway.CheckIn(ctx, ref)
		} else {
			err = m.gateway.CheckOut(ctx, ref)
		}
		if err != nil {
			return nil, false, err
		}
	}
	return next, checkedIn, nil
}

func (m *mutator) cancel(ctx context.Context, cur *schedule.Store, id booking.ID) (*schedule.Store, error) {
	next, cancelled, err := m.engine.CancelBooking(cur, id)
	if err != nil {
		return nil, err
	}
	if ref := cancelled.ExternalRef(); ref != "" {
		if err := m.gateway.Cancel(ctx, ref, remoteCancelReason); err != nil {
			return nil, err
		}
	}
	return next, nil
}

func (m *mutator) refund(ctx context.Context, cur *schedule.Store, id booking.ID, percentage float64) (*schedule.Store, error) {
	next, refunded, err := m.engine.RefundBooking(cur, id, percentage)
	if err != nil {
		return nil, err
	}
	if ref := refunded.ExternalRef(); ref != "" {
		r, _ := refunded.Refund()
		if err := m.gateway.Refund(ctx, ref, r.Amount()); err != nil {
			return nil, err
		}
	}
	return next, nil
}

// Passenger-level operations only exist on group bookings, which the reservation service
// does not model, so they are never mirrored.
func (m *mutator) refundPassenger(cur *schedule.Store, id booking.ID, pid booking.PassengerID, percentage float64) (*schedule.Store, error) {
	next, _, err := m.engine.RefundPassenger(cur, id, pid, percentage)
	return next, err
}

func (m *mutator) removePassenger(cur *schedule.Store, id booking.ID, pid booking.PassengerID) (*schedule.Store, error) {
	next, _, err := m.engine.RemovePassenger(cur, id, pid)
	return next, err
}
