package commands

import (
	"context"
	"log/slog"

	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/domain/schedule"
	reqdto "boat-scheduler/internal/handler/dto/request"
	"boat-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingResult struct {
	BookingID booking.ID
	// ExternalRef is set when the booking was mirrored to the reservation service.
	ExternalRef string
}

type PassengerResult struct {
	BookingID   booking.ID
	PassengerID booking.PassengerID
}

type CheckInResult struct {
	CheckedIn bool
}

type SyncResult struct {
	Bookings int
}

// BookingCommands covers the schedule mutations that need no confirmation.
// Destructive ones go through ConfirmCommands.
type BookingCommands interface {
	Create(ctx context.Context, operatorID uuid.UUID, req reqdto.CreateBookingRequest) (*BookingResult, error)
	Move(ctx context.Context, operatorID uuid.UUID, id booking.ID, req reqdto.MoveBookingRequest) (*BookingResult, error)
	ToggleCheckIn(ctx context.Context, operatorID uuid.UUID, target schedule.CheckInTarget) (*CheckInResult, error)
	AddPassenger(ctx context.Context, operatorID uuid.UUID, id booking.ID, req reqdto.PassengerRequest) (*PassengerResult, error)
	UpdatePassenger(ctx context.Context, operatorID uuid.UUID, id booking.ID, pid booking.PassengerID, req reqdto.UpdatePassengerRequest) (*PassengerResult, error)
	MovePassenger(ctx context.Context, operatorID uuid.UUID, id booking.ID, pid booking.PassengerID, req reqdto.MovePassengerRequest) (*BookingResult, error)
	// Sync replaces the operator's schedule with a fresh load and disarms any pending confirmation.
	Sync(ctx context.Context, operatorID uuid.UUID) (*SyncResult, error)
}

type bookingCommandsImpl struct {
	sessions shared.SessionRepository
	loader   shared.ScheduleLoader
	mutator
}

func NewBookingCommands(sessions shared.SessionRepository, loader shared.ScheduleLoader, engine *schedule.Engine, gateway shared.ReservationGateway) BookingCommands {
	return &bookingCommandsImpl{
		sessions: sessions,
		loader:   loader,
		mutator:  mutator{engine: engine, gateway: gateway},
	}
}

func (b *bookingCommandsImpl) Create(ctx context.Context, operatorID uuid.UUID, req reqdto.CreateBookingRequest) (*BookingResult, error) {
	in, err := req.ToInput()
	if err != nil {
		return nil, err
	}
	sess, err := b.sessions.Acquire(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	res, err := shared.Apply(sess, func(cur *schedule.Store) (*schedule.Store, *BookingResult, error) {
		next, created, err := b.createBooking(ctx, cur, in)
		if err != nil {
			return nil, nil, err
		}
		return next, &BookingResult{BookingID: created.ID(), ExternalRef: created.ExternalRef()}, nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking created", "operator_id", operatorID, "booking_id", res.BookingID, "resource_id", in.ResourceID, "external_ref", res.ExternalRef)
	return res, nil
}

func (b *bookingCommandsImpl) Move(ctx context.Context, operatorID uuid.UUID, id booking.ID, req reqdto.MoveBookingRequest) (*BookingResult, error) {
	sess, err := b.sessions.Acquire(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	return shared.Apply(sess, func(cur *schedule.Store) (*schedule.Store, *BookingResult, error) {
		next, moved, err := b.moveBooking(ctx, cur, id, req.Start, req.End)
		if err != nil {
			return nil, nil, err
		}
		return next, &BookingResult{BookingID: moved.ID()}, nil
	})
}

func (b *bookingCommandsImpl) ToggleCheckIn(ctx context.Context, operatorID uuid.UUID, target schedule.CheckInTarget) (*CheckInResult, error) {
	sess, err := b.sessions.Acquire(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	return shared.Apply(sess, func(cur *schedule.Store) (*schedule.Store, *CheckInResult, error) {
		next, checkedIn, err := b.toggleCheckIn(ctx, cur, target)
		if err != nil {
			return nil, nil, err
		}
		return next, &CheckInResult{CheckedIn: checkedIn}, nil
	})
}

func (b *bookingCommandsImpl) AddPassenger(ctx context.Context, operatorID uuid.UUID, id booking.ID, req reqdto.PassengerRequest) (*PassengerResult, error) {
	details, err := req.ToDomain()
	if err != nil {
		return nil, err
	}
	sess, err := b.sessions.Acquire(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	return shared.Apply(sess, func(cur *schedule.Store) (*schedule.Store, *PassengerResult, error) {
		next, added, err := b.engine.AddPassenger(cur, id, details)
		if err != nil {
			return nil, nil, err
		}
		return next, &PassengerResult{BookingID: id, PassengerID: added.ID()}, nil
	})
}

func (b *bookingCommandsImpl) UpdatePassenger(ctx context.Context, operatorID uuid.UUID, id booking.ID, pid booking.PassengerID, req reqdto.UpdatePassengerRequest) (*PassengerResult, error) {
	sess, err := b.sessions.Acquire(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	return shared.Apply(sess, func(cur *schedule.Store) (*schedule.Store, *PassengerResult, error) {
		existing, err := cur.Get(id)
		if err != nil {
			return nil, nil, err
		}
		party, err := existing.Party()
		if err != nil {
			return nil, nil, err
		}
		p, err := party.Passenger(pid)
		if err != nil {
			return nil, nil, err
		}

		next, updated, err := b.engine.UpdatePassenger(cur, id, pid, req.ToDomain(p.Details()))
		if err != nil {
			return nil, nil, err
		}
		return next, &PassengerResult{BookingID: id, PassengerID: updated.ID()}, nil
	})
}

func (b *bookingCommandsImpl) MovePassenger(ctx context.Context, operatorID uuid.UUID, id booking.ID, pid booking.PassengerID, req reqdto.MovePassengerRequest) (*BookingResult, error) {
	sess, err := b.sessions.Acquire(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	res, err := shared.Apply(sess, func(cur *schedule.Store) (*schedule.Store, *BookingResult, error) {
		next, destination, err := b.engine.MovePassenger(cur, req.ToInput(id, pid))
		if err != nil {
			return nil, nil, err
		}
		return next, &BookingResult{BookingID: destination.ID()}, nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("passenger moved", "operator_id", operatorID, "from_booking", id, "to_booking", res.BookingID, "passenger_id", pid)
	return res, nil
}

func (b *bookingCommandsImpl) Sync(ctx context.Context, operatorID uuid.UUID) (*SyncResult, error) {
	sess, err := b.sessions.Acquire(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	res, err := shared.Apply(sess, func(cur *schedule.Store) (*schedule.Store, *SyncResult, error) {
		fresh, err := b.loader.Load(ctx)
		if err != nil {
			return nil, nil, err
		}
		sess.Gate().Disarm()
		return fresh, &SyncResult{Bookings: fresh.Len()}, nil
	})
	if err != nil {
		slog.Warn("schedule sync failed", "operator_id", operatorID, "error", err.Error())
		return nil, err
	}

	slog.Info("schedule synced", "operator_id", operatorID, "bookings", res.Bookings)
	return res, nil
}
