package remote

import (
	"context"
	"log/slog"
	"time"

	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/domain/schedule"
	"boat-scheduler/internal/pkg/errs"
	"boat-scheduler/internal/usecase/shared"
)

var (
	ErrGatewayDisabled     = errs.Upstream("reservation service is not configured")
	ErrReservationRejected = errs.Upstream("reservation service did not keep the new reservation")
)

// Gateway adapts Client to the usecase layer's ReservationGateway.
type Gateway struct {
	client ReservationClient
	loc    *time.Location
	logger *slog.Logger
}

func NewGateway(client ReservationClient, loc *time.Location, logger *slog.Logger) *Gateway {
	if loc == nil {
		loc = time.UTC
	}
	return &Gateway{client: client, loc: loc, logger: logger}
}

func (g *Gateway) Enabled() bool { return true }

func (g *Gateway) FetchSchedule(ctx context.Context, from, to time.Time) (*shared.RemoteSchedule, error) {
	services, err := g.client.GetServices(ctx)
	if err != nil {
		return nil, err
	}
	fleet, err := MapServices(services)
	if err != nil {
		return nil, errs.WithKind(errs.KindUpstream, err, "reservation service returned an invalid service")
	}

	reservations, err := g.client.GetReservations(ctx, from.In(g.loc), to.In(g.loc))
	if err != nil {
		return nil, err
	}
	mapped := MapReservations(reservations, fleet, g.loc)
	if len(mapped.Skipped) > 0 {
		g.logger.Warn("Skipped unreadable reservations",
			slog.Int("count", len(mapped.Skipped)),
			slog.Any("ids", mapped.Skipped))
	}
	if len(mapped.Unknown) > 0 {
		placeholders, err := PlaceholderResources(mapped.Unknown)
		if err != nil {
			return nil, errs.WithKind(errs.KindUpstream, err, "reservation service returned an invalid service id")
		}
		g.logger.Warn("Reservations reference unlisted services", slog.Any("service_ids", mapped.Unknown))
		fleet = append(fleet, placeholders...)
	}

	g.logger.Info("Fetched remote schedule",
		slog.Time("from", from),
		slog.Time("to", to),
		slog.Int("resources", len(fleet)),
		slog.Int("bookings", len(mapped.Bookings)))
	return &shared.RemoteSchedule{Resources: fleet, Bookings: mapped.Bookings}, nil
}

// Create books b on its service and reads the reservation back. A reservation the service
// cancelled straight away counts as rejected. If only the read-back fails the new id is still
// returned, since the service has already accepted the booking.
func (g *Gateway) Create(ctx context.Context, b *booking.Booking, contact schedule.Contact) (string, error) {
	slot := b.Slot()
	ack, err := g.client.CreateReservation(ctx, NewReservation{
		ServiceID:  RefID(b.ResourceID()),
		StartTime:  slot.Start().In(g.loc).Format(dateTimeLayout),
		EndTime:    slot.End().In(g.loc).Format(dateTimeLayout),
		ClientName: contact.Name,
		Email:      contact.Email,
		Phone:      contact.Phone,
		Amount:     b.Price().Dollars(),
	})
	if err != nil {
		return "", err
	}
	ref := ack.ReservationID

	created, err := g.client.GetReservation(ctx, ref)
	if err != nil {
		g.logger.Warn("Created reservation could not be read back",
			slog.String("reservation_id", ref.String()),
			slog.String("error", err.Error()))
		return ref.String(), nil
	}
	if created.Cancelled {
		return "", errs.Wrapf(ErrReservationRejected, "reservation %s", ref)
	}

	g.logger.Info("Created remote reservation",
		slog.String("reservation_id", ref.String()),
		slog.String("service_id", string(b.ResourceID())),
		slog.String("status", StatusLabel(*created)))
	return ref.String(), nil
}

func (g *Gateway) CheckIn(ctx context.Context, ref string) error {
	return g.client.CheckIn(ctx, RefID(ref))
}

func (g *Gateway) CheckOut(ctx context.Context, ref string) error {
	return g.client.CheckOut(ctx, RefID(ref))
}

func (g *Gateway) Cancel(ctx context.Context, ref, reason string) error {
	return g.client.CancelReservation(ctx, RefID(ref), reason)
}

func (g *Gateway) Refund(ctx context.Context, ref string, amount booking.Money) error {
	return g.client.Refund(ctx, RefID(ref), amount.Dollars())
}

// Modify keeps the reservation on its service; only the times change.
func (g *Gateway) Modify(ctx context.Context, ref string, slot booking.TimeSlot) error {
	return g.client.ModifyReservation(ctx, RefID(ref), slot.Start().In(g.loc), slot.End().In(g.loc))
}

// NoopGateway stands in when no reservation service is configured. Local bookings never carry
// an external reference, so the mutators are unreachable in practice.
type NoopGateway struct{}

func (NoopGateway) Enabled() bool { return false }

func (NoopGateway) FetchSchedule(context.Context, time.Time, time.Time) (*shared.RemoteSchedule, error) {
	return nil, ErrGatewayDisabled
}

func (NoopGateway) Create(context.Context, *booking.Booking, schedule.Contact) (string, error) {
	return "", ErrGatewayDisabled
}

func (NoopGateway) CheckIn(context.Context, string) error                  { return nil }
func (NoopGateway) CheckOut(context.Context, string) error                 { return nil }
func (NoopGateway) Cancel(context.Context, string, string) error           { return nil }
func (NoopGateway) Refund(context.Context, string, booking.Money) error    { return nil }
func (NoopGateway) Modify(context.Context, string, booking.TimeSlot) error { return nil }

var (
	_ shared.ReservationGateway = (*Gateway)(nil)
	_ shared.ReservationGateway = NoopGateway{}
)
