package queries

import (
	"context"

	"github.com/google/uuid"

	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/domain/confirm"
	"boat-scheduler/internal/domain/resource"
	"boat-scheduler/internal/domain/schedule"
	"boat-scheduler/internal/usecase/shared"
)

type ScheduleQueries interface {
	Schedule(ctx context.Context, operatorID uuid.UUID, f schedule.Filter) (*ScheduleView, error)
	Booking(ctx context.Context, operatorID uuid.UUID, id booking.ID) (*BookingView, error)
	Stats(ctx context.Context, operatorID uuid.UUID, f schedule.Filter) (*StatsView, error)
	Resources(ctx context.Context, operatorID uuid.UUID) ([]ResourceView, error)
	Gate(ctx context.Context, operatorID uuid.UUID) (*GateView, error)
}

type scheduleQueriesImpl struct {
	sessions    shared.SessionRepository
	singlePrice booking.Money
}

func NewScheduleQueries(sessions shared.SessionRepository, engine *schedule.Engine) ScheduleQueries {
	return &scheduleQueriesImpl{
		sessions:    sessions,
		singlePrice: engine.SinglePrice(),
	}
}

func (q *scheduleQueriesImpl) Schedule(ctx context.Context, operatorID uuid.UUID, f schedule.Filter) (*ScheduleView, error) {
	sess, err := q.sessions.Acquire(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	store := sess.Snapshot()

	bookings := store.Find(f)
	view := &ScheduleView{
		Resources: toResourceViews(store.Resources()),
		Bookings:  make([]BookingView, 0, len(bookings)),
		Gate:      toGateView(sess.Gate()),
	}
	for _, b := range bookings {
		view.Bookings = append(view.Bookings, toBookingView(b, q.singlePrice))
	}
	return view, nil
}

func (q *scheduleQueriesImpl) Booking(ctx context.Context, operatorID uuid.UUID, id booking.ID) (*BookingView, error) {
	sess, err := q.sessions.Acquire(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	b, err := sess.Snapshot().Get(id)
	if err != nil {
		return nil, err
	}
	view := toBookingView(b, q.singlePrice)
	return &view, nil
}

func (q *scheduleQueriesImpl) Stats(ctx context.Context, operatorID uuid.UUID, f schedule.Filter) (*StatsView, error) {
	sess, err := q.sessions.Acquire(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	store := sess.Snapshot()

	boats := len(store.Resources())
	if f.ResourceID != "" {
		boats = 1
	}
	st := schedule.ComputeStats(store.Find(f), boats, q.singlePrice)
	return &StatsView{
		Total:              st.Total,
		CheckedIn:          st.CheckedIn,
		Refunded:           st.Refunded,
		Pending:            st.Pending,
		HeadCount:          st.HeadCount,
		RevenueCents:       st.Revenue.Cents(),
		RefundedTotalCents: st.RefundedTotal.Cents(),
		OccupancyRate:      st.OccupancyRate,
	}, nil
}

func (q *scheduleQueriesImpl) Resources(ctx context.Context, operatorID uuid.UUID) ([]ResourceView, error) {
	sess, err := q.sessions.Acquire(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	return toResourceViews(sess.Snapshot().Resources()), nil
}

func (q *scheduleQueriesImpl) Gate(ctx context.Context, operatorID uuid.UUID) (*GateView, error) {
	sess, err := q.sessions.Acquire(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	view := toGateView(sess.Gate())
	return &view, nil
}

func toResourceViews(resources []*resource.Resource) []ResourceView {
	out := make([]ResourceView, len(resources))
	for i, r := range resources {
		out[i] = ResourceView{
			ID:       r.ID().String(),
			Name:     r.Name(),
			GroupID:  r.GroupID(),
			Capacity: r.Capacity().String(),
			Color:    r.Color(),
		}
	}
	return out
}

func toBookingView(b *booking.Booking, singlePrice booking.Money) BookingView {
	slot := b.Slot()
	view := BookingView{
		ID:          int(b.ID()),
		Title:       b.Title(),
		Start:       slot.Start(),
		End:         slot.End(),
		ResourceID:  b.ResourceID().String(),
		Capacity:    b.Capacity().String(),
		Color:       b.Color(),
		TotalCents:  b.TotalPrice(singlePrice).Cents(),
		HeadCount:   b.HeadCount(),
		CheckedIn:   b.CheckedIn(),
		ExternalRef: b.ExternalRef(),
	}
	if r, ok := b.Refund(); ok {
		view.Refund = toRefundView(r)
	}
	if party, err := b.Party(); err == nil {
		for _, p := range party.Passengers() {
			view.Passengers = append(view.Passengers, toPassengerView(p))
		}
	}
	return view
}

func toPassengerView(p *booking.Passenger) PassengerView {
	view := PassengerView{
		ID:             p.ID().String(),
		Name:           p.Name(),
		Email:          p.Email(),
		Phone:          p.Phone(),
		HeadCount:      p.HeadCount(),
		PriceCents:     p.Price().Cents(),
		TotalCents:     p.Total().Cents(),
		AddOns:         p.AddOns(),
		SpecialRequest: p.SpecialRequest(),
		CheckedIn:      p.CheckedIn(),
	}
	if r, ok := p.Refund(); ok {
		view.Refund = toRefundView(r)
	}
	return view
}

func toRefundView(r booking.Refund) *RefundView {
	return &RefundView{Percentage: r.Percentage(), AmountCents: r.Amount().Cents()}
}

func toGateView(g *confirm.Gate) GateView {
	view := GateView{Timeout: g.Timeout()}
	if p, ok := g.Pending(); ok {
		view.Armed = true
		view.Kind = string(p.Kind)
		view.BookingID = int(p.Target.BookingID)
		view.PassengerID = p.Target.PassengerID.String()
		view.ArmedAt = p.ArmedAt
		view.ExpiresAt = p.ExpiresAt
	}
	return view
}
