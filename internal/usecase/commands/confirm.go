package commands

import (
	"context"
	"log/slog"
	"time"

	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/domain/confirm"
	"boat-scheduler/internal/domain/schedule"
	reqdto "boat-scheduler/internal/handler/dto/request"
	"boat-scheduler/internal/pkg/errs"
	"boat-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrMissingPercentage = errs.Validation("percentage is required for refunds")

type ConfirmResult struct {
	Outcome confirm.Outcome
	Kind    confirm.Kind
	Target  confirm.Target
	// ExpiresAt is set while the action is armed.
	ExpiresAt time.Time
}

// ConfirmCommands guards the destructive actions behind a double invocation.
type ConfirmCommands interface {
	Invoke(ctx context.Context, operatorID uuid.UUID, req reqdto.ConfirmRequest) (*ConfirmResult, error)
	Disarm(ctx context.Context, operatorID uuid.UUID) (bool, error)
}

type confirmCommandsImpl struct {
	sessions shared.SessionRepository
	mutator
}

func NewConfirmCommands(sessions shared.SessionRepository, engine *schedule.Engine, gateway shared.ReservationGateway) ConfirmCommands {
	return &confirmCommandsImpl{
		sessions: sessions,
		mutator:  mutator{engine: engine, gateway: gateway},
	}
}

func (c *confirmCommandsImpl) Invoke(ctx context.Context, operatorID uuid.UUID, req reqdto.ConfirmRequest) (*ConfirmResult, error) {
	kind, target, err := req.ToDomain()
	if err != nil {
		return nil, err
	}
	percentage, err := percentageFor(kind, req.Percentage)
	if err != nil {
		return nil, err
	}
	sess, err := c.sessions.Acquire(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	res, err := shared.Apply(sess, func(cur *schedule.Store) (*schedule.Store, *ConfirmResult, error) {
		next := cur
		outcome, err := sess.Gate().Invoke(kind, target, func() error {
			var err error
			next, err = c.execute(ctx, cur, kind, target, percentage)
			return err
		})
		if err != nil {
			return nil, nil, err
		}

		res := &ConfirmResult{Outcome: outcome, Kind: kind, Target: target}
		if p, ok := sess.Gate().Pending(); ok && outcome == confirm.OutcomeArmed {
			res.ExpiresAt = p.ExpiresAt
		}
		return next, res, nil
	})
	if err != nil {
		slog.Warn("confirmed action failed", "operator_id", operatorID, "kind", kind, "booking_id", target.BookingID, "error", err.Error())
		return nil, err
	}

	if res.Outcome == confirm.OutcomeExecuted {
		slog.Info("confirmed action executed", "operator_id", operatorID, "kind", kind, "booking_id", target.BookingID, "passenger_id", target.PassengerID)
	}
	return res, nil
}

func (c *confirmCommandsImpl) Disarm(ctx context.Context, operatorID uuid.UUID) (bool, error) {
	sess, err := c.sessions.Acquire(ctx, operatorID)
	if err != nil {
		return false, err
	}
	return sess.Gate().Disarm(), nil
}

func (c *confirmCommandsImpl) execute(ctx context.Context, cur *schedule.Store, kind confirm.Kind, target confirm.Target, percentage float64) (*schedule.Store, error) {
	switch kind {
	case confirm.KindCancel:
		return c.cancel(ctx, cur, target.BookingID)
	case confirm.KindRefund:
		return c.refund(ctx, cur, target.BookingID, percentage)
	case confirm.KindRefundPassenger:
		return c.refundPassenger(cur, target.BookingID, target.PassengerID, percentage)
	case confirm.KindRemovePassenger:
		return c.removePassenger(cur, target.BookingID, target.PassengerID)
	default:
		return nil, confirm.ErrUnknownKind
	}
}

// percentageFor validates the refund percentage up front so a bad value never arms the gate.
func percentageFor(kind confirm.Kind, pct *float64) (float64, error) {
	if kind != confirm.KindRefund && kind != confirm.KindRefundPassenger {
		return 0, nil
	}
	if pct == nil {
		return 0, ErrMissingPercentage
	}
	if *pct < 0 || *pct > 100 {
		return 0, booking.ErrInvalidRefundPercentage
	}
	return *pct, nil
}
