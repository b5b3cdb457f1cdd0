package request

import (
	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/domain/confirm"
)

// ConfirmRequest arms a destructive action, or executes it when the same action is already armed.
type ConfirmRequest struct {
	Action      string   `json:"action" binding:"required"`
	BookingID   int      `json:"booking_id" binding:"required,min=1"`
	PassengerID string   `json:"passenger_id"`
	Percentage  *float64 `json:"percentage"`
}

func (r *ConfirmRequest) ToDomain() (confirm.Kind, confirm.Target, error) {
	kind, err := confirm.ParseKind(r.Action)
	if err != nil {
		return "", confirm.Target{}, err
	}
	target, err := confirm.NewTarget(kind, booking.ID(r.BookingID), booking.PassengerID(r.PassengerID))
	if err != nil {
		return "", confirm.Target{}, err
	}
	return kind, target, nil
}
