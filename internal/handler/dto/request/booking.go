package request

import (
	"slices"
	"time"

	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/domain/resource"
	"boat-scheduler/internal/domain/schedule"
	"boat-scheduler/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

var ErrInvalidRange = errs.Validation("to must be after from")

type CreateBookingRequest struct {
	ResourceID     string    `json:"resource_id" binding:"required"`
	Start          time.Time `json:"start" binding:"required"`
	End            time.Time `json:"end" binding:"required"`
	Capacity       string    `json:"capacity" binding:"omitempty,oneof=single group"`
	HeadCount      int       `json:"head_count" binding:"omitempty,min=1"`
	PriceCents     int64     `json:"price_cents" binding:"omitempty,min=0"`
	Name           string    `json:"name" binding:"required,max=255"`
	Email          string    `json:"email" binding:"omitempty,email"`
	Phone          string    `json:"phone" binding:"omitempty,max=64"`
	AddOns         []string  `json:"add_ons" binding:"omitempty,dive,max=100"`
	SpecialRequest string    `json:"special_request" binding:"omitempty,max=500"`
}

func (r *CreateBookingRequest) ToInput() (schedule.CreateBookingInput, error) {
	var in schedule.CreateBookingInput
	if err := copier.Copy(&in, r); err != nil {
		return schedule.CreateBookingInput{}, errs.Wrap(err, "map create booking request")
	}
	in.AddOns = slices.Clone(r.AddOns)
	in.Contact = schedule.Contact{Name: r.Name, Email: r.Email, Phone: r.Phone}

	if r.Capacity != "" {
		capacity, err := resource.ParseCapacity(r.Capacity)
		if err != nil {
			return schedule.CreateBookingInput{}, err
		}
		in.Capacity = capacity
	}
	if in.HeadCount == 0 {
		in.HeadCount = 1
	}
	return in, nil
}

type MoveBookingRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

type MovePassengerRequest struct {
	Mode            string     `json:"mode" binding:"required,oneof=new existing"`
	TargetBookingID int        `json:"target_booking_id" binding:"omitempty,min=1"`
	Start           *time.Time `json:"start"`
	End             *time.Time `json:"end"`
}

func (r *MovePassengerRequest) ToInput(id booking.ID, pid booking.PassengerID) schedule.MovePassengerInput {
	in := schedule.MovePassengerInput{
		BookingID:       id,
		PassengerID:     pid,
		Mode:            schedule.MoveMode(r.Mode),
		TargetBookingID: booking.ID(r.TargetBookingID),
	}
	if r.Start != nil {
		in.Start = *r.Start
	}
	if r.End != nil {
		in.End = *r.End
	}
	return in
}

// ScheduleFilterRequest is bound from the query string.
type ScheduleFilterRequest struct {
	From       *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To         *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	ResourceID string     `form:"resource_id"`
}

func (r *ScheduleFilterRequest) ToDomain() (schedule.Filter, error) {
	var f schedule.Filter
	if r.From != nil {
		f.From = *r.From
	}
	if r.To != nil {
		f.To = *r.To
	}
	if !f.From.IsZero() && !f.To.IsZero() && !f.To.After(f.From) {
		return schedule.Filter{}, ErrInvalidRange
	}
	f.ResourceID = resource.ID(r.ResourceID)
	return f, nil
}
