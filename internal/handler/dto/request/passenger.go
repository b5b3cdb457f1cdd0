package request

import (
	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/pkg/errs"
	"boat-scheduler/internal/pkg/patch"

	"github.com/jinzhu/copier"
)

type PassengerRequest struct {
	Name           string   `json:"name" binding:"required,max=255"`
	Email          string   `json:"email" binding:"omitempty,email"`
	Phone          string   `json:"phone" binding:"omitempty,max=64"`
	HeadCount      int      `json:"head_count" binding:"omitempty,min=1"`
	PriceCents     int64    `json:"price_cents" binding:"omitempty,min=0"`
	AddOns         []string `json:"add_ons" binding:"omitempty,dive,max=100"`
	SpecialRequest string   `json:"special_request" binding:"omitempty,max=500"`
}

func (r *PassengerRequest) ToDomain() (booking.PassengerDetails, error) {
	var d booking.PassengerDetails
	if err := copier.CopyWithOption(&d, r, copier.Option{DeepCopy: true}); err != nil {
		return booking.PassengerDetails{}, errs.Wrap(err, "map passenger request")
	}
	if d.HeadCount == 0 {
		d.HeadCount = 1
	}
	return d, nil
}

// UpdatePassengerRequest only changes the fields that are sent. An empty add_ons list clears them.
type UpdatePassengerRequest struct {
	Name           *string  `json:"name" binding:"omitempty,max=255"`
	Email          *string  `json:"email" binding:"omitempty,email"`
	Phone          *string  `json:"phone" binding:"omitempty,max=64"`
	HeadCount      *int     `json:"head_count" binding:"omitempty,min=1"`
	PriceCents     *int64   `json:"price_cents" binding:"omitempty,min=0"`
	AddOns         []string `json:"add_ons" binding:"omitempty,dive,max=100"`
	SpecialRequest *string  `json:"special_request" binding:"omitempty,max=500"`
}

func (r *UpdatePassengerRequest) ToDomain(existing booking.PassengerDetails) booking.PassengerDetails {
	return booking.PassengerDetails{
		Name:           patch.Coalesce(r.Name, existing.Name),
		Email:          patch.Coalesce(r.Email, existing.Email),
		Phone:          patch.Coalesce(r.Phone, existing.Phone),
		HeadCount:      patch.Coalesce(r.HeadCount, existing.HeadCount),
		PriceCents:     patch.Coalesce(r.PriceCents, existing.PriceCents),
		AddOns:         patch.CoalesceSlice(r.AddOns, existing.AddOns),
		SpecialRequest: patch.Coalesce(r.SpecialRequest, existing.SpecialRequest),
	}
}
