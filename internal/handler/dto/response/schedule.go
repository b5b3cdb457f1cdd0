package response

import (
	"time"

	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/usecase/commands"
	"boat-scheduler/internal/usecase/queries"
)

type ResourceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	GroupID  string `json:"group_id,omitempty"`
	Capacity string `json:"capacity"`
	Color    string `json:"color"`
}

type RefundResponse struct {
	Percentage float64 `json:"percentage"`
	Amount     string  `json:"amount"`
}

type PassengerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	HeadCount      int             `json:"head_count"`
	Price          string          `json:"price"`
	Total          string          `json:"total"`
	AddOns         []string        `json:"add_ons"`
	SpecialRequest string          `json:"special_request"`
	CheckedIn      bool            `json:"checked_in"`
	Refund         *RefundResponse `json:"refund,omitempty"`
}

type BookingResponse struct {
	ID          int                 `json:"id"`
	Title       string              `json:"title"`
	Start       time.Time           `json:"start"`
	End         time.Time           `json:"end"`
	ResourceID  string              `json:"resource_id"`
	Capacity    string              `json:"capacity"`
	Color       string              `json:"color"`
	Total       string              `json:"total"`
	HeadCount   int                 `json:"head_count"`
	CheckedIn   bool                `json:"checked_in"`
	Refund      *RefundResponse     `json:"refund,omitempty"`
	ExternalRef string              `json:"external_ref,omitempty"`
	Passengers  []PassengerResponse `json:"passengers,omitempty"`
}

type GateResponse struct {
	Armed       bool       `json:"armed"`
	Action      string     `json:"action,omitempty"`
	BookingID   int        `json:"booking_id,omitempty"`
	PassengerID string     `json:"passenger_id,omitempty"`
	ArmedAt     *time.Time `json:"armed_at,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	TimeoutMS   int64      `json:"timeout_ms"`
}

type ScheduleResponse struct {
	Resources []ResourceResponse `json:"resources"`
	Bookings  []BookingResponse  `json:"bookings"`
	Gate      GateResponse       `json:"gate"`
}

// MutationResponse carries what a mutation produced next to the schedule it left behind.
type MutationResponse struct {
	Result   any               `json:"result,omitempty"`
	Schedule *ScheduleResponse `json:"schedule"`
}

type StatsResponse struct {
	Total         int     `json:"total"`
	CheckedIn     int     `json:"checked_in"`
	Refunded      int     `json:"refunded"`
	Pending       int     `json:"pending"`
	HeadCount     int     `json:"head_count"`
	Revenue       string  `json:"revenue"`
	RefundedTotal string  `json:"refunded_total"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

type BookingResult struct {
	BookingID int `json:"booking_id"`
}

type PassengerResult struct {
	BookingID   int    `json:"booking_id"`
	PassengerID string `json:"passenger_id"`
}

type CheckInResult struct {
	CheckedIn bool `json:"checked_in"`
}

type SyncResult struct {
	Bookings int `json:"bookings"`
}

type ConfirmResult struct {
	Outcome     string     `json:"outcome"`
	Action      string     `json:"action"`
	BookingID   int        `json:"booking_id"`
	PassengerID string     `json:"passenger_id,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

func money(cents int64) string {
	return booking.NewMoney(cents).String()
}

func FromScheduleView(v *queries.ScheduleView) *ScheduleResponse {
	res := &ScheduleResponse{
		Resources: FromResourceViews(v.Resources),
		Bookings:  make([]BookingResponse, len(v.Bookings)),
		Gate:      FromGateView(v.Gate),
	}
	for i := range v.Bookings {
		res.Bookings[i] = FromBookingView(&v.Bookings[i])
	}
	return res
}

func FromResourceViews(views []queries.ResourceView) []ResourceResponse {
	out := make([]ResourceResponse, len(views))
	for i, r := range views {
		out[i] = ResourceResponse{ID: r.ID, Name: r.Name, GroupID: r.GroupID, Capacity: r.Capacity, Color: r.Color}
	}
	return out
}

func FromBookingView(v *queries.BookingView) BookingResponse {
	res := BookingResponse{
		ID:          v.ID,
		Title:       v.Title,
		Start:       v.Start,
		End:         v.End,
		ResourceID:  v.ResourceID,
		Capacity:    v.Capacity,
		Color:       v.Color,
		Total:       money(v.TotalCents),
		HeadCount:   v.HeadCount,
		CheckedIn:   v.CheckedIn,
		Refund:      fromRefundView(v.Refund),
		ExternalRef: v.ExternalRef,
	}
	for _, p := range v.Passengers {
		addOns := p.AddOns
		if addOns == nil {
			addOns = []string{}
		}
		res.Passengers = append(res.Passengers, PassengerResponse{
			ID:             p.ID,
			Name:           p.Name,
			Email:          p.Email,
			Phone:          p.Phone,
			HeadCount:      p.HeadCount,
			Price:          money(p.PriceCents),
			Total:          money(p.TotalCents),
			AddOns:         addOns,
			SpecialRequest: p.SpecialRequest,
			CheckedIn:      p.CheckedIn,
			Refund:         fromRefundView(p.Refund),
		})
	}
	return res
}

func fromRefundView(v *queries.RefundView) *RefundResponse {
	if v == nil {
		return nil
	}
	return &RefundResponse{Percentage: v.Percentage, Amount: money(v.AmountCents)}
}

func FromGateView(v queries.GateView) GateResponse {
	res := GateResponse{Armed: v.Armed, TimeoutMS: v.Timeout.Milliseconds()}
	if v.Armed {
		armedAt, expiresAt := v.ArmedAt, v.ExpiresAt
		res.Action = v.Kind
		res.BookingID = v.BookingID
		res.PassengerID = v.PassengerID
		res.ArmedAt = &armedAt
		res.ExpiresAt = &expiresAt
	}
	return res
}

func FromStatsView(v *queries.StatsView) *StatsResponse {
	return &StatsResponse{
		Total:         v.Total,
		CheckedIn:     v.CheckedIn,
		Refunded:      v.Refunded,
		Pending:       v.Pending,
		HeadCount:     v.HeadCount,
		Revenue:       money(v.RevenueCents),
		RefundedTotal: money(v.RefundedTotalCents),
		OccupancyRate: v.OccupancyRate,
	}
}

func FromConfirmResult(r *commands.ConfirmResult) *ConfirmResult {
	res := &ConfirmResult{
		Outcome:     string(r.Outcome),
		Action:      string(r.Kind),
		BookingID:   int(r.Target.BookingID),
		PassengerID: r.Target.PassengerID.String(),
	}
	if !r.ExpiresAt.IsZero() {
		expiresAt := r.ExpiresAt
		res.ExpiresAt = &expiresAt
	}
	return res
}
