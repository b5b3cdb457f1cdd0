package remote

import (
	"math"
	"slices"
	"strings"
	"time"

	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/domain/resource"
)

// Status colors shown for imported reservations.
const (
	ColorCancelled      = "#f5222d"
	ColorCheckedIn      = "#52c41a"
	ColorCheckedOut     = "#8c8c8c"
	ColorPendingPayment = "#faad14"
	ColorConfirmed      = "#1890ff"
	ColorUnknown        = "#d9d9d9"
)

const (
	unnamedClient  = "Unnamed Client"
	unnamedService = "Unnamed Service"
	unknownGroup   = "unassigned"
)

func StatusColor(r Reservation) string {
	switch {
	case r.Cancelled:
		return ColorCancelled
	case r.CheckedIn && !r.CheckedOut:
		return ColorCheckedIn
	case r.CheckedOut:
		return ColorCheckedOut
	case r.PendingPayment:
		return ColorPendingPayment
	case r.Confirmed:
		return ColorConfirmed
	default:
		return ColorUnknown
	}
}

func StatusLabel(r Reservation) string {
	switch {
	case r.Cancelled:
		return "Cancelled"
	case r.CheckedOut:
		return "Checked Out"
	case r.CheckedIn:
		return "Checked In"
	case r.PendingPayment:
		return "Pending Payment"
	case r.Confirmed:
		return "Confirmed"
	default:
		return "Pending"
	}
}

// MapServices turns bookable services into single-capacity boats. Category entries only
// group other services and are left out.
func MapServices(services []Service) ([]*resource.Resource, error) {
	out := make([]*resource.Resource, 0, len(services))
	for _, s := range services {
		if s.ID == "" || s.IsCategory {
			continue
		}
		r, err := resource.NewResource(resource.ID(s.ID), serviceName(s), s.CategoryID.String(), resource.CapacitySingle, "")
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func serviceName(s Service) string {
	for _, name := range []string{s.DisplayName, s.Name} {
		if strings.TrimSpace(name) != "" {
			return name
		}
	}
	return unnamedService
}

// Mapped is an import result. Skipped holds reservations that could not be placed on the
// schedule because their times or service did not parse.
type Mapped struct {
	Bookings []*booking.Booking
	// Unknown lists service ids referenced by reservations but missing from the service list.
	Unknown []resource.ID
	Skipped []RefID
}

// MapReservations converts live reservations into single bookings sorted by start time.
// Cancelled reservations are dropped. Local ids are assigned 1..n in that order and the
// service's id is kept as the external reference. Times without a zone are read in loc.
func MapReservations(reservations []Reservation, known []*resource.Resource, loc *time.Location) Mapped {
	if loc == nil {
		loc = time.UTC
	}
	knownIDs := make(map[resource.ID]struct{}, len(known))
	for _, r := range known {
		knownIDs[r.ID()] = struct{}{}
	}

	type placed struct {
		res  Reservation
		slot booking.TimeSlot
	}
	var (
		m    Mapped
		kept []placed
	)
	for _, r := range reservations {
		if r.ID == "" || r.Cancelled {
			continue
		}
		slot, ok := parseSlot(r.StartTime, r.EndTime, loc)
		if !ok || r.ServiceID == "" {
			m.Skipped = append(m.Skipped, r.ID)
			continue
		}
		kept = append(kept, placed{res: r, slot: slot})
	}
	slices.SortStableFunc(kept, func(a, b placed) int {
		return a.slot.Start().Compare(b.slot.Start())
	})

	for i, p := range kept {
		title := strings.TrimSpace(p.res.ClientName)
		if title == "" {
			title = unnamedClient
		}
		boat := resource.ID(p.res.ServiceID)
		b, err := booking.NewSingle(booking.Draft{
			ID:          booking.ID(i + 1),
			Title:       title,
			Slot:        p.slot,
			ResourceID:  boat,
			Color:       StatusColor(p.res),
			PriceCents:  toCents(p.res.TotalAmount),
			CheckedIn:   p.res.CheckedIn && !p.res.CheckedOut,
			ExternalRef: p.res.ID.String(),
		})
		if err != nil {
			m.Skipped = append(m.Skipped, p.res.ID)
			continue
		}
		if _, ok := knownIDs[boat]; !ok && !slices.Contains(m.Unknown, boat) {
			m.Unknown = append(m.Unknown, boat)
		}
		m.Bookings = append(m.Bookings, b)
	}
	return m
}

// PlaceholderResources gives reservations on unlisted services a boat to sit on.
func PlaceholderResources(ids []resource.ID) ([]*resource.Resource, error) {
	out := make([]*resource.Resource, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		r, err := resource.NewResource(id, unnamedService+" "+id.String(), unknownGroup, resource.CapacitySingle, "")
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

var zonelessLayouts = []string{dateTimeLayout, "2006-01-02T15:04:05", "2006-01-02T15:04"}

func parseTime(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), true
	}
	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseSlot(start, end string, loc *time.Location) (booking.TimeSlot, bool) {
	from, ok := parseTime(start, loc)
	if !ok {
		return booking.TimeSlot{}, false
	}
	to, ok := parseTime(end, loc)
	if !ok {
		return booking.TimeSlot{}, false
	}
	slot, err := booking.NewTimeSlot(from, to)
	if err != nil {
		return booking.TimeSlot{}, false
	}
	return slot, true
}

func toCents(amount float64) int64 {
	if amount <= 0 {
		return 0
	}
	return int64(math.Round(amount * 100))
}
