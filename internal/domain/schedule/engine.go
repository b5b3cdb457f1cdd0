package schedule

import (
	"strings"
	"time"

	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/domain/resource"
	"boat-scheduler/internal/pkg/errs"
)

// DefaultSinglePriceCents is the nominal total used to refund single-capacity bookings.
const DefaultSinglePriceCents int64 = 45000

var (
	ErrSlotConflict         = errs.Conflict("time slot conflicts with another reservation on this boat")
	ErrCapacityMismatch     = errs.Validation("capacity class does not match the boat")
	ErrGroupBookingMove     = errs.Validation("group bookings are moved passenger by passenger")
	ErrSameBooking          = errs.Validation("passenger is already on the target booking")
	ErrUnknownMoveMode      = errs.Validation("move mode must be new or existing")
	ErrMissingTargetBooking = errs.Validation("target booking is required")
	ErrRefundedCancel       = errs.State("cannot cancel a refunded booking")
)

type Contact struct {
	Name  string
	Email string
	Phone string
}

type CreateBookingInput struct {
	ResourceID resource.ID
	Start      time.Time
	End        time.Time
	// Capacity defaults to the boat's own class when empty.
	Capacity       resource.Capacity
	HeadCount      int
	PriceCents     int64
	Contact        Contact
	AddOns         []string
	SpecialRequest string
}

type MoveMode string

const (
	MoveToNew      MoveMode = "new"
	MoveToExisting MoveMode = "existing"
)

type MovePassengerInput struct {
	BookingID   booking.ID
	PassengerID booking.PassengerID
	Mode        MoveMode
	// TargetBookingID is read for MoveToExisting, Start and End for MoveToNew.
	TargetBookingID booking.ID
	Start           time.Time
	End             time.Time
}

// CheckInTarget selects a whole booking, or one of its passengers when PassengerID is set.
type CheckInTarget struct {
	BookingID   booking.ID
	PassengerID booking.PassengerID
}

// Engine applies schedule mutations. Every operation validates against a clone of the given
// Store and returns the clone on success; on failure the given Store is left as it was.
type Engine struct {
	singlePrice booking.Money
}

func NewEngine(singlePriceCents int64) *Engine {
	if singlePriceCents <= 0 {
		singlePriceCents = DefaultSinglePriceCents
	}
	return &Engine{singlePrice: booking.NewMoney(singlePriceCents)}
}

func (e *Engine) SinglePrice() booking.Money {
	return e.singlePrice
}

func (e *Engine) CreateBooking(s *Store, in CreateBookingInput) (*Store, *booking.Booking, error) {
	slot, err := booking.NewTimeSlot(in.Start, in.End)
	if err != nil {
		return nil, nil, err
	}
	boat, err := s.Resource(in.ResourceID)
	if err != nil {
		return nil, nil, err
	}
	capacity := in.Capacity
	if capacity == "" {
		capacity = boat.Capacity()
	}
	if capacity != boat.Capacity() {
		return nil, nil, ErrCapacityMismatch
	}
	name := strings.TrimSpace(in.Contact.Name)
	if name == "" {
		return nil, nil, booking.ErrEmptyPassengerName
	}
	if in.HeadCount < 1 {
		return nil, nil, booking.ErrInvalidHeadCount
	}
	if in.PriceCents < 0 {
		return nil, nil, booking.ErrNegativePrice
	}
	if booking.HasConflict(slot, boat.ID(), booking.NoID, s.bookings) {
		return nil, nil, ErrSlotConflict
	}

	draft := booking.Draft{
		ID:         s.nextID(),
		Title:      booking.HeadCountTitle(name, in.HeadCount),
		Slot:       slot,
		ResourceID: boat.ID(),
		Color:      boat.Color(),
		PriceCents: in.PriceCents,
		HeadCount:  in.HeadCount,
	}

	var created *booking.Booking
	if capacity == resource.CapacityGroup {
		p, err := booking.NewPassenger("p1", booking.PassengerDetails{
			Name:           name,
			Email:          in.Contact.Email,
			Phone:          in.Contact.Phone,
			HeadCount:      in.HeadCount,
			PriceCents:     in.PriceCents,
			AddOns:         in.AddOns,
			SpecialRequest: in.SpecialRequest,
		})
		if err != nil {
			return nil, nil, err
		}
		created, err = booking.NewGroup(draft, []*booking.Passenger{p})
		if err != nil {
			return nil, nil, err
		}
	} else {
		created, err = booking.NewSingle(draft)
		if err != nil {
			return nil, nil, err
		}
	}

	next := s.Clone()
	next.add(created)
	return next, created, nil
}

// MoveBooking reschedules a single-capacity booking on its own boat.
func (e *Engine) MoveBooking(s *Store, id booking.ID, start, end time.Time) (*Store, *booking.Booking, error) {
	current, err := s.Get(id)
	if err != nil {
		return nil, nil, err
	}
	if current.IsGroup() {
		return nil, nil, ErrGroupBookingMove
	}
	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return nil, nil, err
	}
	if booking.HasConflict(slot, current.ResourceID(), current.ID(), s.bookings) {
		return nil, nil, ErrSlotConflict
	}

	next := s.Clone()
	moved, _ := next.Get(id)
	moved.Reschedule(slot)
	return next, moved, nil
}

// MovePassenger transfers a passenger out of a group booking, either into a fresh booking on
// the same boat or onto another group booking. A source left without passengers is deleted.
// Passenger transfers do not check for overlaps.
func (e *Engine) MovePassenger(s *Store, in MovePassengerInput) (*Store, *booking.Booking, error) {
	next := s.Clone()
	source, err := next.Get(in.BookingID)
	if err != nil {
		return nil, nil, err
	}
	party, err := source.Party()
	if err != nil {
		return nil, nil, err
	}
	moving, err := party.Passenger(in.PassengerID)
	if err != nil {
		return nil, nil, err
	}

	var destination *booking.Booking
	switch in.Mode {
	case MoveToNew:
		slot, err := booking.NewTimeSlot(in.Start, in.End)
		if err != nil {
			return nil, nil, err
		}
		destination, err = booking.NewGroup(booking.Draft{
			ID:         next.nextID(),
			Title:      booking.HeadCountTitle(moving.FirstName(), moving.HeadCount()),
			Slot:       slot,
			ResourceID: source.ResourceID(),
			Color:      source.Color(),
			CheckedIn:  moving.CheckedIn(),
		}, []*booking.Passenger{moving.Clone()})
		if err != nil {
			return nil, nil, err
		}
		next.add(destination)
	case MoveToExisting:
		if in.TargetBookingID == booking.NoID {
			return nil, nil, ErrMissingTargetBooking
		}
		if in.TargetBookingID == source.ID() {
			return nil, nil, ErrSameBooking
		}
		destination, err = next.Get(in.TargetBookingID)
		if err != nil {
			return nil, nil, err
		}
		if _, err := destination.AdoptPassenger(moving); err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, ErrUnknownMoveMode
	}

	if _, err := source.RemovePassenger(moving.ID()); err != nil {
		return nil, nil, err
	}
	if party.Len() == 0 {
		next.remove(source.ID())
	}
	return next, destination, nil
}

func (e *Engine) AddPassenger(s *Store, id booking.ID, d booking.PassengerDetails) (*Store, *booking.Passenger, error) {
	next := s.Clone()
	b, err := next.Get(id)
	if err != nil {
		return nil, nil, err
	}
	p, err := b.AddPassenger(d)
	if err != nil {
		return nil, nil, err
	}
	return next, p, nil
}

func (e *Engine) UpdatePassenger(s *Store, id booking.ID, pid booking.PassengerID, d booking.PassengerDetails) (*Store, *booking.Passenger, error) {
	next := s.Clone()
	b, err := next.Get(id)
	if err != nil {
		return nil, nil, err
	}
	p, err := b.UpdatePassenger(pid, d)
	if err != nil {
		return nil, nil, err
	}
	return next, p, nil
}

// RemovePassenger keeps the booking even when its last passenger goes.
func (e *Engine) RemovePassenger(s *Store, id booking.ID, pid booking.PassengerID) (*Store, *booking.Passenger, error) {
	next := s.Clone()
	b, err := next.Get(id)
	if err != nil {
		return nil, nil, err
	}
	p, err := b.RemovePassenger(pid)
	if err != nil {
		return nil, nil, err
	}
	return next, p, nil
}

func (e *Engine) CancelBooking(s *Store, id booking.ID) (*Store, *booking.Booking, error) {
	b, err := s.Get(id)
	if err != nil {
		return nil, nil, err
	}
	if b.IsRefunded() {
		return nil, nil, ErrRefundedCancel
	}
	next := s.Clone()
	next.remove(id)
	return next, b, nil
}

func (e *Engine) RefundBooking(s *Store, id booking.ID, percentage float64) (*Store, *booking.Booking, error) {
	next := s.Clone()
	b, err := next.Get(id)
	if err != nil {
		return nil, nil, err
	}
	r, err := booking.NewRefund(b.TotalPrice(e.singlePrice), percentage)
	if err != nil {
		return nil, nil, err
	}
	b.ApplyRefund(r)
	return next, b, nil
}

func (e *Engine) RefundPassenger(s *Store, id booking.ID, pid booking.PassengerID, percentage float64) (*Store, *booking.Passenger, error) {
	next := s.Clone()
	p, err := passengerOf(next, id, pid)
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.ApplyRefund(percentage); err != nil {
		return nil, nil, err
	}
	return next, p, nil
}

// ToggleCheckIn flips the checked-in flag of the target and returns the new value.
func (e *Engine) ToggleCheckIn(s *Store, target CheckInTarget) (*Store, bool, error) {
	next := s.Clone()
	var (
		checkedIn bool
		err       error
	)
	if target.PassengerID == "" {
		var b *booking.Booking
		if b, err = next.Get(target.BookingID); err != nil {
			return nil, false, err
		}
		checkedIn, err = b.ToggleCheckIn()
	} else {
		var p *booking.Passenger
		if p, err = passengerOf(next, target.BookingID, target.PassengerID); err != nil {
			return nil, false, err
		}
		checkedIn, err = p.ToggleCheckIn()
	}
	if err != nil {
		return nil, false, err
	}
	return next, checkedIn, nil
}

func passengerOf(s *Store, id booking.ID, pid booking.PassengerID) (*booking.Passenger, error) {
	b, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	party, err := b.Party()
	if err != nil {
		return nil, err
	}
	return party.Passenger(pid)
}
