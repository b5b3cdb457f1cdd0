package schedule

import (
	"slices"

	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/domain/resource"
	"boat-scheduler/internal/pkg/errs"
)

var (
	ErrBookingNotFound  = errs.NotFound("booking not found")
	ErrResourceNotFound = errs.Validation("unknown resource")
	ErrDuplicateBooking = errs.Validation("duplicate booking id")
)

// Store is one operator's schedule: the known fleet plus the ordered booking collection.
// A Store handed to the Engine is never mutated; operations return a new one.
type Store struct {
	resources []*resource.Resource
	bookings  []*booking.Booking
}

func NewStore(resources []*resource.Resource, bookings []*booking.Booking) (*Store, error) {
	s := &Store{resources: slices.Clone(resources)}
	if err := s.Replace(bookings); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Get(id booking.ID) (*booking.Booking, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrBookingNotFound
	}
	return s.bookings[idx], nil
}

// List returns the bookings in insertion order. The slice is a copy; the bookings are not.
func (s *Store) List() []*booking.Booking {
	return slices.Clone(s.bookings)
}

func (s *Store) Len() int {
	return len(s.bookings)
}

// Replace swaps the whole booking collection, e.g. after a reload from the reservation service.
func (s *Store) Replace(bookings []*booking.Booking) error {
	seen := make(map[booking.ID]struct{}, len(bookings))
	for _, b := range bookings {
		if _, dup := seen[b.ID()]; dup {
			return errs.Wrapf(ErrDuplicateBooking, "id %d", b.ID())
		}
		seen[b.ID()] = struct{}{}
	}
	s.bookings = slices.Clone(bookings)
	return nil
}

func (s *Store) Resources() []*resource.Resource {
	return slices.Clone(s.resources)
}

func (s *Store) Resource(id resource.ID) (*resource.Resource, error) {
	for _, r := range s.resources {
		if r.ID() == id {
			return r, nil
		}
	}
	return nil, ErrResourceNotFound
}

// Clone deep-copies the bookings. Resources are immutable and shared.
func (s *Store) Clone() *Store {
	c := &Store{
		resources: s.resources,
		bookings:  make([]*booking.Booking, len(s.bookings)),
	}
	for i, b := range s.bookings {
		c.bookings[i] = b.Clone()
	}
	return c
}

func (s *Store) indexOf(id booking.ID) int {
	return slices.IndexFunc(s.bookings, func(b *booking.Booking) bool { return b.ID() == id })
}

func (s *Store) add(b *booking.Booking) {
	s.bookings = append(s.bookings, b)
}

func (s *Store) remove(id booking.ID) {
	if idx := s.indexOf(id); idx >= 0 {
		s.bookings = slices.Delete(s.bookings, idx, idx+1)
	}
}

// nextID is max existing id + 1, or 1 for an empty schedule.
func (s *Store) nextID() booking.ID {
	highest := booking.NoID
	for _, b := range s.bookings {
		if b.ID() > highest {
			highest = b.ID()
		}
	}
	return highest + 1
}
