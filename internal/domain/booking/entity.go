package booking

import (
	"slices"
	"strings"

	"boat-scheduler/internal/domain/resource"
	"boat-scheduler/internal/pkg/errs"
)

var (
	ErrMissingTimeSlot         = errs.Validation("start and end time are required")
	ErrInvalidTimeSlot         = errs.Validation("end time must be after start time")
	ErrInvalidBookingID        = errs.Validation("booking id must be positive")
	ErrEmptyTitle              = errs.Validation("booking title cannot be empty")
	ErrEmptyResource           = errs.Validation("booking resource cannot be empty")
	ErrNegativePrice           = errs.Validation("price cannot be negative")
	ErrInvalidHeadCount        = errs.Validation("head-count must be at least 1")
	ErrEmptyPassengerID        = errs.Validation("passenger id cannot be empty")
	ErrEmptyPassengerName      = errs.Validation("passenger name cannot be empty")
	ErrInvalidRefundPercentage = errs.Validation("refund percentage must be between 0 and 100")
	ErrNotGroupBooking         = errs.NotFound("booking does not carry passengers")
	ErrPassengerNotFound       = errs.NotFound("passenger not found")
	ErrRefundedBooking         = errs.State("cannot check in a refunded booking")
	ErrRefundedPassenger       = errs.State("cannot check in a refunded passenger")
)

// Draft holds the fields shared by both capacity classes.
type Draft struct {
	ID          ID
	Title       string
	Slot        TimeSlot
	ResourceID  resource.ID
	Color       string
	PriceCents  int64
	HeadCount   int
	CheckedIn   bool
	ExternalRef string
}

func (d Draft) validate() error {
	if d.ID <= NoID {
		return ErrInvalidBookingID
	}
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	if d.Slot.IsZero() {
		return ErrMissingTimeSlot
	}
	if d.ResourceID == "" {
		return ErrEmptyResource
	}
	if d.PriceCents < 0 {
		return ErrNegativePrice
	}
	return nil
}

// Booking is a tagged union over the single and group capacity classes.
// Only group bookings carry a Party.
type Booking struct {
	id          ID
	title       string
	slot        TimeSlot
	resourceID  resource.ID
	capacity    resource.Capacity
	color       string
	price       Money
	headCount   int
	checkedIn   bool
	refund      *Refund
	externalRef string
	party       *Party
}

// Party is the ordered passenger list of a group booking.
type Party struct {
	passengers []*Passenger
}

func NewSingle(d Draft) (*Booking, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	headCount := d.HeadCount
	if headCount < 1 {
		headCount = 1
	}
	return &Booking{
		id:          d.ID,
		title:       strings.TrimSpace(d.Title),
		slot:        d.Slot,
		resourceID:  d.ResourceID,
		capacity:    resource.CapacitySingle,
		color:       colorOrDefault(d.Color),
		price:       NewMoney(d.PriceCents),
		headCount:   headCount,
		checkedIn:   d.CheckedIn,
		externalRef: d.ExternalRef,
	}, nil
}

// NewGroup takes ownership of passengers and derives the title head-count from them.
func NewGroup(d Draft, passengers []*Passenger) (*Booking, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	seen := make(map[PassengerID]struct{}, len(passengers))
	for _, p := range passengers {
		if _, dup := seen[p.ID()]; dup {
			return nil, errs.Validation("duplicate passenger id " + p.ID().String())
		}
		seen[p.ID()] = struct{}{}
	}

	b := &Booking{
		id:          d.ID,
		title:       strings.TrimSpace(d.Title),
		slot:        d.Slot,
		resourceID:  d.ResourceID,
		capacity:    resource.CapacityGroup,
		color:       colorOrDefault(d.Color),
		price:       NewMoney(d.PriceCents),
		checkedIn:   d.CheckedIn,
		externalRef: d.ExternalRef,
		party:       &Party{passengers: slices.Clone(passengers)},
	}
	b.refreshTitle()
	return b, nil
}

func colorOrDefault(color string) string {
	if color == "" {
		return resource.DefaultColor
	}
	return color
}

func (b *Booking) IsGroup() bool {
	return b.party != nil
}

func (b *Booking) Party() (*Party, error) {
	if b.party == nil {
		return nil, ErrNotGroupBooking
	}
	return b.party, nil
}

// HeadCount sums passenger head-counts for group bookings.
func (b *Booking) HeadCount() int {
	if b.party != nil {
		return b.party.HeadCount()
	}
	return b.headCount
}

// TotalPrice sums the passenger totals of a group booking. A single booking is always worth
// singlePrice; its recorded Price is informational only.
func (b *Booking) TotalPrice(singlePrice Money) Money {
	if b.party != nil {
		return b.party.TotalPrice()
	}
	return singlePrice
}

func (b *Booking) Reschedule(slot TimeSlot) {
	b.slot = slot
}

func (b *Booking) ToggleCheckIn() (bool, error) {
	if b.IsRefunded() {
		return b.checkedIn, ErrRefundedBooking
	}
	b.checkedIn = !b.checkedIn
	return b.checkedIn, nil
}

// ApplyRefund marks the booking refunded, greys it out and prefixes the title once.
func (b *Booking) ApplyRefund(r Refund) {
	b.refund = &r
	b.color = RefundedColor
	b.title = refundedTitle(b.title)
}

func (b *Booking) AddPassenger(d PassengerDetails) (*Passenger, error) {
	if b.party == nil {
		return nil, ErrNotGroupBooking
	}
	p, err := NewPassenger(NextPassengerID(b.party.passengers), d)
	if err != nil {
		return nil, err
	}
	b.party.passengers = append(b.party.passengers, p)
	b.refreshTitle()
	return p, nil
}

// AdoptPassenger appends a copy of p, renumbering it when its id is already taken here.
func (b *Booking) AdoptPassenger(p *Passenger) (*Passenger, error) {
	if b.party == nil {
		return nil, ErrNotGroupBooking
	}
	c := p.Clone()
	if _, err := b.party.Passenger(c.id); err == nil {
		c.id = NextPassengerID(b.party.passengers)
	}
	b.party.passengers = append(b.party.passengers, c)
	b.refreshTitle()
	return c, nil
}

func (b *Booking) UpdatePassenger(id PassengerID, d PassengerDetails) (*Passenger, error) {
	if b.party == nil {
		return nil, ErrNotGroupBooking
	}
	p, err := b.party.Passenger(id)
	if err != nil {
		return nil, err
	}
	if err := p.setDetails(d); err != nil {
		return nil, err
	}
	b.refreshTitle()
	return p, nil
}

// RemovePassenger leaves an emptied booking in place; callers decide whether to drop it.
func (b *Booking) RemovePassenger(id PassengerID) (*Passenger, error) {
	if b.party == nil {
		return nil, ErrNotGroupBooking
	}
	idx := slices.IndexFunc(b.party.passengers, func(p *Passenger) bool { return p.id == id })
	if idx < 0 {
		return nil, ErrPassengerNotFound
	}
	removed := b.party.passengers[idx]
	b.party.passengers = slices.Delete(b.party.passengers, idx, idx+1)
	b.refreshTitle()
	return removed, nil
}

func (b *Booking) refreshTitle() {
	if b.party == nil {
		return
	}
	b.title = HeadCountTitle(titlePrefix(b.title), b.party.HeadCount())
}

func (b *Booking) Clone() *Booking {
	c := *b
	if b.refund != nil {
		r := *b.refund
		c.refund = &r
	}
	if b.party != nil {
		passengers := make([]*Passenger, len(b.party.passengers))
		for i, p := range b.party.passengers {
			passengers[i] = p.Clone()
		}
		c.party = &Party{passengers: passengers}
	}
	return &c
}

func (b *Booking) ID() ID                      { return b.id }
func (b *Booking) Title() string               { return b.title }
func (b *Booking) Slot() TimeSlot              { return b.slot }
func (b *Booking) ResourceID() resource.ID     { return b.resourceID }
func (b *Booking) Capacity() resource.Capacity { return b.capacity }
func (b *Booking) Color() string               { return b.color }
func (b *Booking) Price() Money                { return b.price }
func (b *Booking) CheckedIn() bool             { return b.checkedIn }
func (b *Booking) IsRefunded() bool            { return b.refund != nil }
func (b *Booking) ExternalRef() string         { return b.externalRef }

// LinkExternal records the reservation service id once the booking has been mirrored there.
func (b *Booking) LinkExternal(ref string) {
	b.externalRef = strings.TrimSpace(ref)
}

func (b *Booking) Refund() (Refund, bool) {
	if b.refund == nil {
		return Refund{}, false
	}
	return *b.refund, true
}

func (p *Party) Passengers() []*Passenger {
	return slices.Clone(p.passengers)
}

func (p *Party) Len() int {
	return len(p.passengers)
}

func (p *Party) Passenger(id PassengerID) (*Passenger, error) {
	for _, passenger := range p.passengers {
		if passenger.id == id {
			return passenger, nil
		}
	}
	return nil, ErrPassengerNotFound
}

func (p *Party) HeadCount() int {
	total := 0
	for _, passenger := range p.passengers {
		total += passenger.headCount
	}
	return total
}

func (p *Party) TotalPrice() Money {
	total := NewMoney(0)
	for _, passenger := range p.passengers {
		total = total.Add(passenger.Total())
	}
	return total
}
