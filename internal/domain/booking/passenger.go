package booking

import (
	"slices"
	"strings"
)

const DefaultSpecialRequest = "None"

type PassengerDetails struct {
	Name           string
	Email          string
	Phone          string
	HeadCount      int
	PriceCents     int64
	AddOns         []string
	SpecialRequest string
}

type Passenger struct {
	id             PassengerID
	name           string
	email          string
	phone          string
	headCount      int
	price          Money
	addOns         []string
	specialRequest string
	checkedIn      bool
	refund         *Refund
}

func NewPassenger(id PassengerID, d PassengerDetails) (*Passenger, error) {
	if id == "" {
		return nil, ErrEmptyPassengerID
	}
	p := &Passenger{id: id}
	if err := p.setDetails(d); err != nil {
		return nil, err
	}
	return p, nil
}

// RestorePassenger rebuilds a passenger whose check-in and refund state is already known.
func RestorePassenger(id PassengerID, d PassengerDetails, checkedIn bool, refund *Refund) (*Passenger, error) {
	p, err := NewPassenger(id, d)
	if err != nil {
		return nil, err
	}
	p.checkedIn = checkedIn
	if refund != nil {
		r := *refund
		p.refund = &r
	}
	return p, nil
}

func (p *Passenger) setDetails(d PassengerDetails) error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return ErrEmptyPassengerName
	}
	if d.HeadCount < 1 {
		return ErrInvalidHeadCount
	}
	if d.PriceCents < 0 {
		return ErrNegativePrice
	}

	special := strings.TrimSpace(d.SpecialRequest)
	if special == "" {
		special = DefaultSpecialRequest
	}

	p.name = name
	p.email = strings.TrimSpace(d.Email)
	p.phone = strings.TrimSpace(d.Phone)
	p.headCount = d.HeadCount
	p.price = NewMoney(d.PriceCents)
	p.addOns = append([]string{}, d.AddOns...)
	p.specialRequest = special
	return nil
}

func (p *Passenger) ToggleCheckIn() (bool, error) {
	if p.IsRefunded() {
		return p.checkedIn, ErrRefundedPassenger
	}
	p.checkedIn = !p.checkedIn
	return p.checkedIn, nil
}

func (p *Passenger) ApplyRefund(percentage float64) (Refund, error) {
	r, err := NewRefund(p.Total(), percentage)
	if err != nil {
		return Refund{}, err
	}
	p.refund = &r
	return r, nil
}

// Total is the per-head price times the head-count.
func (p *Passenger) Total() Money {
	return p.price.Times(p.headCount)
}

func (p *Passenger) FirstName() string {
	first, _, _ := strings.Cut(p.name, " ")
	return first
}

func (p *Passenger) Details() PassengerDetails {
	return PassengerDetails{
		Name:           p.name,
		Email:          p.email,
		Phone:          p.phone,
		HeadCount:      p.headCount,
		PriceCents:     p.price.Cents(),
		AddOns:         slices.Clone(p.addOns),
		SpecialRequest: p.specialRequest,
	}
}

func (p *Passenger) Clone() *Passenger {
	c := *p
	c.addOns = slices.Clone(p.addOns)
	if p.refund != nil {
		r := *p.refund
		c.refund = &r
	}
	return &c
}

func (p *Passenger) ID() PassengerID        { return p.id }
func (p *Passenger) Name() string           { return p.name }
func (p *Passenger) Email() string          { return p.email }
func (p *Passenger) Phone() string          { return p.phone }
func (p *Passenger) HeadCount() int         { return p.headCount }
func (p *Passenger) Price() Money           { return p.price }
func (p *Passenger) AddOns() []string       { return slices.Clone(p.addOns) }
func (p *Passenger) SpecialRequest() string { return p.specialRequest }
func (p *Passenger) CheckedIn() bool        { return p.checkedIn }
func (p *Passenger) IsRefunded() bool       { return p.refund != nil }

func (p *Passenger) Refund() (Refund, bool) {
	if p.refund == nil {
		return Refund{}, false
	}
	return *p.refund, true
}
