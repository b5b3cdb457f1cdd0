package confirm

import (
	"strings"
	"sync"
	"time"

	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/pkg/clock"
	"boat-scheduler/internal/pkg/errs"
)

const DefaultTimeout = 3000 * time.Millisecond

var (
	ErrUnknownKind      = errs.Validation("unknown confirmation action")
	ErrMissingBooking   = errs.Validation("confirmation target needs a booking id")
	ErrMissingPassenger = errs.Validation("confirmation target needs a passenger id")
)

// Kind names a destructive action that has to be invoked twice.
type Kind string

const (
	KindCancel          Kind = "cancel"
	KindRefund          Kind = "refund"
	KindRefundPassenger Kind = "refund-passenger"
	KindRemovePassenger Kind = "remove-passenger"
)

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindCancel, KindRefund, KindRefundPassenger, KindRemovePassenger:
		return k, nil
	default:
		return "", ErrUnknownKind
	}
}

// PassengerScoped reports whether the action targets a single passenger.
func (k Kind) PassengerScoped() bool {
	return k == KindRefundPassenger || k == KindRemovePassenger
}

type Target struct {
	BookingID   booking.ID
	PassengerID booking.PassengerID
}

func NewTarget(kind Kind, bookingID booking.ID, passengerID booking.PassengerID) (Target, error) {
	if bookingID <= booking.NoID {
		return Target{}, ErrMissingBooking
	}
	if !kind.PassengerScoped() {
		return Target{BookingID: bookingID}, nil
	}
	if passengerID == "" {
		return Target{}, ErrMissingPassenger
	}
	return Target{BookingID: bookingID, PassengerID: passengerID}, nil
}

type Outcome string

const (
	OutcomeArmed    Outcome = "armed"
	OutcomeExecuted Outcome = "executed"
)

type DisarmReason string

const (
	ReasonExpired  DisarmReason = "expired"
	ReasonReplaced DisarmReason = "replaced"
	ReasonCleared  DisarmReason = "cleared"
)

// Pending is the armed action awaiting its second invocation.
type Pending struct {
	Kind      Kind
	Target    Target
	ArmedAt   time.Time
	ExpiresAt time.Time
}

type Option func(*Gate)

// WithOnDisarm registers a hook run whenever an armed action is dropped without executing.
// The hook runs outside the gate lock.
func WithOnDisarm(f func(Pending, DisarmReason)) Option {
	return func(g *Gate) { g.onDisarm = f }
}

// Gate holds at most one armed action. Invoking the same kind on the same target before
// the timeout executes it; anything else (re)arms. A second invocation of the same kind on a
// different booking or passenger therefore re-arms for the new target instead of executing.
type Gate struct {
	mu       sync.Mutex
	clock    clock.Clock
	timeout  time.Duration
	pending  *Pending
	timer    clock.Timer
	seq      uint64
	onDisarm func(Pending, DisarmReason)
}

func NewGate(c clock.Clock, timeout time.Duration, opts ...Option) *Gate {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	g := &Gate{clock: c, timeout: timeout}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gate) Timeout() time.Duration {
	return g.timeout
}

// Invoke arms kind on target, or runs execute when that exact action is already armed.
// After execution the gate is idle whatever execute returned.
func (g *Gate) Invoke(kind Kind, target Target, execute func() error) (Outcome, error) {
	g.mu.Lock()
	now := g.clock.Now()
	if p := g.pending; p != nil && p.Kind == kind && p.Target == target && now.Before(p.ExpiresAt) {
		g.clearLocked()
		g.mu.Unlock()
		return OutcomeExecuted, execute()
	}

	replaced := g.pending
	g.clearLocked()
	g.seq++
	seq := g.seq
	g.pending = &Pending{Kind: kind, Target: target, ArmedAt: now, ExpiresAt: now.Add(g.timeout)}
	g.timer = g.clock.AfterFunc(g.timeout, func() { g.expire(seq) })
	g.mu.Unlock()

	if replaced != nil {
		g.notify(*replaced, ReasonReplaced)
	}
	return OutcomeArmed, nil
}

// Disarm drops the armed action, if any.
func (g *Gate) Disarm() bool {
	g.mu.Lock()
	p := g.pending
	g.clearLocked()
	g.mu.Unlock()

	if p == nil {
		return false
	}
	g.notify(*p, ReasonCleared)
	return true
}

func (g *Gate) Pending() (Pending, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending == nil {
		return Pending{}, false
	}
	return *g.pending, true
}

func (g *Gate) expire(seq uint64) {
	g.mu.Lock()
	if g.seq != seq || g.pending == nil {
		// a later arm or a disarm got here first
		g.mu.Unlock()
		return
	}
	p := *g.pending
	g.pending = nil
	g.timer = nil
	g.mu.Unlock()

	g.notify(p, ReasonExpired)
}

// caller holds g.mu
func (g *Gate) clearLocked() {
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.pending = nil
	g.seq++
}

func (g *Gate) notify(p Pending, reason DisarmReason) {
	if g.onDisarm != nil {
		g.onDisarm(p, reason)
	}
}
