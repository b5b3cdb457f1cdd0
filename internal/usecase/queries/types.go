package queries

import (
	"time"

	"github.com/google/uuid"
)

// OperatorView represents an authenticated operator account
type OperatorView struct {
	ID       uuid.UUID
	Username string
	Role     string
}

type ResourceView struct {
	ID       string
	Name     string
	GroupID  string
	Capacity string
	Color    string
}

type RefundView struct {
	Percentage  float64
	AmountCents int64
}

type PassengerView struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	HeadCount      int
	PriceCents     int64
	TotalCents     int64
	AddOns         []string
	SpecialRequest string
	CheckedIn      bool
	Refund         *RefundView
}

// BookingView is a read-only copy; Passengers is empty for single bookings.
type BookingView struct {
	ID          int
	Title       string
	Start       time.Time
	End         time.Time
	ResourceID  string
	Capacity    string
	Color       string
	TotalCents  int64
	HeadCount   int
	CheckedIn   bool
	Refund      *RefundView
	ExternalRef string
	Passengers  []PassengerView
}

type GateView struct {
	Armed       bool
	Kind        string
	BookingID   int
	PassengerID string
	ArmedAt     time.Time
	ExpiresAt   time.Time
	Timeout     time.Duration
}

type StatsView struct {
	Total              int
	CheckedIn          int
	Refunded           int
	Pending            int
	HeadCount          int
	RevenueCents       int64
	RefundedTotalCents int64
	OccupancyRate      float64
}

// ScheduleView is the snapshot returned after every mutation.
type ScheduleView struct {
	Resources []ResourceView
	Bookings  []BookingView
	Gate      GateView
}
