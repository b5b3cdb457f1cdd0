package remote

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// RefID is a reservation service id. The service sends ids as numbers or strings depending
// on the endpoint.
type RefID string

func (id *RefID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = RefID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = RefID(n.String())
	return nil
}

func (id RefID) String() string { return string(id) }

// MarshalJSON sends numeric ids as numbers.
func (id RefID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

type Reservation struct {
	ID             RefID   `json:"id"`
	ServiceID      RefID   `json:"service_id"`
	ServiceName    string  `json:"service_name"`
	ClientName     string  `json:"client_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Country        string  `json:"country"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	CheckedIn      bool    `json:"checked_in"`
	CheckedOut     bool    `json:"checked_out"`
	Cancelled      bool    `json:"cancelled"`
	PendingPayment bool    `json:"pending_payment"`
	Confirmed      bool    `json:"confirmed"`
	PaymentStatus  string  `json:"payment_status"`
	TotalAmount    float64 `json:"total_amount"`
	Notes          string  `json:"notes"`
	CreatedAt      string  `json:"created_at"`
}

type Service struct {
	ID          RefID  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	CategoryID  RefID  `json:"category_id"`
	IsCategory  bool   `json:"is_category"`
}

type NewReservation struct {
	ServiceID  RefID   `json:"service_id"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	ClientName string  `json:"client_name"`
	Email      string  `json:"email,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	Amount     float64 `json:"total_amount,omitempty"`
	Notes      string  `json:"notes,omitempty"`
}

type reservationsEnvelope struct {
	Reservations []Reservation `json:"reservations"`
}

type reservationEnvelope struct {
	Reservation Reservation `json:"reservation"`
}

type servicesEnvelope struct {
	Services []Service `json:"services"`
}

type reservationAction struct {
	ReservationID RefID  `json:"reservation_id"`
	Reason        string `json:"reason,omitempty"`
}

type refundRequest struct {
	ReservationID RefID   `json:"reservation_id"`
	Amount        float64 `json:"amount"`
}

type modifyRequest struct {
	ReservationID RefID  `json:"reservation_id"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
}

// Ack is the body of a mutating call. The service answers with at least a status;
// create_reservation also returns the new id.
type Ack struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	ReservationID RefID  `json:"reservation_id"`
}
