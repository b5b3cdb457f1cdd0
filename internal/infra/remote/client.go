package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"boat-scheduler/internal/pkg/config"
	"boat-scheduler/internal/pkg/errs"

	"github.com/patrickmn/go-cache"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
	servicesKey    = "services"
)

var (
	ErrEmptyReservationID = errs.Validation("reservation id cannot be empty")
	ErrEmptyServiceID     = errs.Validation("service id cannot be empty")
)

// Client talks to the reservation service's JSON API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	cache   *cache.Cache
}

type ReservationClient interface {
	GetReservations(ctx context.Context, start, end time.Time) ([]Reservation, error)
	GetReservation(ctx context.Context, id RefID) (*Reservation, error)
	GetServices(ctx context.Context) ([]Service, error)
	CheckIn(ctx context.Context, id RefID) error
	CheckOut(ctx context.Context, id RefID) error
	CancelReservation(ctx context.Context, id RefID, reason string) error
	Refund(ctx context.Context, id RefID, amount float64) error
	ModifyReservation(ctx context.Context, id RefID, start, end time.Time) error
	CreateReservation(ctx context.Context, r NewReservation) (*Ack, error)
}

func NewClient(cfg config.RemoteConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ttl := cfg.ServicesCacheTTL
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		cache:   cache.New(ttl, 2*ttl),
	}
}

func (c *Client) GetReservations(ctx context.Context, start, end time.Time) ([]Reservation, error) {
	query := url.Values{
		"start": {start.Format(dateLayout)},
		"end":   {end.Format(dateLayout)},
	}
	var env reservationsEnvelope
	if err := c.do(ctx, http.MethodGet, query, nil, &env, "api", "get_reservations"); err != nil {
		return nil, upstream(err, "fetch reservations")
	}
	return env.Reservations, nil
}

func (c *Client) GetReservation(ctx context.Context, id RefID) (*Reservation, error) {
	if strings.TrimSpace(id.String()) == "" {
		return nil, ErrEmptyReservationID
	}
	var env reservationEnvelope
	if err := c.do(ctx, http.MethodGet, nil, nil, &env, "api", "get_reservation", id.String()); err != nil {
		return nil, upstream(err, "fetch reservation")
	}
	return &env.Reservation, nil
}

// GetServices is cached; the service list rarely changes within a shift.
func (c *Client) GetServices(ctx context.Context) ([]Service, error) {
	if cached, found := c.cache.Get(servicesKey); found {
		return cached.([]Service), nil
	}
	var env servicesEnvelope
	if err := c.do(ctx, http.MethodGet, nil, nil, &env, "api", "get_services"); err != nil {
		return nil, upstream(err, "fetch services")
	}
	c.cache.Set(servicesKey, env.Services, cache.DefaultExpiration)
	return env.Services, nil
}

func (c *Client) CheckIn(ctx context.Context, id RefID) error {
	return c.action(ctx, "check in", id, reservationAction{ReservationID: id}, "checkin")
}

func (c *Client) CheckOut(ctx context.Context, id RefID) error {
	return c.action(ctx, "check out", id, reservationAction{ReservationID: id}, "checkout")
}

func (c *Client) CancelReservation(ctx context.Context, id RefID, reason string) error {
	return c.action(ctx, "cancel reservation", id, reservationAction{ReservationID: id, Reason: reason}, "cancel_reservation")
}

// Refund sends amount in currency units, not cents.
func (c *Client) Refund(ctx context.Context, id RefID, amount float64) error {
	return c.action(ctx, "refund", id, refundRequest{ReservationID: id, Amount: amount}, "refund")
}

// ModifyReservation only moves the times; the reservation stays on its service.
func (c *Client) ModifyReservation(ctx context.Context, id RefID, start, end time.Time) error {
	return c.action(ctx, "modify reservation", id, modifyRequest{
		ReservationID: id,
		StartTime:     start.Format(dateTimeLayout),
		EndTime:       end.Format(dateTimeLayout),
	}, "modify_reservation")
}

// CreateReservation answers with the new reservation's id in the ack.
func (c *Client) CreateReservation(ctx context.Context, r NewReservation) (*Ack, error) {
	if strings.TrimSpace(r.ServiceID.String()) == "" {
		return nil, ErrEmptyServiceID
	}
	var ack Ack
	if err := c.do(ctx, http.MethodPost, nil, r, &ack, "api", "create_reservation"); err != nil {
		return nil, upstream(err, "create reservation")
	}
	if strings.TrimSpace(ack.ReservationID.String()) == "" {
		return nil, errs.WithKind(errs.KindUpstream, errs.New("ack without reservation_id"), "reservation service: create reservation failed")
	}
	return &ack, nil
}

func (c *Client) action(ctx context.Context, what string, id RefID, body any, endpoint string) error {
	if strings.TrimSpace(id.String()) == "" {
		return ErrEmptyReservationID
	}
	var ack Ack
	if err := c.do(ctx, http.MethodPost, nil, body, &ack, "api", endpoint); err != nil {
		return upstream(err, what)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method string, query url.Values, body, out any, elem ...string) error {
	endpoint, err := c.getURL(elem...)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	reqBody := io.Reader(http.NoBody)
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to marshal body")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return errs.Wrap(err, "failed create new request")
	}
	c.setHeaders(req)

	res, err := c.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "failed to send request")
	}
	defer res.Body.Close()

	bodyBytes, readErr := io.ReadAll(res.Body)
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		if readErr != nil {
			return errs.Wrapf(readErr, "request failed with status %d; also failed reading body", res.StatusCode)
		}
		return errs.Newf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes))
	}
	if readErr != nil {
		return errs.Wrap(readErr, "failed to read body")
	}
	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return errs.Wrap(err, "failed reading body")
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

func (c *Client) getURL(elem ...string) (string, error) {
	clientURL, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return "", errs.Wrap(err, "failed to create URL")
	}
	return clientURL, nil
}

func upstream(err error, what string) error {
	return errs.WithKind(errs.KindUpstream, err, "reservation service: "+what+" failed")
}
