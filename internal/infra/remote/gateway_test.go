//go:build unit

package remote_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/domain/schedule"
	"boat-scheduler/internal/infra/remote"
	"boat-scheduler/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGatewayFetchSchedule(t *testing.T) {
	client, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/get_services":
			_, _ = w.Write([]byte(`{"services":[{"id":7,"name":"Boat A"}]}`))
		case "/api/get_reservations":
			_, _ = w.Write([]byte(`{"reservations":[
				{"id":1,"service_id":7,"client_name":"Ann","start_time":"2026-01-04 09:00:00","end_time":"2026-01-04 11:00:00"},
				{"id":2,"service_id":42,"client_name":"Ben","start_time":"2026-01-04 10:00:00","end_time":"2026-01-04 12:00:00"}
			]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	loc := time.FixedZone("JST", 9*60*60)
	gw := remote.NewGateway(client, loc, discardLogger())

	got, err := gw.FetchSchedule(context.Background(),
		time.Date(2026, 1, 1, 0, 0, 0, 0, loc), time.Date(2026, 1, 31, 0, 0, 0, 0, loc))
	require.NoError(t, err)

	assert.True(t, gw.Enabled())
	require.Len(t, got.Resources, 2)
	assert.Equal(t, "Boat A", got.Resources[0].Name())
	assert.Equal(t, "Unnamed Service 42", got.Resources[1].Name())
	require.Len(t, got.Bookings, 2)
	assert.Equal(t, "1", got.Bookings[0].ExternalRef())
	assert.Len(t, *calls, 2)
}

func TestGatewayMutations(t *testing.T) {
	client, calls := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	loc := time.FixedZone("JST", 9*60*60)
	gw := remote.NewGateway(client, loc, discardLogger())
	ctx := context.Background()

	slot, err := booking.NewTimeSlot(time.Date(2026, 1, 4, 4, 0, 0, 0, time.UTC), time.Date(2026, 1, 4, 6, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.NoError(t, gw.Modify(ctx, "R-100", slot))
	require.NoError(t, gw.Refund(ctx, "R-100", booking.NewMoney(22550)))
	require.NoError(t, gw.Cancel(ctx, "R-100", "Cancelled by admin"))

	require.Len(t, *calls, 3)
	assert.Equal(t, "/api/modify_reservation", (*calls)[0].path)
	assert.Equal(t, "2026-01-04 13:00:00", (*calls)[0].body["start_time"])
	assert.Equal(t, "R-100", (*calls)[0].body["reservation_id"])
	assert.InDelta(t, 225.5, (*calls)[1].body["amount"], 0.001)
	assert.Equal(t, "/api/cancel_reservation", (*calls)[2].path)
}

func newRemoteBooking(t *testing.T) *booking.Booking {
	t.Helper()
	slot, err := booking.NewTimeSlot(time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 6, 2, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	b, err := booking.NewSingle(booking.Draft{
		ID: 14, Title: "Nina Park - 2 ppl", Slot: slot, ResourceID: "7", PriceCents: 6000, HeadCount: 2,
	})
	require.NoError(t, err)
	return b
}

func TestGatewayCreate(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	contact := schedule.Contact{Name: "Nina Park", Email: "nina@example.com"}

	t.Run("creates then reads the reservation back", func(t *testing.T) {
		client, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/api/create_reservation":
				_, _ = w.Write([]byte(`{"status":"ok","reservation_id":555}`))
			case "/api/get_reservation/555":
				_, _ = w.Write([]byte(`{"reservation":{"id":555,"service_id":7,"confirmed":true}}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		})
		gw := remote.NewGateway(client, loc, discardLogger())

		ref, err := gw.Create(context.Background(), newRemoteBooking(t), contact)
		require.NoError(t, err)
		assert.Equal(t, "555", ref)

		require.Len(t, *calls, 2)
		body := (*calls)[0].body
		assert.Equal(t, float64(7), body["service_id"])
		assert.Equal(t, "2026-01-06 09:00:00", body["start_time"])
		assert.Equal(t, "2026-01-06 11:00:00", body["end_time"])
		assert.Equal(t, "nina@example.com", body["email"])
		assert.InDelta(t, 60.0, body["total_amount"], 0.001)
		assert.Equal(t, "/api/get_reservation/555", (*calls)[1].path)
	})

	t.Run("a reservation cancelled on arrival is rejected", func(t *testing.T) {
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/create_reservation" {
				_, _ = w.Write([]byte(`{"status":"ok","reservation_id":"R-9"}`))
				return
			}
			_, _ = w.Write([]byte(`{"reservation":{"id":"R-9","cancelled":true}}`))
		})
		gw := remote.NewGateway(client, loc, discardLogger())

		_, err := gw.Create(context.Background(), newRemoteBooking(t), contact)
		assert.ErrorIs(t, err, remote.ErrReservationRejected)
		assert.True(t, errs.IsKind(err, errs.KindUpstream))
	})

	t.Run("a failed read-back keeps the new id", func(t *testing.T) {
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/create_reservation" {
				_, _ = w.Write([]byte(`{"status":"ok","reservation_id":556}`))
				return
			}
			w.WriteHeader(http.StatusBadGateway)
		})
		gw := remote.NewGateway(client, loc, discardLogger())

		ref, err := gw.Create(context.Background(), newRemoteBooking(t), contact)
		require.NoError(t, err)
		assert.Equal(t, "556", ref)
	})
}

func TestNoopGateway(t *testing.T) {
	var gw remote.NoopGateway
	ctx := context.Background()

	assert.False(t, gw.Enabled())
	_, err := gw.FetchSchedule(ctx, time.Now(), time.Now())
	assert.ErrorIs(t, err, remote.ErrGatewayDisabled)
	assert.True(t, errs.IsKind(err, errs.KindUpstream))
	assert.NoError(t, gw.CheckIn(ctx, "1"))
	assert.NoError(t, gw.Refund(ctx, "1", booking.NewMoney(100)))
	_, err = gw.Create(ctx, nil, schedule.Contact{})
	assert.ErrorIs(t, err, remote.ErrGatewayDisabled)
}
