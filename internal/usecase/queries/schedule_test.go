//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/domain/confirm"
	"boat-scheduler/internal/domain/schedule"
	"boat-scheduler/internal/pkg/clock"
	"boat-scheduler/internal/usecase/queries"
	"boat-scheduler/internal/usecase/shared"
	sharedmock "boat-scheduler/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleQueriesTestSuite struct {
	suite.Suite
	ctx        context.Context
	mockCtrl   *gomock.Controller
	session    *shared.Session
	operatorID uuid.UUID
	queries    queries.ScheduleQueries
}

func (s *ScheduleQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.operatorID = uuid.New()

	store, err := schedule.DemoStore(time.UTC)
	s.Require().NoError(err)
	gate := confirm.NewGate(clock.NewMockClock(time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)), confirm.DefaultTimeout)
	s.session = shared.NewSession(s.operatorID, store, gate)

	sessions := sharedmock.NewMockSessionRepository(s.mockCtrl)
	sessions.EXPECT().Acquire(gomock.Any(), s.operatorID).Return(s.session, nil).AnyTimes()
	s.queries = queries.NewScheduleQueries(sessions, schedule.NewEngine(0))
}

func (s *ScheduleQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScheduleQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleQueriesTestSuite))
}

func (s *ScheduleQueriesTestSuite) TestSchedule() {
	s.Run("whole schedule", func() {
		view, err := s.queries.Schedule(s.ctx, s.operatorID, schedule.Filter{})
		s.Require().NoError(err)
		s.Len(view.Bookings, 13)
		s.Len(view.Resources, 4)
		s.False(view.Gate.Armed)
		s.Equal(3*time.Second, view.Gate.Timeout)
	})

	s.Run("filtered by boat and day", func() {
		view, err := s.queries.Schedule(s.ctx, s.operatorID, schedule.Filter{
			From:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			To:         time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
			ResourceID: "small-1",
		})
		s.Require().NoError(err)

		ids := make([]int, 0, len(view.Bookings))
		for _, b := range view.Bookings {
			ids = append(ids, b.ID)
		}
		if diff := cmp.Diff([]int{1, 10, 11, 12}, ids); diff != "" {
			s.T().Errorf("booking ids mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("gate state is part of the snapshot", func() {
		_, err := s.session.Gate().Invoke(confirm.KindRemovePassenger, confirm.Target{BookingID: 2, PassengerID: "p3"}, func() error { return nil })
		s.Require().NoError(err)

		view, err := s.queries.Schedule(s.ctx, s.operatorID, schedule.Filter{})
		s.Require().NoError(err)
		s.True(view.Gate.Armed)
		s.Equal("remove-passenger", view.Gate.Kind)
		s.Equal(2, view.Gate.BookingID)
		s.Equal("p3", view.Gate.PassengerID)
	})
}

func (s *ScheduleQueriesTestSuite) TestBooking() {
	s.Run("group booking carries passengers", func() {
		view, err := s.queries.Booking(s.ctx, s.operatorID, 2)
		s.Require().NoError(err)
		s.Equal("Group Outing - 11 ppl", view.Title)
		s.Equal("group", view.Capacity)
		s.Len(view.Passengers, 8)
		s.Equal(11, view.HeadCount)
		s.Equal(int64(19500), view.Passengers[6].TotalCents)
	})

	s.Run("single booking uses the nominal price", func() {
		view, err := s.queries.Booking(s.ctx, s.operatorID, 1)
		s.Require().NoError(err)
		s.Empty(view.Passengers)
		s.Equal(int64(45000), view.TotalCents)
	})

	s.Run("missing", func() {
		_, err := s.queries.Booking(s.ctx, s.operatorID, 404)
		s.ErrorIs(err, schedule.ErrBookingNotFound)
	})
}

func (s *ScheduleQueriesTestSuite) TestStats() {
	_, err := shared.Apply(s.session, func(cur *schedule.Store) (*schedule.Store, *booking.Booking, error) {
		return schedule.NewEngine(0).RefundBooking(cur, 1, 50)
	})
	s.Require().NoError(err)

	view, err := s.queries.Stats(s.ctx, s.operatorID, schedule.Filter{ResourceID: "small-1"})
	s.Require().NoError(err)
	s.Equal(6, view.Total)
	s.Equal(1, view.Refunded)
	s.Equal(int64(22500), view.RefundedTotalCents)
	s.Equal(int64(5*45000), view.RevenueCents)
	s.InDelta(600.0, view.OccupancyRate, 0.001)
}

func (s *ScheduleQueriesTestSuite) TestResources() {
	resources, err := s.queries.Resources(s.ctx, s.operatorID)
	s.Require().NoError(err)
	s.Require().Len(resources, 4)
	s.Equal(queries.ResourceView{
		ID:       "small-1",
		Name:     "Small Boat 1 (2 hrs)",
		GroupID:  "small-boats",
		Capacity: "single",
		Color:    "#FF6B6B",
	}, resources[0])
}
