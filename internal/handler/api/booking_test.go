//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/domain/schedule"
	"boat-scheduler/internal/handler/api"
	reqdto "boat-scheduler/internal/handler/dto/request"
	resdto "boat-scheduler/internal/handler/dto/response"
	"boat-scheduler/internal/pkg/errs"
	"boat-scheduler/internal/usecase/commands"
	"boat-scheduler/tests/common/builder"
	"boat-scheduler/tests/common/httptest"
	"boat-scheduler/tests/common/testutil"
	commandsmock "boat-scheduler/tests/mock/commands"
	queriesmock "boat-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockScheduleQueries
	operatorID   uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	s.operatorID = uuid.New()

	bookings := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	passengers := api.NewPassengerHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/bookings", asOperator(s.operatorID))
	g.POST("", bookings.Create)
	g.GET("/:id", bookings.Get)
	g.PUT("/:id/slot", bookings.Move)
	g.POST("/:id/check-in", bookings.ToggleCheckIn)
	g.POST("/:id/passengers", passengers.Add)
	g.PATCH("/:id/passengers/:pid", passengers.Update)
	g.POST("/:id/passengers/:pid/check-in", passengers.ToggleCheckIn)
	g.POST("/:id/passengers/:pid/move", passengers.Move)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) expectSnapshot(bookings ...int) {
	views := builder.ScheduleView()
	for _, id := range bookings {
		views.Bookings = append(views.Bookings, builder.NewBookingBuilder().BuildView(id))
	}
	s.mockQueries.EXPECT().Schedule(gomock.Any(), s.operatorID, schedule.Filter{}).Return(views, nil).Times(1)
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildDTO()

	s.Run("success: returns 201 with the new id and the schedule", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.operatorID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, req reqdto.CreateBookingRequest) (*commands.BookingResult, error) {
				s.Equal("small-1", req.ResourceID)
				s.Equal("John Smith", req.Name)
				s.True(req.End.After(req.Start))
				return &commands.BookingResult{BookingID: 14}, nil
			}).Times(1)
		s.expectSnapshot(14)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
		body := decodeMutation[resdto.BookingResult](s.T(), rec)
		s.Equal(14, body.Result.BookingID)
		s.Require().Len(body.Schedule.Bookings, 1)
		s.Equal("small-1", body.Schedule.Bookings[0].ResourceID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing resource", mutate: testutil.Field("resource_id", nil)},
			{name: "missing start", mutate: testutil.Field("start", nil)},
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
			{name: "unknown capacity", mutate: testutil.Field("capacity", "triple")},
			{name: "negative price", mutate: testutil.Field("price_cents", -1)},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps domain errors by kind", func() {
		testCases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "slot conflict", err: schedule.ErrSlotConflict, status: http.StatusConflict},
			{name: "unknown boat", err: schedule.ErrResourceNotFound, status: http.StatusBadRequest},
			{name: "capacity mismatch", err: schedule.ErrCapacityMismatch, status: http.StatusBadRequest},
			{name: "unclassified", err: errs.New("boom"), status: http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.operatorID, gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("success: returns the booking", func() {
		view := builder.NewBookingBuilder().WithPrice(12000).BuildView(3)
		s.mockQueries.EXPECT().Booking(gomock.Any(), s.operatorID, booking.ID(3)).Return(&view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/3", nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3, response.ID)
		s.Equal("120.00", response.Total)
	})

	s.Run("error: 404 for an unknown booking", func() {
		s.mockQueries.EXPECT().Booking(gomock.Any(), s.operatorID, booking.ID(99)).Return(nil, schedule.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/99", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		for _, id := range []string{"abc", "0", "-2"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
		}
	})
}

func (s *BookingHandlerTestSuite) TestMove() {
	start := time.Date(2026, time.January, 1, 14, 0, 0, 0, time.UTC)
	reqBody := reqdto.MoveBookingRequest{Start: start, End: start.Add(2 * time.Hour)}

	s.Run("success: returns the moved booking id", func() {
		s.mockCommands.EXPECT().Move(gomock.Any(), s.operatorID, booking.ID(1), reqBody).
			Return(&commands.BookingResult{BookingID: 1}, nil).Times(1)
		s.expectSnapshot(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/1/slot", reqBody, "")

		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		s.Equal(1, decodeMutation[resdto.BookingResult](s.T(), rec).Result.BookingID)
	})

	s.Run("error: 409 on overlap", func() {
		s.mockCommands.EXPECT().Move(gomock.Any(), s.operatorID, booking.ID(1), reqBody).
			Return(nil, schedule.ErrSlotConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/1/slot", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "conflicts")
	})

	s.Run("error: 502 when the reservation service rejects the change", func() {
		upstream := errs.WithKind(errs.KindUpstream, errs.New("503"), "reservation service: modify failed")
		s.mockCommands.EXPECT().Move(gomock.Any(), s.operatorID, booking.ID(1), reqBody).Return(nil, upstream).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/1/slot", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "reservation service")
	})

	s.Run("error: 400 without an end", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/1/slot", map[string]any{"start": start}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *BookingHandlerTestSuite) TestToggleCheckIn() {
	s.Run("booking level", func() {
		s.mockCommands.EXPECT().ToggleCheckIn(gomock.Any(), s.operatorID, schedule.CheckInTarget{BookingID: 1}).
			Return(&commands.CheckInResult{CheckedIn: true}, nil).Times(1)
		s.expectSnapshot(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/1/check-in", nil, "")

		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		s.True(decodeMutation[resdto.CheckInResult](s.T(), rec).Result.CheckedIn)
	})

	s.Run("passenger level", func() {
		s.mockCommands.EXPECT().ToggleCheckIn(gomock.Any(), s.operatorID, schedule.CheckInTarget{BookingID: 2, PassengerID: "p3"}).
			Return(&commands.CheckInResult{CheckedIn: false}, nil).Times(1)
		s.expectSnapshot(2)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/2/passengers/p3/check-in", nil, "")

		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		s.False(decodeMutation[resdto.CheckInResult](s.T(), rec).Result.CheckedIn)
	})

	s.Run("error: 422 on a refunded booking", func() {
		s.mockCommands.EXPECT().ToggleCheckIn(gomock.Any(), s.operatorID, schedule.CheckInTarget{BookingID: 1}).
			Return(nil, booking.ErrRefundedBooking).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/1/check-in", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}

func (s *BookingHandlerTestSuite) TestPassengers() {
	s.Run("add returns 201 with the new passenger id", func() {
		req := reqdto.PassengerRequest{Name: "Ivy Chen", HeadCount: 2, PriceCents: 4000}
		s.mockCommands.EXPECT().AddPassenger(gomock.Any(), s.operatorID, booking.ID(2), req).
			Return(&commands.PassengerResult{BookingID: 2, PassengerID: "p9"}, nil).Times(1)
		s.expectSnapshot(2)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/2/passengers", req, "")

		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
		result := decodeMutation[resdto.PassengerResult](s.T(), rec).Result
		s.Equal(2, result.BookingID)
		s.Equal("p9", result.PassengerID)
	})

	s.Run("add on a single booking is 404", func() {
		req := reqdto.PassengerRequest{Name: "Ivy Chen"}
		s.mockCommands.EXPECT().AddPassenger(gomock.Any(), s.operatorID, booking.ID(1), req).
			Return(nil, booking.ErrNotGroupBooking).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/1/passengers", req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("update sends only the given fields", func() {
		s.mockCommands.EXPECT().UpdatePassenger(gomock.Any(), s.operatorID, booking.ID(2), booking.PassengerID("p1"), gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, _ booking.ID, _ booking.PassengerID, req reqdto.UpdatePassengerRequest) (*commands.PassengerResult, error) {
				s.Require().NotNil(req.HeadCount)
				s.Equal(4, *req.HeadCount)
				s.Nil(req.Name)
				return &commands.PassengerResult{BookingID: 2, PassengerID: "p1"}, nil
			}).Times(1)
		s.expectSnapshot(2)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/2/passengers/p1", map[string]any{"head_count": 4}, "")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("move to an existing booking", func() {
		req := reqdto.MovePassengerRequest{Mode: "existing", TargetBookingID: 6}
		s.mockCommands.EXPECT().MovePassenger(gomock.Any(), s.operatorID, booking.ID(2), booking.PassengerID("p3"), req).
			Return(&commands.BookingResult{BookingID: 6}, nil).Times(1)
		s.expectSnapshot(2, 6)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/2/passengers/p3/move", req, "")

		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		s.Equal(6, decodeMutation[resdto.BookingResult](s.T(), rec).Result.BookingID)
	})

	s.Run("move rejects an unknown mode before reaching the commands", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/2/passengers/p3/move",
			map[string]any{"mode": "sideways"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
