//go:build unit

package handler_test

import (
	"net/http"
	"testing"

	"boat-scheduler/internal/domain/operator"
	"boat-scheduler/internal/domain/schedule"
	"boat-scheduler/internal/handler"
	"boat-scheduler/internal/handler/api"
	"boat-scheduler/internal/handler/middleware"
	"boat-scheduler/internal/pkg/config"
	"boat-scheduler/internal/pkg/jwt"
	"boat-scheduler/internal/usecase"
	"boat-scheduler/internal/usecase/commands"
	"boat-scheduler/tests/common/authtest"
	"boat-scheduler/tests/common/builder"
	"boat-scheduler/tests/common/httptest"
	commandsmock "boat-scheduler/tests/mock/commands"
	queriesmock "boat-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RouterTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	bookingCmds *commandsmock.MockBookingCommands
	scheduleQ   *queriesmock.MockScheduleQueries
	tokens      *authtest.JWTHelper
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()

	s.mockCtrl = gomock.NewController(s.T())
	s.bookingCmds = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.scheduleQ = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	confirmCmds := commandsmock.NewMockConfirmCommands(s.mockCtrl)
	authCmds := commandsmock.NewMockAuthCommands(s.mockCtrl)
	operatorQ := queriesmock.NewMockOperatorQueries(s.mockCtrl)

	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessDuration, cfg.JWT.RefreshDuration, nil)
	s.tokens = authtest.NewJWTHelper(cfg.JWT)

	s.router = gin.New()
	handler.NewRouter(s.router, cfg, handler.Handlers{
		Auth:      api.NewAuthHandler(authCmds, operatorQ, jwtService, cfg),
		Schedule:  api.NewScheduleHandler(s.bookingCmds, s.scheduleQ),
		Booking:   api.NewBookingHandler(s.bookingCmds, s.scheduleQ),
		Passenger: api.NewPassengerHandler(s.bookingCmds, s.scheduleQ),
		Confirm:   api.NewConfirmHandler(confirmCmds, s.scheduleQ),
	}, middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwtService)))
}

func (s *RouterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) TestHealth() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestCORS() {
	rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/health",
		map[string]string{"Origin": "http://localhost:3000"})

	s.Equal(http.StatusOK, rec.Code)
	httptest.AssertHeaders(s.T(), rec, map[string]string{
		"Access-Control-Allow-Origin":      "http://localhost:3000",
		"Access-Control-Allow-Credentials": "true",
	})
	s.NotEmpty(rec.Header().Get(middleware.RequestIDHeader))
}

func (s *RouterTestSuite) TestAuthentication() {
	s.Run("missing token is 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/schedule", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("garbage token is 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/schedule", nil, "not-a-jwt")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("expired token is 401", func() {
		token := s.tokens.CreateExpiredToken(s.T(), "skipper", operator.RoleOperator)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/schedule", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("refresh token cannot be used as access token", func() {
		token := s.tokens.GenerateRefreshToken(s.T(), "skipper", operator.RoleOperator)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/schedule", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("cookie token is accepted", func() {
		token, id := s.tokens.GenerateToken(s.T(), "skipper", operator.RoleViewer)
		s.scheduleQ.EXPECT().Schedule(gomock.Any(), id, schedule.Filter{}).Return(builder.ScheduleView(), nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/schedule", nil,
			[]*http.Cookie{{Name: "access_token", Value: token}}, "")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})
}

func (s *RouterTestSuite) TestRoles() {
	createBody := builder.NewBookingBuilder().BuildDTO()

	s.Run("viewer can read the schedule", func() {
		token, id := s.tokens.GenerateToken(s.T(), "deckhand", operator.RoleViewer)
		s.scheduleQ.EXPECT().Schedule(gomock.Any(), id, schedule.Filter{}).Return(builder.ScheduleView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/schedule", nil, token)
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("viewer cannot change it", func() {
		token, _ := s.tokens.GenerateToken(s.T(), "deckhand", operator.RoleViewer)

		for _, req := range []struct{ method, path string }{
			{http.MethodPost, "/api/bookings"},
			{http.MethodPut, "/api/bookings/1/slot"},
			{http.MethodPost, "/api/bookings/1/check-in"},
			{http.MethodPost, "/api/confirmations"},
			{http.MethodDelete, "/api/confirmations"},
		} {
			rec := httptest.PerformRequest(s.T(), s.router, req.method, req.path, createBody, token)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
		}
	})

	for _, role := range []operator.Role{operator.RoleOperator, operator.RoleAdmin} {
		s.Run(role.String()+" can create bookings", func() {
			token, id := s.tokens.GenerateToken(s.T(), "skipper", role)
			s.bookingCmds.EXPECT().Create(gomock.Any(), id, gomock.Any()).Return(&commands.BookingResult{BookingID: 14}, nil).Times(1)
			s.scheduleQ.EXPECT().Schedule(gomock.Any(), id, schedule.Filter{}).Return(builder.ScheduleView(), nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", createBody, token)
			s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
		})
	}
}
