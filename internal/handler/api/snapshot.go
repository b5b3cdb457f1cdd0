package api

import (
	"net/http"
	"strconv"

	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/domain/schedule"
	resdto "boat-scheduler/internal/handler/dto/response"
	"boat-scheduler/internal/handler/httperr"
	"boat-scheduler/internal/handler/middleware"
	"boat-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// snapshotter answers mutations with the operator's whole schedule so clients never hold a
// stale copy.
type snapshotter struct {
	q queries.ScheduleQueries
}

func (s snapshotter) respond(c *gin.Context, status int, operatorID uuid.UUID, result any) {
	view, err := s.q.Schedule(c.Request.Context(), operatorID, schedule.Filter{})
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(status, resdto.MutationResponse{
		Result:   result,
		Schedule: resdto.FromScheduleView(view),
	})
}

func operatorID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetOperatorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
	}
	return id, ok
}

func bookingID(c *gin.Context) (booking.ID, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return booking.NoID, false
	}
	return booking.ID(id), true
}

func passengerID(c *gin.Context) booking.PassengerID {
	return booking.PassengerID(c.Param("pid"))
}
