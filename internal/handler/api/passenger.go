package api

import (
	"net/http"

	"boat-scheduler/internal/domain/schedule"
	reqdto "boat-scheduler/internal/handler/dto/request"
	resdto "boat-scheduler/internal/handler/dto/response"
	"boat-scheduler/internal/handler/httperr"
	"boat-scheduler/internal/usecase/commands"
	"boat-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PassengerHandler struct {
	cmds commands.BookingCommands
	snapshotter
}

func NewPassengerHandler(cmds commands.BookingCommands, q queries.ScheduleQueries) *PassengerHandler {
	return &PassengerHandler{cmds: cmds, snapshotter: snapshotter{q: q}}
}

// @Summary Add passenger
// @Tags passengers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param request body reqdto.PassengerRequest true "Passenger"
// @Success 201 {object} resdto.MutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/passengers [post]
func (h *PassengerHandler) Add(c *gin.Context) {
	opID, ok := operatorID(c)
	if !ok {
		return
	}
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req reqdto.PassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.AddPassenger(c.Request.Context(), opID, id, req)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, opID, fromPassengerResult(res))
}

// @Summary Update passenger
// @Description Change contact details or head-count. Omitted fields keep their value.
// @Tags passengers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param pid path string true "Passenger ID"
// @Param request body reqdto.UpdatePassengerRequest true "Changes"
// @Success 200 {object} resdto.MutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/passengers/{pid} [patch]
func (h *PassengerHandler) Update(c *gin.Context) {
	opID, ok := operatorID(c)
	if !ok {
		return
	}
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req reqdto.UpdatePassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.UpdatePassenger(c.Request.Context(), opID, id, passengerID(c), req)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respond(c, http.StatusOK, opID, fromPassengerResult(res))
}

// @Summary Toggle passenger check-in
// @Tags passengers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param pid path string true "Passenger ID"
// @Success 200 {object} resdto.MutationResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/passengers/{pid}/check-in [post]
func (h *PassengerHandler) ToggleCheckIn(c *gin.Context) {
	opID, ok := operatorID(c)
	if !ok {
		return
	}
	id, ok := bookingID(c)
	if !ok {
		return
	}
	target := schedule.CheckInTarget{BookingID: id, PassengerID: passengerID(c)}
	res, err := h.cmds.ToggleCheckIn(c.Request.Context(), opID, target)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respond(c, http.StatusOK, opID, resdto.CheckInResult{CheckedIn: res.CheckedIn})
}

// @Summary Move passenger
// @Description Transfer a passenger to a new booking on the same boat or onto another group booking
// @Tags passengers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param pid path string true "Passenger ID"
// @Param request body reqdto.MovePassengerRequest true "Destination"
// @Success 200 {object} resdto.MutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/passengers/{pid}/move [post]
func (h *PassengerHandler) Move(c *gin.Context) {
	opID, ok := operatorID(c)
	if !ok {
		return
	}
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req reqdto.MovePassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.MovePassenger(c.Request.Context(), opID, id, passengerID(c), req)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respond(c, http.StatusOK, opID, resdto.BookingResult{BookingID: int(res.BookingID)})
}

func fromPassengerResult(r *commands.PassengerResult) resdto.PassengerResult {
	return resdto.PassengerResult{BookingID: int(r.BookingID), PassengerID: r.PassengerID.String()}
}
