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

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.ScheduleQueries
	snapshotter
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.ScheduleQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, snapshotter: snapshotter{q: q}}
}

// @Summary Create booking
// @Description Book a boat. Group boats get a booking with the contact as first passenger.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.MutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	opID, ok := operatorID(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.Create(c.Request.Context(), opID, req)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, opID, resdto.BookingResult{BookingID: int(res.BookingID)})
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	opID, ok := operatorID(c)
	if !ok {
		return
	}
	id, ok := bookingID(c)
	if !ok {
		return
	}
	view, err := h.q.Booking(c.Request.Context(), opID, id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Move booking
// @Description Reschedule a single booking on its boat
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param request body reqdto.MoveBookingRequest true "New slot"
// @Success 200 {object} resdto.MutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /bookings/{id}/slot [put]
func (h *BookingHandler) Move(c *gin.Context) {
	opID, ok := operatorID(c)
	if !ok {
		return
	}
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req reqdto.MoveBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.Move(c.Request.Context(), opID, id, req)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respond(c, http.StatusOK, opID, resdto.BookingResult{BookingID: int(res.BookingID)})
}

// @Summary Toggle booking check-in
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.MutationResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/check-in [post]
func (h *BookingHandler) ToggleCheckIn(c *gin.Context) {
	opID, ok := operatorID(c)
	if !ok {
		return
	}
	id, ok := bookingID(c)
	if !ok {
		return
	}
	res, err := h.cmds.ToggleCheckIn(c.Request.Context(), opID, schedule.CheckInTarget{BookingID: id})
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respond(c, http.StatusOK, opID, resdto.CheckInResult{CheckedIn: res.CheckedIn})
}
