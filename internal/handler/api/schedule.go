package api

import (
	"net/http"

	reqdto "boat-scheduler/internal/handler/dto/request"
	resdto "boat-scheduler/internal/handler/dto/response"
	"boat-scheduler/internal/handler/httperr"
	"boat-scheduler/internal/usecase/commands"
	"boat-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	cmds commands.BookingCommands
	q    queries.ScheduleQueries
	snapshotter
}

func NewScheduleHandler(cmds commands.BookingCommands, q queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{cmds: cmds, q: q, snapshotter: snapshotter{q: q}}
}

// @Summary Get schedule
// @Description Bookings of the operator's working schedule, optionally filtered, with the fleet and gate state
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param from query string false "RFC3339 lower bound"
// @Param to query string false "RFC3339 upper bound"
// @Param resource_id query string false "Boat id"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 400 {object} httperr.Response
// @Router /schedule [get]
func (h *ScheduleHandler) Schedule(c *gin.Context) {
	opID, ok := operatorID(c)
	if !ok {
		return
	}
	var req reqdto.ScheduleFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	view, err := h.q.Schedule(c.Request.Context(), opID, filter)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromScheduleView(view))
}

// @Summary Schedule statistics
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param from query string false "RFC3339 lower bound"
// @Param to query string false "RFC3339 upper bound"
// @Param resource_id query string false "Boat id"
// @Success 200 {object} resdto.StatsResponse
// @Router /schedule/stats [get]
func (h *ScheduleHandler) Stats(c *gin.Context) {
	opID, ok := operatorID(c)
	if !ok {
		return
	}
	var req reqdto.ScheduleFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	stats, err := h.q.Stats(c.Request.Context(), opID, filter)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatsView(stats))
}

// @Summary Reload schedule
// @Description Replace the working schedule with a fresh load from the data source. Unsynced local edits and any armed action are dropped.
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MutationResponse
// @Failure 502 {object} httperr.Response
// @Router /schedule/sync [post]
func (h *ScheduleHandler) Sync(c *gin.Context) {
	opID, ok := operatorID(c)
	if !ok {
		return
	}
	res, err := h.cmds.Sync(c.Request.Context(), opID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respond(c, http.StatusOK, opID, resdto.SyncResult{Bookings: res.Bookings})
}

// @Summary List boats
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ResourceResponse
// @Router /resources [get]
func (h *ScheduleHandler) Resources(c *gin.Context) {
	opID, ok := operatorID(c)
	if !ok {
		return
	}
	resources, err := h.q.Resources(c.Request.Context(), opID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceViews(resources))
}
