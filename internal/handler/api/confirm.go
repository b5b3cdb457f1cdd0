package api

import (
	"net/http"

	"boat-scheduler/internal/domain/confirm"
	reqdto "boat-scheduler/internal/handler/dto/request"
	resdto "boat-scheduler/internal/handler/dto/response"
	"boat-scheduler/internal/handler/httperr"
	"boat-scheduler/internal/usecase/commands"
	"boat-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ConfirmHandler struct {
	cmds commands.ConfirmCommands
	q    queries.ScheduleQueries
	snapshotter
}

func NewConfirmHandler(cmds commands.ConfirmCommands, q queries.ScheduleQueries) *ConfirmHandler {
	return &ConfirmHandler{cmds: cmds, q: q, snapshotter: snapshotter{q: q}}
}

// @Summary Arm or execute a destructive action
// @Description The first call arms cancel, refund, refund_passenger or remove_passenger. Repeating the same call before the timeout executes it.
// @Tags confirmations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmRequest true "Action"
// @Success 200 {object} resdto.MutationResponse
// @Success 202 {object} resdto.MutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /confirmations [post]
func (h *ConfirmHandler) Invoke(c *gin.Context) {
	opID, ok := operatorID(c)
	if !ok {
		return
	}
	var req reqdto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.Invoke(c.Request.Context(), opID, req)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	status := http.StatusOK
	if res.Outcome == confirm.OutcomeArmed {
		status = http.StatusAccepted
	}
	h.respond(c, status, opID, resdto.FromConfirmResult(res))
}

// @Summary Pending confirmation
// @Tags confirmations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.GateResponse
// @Router /confirmations [get]
func (h *ConfirmHandler) Status(c *gin.Context) {
	opID, ok := operatorID(c)
	if !ok {
		return
	}
	gate, err := h.q.Gate(c.Request.Context(), opID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGateView(*gate))
}

// @Summary Disarm
// @Description Drop the armed action, if any
// @Tags confirmations
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /confirmations [delete]
func (h *ConfirmHandler) Disarm(c *gin.Context) {
	opID, ok := operatorID(c)
	if !ok {
		return
	}
	if _, err := h.cmds.Disarm(c.Request.Context(), opID); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
