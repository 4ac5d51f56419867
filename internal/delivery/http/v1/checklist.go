package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/event-planner/internal/planner"
)

func (h *handlerImpl) HandleGetChecklist(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	bookingID := c.Param("id")
	checklist, err := h.checklists.GetChecklist(c, userID, bookingID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("booking_id", bookingID).
			Msg("failed to get checklist")
		abortBookingError(c, err)
		return
	}

	h.logger.Info().
		Str("booking_id", bookingID).
		Msg("fetched checklist")
	c.JSON(http.StatusOK, checklist)
}

type toggleTaskRequest struct {
	// A pointer so that an explicit false is told apart from a missing field.
	Completed *bool `json:"completed" binding:"required"`
}

func (h *handlerImpl) HandleToggleChecklistTask(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req toggleTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	bookingID := c.Param("id")
	toggle := planner.Toggle{
		TaskID:    c.Param("task_id"),
		Completed: *req.Completed,
	}

	err = toggle.Validate()
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("task_id", toggle.TaskID).
			Msg("invalid task")
		abort(c, newBadRequestError(err.Error()))
		return
	}

	checklist, err := h.checklists.ToggleTask(c, userID, bookingID, toggle)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("booking_id", bookingID).
			Str("task_id", toggle.TaskID).
			Msg("failed to toggle task")
		abortBookingError(c, err)
		return
	}

	h.logger.Info().
		Str("booking_id", bookingID).
		Str("task_id", toggle.TaskID).
		Bool("completed", toggle.Completed).
		Msg("toggled checklist task")
	c.JSON(http.StatusOK, checklist)
}
