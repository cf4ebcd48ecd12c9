package api

import (
	"errors"
	"fmt"
	"net/http"

	"alcyxob/training-log/internal/service"
	"alcyxob/training-log/internal/session"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler reads and replaces the weekly schedule.
type ScheduleHandler struct {
	schedule *service.ScheduleService
}

func NewScheduleHandler(schedule *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule}
}

// Get returns the current schedule; empty when never set.
func (h *ScheduleHandler) Get(c *gin.Context) {
	sched, err := h.schedule.Get(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "failed to load schedule")
		return
	}
	c.JSON(http.StatusOK, sched)
}

type putScheduleRequest struct {
	Days map[string][]string `json:"days" binding:"required"`
}

// Put replaces the schedule wholesale.
func (h *ScheduleHandler) Put(c *gin.Context) {
	var req putScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	sched, err := h.schedule.Put(c.Request.Context(), req.Days)
	if err != nil {
		if errors.Is(err, session.ErrValidation) {
			abortWithError(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "failed to save schedule")
		return
	}
	c.JSON(http.StatusOK, sched)
}
