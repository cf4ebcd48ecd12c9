package api

import (
	"errors"
	"net/http"
	"strconv"

	"alcyxob/training-log/internal/repository"
	"alcyxob/training-log/internal/service"
	"alcyxob/training-log/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the active-session engine over HTTP. Every
// route is keyed by template ID: at most one session per template is
// live at a time.
type SessionHandler struct {
	sessions *service.SessionService
}

func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Start resumes or creates the session for a template.
func (h *SessionHandler) Start(c *gin.Context) {
	snap, err := h.sessions.Start(c.Request.Context(), c.Param("templateId"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "template not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "failed to start session")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// Snapshot returns the current state of an active session.
func (h *SessionHandler) Snapshot(c *gin.Context) {
	snap, err := h.sessions.Snapshot(c.Param("templateId"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// UpdateSet applies a partial update to one set.
func (h *SessionHandler) UpdateSet(c *gin.Context) {
	exercise, set, ok := h.setIndices(c)
	if !ok {
		return
	}
	var patch session.SetPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid set patch")
		return
	}
	if err := h.sessions.UpdateSet(c.Request.Context(), c.Param("templateId"), exercise, set, patch); err != nil {
		h.sessionError(c, err)
		return
	}
	h.respondSnapshot(c)
}

// AddSet appends an empty set to an exercise.
func (h *SessionHandler) AddSet(c *gin.Context) {
	exercise, ok := h.exerciseIndex(c)
	if !ok {
		return
	}
	if err := h.sessions.AddSet(c.Request.Context(), c.Param("templateId"), exercise); err != nil {
		h.sessionError(c, err)
		return
	}
	h.respondSnapshot(c)
}

// RemoveSet drops one set; removing the last set is a no-op.
func (h *SessionHandler) RemoveSet(c *gin.Context) {
	exercise, set, ok := h.setIndices(c)
	if !ok {
		return
	}
	if err := h.sessions.RemoveSet(c.Request.Context(), c.Param("templateId"), exercise, set); err != nil {
		h.sessionError(c, err)
		return
	}
	h.respondSnapshot(c)
}

type toggleRequest struct {
	Exercise int `json:"exercise"`
}

// ToggleExpand expands or collapses one exercise card.
func (h *SessionHandler) ToggleExpand(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid toggle request")
		return
	}
	if err := h.sessions.ToggleExpand(c.Request.Context(), c.Param("templateId"), req.Exercise); err != nil {
		h.sessionError(c, err)
		return
	}
	h.respondSnapshot(c)
}

// ToggleInfo shows or hides one exercise's description panel.
func (h *SessionHandler) ToggleInfo(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid toggle request")
		return
	}
	if err := h.sessions.ToggleInfo(c.Request.Context(), c.Param("templateId"), req.Exercise); err != nil {
		h.sessionError(c, err)
		return
	}
	h.respondSnapshot(c)
}

// UpdateCardio applies a partial update to the cardio fields.
func (h *SessionHandler) UpdateCardio(c *gin.Context) {
	var patch session.CardioPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid cardio patch")
		return
	}
	if err := h.sessions.UpdateCardio(c.Request.Context(), c.Param("templateId"), patch); err != nil {
		h.sessionError(c, err)
		return
	}
	h.respondSnapshot(c)
}

// ToggleRestTimer starts/pauses one exercise's rest timer; a quick
// second tap resets it.
func (h *SessionHandler) ToggleRestTimer(c *gin.Context) {
	exercise, ok := h.exerciseIndex(c)
	if !ok {
		return
	}
	view, err := h.sessions.ToggleRestTimer(c.Param("templateId"), exercise)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ResetRestTimer restores one rest timer to its full duration.
func (h *SessionHandler) ResetRestTimer(c *gin.Context) {
	exercise, ok := h.exerciseIndex(c)
	if !ok {
		return
	}
	view, err := h.sessions.ResetRestTimer(c.Param("templateId"), exercise)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ToggleTabata starts or pauses the interval driver.
func (h *SessionHandler) ToggleTabata(c *gin.Context) {
	state, err := h.sessions.ToggleTabata(c.Param("templateId"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ResetTabata restores the interval driver to idle.
func (h *SessionHandler) ResetTabata(c *gin.Context) {
	state, err := h.sessions.ResetTabata(c.Param("templateId"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// CompleteTabata stamps the fixed completion values onto the draft.
func (h *SessionHandler) CompleteTabata(c *gin.Context) {
	if err := h.sessions.CompleteTabata(c.Request.Context(), c.Param("templateId")); err != nil {
		h.sessionError(c, err)
		return
	}
	h.respondSnapshot(c)
}

// Save validates and persists the session as a history record.
func (h *SessionHandler) Save(c *gin.Context) {
	id, err := h.sessions.Save(c.Request.Context(), c.Param("templateId"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recordId": id.Hex()})
}

// Abandon discards the session and its draft.
func (h *SessionHandler) Abandon(c *gin.Context) {
	if err := h.sessions.Abandon(c.Request.Context(), c.Param("templateId")); err != nil {
		h.sessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) respondSnapshot(c *gin.Context) {
	snap, err := h.sessions.Snapshot(c.Param("templateId"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *SessionHandler) exerciseIndex(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid exercise index")
		return 0, false
	}
	return idx, true
}

func (h *SessionHandler) setIndices(c *gin.Context) (int, int, bool) {
	exercise, ok := h.exerciseIndex(c)
	if !ok {
		return 0, 0, false
	}
	set, err := strconv.Atoi(c.Param("setIdx"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid set index")
		return 0, 0, false
	}
	return exercise, set, true
}

// sessionError maps engine errors onto HTTP statuses.
func (h *SessionHandler) sessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoActiveSession):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, session.ErrNoSuchExercise), errors.Is(err, session.ErrNoSuchSet),
		errors.Is(err, service.ErrTimerNotFound), errors.Is(err, service.ErrNotTabata):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, session.ErrSaveInFlight):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrSessionClosed):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrValidation):
		abortWithError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "session operation failed")
	}
}
