package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"alcyxob/training-log/internal/domain"
	"alcyxob/training-log/internal/service"
	"alcyxob/training-log/internal/session"

	"github.com/gin-gonic/gin"
)

// ClassHandler logs jiu-jitsu classes and journal entries.
type ClassHandler struct {
	classes *service.ClassService
}

func NewClassHandler(classes *service.ClassService) *ClassHandler {
	return &ClassHandler{classes: classes}
}

type logClassRequest struct {
	Date              string           `json:"date" binding:"required"` // YYYY-MM-DD
	Time              string           `json:"time"`
	Instructor        string           `json:"instructor" binding:"required"`
	Type              domain.ClassType `json:"type" binding:"omitempty,oneof=gi nogi"`
	TechniquesCovered string           `json:"techniquesCovered"`
	Rolls             []domain.Roll    `json:"rolls"`
}

// LogClass stores one class.
func (h *ClassHandler) LogClass(c *gin.Context) {
	var req logClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	id, err := h.classes.LogClass(c.Request.Context(), domain.Class{
		Date:              date,
		Time:              req.Time,
		Instructor:        req.Instructor,
		Type:              req.Type,
		TechniquesCovered: req.TechniquesCovered,
		Rolls:             req.Rolls,
	})
	if err != nil {
		if errors.Is(err, session.ErrValidation) {
			abortWithError(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "failed to log class")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.Hex()})
}

// Classes lists logged classes, newest first.
func (h *ClassHandler) Classes(c *gin.Context) {
	classes, err := h.classes.Classes(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "failed to list classes")
		return
	}
	c.JSON(http.StatusOK, classes)
}

type journalRequest struct {
	Body string `json:"body" binding:"required"`
}

// AddJournalEntry stores a free-form training note.
func (h *ClassHandler) AddJournalEntry(c *gin.Context) {
	var req journalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	id, err := h.classes.AddJournalEntry(c.Request.Context(), req.Body)
	if err != nil {
		if errors.Is(err, session.ErrValidation) {
			abortWithError(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "failed to add journal entry")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.Hex()})
}

// JournalEntries lists journal entries, newest first.
func (h *ClassHandler) JournalEntries(c *gin.Context) {
	entries, err := h.classes.JournalEntries(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, entries)
}
