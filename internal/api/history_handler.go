package api

import (
	"errors"
	"net/http"

	"alcyxob/training-log/internal/history"
	"alcyxob/training-log/internal/service"

	"github.com/gin-gonic/gin"
)

// HistoryHandler serves completed workout records.
type HistoryHandler struct {
	history *service.HistoryService
}

func NewHistoryHandler(h *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{history: h}
}

// List returns record summaries, newest first.
func (h *HistoryHandler) List(c *gin.Context) {
	records, err := h.history.List(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "failed to list history")
		return
	}
	c.JSON(http.StatusOK, records)
}

// Get returns one record with its display columns.
func (h *HistoryHandler) Get(c *gin.Context) {
	detail, err := h.history.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, history.ErrRecordNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "failed to load record")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Delete removes one record permanently.
func (h *HistoryHandler) Delete(c *gin.Context) {
	if err := h.history.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, history.ErrRecordNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "failed to delete record")
		return
	}
	c.Status(http.StatusNoContent)
}

// Export uploads a JSON snapshot of all records and returns a
// short-lived download link.
func (h *HistoryHandler) Export(c *gin.Context) {
	export, err := h.history.ExportAll(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "failed to export history")
		return
	}
	c.JSON(http.StatusOK, export)
}
