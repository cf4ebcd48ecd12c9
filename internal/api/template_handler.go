package api

import (
	"errors"
	"net/http"

	"alcyxob/training-log/internal/repository"
	"alcyxob/training-log/internal/templates"

	"github.com/gin-gonic/gin"
)

// TemplateHandler serves the read-only workout catalog.
type TemplateHandler struct {
	templates *templates.Provider
}

func NewTemplateHandler(tmpls *templates.Provider) *TemplateHandler {
	return &TemplateHandler{templates: tmpls}
}

// List returns every workout template.
func (h *TemplateHandler) List(c *gin.Context) {
	all, err := h.templates.List(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "failed to list templates")
		return
	}
	c.JSON(http.StatusOK, all)
}

// Get returns one template by ID.
func (h *TemplateHandler) Get(c *gin.Context) {
	tmpl, err := h.templates.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "template not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "failed to load template")
		return
	}
	c.JSON(http.StatusOK, tmpl)
}
