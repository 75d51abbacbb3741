package handlers

import (
	"net/http"

	"github.com/citizenconnect/complaints-api/internal/application"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service *application.CatalogService
}

func NewCatalogHandler(service *application.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// Both listings are fail-soft: an empty array, never an error page, so the
// submission form always renders.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListCategories())
}

func (h *CatalogHandler) ListInstitutions(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListInstitutions())
}
