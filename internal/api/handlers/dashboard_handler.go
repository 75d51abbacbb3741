package handlers

import (
	"net/http"

	"github.com/citizenconnect/complaints-api/internal/application"
	"github.com/citizenconnect/complaints-api/pkg/response"
	"github.com/citizenconnect/complaints-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service *application.DashboardService
}

func NewDashboardHandler(service *application.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "You must be logged in to view dashboard statistics"})
		return
	}

	stats, err := h.service.GetStats(utils.ParseUintQuery(c, "institution_id"), claims)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to fetch dashboard statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
