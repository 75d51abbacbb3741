package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/citizenconnect/complaints-api/internal/application"
	"github.com/citizenconnect/complaints-api/internal/repository"
	"github.com/citizenconnect/complaints-api/pkg/response"
	"github.com/citizenconnect/complaints-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	service *application.AuditService
}

func NewAuditHandler(service *application.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	params := repository.AuditQueryParams{
		UserID: utils.ParseUintQuery(c, "user_id"),
		Limit:  100,
	}

	if rt := c.Query("resource_type"); rt != "" {
		params.ResourceType = &rt
	}
	if action := c.Query("action"); action != "" {
		params.Action = &action
	}
	if raw := c.Query("start"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			params.StartTime = &t
		}
	}
	if raw := c.Query("end"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			params.EndTime = &t
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			params.Limit = limit
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset > 0 {
			params.Offset = offset
		}
	}

	logs, err := h.service.QueryAuditLogs(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}
