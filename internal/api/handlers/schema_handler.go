package handlers

import (
	"net/http"

	"github.com/citizenconnect/complaints-api/internal/application"
	"github.com/citizenconnect/complaints-api/pkg/response"
	"github.com/gin-gonic/gin"
)

type SchemaHandler struct {
	service *application.SchemaService
}

func NewSchemaHandler(service *application.SchemaService) *SchemaHandler {
	return &SchemaHandler{service: service}
}

func (h *SchemaHandler) ListTables(c *gin.Context) {
	tables, err := h.service.ListTables()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tables": tables})
}

func (h *SchemaHandler) InspectTable(c *gin.Context) {
	columns, err := h.service.InspectTable(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"columns": columns})
}
