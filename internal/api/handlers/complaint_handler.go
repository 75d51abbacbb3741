package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/citizenconnect/complaints-api/internal/application"
	"github.com/citizenconnect/complaints-api/internal/domain/complaint"
	"github.com/citizenconnect/complaints-api/pkg/response"
	"github.com/citizenconnect/complaints-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ComplaintHandler struct {
	service *application.ComplaintService
}

func NewComplaintHandler(service *application.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: service}
}

// Submit accepts the multipart submission form. Citizens may be anonymous or
// signed in; a token is honored when present but never required.
func (h *ComplaintHandler) Submit(c *gin.Context) {
	input := complaint.SubmitInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Location:    c.PostForm("location"),
		Priority:    complaint.Priority(c.PostForm("priority")),
		Province:    c.PostForm("province"),
		District:    c.PostForm("district"),
	}

	if raw := c.PostForm("category"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			input.CategoryID = uint(id)
		}
	}
	if raw := c.PostForm("subcategory"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			sub := uint(id)
			input.SubcategoryID = &sub
		}
	}
	if sector := c.PostForm("sector"); sector != "" {
		input.Sector = &sector
	}
	if contact := c.PostForm("contact"); contact != "" {
		input.ContactInfo = &contact
	}
	anonymous := c.PostForm("anonymous")
	input.IsAnonymous = anonymous == "true" || anonymous == "on"

	if claims, err := utils.GetClaimsFromContext(c); err == nil {
		input.CitizenID = &claims.UserID
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, headers := range form.File {
			for _, fh := range headers {
				f, err := fh.Open()
				if err != nil {
					continue
				}
				defer f.Close()
				input.Files = append(input.Files, complaint.FileUpload{
					Name:        fh.Filename,
					ContentType: fh.Header.Get("Content-Type"),
					Size:        fh.Size,
					Reader:      f,
				})
			}
		}
	}

	trackingID, err := h.service.Submit(input)
	if err != nil {
		if errors.Is(err, application.ErrValidation) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.TrackingResponse{Success: true, TrackingID: trackingID})
}

// Track is the open-read lookup: no authentication, tracking id only.
func (h *ComplaintHandler) Track(c *gin.Context) {
	thread, err := h.service.GetByTrackingID(c.Param("trackingId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to fetch complaint information"})
		return
	}
	if thread == nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "complaint not found"})
		return
	}
	c.JSON(http.StatusOK, thread)
}

func (h *ComplaintHandler) List(c *gin.Context) {
	filter := complaint.ListFilter{
		InstitutionID: utils.ParseUintQuery(c, "institution_id"),
		Status:        c.Query("status"),
	}
	c.JSON(http.StatusOK, h.service.List(filter))
}

func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input complaint.UpdateStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: application.ErrAuthRequired.Error()})
		return
	}

	if err := h.service.UpdateStatus(c, id, input, userID); err != nil {
		switch {
		case errors.Is(err, application.ErrAuthRequired):
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrComplaintNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "An error occurred while updating the complaint"})
		}
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "status updated"})
}

func (h *ComplaintHandler) Respond(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input complaint.RespondDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: application.ErrAuthRequired.Error()})
		return
	}

	if err := h.service.Respond(c, id, input.Content, userID); err != nil {
		switch {
		case errors.Is(err, application.ErrAuthRequired):
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrComplaintNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "An error occurred while sending your response"})
		}
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "response sent"})
}
