package handlers

import (
	"errors"
	"net/http"

	"github.com/citizenconnect/complaints-api/internal/application"
	"github.com/citizenconnect/complaints-api/internal/domain/user"
	"github.com/citizenconnect/complaints-api/pkg/response"
	"github.com/citizenconnect/complaints-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

const cookieMaxAge = 60 * 60 * 24 * 7 // one week

type AuthHandler struct {
	service *application.UserService
}

func NewAuthHandler(service *application.UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Email and password are required"})
		return
	}

	u, token, err := h.service.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "An error occurred during login"})
		return
	}

	c.SetCookie("token", token, cookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:         token,
		UserID:        u.ID,
		Email:         u.Email,
		FullName:      u.FullName,
		Role:          string(u.Role),
		InstitutionID: u.InstitutionID,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "logged out"})
}

// Status answers the session-restore probe with the resolved identity.
func (h *AuthHandler) Status(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, claims)
}
