package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/citizenconnect/complaints-api/internal/domain/user"
	"github.com/citizenconnect/complaints-api/pkg/response"
	"github.com/citizenconnect/complaints-api/pkg/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Staff requires an authenticated admin or institution_admin.
func Staff() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}

		role := user.Role(claims.Role)
		if role != user.RoleAdmin && role != user.RoleInstitutionAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "staff only"})
			return
		}
		c.Next()
	}
}

// Admin requires the global admin role.
func Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}

		if user.Role(claims.Role) != user.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "admin only"})
			return
		}
		c.Next()
	}
}

// OptionalAuth resolves claims when a token is present but never rejects;
// complaint submission accepts both anonymous and signed-in citizens.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenStr = parts[1]
			}
		} else if cookie, err := c.Cookie("token"); err == nil {
			tokenStr = cookie
		}

		if tokenStr != "" {
			if claims, err := ParseToken(tokenStr); err == nil && claims != nil {
				c.Set("claims", claims)
			}
		}
		c.Next()
	}
}

func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost:") {
				return true
			}
			if strings.HasPrefix(origin, "http://127.0.0.1:") {
				return true
			}
			return strings.HasSuffix(origin, ".citizenconnect.gov.rw")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	return cors.New(config)
}
