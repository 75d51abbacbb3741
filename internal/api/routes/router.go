package routes

import (
	"github.com/citizenconnect/complaints-api/internal/api/handlers"
	"github.com/citizenconnect/complaints-api/internal/api/middleware"
	"github.com/citizenconnect/complaints-api/internal/application"
	"github.com/citizenconnect/complaints-api/internal/objectstore"
	"github.com/citizenconnect/complaints-api/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, store *objectstore.Store, cache *redis.Client) {
	repos := repository.NewRepositories(db)
	services := application.New(repos, store, cache)
	h := handlers.New(services)

	r.POST("/auth/login", h.Auth.Login)
	r.POST("/auth/logout", h.Auth.Logout)
	r.GET("/auth/status", middleware.JWTAuthMiddleware(), h.Auth.Status)

	// Public surface: the submission form's reference data, submission itself
	// and the open-read tracking lookup.
	r.GET("/categories", h.Catalog.ListCategories)
	r.GET("/institutions", h.Catalog.ListInstitutions)
	r.POST("/complaints", middleware.OptionalAuth(), h.Complaint.Submit)
	r.GET("/complaints/track/:trackingId", h.Complaint.Track)

	staff := r.Group("/")
	staff.Use(middleware.JWTAuthMiddleware(), middleware.Staff())
	{
		staff.GET("/complaints", h.Complaint.List)
		staff.PUT("/complaints/:id/status", h.Complaint.UpdateStatus)
		staff.POST("/complaints/:id/messages", h.Complaint.Respond)
		staff.GET("/dashboard/stats", h.Dashboard.GetStats)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.Admin())
	{
		admin.GET("/audit/logs", h.Audit.GetAuditLogs)
		admin.GET("/schema/tables", h.Schema.ListTables)
		admin.GET("/schema/tables/:name", h.Schema.InspectTable)
	}
}
