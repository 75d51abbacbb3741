package main

import (
	"log"

	"github.com/citizenconnect/complaints-api/internal/api/middleware"
	"github.com/citizenconnect/complaints-api/internal/api/routes"
	"github.com/citizenconnect/complaints-api/internal/application"
	"github.com/citizenconnect/complaints-api/internal/config"
	"github.com/citizenconnect/complaints-api/internal/config/db"
	"github.com/citizenconnect/complaints-api/internal/cron"
	"github.com/citizenconnect/complaints-api/internal/domain/audit"
	"github.com/citizenconnect/complaints-api/internal/domain/category"
	"github.com/citizenconnect/complaints-api/internal/domain/complaint"
	"github.com/citizenconnect/complaints-api/internal/domain/institution"
	"github.com/citizenconnect/complaints-api/internal/domain/user"
	"github.com/citizenconnect/complaints-api/internal/objectstore"
	"github.com/citizenconnect/complaints-api/internal/repository"
	"github.com/citizenconnect/complaints-api/internal/seed"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	if err := db.DB.AutoMigrate(
		&institution.Institution{},
		&category.Category{},
		&user.User{},
		&complaint.Complaint{},
		&complaint.Update{},
		&complaint.Message{},
		&complaint.Attachment{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	repos := repository.NewRepositories(db.DB)
	if seedFile, err := seed.Load(config.SeedFile); err != nil {
		log.Printf("Seed file not loaded: %v", err)
	} else if err := seed.Apply(repos, seedFile); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}

	cron.StartCleanupTask(application.NewAuditService(repos))

	store := objectstore.Init()

	var cache *redis.Client
	if config.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
		})
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, db.DB, store, cache)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
