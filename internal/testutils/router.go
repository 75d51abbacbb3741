package testutils

import (
	"github.com/citizenconnect/complaints-api/internal/api/routes"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, db, nil, nil)
	return r
}
