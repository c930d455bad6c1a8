package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fiorino-shop/florista-api/config"
	adminController "github.com/fiorino-shop/florista-api/controllers/admin"
	"github.com/fiorino-shop/florista-api/fileservice"
)

// SetupRoutes wires up the public shop routes and the JWT-protected admin
// routes.
func SetupRoutes(r *gin.Engine, db *gorm.DB, files *fileservice.Service, cfg *config.Config) {
	r.POST("/auth/login", adminController.Login(db, cfg.JWTSecret))

	SetupShopRoutes(r, db)
	SetupAdminRoutes(r, db, files, cfg)
}
