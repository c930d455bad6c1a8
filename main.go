package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fiorino-shop/florista-api/config"
	"github.com/fiorino-shop/florista-api/fileservice"
	"github.com/fiorino-shop/florista-api/models"
	"github.com/fiorino-shop/florista-api/routes"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("starting florista api")

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	db := initDatabase(cfg)

	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.ProductPhoto{},
		&models.Slider{},
		&models.SliderPhoto{},
		&models.Admin{},
	); err != nil {
		logrus.WithError(err).Fatal("auto-migrate failed")
	}

	if err := config.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logrus.WithError(err).Fatal("failed to seed admin account")
	}

	files := fileservice.New(cfg.UploadDir, cfg.UploadPrefix)

	r := gin.Default()
	r.MaxMultipartMemory = 32 << 20

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// stored photos are served straight from disk
	r.Static(cfg.UploadPrefix, cfg.UploadDir)

	routes.SetupRoutes(r, db, files, cfg)

	logrus.WithField("port", cfg.Port).Info("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

func initDatabase(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	return db
}
