package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fiorino-shop/florista-api/config"
	productController "github.com/fiorino-shop/florista-api/controllers/product"
	sliderController "github.com/fiorino-shop/florista-api/controllers/slider"
	"github.com/fiorino-shop/florista-api/fileservice"
	"github.com/fiorino-shop/florista-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the JWT check.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, files *fileservice.Service, cfg *config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(cfg.JWTSecret))
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productController.CreateProduct(db, files, cfg.MaxPhotoKB))
			productAdmin.PUT("/:id", productController.UpdateProduct(db, files, cfg.MaxPhotoKB))
			productAdmin.DELETE("/:id", productController.DeleteProduct(db, files, cfg.MaxPhotoKB))
			productAdmin.GET("/export", productController.ExportProductsToExcel(db))
		}

		photoAdmin := adminGroup.Group("/photos")
		{
			photoAdmin.PUT("/:id", productController.UpdatePhotoOrder(db, files, cfg.MaxPhotoKB))
			photoAdmin.DELETE("/:id", productController.DeletePhoto(db, files, cfg.MaxPhotoKB))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productController.CreateCategory(db))
			categoryAdmin.PUT("/:id", productController.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productController.DeleteCategory(db))
		}

		sliderAdmin := adminGroup.Group("/slider")
		{
			sliderAdmin.POST("", sliderController.CreateSlider(db, files, cfg.MaxPhotoKB))
			sliderAdmin.DELETE("/:id", sliderController.DeleteSlider(db, files, cfg.MaxPhotoKB))
		}

		sliderPhotoAdmin := adminGroup.Group("/slider-photos")
		{
			sliderPhotoAdmin.PUT("/:id", sliderController.UpdateSliderPhotoOrder(db, files, cfg.MaxPhotoKB))
			sliderPhotoAdmin.DELETE("/:id", sliderController.DeleteSliderPhoto(db, files, cfg.MaxPhotoKB))
		}
	}
}
