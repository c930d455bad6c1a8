package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	basketController "github.com/fiorino-shop/florista-api/controllers/basket"
	productController "github.com/fiorino-shop/florista-api/controllers/product"
	sliderController "github.com/fiorino-shop/florista-api/controllers/slider"
)

// SetupShopRoutes registers the public storefront endpoints.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productController.GetProducts(db))
	r.GET("/products/:id", productController.GetProduct(db))
	r.GET("/categories", productController.GetAllCategories(db))
	r.GET("/slider", sliderController.GetSlider(db))

	basketGroup := r.Group("/basket")
	{
		basketGroup.GET("", basketController.GetBasket(db))
		basketGroup.POST("", basketController.AddToBasket(db))
		basketGroup.DELETE("/:id", basketController.RemoveFromBasket(db))
	}
}
