package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/fiorino-shop/florista-api/fileservice"
	"github.com/fiorino-shop/florista-api/models"
	"github.com/fiorino-shop/florista-api/photos"
)

// DeleteProduct removes the row, its primary photo file, and every record
// and file of its ordered photo set.
func DeleteProduct(db *gorm.DB, files *fileservice.Service, maxKB int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			set := photos.NewSet(photos.ProductPhotos(tx), files, maxKB)
			if err := set.DeleteAll(product.ID); err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			logrus.WithError(err).Error("failed to delete product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		if err := files.Delete(product.PhotoName); err != nil {
			logrus.WithError(err).Warn("failed to delete primary photo file")
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
