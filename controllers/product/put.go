package productController

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/fiorino-shop/florista-api/fileservice"
	"github.com/fiorino-shop/florista-api/models"
	"github.com/fiorino-shop/florista-api/photos"
	"github.com/fiorino-shop/florista-api/validation"
)

// UpdateProduct updates a product's fields and optionally swaps its primary
// photo and/or replaces its whole ordered photo set.
func UpdateProduct(db *gorm.DB, files *fileservice.Service, maxKB int64) gin.HandlerFunc {
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

		form, v := parseProductForm(c)
		if len(v) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": v})
			return
		}

		fieldViolations, err := validation.ProductFields(form.Name, form.CategoryID, product.ID, storeLookups(db))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}
		v = append(v, fieldViolations...)

		primary, primaryErr := c.FormFile("photo") // optional on update
		if primaryErr == nil {
			v = append(v, validation.Photos("photo", []*multipart.FileHeader{primary}, files, maxKB)...)
		}
		batch := batchFiles(c)
		v = append(v, validation.Photos("photos", batch, files, maxKB)...)

		if len(v) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": v})
			return
		}

		// swap primary photo before touching rows so the old file is only
		// dropped once the new one is safely stored
		oldPrimary := ""
		if primaryErr == nil {
			newName, err := files.Upload(primary)
			if err != nil {
				logrus.WithError(err).Error("failed to store primary photo")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo"})
				return
			}
			oldPrimary = product.PhotoName
			product.PhotoName = newName
		}

		product.Name = form.Name
		product.Description = form.Description
		product.Cost = form.Cost
		product.Quantity = form.Quantity
		product.Weight = form.Weight
		product.Dimension = form.Dimension
		product.Status = form.Status
		product.CategoryID = form.CategoryID

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
			if len(batch) > 0 {
				set := photos.NewSet(photos.ProductPhotos(tx), files, maxKB)
				if _, err := set.ReplaceBatch(product.ID, batch); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			logrus.WithError(err).Error("failed to update product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		if oldPrimary != "" {
			if err := files.Delete(oldPrimary); err != nil {
				logrus.WithError(err).Warn("failed to delete old primary photo")
			}
		}

		if err := db.Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("photo_order, id")
		}).First(&product, product.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
