package productController

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/fiorino-shop/florista-api/fileservice"
	"github.com/fiorino-shop/florista-api/models"
	"github.com/fiorino-shop/florista-api/photos"
	"github.com/fiorino-shop/florista-api/validation"
)

// CreateProduct creates a product with its primary photo and ordered photo
// set from one multipart form. All validation runs before any write; the row
// inserts share one transaction, and stored files are cleaned up if it fails.
func CreateProduct(db *gorm.DB, files *fileservice.Service, maxKB int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, v := parseProductForm(c)

		primary, err := c.FormFile("photo")
		if err != nil {
			v.Add("photo", "photo is required")
		}
		batch := batchFiles(c)

		if len(v) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": v})
			return
		}

		fieldViolations, err := validation.ProductFields(form.Name, form.CategoryID, 0, storeLookups(db))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}
		v = append(v, fieldViolations...)
		v = append(v, validation.Photos("photo", []*multipart.FileHeader{primary}, files, maxKB)...)
		v = append(v, validation.Photos("photos", batch, files, maxKB)...)
		if len(v) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": v})
			return
		}

		primaryName, err := files.Upload(primary)
		if err != nil {
			logrus.WithError(err).Error("failed to store primary photo")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo"})
			return
		}

		product := models.Product{
			Name:        form.Name,
			Description: form.Description,
			Cost:        form.Cost,
			Quantity:    form.Quantity,
			Weight:      form.Weight,
			Dimension:   form.Dimension,
			Status:      form.Status,
			CategoryID:  form.CategoryID,
			PhotoName:   primaryName,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&product).Error; err != nil {
				return errors.Wrap(err, "create product")
			}
			set := photos.NewSet(photos.ProductPhotos(tx), files, maxKB)
			records, err := set.CreateBatch(product.ID, batch)
			if err != nil {
				return err
			}
			product.Photos = make([]models.ProductPhoto, len(records))
			for i, rec := range records {
				product.Photos[i] = models.ProductPhoto{
					ID: rec.ID, ProductID: rec.ParentID, Name: rec.Name, Order: rec.Order,
				}
			}
			return nil
		})
		if err != nil {
			// row inserts rolled back; drop the primary photo file too
			if delErr := files.Delete(primaryName); delErr != nil {
				logrus.WithError(delErr).Warn("failed to clean up primary photo")
			}
			logrus.WithError(err).Error("failed to create product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
