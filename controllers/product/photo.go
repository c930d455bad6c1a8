package productController

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fiorino-shop/florista-api/fileservice"
	"github.com/fiorino-shop/florista-api/photos"
	"github.com/fiorino-shop/florista-api/validation"
)

type reorderInput struct {
	Order int `json:"order" binding:"required"`
}

// PUT /admin/photos/:id
func UpdatePhotoOrder(db *gorm.DB, files *fileservice.Service, maxKB int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo id"})
			return
		}
		var input reorderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		set := photos.NewSet(photos.ProductPhotos(db), files, maxKB)
		if err := set.Reorder(uint(id), input.Order); err != nil {
			respondPhotoError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Photo order updated"})
	}
}

// DELETE /admin/photos/:id
func DeletePhoto(db *gorm.DB, files *fileservice.Service, maxKB int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo id"})
			return
		}

		set := photos.NewSet(photos.ProductPhotos(db), files, maxKB)
		if err := set.DeleteOne(uint(id)); err != nil {
			respondPhotoError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Photo deleted"})
	}
}

func respondPhotoError(c *gin.Context, err error) {
	switch e := err.(type) {
	case validation.Violations:
		c.JSON(http.StatusBadRequest, gin.H{"errors": e})
	default:
		if errors.Is(err, photos.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update photo"})
	}
}
