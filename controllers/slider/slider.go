package sliderController

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/fiorino-shop/florista-api/fileservice"
	"github.com/fiorino-shop/florista-api/models"
	"github.com/fiorino-shop/florista-api/photos"
	"github.com/fiorino-shop/florista-api/validation"
)

// GET /slider — the storefront shows the first slider with its ordered
// photos.
func GetSlider(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var slider models.Slider
		err := db.Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("photo_order, id")
		}).Order("id").First(&slider).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "No slider configured"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch slider"})
			return
		}
		c.JSON(http.StatusOK, slider)
	}
}

// POST /admin/slider — title/description, a main photo, and an ordered
// sub-photo batch in one multipart form.
func CreateSlider(db *gorm.DB, files *fileservice.Service, maxKB int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		var v validation.Violations

		main, err := c.FormFile("photo")
		if err != nil {
			v.Add("photo", "photo is required")
		}
		var subPhotos []*multipart.FileHeader
		if form, err := c.MultipartForm(); err == nil {
			subPhotos = form.File["sub_photos"]
		}
		if len(v) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": v})
			return
		}

		v = append(v, validation.Photos("photo", []*multipart.FileHeader{main}, files, maxKB)...)
		v = append(v, validation.Photos("sub_photos", subPhotos, files, maxKB)...)
		if len(v) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": v})
			return
		}

		mainName, err := files.Upload(main)
		if err != nil {
			logrus.WithError(err).Error("failed to store slider photo")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo"})
			return
		}

		slider := models.Slider{
			Title:       c.PostForm("title"),
			Description: c.PostForm("description"),
			PhotoName:   mainName,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&slider).Error; err != nil {
				return err
			}
			set := photos.NewSet(photos.SliderPhotos(tx), files, maxKB)
			records, err := set.CreateBatch(slider.ID, subPhotos)
			if err != nil {
				return err
			}
			slider.Photos = make([]models.SliderPhoto, len(records))
			for i, rec := range records {
				slider.Photos[i] = models.SliderPhoto{
					ID: rec.ID, SliderID: rec.ParentID, Name: rec.Name, Order: rec.Order,
				}
			}
			return nil
		})
		if err != nil {
			if delErr := files.Delete(mainName); delErr != nil {
				logrus.WithError(delErr).Warn("failed to clean up slider photo")
			}
			logrus.WithError(err).Error("failed to create slider")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create slider"})
			return
		}

		c.JSON(http.StatusCreated, slider)
	}
}

// DELETE /admin/slider/:id
func DeleteSlider(db *gorm.DB, files *fileservice.Service, maxKB int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		var slider models.Slider
		if err := db.First(&slider, c.Param("id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Slider not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch slider"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			set := photos.NewSet(photos.SliderPhotos(tx), files, maxKB)
			if err := set.DeleteAll(slider.ID); err != nil {
				return err
			}
			return tx.Delete(&slider).Error
		})
		if err != nil {
			logrus.WithError(err).Error("failed to delete slider")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete slider"})
			return
		}

		if err := files.Delete(slider.PhotoName); err != nil {
			logrus.WithError(err).Warn("failed to delete slider photo file")
		}
		c.JSON(http.StatusOK, gin.H{"message": "Slider deleted"})
	}
}

type reorderInput struct {
	Order int `json:"order" binding:"required"`
}

// PUT /admin/slider-photos/:id
func UpdateSliderPhotoOrder(db *gorm.DB, files *fileservice.Service, maxKB int64) gin.HandlerFunc {
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

		set := photos.NewSet(photos.SliderPhotos(db), files, maxKB)
		if err := set.Reorder(uint(id), input.Order); err != nil {
			respondPhotoError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Photo order updated"})
	}
}

// DELETE /admin/slider-photos/:id
func DeleteSliderPhoto(db *gorm.DB, files *fileservice.Service, maxKB int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo id"})
			return
		}

		set := photos.NewSet(photos.SliderPhotos(db), files, maxKB)
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
