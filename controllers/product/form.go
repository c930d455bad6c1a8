package productController

import (
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fiorino-shop/florista-api/models"
	"github.com/fiorino-shop/florista-api/validation"
)

// productForm carries the parsed multipart fields shared by create and
// update.
type productForm struct {
	Name        string
	Description string
	Cost        decimal.Decimal
	Quantity    int
	Weight      float64
	Dimension   string
	Status      models.ProductStatus
	CategoryID  uint
}

// parseProductForm pulls the product fields out of the multipart form,
// accumulating a violation per bad field.
func parseProductForm(c *gin.Context) (*productForm, validation.Violations) {
	var v validation.Violations
	form := &productForm{
		Description: c.PostForm("description"),
		Dimension:   c.PostForm("dimension"),
		Status:      models.ProductStatus(c.DefaultPostForm("status", string(models.StatusAvailable))),
	}

	form.Name = c.PostForm("name")
	if form.Name == "" {
		v.Add("name", "name is required")
	}

	costStr := c.PostForm("cost")
	if costStr == "" {
		v.Add("cost", "cost is required")
	} else if cost, err := decimal.NewFromString(costStr); err != nil {
		v.Add("cost", "invalid cost")
	} else {
		form.Cost = cost
	}

	if quantityStr := c.PostForm("quantity"); quantityStr != "" {
		quantity, err := strconv.Atoi(quantityStr)
		if err != nil || quantity < 0 {
			v.Add("quantity", "invalid quantity")
		} else {
			form.Quantity = quantity
		}
	}

	if weightStr := c.PostForm("weight"); weightStr != "" {
		weight, err := strconv.ParseFloat(weightStr, 64)
		if err != nil {
			v.Add("weight", "invalid weight")
		} else {
			form.Weight = weight
		}
	}

	categoryStr := c.PostForm("category_id")
	if categoryStr == "" {
		v.Add("category_id", "category_id is required")
	} else if id64, err := strconv.ParseUint(categoryStr, 10, 64); err != nil {
		v.Add("category_id", "invalid category_id")
	} else {
		form.CategoryID = uint(id64)
	}

	return form, v
}

// batchFiles returns the ordered photo uploads of the multipart form.
func batchFiles(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	return form.File["photos"]
}

// storeLookups adapts the gorm handle to the checks the shared validator
// runs.
func storeLookups(db *gorm.DB) validation.ProductLookups {
	return validation.ProductLookups{
		NameTaken: func(normalized string, excludeID uint) (bool, error) {
			var count int64
			q := db.Model(&models.Product{}).Where("LOWER(TRIM(name)) = ?", normalized)
			if excludeID != 0 {
				q = q.Where("id <> ?", excludeID)
			}
			err := q.Count(&count).Error
			return count > 0, err
		},
		CategoryExists: func(id uint) (bool, error) {
			var count int64
			err := db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error
			return count > 0, err
		},
	}
}
