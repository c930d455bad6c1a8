package basketController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/fiorino-shop/florista-api/basket"
	"github.com/fiorino-shop/florista-api/models"
)

type AddInput struct {
	ID uint `json:"id" binding:"required"`
}

// readBasket decodes the basket cookie. No cookie, or a malformed one, means
// an empty basket; a tampered token is not worth failing a shopper's request
// over, the next write simply replaces it.
func readBasket(c *gin.Context) basket.Basket {
	token, err := c.Cookie(basket.CookieName)
	if err != nil {
		return basket.Basket{}
	}
	b, err := basket.Decode(token)
	if err != nil {
		logrus.WithError(err).Warn("resetting malformed basket cookie")
		return basket.Basket{}
	}
	return b
}

func writeBasket(c *gin.Context, b basket.Basket) {
	c.SetCookie(basket.CookieName, b.Encode(), 0, "/", "", false, false)
}

// GET /basket
func GetBasket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		b := readBasket(c)

		ids := make([]uint, len(b))
		for i, line := range b {
			ids[i] = line.ID
		}
		byID := map[uint]*models.Product{}
		if len(ids) > 0 {
			var products []models.Product
			if err := db.Where("id IN ?", ids).Find(&products).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch basket products"})
				return
			}
			for i := range products {
				byID[products[i].ID] = &products[i]
			}
		}

		items := b.Project(func(id uint) (*models.Product, bool) {
			p, ok := byID[id]
			return p, ok
		})
		c.JSON(http.StatusOK, items)
	}
}

// POST /basket
func AddToBasket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		b := readBasket(c).Add(product.ID)
		writeBasket(c, b)
		c.JSON(http.StatusOK, b)
	}
}

// DELETE /basket/:id
func RemoveFromBasket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		// removing a product that is not in the basket is a no-op
		b := readBasket(c).Remove(product.ID)
		writeBasket(c, b)
		c.JSON(http.StatusOK, b)
	}
}
