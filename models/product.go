package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	StatusAvailable    ProductStatus = "available"
	StatusNew          ProductStatus = "new"
	StatusOutOfStock   ProductStatus = "out_of_stock"
	StatusDiscontinued ProductStatus = "discontinued"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"cost"`
	Quantity    int             `json:"quantity"` // units in stock
	Weight      float64         `json:"weight"`
	Dimension   string          `json:"dimension"`
	Status      ProductStatus   `gorm:"default:available" json:"status"`
	CategoryID  uint            `gorm:"index;not null" json:"category_id"`
	Category    Category        `json:"category,omitempty"`
	PhotoName   string          `gorm:"not null" json:"photo_name"` // primary photo
	Photos      []ProductPhoto  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"photos,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductPhoto is one entry of a product's ordered photo set. Order is
// assigned sequentially per upload batch; gaps after deletions are fine.
type ProductPhoto struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	Name      string `gorm:"not null" json:"name"`
	Order     int    `gorm:"column:photo_order;not null" json:"order"`
}
