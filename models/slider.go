package models

import "time"

// Slider is the homepage main slider. The storefront shows the first row;
// admins may keep older ones around and delete them individually.
type Slider struct {
	ID          uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	PhotoName   string        `gorm:"not null" json:"photo_name"` // main photo
	Photos      []SliderPhoto `gorm:"foreignKey:SliderID;constraint:OnDelete:CASCADE" json:"photos,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

type SliderPhoto struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	SliderID uint   `gorm:"index;not null" json:"slider_id"`
	Name     string `gorm:"not null" json:"name"`
	Order    int    `gorm:"column:photo_order;not null" json:"order"`
}
