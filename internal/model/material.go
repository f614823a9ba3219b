package model

import "time"

// Material represents a building-material catalog entry. Prices are a range
// rather than a single figure; exact quotes depend on grade and quantity.
type Material struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description string    `json:"description"`
	Category    string    `json:"category" gorm:"size:100;not null;index"`
	PriceMin    float64   `json:"price_min"`
	PriceMax    float64   `json:"price_max"`
	ImageURL    string    `json:"image_url" gorm:"size:500"`
	InStock     bool      `json:"in_stock" gorm:"default:true"`
	Status      string    `json:"status" gorm:"size:50;default:'active';index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
