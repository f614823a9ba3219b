package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is an ordered list of strings persisted as a JSON array in a
// single text column. It round-trips through the store boundary so callers
// always see a decoded slice, never the raw blob.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("encode string list: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("decode string list: unsupported type %T", value)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// Property represents a real-estate listing.
type Property struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Description string     `json:"description"`
	Type        string     `json:"type" gorm:"size:100;not null;index"`
	Price       float64    `json:"price" gorm:"not null"`
	Location    string     `json:"location" gorm:"size:255;not null"`
	AreaSqm     float64    `json:"area_sqm"`
	Bedrooms    int        `json:"bedrooms"`
	Bathrooms   int        `json:"bathrooms"`
	Features    StringList `json:"features" gorm:"type:text"`
	ImageURL    string     `json:"image_url" gorm:"size:500"`
	Status      string     `json:"status" gorm:"size:50;default:'active';index"`
	Featured    bool       `json:"featured" gorm:"default:false;index"`
	CreatedBy   *uint      `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Creator *User `json:"-" gorm:"foreignKey:CreatedBy"`
}
