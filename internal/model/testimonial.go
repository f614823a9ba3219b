package model

import "time"

// Testimonial statuses.
const (
	TestimonialStatusPending  = "pending"
	TestimonialStatusApproved = "approved"
)

// Testimonial is a client quote shown on the site. Only seeded for now; there
// are no API routes over it yet.
type Testimonial struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Role      string    `json:"role" gorm:"size:255"`
	Message   string    `json:"message" gorm:"not null"`
	ImageURL  string    `json:"image_url" gorm:"size:500"`
	Status    string    `json:"status" gorm:"size:50;default:'pending'"`
	CreatedAt time.Time `json:"created_at"`
}
