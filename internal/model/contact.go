package model

import "time"

// Contact statuses. New submissions start unread; admins flip the status as
// they work through the inbox.
const (
	ContactStatusUnread = "unread"
	ContactStatusRead   = "read"
)

// Contact is a contact-form submission. Rows are append-only from the public
// side; only the status is mutable, by admins.
type Contact struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message" gorm:"not null"`
	Status    string    `json:"status" gorm:"size:50;default:'unread'"`
	CreatedAt time.Time `json:"created_at"`
}
