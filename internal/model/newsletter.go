package model

import "time"

// Subscription is a newsletter signup. Unsubscribing flips the flag instead
// of deleting the row, so a returning address reactivates the same record.
type Subscription struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Email      string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Subscribed bool      `json:"subscribed" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName keeps the original table name.
func (Subscription) TableName() string {
	return "newsletter"
}
