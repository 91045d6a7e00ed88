package event

import (
	"time"
)

// Event is an organizer-created activity participants register for. Events
// are immutable after creation except deletion; deleting an event does not
// delete its participants.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Fee         *float64  `json:"fee,omitempty"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Image       string    `gorm:"type:text" json:"image"`
	Rule        string    `gorm:"type:text" json:"rule"`
	GroupSize   int       `gorm:"not null;default:1" json:"group_size"`
	CreatedBy   uint      `json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// CreateEventRequest is bound from the multipart form fields of POST /events.
// The image itself arrives as the "image" file part.
type CreateEventRequest struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description" binding:"required"`
	Fee         float64 `form:"fee"`
	Date        string  `form:"date" binding:"required"` // "2006-01-02"
	Rule        string  `form:"rule"`
	GroupSize   int     `form:"group_size" binding:"required,min=1"`
}
