package participant

import (
	"time"
)

// Participant is one registrant's record. Participants are created in bulk,
// once, at registration time and never mutated. All rows sharing a group_id
// came from the same registration call and count exactly the owning event's
// group size.
type Participant struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Email         string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone         string    `gorm:"type:varchar(20);not null" json:"phone"`
	College       string    `gorm:"type:varchar(255)" json:"college,omitempty"`
	Course        string    `gorm:"type:varchar(100)" json:"course,omitempty"`
	Branch        string    `gorm:"type:varchar(100)" json:"branch"`
	Year          string    `gorm:"type:varchar(20)" json:"year"`
	Group         string    `gorm:"type:varchar(100);index" json:"group"` // human-chosen team name
	EventID       uint      `gorm:"not null;index" json:"event_id"`
	GroupID       string    `gorm:"type:varchar(20);not null;index" json:"group_id"`
	TransactionID string    `gorm:"type:varchar(100)" json:"transaction_id,omitempty"`
	PaymentImage  string    `gorm:"type:text" json:"payment_image,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ParticipantInput is one member of a registration batch.
type ParticipantInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	College       string `json:"college"`
	Course        string `json:"course"`
	Branch        string `json:"branch"`
	Year          string `json:"year"`
	Group         string `json:"group"`
	TransactionID string `json:"transaction_id"`
	PaymentImage  string `json:"payment_image"`
}

// RegisterRequest is the body of POST /events/:id/participants.
type RegisterRequest struct {
	Participants []ParticipantInput `json:"participants"`
}
