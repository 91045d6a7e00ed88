package idea

import (
	"time"
)

// Idea is a free-standing submission from the front-end site; it has no
// relationship to events or participants.
type Idea struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	AuthorName  string    `gorm:"type:varchar(255);not null" json:"author_name"`
	Email       string    `gorm:"type:varchar(255);not null" json:"email"`
	Attachment  string    `gorm:"type:text" json:"attachment,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type CreateIdeaRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	AuthorName  string `form:"author_name" binding:"required"`
	Email       string `form:"email" binding:"required,email"`
}
