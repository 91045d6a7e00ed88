package notice

import (
	"time"
)

// Notice is a flat announcement shown on the front-end site.
type Notice struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Link      string    `gorm:"type:text" json:"link,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// SiteData is a key/value row for front-end content blocks.
type SiteData struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"type:varchar(100);not null;uniqueIndex" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
}

type NoticeRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
	Link  string `json:"link"`
}

type SiteDataRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}
