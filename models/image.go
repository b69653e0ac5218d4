package models

import (
	"time"
)

type Image struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ImageFile   string    `gorm:"type:text" json:"image_file"` // base64 payload
	Date        time.Time `gorm:"not null" json:"date"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	User        User      `json:"user"`
	Tags        []Tag     `gorm:"many2many:image_tags" json:"tags"`
	Comments    []Comment `json:"comments"`
}
