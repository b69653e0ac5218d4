package models

import "time"

type Comment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	CreatedDate time.Time `json:"created_date"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	User        User      `json:"user"`
	ImageID     uint      `gorm:"index;not null" json:"image_id"`
}
