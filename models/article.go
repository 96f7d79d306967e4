package models

import "time"

// Article is a blog post.
type Article struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	Title   string    `gorm:"size:200;not null" json:"title"`
	Body    string    `gorm:"type:text;not null" json:"body"`
	PubDate time.Time `gorm:"autoCreateTime;index" json:"pub_date"`
}
