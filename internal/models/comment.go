package models

import "time"

// Comment is a reply on a post. The parent post reference is required:
// comments cannot outlive their post and are removed with it. Comments are
// never edited after creation.
type Comment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"type:varchar(500);not null" json:"text"`
	PostID   uint   `gorm:"not null;index" json:"post_id"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`

	CreatedAt time.Time `json:"created_at"`
}
