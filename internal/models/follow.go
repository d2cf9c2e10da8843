package models

import "time"

// Follow is a directed edge from a follower to a followed author. The
// (follower, followed) pair is unique; the composite index backs the
// insert-or-ignore upsert so concurrent follow requests cannot create
// duplicate edges.
type Follow struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	FollowerID uint `gorm:"not null;index;uniqueIndex:idx_follow_pair" json:"follower_id"`
	FollowedID uint `gorm:"not null;index;uniqueIndex:idx_follow_pair" json:"followed_id"`

	Follower User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Followed User `gorm:"foreignKey:FollowedID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Follow) TableName() string {
	return "follows"
}
