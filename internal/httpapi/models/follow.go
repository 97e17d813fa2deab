package models

import "time"

// Follow is a directed edge between two users. The composite unique index
// keeps the edge set free of duplicates; self-follows are rejected in the
// service layer before a row is ever written.
type Follow struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FollowerID int64     `json:"follower_id" gorm:"not null;uniqueIndex:idx_follows_edge;index"`
	FolloweeID int64     `json:"followee_id" gorm:"not null;uniqueIndex:idx_follows_edge;index"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	Follower User `json:"follower,omitempty" gorm:"foreignKey:FollowerID;constraint:OnDelete:RESTRICT;"`
	Followee User `json:"followee,omitempty" gorm:"foreignKey:FolloweeID;constraint:OnDelete:RESTRICT;"`
}

func (Follow) TableName() string {
	return "follows"
}
