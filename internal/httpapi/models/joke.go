package models

import "time"

type Joke struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Text      string    `json:"text" gorm:"not null;size:10000"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`

	// Associations. A joke cannot outlive its author, so deleting a user
	// with jokes is restricted rather than cascaded.
	User       User       `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT;"`
	Categories []Category `json:"categories,omitempty" gorm:"many2many:joke_categories;"`
}

func (Joke) TableName() string {
	return "jokes"
}
