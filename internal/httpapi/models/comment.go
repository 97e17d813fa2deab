package models

import "time"

type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	JokeID    int64     `json:"joke_id" gorm:"not null;index"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Joke Joke `json:"joke,omitempty" gorm:"foreignKey:JokeID;constraint:OnDelete:RESTRICT;"`
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT;"`
}

func (Comment) TableName() string {
	return "comments"
}
