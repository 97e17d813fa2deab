package models

import "time"

type Report struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	JokeID    int64     `json:"joke_id" gorm:"not null;index"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	Reason    string    `json:"reason" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Joke Joke `json:"joke,omitempty" gorm:"foreignKey:JokeID;constraint:OnDelete:RESTRICT;"`
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT;"`
}

func (Report) TableName() string {
	return "reports"
}
