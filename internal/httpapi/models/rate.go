package models

import "time"

// Rate is one user's rating of one joke. The composite unique index is what
// makes rating an upsert: a second rating by the same user for the same joke
// replaces the first instead of inserting a duplicate.
type Rate struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	JokeID    int64     `json:"joke_id" gorm:"not null;uniqueIndex:idx_rates_joke_user;index"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_rates_joke_user;index"`
	Value     int       `json:"value" gorm:"not null;check:value >= 1 AND value <= 5"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Joke Joke `json:"joke,omitempty" gorm:"foreignKey:JokeID;constraint:OnDelete:RESTRICT;"`
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT;"`
}

func (Rate) TableName() string {
	return "rates"
}
