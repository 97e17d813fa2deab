package models

import "time"

type User struct {
	ID        int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  *string    `json:"username,omitempty" gorm:"uniqueIndex;size:50"`
	Name      string     `json:"name" gorm:"not null;size:250"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null;size:250"`
	Password  string     `json:"-" gorm:"column:password_hash;not null;size:150"`
	LevelID   *int64     `json:"level_id,omitempty" gorm:"index"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	LastLogin *time.Time `json:"last_login,omitempty"`

	// Association. Deleting a level with users attached is restricted, not cascaded.
	Level *Level `json:"level,omitempty" gorm:"foreignKey:LevelID;constraint:OnDelete:RESTRICT;"`
}

func (User) TableName() string {
	return "users"
}
