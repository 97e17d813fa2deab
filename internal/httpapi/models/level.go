package models

type Level struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"size:150;not null"`
	Description *string `json:"description,omitempty" gorm:"size:250"`
}

func (Level) TableName() string {
	return "levels"
}
