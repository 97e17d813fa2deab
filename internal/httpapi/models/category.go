package models

type Category struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"unique;not null;size:150"`
	Description *string `json:"description,omitempty" gorm:"size:250"`
}

func (Category) TableName() string {
	return "categories"
}
