package models

// explicit join model so affinity queries can hit the table directly
type JokeCategory struct {
	JokeID     int64 `json:"joke_id" gorm:"primaryKey"`
	CategoryID int64 `json:"category_id" gorm:"primaryKey"`
}

func (JokeCategory) TableName() string {
	return "joke_categories"
}
