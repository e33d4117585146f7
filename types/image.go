package types

type Image struct {
	ImageKey int    `gorm:"primaryKey" json:"imageKey"`
	ImageURL string `json:"imageUrl"`
}

func (Image) TableName() string {
	return "images"
}
