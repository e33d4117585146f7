package types

import "time"

type Talk struct {
	ID        int `gorm:"primaryKey"`
	Title     string
	Content   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Talk) TableName() string {
	return "talk"
}
