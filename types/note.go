package types

import (
	"time"
)

// Note status values. Anything in {draft, private} is never publicly visible.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
	StatusPrivate   = "private"
)

type Note struct {
	ID          int    `gorm:"primaryKey"`
	Title       string
	Content     string `gorm:"type:text"`
	Description string `gorm:"type:text"`
	Cover       string
	Tags        string `gorm:"type:text"`
	IsTop       int    `gorm:"default:0"`
	Status      string `gorm:"default:'published'"`
	IsPublic    bool
	CategoryID  *int
	Category    *Category `gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "note"
}
