package types

// Tags form a two-level taxonomy: every TagTwo hangs off a TagOne parent.
// Deleting a parent removes its children as well.

type TagOne struct {
	ID    int `gorm:"primaryKey"`
	Name  string
	Level int `gorm:"default:1"`
	Color string
}

func (TagOne) TableName() string {
	return "tag_one"
}

type TagTwo struct {
	ID       int `gorm:"primaryKey"`
	Name     string
	Level    int `gorm:"default:2"`
	Color    string
	TagOneID *int
	TagOne   *TagOne `gorm:"foreignKey:TagOneID"`
}

func (TagTwo) TableName() string {
	return "tag_two"
}
