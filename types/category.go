package types

type Category struct {
	ID        int `gorm:"primaryKey"`
	Name      string
	Introduce string
	PathName  string
	Icon      string
	Color     string
}

func (Category) TableName() string {
	return "category"
}
