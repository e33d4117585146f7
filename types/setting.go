package types

// Setting is one row of the schema-less site configuration table. Typed
// projections over these rows live in lib/settings.
type Setting struct {
	ID      int    `gorm:"primaryKey"`
	KeyName string `gorm:"uniqueIndex"`
	Value   string `gorm:"type:text"`
}

func (Setting) TableName() string {
	return "web_info"
}
