package types

// User holds the blog owner's login. The app runs with a single admin row;
// look it up through settings.AdminUser rather than by a literal id.
type User struct {
	ID       int `gorm:"primaryKey"`
	Username string
	Password string
	Role     string
}

func (User) TableName() string {
	return "user"
}

func (u User) IsSet() bool {
	return u.Username != ""
}
