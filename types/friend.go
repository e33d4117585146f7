package types

// Friend link statuses. Only approved links show up on the public page.
const (
	FriendPending  = 0
	FriendApproved = 1
)

type Friend struct {
	ID          int `gorm:"primaryKey"`
	Name        string
	Link        string
	Avatar      string
	Description string
	Status      int `gorm:"default:0"`
}

func (Friend) TableName() string {
	return "friend"
}
