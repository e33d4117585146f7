package settings

import (
	"github.com/memory-blog/backend/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// HashFunc is the one-way hash applied to the admin password before storage.
// The binary wires in bcrypt; tests inject something cheaper.
type HashFunc func(plain string) (string, error)

// AdminUser returns the blog's singleton admin row. The app has exactly one
// user; this accessor is the only sanctioned way to reach it.
func AdminUser(db *gorm.DB) (types.User, error) {
	var user types.User
	err := db.Order("id").First(&user).Error
	if err != nil {
		return types.User{}, err
	}
	return user, nil
}

// UpdateAdminCredentials overwrites the admin login. The account is stored
// as given so it can be matched at login; the password only ever lands
// hashed.
func UpdateAdminCredentials(db *gorm.DB, user types.User, account, password string, hash HashFunc) error {
	hashed, err := hash(password)
	if err != nil {
		return errors.Wrap(err, "hashing admin password")
	}

	err = db.Model(&user).Updates(map[string]any{
		"username": account,
		"password": hashed,
	}).Error
	return errors.Wrap(err, "updating admin credentials")
}
