package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/memory-blog/backend/lib/settings"
	"github.com/memory-blog/backend/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login checks the admin credentials and hands out the API token the
// dashboard sends back in the Authorization header.
func login(db *gorm.DB, cfg types.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req loginRequest
		if err := c.Bind(&req); err != nil {
			return fail[string](c, errors.Wrap(err, "parsing login request"))
		}

		user, err := settings.AdminUser(db)
		if err != nil || user.Username != req.Username {
			return fail[string](c, errors.New("Invalid credentials"))
		}
		if compareErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); compareErr != nil {
			return fail[string](c, errors.New("Invalid credentials"))
		}

		logrus.Infof("admin %q logged in", user.Username)
		return ok(c, cfg.AdminToken)
	}
}

// adminGate guards the admin surface. The dashboard sends the bare token in
// the Authorization header, no auth scheme prefix, which is why this is not
// echo's KeyAuth middleware.
func adminGate(cfg types.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(echo.HeaderAuthorization)
			if token == "" || token != cfg.AdminToken {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
			}
			return next(c)
		}
	}
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), 10)
	if err != nil {
		return "", errors.Wrap(err, "hashing password")
	}
	return string(hash), nil
}

// seedAdmin creates the singleton admin user on a fresh database when the
// seed credentials are configured. An existing user table is left alone.
func seedAdmin(db *gorm.DB, cfg types.Config) error {
	if cfg.AdminAccount == "" || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&types.User{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "counting users")
	}
	if count > 0 {
		return nil
	}

	hashed, err := hashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	user := types.User{
		Username: cfg.AdminAccount,
		Password: hashed,
		Role:     "admin",
	}
	if err := db.Create(&user).Error; err != nil {
		return errors.Wrap(err, "creating admin user")
	}
	logrus.Infof("seeded admin user %q", user.Username)
	return nil
}
