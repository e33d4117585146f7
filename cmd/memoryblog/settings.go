package main

import (
	"github.com/labstack/echo/v4"
	"github.com/memory-blog/backend/lib/settings"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func getUserInfo(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		info, err := settings.LoadUserInfo(db)
		if err != nil {
			return fail[settings.UserInfo](c, err)
		}
		return ok(c, info)
	}
}

func getSocialInfo(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		info, err := settings.LoadSocialInfo(db)
		if err != nil {
			return fail[settings.SocialInfo](c, err)
		}
		return ok(c, info)
	}
}

func getWebSettings(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ws, err := settings.LoadWebSettings(db)
		if err != nil {
			return fail[settings.WebSettings](c, err)
		}
		return ok(c, ws)
	}
}

func updateWebSettings(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var ws settings.WebSettings
		if err := c.Bind(&ws); err != nil {
			return fail[string](c, errors.Wrap(err, "parsing settings"))
		}
		if err := settings.ApplyWebSettings(db, ws, hashPassword); err != nil {
			return fail[string](c, err)
		}
		return ok(c, "Settings updated")
	}
}

func updateSocialInfo(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var info settings.SocialInfo
		if err := c.Bind(&info); err != nil {
			return fail[string](c, errors.Wrap(err, "parsing social info"))
		}
		if err := settings.ApplySocialInfo(db, info); err != nil {
			return fail[string](c, err)
		}
		return ok(c, "Social info updated")
	}
}
