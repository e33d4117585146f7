package main

import (
	"github.com/labstack/echo/v4"
	"github.com/memory-blog/backend/lib/catalog"
	"github.com/memory-blog/backend/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func listTagOnes(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		dtos, err := catalog.TagOnes(db)
		if err != nil {
			return fail[[]types.TagOneDTO](c, err)
		}
		return ok(c, dtos)
	}
}

func listTagTwos(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		dtos, err := catalog.TagTwosWithParent(db)
		if err != nil {
			return fail[[]types.TagTwoDTO](c, err)
		}
		return ok(c, dtos)
	}
}

type tagOneRequest struct {
	Title string `json:"title"`
	Color string `json:"color"`
}

func createTagOne(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req tagOneRequest
		if err := c.Bind(&req); err != nil {
			return fail[string](c, errors.Wrap(err, "parsing tag"))
		}

		tag := types.TagOne{Name: req.Title, Level: 1, Color: req.Color}
		if err := db.Create(&tag).Error; err != nil {
			return fail[string](c, errors.Wrap(err, "creating tag"))
		}
		return ok(c, "Created")
	}
}

type tagTwoRequest struct {
	Title    string `json:"title"`
	Color    string `json:"color"`
	FatherID int    `json:"fatherTag"`
}

func createTagTwo(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req tagTwoRequest
		if err := c.Bind(&req); err != nil {
			return fail[string](c, errors.Wrap(err, "parsing tag"))
		}

		tag := types.TagTwo{Name: req.Title, Level: 2, Color: req.Color, TagOneID: &req.FatherID}
		if err := db.Create(&tag).Error; err != nil {
			return fail[string](c, errors.Wrap(err, "creating tag"))
		}
		return ok(c, "Created")
	}
}

func deleteTags(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var ids []int
		if err := c.Bind(&ids); err != nil {
			return fail[string](c, errors.Wrap(err, "parsing tag ids"))
		}
		if err := catalog.DeleteTags(db, ids); err != nil {
			return fail[string](c, err)
		}
		return ok(c, "Deleted")
	}
}
