package main

import (
	errs "errors"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/memory-blog/backend/lib/catalog"
	"github.com/memory-blog/backend/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type categoryRequest struct {
	Name      string `json:"categoryTitle"`
	PathName  string `json:"pathName"`
	Introduce string `json:"introduce"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
}

func listCategories(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		dtos, err := catalog.CategoriesWithCounts(db)
		if err != nil {
			return fail[[]types.CategoryDTO](c, err)
		}
		return ok(c, dtos)
	}
}

func createCategory(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req categoryRequest
		if err := c.Bind(&req); err != nil {
			return fail[string](c, errors.Wrap(err, "parsing category"))
		}

		cat := types.Category{
			Name:      req.Name,
			PathName:  req.PathName,
			Introduce: req.Introduce,
			Icon:      req.Icon,
			Color:     req.Color,
		}
		if err := db.Create(&cat).Error; err != nil {
			return fail[string](c, errors.Wrap(err, "creating category"))
		}
		return ok(c, "Category created")
	}
}

func updateCategory(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return fail[string](c, errors.New("invalid category id"))
		}

		var req categoryRequest
		if err := c.Bind(&req); err != nil {
			return fail[string](c, errors.Wrap(err, "parsing category"))
		}

		var cat types.Category
		if err := db.First(&cat, "id = ?", id).Error; err != nil {
			if errs.Is(err, gorm.ErrRecordNotFound) {
				return fail[string](c, errors.New("Not found"))
			}
			return fail[string](c, errors.Wrap(err, "loading category"))
		}

		cat.Name = req.Name
		cat.PathName = req.PathName
		cat.Introduce = req.Introduce
		cat.Icon = req.Icon
		cat.Color = req.Color

		if err := db.Save(&cat).Error; err != nil {
			return fail[string](c, errors.Wrap(err, "updating category"))
		}
		return ok(c, "Updated")
	}
}

func deleteCategories(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var ids []int
		if err := c.Bind(&ids); err != nil {
			return fail[string](c, errors.Wrap(err, "parsing category ids"))
		}
		if err := catalog.DeleteCategories(db, ids); err != nil {
			return fail[string](c, err)
		}
		return ok(c, "Deleted")
	}
}
