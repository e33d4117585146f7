package main

import (
	errs "errors"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/memory-blog/backend/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type talkRequest struct {
	Title   string `json:"talkTitle"`
	Content string `json:"content"`
}

func listTalks(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		talks := []types.Talk{}
		if err := db.Order("created_at DESC").Find(&talks).Error; err != nil {
			return fail[[]types.TalkDTO](c, errors.Wrap(err, "listing talks"))
		}

		dtos := make([]types.TalkDTO, 0, len(talks))
		for _, t := range talks {
			dtos = append(dtos, types.NewTalkDTO(t))
		}
		return ok(c, dtos)
	}
}

func createTalk(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req talkRequest
		if err := c.Bind(&req); err != nil {
			return fail[string](c, errors.Wrap(err, "parsing talk"))
		}

		talk := types.Talk{Title: req.Title, Content: req.Content}
		if err := db.Create(&talk).Error; err != nil {
			return fail[string](c, errors.Wrap(err, "creating talk"))
		}
		return ok(c, "Created")
	}
}

func updateTalk(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return fail[string](c, errors.New("invalid talk id"))
		}

		var req talkRequest
		if err := c.Bind(&req); err != nil {
			return fail[string](c, errors.Wrap(err, "parsing talk"))
		}

		var talk types.Talk
		if err := db.First(&talk, "id = ?", id).Error; err != nil {
			if errs.Is(err, gorm.ErrRecordNotFound) {
				return fail[string](c, errors.New("Talk not found"))
			}
			return fail[string](c, errors.Wrap(err, "loading talk"))
		}

		talk.Title = req.Title
		talk.Content = req.Content
		if err := db.Save(&talk).Error; err != nil {
			return fail[string](c, errors.Wrap(err, "updating talk"))
		}
		return ok(c, "Updated")
	}
}

func deleteTalk(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return fail[string](c, errors.New("invalid talk id"))
		}
		if err := db.Delete(&types.Talk{}, "id = ?", id).Error; err != nil {
			return fail[string](c, errors.Wrap(err, "deleting talk"))
		}
		return ok(c, "Deleted")
	}
}
