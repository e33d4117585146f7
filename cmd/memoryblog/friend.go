package main

import (
	errs "errors"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/memory-blog/backend/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type friendRequest struct {
	Name        string `json:"siteName"`
	URL         string `json:"siteUrl"`
	Avatar      string `json:"avatar"`
	Description string `json:"description"`
	Status      *int   `json:"status"`
}

func listFriends(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		friends := []types.Friend{}
		if err := db.Order("id").Find(&friends).Error; err != nil {
			return fail[[]types.FriendDTO](c, errors.Wrap(err, "listing friends"))
		}
		return ok(c, friendDTOs(friends))
	}
}

func listPublicFriends(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		friends := []types.Friend{}
		if err := db.Order("id").Find(&friends, "status = ?", types.FriendApproved).Error; err != nil {
			return fail[[]types.FriendDTO](c, errors.Wrap(err, "listing friends"))
		}
		return ok(c, friendDTOs(friends))
	}
}

func friendDTOs(friends []types.Friend) []types.FriendDTO {
	dtos := make([]types.FriendDTO, 0, len(friends))
	for _, f := range friends {
		dtos = append(dtos, types.NewFriendDTO(f))
	}
	return dtos
}

// createFriend serves both the public "apply for a link" form and the admin
// dashboard. Public submissions default to pending.
func createFriend(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req friendRequest
		if err := c.Bind(&req); err != nil {
			return fail[string](c, errors.Wrap(err, "parsing friend"))
		}

		status := types.FriendPending
		if req.Status != nil {
			status = *req.Status
		}

		friend := types.Friend{
			Name:        req.Name,
			Link:        req.URL,
			Avatar:      req.Avatar,
			Description: req.Description,
			Status:      status,
		}
		if err := db.Create(&friend).Error; err != nil {
			return fail[string](c, errors.Wrap(err, "creating friend"))
		}
		return ok(c, "Created")
	}
}

func updateFriend(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return fail[string](c, errors.New("invalid friend id"))
		}

		var req friendRequest
		if err := c.Bind(&req); err != nil {
			return fail[string](c, errors.Wrap(err, "parsing friend"))
		}

		var friend types.Friend
		if err := db.First(&friend, "id = ?", id).Error; err != nil {
			if errs.Is(err, gorm.ErrRecordNotFound) {
				return fail[string](c, errors.New("Not found"))
			}
			return fail[string](c, errors.Wrap(err, "loading friend"))
		}

		friend.Name = req.Name
		friend.Link = req.URL
		friend.Avatar = req.Avatar
		friend.Description = req.Description
		// Saving from the dashboard approves the link unless told otherwise.
		friend.Status = types.FriendApproved
		if req.Status != nil {
			friend.Status = *req.Status
		}

		if err := db.Save(&friend).Error; err != nil {
			return fail[string](c, errors.Wrap(err, "updating friend"))
		}
		return ok(c, "Updated")
	}
}

func deleteFriend(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return fail[string](c, errors.New("invalid friend id"))
		}
		if err := db.Delete(&types.Friend{}, "id = ?", id).Error; err != nil {
			return fail[string](c, errors.Wrap(err, "deleting friend"))
		}
		return ok(c, "Deleted")
	}
}

// deleteFriends accepts its id list the way the dashboard sends it: numbers
// or numeric strings, anything else silently skipped.
func deleteFriends(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var raw []any
		if err := c.Bind(&raw); err != nil {
			return fail[string](c, errors.Wrap(err, "parsing friend ids"))
		}

		ids := make([]int, 0, len(raw))
		for _, v := range raw {
			switch t := v.(type) {
			case float64:
				ids = append(ids, int(t))
			case string:
				if n, err := strconv.Atoi(t); err == nil {
					ids = append(ids, n)
				}
			}
		}
		if len(ids) == 0 {
			return fail[string](c, errors.New("No valid keys provided"))
		}

		if err := db.Delete(&types.Friend{}, "id IN ?", ids).Error; err != nil {
			return fail[string](c, errors.Wrap(err, "deleting friends"))
		}
		return ok(c, "Deleted")
	}
}
