package main

import (
	errs "errors"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/memory-blog/backend/lib/noteq"
	"github.com/memory-blog/backend/lib/visibility"
	"github.com/memory-blog/backend/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// noteRequest is the admin create/update payload. Pointer fields distinguish
// "absent" from "set to zero": an update only touches the fields the request
// carries.
type noteRequest struct {
	Title       *string `json:"noteTitle"`
	Content     *string `json:"noteContent"`
	Description *string `json:"description"`
	Cover       *string `json:"cover"`
	Tags        *string `json:"noteTags"`
	CategoryID  *int    `json:"noteCategory"`
	IsTop       *int    `json:"isTop"`
	Status      *string `json:"status"`
	IsPublic    *bool   `json:"is_public"`
}

func listPublicNotes(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, _ := strconv.Atoi(c.QueryParam("page"))
		f := noteq.Filter{
			CategoryName: c.QueryParam("categoryName"),
			PublicOnly:   true,
		}
		notes, err := noteq.Find(db, f, noteq.PublicPage(page))
		if err != nil {
			return fail[[]types.NoteDTO](c, err)
		}
		return ok(c, types.NewNoteDTOs(notes))
	}
}

type searchRequest struct {
	Keyword string `json:"keyword"`
}

func searchNotes(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req searchRequest
		if err := c.Bind(&req); err != nil {
			return fail[[]types.NoteDTO](c, errors.Wrap(err, "parsing search request"))
		}
		notes, err := noteq.Find(db, noteq.Filter{Keyword: req.Keyword, PublicOnly: true}, noteq.Page{})
		if err != nil {
			return fail[[]types.NoteDTO](c, err)
		}
		return ok(c, types.NewNoteDTOs(notes))
	}
}

func topNotes(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		top := 1
		notes, err := noteq.Find(db, noteq.Filter{IsTop: &top, PublicOnly: true}, noteq.Page{})
		if err != nil {
			return fail[[]types.NoteDTO](c, err)
		}
		return ok(c, types.NewNoteDTOs(notes))
	}
}

func noteDetail(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return fail[*types.NoteDTO](c, errors.New("invalid note id"))
		}

		note, err := noteq.FindByID(db, id)
		if errs.Is(err, gorm.ErrRecordNotFound) {
			// The frontend treats a null detail as "gone", not as an error.
			return ok[*types.NoteDTO](c, nil)
		}
		if err != nil {
			return fail[*types.NoteDTO](c, err)
		}
		dto := types.NewNoteDTO(note)
		return ok(c, &dto)
	}
}

// listAdminNotes serves the dashboard table: every filter available, no
// pagination, drafts and private notes included.
func listAdminNotes(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		f := noteq.Filter{
			Keyword:      c.QueryParam("keyword"),
			CategoryName: c.QueryParam("categoryName"),
			Status:       c.QueryParam("status"),
			StartDate:    c.QueryParam("startDate"),
			EndDate:      c.QueryParam("endDate"),
		}
		if s := c.QueryParam("isTop"); s != "" {
			if v, err := strconv.Atoi(s); err == nil {
				f.IsTop = &v
			}
		}

		notes, err := noteq.Find(db, f, noteq.Page{})
		if err != nil {
			return fail[[]types.NoteDTO](c, err)
		}
		return ok(c, types.NewNoteDTOs(notes))
	}
}

func createNote(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req noteRequest
		if err := c.Bind(&req); err != nil {
			return fail[string](c, errors.Wrap(err, "parsing note"))
		}
		if req.Title == nil || req.Content == nil {
			return fail[string](c, errors.New("noteTitle and noteContent are required"))
		}

		status, isPublic := visibility.ResolveNew(visibility.Change{
			Status:   req.Status,
			IsPublic: req.IsPublic,
		})

		note := types.Note{
			Title:      *req.Title,
			Content:    *req.Content,
			Status:     status,
			IsPublic:   isPublic,
			CategoryID: req.CategoryID,
		}
		if req.Description != nil {
			note.Description = *req.Description
		}
		if req.Cover != nil {
			note.Cover = *req.Cover
		}
		if req.Tags != nil {
			note.Tags = *req.Tags
		}
		if req.IsTop != nil {
			note.IsTop = *req.IsTop
		}

		if err := db.Create(&note).Error; err != nil {
			return fail[string](c, errors.Wrap(err, "Saving note to db"))
		}
		return ok(c, "Note created successfully")
	}
}

func updateNote(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return fail[string](c, errors.New("invalid note id"))
		}

		var req noteRequest
		if err := c.Bind(&req); err != nil {
			return fail[string](c, errors.Wrap(err, "parsing note"))
		}

		var note types.Note
		if err := db.First(&note, "id = ?", id).Error; err != nil {
			if errs.Is(err, gorm.ErrRecordNotFound) {
				return fail[string](c, errors.New("Note not found"))
			}
			return fail[string](c, errors.Wrap(err, "loading note"))
		}

		if req.Title != nil {
			note.Title = *req.Title
		}
		if req.Content != nil {
			note.Content = *req.Content
		}
		if req.Description != nil {
			note.Description = *req.Description
		}
		if req.Cover != nil {
			note.Cover = *req.Cover
		}
		if req.Tags != nil {
			note.Tags = *req.Tags
		}
		if req.CategoryID != nil {
			note.CategoryID = req.CategoryID
		}
		if req.IsTop != nil {
			note.IsTop = *req.IsTop
		}

		note.Status, note.IsPublic = visibility.Resolve(note.Status, note.IsPublic, visibility.Change{
			Status:   req.Status,
			IsPublic: req.IsPublic,
		})

		if err := db.Save(&note).Error; err != nil {
			return fail[string](c, errors.Wrap(err, "updating note"))
		}
		return ok(c, "Note updated successfully")
	}
}

func deleteNotes(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var ids []int
		if err := c.Bind(&ids); err != nil {
			return fail[string](c, errors.Wrap(err, "parsing note ids"))
		}
		if err := db.Delete(&types.Note{}, "id IN ?", ids).Error; err != nil {
			return fail[string](c, errors.Wrap(err, "deleting notes"))
		}
		return ok(c, "Deleted")
	}
}
