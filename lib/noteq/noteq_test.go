package noteq

import (
	"fmt"
	"testing"
	"time"

	"github.com/memory-blog/backend/types"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	_ "github.com/ncruces/go-sqlite3/embed"
	sqlite "github.com/ncruces/go-sqlite3/gormlite"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A pool of in-memory connections would each get their own database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&types.Category{}, &types.Note{}))
	return db
}

func seedNote(t *testing.T, db *gorm.DB, n types.Note) types.Note {
	t.Helper()
	require.NoError(t, db.Create(&n).Error)
	return n
}

func at(day int, hour int) time.Time {
	return time.Date(2024, time.March, day, hour, 0, 0, 0, time.Local)
}

func TestFind_PublicOnlyNeverLeaks(t *testing.T) {
	db := openTestDB(t)

	seedNote(t, db, types.Note{Title: "visible", Status: types.StatusPublished, IsPublic: true, CreatedAt: at(1, 10)})
	seedNote(t, db, types.Note{Title: "draft", Status: types.StatusDraft, IsPublic: false, CreatedAt: at(2, 10)})
	seedNote(t, db, types.Note{Title: "private", Status: types.StatusPrivate, IsPublic: false, CreatedAt: at(3, 10)})
	seedNote(t, db, types.Note{Title: "unlisted", Status: types.StatusPublished, IsPublic: false, CreatedAt: at(4, 10)})

	// Even a caller-supplied status filter must not relax the predicate.
	for _, f := range []Filter{
		{PublicOnly: true},
		{PublicOnly: true, Status: types.StatusDraft},
		{PublicOnly: true, Keyword: "draft"},
	} {
		notes, err := Find(db, f, Page{})
		require.NoError(t, err)
		for _, n := range notes {
			require.True(t, n.IsPublic)
			require.NotEqual(t, types.StatusDraft, n.Status)
		}
	}

	notes, err := Find(db, Filter{PublicOnly: true}, Page{})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, "visible", notes[0].Title)
}

func TestFind_KeywordIsCaseSensitiveAcrossColumns(t *testing.T) {
	db := openTestDB(t)

	seedNote(t, db, types.Note{Title: "Go Generics", Status: types.StatusPublished, IsPublic: true, CreatedAt: at(1, 9)})
	seedNote(t, db, types.Note{Title: "misc", Content: "notes on Go servers", Status: types.StatusPublished, IsPublic: true, CreatedAt: at(2, 9)})
	seedNote(t, db, types.Note{Title: "tagged", Tags: "Go,sqlite", Status: types.StatusPublished, IsPublic: true, CreatedAt: at(3, 9)})
	seedNote(t, db, types.Note{Title: "unrelated", Content: "cooking", Status: types.StatusPublished, IsPublic: true, CreatedAt: at(4, 9)})

	notes, err := Find(db, Filter{Keyword: "Go"}, Page{})
	require.NoError(t, err)
	require.Len(t, notes, 3)

	// Lowercase must not match the capitalized occurrences.
	notes, err = Find(db, Filter{Keyword: "go"}, Page{})
	require.NoError(t, err)
	require.Len(t, notes, 0)
}

func TestFind_CategoryName(t *testing.T) {
	db := openTestDB(t)

	cat := types.Category{Name: "rust"}
	require.NoError(t, db.Create(&cat).Error)

	seedNote(t, db, types.Note{Title: "in category", Status: types.StatusPublished, IsPublic: true, CategoryID: &cat.ID, CreatedAt: at(1, 8)})
	seedNote(t, db, types.Note{Title: "uncategorized", Status: types.StatusPublished, IsPublic: true, CreatedAt: at(2, 8)})

	notes, err := Find(db, Filter{CategoryName: "rust"}, Page{})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, "in category", notes[0].Title)
	require.NotNil(t, notes[0].Category)
	require.Equal(t, "rust", notes[0].Category.Name)

	// Unknown name short-circuits to empty, it must not return everything.
	notes, err = Find(db, Filter{CategoryName: "no-such-category"}, Page{})
	require.NoError(t, err)
	require.Empty(t, notes)
}

func TestFind_DateRange(t *testing.T) {
	db := openTestDB(t)

	early := seedNote(t, db, types.Note{Title: "early", Status: types.StatusPublished, IsPublic: true, CreatedAt: at(3, 0)})
	late := seedNote(t, db, types.Note{Title: "late", Status: types.StatusPublished, IsPublic: true, CreatedAt: at(5, 23)})

	// Inclusive day boundaries.
	notes, err := Find(db, Filter{StartDate: "2024-03-03", EndDate: "2024-03-05"}, Page{})
	require.NoError(t, err)
	require.Len(t, notes, 2)

	notes, err = Find(db, Filter{StartDate: "2024-03-04"}, Page{})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, late.Title, notes[0].Title)

	notes, err = Find(db, Filter{EndDate: "2024-03-04"}, Page{})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, early.Title, notes[0].Title)

	// Malformed dates are ignored, not rejected.
	notes, err = Find(db, Filter{StartDate: "03/04/2024", EndDate: "yesterday"}, Page{})
	require.NoError(t, err)
	require.Len(t, notes, 2)
}

func TestFind_TopAndStatusFilters(t *testing.T) {
	db := openTestDB(t)

	seedNote(t, db, types.Note{Title: "pinned", IsTop: 1, Status: types.StatusPublished, IsPublic: true, CreatedAt: at(1, 12)})
	seedNote(t, db, types.Note{Title: "plain", IsTop: 0, Status: types.StatusPublished, IsPublic: true, CreatedAt: at(2, 12)})
	seedNote(t, db, types.Note{Title: "wip", IsTop: 0, Status: types.StatusDraft, IsPublic: false, CreatedAt: at(3, 12)})

	top := 1
	notes, err := Find(db, Filter{IsTop: &top}, Page{})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, "pinned", notes[0].Title)

	notes, err = Find(db, Filter{Status: types.StatusDraft}, Page{})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, "wip", notes[0].Title)
}

func TestFind_PaginationNewestFirstAndDisjoint(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 13; i++ {
		seedNote(t, db, types.Note{
			Title:     fmt.Sprintf("note-%02d", i),
			Status:    types.StatusPublished,
			IsPublic:  true,
			CreatedAt: at(1, 0).Add(time.Duration(i) * time.Hour),
		})
	}

	page1, err := Find(db, Filter{PublicOnly: true}, PublicPage(1))
	require.NoError(t, err)
	require.Len(t, page1, PublicPageSize)
	require.Equal(t, "note-12", page1[0].Title)
	require.Equal(t, "note-07", page1[5].Title)

	page2, err := Find(db, Filter{PublicOnly: true}, PublicPage(2))
	require.NoError(t, err)
	require.Len(t, page2, PublicPageSize)

	page3, err := Find(db, Filter{PublicOnly: true}, PublicPage(3))
	require.NoError(t, err)
	require.Len(t, page3, 1)

	seen := map[int]bool{}
	for _, page := range [][]types.Note{page1, page2, page3} {
		for _, n := range page {
			require.False(t, seen[n.ID], "note %d returned twice", n.ID)
			seen[n.ID] = true
		}
	}
	require.Len(t, seen, 13)

	// Page numbers below 1 clamp to the first page.
	clamped, err := Find(db, Filter{PublicOnly: true}, PublicPage(0))
	require.NoError(t, err)
	require.Equal(t, page1[0].ID, clamped[0].ID)
}

func TestFindByID(t *testing.T) {
	db := openTestDB(t)

	n := seedNote(t, db, types.Note{Title: "solo", Status: types.StatusPublished, IsPublic: true, CreatedAt: at(1, 1)})

	got, err := FindByID(db, n.ID)
	require.NoError(t, err)
	require.Equal(t, "solo", got.Title)
	require.Nil(t, got.Category)

	_, err = FindByID(db, 9999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
