// Package noteq builds the filtered, paginated note listing used by both the
// public and the admin surface. The public surface always goes through
// PublicOnly, which no caller-supplied filter can relax.
package noteq

import (
	errs "errors"
	"time"

	"github.com/memory-blog/backend/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// DateLayout is the wire format for the created_at range filters.
const DateLayout = "2006-01-02"

// PublicPageSize is the fixed page size of the public note listing.
const PublicPageSize = 6

// Filter is the set of optional predicates over the note table. Zero values
// mean "not filtered". Malformed dates are ignored rather than rejected, the
// frontend has always relied on that.
type Filter struct {
	Keyword      string
	CategoryName string
	Status       string
	IsTop        *int
	StartDate    string
	EndDate      string
	PublicOnly   bool
}

// Page selects a 1-based page. Size <= 0 disables pagination entirely, which
// is what the admin listing uses.
type Page struct {
	Number int
	Size   int
}

// PublicPage is the pagination of the public listing: fixed size, page
// numbers below 1 clamp to the first page.
func PublicPage(number int) Page {
	if number < 1 {
		number = 1
	}
	return Page{Number: number, Size: PublicPageSize}
}

// Find runs the filter against the note table, newest first, each note with
// its category preloaded (nil when the note has none). An unknown category
// name yields an empty result, not an unfiltered one.
func Find(db *gorm.DB, f Filter, p Page) ([]types.Note, error) {
	q := db.Model(&types.Note{})

	if f.CategoryName != "" {
		var cat types.Category
		err := db.First(&cat, "name = ?", f.CategoryName).Error
		if errs.Is(err, gorm.ErrRecordNotFound) {
			return []types.Note{}, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "resolving category %q", f.CategoryName)
		}
		q = q.Where("category_id = ?", cat.ID)
	}

	if f.PublicOnly {
		q = q.Where("is_public = ? AND status <> ?", true, types.StatusDraft)
	}

	if f.Keyword != "" {
		// instr() keeps the match case-sensitive, sqlite LIKE would not.
		q = q.Where("(instr(title, ?) > 0 OR instr(content, ?) > 0 OR instr(tags, ?) > 0)",
			f.Keyword, f.Keyword, f.Keyword)
	}

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	if f.IsTop != nil {
		q = q.Where("is_top = ?", *f.IsTop)
	}

	if t, ok := parseDay(f.StartDate); ok {
		q = q.Where("created_at >= ?", t)
	}
	if t, ok := parseDay(f.EndDate); ok {
		q = q.Where("created_at <= ?", t.Add(24*time.Hour-time.Second))
	}

	q = q.Preload("Category").Order("created_at DESC, id DESC")

	if p.Size > 0 {
		page := p.Number
		if page < 1 {
			page = 1
		}
		q = q.Offset((page - 1) * p.Size).Limit(p.Size)
	}

	notes := []types.Note{}
	if err := q.Find(&notes).Error; err != nil {
		return nil, errors.Wrap(err, "listing notes")
	}
	return notes, nil
}

// FindByID loads one note with its category. Returns gorm.ErrRecordNotFound
// when the id does not exist.
func FindByID(db *gorm.DB, id int) (types.Note, error) {
	var note types.Note
	err := db.Preload("Category").First(&note, "id = ?", id).Error
	return note, err
}

func parseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
