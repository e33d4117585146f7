// Package catalog covers the taxonomy around notes: per-category note counts
// and the two-level tag hierarchy, including the delete cascades both need.
package catalog

import (
	"github.com/memory-blog/backend/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CategoriesWithCounts lists every category with the number of notes filed
// under it, zero included.
func CategoriesWithCounts(db *gorm.DB) ([]types.CategoryDTO, error) {
	cats := []types.Category{}
	if err := db.Order("id").Find(&cats).Error; err != nil {
		return nil, errors.Wrap(err, "listing categories")
	}

	type catCount struct {
		CategoryID int
		N          int64
	}
	counts := []catCount{}
	err := db.Model(&types.Note{}).
		Select("category_id, COUNT(*) AS n").
		Where("category_id IS NOT NULL").
		Group("category_id").
		Scan(&counts).Error
	if err != nil {
		return nil, errors.Wrap(err, "counting notes per category")
	}

	byCat := make(map[int]int64, len(counts))
	for _, c := range counts {
		byCat[c.CategoryID] = c.N
	}

	dtos := make([]types.CategoryDTO, 0, len(cats))
	for _, c := range cats {
		dtos = append(dtos, types.NewCategoryDTO(c, byCat[c.ID]))
	}
	return dtos, nil
}

// TagOnes lists the top-level tags.
func TagOnes(db *gorm.DB) ([]types.TagOneDTO, error) {
	tags := []types.TagOne{}
	if err := db.Order("id").Find(&tags).Error; err != nil {
		return nil, errors.Wrap(err, "listing first-level tags")
	}
	dtos := make([]types.TagOneDTO, 0, len(tags))
	for _, t := range tags {
		dtos = append(dtos, types.NewTagOneDTO(t))
	}
	return dtos, nil
}

// TagTwosWithParent lists second-level tags with the parent tag's name
// attached. A row whose parent is missing is kept with an empty fatherTag.
func TagTwosWithParent(db *gorm.DB) ([]types.TagTwoDTO, error) {
	tags := []types.TagTwo{}
	if err := db.Preload("TagOne").Order("id").Find(&tags).Error; err != nil {
		return nil, errors.Wrap(err, "listing second-level tags")
	}

	dtos := make([]types.TagTwoDTO, 0, len(tags))
	for _, t := range tags {
		father := ""
		if t.TagOne != nil {
			father = t.TagOne.Name
		}
		dtos = append(dtos, types.TagTwoDTO{
			ID:        t.ID,
			Title:     t.Name,
			Color:     t.Color,
			Level:     2,
			FatherTag: father,
		})
	}
	return dtos, nil
}

// DeleteCategories removes the categories and detaches their notes. Notes
// survive a category delete with a null category_id, there is no cascade.
func DeleteCategories(db *gorm.DB, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	err := db.Model(&types.Note{}).
		Where("category_id IN ?", ids).
		Update("category_id", nil).Error
	if err != nil {
		return errors.Wrap(err, "detaching notes from categories")
	}
	err = db.Delete(&types.Category{}, "id IN ?", ids).Error
	return errors.Wrap(err, "deleting categories")
}

// DeleteTags removes the ids from both tag tables; the endpoint does not say
// which level an id belongs to. Children of a removed parent go with it.
func DeleteTags(db *gorm.DB, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	err := db.Delete(&types.TagTwo{}, "(id IN ? OR tag_one_id IN ?)", ids, ids).Error
	if err != nil {
		return errors.Wrap(err, "deleting second-level tags")
	}
	err = db.Delete(&types.TagOne{}, "id IN ?", ids).Error
	return errors.Wrap(err, "deleting first-level tags")
}
