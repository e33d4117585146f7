// Package settings wraps the schema-less key-value table that backs site
// configuration. Typed views project subsets of its keys into structured
// payloads through enumerated field-to-key tables, so no handler touches a
// raw key string.
package settings

import (
	"github.com/memory-blog/backend/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Get returns the stored value for key, or "" when the key is absent. An
// absent key is not an error anywhere in the settings surface.
func Get(db *gorm.DB, key string) string {
	var row types.Setting
	if err := db.First(&row, "key_name = ?", key).Error; err != nil {
		return ""
	}
	return row.Value
}

// Upsert writes one key. It is a row-level insert-or-update, concurrent
// writers to distinct keys do not contend and the last write wins per key.
func Upsert(db *gorm.DB, key, value string) error {
	row := types.Setting{KeyName: key, Value: value}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key_name"}},
		DoUpdates: clause.Assignments(map[string]any{"value": value}),
	}).Create(&row).Error
	return errors.Wrapf(err, "upserting setting %q", key)
}

// Load reads the whole table into a map, the one query every read view
// projects from.
func Load(db *gorm.DB) (map[string]string, error) {
	rows := []types.Setting{}
	if err := db.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "loading settings")
	}
	vals := make(map[string]string, len(rows))
	for _, r := range rows {
		vals[r.KeyName] = r.Value
	}
	return vals, nil
}
