package database

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertSpec описывает запись по натуральному ключу.
type UpsertSpec[T any] struct {
	KeyColumn     string
	Key           func(*T) string
	UpdateColumns []string
}

type UpsertCounts struct {
	Inserted int
	Updated  int
}

// Upsert пишет строки через INSERT ... ON CONFLICT(key) DO UPDATE.
// Вставка/обновление считается по ключам, существовавшим в таблице на
// момент начала и уже записанным ранее в этом же вызове.
func Upsert[T any](tx *gorm.DB, spec UpsertSpec[T], rows []*T) (UpsertCounts, error) {
	var counts UpsertCounts
	if len(rows) == 0 {
		return counts, nil
	}

	keys := make([]string, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, spec.Key(row))
	}

	existing, err := existingKeys[T](tx, spec.KeyColumn, keys)
	if err != nil {
		return counts, err
	}

	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: spec.KeyColumn}},
		DoUpdates: clause.AssignmentColumns(spec.UpdateColumns),
	}
	for _, row := range rows {
		key := spec.Key(row)
		if err := tx.Clauses(onConflict).Create(row).Error; err != nil {
			return counts, errors.Wrapf(err, "upsert %s=%s", spec.KeyColumn, key)
		}
		if _, ok := existing[key]; ok {
			counts.Updated++
			continue
		}
		existing[key] = struct{}{}
		counts.Inserted++
	}
	return counts, nil
}

// ключи разбиваются на пачки из-за лимита параметров в sqlite
const keyBatch = 500

func existingKeys[T any](tx *gorm.DB, column string, keys []string) (map[string]struct{}, error) {
	out := make(map[string]struct{}, len(keys))
	for start := 0; start < len(keys); start += keyBatch {
		end := min(start+keyBatch, len(keys))
		var found []string
		err := tx.Model(new(T)).
			Where(clause.IN{Column: clause.Column{Name: column}, Values: toAny(keys[start:end])}).
			Pluck(column, &found).Error
		if err != nil {
			return nil, errors.Wrapf(err, "load existing %s", column)
		}
		for _, k := range found {
			out[k] = struct{}{}
		}
	}
	return out, nil
}

func toAny(keys []string) []interface{} {
	out := make([]interface{}, len(keys))
	for i, k := range keys {
		out[i] = k
	}
	return out
}
