// Package store contains the data-access layer: one store per entity
// family, each bound to the connection pool of the schema that owns it.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a row does not exist or an update/delete
// matched zero rows. Callers map it to a 404; it is never a hard failure.
var ErrNotFound = errors.New("record not found")

// Page is the result of a list query
type Page[T any] struct {
	Data        []T   `json:"data"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
}

// clampPage applies the 1/10 defaults and clamps both values to >= 1.
func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

// flat implements the repository contract shared by every single-table
// entity: get by id, paginated list, create (single or batch), full-row
// update, delete.
type flat[T any] struct {
	db *gorm.DB
}

func (s flat[T]) Get(id uint) (*T, error) {
	var row T
	if err := s.db.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (s flat[T]) List(page, limit int) (*Page[T], error) {
	page, limit = clampPage(page, limit)

	var model T
	var total int64
	if err := s.db.Model(&model).Count(&total).Error; err != nil {
		return nil, err
	}

	rows := []T{}
	offset := (page - 1) * limit
	if err := s.db.Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	return &Page[T]{
		Data:        rows,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

func (s flat[T]) Create(row *T) error {
	return s.db.Create(row).Error
}

// CreateBatch performs a single multi-row INSERT and reports the number of
// inserted rows.
func (s flat[T]) CreateBatch(rows []T) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	result := s.db.Create(&rows)
	return result.RowsAffected, result.Error
}

// Update replaces the row's fields wholesale. Existence is checked first
// so that re-submitting identical values still reads as success, not as a
// missing row.
func (s flat[T]) Update(id uint, row *T) error {
	var existing T
	if err := s.db.Select("id").First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Model(&existing).Where("id = ?", id).
		Select("*").Omit("id", "created_at").Updates(row).Error
}

func (s flat[T]) Delete(id uint) error {
	var model T
	result := s.db.Delete(&model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
