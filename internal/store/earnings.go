// Package store - composite writer for the quarterly earnings family
// (earnings schema). Earnings updates edit the child rows in place with
// per-table UPDATEs instead of delete-and-reinsert: segment rows carry
// their own ids and callers may resubmit a partial set.
package store

import (
	"errors"

	"github.com/arkline/marketdesk/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EarningsStore manages quarterly earnings and their child tables
type EarningsStore struct {
	db *gorm.DB
}

// NewEarningsStore creates a store bound to the earnings pool
func NewEarningsStore(db *gorm.DB) *EarningsStore {
	return &EarningsStore{db: db}
}

// Get returns an earnings filing with every child section loaded
func (s *EarningsStore) Get(id uint) (*models.QuarterlyEarning, error) {
	var earning models.QuarterlyEarning
	err := s.db.
		Preload("Income").
		Preload("Segments").
		Preload("Ratios").
		First(&earning, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &earning, nil
}

// List returns a paginated list of parent rows
func (s *EarningsStore) List(page, limit int) (*Page[models.QuarterlyEarning], error) {
	return flat[models.QuarterlyEarning]{db: s.db}.List(page, limit)
}

// Create inserts the parent, captures the id, then each present section.
func (s *EarningsStore) Create(earning *models.QuarterlyEarning) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(earning).Error; err != nil {
			return err
		}
		id := earning.ID

		if earning.Income != nil && !earning.Income.Empty() {
			earning.Income.ID = 0
			earning.Income.EarningID = id
			if err := tx.Create(earning.Income).Error; err != nil {
				return err
			}
		}
		if len(earning.Segments) > 0 {
			for i := range earning.Segments {
				earning.Segments[i].ID = 0
				earning.Segments[i].EarningID = id
			}
			if err := tx.Create(&earning.Segments).Error; err != nil {
				return err
			}
		}
		if earning.Ratios != nil && !earning.Ratios.Empty() {
			earning.Ratios.ID = 0
			earning.Ratios.EarningID = id
			if err := tx.Create(earning.Ratios).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update rewrites the parent scalars and edits each supplied section in
// place. Income and ratio rows are upserted against the earning id; each
// segment row is matched by its own id, with unmatched ids rejected so a
// stale payload cannot touch another filing's rows.
func (s *EarningsStore) Update(id uint, earning *models.QuarterlyEarning) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.QuarterlyEarning
		if err := tx.Select("id").First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		earning.ID = id
		err := tx.Model(&models.QuarterlyEarning{}).Where("id = ?", id).
			Omit(clause.Associations).
			Select("company_name", "symbol", "quarter", "filed_on").
			Updates(earning).Error
		if err != nil {
			return err
		}

		if earning.Income != nil {
			if err := upsertEarningsIncome(tx, id, earning.Income); err != nil {
				return err
			}
		}
		if earning.Ratios != nil {
			if err := upsertEarningsRatio(tx, id, earning.Ratios); err != nil {
				return err
			}
		}
		for i := range earning.Segments {
			if err := updateEarningsSegment(tx, id, &earning.Segments[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the children then the parent.
func (s *EarningsStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.QuarterlyEarning
		if err := tx.Select("id").First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		for _, m := range []interface{}{
			&models.EarningsRatio{},
			&models.EarningsSegment{},
			&models.EarningsIncome{},
		} {
			if err := tx.Delete(m, "earning_id = ?", id).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.QuarterlyEarning{}, "id = ?", id).Error
	})
}

func upsertEarningsIncome(tx *gorm.DB, earningID uint, income *models.EarningsIncome) error {
	var existing models.EarningsIncome
	err := tx.Select("id").First(&existing, "earning_id = ?", earningID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		income.ID = 0
		income.EarningID = earningID
		return tx.Create(income).Error
	}
	if err != nil {
		return err
	}
	income.EarningID = earningID
	return tx.Model(&models.EarningsIncome{}).Where("id = ?", existing.ID).
		Select("revenue", "expenses", "operating_profit", "net_profit", "eps").
		Updates(income).Error
}

func upsertEarningsRatio(tx *gorm.DB, earningID uint, ratio *models.EarningsRatio) error {
	var existing models.EarningsRatio
	err := tx.Select("id").First(&existing, "earning_id = ?", earningID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ratio.ID = 0
		ratio.EarningID = earningID
		return tx.Create(ratio).Error
	}
	if err != nil {
		return err
	}
	ratio.EarningID = earningID
	return tx.Model(&models.EarningsRatio{}).Where("id = ?", existing.ID).
		Select("operating_margin", "net_margin", "yoy_growth", "qoq_growth").
		Updates(ratio).Error
}

func updateEarningsSegment(tx *gorm.DB, earningID uint, seg *models.EarningsSegment) error {
	if seg.ID == 0 {
		seg.EarningID = earningID
		return tx.Create(seg).Error
	}
	result := tx.Model(&models.EarningsSegment{}).
		Where("id = ? AND earning_id = ?", seg.ID, earningID).
		Select("segment", "revenue", "growth").
		Updates(seg)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var check models.EarningsSegment
		err := tx.Select("id").First(&check, "id = ? AND earning_id = ?", seg.ID, earningID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
