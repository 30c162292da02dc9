// Package store - composite writer for the mutual fund family (fund schema)
package store

import (
	"errors"

	"github.com/arkline/marketdesk/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FundStore manages mutual funds and their child tables
type FundStore struct {
	db *gorm.DB
}

// NewFundStore creates a store bound to the fund pool
func NewFundStore(db *gorm.DB) *FundStore {
	return &FundStore{db: db}
}

// Get returns a fund with every child section loaded
func (s *FundStore) Get(id uint) (*models.MutualFund, error) {
	var fund models.MutualFund
	err := s.db.
		Preload("Allocations").
		Preload("Holdings").
		Preload("Returns").
		First(&fund, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &fund, nil
}

// List returns a paginated list of parent rows
func (s *FundStore) List(page, limit int) (*Page[models.MutualFund], error) {
	return flat[models.MutualFund]{db: s.db}.List(page, limit)
}

// Create inserts the parent, captures the id, then each present section.
func (s *FundStore) Create(fund *models.MutualFund) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(fund).Error; err != nil {
			return err
		}
		return insertFundChildren(tx, fund)
	})
}

// Update rewrites the parent scalars and replaces every child section by
// delete-and-reinsert.
func (s *FundStore) Update(id uint, fund *models.MutualFund) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.MutualFund
		if err := tx.Select("id").First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		fund.ID = id
		err := tx.Model(&models.MutualFund{}).Where("id = ?", id).
			Omit(clause.Associations).
			Select("name", "fund_house", "category", "nav", "aum", "expense_ratio", "launch_date").
			Updates(fund).Error
		if err != nil {
			return err
		}

		if err := deleteFundChildren(tx, id); err != nil {
			return err
		}
		return insertFundChildren(tx, fund)
	})
}

// Delete removes the children then the parent.
func (s *FundStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.MutualFund
		if err := tx.Select("id").First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := deleteFundChildren(tx, id); err != nil {
			return err
		}
		return tx.Delete(&models.MutualFund{}, "id = ?", id).Error
	})
}

func insertFundChildren(tx *gorm.DB, fund *models.MutualFund) error {
	id := fund.ID

	if len(fund.Allocations) > 0 {
		for i := range fund.Allocations {
			fund.Allocations[i].ID = 0
			fund.Allocations[i].FundID = id
		}
		if err := tx.Create(&fund.Allocations).Error; err != nil {
			return err
		}
	}
	if len(fund.Holdings) > 0 {
		for i := range fund.Holdings {
			fund.Holdings[i].ID = 0
			fund.Holdings[i].FundID = id
		}
		if err := tx.Create(&fund.Holdings).Error; err != nil {
			return err
		}
	}
	if fund.Returns != nil && !fund.Returns.Empty() {
		fund.Returns.ID = 0
		fund.Returns.FundID = id
		if err := tx.Create(fund.Returns).Error; err != nil {
			return err
		}
	}
	return nil
}

func deleteFundChildren(tx *gorm.DB, id uint) error {
	for _, m := range []interface{}{
		&models.FundReturn{},
		&models.FundHolding{},
		&models.FundAllocation{},
	} {
		if err := tx.Delete(m, "fund_id = ?", id).Error; err != nil {
			return err
		}
	}
	return nil
}
