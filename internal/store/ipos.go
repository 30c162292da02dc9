// Package store - composite writer for the IPO family (market schema)
package store

import (
	"errors"

	"github.com/arkline/marketdesk/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IPOStore manages IPOs and their child tables
type IPOStore struct {
	db *gorm.DB
}

// NewIPOStore creates a store bound to the market pool
func NewIPOStore(db *gorm.DB) *IPOStore {
	return &IPOStore{db: db}
}

// Get returns an IPO with every child section loaded
func (s *IPOStore) Get(id uint) (*models.IPO, error) {
	var ipo models.IPO
	err := s.db.
		Preload("Details").
		Preload("Financials").
		Preload("KeyRatios").
		Preload("SubscriptionStatus").
		First(&ipo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ipo, nil
}

// List returns a paginated list of parent rows
func (s *IPOStore) List(page, limit int) (*Page[models.IPO], error) {
	return flat[models.IPO]{db: s.db}.List(page, limit)
}

// Create inserts the parent, captures the id, then each present section.
func (s *IPOStore) Create(ipo *models.IPO) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(ipo).Error; err != nil {
			return err
		}
		return insertIPOChildren(tx, ipo)
	})
}

// Update rewrites the parent scalars and replaces every child section by
// delete-and-reinsert.
func (s *IPOStore) Update(id uint, ipo *models.IPO) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.IPO
		if err := tx.Select("id").First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		ipo.ID = id
		err := tx.Model(&models.IPO{}).Where("id = ?", id).
			Omit(clause.Associations).
			Select("company_name", "category", "open_date", "close_date", "listing_date").
			Updates(ipo).Error
		if err != nil {
			return err
		}

		if err := deleteIPOChildren(tx, id); err != nil {
			return err
		}
		return insertIPOChildren(tx, ipo)
	})
}

// Delete removes the children then the parent.
func (s *IPOStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.IPO
		if err := tx.Select("id").First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := deleteIPOChildren(tx, id); err != nil {
			return err
		}
		return tx.Delete(&models.IPO{}, "id = ?", id).Error
	})
}

func insertIPOChildren(tx *gorm.DB, ipo *models.IPO) error {
	id := ipo.ID

	if ipo.Details != nil && !ipo.Details.Empty() {
		ipo.Details.ID = 0
		ipo.Details.IPOID = id
		if err := tx.Create(ipo.Details).Error; err != nil {
			return err
		}
	}
	if len(ipo.Financials) > 0 {
		for i := range ipo.Financials {
			ipo.Financials[i].ID = 0
			ipo.Financials[i].IPOID = id
		}
		if err := tx.Create(&ipo.Financials).Error; err != nil {
			return err
		}
	}
	if len(ipo.KeyRatios) > 0 {
		for i := range ipo.KeyRatios {
			ipo.KeyRatios[i].ID = 0
			ipo.KeyRatios[i].IPOID = id
		}
		if err := tx.Create(&ipo.KeyRatios).Error; err != nil {
			return err
		}
	}
	if len(ipo.SubscriptionStatus) > 0 {
		for i := range ipo.SubscriptionStatus {
			ipo.SubscriptionStatus[i].ID = 0
			ipo.SubscriptionStatus[i].IPOID = id
		}
		if err := tx.Create(&ipo.SubscriptionStatus).Error; err != nil {
			return err
		}
	}
	return nil
}

func deleteIPOChildren(tx *gorm.DB, id uint) error {
	for _, m := range []interface{}{
		&models.IPOSubscriptionStatus{},
		&models.IPOKeyRatio{},
		&models.IPOFinancial{},
		&models.IPODetail{},
	} {
		if err := tx.Delete(m, "ipo_id = ?", id).Error; err != nil {
			return err
		}
	}
	return nil
}
