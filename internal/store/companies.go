// Package store - composite writer for the stock-details company family.
// A company and its nine financial child tables are always written inside
// one transaction: commit on success, full rollback on any failure.
package store

import (
	"errors"

	"github.com/arkline/marketdesk/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompanyStore manages companies and their financial child tables
type CompanyStore struct {
	db *gorm.DB
}

// NewCompanyStore creates a store bound to the stock pool
func NewCompanyStore(db *gorm.DB) *CompanyStore {
	return &CompanyStore{db: db}
}

// Get returns a company with every child section loaded
func (s *CompanyStore) Get(id uint) (*models.Company, error) {
	var company models.Company
	err := s.db.
		Preload("CashFlow").
		Preload("BalanceSheet").
		Preload("AnnualProfitLoss").
		Preload("FinancialMetrics").
		Preload("FinancialRatios").
		Preload("PeerAnalysis").
		Preload("PeerValuations").
		Preload("QuarterlyFinancials").
		Preload("ValuationInputs").
		First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

// List returns a paginated list of parent rows without child sections
func (s *CompanyStore) List(page, limit int) (*Page[models.Company], error) {
	return flat[models.Company]{db: s.db}.List(page, limit)
}

// Create inserts the parent first, captures the generated id, then inserts
// every present child section with that id as foreign key. All-empty
// sections are skipped. Any failure rolls the whole write back.
func (s *CompanyStore) Create(c *models.Company) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(c).Error; err != nil {
			return err
		}
		return s.insertChildren(tx, c)
	})
}

// Update rewrites the parent scalars and replaces every child section by
// delete-and-reinsert, all in one transaction.
func (s *CompanyStore) Update(id uint, c *models.Company) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Company
		if err := tx.Select("id").First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		c.ID = id
		err := tx.Model(&models.Company{}).Where("id = ?", id).
			Omit(clause.Associations).
			Select("name", "symbol", "sector", "industry", "listed_on").
			Updates(c).Error
		if err != nil {
			return err
		}

		if err := deleteChildren(tx, id); err != nil {
			return err
		}
		return s.insertChildren(tx, c)
	})
}

// Delete removes every child row, then the parent, in one transaction.
func (s *CompanyStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Company
		if err := tx.Select("id").First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := deleteChildren(tx, id); err != nil {
			return err
		}
		return tx.Delete(&models.Company{}, "id = ?", id).Error
	})
}

func (s *CompanyStore) insertChildren(tx *gorm.DB, c *models.Company) error {
	id := c.ID

	if c.CashFlow != nil && !c.CashFlow.Empty() {
		c.CashFlow.ID = 0
		c.CashFlow.CompanyID = id
		if err := tx.Create(c.CashFlow).Error; err != nil {
			return err
		}
	}
	if c.BalanceSheet != nil && !c.BalanceSheet.Empty() {
		c.BalanceSheet.ID = 0
		c.BalanceSheet.CompanyID = id
		if err := tx.Create(c.BalanceSheet).Error; err != nil {
			return err
		}
	}
	if c.AnnualProfitLoss != nil && !c.AnnualProfitLoss.Empty() {
		c.AnnualProfitLoss.ID = 0
		c.AnnualProfitLoss.CompanyID = id
		if err := tx.Create(c.AnnualProfitLoss).Error; err != nil {
			return err
		}
	}
	if c.FinancialMetrics != nil && !c.FinancialMetrics.Empty() {
		c.FinancialMetrics.ID = 0
		c.FinancialMetrics.CompanyID = id
		if err := tx.Create(c.FinancialMetrics).Error; err != nil {
			return err
		}
	}
	if c.FinancialRatios != nil && !c.FinancialRatios.Empty() {
		c.FinancialRatios.ID = 0
		c.FinancialRatios.CompanyID = id
		if err := tx.Create(c.FinancialRatios).Error; err != nil {
			return err
		}
	}
	if c.PeerAnalysis != nil && !c.PeerAnalysis.Empty() {
		c.PeerAnalysis.ID = 0
		c.PeerAnalysis.CompanyID = id
		if err := tx.Create(c.PeerAnalysis).Error; err != nil {
			return err
		}
	}
	if len(c.PeerValuations) > 0 {
		for i := range c.PeerValuations {
			c.PeerValuations[i].ID = 0
			c.PeerValuations[i].CompanyID = id
		}
		if err := tx.Create(&c.PeerValuations).Error; err != nil {
			return err
		}
	}
	if len(c.QuarterlyFinancials) > 0 {
		for i := range c.QuarterlyFinancials {
			c.QuarterlyFinancials[i].ID = 0
			c.QuarterlyFinancials[i].CompanyID = id
		}
		if err := tx.Create(&c.QuarterlyFinancials).Error; err != nil {
			return err
		}
	}
	if c.ValuationInputs != nil && !c.ValuationInputs.Empty() {
		c.ValuationInputs.ID = 0
		c.ValuationInputs.CompanyID = id
		if err := tx.Create(c.ValuationInputs).Error; err != nil {
			return err
		}
	}
	return nil
}

// deleteChildren clears every child table for one company id. Order does
// not matter between the child tables; they only reference the parent.
func deleteChildren(tx *gorm.DB, id uint) error {
	for _, m := range []interface{}{
		&models.QuarterlyFinancial{},
		&models.PeerValuation{},
		&models.PeerAnalysis{},
		&models.ValuationInput{},
		&models.FinancialRatios{},
		&models.FinancialMetrics{},
		&models.AnnualProfitLoss{},
		&models.BalanceSheet{},
		&models.CashFlow{},
	} {
		if err := tx.Delete(m, "company_id = ?", id).Error; err != nil {
			return err
		}
	}
	return nil
}
