// Package store - sector weightage and screener rows (market schema)
package store

import (
	"github.com/arkline/marketdesk/internal/models"
	"gorm.io/gorm"
)

// SectorWeightageStore manages index sector-weightage rows
type SectorWeightageStore struct {
	flat[models.SectorWeightage]
}

// NewSectorWeightageStore creates a store bound to the market pool
func NewSectorWeightageStore(db *gorm.DB) *SectorWeightageStore {
	return &SectorWeightageStore{flat[models.SectorWeightage]{db: db}}
}

// ScreenerStore manages valuation screener rows
type ScreenerStore struct {
	flat[models.ScreenerValuation]
}

// NewScreenerStore creates a store bound to the market pool
func NewScreenerStore(db *gorm.DB) *ScreenerStore {
	return &ScreenerStore{flat[models.ScreenerValuation]{db: db}}
}
