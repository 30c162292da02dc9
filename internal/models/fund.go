// Package models - mutual fund family (ETF/fund schema)
package models

import "time"

// MutualFund is the parent row of the fund family
type MutualFund struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null;size:255;index"`
	FundHouse    string    `json:"fund_house" gorm:"size:255"`
	Category     string    `json:"category" gorm:"size:100"`
	NAV          Decimal   `json:"nav" gorm:"type:decimal(12,2)"`
	AUM          Decimal   `json:"aum" gorm:"type:decimal(18,2)"`
	ExpenseRatio Decimal   `json:"expense_ratio" gorm:"type:decimal(8,2)"`
	LaunchDate   *time.Time `json:"launch_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Allocations []FundAllocation `json:"allocations,omitempty" gorm:"foreignKey:FundID"`
	Holdings    []FundHolding    `json:"holdings,omitempty" gorm:"foreignKey:FundID"`
	Returns     *FundReturn      `json:"returns,omitempty" gorm:"foreignKey:FundID"`
}

// TableName returns the table name for MutualFund
func (MutualFund) TableName() string {
	return "mutual_funds"
}

// FundAllocation is the fund's exposure to one asset class
type FundAllocation struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	FundID     uint    `json:"fund_id" gorm:"index;not null"`
	AssetClass string  `json:"asset_class" gorm:"not null;size:50"`
	Percentage Decimal `json:"percentage" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
}

// TableName returns the table name for FundAllocation
func (FundAllocation) TableName() string {
	return "fund_allocations"
}

// FundHolding is one portfolio position
type FundHolding struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	FundID     uint    `json:"fund_id" gorm:"index;not null"`
	Name       string  `json:"name" gorm:"not null;size:255"`
	Sector     string  `json:"sector" gorm:"size:100"`
	Percentage Decimal `json:"percentage" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
}

// TableName returns the table name for FundHolding
func (FundHolding) TableName() string {
	return "fund_holdings"
}

// FundReturn holds trailing returns, zero-or-one row per fund
type FundReturn struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	FundID       uint    `json:"fund_id" gorm:"index;not null"`
	OneYear      Decimal `json:"one_year" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
	ThreeYear    Decimal `json:"three_year" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
	FiveYear     Decimal `json:"five_year" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
	SinceLaunch  Decimal `json:"since_launch" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
}

// TableName returns the table name for FundReturn
func (FundReturn) TableName() string {
	return "fund_returns"
}
