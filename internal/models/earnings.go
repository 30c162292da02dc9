// Package models - quarterly earnings family (company-data schema)
package models

import "time"

// QuarterlyEarning is the parent row of a filed quarterly result. Unlike
// the other composite families its children are edited by direct UPDATE
// per table rather than delete-and-reinsert.
type QuarterlyEarning struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CompanyName string    `json:"company_name" gorm:"not null;size:255;index"`
	Symbol      string    `json:"symbol" gorm:"size:20;index"`
	Quarter     string    `json:"quarter" gorm:"not null;size:10"`
	FiledOn     *time.Time `json:"filed_on"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Income   *EarningsIncome   `json:"income,omitempty" gorm:"foreignKey:EarningID"`
	Segments []EarningsSegment `json:"segments,omitempty" gorm:"foreignKey:EarningID"`
	Ratios   *EarningsRatio    `json:"ratios,omitempty" gorm:"foreignKey:EarningID"`
}

// TableName returns the table name for QuarterlyEarning
func (QuarterlyEarning) TableName() string {
	return "quarterly_earnings"
}

// EarningsIncome holds the quarter's income-statement lines
type EarningsIncome struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	EarningID       uint    `json:"earning_id" gorm:"index;not null"`
	Revenue         Decimal `json:"revenue" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	Expenses        Decimal `json:"expenses" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	OperatingProfit Decimal `json:"operating_profit" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	NetProfit       Decimal `json:"net_profit" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	EPS             Decimal `json:"eps" binding:"omitempty,dp2" gorm:"type:decimal(12,2)"`
}

// TableName returns the table name for EarningsIncome
func (EarningsIncome) TableName() string {
	return "earnings_income"
}

// EarningsSegment is the quarter's revenue for one business segment
type EarningsSegment struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	EarningID uint    `json:"earning_id" gorm:"index;not null"`
	Segment   string  `json:"segment" gorm:"not null;size:100"`
	Revenue   Decimal `json:"revenue" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	Growth    Decimal `json:"growth" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
}

// TableName returns the table name for EarningsSegment
func (EarningsSegment) TableName() string {
	return "earnings_segments"
}

// EarningsRatio holds the quarter's margin and growth ratios
type EarningsRatio struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	EarningID       uint    `json:"earning_id" gorm:"index;not null"`
	OperatingMargin Decimal `json:"operating_margin" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
	NetMargin       Decimal `json:"net_margin" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
	YoYGrowth       Decimal `json:"yoy_growth" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
	QoQGrowth       Decimal `json:"qoq_growth" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
}

// TableName returns the table name for EarningsRatio
func (EarningsRatio) TableName() string {
	return "earnings_ratios"
}
