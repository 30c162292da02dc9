// Package models - listed-company financial tables (stock details schema)
package models

import "time"

// Company is the parent row of the stock-details family. Every child table
// below references CompanyID; a company is created, updated and deleted
// together with its children inside one transaction.
type Company struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:255;index"`
	Symbol    string    `json:"symbol" gorm:"uniqueIndex;size:20"`
	Sector    string    `json:"sector" gorm:"size:100"`
	Industry  string    `json:"industry" gorm:"size:100"`
	ListedOn  *time.Time `json:"listed_on"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CashFlow            *CashFlow            `json:"cash_flow,omitempty" gorm:"foreignKey:CompanyID"`
	BalanceSheet        *BalanceSheet        `json:"balance_sheet,omitempty" gorm:"foreignKey:CompanyID"`
	AnnualProfitLoss    *AnnualProfitLoss    `json:"annual_profit_loss,omitempty" gorm:"foreignKey:CompanyID"`
	FinancialMetrics    *FinancialMetrics    `json:"financial_metrics,omitempty" gorm:"foreignKey:CompanyID"`
	FinancialRatios     *FinancialRatios     `json:"financial_ratios,omitempty" gorm:"foreignKey:CompanyID"`
	PeerAnalysis        *PeerAnalysis        `json:"peer_analysis,omitempty" gorm:"foreignKey:CompanyID"`
	PeerValuations      []PeerValuation      `json:"peer_valuations,omitempty" gorm:"foreignKey:CompanyID"`
	QuarterlyFinancials []QuarterlyFinancial `json:"quarterly_financials,omitempty" gorm:"foreignKey:CompanyID"`
	ValuationInputs     *ValuationInput      `json:"valuation_inputs,omitempty" gorm:"foreignKey:CompanyID"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}

// CashFlow holds one categorical slice of a company's reported cash flows
type CashFlow struct {
	ID                uint    `json:"id" gorm:"primaryKey"`
	CompanyID         uint    `json:"company_id" gorm:"index;not null"`
	FiscalYear        string  `json:"fiscal_year" gorm:"size:10"`
	OperatingActivity Decimal `json:"operating_activity" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	InvestingActivity Decimal `json:"investing_activity" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	FinancingActivity Decimal `json:"financing_activity" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	NetCashFlow       Decimal `json:"net_cash_flow" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
}

// TableName returns the table name for CashFlow
func (CashFlow) TableName() string {
	return "cash_flow"
}

// BalanceSheet holds a company's balance-sheet snapshot
type BalanceSheet struct {
	ID                uint    `json:"id" gorm:"primaryKey"`
	CompanyID         uint    `json:"company_id" gorm:"index;not null"`
	FiscalYear        string  `json:"fiscal_year" gorm:"size:10"`
	TotalAssets       Decimal `json:"total_assets" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	TotalLiabilities  Decimal `json:"total_liabilities" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	ShareholderEquity Decimal `json:"shareholder_equity" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	TotalDebt         Decimal `json:"total_debt" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	CashAndEquivalents Decimal `json:"cash_and_equivalents" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
}

// TableName returns the table name for BalanceSheet
func (BalanceSheet) TableName() string {
	return "balance_sheet"
}

// AnnualProfitLoss holds a company's annual income-statement figures
type AnnualProfitLoss struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	CompanyID       uint    `json:"company_id" gorm:"index;not null"`
	FiscalYear      string  `json:"fiscal_year" gorm:"size:10"`
	Revenue         Decimal `json:"revenue" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	OperatingProfit Decimal `json:"operating_profit" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	NetProfit       Decimal `json:"net_profit" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	EPS             Decimal `json:"eps" binding:"omitempty,dp2" gorm:"type:decimal(12,2)"`
	DividendPayout  Decimal `json:"dividend_payout" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
}

// TableName returns the table name for AnnualProfitLoss
func (AnnualProfitLoss) TableName() string {
	return "annual_profit_loss"
}

// FinancialMetrics holds headline per-share and size metrics
type FinancialMetrics struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	CompanyID     uint    `json:"company_id" gorm:"index;not null"`
	MarketCap     Decimal `json:"market_cap" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	BookValue     Decimal `json:"book_value" binding:"omitempty,dp2" gorm:"type:decimal(12,2)"`
	FaceValue     Decimal `json:"face_value" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
	DividendYield Decimal `json:"dividend_yield" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
	High52Week    Decimal `json:"high_52_week" binding:"omitempty,dp2" gorm:"type:decimal(12,2)"`
	Low52Week     Decimal `json:"low_52_week" binding:"omitempty,dp2" gorm:"type:decimal(12,2)"`
}

// TableName returns the table name for FinancialMetrics
func (FinancialMetrics) TableName() string {
	return "financial_metrics"
}

// FinancialRatios holds valuation and profitability ratios
type FinancialRatios struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	CompanyID    uint    `json:"company_id" gorm:"index;not null"`
	PERatio      Decimal `json:"pe_ratio" binding:"omitempty,dp2" gorm:"type:decimal(10,2)"`
	PBRatio      Decimal `json:"pb_ratio" binding:"omitempty,dp2" gorm:"type:decimal(10,2)"`
	ROE          Decimal `json:"roe" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
	ROCE         Decimal `json:"roce" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
	DebtToEquity Decimal `json:"debt_to_equity" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
	CurrentRatio Decimal `json:"current_ratio" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
}

// TableName returns the table name for FinancialRatios
func (FinancialRatios) TableName() string {
	return "financial_ratios"
}

// PeerAnalysis is free-text commentary comparing the company to its peers
type PeerAnalysis struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	CompanyID uint   `json:"company_id" gorm:"index;not null"`
	Summary   string `json:"summary" gorm:"type:text"`
	Strengths string `json:"strengths" gorm:"type:text"`
	Weaknesses string `json:"weaknesses" gorm:"type:text"`
}

// TableName returns the table name for PeerAnalysis
func (PeerAnalysis) TableName() string {
	return "peer_analysis"
}

// PeerValuation is one comparable-company row, zero-or-many per parent
type PeerValuation struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	CompanyID uint    `json:"company_id" gorm:"index;not null"`
	PeerName  string  `json:"peer_name" gorm:"not null;size:255"`
	MarketCap Decimal `json:"market_cap" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	PERatio   Decimal `json:"pe_ratio" binding:"omitempty,dp2" gorm:"type:decimal(10,2)"`
	PBRatio   Decimal `json:"pb_ratio" binding:"omitempty,dp2" gorm:"type:decimal(10,2)"`
	ROE       Decimal `json:"roe" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
}

// TableName returns the table name for PeerValuation
func (PeerValuation) TableName() string {
	return "peer_valuations"
}

// QuarterlyFinancial is a time-series row, one per reporting period.
// (company_id, period) is unique so the same quarter cannot be filed twice.
type QuarterlyFinancial struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	CompanyID       uint    `json:"company_id" gorm:"not null;index;uniqueIndex:idx_company_period"`
	Period          string  `json:"period" gorm:"not null;size:10;uniqueIndex:idx_company_period"`
	Revenue         Decimal `json:"revenue" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	OperatingProfit Decimal `json:"operating_profit" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	NetProfit       Decimal `json:"net_profit" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	EPS             Decimal `json:"eps" binding:"omitempty,dp2" gorm:"type:decimal(12,2)"`
}

// TableName returns the table name for QuarterlyFinancial
func (QuarterlyFinancial) TableName() string {
	return "quarterly_financials"
}

// ValuationInput holds the analyst inputs used to derive fair value
type ValuationInput struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	CompanyID      uint    `json:"company_id" gorm:"index;not null"`
	GrowthRate     Decimal `json:"growth_rate" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
	DiscountRate   Decimal `json:"discount_rate" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
	TerminalGrowth Decimal `json:"terminal_growth" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
	FairValue      Decimal `json:"fair_value" binding:"omitempty,dp2" gorm:"type:decimal(12,2)"`
}

// TableName returns the table name for ValuationInput
func (ValuationInput) TableName() string {
	return "valuation_inputs"
}
