// Package models - core trading schema: sector weightage, screener rows
// and the IPO family
package models

import "time"

// SectorWeightage mirrors the index sector-weightage table. JSON keys keep
// the column casing the admin forms submit.
type SectorWeightage struct {
	ID                uint    `json:"id" gorm:"primaryKey"`
	Sector            string  `json:"Sector" gorm:"column:sector;not null;size:100"`
	NumberOfCompanies int     `json:"NumberOfCompanies" gorm:"column:number_of_companies"`
	Weightage         Decimal `json:"Weightage" binding:"omitempty,dp2" gorm:"column:weightage;type:decimal(8,2)"`
	MarketCap         Decimal `json:"MarketCap" binding:"omitempty,dp2" gorm:"column:market_cap;type:decimal(18,2)"`
}

// TableName returns the table name for SectorWeightage
func (SectorWeightage) TableName() string {
	return "stocks_sector_weightage"
}

// ScreenerValuation is one stock row in the valuation screener.
// Columns follow the documented table schema; the legacy route bound the
// same value to two different columns, which is treated as a defect here.
type ScreenerValuation struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	Symbol        string  `json:"symbol" gorm:"not null;size:20;index"`
	Name          string  `json:"name" gorm:"size:255"`
	MarketCap     Decimal `json:"market_cap" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	PERatio       Decimal `json:"pe_ratio" binding:"omitempty,dp2" gorm:"type:decimal(10,2)"`
	PBRatio       Decimal `json:"pb_ratio" binding:"omitempty,dp2" gorm:"type:decimal(10,2)"`
	EVToEBITDA    Decimal `json:"ev_to_ebitda" binding:"omitempty,dp2" gorm:"type:decimal(10,2)"`
	PriceToSales  Decimal `json:"price_to_sales" binding:"omitempty,dp2" gorm:"type:decimal(10,2)"`
	DividendYield Decimal `json:"dividend_yield" binding:"omitempty,dp2" gorm:"type:decimal(8,2)"`
}

// TableName returns the table name for ScreenerValuation
func (ScreenerValuation) TableName() string {
	return "stocks_screener_valuation"
}

// IPO is the parent row of the IPO family
type IPO struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CompanyName string    `json:"company_name" gorm:"not null;size:255"`
	Category    string    `json:"category" gorm:"size:100"`
	OpenDate    *time.Time `json:"open_date"`
	CloseDate   *time.Time `json:"close_date"`
	ListingDate *time.Time `json:"listing_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Details            *IPODetail              `json:"ipo_details,omitempty" gorm:"foreignKey:IPOID"`
	Financials         []IPOFinancial          `json:"financials,omitempty" gorm:"foreignKey:IPOID"`
	KeyRatios          []IPOKeyRatio           `json:"key_ratios,omitempty" gorm:"foreignKey:IPOID"`
	SubscriptionStatus []IPOSubscriptionStatus `json:"subscription_status,omitempty" gorm:"foreignKey:IPOID"`
}

// TableName returns the table name for IPO
func (IPO) TableName() string {
	return "ipos"
}

// IPODetail holds the offer terms, zero-or-one per IPO
type IPODetail struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	IPOID          uint    `json:"ipo_id" gorm:"index;not null"`
	PriceBandLow   Decimal `json:"price_band_low" binding:"omitempty,dp2" gorm:"type:decimal(12,2)"`
	PriceBandHigh  Decimal `json:"price_band_high" binding:"omitempty,dp2" gorm:"type:decimal(12,2)"`
	LotSize        int     `json:"lot_size"`
	IssueSize      Decimal `json:"issue_size" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	FreshIssue     Decimal `json:"fresh_issue" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	OfferForSale   Decimal `json:"offer_for_sale" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	RegistrarName  string  `json:"registrar_name" gorm:"size:255"`
	LeadManagers   string  `json:"lead_managers" gorm:"type:text"`
}

// TableName returns the table name for IPODetail
func (IPODetail) TableName() string {
	return "ipo_details"
}

// IPOFinancial is a per-fiscal-year financial row for the issuer
type IPOFinancial struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	IPOID      uint    `json:"ipo_id" gorm:"index;not null"`
	FiscalYear string  `json:"fiscal_year" gorm:"not null;size:10"`
	Revenue    Decimal `json:"revenue" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	NetProfit  Decimal `json:"net_profit" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	TotalAssets Decimal `json:"total_assets" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
	NetWorth   Decimal `json:"net_worth" binding:"omitempty,dp2" gorm:"type:decimal(18,2)"`
}

// TableName returns the table name for IPOFinancial
func (IPOFinancial) TableName() string {
	return "ipo_financials"
}

// IPOKeyRatio is a named ratio for the issuer
type IPOKeyRatio struct {
	ID    uint    `json:"id" gorm:"primaryKey"`
	IPOID uint    `json:"ipo_id" gorm:"index;not null"`
	Name  string  `json:"name" gorm:"not null;size:100"`
	Value Decimal `json:"value" binding:"omitempty,dp2" gorm:"type:decimal(12,2)"`
}

// TableName returns the table name for IPOKeyRatio
func (IPOKeyRatio) TableName() string {
	return "ipo_key_ratios"
}

// IPOSubscriptionStatus is the oversubscription figure per investor category
type IPOSubscriptionStatus struct {
	ID                uint    `json:"id" gorm:"primaryKey"`
	IPOID             uint    `json:"ipo_id" gorm:"index;not null"`
	Category          string  `json:"category" gorm:"not null;size:50"`
	SubscriptionTimes Decimal `json:"subscription_times" binding:"omitempty,dp2" gorm:"type:decimal(10,2)"`
}

// TableName returns the table name for IPOSubscriptionStatus
func (IPOSubscriptionStatus) TableName() string {
	return "ipo_subscription_status"
}
