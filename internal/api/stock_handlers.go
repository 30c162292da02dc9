// Package api - stock details composite endpoints
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arkline/marketdesk/internal/models"
	"github.com/arkline/marketdesk/internal/store"
)

// StockHandler serves the company composite: one parent row plus nine
// financial child tables written together.
type StockHandler struct {
	companies *store.CompanyStore
}

// NewStockHandler creates a new stock details handler
func NewStockHandler(companies *store.CompanyStore) *StockHandler {
	return &StockHandler{companies: companies}
}

// CompanyRequest is the nested payload for a company and its sections
type CompanyRequest struct {
	Name     string     `json:"name" binding:"required"`
	Symbol   string     `json:"symbol" binding:"required"`
	Sector   string     `json:"sector"`
	Industry string     `json:"industry"`
	ListedOn *time.Time `json:"listed_on"`

	CashFlow            *models.CashFlow            `json:"cash_flow"`
	BalanceSheet        *models.BalanceSheet        `json:"balance_sheet"`
	AnnualProfitLoss    *models.AnnualProfitLoss    `json:"annual_profit_loss"`
	FinancialMetrics    *models.FinancialMetrics    `json:"financial_metrics"`
	FinancialRatios     *models.FinancialRatios     `json:"financial_ratios"`
	PeerAnalysis        *models.PeerAnalysis        `json:"peer_analysis"`
	PeerValuations      []models.PeerValuation      `json:"peer_valuations"`
	QuarterlyFinancials []models.QuarterlyFinancial `json:"quarterly_financials"`
	ValuationInputs     *models.ValuationInput      `json:"valuation_inputs"`
}

func (r *CompanyRequest) toModel() *models.Company {
	return &models.Company{
		Name:                r.Name,
		Symbol:              r.Symbol,
		Sector:              r.Sector,
		Industry:            r.Industry,
		ListedOn:            r.ListedOn,
		CashFlow:            r.CashFlow,
		BalanceSheet:        r.BalanceSheet,
		AnnualProfitLoss:    r.AnnualProfitLoss,
		FinancialMetrics:    r.FinancialMetrics,
		FinancialRatios:     r.FinancialRatios,
		PeerAnalysis:        r.PeerAnalysis,
		PeerValuations:      r.PeerValuations,
		QuarterlyFinancials: r.QuarterlyFinancials,
		ValuationInputs:     r.ValuationInputs,
	}
}

// List returns a paginated list of companies without child sections
// GET /api/stock_details_tables/companies
func (h *StockHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.companies.List(page, limit)
	if err != nil {
		respondError(c, "company", err)
		return
	}
	respondPage(c, result)
}

// Get returns one company with every child section
// GET /api/stock_details_tables/companies/:id
func (h *StockHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	company, err := h.companies.Get(id)
	if err != nil {
		respondError(c, "company", err)
		return
	}
	respondData(c, http.StatusOK, company)
}

// Create stores a company and its sections in one transaction
// POST /api/stock_details_tables/companies
func (h *StockHandler) Create(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	company := req.toModel()
	if err := h.companies.Create(company); err != nil {
		respondError(c, "company", err)
		return
	}
	respondData(c, http.StatusCreated, company)
}

// Update replaces a company's scalars and every child section
// PUT /api/stock_details_tables/companies/:id
func (h *StockHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.companies.Update(id, req.toModel()); err != nil {
		respondError(c, "company", err)
		return
	}
	respondMessage(c, http.StatusOK, "company updated")
}

// Delete removes a company and every child row
// DELETE /api/stock_details_tables/companies/:id
func (h *StockHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.companies.Delete(id); err != nil {
		respondError(c, "company", err)
		return
	}
	respondMessage(c, http.StatusOK, "company deleted")
}
