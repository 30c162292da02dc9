// Package api - mutual fund composite endpoints
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arkline/marketdesk/internal/models"
	"github.com/arkline/marketdesk/internal/store"
)

// FundHandler serves the mutual fund composite family
type FundHandler struct {
	funds *store.FundStore
}

// NewFundHandler creates a new mutual fund handler
func NewFundHandler(funds *store.FundStore) *FundHandler {
	return &FundHandler{funds: funds}
}

// FundRequest is the nested payload for a fund and its sections
type FundRequest struct {
	Name         string         `json:"name" binding:"required"`
	FundHouse    string         `json:"fund_house"`
	Category     string         `json:"category"`
	NAV          models.Decimal `json:"nav" binding:"omitempty,dp2"`
	AUM          models.Decimal `json:"aum" binding:"omitempty,dp2"`
	ExpenseRatio models.Decimal `json:"expense_ratio" binding:"omitempty,dp2"`
	LaunchDate   *time.Time     `json:"launch_date"`

	Allocations []models.FundAllocation `json:"allocations"`
	Holdings    []models.FundHolding    `json:"holdings"`
	Returns     *models.FundReturn      `json:"returns"`
}

func (r *FundRequest) toModel() *models.MutualFund {
	return &models.MutualFund{
		Name:         r.Name,
		FundHouse:    r.FundHouse,
		Category:     r.Category,
		NAV:          r.NAV,
		AUM:          r.AUM,
		ExpenseRatio: r.ExpenseRatio,
		LaunchDate:   r.LaunchDate,
		Allocations:  r.Allocations,
		Holdings:     r.Holdings,
		Returns:      r.Returns,
	}
}

// List returns a paginated list of fund parent rows
// GET /api/mutualfunds/all
func (h *FundHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.funds.List(page, limit)
	if err != nil {
		respondError(c, "mutual fund", err)
		return
	}
	respondPage(c, result)
}

// Get returns one fund with every child section
// GET /api/mutualfunds/:id
func (h *FundHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	fund, err := h.funds.Get(id)
	if err != nil {
		respondError(c, "mutual fund", err)
		return
	}
	respondData(c, http.StatusOK, fund)
}

// Create stores a fund and its sections in one transaction
// POST /api/mutualfunds
func (h *FundHandler) Create(c *gin.Context) {
	var req FundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	fund := req.toModel()
	if err := h.funds.Create(fund); err != nil {
		respondError(c, "mutual fund", err)
		return
	}
	respondData(c, http.StatusCreated, fund)
}

// Update replaces a fund's scalars and every child section
// PUT /api/mutualfunds/:id
func (h *FundHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req FundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.funds.Update(id, req.toModel()); err != nil {
		respondError(c, "mutual fund", err)
		return
	}
	respondMessage(c, http.StatusOK, "mutual fund updated")
}

// Delete removes a fund and every child row
// DELETE /api/mutualfunds/:id
func (h *FundHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.funds.Delete(id); err != nil {
		respondError(c, "mutual fund", err)
		return
	}
	respondMessage(c, http.StatusOK, "mutual fund deleted")
}
