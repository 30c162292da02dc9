// Package api - quarterly earnings composite endpoints
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arkline/marketdesk/internal/models"
	"github.com/arkline/marketdesk/internal/store"
)

// EarningsHandler serves the quarterly earnings composite family
type EarningsHandler struct {
	earnings *store.EarningsStore
}

// NewEarningsHandler creates a new earnings handler
func NewEarningsHandler(earnings *store.EarningsStore) *EarningsHandler {
	return &EarningsHandler{earnings: earnings}
}

// EarningsRequest is the nested payload for a filing and its sections
type EarningsRequest struct {
	CompanyName string     `json:"company_name" binding:"required"`
	Symbol      string     `json:"symbol"`
	Quarter     string     `json:"quarter" binding:"required"`
	FiledOn     *time.Time `json:"filed_on"`

	Income   *models.EarningsIncome   `json:"income"`
	Segments []models.EarningsSegment `json:"segments"`
	Ratios   *models.EarningsRatio    `json:"ratios"`
}

func (r *EarningsRequest) toModel() *models.QuarterlyEarning {
	return &models.QuarterlyEarning{
		CompanyName: r.CompanyName,
		Symbol:      r.Symbol,
		Quarter:     r.Quarter,
		FiledOn:     r.FiledOn,
		Income:      r.Income,
		Segments:    r.Segments,
		Ratios:      r.Ratios,
	}
}

// List returns a paginated list of filings
// GET /api/quarterly_earnings/all
func (h *EarningsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.earnings.List(page, limit)
	if err != nil {
		respondError(c, "quarterly earning", err)
		return
	}
	respondPage(c, result)
}

// Get returns one filing with every child section
// GET /api/quarterly_earnings/:id
func (h *EarningsHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	earning, err := h.earnings.Get(id)
	if err != nil {
		respondError(c, "quarterly earning", err)
		return
	}
	respondData(c, http.StatusOK, earning)
}

// Create stores a filing and its sections in one transaction
// POST /api/quarterly_earnings
func (h *EarningsHandler) Create(c *gin.Context) {
	var req EarningsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	earning := req.toModel()
	if err := h.earnings.Create(earning); err != nil {
		respondError(c, "quarterly earning", err)
		return
	}
	respondData(c, http.StatusCreated, earning)
}

// Update rewrites the parent and edits each supplied section in place
// PUT /api/quarterly_earnings/:id
func (h *EarningsHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req EarningsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.earnings.Update(id, req.toModel()); err != nil {
		respondError(c, "quarterly earning", err)
		return
	}
	respondMessage(c, http.StatusOK, "quarterly earning updated")
}

// Delete removes a filing and every child row
// DELETE /api/quarterly_earnings/:id
func (h *EarningsHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.earnings.Delete(id); err != nil {
		respondError(c, "quarterly earning", err)
		return
	}
	respondMessage(c, http.StatusOK, "quarterly earning deleted")
}
