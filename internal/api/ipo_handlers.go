// Package api - IPO composite endpoints
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arkline/marketdesk/internal/models"
	"github.com/arkline/marketdesk/internal/store"
)

// IPOHandler serves the IPO composite family
type IPOHandler struct {
	ipos *store.IPOStore
}

// NewIPOHandler creates a new IPO handler
func NewIPOHandler(ipos *store.IPOStore) *IPOHandler {
	return &IPOHandler{ipos: ipos}
}

// IPOCompany carries the parent fields of an IPO payload
type IPOCompany struct {
	CompanyName string     `json:"company_name" binding:"required"`
	Category    string     `json:"category"`
	OpenDate    *time.Time `json:"open_date"`
	CloseDate   *time.Time `json:"close_date"`
	ListingDate *time.Time `json:"listing_date"`
}

// IPORequest is the nested payload for an IPO and its sections
type IPORequest struct {
	Company            IPOCompany                     `json:"company" binding:"required"`
	Details            *models.IPODetail              `json:"ipo_details"`
	Financials         []models.IPOFinancial          `json:"financials"`
	KeyRatios          []models.IPOKeyRatio           `json:"key_ratios"`
	SubscriptionStatus []models.IPOSubscriptionStatus `json:"subscription_status"`
}

func (r *IPORequest) toModel() *models.IPO {
	return &models.IPO{
		CompanyName:        r.Company.CompanyName,
		Category:           r.Company.Category,
		OpenDate:           r.Company.OpenDate,
		CloseDate:          r.Company.CloseDate,
		ListingDate:        r.Company.ListingDate,
		Details:            r.Details,
		Financials:         r.Financials,
		KeyRatios:          r.KeyRatios,
		SubscriptionStatus: r.SubscriptionStatus,
	}
}

// List returns a paginated list of IPO parent rows
// GET /api/ipodetails/all
func (h *IPOHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.ipos.List(page, limit)
	if err != nil {
		respondError(c, "IPO", err)
		return
	}
	respondPage(c, result)
}

// Get returns one IPO with every child section
// GET /api/ipodetails/:id
func (h *IPOHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	ipo, err := h.ipos.Get(id)
	if err != nil {
		respondError(c, "IPO", err)
		return
	}
	respondData(c, http.StatusOK, ipo)
}

// Create stores an IPO and its sections in one transaction
// POST /api/ipodetails
func (h *IPOHandler) Create(c *gin.Context) {
	var req IPORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	ipo := req.toModel()
	if err := h.ipos.Create(ipo); err != nil {
		respondError(c, "IPO", err)
		return
	}
	respondData(c, http.StatusCreated, ipo)
}

// Update replaces an IPO's scalars and every child section
// PUT /api/ipodetails/:id
func (h *IPOHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req IPORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.ipos.Update(id, req.toModel()); err != nil {
		respondError(c, "IPO", err)
		return
	}
	respondMessage(c, http.StatusOK, "IPO updated")
}

// Delete removes an IPO and every child row
// DELETE /api/ipodetails/:id
func (h *IPOHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.ipos.Delete(id); err != nil {
		respondError(c, "IPO", err)
		return
	}
	respondMessage(c, http.StatusOK, "IPO deleted")
}
