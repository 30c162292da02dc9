// Package api - admin user account management
package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arkline/marketdesk/internal/auth"
	"github.com/arkline/marketdesk/internal/errors"
	"github.com/arkline/marketdesk/internal/models"
	"github.com/arkline/marketdesk/internal/store"
)

// AdminUserHandler manages admin accounts. Unlike the generic CRUD set
// it hashes passwords and checks the role enum before any write.
type AdminUserHandler struct {
	users *store.AdminUserStore
}

// NewAdminUserHandler creates a new admin user handler
func NewAdminUserHandler(users *store.AdminUserStore) *AdminUserHandler {
	return &AdminUserHandler{users: users}
}

// AdminUserRequest carries a create or update payload
type AdminUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	IsActive *bool  `json:"is_active"`
}

// List returns a paginated list of accounts
// GET /api/adminusers/all
func (h *AdminUserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.users.List(page, limit)
	if err != nil {
		respondError(c, "admin user", err)
		return
	}
	respondPage(c, result)
}

// Get returns one account
// GET /api/adminusers/:id
func (h *AdminUserHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	user, err := h.users.Get(id)
	if err != nil {
		respondError(c, "admin user", err)
		return
	}
	respondData(c, http.StatusOK, user)
}

// Create adds an account with a hashed password
// POST /api/adminusers
func (h *AdminUserHandler) Create(c *gin.Context) {
	var body struct {
		Data AdminUserRequest `json:"data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, err)
		return
	}
	req := body.Data

	if req.Password == "" {
		respondError(c, "", errors.NewValidationError("password", "password is required"))
		return
	}
	role := req.Role
	if role == "" {
		role = models.RoleAdmin
	}
	if !models.ValidRole(role) {
		respondError(c, "", errors.NewValidationError("role", "role must be admin or superadmin"))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		respondError(c, "", err)
		return
	}

	user := models.AdminUser{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := h.users.Create(&user); err != nil {
		respondError(c, "admin user", err)
		return
	}
	respondData(c, http.StatusCreated, user)
}

// Update rewrites an account; the password only changes when supplied
// PUT /api/adminusers/:id
func (h *AdminUserHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req AdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if req.Role != "" && !models.ValidRole(req.Role) {
		respondError(c, "", errors.NewValidationError("role", "role must be admin or superadmin"))
		return
	}

	existing, err := h.users.Get(id)
	if err != nil {
		respondError(c, "admin user", err)
		return
	}

	existing.Username = req.Username
	existing.Email = req.Email
	if req.Role != "" {
		existing.Role = req.Role
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			respondError(c, "", err)
			return
		}
		existing.PasswordHash = hash
	}

	if err := h.users.Update(id, existing); err != nil {
		respondError(c, "admin user", err)
		return
	}
	respondMessage(c, http.StatusOK, "admin user updated")
}

// Delete removes an account
// DELETE /api/adminusers/:id
func (h *AdminUserHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.users.Delete(id); err != nil {
		respondError(c, "admin user", err)
		return
	}
	respondMessage(c, http.StatusOK, "admin user deleted")
}
