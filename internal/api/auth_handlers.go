// Package api - authentication endpoints
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/arkline/marketdesk/internal/auth"
	"github.com/arkline/marketdesk/internal/errors"
	"github.com/arkline/marketdesk/internal/store"
)

// AuthHandler handles login and session endpoints
type AuthHandler struct {
	users       *store.AdminUserStore
	jwtService  *auth.JWTService
	rateLimiter *LoginRateLimiter
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users *store.AdminUserStore, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{
		users:       users,
		jwtService:  jwtService,
		rateLimiter: NewLoginRateLimiter(),
	}
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an admin user and returns a signed token
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	rateLimitKey := c.ClientIP() + ":" + req.Username
	allowed, retryAfter := h.rateLimiter.Allow(rateLimitKey)
	if !allowed {
		c.Header("Retry-After", retryAfter.String())
		c.JSON(http.StatusTooManyRequests, gin.H{
			"success": false,
			"message": "too many login attempts, please wait before trying again",
		})
		return
	}

	user, err := h.users.GetByUsername(req.Username)
	if err != nil {
		if err == store.ErrNotFound {
			respondError(c, "", errors.NewUnauthorizedError("invalid credentials"))
		} else {
			respondError(c, "admin user", err)
		}
		return
	}

	if !user.IsActive {
		respondError(c, "", errors.NewUnauthorizedError("account is disabled"))
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		respondError(c, "", errors.NewUnauthorizedError("invalid credentials"))
		return
	}

	h.rateLimiter.Reset(rateLimitKey)

	token, expiresAt, err := h.jwtService.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		respondError(c, "", err)
		return
	}

	if err := h.users.TouchLogin(user.ID); err != nil {
		log.Warn().Err(err).Uint("user_id", user.ID).Msg("failed to record login time")
	}

	respondData(c, http.StatusOK, gin.H{
		"token":      token,
		"expires_at": expiresAt,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// Me returns the authenticated admin user
// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint("user_id")
	user, err := h.users.Get(userID)
	if err != nil {
		respondError(c, "admin user", err)
		return
	}
	respondData(c, http.StatusOK, user)
}

// ChangePasswordRequest carries a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// ChangePassword replaces the authenticated user's password
// POST /auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := h.users.Get(userID)
	if err != nil {
		respondError(c, "admin user", err)
		return
	}

	if !auth.CheckPassword(req.CurrentPassword, user.PasswordHash) {
		respondError(c, "", errors.NewUnauthorizedError("current password is incorrect"))
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		respondError(c, "", err)
		return
	}
	if err := h.users.UpdatePassword(userID, hash); err != nil {
		respondError(c, "admin user", err)
		return
	}

	respondMessage(c, http.StatusOK, "password changed successfully")
}

// Logout acknowledges a logout. Tokens are stateless; the client
// discards its copy.
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	respondMessage(c, http.StatusOK, "logged out successfully")
}
