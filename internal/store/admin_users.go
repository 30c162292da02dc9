// Package store - admin user accounts (admin schema)
package store

import (
	"errors"

	"github.com/arkline/marketdesk/internal/models"
	"gorm.io/gorm"
)

// AdminUserStore manages panel operator accounts
type AdminUserStore struct {
	flat[models.AdminUser]
}

// NewAdminUserStore creates a store bound to the admin pool
func NewAdminUserStore(db *gorm.DB) *AdminUserStore {
	return &AdminUserStore{flat[models.AdminUser]{db: db}}
}

// GetByUsername returns the account for a login attempt
func (s *AdminUserStore) GetByUsername(username string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := s.db.First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// TouchLogin records a successful login
func (s *AdminUserStore) TouchLogin(id uint) error {
	return s.db.Model(&models.AdminUser{}).Where("id = ?", id).
		Update("last_login_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
}

// UpdatePassword replaces the stored bcrypt hash
func (s *AdminUserStore) UpdatePassword(id uint, hash string) error {
	result := s.db.Model(&models.AdminUser{}).Where("id = ?", id).
		Update("password_hash", hash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count reports the number of accounts; used by the bootstrap CLI
func (s *AdminUserStore) Count() (int64, error) {
	var n int64
	err := s.db.Model(&models.AdminUser{}).Count(&n).Error
	return n, err
}
