// Package store - subscription plans and assignments (admin schema)
package store

import (
	"github.com/arkline/marketdesk/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanStore manages subscription plans
type PlanStore struct {
	flat[models.SubscriptionPlan]
}

// NewPlanStore creates a store bound to the admin pool
func NewPlanStore(db *gorm.DB) *PlanStore {
	return &PlanStore{flat[models.SubscriptionPlan]{db: db}}
}

// AssignmentStore manages plan assignments
type AssignmentStore struct {
	flat[models.SubscriptionAssignment]
}

// NewAssignmentStore creates a store bound to the admin pool
func NewAssignmentStore(db *gorm.DB) *AssignmentStore {
	return &AssignmentStore{flat[models.SubscriptionAssignment]{db: db}}
}

// Create assigns a payment reference when the caller did not supply one.
func (s *AssignmentStore) Create(row *models.SubscriptionAssignment) error {
	if row.PaymentReference == "" {
		row.PaymentReference = uuid.New().String()
	}
	return s.flat.Create(row)
}
