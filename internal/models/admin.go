// Package models contains the persistent entities for the admin panel.
// Entities are grouped by the schema that stores them; every family keyed
// by an auto-increment id with children referencing the parent id.
package models

import "time"

// Admin roles. Any other value is rejected before a write happens.
const (
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// ValidRole reports whether role is one of the accepted admin roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperadmin
}

// AdminUser represents a panel operator account
type AdminUser struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null;size:100"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string    `json:"-" gorm:"not null;size:255"`
	Role         string    `json:"role" gorm:"not null;size:20;default:'admin'"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the table name for AdminUser
func (AdminUser) TableName() string {
	return "admin_users"
}

// SubscriptionPlan describes a purchasable plan tier
type SubscriptionPlan struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null;size:100"`
	Description   string    `json:"description" gorm:"type:text"`
	MonthlyPrice  Decimal   `json:"monthly_price" binding:"omitempty,dp2" gorm:"type:decimal(10,2)"`
	YearlyPrice   Decimal   `json:"yearly_price" binding:"omitempty,dp2" gorm:"type:decimal(10,2)"`
	Features      string    `json:"features" gorm:"type:text"`
	DisplayOrder  int       `json:"display_order" gorm:"default:0"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName returns the table name for SubscriptionPlan
func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}

// SubscriptionAssignment links a subscriber to a plan with payment metadata
type SubscriptionAssignment struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	PlanID           uint       `json:"plan_id" gorm:"index;not null"`
	SubscriberEmail  string     `json:"subscriber_email" gorm:"index;not null;size:255"`
	PaymentReference string     `json:"payment_reference" gorm:"uniqueIndex;size:64"`
	AmountPaid       Decimal    `json:"amount_paid" binding:"omitempty,dp2" gorm:"type:decimal(10,2)"`
	PaymentStatus    string     `json:"payment_status" gorm:"size:20;default:'pending'"`
	StartsAt         *time.Time `json:"starts_at"`
	ExpiresAt        *time.Time `json:"expires_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	Plan *SubscriptionPlan `json:"plan,omitempty" gorm:"foreignKey:PlanID"`
}

// TableName returns the table name for SubscriptionAssignment
func (SubscriptionAssignment) TableName() string {
	return "subscription_assignments"
}

// Blog is an editorial article shown on the public site
type Blog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null;size:255"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;size:255"`
	Author      string    `json:"author" gorm:"size:100"`
	Category    string    `json:"category" gorm:"size:100;index"`
	Content     string    `json:"content" gorm:"type:longtext"`
	CoverImage  string    `json:"cover_image" gorm:"size:512"`
	IsPublished bool      `json:"is_published" gorm:"default:false"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name for Blog
func (Blog) TableName() string {
	return "blogs"
}

// NewsArticle is a short market-news item
type NewsArticle struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Headline  string    `json:"headline" gorm:"not null;size:255"`
	Source    string    `json:"source" gorm:"size:100"`
	URL       string    `json:"url" gorm:"size:512"`
	Summary   string    `json:"summary" gorm:"type:text"`
	Tags      string    `json:"tags" gorm:"size:255"`
	NewsDate  *time.Time `json:"news_date" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for NewsArticle
func (NewsArticle) TableName() string {
	return "news_articles"
}
