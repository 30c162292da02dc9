// Package store - blog and news content (admin schema)
package store

import (
	"github.com/arkline/marketdesk/internal/models"
	"gorm.io/gorm"
)

// BlogStore manages editorial articles
type BlogStore struct {
	flat[models.Blog]
}

// NewBlogStore creates a store bound to the admin pool
func NewBlogStore(db *gorm.DB) *BlogStore {
	return &BlogStore{flat[models.Blog]{db: db}}
}

// NewsStore manages market-news items
type NewsStore struct {
	flat[models.NewsArticle]
}

// NewNewsStore creates a store bound to the admin pool
func NewNewsStore(db *gorm.DB) *NewsStore {
	return &NewsStore{flat[models.NewsArticle]{db: db}}
}
