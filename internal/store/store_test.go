package store

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/arkline/marketdesk/internal/models"
)

// openTestDB opens a throwaway sqlite database with the given tables
func openTestDB(t *testing.T, tables ...interface{}) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(tables...))
	return db
}

func TestListPagination(t *testing.T) {
	db := openTestDB(t, &models.Blog{})
	blogs := NewBlogStore(db)

	for i := 0; i < 25; i++ {
		require.NoError(t, blogs.Create(&models.Blog{
			Title: fmt.Sprintf("post %02d", i),
			Slug:  fmt.Sprintf("post-%02d", i),
		}))
	}

	page, err := blogs.List(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Len(t, page.Data, 10)

	page, err = blogs.List(3, 10)
	require.NoError(t, err)
	assert.Len(t, page.Data, 5)
	assert.Equal(t, 3, page.CurrentPage)
}

func TestListClampsPageAndLimit(t *testing.T) {
	db := openTestDB(t, &models.Blog{})
	blogs := NewBlogStore(db)

	require.NoError(t, blogs.Create(&models.Blog{Title: "only", Slug: "only"}))

	page, err := blogs.List(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Len(t, page.Data, 1)

	page, err = blogs.List(-5, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
}

func TestListEmptyReturnsEmptySlice(t *testing.T) {
	db := openTestDB(t, &models.Blog{})
	blogs := NewBlogStore(db)

	page, err := blogs.List(1, 10)
	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Len(t, page.Data, 0)
	assert.Equal(t, int64(0), page.Total)
	assert.Equal(t, 0, page.TotalPages)
}

func TestGetNotFound(t *testing.T) {
	db := openTestDB(t, &models.Blog{})
	blogs := NewBlogStore(db)

	_, err := blogs.Get(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateNotFound(t *testing.T) {
	db := openTestDB(t, &models.Blog{})
	blogs := NewBlogStore(db)

	err := blogs.Update(999, &models.Blog{Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

// An update that changes nothing must still read as success.
func TestUpdateIdenticalValuesSucceeds(t *testing.T) {
	db := openTestDB(t, &models.Blog{})
	blogs := NewBlogStore(db)

	blog := models.Blog{Title: "same", Slug: "same"}
	require.NoError(t, blogs.Create(&blog))

	require.NoError(t, blogs.Update(blog.ID, &models.Blog{Title: "same", Slug: "same"}))
	require.NoError(t, blogs.Update(blog.ID, &models.Blog{Title: "same", Slug: "same"}))
}

func TestDeleteNotFound(t *testing.T) {
	db := openTestDB(t, &models.Blog{})
	blogs := NewBlogStore(db)

	assert.ErrorIs(t, blogs.Delete(999), ErrNotFound)
}

func TestCreateBatch(t *testing.T) {
	db := openTestDB(t, &models.NewsArticle{})
	news := NewNewsStore(db)

	count, err := news.CreateBatch([]models.NewsArticle{
		{Headline: "one"},
		{Headline: "two"},
		{Headline: "three"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = news.CreateBatch(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestAssignmentCreateAssignsPaymentReference(t *testing.T) {
	db := openTestDB(t, &models.SubscriptionPlan{}, &models.SubscriptionAssignment{})
	assignments := NewAssignmentStore(db)

	row := models.SubscriptionAssignment{PlanID: 1, SubscriberEmail: "a@b.test"}
	require.NoError(t, assignments.Create(&row))
	assert.NotEmpty(t, row.PaymentReference)

	kept := models.SubscriptionAssignment{
		PlanID:           1,
		SubscriberEmail:  "c@d.test",
		PaymentReference: "upfront-ref",
	}
	require.NoError(t, assignments.Create(&kept))
	assert.Equal(t, "upfront-ref", kept.PaymentReference)
}
