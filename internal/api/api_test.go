package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/arkline/marketdesk/internal/api"
	"github.com/arkline/marketdesk/internal/auth"
	"github.com/arkline/marketdesk/internal/config"
	"github.com/arkline/marketdesk/internal/database"
	"github.com/arkline/marketdesk/internal/models"
	"github.com/arkline/marketdesk/internal/store"
	"github.com/arkline/marketdesk/internal/validate"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validate.Register(); err != nil {
		panic(err)
	}
	m.Run()
}

type testEnv struct {
	router          *gin.Engine
	db              *gorm.DB
	adminToken      string
	superadminToken string
}

func setup(t *testing.T) *testEnv {
	t.Helper()

	path := filepath.Join(t.TempDir(), "api.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.AdminUser{},
		&models.SubscriptionPlan{},
		&models.SubscriptionAssignment{},
		&models.Blog{},
		&models.NewsArticle{},
		&models.SectorWeightage{},
		&models.ScreenerValuation{},
		&models.Company{},
		&models.CashFlow{},
		&models.BalanceSheet{},
		&models.AnnualProfitLoss{},
		&models.FinancialMetrics{},
		&models.FinancialRatios{},
		&models.PeerAnalysis{},
		&models.PeerValuation{},
		&models.QuarterlyFinancial{},
		&models.ValuationInput{},
		&models.IPO{},
		&models.IPODetail{},
		&models.IPOFinancial{},
		&models.IPOKeyRatio{},
		&models.IPOSubscriptionStatus{},
		&models.MutualFund{},
		&models.FundAllocation{},
		&models.FundHolding{},
		&models.FundReturn{},
		&models.QuarterlyEarning{},
		&models.EarningsIncome{},
		&models.EarningsSegment{},
		&models.EarningsRatio{},
	))

	pools := &database.Pools{Admin: db, Stock: db, Earnings: db, Market: db, Fund: db}
	jwtService := auth.NewJWTService("test-secret", 1)

	hash, err := auth.HashPassword("pass12345")
	require.NoError(t, err)
	users := store.NewAdminUserStore(db)
	staff := models.AdminUser{Username: "staff", Email: "staff@x.test", PasswordHash: hash, Role: models.RoleAdmin, IsActive: true}
	root := models.AdminUser{Username: "root", Email: "root@x.test", PasswordHash: hash, Role: models.RoleSuperadmin, IsActive: true}
	require.NoError(t, users.Create(&staff))
	require.NoError(t, users.Create(&root))

	adminToken, _, err := jwtService.GenerateToken(staff.ID, staff.Username, staff.Role)
	require.NoError(t, err)
	superToken, _, err := jwtService.GenerateToken(root.ID, root.Username, root.Role)
	require.NoError(t, err)

	handlers := api.NewHandlers(pools, jwtService)
	router := api.SetupRouter(config.CORSConfig{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
	}, jwtService, handlers)

	return &testEnv{
		router:          router,
		db:              db,
		adminToken:      adminToken,
		superadminToken: superToken,
	}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthNoAuth(t *testing.T) {
	env := setup(t)
	w := env.request(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin(t *testing.T) {
	env := setup(t)

	w := env.request(t, http.MethodPost, "/auth/login", "", gin.H{
		"username": "root", "password": "pass12345",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "superadmin", user["role"])

	w = env.request(t, http.MethodPost, "/auth/login", "", gin.H{
		"username": "root", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRateLimited(t *testing.T) {
	env := setup(t)

	var last *httptest.ResponseRecorder
	for i := 0; i < 6; i++ {
		last = env.request(t, http.MethodPost, "/auth/login", "", gin.H{
			"username": "root", "password": "wrong",
		})
	}
	assert.Equal(t, http.StatusTooManyRequests, last.Code)
}

func TestRequestsWithoutTokenRejected(t *testing.T) {
	env := setup(t)

	w := env.request(t, http.MethodGet, "/api/blogs/all", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, http.MethodGet, "/api/blogs/all", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSectorWeightageEndToEnd(t *testing.T) {
	env := setup(t)

	w := env.request(t, http.MethodPost, "/api/stocks_sector_weightage", env.adminToken, gin.H{
		"data": gin.H{
			"Sector":            "Energy",
			"NumberOfCompanies": 14,
			"Weightage":         12.75,
			"MarketCap":         250000.5,
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.request(t, http.MethodGet, "/api/stocks_sector_weightage/all?page=1&limit=10", env.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(1), body["total"])
	assert.Equal(t, float64(1), body["currentPage"])
	rows := body["data"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "Energy", row["Sector"])
	assert.Equal(t, float64(14), row["NumberOfCompanies"])
	assert.Equal(t, 12.75, row["Weightage"])
}

func TestSectorWeightageLegacyPathAlias(t *testing.T) {
	env := setup(t)

	w := env.request(t, http.MethodPost, "/api/stocks_sector_weitage", env.adminToken, gin.H{
		"data": gin.H{
			"Sector":            "IT",
			"NumberOfCompanies": 42,
			"Weightage":         12.5,
			"MarketCap":         500000,
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.request(t, http.MethodGet, "/api/stocks_sector_weitage/all", env.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	rows := body["data"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "IT", row["Sector"])
	assert.Equal(t, float64(42), row["NumberOfCompanies"])
	assert.Equal(t, 12.5, row["Weightage"])
	assert.Equal(t, float64(500000), row["MarketCap"])
	assert.NotZero(t, row["id"])
}

func TestSectorWeightageBatchCreate(t *testing.T) {
	env := setup(t)

	w := env.request(t, http.MethodPost, "/api/stocks_sector_weightage", env.adminToken, gin.H{
		"data": []gin.H{
			{"Sector": "Energy", "Weightage": 12.75},
			{"Sector": "Banking", "Weightage": 31.5},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Contains(t, body["message"], "2 records created")

	var count int64
	env.db.Model(&models.SectorWeightage{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestFinancialFigurePrecisionRejected(t *testing.T) {
	env := setup(t)

	w := env.request(t, http.MethodPost, "/api/stocks_sector_weightage", env.adminToken, gin.H{
		"data": gin.H{"Sector": "Energy", "Weightage": 12.753},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	env.db.Model(&models.SectorWeightage{}).Count(&count)
	assert.Zero(t, count)
}

// Empty-string figures normalize to NULL, never zero.
func TestEmptyStringFigureStoredAsNull(t *testing.T) {
	env := setup(t)

	w := env.request(t, http.MethodPost, "/api/stocks_sector_weightage", env.adminToken, gin.H{
		"data": gin.H{"Sector": "Energy", "Weightage": ""},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var row models.SectorWeightage
	require.NoError(t, env.db.First(&row).Error)
	assert.False(t, row.Weightage.Valid)
}

func TestAdminUserMutationRequiresSuperadmin(t *testing.T) {
	env := setup(t)

	payload := gin.H{"data": gin.H{
		"username": "newbie",
		"email":    "newbie@x.test",
		"password": "pass12345",
		"role":     "admin",
	}}

	w := env.request(t, http.MethodPost, "/api/adminusers", env.adminToken, payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	env.db.Model(&models.AdminUser{}).Count(&count)
	assert.Equal(t, int64(2), count, "denied request must not write")

	w = env.request(t, http.MethodPost, "/api/adminusers", env.superadminToken, payload)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	env.db.Model(&models.AdminUser{}).Count(&count)
	assert.Equal(t, int64(3), count)
}

func TestAdminUserInvalidRoleRejected(t *testing.T) {
	env := setup(t)

	w := env.request(t, http.MethodPost, "/api/adminusers", env.superadminToken, gin.H{
		"data": gin.H{
			"username": "newbie",
			"email":    "newbie@x.test",
			"password": "pass12345",
			"role":     "owner",
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	env.db.Model(&models.AdminUser{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestSubscriptionPlanWritesGated(t *testing.T) {
	env := setup(t)

	payload := gin.H{"data": gin.H{"name": "Pro", "monthly_price": 29.99}}

	w := env.request(t, http.MethodPost, "/api/subscription_plans", env.adminToken, payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.request(t, http.MethodPost, "/api/subscription_plans", env.superadminToken, payload)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Reads stay open to any authenticated admin
	w = env.request(t, http.MethodGet, "/api/subscription_plans/all", env.adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCompanyCompositeEndToEnd(t *testing.T) {
	env := setup(t)

	w := env.request(t, http.MethodPost, "/api/stock_details_tables/companies", env.adminToken, gin.H{
		"name":   "Acme Industries",
		"symbol": "ACME",
		"cash_flow": gin.H{
			"fiscal_year":        "FY24",
			"operating_activity": 120.5,
		},
		"quarterly_financials": []gin.H{
			{"period": "Q1FY24", "revenue": 500},
			{"period": "Q2FY24", "revenue": 525.5},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)["data"].(map[string]interface{})
	id := int(created["id"].(float64))
	require.NotZero(t, id)

	w = env.request(t, http.MethodGet, "/api/stock_details_tables/companies/1", env.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "ACME", data["symbol"])
	assert.NotNil(t, data["cash_flow"])
	assert.Len(t, data["quarterly_financials"], 2)
}

func TestCompanyMissingNameRejected(t *testing.T) {
	env := setup(t)

	w := env.request(t, http.MethodPost, "/api/stock_details_tables/companies", env.adminToken, gin.H{
		"symbol": "ACME",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBlogDeleteByBody(t *testing.T) {
	env := setup(t)

	blogs := store.NewBlogStore(env.db)
	blog := models.Blog{Title: "bye", Slug: "bye"}
	require.NoError(t, blogs.Create(&blog))

	w := env.request(t, http.MethodDelete, "/api/blogs", env.adminToken, gin.H{"id": blog.ID})
	assert.Equal(t, http.StatusOK, w.Code)

	_, err := blogs.Get(blog.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestNotFoundEnvelope(t *testing.T) {
	env := setup(t)

	w := env.request(t, http.MethodGet, "/api/blogs/999", env.adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "not found")
}

func TestIPOCompositeCreate(t *testing.T) {
	env := setup(t)

	w := env.request(t, http.MethodPost, "/api/ipodetails", env.adminToken, gin.H{
		"company": gin.H{"company_name": "Fresh Listing Ltd", "category": "mainboard"},
		"ipo_details": gin.H{
			"price_band_low":  95,
			"price_band_high": 100,
			"lot_size":        150,
		},
		"subscription_status": []gin.H{
			{"category": "retail", "subscription_times": 3.4},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.request(t, http.MethodGet, "/api/ipodetails/1", env.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Fresh Listing Ltd", data["company_name"])
	assert.NotNil(t, data["ipo_details"])
}
