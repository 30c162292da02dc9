// Package api - router setup
package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/arkline/marketdesk/internal/auth"
	"github.com/arkline/marketdesk/internal/config"
	"github.com/arkline/marketdesk/internal/database"
	"github.com/arkline/marketdesk/internal/models"
	"github.com/arkline/marketdesk/internal/store"
)

// Handlers bundles every route handler with its store wiring
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Users    *AdminUserHandler
	Stocks   *StockHandler
	IPOs     *IPOHandler
	Funds    *FundHandler
	Earnings *EarningsHandler

	blogs           crud[models.Blog]
	news            crud[models.NewsArticle]
	plans           crud[models.SubscriptionPlan]
	assignments     crud[models.SubscriptionAssignment]
	sectorWeightage crud[models.SectorWeightage]
	screener        crud[models.ScreenerValuation]
}

// NewHandlers builds the handler set over the five pools
func NewHandlers(pools *database.Pools, jwtService *auth.JWTService) *Handlers {
	users := store.NewAdminUserStore(pools.Admin)

	return &Handlers{
		Health:   NewHealthHandler(pools),
		Auth:     NewAuthHandler(users, jwtService),
		Users:    NewAdminUserHandler(users),
		Stocks:   NewStockHandler(store.NewCompanyStore(pools.Stock)),
		IPOs:     NewIPOHandler(store.NewIPOStore(pools.Market)),
		Funds:    NewFundHandler(store.NewFundStore(pools.Fund)),
		Earnings: NewEarningsHandler(store.NewEarningsStore(pools.Earnings)),

		blogs:           newCrud[models.Blog]("blog", store.NewBlogStore(pools.Admin)),
		news:            newCrud[models.NewsArticle]("news article", store.NewNewsStore(pools.Admin)),
		plans:           newCrud[models.SubscriptionPlan]("subscription plan", store.NewPlanStore(pools.Admin)),
		assignments:     newCrud[models.SubscriptionAssignment]("subscription assignment", store.NewAssignmentStore(pools.Admin)),
		sectorWeightage: newCrud[models.SectorWeightage]("sector weightage", store.NewSectorWeightageStore(pools.Market)),
		screener:        newCrud[models.ScreenerValuation]("screener valuation", store.NewScreenerStore(pools.Market)),
	}
}

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg config.CORSConfig, jwtService *auth.JWTService, h *Handlers) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsConfig))

	// Health check (no auth required)
	r.GET("/api/health", h.Health.Health)

	// Authentication
	r.POST("/auth/login", h.Auth.Login)

	authProtected := r.Group("/auth")
	authProtected.Use(AuthMiddleware(jwtService))
	{
		authProtected.GET("/me", h.Auth.Me)
		authProtected.POST("/change-password", h.Auth.ChangePassword)
		authProtected.POST("/logout", h.Auth.Logout)
	}

	api := r.Group("/api")
	api.Use(AuthMiddleware(jwtService))
	{
		// Flat entity families
		h.blogs.mount(api.Group("/blogs"))
		h.news.mount(api.Group("/news"))
		h.sectorWeightage.mount(api.Group("/stocks_sector_weightage"))
		// The deployed admin forms call this misspelled path; kept as an
		// alias so they keep working.
		h.sectorWeightage.mount(api.Group("/stocks_sector_weitage"))
		h.screener.mount(api.Group("/stocks_screener_valuation"))
		h.assignments.mount(api.Group("/subscription_assignments"))

		// Subscription plan reads are open to any admin; mutation is
		// limited to superadmin.
		plans := api.Group("/subscription_plans")
		plans.GET("/all", h.plans.list)
		plans.GET("/:id", h.plans.get)
		planWrites := plans.Group("")
		planWrites.Use(RequireSuperadmin())
		{
			planWrites.POST("", h.plans.create)
			planWrites.PUT("/:id", h.plans.update)
			planWrites.DELETE("/:id", h.plans.remove)
			planWrites.DELETE("", h.plans.removeByBody)
		}

		// Admin accounts, same split
		adminUsers := api.Group("/adminusers")
		adminUsers.GET("/all", h.Users.List)
		adminUsers.GET("/:id", h.Users.Get)
		userWrites := adminUsers.Group("")
		userWrites.Use(RequireSuperadmin())
		{
			userWrites.POST("", h.Users.Create)
			userWrites.PUT("/:id", h.Users.Update)
			userWrites.DELETE("/:id", h.Users.Delete)
		}

		// Composite families
		stocks := api.Group("/stock_details_tables/companies")
		{
			stocks.GET("", h.Stocks.List)
			stocks.GET("/:id", h.Stocks.Get)
			stocks.POST("", h.Stocks.Create)
			stocks.PUT("/:id", h.Stocks.Update)
			stocks.DELETE("/:id", h.Stocks.Delete)
		}

		ipos := api.Group("/ipodetails")
		{
			ipos.GET("/all", h.IPOs.List)
			ipos.GET("/:id", h.IPOs.Get)
			ipos.POST("", h.IPOs.Create)
			ipos.PUT("/:id", h.IPOs.Update)
			ipos.DELETE("/:id", h.IPOs.Delete)
		}

		funds := api.Group("/mutualfunds")
		{
			funds.GET("/all", h.Funds.List)
			funds.GET("/:id", h.Funds.Get)
			funds.POST("", h.Funds.Create)
			funds.PUT("/:id", h.Funds.Update)
			funds.DELETE("/:id", h.Funds.Delete)
		}

		earnings := api.Group("/quarterly_earnings")
		{
			earnings.GET("/all", h.Earnings.List)
			earnings.GET("/:id", h.Earnings.Get)
			earnings.POST("", h.Earnings.Create)
			earnings.PUT("/:id", h.Earnings.Update)
			earnings.DELETE("/:id", h.Earnings.Delete)
		}
	}

	return r
}
