package routes

import (
	"time"

	"github.com/chaatcart/kiosk-api/internal/config"
	"github.com/chaatcart/kiosk-api/internal/presentation/http/handler"
	"github.com/chaatcart/kiosk-api/internal/presentation/http/middleware"
	"github.com/chaatcart/kiosk-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Checkout  *handler.CheckoutHandler
	Order     *handler.OrderHandler
	Analytics *handler.AnalyticsHandler
	Settings  *handler.SettingsHandler
	Menu      *handler.MenuHandler
	Events    *handler.EventsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes used by the kiosk frontend
		registerPublicRoutes(v1, h, deps)

		// Admin routes (authentication required)
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(deps.JWTManager))
		registerAdminRoutes(admin, h)
	}

	return router
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	v1.POST("/auth/login", h.Auth.Login)

	v1.GET("/menu", h.Menu.ListPublic)
	v1.GET("/settings", h.Settings.GetStorefront)

	// Per-IP rate limiter on order creation so a stuck kiosk cannot flood
	// the counter and order tables
	checkoutLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	orders := v1.Group("/orders")
	orders.Use(checkoutLimiter.Middleware())
	{
		orders.POST("/quote", h.Checkout.Quote)
		orders.POST("", h.Checkout.Create)
		orders.GET("/:id", h.Checkout.Get)
	}
}

func registerAdminRoutes(admin *gin.RouterGroup, h *Handlers) {
	// Live invalidation stream for the admin order screen
	admin.GET("/events", h.Events.Stream)

	// Orders
	orders := admin.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/complete", h.Order.Complete)
		orders.POST("/:id/cancel", h.Order.Cancel)
		orders.POST("/:id/revert", h.Order.Revert)
		orders.POST("/:id/notify-ready", h.Order.NotifyReady)
		orders.PUT("/:id/paid", h.Order.MarkPaid)
		orders.PUT("/:id/given", h.Order.SetItemGiven)
		orders.PUT("/:id/items", h.Order.EditItems)
	}

	// Analytics
	admin.GET("/analytics/dashboard", h.Analytics.DashboardStats)
	admin.GET("/analytics/tax-report", h.Analytics.MonthlyTaxReport)

	// Settings
	admin.GET("/settings", h.Settings.Get)
	admin.PATCH("/settings", h.Settings.Update)
	admin.POST("/settings/reset-orders-view", h.Settings.ResetOrdersView)

	// Menu management
	menu := admin.Group("/menu")
	{
		menu.GET("", h.Menu.ListAdmin)
		menu.POST("", h.Menu.Create)
		menu.PUT("/:id", h.Menu.Update)
		menu.DELETE("/:id", h.Menu.Delete)
	}
}
