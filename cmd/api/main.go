package main

import (
	"log"
	"os"

	"github.com/chaatcart/kiosk-api/internal/application/service"
	"github.com/chaatcart/kiosk-api/internal/config"
	"github.com/chaatcart/kiosk-api/internal/infrastructure/database"
	"github.com/chaatcart/kiosk-api/internal/infrastructure/repository"
	"github.com/chaatcart/kiosk-api/internal/presentation/http/handler"
	"github.com/chaatcart/kiosk-api/internal/presentation/http/routes"
	"github.com/chaatcart/kiosk-api/pkg/broadcast"
	"github.com/chaatcart/kiosk-api/pkg/email"
	"github.com/chaatcart/kiosk-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default settings and starter menu
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)
	counterRepo := repository.NewCounterRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	menuRepo := repository.NewMenuRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		TruckName:    cfg.App.TruckName,
	})

	// In-process fan-out for the admin live order screen
	hub := broadcast.NewHub()

	pricing := service.PricingConfig{
		TaxRate:        cfg.Pricing.TaxRate,
		ConvenienceFee: cfg.Pricing.ConvenienceFee,
	}

	// Initialize services
	authService := service.NewAuthService(jwtManager, cfg.Admin.PasswordHash, cfg.Admin.Password)
	orderService := service.NewOrderService(orderRepo, counterRepo, settingsRepo, emailService, hub)
	analyticsService := service.NewAnalyticsService(orderRepo, menuRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	menuService := service.NewMenuService(menuRepo, settingsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Checkout:  handler.NewCheckoutHandler(orderService, pricing),
		Order:     handler.NewOrderHandler(orderService),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Menu:      handler.NewMenuHandler(menuService),
		Events:    handler.NewEventsHandler(hub),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
