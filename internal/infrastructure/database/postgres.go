package database

import (
	"fmt"
	"log"

	"github.com/chaatcart/kiosk-api/internal/config"
	"github.com/chaatcart/kiosk-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Order{},
		&entity.OrderCounter{},
		&entity.MenuItem{},
		&entity.KioskSettings{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the storefront with a starter menu and default
// settings so a fresh install can take orders immediately
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var settingsCount int64
	if err := db.Model(&entity.KioskSettings{}).Count(&settingsCount).Error; err != nil {
		return err
	}
	if settingsCount == 0 {
		settings := entity.KioskSettings{
			OnlinePaymentsEnabled: true,
			PayAtCounterEnabled:   true,
			Categories:            entity.CategoryList{"Chaat", "Dosa", "Drinks"},
		}
		if err := db.Create(&settings).Error; err != nil {
			log.Printf("Warning: failed to seed settings: %v", err)
		}
	}

	var menuCount int64
	if err := db.Model(&entity.MenuItem{}).Count(&menuCount).Error; err != nil {
		return err
	}
	if menuCount == 0 {
		items := []entity.MenuItem{
			{
				Name:     "Panipuri",
				Category: "Chaat",
				Price:    6.00,
				Options: entity.OptionList{
					{Name: "Mild"},
					{Name: "Spicy"},
				},
				Available: true,
				SortOrder: 1,
			},
			{
				Name:      "Samosa",
				Category:  "Chaat",
				Price:     2.00,
				Available: true,
				SortOrder: 2,
			},
			{
				Name:     "Masala Dosa",
				Category: "Dosa",
				Price:    9.00,
				Options: entity.OptionList{
					{Name: "Extra Chutney (+$1.00)", Extra: 1.00},
				},
				Available: true,
				SortOrder: 1,
			},
			{
				Name:      "Mango Lassi",
				Category:  "Drinks",
				Price:     4.50,
				Available: true,
				SortOrder: 1,
			},
		}
		for i := range items {
			if err := db.Create(&items[i]).Error; err != nil {
				log.Printf("Warning: failed to seed menu item %s: %v", items[i].Name, err)
			}
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
