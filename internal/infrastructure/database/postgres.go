package database

import (
	"fmt"
	"log"

	"github.com/artclub/backoffice-api/internal/config"
	"github.com/artclub/backoffice-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

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

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Reference data
		&entity.Location{},
		&entity.Terminal{},
		&entity.SellerSettings{},

		// POS entities
		&entity.Transaction{},
		&entity.TransactionItem{},
		&entity.SequenceCounter{},
		&entity.AuditLogEntry{},

		// Artist onboarding
		&entity.Artist{},
		&entity.ArtistApplication{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the seller settings and a default location/terminal
// so a fresh installation can issue documents immediately.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var settingsCount int64
	if err := db.Model(&entity.SellerSettings{}).Count(&settingsCount).Error; err != nil {
		return fmt.Errorf("failed to check seller settings: %w", err)
	}
	if settingsCount == 0 {
		settings := entity.SellerSettings{
			Version:      1,
			BrandName:    "Artclub",
			LegalName:    "Artclub GmbH",
			AddressLine1: "Beispielstr. 1",
			PostalCode:   "10115",
			City:         "Berlin",
			Country:      "Deutschland",
			FooterLine1:  "Thank you for supporting art!",
			Locale:       "de-DE",
			Currency:     "EUR",
		}
		if err := db.Create(&settings).Error; err != nil {
			log.Printf("Warning: failed to seed seller settings: %v", err)
		} else {
			log.Println("Seeded default seller settings (version 1)")
		}
	}

	var locationCount int64
	if err := db.Model(&entity.Location{}).Count(&locationCount).Error; err != nil {
		return fmt.Errorf("failed to check locations: %w", err)
	}
	if locationCount == 0 {
		location := entity.Location{
			Name:    "Galerie Berlin",
			Address: "Beispielstr. 1, 10115 Berlin",
		}
		if err := db.Create(&location).Error; err != nil {
			log.Printf("Warning: failed to seed default location: %v", err)
		} else {
			terminal := entity.Terminal{
				LocationID: &location.ID,
				Name:       "Kasse 1",
			}
			if err := db.Create(&terminal).Error; err != nil {
				log.Printf("Warning: failed to seed default terminal: %v", err)
			}
			log.Println("Seeded default location and terminal")
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
