package database

import (
	"fmt"
	"log"

	"github.com/balihai/hoa-api/internal/config"
	"github.com/balihai/hoa-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
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

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Account entities
		&entity.User{},
		&entity.Role{},

		// Community entities
		&entity.Resident{},
		&entity.Announcement{},
		&entity.Complaint{},

		// Billing entities
		&entity.Invoice{},
		&entity.Transaction{},
		&entity.Expense{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with the default roles and admin account
func SeedDefaultData(db *gorm.DB, adminCfg *config.AdminConfig) error {
	log.Println("Seeding default data...")

	roleNames := []string{"admin", "staff", "resident"}
	for _, name := range roleNames {
		var existing entity.Role
		if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
			if err := db.Create(&entity.Role{Name: name}).Error; err != nil {
				log.Printf("Warning: failed to create role %s: %v", name, err)
			}
		}
	}

	var adminRole entity.Role
	if err := db.Where("name = ?", "admin").First(&adminRole).Error; err != nil {
		return fmt.Errorf("failed to load admin role: %w", err)
	}

	// Create the bootstrap admin user if it does not exist yet
	var admin entity.User
	err := db.Where("email = ?", adminCfg.Email).First(&admin).Error
	if err == nil {
		log.Println("Default data seeding completed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminCfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin = entity.User{
		FirstName: "System",
		LastName:  "Administrator",
		Email:     adminCfg.Email,
		Password:  string(hashed),
		Roles:     []entity.Role{adminRole},
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Created default admin user %s", adminCfg.Email)
	return nil
}
