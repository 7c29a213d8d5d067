package database

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/andrisetiawan/tokokain-api/internal/config"
	"github.com/andrisetiawan/tokokain-api/internal/domain/entity"
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
		&entity.User{},
		&entity.Profile{},

		// Master data
		&entity.Pelanggan{},
		&entity.Supplier{},
		&entity.Barang{},

		// Transaction entities
		&entity.TransaksiKeluar{},
		&entity.TransaksiKeluarDetail{},
		&entity.BerjangkaKeluar{},
		&entity.TransaksiMasuk{},
		&entity.TransaksiMasukDetail{},
		&entity.BerjangkaMasuk{},

		&entity.Oprasional{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the initial admin user and the store profile row
// when they don't exist yet.
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	log.Println("Seeding default data...")

	if cfg.Admin.Username != "" && cfg.Admin.Password != "" {
		var existing entity.User
		if err := db.Where("username = ?", cfg.Admin.Username).First(&existing).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				admin := entity.User{
					Username: cfg.Admin.Username,
					Password: string(hashedPassword),
					Nama:     cfg.Admin.Nama,
					Jabatan:  "admin",
				}
				if err := db.Create(&admin).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", cfg.Admin.Username)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", cfg.Admin.Username)
		}
	}

	var profileCount int64
	if err := db.Model(&entity.Profile{}).Count(&profileCount).Error; err != nil {
		return fmt.Errorf("failed to check profile row: %w", err)
	}
	if profileCount == 0 {
		profile := entity.Profile{
			NamaToko: cfg.App.Name,
			Alamat:   "",
		}
		if err := db.Create(&profile).Error; err != nil {
			log.Printf("Warning: failed to create store profile: %v", err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
