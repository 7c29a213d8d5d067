package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/andrisetiawan/tokokain-api/internal/application/service"
	"github.com/andrisetiawan/tokokain-api/internal/config"
	"github.com/andrisetiawan/tokokain-api/internal/infrastructure/database"
	"github.com/andrisetiawan/tokokain-api/internal/infrastructure/repository"
	"github.com/andrisetiawan/tokokain-api/internal/presentation/http/handler"
	"github.com/andrisetiawan/tokokain-api/internal/presentation/http/routes"
	"github.com/andrisetiawan/tokokain-api/pkg/utils"
	"github.com/andrisetiawan/tokokain-api/pkg/whatsapp"
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

	// Seed default data
	if err := database.SeedDefaultData(db, cfg); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize WhatsApp gateway client
	waClient := whatsapp.NewClient(cfg.WhatsApp.BaseURL, cfg.WhatsApp.Timeout)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	pelangganRepo := repository.NewPelangganRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	barangRepo := repository.NewBarangRepository(db)
	transaksiKeluarRepo := repository.NewTransaksiKeluarRepository(db)
	transaksiMasukRepo := repository.NewTransaksiMasukRepository(db)
	oprasionalRepo := repository.NewOprasionalRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	pelangganService := service.NewPelangganService(pelangganRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	barangService := service.NewBarangService(barangRepo)
	transaksiKeluarService := service.NewTransaksiKeluarService(transaksiKeluarRepo, barangRepo, pelangganRepo)
	transaksiMasukService := service.NewTransaksiMasukService(transaksiMasukRepo, barangRepo, supplierRepo)
	oprasionalService := service.NewOprasionalService(oprasionalRepo)
	profileService := service.NewProfileService(profileRepo)
	dashboardService := service.NewDashboardService(dashboardRepo)
	notificationService := service.NewNotificationService(waClient)
	reportService := service.NewReportService(transaksiKeluarRepo, transaksiMasukRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:            handler.NewAuthHandler(authService),
		User:            handler.NewUserHandler(userService),
		Pelanggan:       handler.NewPelangganHandler(pelangganService),
		Supplier:        handler.NewSupplierHandler(supplierService),
		Barang:          handler.NewBarangHandler(barangService),
		TransaksiKeluar: handler.NewTransaksiKeluarHandler(transaksiKeluarService),
		TransaksiMasuk:  handler.NewTransaksiMasukHandler(transaksiMasukService),
		Oprasional:      handler.NewOprasionalHandler(oprasionalService),
		Profile:         handler.NewProfileHandler(profileService),
		Dashboard:       handler.NewDashboardHandler(dashboardService),
		Notification:    handler.NewNotificationHandler(notificationService),
		Report:          handler.NewReportHandler(reportService, barangService),
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
