package main

import (
	"log"

	"github.com/balihai/hoa-api/internal/application/service"
	"github.com/balihai/hoa-api/internal/config"
	"github.com/balihai/hoa-api/internal/infrastructure/database"
	"github.com/balihai/hoa-api/internal/infrastructure/repository"
	"github.com/balihai/hoa-api/internal/presentation/http/handler"
	"github.com/balihai/hoa-api/internal/presentation/http/routes"
	"github.com/balihai/hoa-api/pkg/storage"
	"github.com/balihai/hoa-api/pkg/utils"
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

	// Seed default roles and the bootstrap admin account
	if err := database.SeedDefaultData(db, &cfg.Admin); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Receipt image storage
	var store storage.ObjectStore
	if cfg.Storage.Driver == "s3" {
		store, err = storage.NewS3Store(storage.S3Config{
			Endpoint:        cfg.Storage.S3Endpoint,
			AccessKeyID:     cfg.Storage.S3AccessKey,
			SecretAccessKey: cfg.Storage.S3SecretKey,
			Bucket:          cfg.Storage.S3Bucket,
			Region:          cfg.Storage.S3Region,
			UseSSL:          cfg.Storage.S3UseSSL,
			Prefix:          "receipts",
		})
	} else {
		store, err = storage.NewLocalStore(cfg.Storage.Path, cfg.Storage.PublicPrefix)
	}
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	residentRepo := repository.NewResidentRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	reportRepo := repository.NewReportRepository(db)
	txManager := repository.NewTxManager(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	residentService := service.NewResidentService(residentRepo, userRepo, txManager)
	billingService := service.NewBillingService(
		invoiceRepo,
		transactionRepo,
		residentRepo,
		txManager,
		store,
		cfg.Billing.PenaltyRatePercent,
		cfg.Billing.MaxReceiptImages,
	)
	expenseService := service.NewExpenseService(expenseRepo)
	announcementService := service.NewAnnouncementService(announcementRepo)
	complaintService := service.NewComplaintService(complaintRepo, residentRepo)
	reportService := service.NewReportService(reportRepo, invoiceRepo, transactionRepo, residentRepo)
	dashboardService := service.NewDashboardService(residentRepo, transactionRepo, complaintRepo, reportRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Resident:     handler.NewResidentHandler(residentService),
		Billing:      handler.NewBillingHandler(billingService),
		Expense:      handler.NewExpenseHandler(expenseService),
		Announcement: handler.NewAnnouncementHandler(announcementService),
		Complaint:    handler.NewComplaintHandler(complaintService),
		Report:       handler.NewReportHandler(reportService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
	}

	// Setup router and start the server
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})
	router.MaxMultipartMemory = cfg.Storage.UploadMaxSize

	log.Printf("Starting %s on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
